package handler

import (
	"github.com/ashwinyue/toolbox/internal/service"
)

// Handlers 处理器集合
type Handlers struct {
	Tool *ToolHandler
}

// NewHandlers 创建所有处理器
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Tool: NewToolHandler(svc),
	}
}
