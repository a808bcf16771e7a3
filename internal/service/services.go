// Package service 组合各业务服务
package service

import (
	"github.com/ashwinyue/toolbox/internal/repository"
	"github.com/ashwinyue/toolbox/internal/service/tool"
)

// Services 服务集合
type Services struct {
	Tool tool.ToolService
}

// NewServices 创建所有服务
func NewServices(repo *repository.Repositories) *Services {
	return &Services{
		Tool: tool.NewService(repo),
	}
}
