package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/toolbox/internal/service"
	"github.com/ashwinyue/toolbox/internal/service/tool"
)

// ToolHandler 工具处理器
type ToolHandler struct {
	svc *service.Services
}

// NewToolHandler 创建工具处理器
func NewToolHandler(svc *service.Services) *ToolHandler {
	return &ToolHandler{svc: svc}
}

// parseID 解析路径中的工具 ID
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid tool id")
		return 0, false
	}
	return id, true
}

// GetAllTools 列出所有工具
func (h *ToolHandler) GetAllTools(c *gin.Context) {
	tools, err := h.svc.Tool.GetAll(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, tools)
}

// GetToolByID 获取工具
func (h *ToolHandler) GetToolByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	t, err := h.svc.Tool.GetByID(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

// AddTool 添加工具
func (h *ToolHandler) AddTool(c *gin.Context) {
	var req tool.ToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	t, err := h.svc.Tool.Add(c.Request.Context(), &req)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

// UpdateToolByID 更新工具
func (h *ToolHandler) UpdateToolByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req tool.ToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	t, err := h.svc.Tool.Update(c.Request.Context(), id, &req)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

// DeleteToolByID 删除工具
func (h *ToolHandler) DeleteToolByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Tool.DeleteByID(c.Request.Context(), id); err != nil {
		errorResponse(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// CountTools 统计工具数量
func (h *ToolHandler) CountTools(c *gin.Context) {
	count, err := h.svc.Tool.Count(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// DeleteAllTools 删除所有工具
func (h *ToolHandler) DeleteAllTools(c *gin.Context) {
	if err := h.svc.Tool.DeleteAll(c.Request.Context()); err != nil {
		errorResponse(c, err)
		return
	}

	c.Status(http.StatusOK)
}
