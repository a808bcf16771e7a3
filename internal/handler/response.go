package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/toolbox/internal/service/tool"
)

// Response 统一错误响应
// 成功响应直接返回实体 JSON，不使用信封
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// badRequest 400 错误响应
func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Response{Code: -1, Message: msg})
}

// notFound 404 错误响应
func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, Response{Code: -1, Message: msg})
}

// errorResponse 根据业务错误类型返回相应状态码
func errorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tool.ErrNotFound):
		notFound(c, err.Error())
	case errors.Is(err, tool.ErrInvalidInput), errors.Is(err, tool.ErrConflict):
		badRequest(c, err.Error())
	default:
		c.JSON(http.StatusInternalServerError, Response{Code: -1, Message: err.Error()})
	}
}
