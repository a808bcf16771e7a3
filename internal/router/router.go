package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/toolbox/internal/handler"
	"github.com/ashwinyue/toolbox/internal/middleware"
)

// SetupRouter 设置路由
func SetupRouter(h *handler.Handlers) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Tool 工具
		tools := v1.Group("/tools")
		{
			tools.GET("/all", h.Tool.GetAllTools)
			tools.GET("/count", h.Tool.CountTools)
			tools.GET("/:id", h.Tool.GetToolByID)
			tools.POST("/add", h.Tool.AddTool)
			tools.PUT("/update/:id", h.Tool.UpdateToolByID)
			tools.DELETE("/delete/:id", h.Tool.DeleteToolByID)
			tools.DELETE("/all", h.Tool.DeleteAllTools)
		}
	}

	return r
}
