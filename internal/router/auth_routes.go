package router

import (
	"fotoshare-server/internal/handler"

	"github.com/gin-gonic/gin"
)

// registerAuthRoutes 注册注册/登录路由，统一应用认证限流。
func registerAuthRoutes(api *gin.RouterGroup, limiter gin.HandlerFunc, h *handler.Handlers) {
	auth := api.Group("/auth")
	auth.Use(limiter)
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}
}
