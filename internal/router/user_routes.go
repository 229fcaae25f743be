package router

import (
	"fotoshare-server/internal/handler"
	"fotoshare-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// registerUserRoutes 注册用户与管理员路由。
func registerUserRoutes(api *gin.RouterGroup, h *handler.Handlers) {
	user := api.Group("/user")
	user.Use(middleware.JWTAuth())
	{
		user.GET("/info", h.User.GetSelfInfo)
		user.GET("/photos", h.Photo.ListMine)
		user.DELETE("/self", h.User.DeleteSelf)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuth(), middleware.AdminOnly())
	{
		admin.DELETE("/users/:id", h.User.AdminDeleteUser)
		admin.PUT("/users/:id/enabled", h.User.AdminSetEnabled)
	}
}
