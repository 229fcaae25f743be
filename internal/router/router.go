package router

import (
	"fotoshare-server/internal/config"
	"fotoshare-server/internal/handler"
	"fotoshare-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// InitRouter 注册全部路由。
func InitRouter(r *gin.Engine, h *handler.Handlers) {
	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware())

	cfg := config.Get().RateLimit
	authLimiter := middleware.RateLimitMiddleware("auth", cfg.AuthRPS, cfg.AuthBurst)
	uploadLimiter := middleware.RateLimitMiddleware("upload", cfg.UploadRPS, cfg.UploadBurst)

	registerAuthRoutes(api, authLimiter, h)
	registerPhotoRoutes(api, uploadLimiter, h)
	registerAlbumRoutes(api, h)
	registerUserRoutes(api, h)
}
