package router

import (
	"fotoshare-server/internal/handler"
	"fotoshare-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// registerPhotoRoutes 注册照片、分享与评论路由。
//
// 读取类接口允许匿名访问（OptionalJWTAuth），可见性判定由服务层完成；
// 写入类接口一律要求登录。
func registerPhotoRoutes(api *gin.RouterGroup, uploadLimiter gin.HandlerFunc, h *handler.Handlers) {
	public := api.Group("/photos")
	public.Use(middleware.OptionalJWTAuth())
	{
		public.GET("", h.Photo.ListAccessible)
		public.GET("/:id", h.Photo.GetPhoto)
		public.GET("/:id/file", h.Photo.GetPhotoFile)
		public.GET("/:id/permission", h.Photo.EffectivePermission)
		public.GET("/:id/comments", h.Commentary.ListForPhoto)
	}

	authed := api.Group("/photos")
	authed.Use(middleware.JWTAuth())
	{
		authed.POST("", uploadLimiter, middleware.UploadBodyLimitMiddleware(), h.Photo.Upload)
		authed.PUT("/:id", h.Photo.Update)
		authed.PUT("/:id/visibility", h.Photo.ChangeVisibility)
		authed.DELETE("/:id", h.Photo.Delete)

		authed.POST("/:id/shares", h.Share.Grant)
		authed.GET("/:id/shares", h.Share.ListForPhoto)
		authed.DELETE("/:id/shares/:user_id", h.Share.Revoke)

		authed.POST("/:id/comments", h.Commentary.Add)
	}

	shares := api.Group("/shares")
	shares.Use(middleware.JWTAuth())
	{
		shares.GET("/mine", h.Share.ListMine)
	}

	comments := api.Group("/comments")
	comments.Use(middleware.JWTAuth())
	{
		comments.PUT("/:id", h.Commentary.Update)
		comments.DELETE("/:id", h.Commentary.Delete)
	}
}
