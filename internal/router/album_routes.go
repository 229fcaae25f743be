package router

import (
	"fotoshare-server/internal/handler"
	"fotoshare-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// registerAlbumRoutes 注册相册路由，相册仅对所有者可见。
func registerAlbumRoutes(api *gin.RouterGroup, h *handler.Handlers) {
	albums := api.Group("/albums")
	albums.Use(middleware.JWTAuth())
	{
		albums.POST("", h.Album.Create)
		albums.GET("", h.Album.ListMine)
		albums.GET("/:id", h.Album.Get)
		albums.PUT("/:id", h.Album.Update)
		albums.DELETE("/:id", h.Album.Delete)

		albums.GET("/:id/photos", h.Album.ListPhotos)
		albums.POST("/:id/photos/:photo_id", h.Album.AddPhoto)
		albums.DELETE("/:id/photos/:photo_id", h.Album.RemovePhoto)
	}
}
