package handler

import (
	"net/http"

	"fotoshare-server/internal/service"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth       *AuthHandler
	User       *UserHandler
	Photo      *PhotoHandler
	Share      *ShareHandler
	Commentary *CommentaryHandler
	Album      *AlbumHandler
}

type AuthHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

type UserHandler struct {
	userService *service.UserService
}

type PhotoHandler struct {
	photoService *service.PhotoService
}

type ShareHandler struct {
	shareService *service.ShareService
}

type CommentaryHandler struct {
	commentaryService *service.CommentaryService
}

type AlbumHandler struct {
	albumService *service.AlbumService
}

func NewHandlers(
	auth *service.AuthService,
	user *service.UserService,
	photo *service.PhotoService,
	share *service.ShareService,
	commentary *service.CommentaryService,
	album *service.AlbumService,
) *Handlers {
	return &Handlers{
		Auth:       &AuthHandler{authService: auth, userService: user},
		User:       &UserHandler{userService: user},
		Photo:      &PhotoHandler{photoService: photo},
		Share:      &ShareHandler{shareService: share},
		Commentary: &CommentaryHandler{commentaryService: commentary},
		Album:      &AlbumHandler{albumService: album},
	}
}

// currentUserID 从 JWT 中间件读取当前用户 ID；未认证时写出 401。
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return 0, false
	}
	uid, ok := v.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "无效的用户ID类型"})
		return 0, false
	}
	return uid, true
}

// optionalUserID 读取当前用户 ID；匿名请求返回 nil。
func optionalUserID(c *gin.Context) *uint {
	v, exists := c.Get("id")
	if !exists {
		return nil
	}
	uid, ok := v.(uint)
	if !ok {
		return nil
	}
	return &uid
}
