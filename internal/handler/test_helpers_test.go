package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fotoshare-server/internal/config"
	"fotoshare-server/internal/middleware"
	"fotoshare-server/internal/model"
	"fotoshare-server/internal/repository"
	"fotoshare-server/internal/service"
	"fotoshare-server/internal/testutils"
	"fotoshare-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	configOnce sync.Once
	testSeq    int64
)

// setupRouterTest 构建带完整路由的测试引擎。
// 路由注册与生产环境保持一致，认证走真实的 JWT 中间件。
func setupRouterTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	configOnce.Do(func() {
		config.InitConfig(t.TempDir())
		gin.SetMode(gin.TestMode)
	})

	gdb := testutils.SetupDB(t)
	repos := repository.NewRepositories(gdb)

	permService := service.NewPermissionService(repos.Photo, repos.Share)
	fileService := service.NewFileService(t.TempDir())
	photoService := service.NewPhotoService(gdb, repos.Photo, permService, fileService)
	shareService := service.NewShareService(repos.Share, repos.User, repos.Photo, permService)
	commentaryService := service.NewCommentaryService(repos.Commentary, repos.Photo, permService)
	albumService := service.NewAlbumService(gdb, repos.Album, repos.AlbumPhoto, repos.Photo, permService)
	userService := service.NewUserService(gdb, repos.User, fileService)
	authService := service.NewAuthService(repos.User)

	h := NewHandlers(authService, userService, photoService, shareService, commentaryService, albumService)

	r := gin.New()
	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	public := api.Group("/photos")
	public.Use(middleware.OptionalJWTAuth())
	public.GET("/:id", h.Photo.GetPhoto)
	public.GET("/:id/permission", h.Photo.EffectivePermission)
	public.GET("/:id/comments", h.Commentary.ListForPhoto)

	authed := api.Group("/photos")
	authed.Use(middleware.JWTAuth())
	authed.DELETE("/:id", h.Photo.Delete)
	authed.POST("/:id/shares", h.Share.Grant)
	authed.GET("/:id/shares", h.Share.ListForPhoto)
	authed.DELETE("/:id/shares/:user_id", h.Share.Revoke)
	authed.POST("/:id/comments", h.Commentary.Add)

	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuth(), middleware.AdminOnly())
	admin.DELETE("/users/:id", h.User.AdminDeleteUser)

	return r, gdb
}

func seedUser(t *testing.T, gdb *gorm.DB, username string, role model.Role) *model.User {
	t.Helper()
	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
		Role:         role,
		Enabled:      true,
	}
	if err := gdb.Create(user).Error; err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}
	return user
}

func seedPhoto(t *testing.T, gdb *gorm.DB, ownerID uint, visibility model.Visibility) *model.Photo {
	t.Helper()
	seq := atomic.AddInt64(&testSeq, 1)
	photo := &model.Photo{
		Title:            fmt.Sprintf("photo-%d", seq),
		OriginalFilename: "original.jpg",
		StorageFilename:  fmt.Sprintf("2026/08/27/h-%d.jpg", seq),
		ContentType:      "image/jpeg",
		Visibility:       visibility,
		OwnerID:          ownerID,
	}
	if err := gdb.Create(photo).Error; err != nil {
		t.Fatalf("创建测试照片失败: %v", err)
	}
	return photo
}

func loginToken(t *testing.T, user *model.User) string {
	t.Helper()
	token, err := utils.GenerateLoginToken(user.ID, user.Username, user.Role == model.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}
	return token
}

// doJSON 发送 JSON 请求，token 为空表示匿名。
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("序列化请求体失败: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("解析响应失败: %v (%s)", err, w.Body.String())
	}
	return body
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("期望状态码 %d，实际为 %d: %s", want, w.Code, w.Body.String())
	}
}
