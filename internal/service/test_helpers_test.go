package service

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"sync"
	"sync/atomic"
	"testing"

	"fotoshare-server/internal/common"
	"fotoshare-server/internal/config"
	"fotoshare-server/internal/model"
	"fotoshare-server/internal/repository"
	"fotoshare-server/internal/testutils"

	"gorm.io/gorm"
)

var (
	configOnce sync.Once
	testSeq    int64

	testPermService       *PermissionService
	testFileService       *FileService
	testPhotoService      *PhotoService
	testShareService      *ShareService
	testCommentaryService *CommentaryService
	testAlbumService      *AlbumService
	testUserService       *UserService
	testAuthService       *AuthService
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	configOnce.Do(func() { config.InitConfig("") })

	gdb := testutils.SetupDB(t)
	repos := repository.NewRepositories(gdb)

	testPermService = NewPermissionService(repos.Photo, repos.Share)
	testFileService = NewFileService(t.TempDir())
	testPhotoService = NewPhotoService(gdb, repos.Photo, testPermService, testFileService)
	testShareService = NewShareService(repos.Share, repos.User, repos.Photo, testPermService)
	testCommentaryService = NewCommentaryService(repos.Commentary, repos.Photo, testPermService)
	testAlbumService = NewAlbumService(gdb, repos.Album, repos.AlbumPhoto, repos.Photo, testPermService)
	testUserService = NewUserService(gdb, repos.User, testFileService)
	testAuthService = NewAuthService(repos.User)
	return gdb
}

func nextSeq() int64 {
	return atomic.AddInt64(&testSeq, 1)
}

func assertServiceErrorCode(t *testing.T, err error, code common.ErrorCode) *common.ServiceError {
	t.Helper()
	serviceErr, ok := common.AsServiceError(err)
	if !ok {
		t.Fatalf("期望 ServiceError，实际为: %v", err)
	}
	if serviceErr.Code != code {
		t.Fatalf("期望错误码 %q，实际为 %q (%s)", code, serviceErr.Code, serviceErr.Message)
	}
	return serviceErr
}

func createTestUser(t *testing.T, gdb *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
		Role:         model.RoleUser,
		Enabled:      true,
	}
	if err := gdb.Create(user).Error; err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}
	return user
}

func createTestPhoto(t *testing.T, gdb *gorm.DB, ownerID uint, visibility model.Visibility) *model.Photo {
	t.Helper()
	seq := nextSeq()
	photo := &model.Photo{
		Title:            fmt.Sprintf("photo-%d", seq),
		OriginalFilename: "original.jpg",
		StorageFilename:  fmt.Sprintf("2026/08/27/test-%d.jpg", seq),
		ContentType:      "image/jpeg",
		FileSize:         1024,
		Visibility:       visibility,
		OwnerID:          ownerID,
	}
	if err := gdb.Create(photo).Error; err != nil {
		t.Fatalf("创建测试照片失败: %v", err)
	}
	return photo
}

// makeFileHeader 通过 multipart 往返构造真实的 *multipart.FileHeader。
func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("构造表单失败: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("写入表单失败: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("关闭表单失败: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("解析表单失败: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("编码 PNG 失败: %v", err)
	}
	return buf.Bytes()
}
