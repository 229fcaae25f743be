package service

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"fotoshare-server/internal/common"
	"fotoshare-server/internal/config"
	"fotoshare-server/internal/model"
	"fotoshare-server/internal/repository"
	"fotoshare-server/internal/utils"

	"gorm.io/gorm"
)

// PhotoService 照片上传、查询与删除。
// 删除是级联的：依赖记录（评论、分享、相册关联）与照片记录在同一事务内移除，
// 物理文件删除尽力而为，失败只记日志。
type PhotoService struct {
	db     *gorm.DB
	photos repository.PhotoStore
	perm   *PermissionService
	files  FileStore
}

func NewPhotoService(db *gorm.DB, photos repository.PhotoStore, perm *PermissionService, files FileStore) *PhotoService {
	return &PhotoService{db: db, photos: photos, perm: perm, files: files}
}

// ValidatePhotoFile 验证上传的图片文件（大小、后缀、内容）。
// 返回检测到的 MIME 类型与小写扩展名。
func ValidatePhotoFile(file *multipart.FileHeader) (string, string, error) {
	maxSizeMB := config.Get().Upload.MaxSizeMB
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	if file.Size > int64(maxSizeMB)*1024*1024 {
		return "", "", common.NewValidationError(fmt.Sprintf("文件大小不能超过 %dMB", maxSizeMB))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		return "", "", common.NewValidationError("无法识别文件类型")
	}

	allowed := false
	for _, allowExt := range strings.Split(config.Get().Upload.AllowExtensions, ",") {
		if strings.TrimSpace(strings.ToLower(allowExt)) == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", "", common.NewValidationError("不支持的文件类型: " + ext)
	}

	// 检查文件内容 (Magic Bytes)
	src, err := file.Open()
	if err != nil {
		return "", "", common.NewValidationError("无法打开上传的文件")
	}
	defer func() { _ = src.Close() }()

	contentType, valid, msg := utils.DetectImageContent(src, ext)
	if !valid {
		return "", "", common.NewValidationError(msg)
	}

	return contentType, ext, nil
}

// Upload 处理照片上传：验证文件、写入存储、创建记录。
// 标题为空时使用原始文件名；可见性为空时默认 PRIVATE。
func (s *PhotoService) Upload(file *multipart.FileHeader, title, description string, visibility model.Visibility, ownerID uint) (*model.Photo, error) {
	contentType, ext, err := ValidatePhotoFile(file)
	if err != nil {
		return nil, err
	}

	if visibility == "" {
		visibility = model.VisibilityPrivate
	}
	if !visibility.Valid() {
		return nil, common.NewValidationError("无效的可见性: " + string(visibility))
	}
	if title == "" {
		title = file.Filename
	}

	reference, err := s.files.Save(file, ext)
	if err != nil {
		log.Printf("保存上传文件失败: %v", err)
		return nil, common.NewInternalError("保存文件失败")
	}

	photo := &model.Photo{
		Title:            title,
		Description:      description,
		OriginalFilename: file.Filename,
		StorageFilename:  reference,
		ContentType:      contentType,
		FileSize:         file.Size,
		Visibility:       visibility,
		OwnerID:          ownerID,
		CreatedAt:        time.Now(),
	}
	if err := s.photos.Create(photo); err != nil {
		// 记录创建失败时回收已写入的文件
		if !s.files.Delete(reference) {
			log.Printf("⚠️ 无法清理文件: %s", reference)
		}
		return nil, err
	}
	return photo, nil
}

// GetPhoto 获取照片，带权限检查。
// 不可见与不存在统一返回 NotFound，不泄露照片是否存在。
func (s *PhotoService) GetPhoto(photoID uint, userID *uint) (*model.Photo, error) {
	if !s.perm.CanView(photoID, userID) {
		return nil, common.NewNotFoundError("照片不存在")
	}
	return s.photos.FindByID(photoID)
}

// GetPhotoFile 获取照片文件的磁盘路径与 MIME 类型，带权限检查。
func (s *PhotoService) GetPhotoFile(photoID uint, userID *uint) (string, string, error) {
	photo, err := s.GetPhoto(photoID, userID)
	if err != nil {
		return "", "", err
	}
	path, err := s.files.Resolve(photo.StorageFilename)
	if err != nil {
		return "", "", common.NewInternalError("无法定位照片文件")
	}
	return path, photo.ContentType, nil
}

// UpdatePhoto 更新照片元数据（标题、描述），要求 ADMIN 能力。
func (s *PhotoService) UpdatePhoto(photoID uint, title, description *string, userID uint) (*model.Photo, error) {
	if !s.perm.CanAdmin(photoID, &userID) {
		return nil, common.NewForbiddenError("您没有修改这张照片的权限")
	}
	photo, err := s.photos.FindByID(photoID)
	if err != nil {
		return nil, common.NewNotFoundError("照片不存在")
	}
	if title != nil {
		photo.Title = *title
	}
	if description != nil {
		photo.Description = *description
	}
	if err := s.photos.Save(photo); err != nil {
		return nil, err
	}
	return photo, nil
}

// ChangeVisibility 修改照片可见性。所有者或 ADMIN 分享持有者可以修改。
func (s *PhotoService) ChangeVisibility(photoID uint, visibility model.Visibility, userID uint) (*model.Photo, error) {
	if !visibility.Valid() {
		return nil, common.NewValidationError("无效的可见性: " + string(visibility))
	}
	if !s.perm.CanAdmin(photoID, &userID) {
		return nil, common.NewForbiddenError("您没有修改这张照片可见性的权限")
	}
	photo, err := s.photos.FindByID(photoID)
	if err != nil {
		return nil, common.NewNotFoundError("照片不存在")
	}
	photo.Visibility = visibility
	if err := s.photos.Save(photo); err != nil {
		return nil, err
	}
	return photo, nil
}

// ListByOwner 列出某用户的全部照片。
func (s *PhotoService) ListByOwner(ownerID uint) ([]model.Photo, error) {
	return s.photos.FindByOwner(ownerID)
}

// ListAccessible 列出用户可见的全部照片；匿名用户只看到公开照片。
func (s *PhotoService) ListAccessible(userID *uint) ([]model.Photo, error) {
	if userID == nil {
		return s.photos.FindPublic()
	}
	return s.photos.FindAccessible(*userID)
}

// EffectivePermission 透传权限解析结果。
func (s *PhotoService) EffectivePermission(photoID uint, userID *uint) (model.Permission, bool) {
	return s.perm.EffectivePermission(photoID, userID)
}

// DeletePhoto 删除照片及其全部依赖记录。
// 只有所有者可以删除——ADMIN 分享持有者可以编辑但不能销毁根实体。
// 删除顺序：评论 → 分享 → 相册关联 → 物理文件（尽力而为）→ 照片记录，
// 整体在一个事务内执行。
func (s *PhotoService) DeletePhoto(photoID, requesterID uint) error {
	photo, err := s.photos.FindByID(photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("照片不存在")
		}
		return err
	}
	if photo.OwnerID != requesterID {
		return common.NewForbiddenError("只有所有者可以删除这张照片")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		repos := repository.NewRepositories(tx)
		if err := repos.Commentary.DeleteByPhoto(photoID); err != nil {
			return err
		}
		if err := repos.Share.DeleteByPhoto(photoID); err != nil {
			return err
		}
		if err := repos.AlbumPhoto.DeleteByPhoto(photoID); err != nil {
			return err
		}
		if !s.files.Delete(photo.StorageFilename) {
			log.Printf("⚠️ 无法删除照片文件: %s", photo.StorageFilename)
		}
		return repos.Photo.Delete(photo)
	})
}
