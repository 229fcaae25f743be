package service

import (
	"errors"
	"strings"
	"time"

	"fotoshare-server/internal/common"
	"fotoshare-server/internal/model"
	"fotoshare-server/internal/repository"

	"gorm.io/gorm"
)

const maxAlbumNameLength = 100

// AlbumService 相册管理。相册是纯私有的：只有所有者可以查看与修改。
type AlbumService struct {
	db     *gorm.DB
	albums repository.AlbumStore
	links  repository.AlbumPhotoStore
	photos repository.PhotoStore
	perm   *PermissionService
}

func NewAlbumService(db *gorm.DB, albums repository.AlbumStore, links repository.AlbumPhotoStore, photos repository.PhotoStore, perm *PermissionService) *AlbumService {
	return &AlbumService{db: db, albums: albums, links: links, photos: photos, perm: perm}
}

func validateAlbumName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", common.NewValidationError("相册名称不能为空")
	}
	if len([]rune(name)) > maxAlbumNameLength {
		return "", common.NewValidationError("相册名称不能超过 100 字")
	}
	return trimmed, nil
}

// CreateAlbum 创建相册。
func (s *AlbumService) CreateAlbum(name, description string, ownerID uint) (*model.Album, error) {
	trimmed, err := validateAlbumName(name)
	if err != nil {
		return nil, err
	}

	album := &model.Album{
		Name:        trimmed,
		Description: strings.TrimSpace(description),
		OwnerID:     ownerID,
		CreatedAt:   time.Now(),
	}
	if err := s.albums.Create(album); err != nil {
		return nil, err
	}
	return album, nil
}

// GetAlbum 获取相册，仅所有者可见。
func (s *AlbumService) GetAlbum(albumID, userID uint) (*model.Album, error) {
	album, err := s.albums.FindByID(albumID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("相册不存在")
		}
		return nil, err
	}
	if album.OwnerID != userID {
		return nil, common.NewNotFoundError("相册不存在")
	}
	return album, nil
}

// UpdateAlbum 更新相册名称与描述，仅所有者可以修改。
func (s *AlbumService) UpdateAlbum(albumID uint, name, description *string, userID uint) (*model.Album, error) {
	album, err := s.albums.FindByID(albumID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("相册不存在")
		}
		return nil, err
	}
	if album.OwnerID != userID {
		return nil, common.NewForbiddenError("您不是这个相册的所有者")
	}

	if name != nil {
		trimmed, err := validateAlbumName(*name)
		if err != nil {
			return nil, err
		}
		album.Name = trimmed
	}
	if description != nil {
		album.Description = strings.TrimSpace(*description)
	}
	if err := s.albums.Save(album); err != nil {
		return nil, err
	}
	return album, nil
}

// DeleteAlbum 删除相册及其全部照片关联，一个事务内完成。
func (s *AlbumService) DeleteAlbum(albumID, userID uint) error {
	album, err := s.albums.FindByID(albumID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("相册不存在")
		}
		return err
	}
	if album.OwnerID != userID {
		return common.NewForbiddenError("您不是这个相册的所有者")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		repos := repository.NewRepositories(tx)
		if err := repos.AlbumPhoto.DeleteByAlbum(albumID); err != nil {
			return err
		}
		return repos.Album.Delete(album)
	})
}

// ListByOwner 列出用户的全部相册。
func (s *AlbumService) ListByOwner(ownerID uint) ([]model.Album, error) {
	return s.albums.FindByOwner(ownerID)
}

// AddPhoto 将照片加入相册。要求相册所有权以及照片的查看权限。
func (s *AlbumService) AddPhoto(albumID, photoID, userID uint) error {
	album, err := s.albums.FindByID(albumID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("相册不存在")
		}
		return err
	}
	if album.OwnerID != userID {
		return common.NewForbiddenError("您不是这个相册的所有者")
	}

	exists, err := s.photos.ExistsByID(photoID)
	if err != nil {
		return err
	}
	if !exists {
		return common.NewNotFoundError("照片不存在")
	}
	if !s.perm.CanView(photoID, &userID) {
		return common.NewForbiddenError("您没有访问这张照片的权限")
	}

	linked, err := s.links.Exists(albumID, photoID)
	if err != nil {
		return err
	}
	if linked {
		return common.NewValidationError("这张照片已经在相册中")
	}

	return s.links.Create(&model.AlbumPhoto{
		AlbumID: albumID,
		PhotoID: photoID,
		AddedAt: time.Now(),
	})
}

// RemovePhoto 将照片移出相册，关联不存在时为幂等成功。
func (s *AlbumService) RemovePhoto(albumID, photoID, userID uint) error {
	album, err := s.albums.FindByID(albumID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("相册不存在")
		}
		return err
	}
	if album.OwnerID != userID {
		return common.NewForbiddenError("您不是这个相册的所有者")
	}
	return s.links.DeleteByAlbumAndPhoto(albumID, photoID)
}

// GetPhotos 列出相册中的全部照片，仅所有者可见。
func (s *AlbumService) GetPhotos(albumID, userID uint) ([]model.Photo, error) {
	album, err := s.albums.FindByID(albumID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("相册不存在")
		}
		return nil, err
	}
	if album.OwnerID != userID {
		return nil, common.NewNotFoundError("相册不存在")
	}

	links, err := s.links.FindByAlbum(albumID)
	if err != nil {
		return nil, err
	}
	photos := make([]model.Photo, 0, len(links))
	for _, link := range links {
		photo, err := s.photos.FindByID(link.PhotoID)
		if err != nil {
			continue
		}
		photos = append(photos, *photo)
	}
	return photos, nil
}

// CountPhotos 统计相册中的照片数量。
func (s *AlbumService) CountPhotos(albumID uint) (int64, error) {
	return s.links.CountByAlbum(albumID)
}

// AlbumsContainingPhoto 列出用户自己的、包含指定照片的相册。
func (s *AlbumService) AlbumsContainingPhoto(photoID, userID uint) ([]model.Album, error) {
	links, err := s.links.FindByPhoto(photoID)
	if err != nil {
		return nil, err
	}
	albums := make([]model.Album, 0, len(links))
	for _, link := range links {
		album, err := s.albums.FindByID(link.AlbumID)
		if err != nil {
			continue
		}
		if album.OwnerID == userID {
			albums = append(albums, *album)
		}
	}
	return albums, nil
}
