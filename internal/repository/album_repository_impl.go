package repository

import (
	"fotoshare-server/internal/model"

	"gorm.io/gorm"
)

type AlbumRepository struct {
	db *gorm.DB
}

func (r *AlbumRepository) FindByID(id uint) (*model.Album, error) {
	var album model.Album
	if err := r.db.First(&album, id).Error; err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *AlbumRepository) FindByOwner(ownerID uint) ([]model.Album, error) {
	var albums []model.Album
	if err := r.db.Where("owner_id = ?", ownerID).Order("id").Find(&albums).Error; err != nil {
		return nil, err
	}
	return albums, nil
}

func (r *AlbumRepository) Create(album *model.Album) error {
	return r.db.Create(album).Error
}

func (r *AlbumRepository) Save(album *model.Album) error {
	return r.db.Save(album).Error
}

func (r *AlbumRepository) Delete(album *model.Album) error {
	return r.db.Delete(album).Error
}

func (r *AlbumRepository) DeleteByOwner(ownerID uint) error {
	return r.db.Where("owner_id = ?", ownerID).Delete(&model.Album{}).Error
}

type AlbumPhotoRepository struct {
	db *gorm.DB
}

func (r *AlbumPhotoRepository) FindByAlbum(albumID uint) ([]model.AlbumPhoto, error) {
	var links []model.AlbumPhoto
	if err := r.db.Where("album_id = ?", albumID).Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *AlbumPhotoRepository) FindByPhoto(photoID uint) ([]model.AlbumPhoto, error) {
	var links []model.AlbumPhoto
	if err := r.db.Where("photo_id = ?", photoID).Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *AlbumPhotoRepository) Exists(albumID, photoID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.AlbumPhoto{}).
		Where("album_id = ? AND photo_id = ?", albumID, photoID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AlbumPhotoRepository) CountByAlbum(albumID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.AlbumPhoto{}).Where("album_id = ?", albumID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AlbumPhotoRepository) Create(link *model.AlbumPhoto) error {
	return r.db.Create(link).Error
}

func (r *AlbumPhotoRepository) DeleteByAlbumAndPhoto(albumID, photoID uint) error {
	return r.db.Where("album_id = ? AND photo_id = ?", albumID, photoID).Delete(&model.AlbumPhoto{}).Error
}

func (r *AlbumPhotoRepository) DeleteByAlbum(albumID uint) error {
	return r.db.Where("album_id = ?", albumID).Delete(&model.AlbumPhoto{}).Error
}

func (r *AlbumPhotoRepository) DeleteByPhoto(photoID uint) error {
	return r.db.Where("photo_id = ?", photoID).Delete(&model.AlbumPhoto{}).Error
}
