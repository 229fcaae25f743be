package repository

import (
	"fotoshare-server/internal/model"

	"gorm.io/gorm"
)

type PhotoRepository struct {
	db *gorm.DB
}

func (r *PhotoRepository) FindByID(id uint) (*model.Photo, error) {
	var photo model.Photo
	if err := r.db.First(&photo, id).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Photo{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PhotoRepository) FindByOwner(ownerID uint) ([]model.Photo, error) {
	var photos []model.Photo
	if err := r.db.Where("owner_id = ?", ownerID).Order("id desc").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *PhotoRepository) FindPublic() ([]model.Photo, error) {
	var photos []model.Photo
	if err := r.db.Where("visibility = ?", model.VisibilityPublic).Order("id desc").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *PhotoRepository) FindAccessible(userID uint) ([]model.Photo, error) {
	var photos []model.Photo
	err := r.db.
		Where("visibility = ? OR owner_id = ? OR id IN (?)",
			model.VisibilityPublic,
			userID,
			r.db.Model(&model.Share{}).Select("photo_id").Where("user_id = ?", userID),
		).
		Order("id desc").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *PhotoRepository) Create(photo *model.Photo) error {
	return r.db.Create(photo).Error
}

func (r *PhotoRepository) Save(photo *model.Photo) error {
	return r.db.Save(photo).Error
}

func (r *PhotoRepository) Delete(photo *model.Photo) error {
	return r.db.Delete(photo).Error
}
