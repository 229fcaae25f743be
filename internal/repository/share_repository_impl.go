package repository

import (
	"fotoshare-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShareRepository struct {
	db *gorm.DB
}

func (r *ShareRepository) FindByPhotoAndUser(photoID, userID uint) (*model.Share, error) {
	var share model.Share
	if err := r.db.Where("photo_id = ? AND user_id = ?", photoID, userID).First(&share).Error; err != nil {
		return nil, err
	}
	return &share, nil
}

func (r *ShareRepository) FindByPhoto(photoID uint) ([]model.Share, error) {
	var shares []model.Share
	if err := r.db.Where("photo_id = ?", photoID).Order("id").Find(&shares).Error; err != nil {
		return nil, err
	}
	return shares, nil
}

func (r *ShareRepository) FindByUser(userID uint) ([]model.Share, error) {
	var shares []model.Share
	if err := r.db.Where("user_id = ?", userID).Order("id").Find(&shares).Error; err != nil {
		return nil, err
	}
	return shares, nil
}

func (r *ShareRepository) Save(share *model.Share) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "photo_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"permission"}),
	}).Create(share).Error
}

func (r *ShareRepository) DeleteByPhotoAndUser(photoID, userID uint) error {
	return r.db.Where("photo_id = ? AND user_id = ?", photoID, userID).Delete(&model.Share{}).Error
}

func (r *ShareRepository) DeleteByPhoto(photoID uint) error {
	return r.db.Where("photo_id = ?", photoID).Delete(&model.Share{}).Error
}

func (r *ShareRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Share{}).Error
}
