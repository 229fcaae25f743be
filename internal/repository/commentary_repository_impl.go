package repository

import (
	"fotoshare-server/internal/model"

	"gorm.io/gorm"
)

type CommentaryRepository struct {
	db *gorm.DB
}

func (r *CommentaryRepository) FindByID(id uint) (*model.Commentary, error) {
	var comment model.Commentary
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentaryRepository) FindByPhoto(photoID uint) ([]model.Commentary, error) {
	var comments []model.Commentary
	if err := r.db.Where("photo_id = ?", photoID).Order("id").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentaryRepository) FindByAuthor(authorID uint) ([]model.Commentary, error) {
	var comments []model.Commentary
	if err := r.db.Where("author_id = ?", authorID).Order("id").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentaryRepository) CountByPhoto(photoID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Commentary{}).Where("photo_id = ?", photoID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CommentaryRepository) Create(comment *model.Commentary) error {
	return r.db.Create(comment).Error
}

func (r *CommentaryRepository) Save(comment *model.Commentary) error {
	return r.db.Save(comment).Error
}

func (r *CommentaryRepository) Delete(comment *model.Commentary) error {
	return r.db.Delete(comment).Error
}

func (r *CommentaryRepository) DeleteByPhoto(photoID uint) error {
	return r.db.Where("photo_id = ?", photoID).Delete(&model.Commentary{}).Error
}

func (r *CommentaryRepository) DeleteByAuthor(authorID uint) error {
	return r.db.Where("author_id = ?", authorID).Delete(&model.Commentary{}).Error
}
