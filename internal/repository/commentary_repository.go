package repository

import "fotoshare-server/internal/model"

type CommentaryStore interface {
	FindByID(id uint) (*model.Commentary, error)
	FindByPhoto(photoID uint) ([]model.Commentary, error)
	FindByAuthor(authorID uint) ([]model.Commentary, error)
	CountByPhoto(photoID uint) (int64, error)
	Create(comment *model.Commentary) error
	Save(comment *model.Commentary) error
	Delete(comment *model.Commentary) error
	DeleteByPhoto(photoID uint) error
	DeleteByAuthor(authorID uint) error
}
