package repository

import "fotoshare-server/internal/model"

type ShareStore interface {
	FindByPhotoAndUser(photoID, userID uint) (*model.Share, error)
	FindByPhoto(photoID uint) ([]model.Share, error)
	FindByUser(userID uint) ([]model.Share, error)
	// Save 以 (photo_id, user_id) 为冲突键执行 upsert：
	// 已存在时仅覆盖 permission，保证并发授权收敛为单行。
	Save(share *model.Share) error
	DeleteByPhotoAndUser(photoID, userID uint) error
	DeleteByPhoto(photoID uint) error
	DeleteByUser(userID uint) error
}
