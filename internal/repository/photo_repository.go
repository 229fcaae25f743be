package repository

import "fotoshare-server/internal/model"

type PhotoStore interface {
	FindByID(id uint) (*model.Photo, error)
	ExistsByID(id uint) (bool, error)
	FindByOwner(ownerID uint) ([]model.Photo, error)
	FindPublic() ([]model.Photo, error)
	// FindAccessible 返回用户可见的全部照片：自有、公开、或已分享给该用户。
	FindAccessible(userID uint) ([]model.Photo, error)
	Create(photo *model.Photo) error
	Save(photo *model.Photo) error
	Delete(photo *model.Photo) error
}
