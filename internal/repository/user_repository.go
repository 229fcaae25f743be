package repository

import "fotoshare-server/internal/model"

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	ExistsByID(id uint) (bool, error)
	FindAll() ([]model.User, error)
	Create(user *model.User) error
	Save(user *model.User) error
	Delete(user *model.User) error
}
