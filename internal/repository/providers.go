package repository

import (
	"gorm.io/gorm"
)

type Repositories struct {
	User       UserStore
	Photo      PhotoStore
	Share      ShareStore
	Commentary CommentaryStore
	Album      AlbumStore
	AlbumPhoto AlbumPhotoStore
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}

func NewPhotoRepository(db *gorm.DB) PhotoStore {
	return &PhotoRepository{db: db}
}

func NewShareRepository(db *gorm.DB) ShareStore {
	return &ShareRepository{db: db}
}

func NewCommentaryRepository(db *gorm.DB) CommentaryStore {
	return &CommentaryRepository{db: db}
}

func NewAlbumRepository(db *gorm.DB) AlbumStore {
	return &AlbumRepository{db: db}
}

func NewAlbumPhotoRepository(db *gorm.DB) AlbumPhotoStore {
	return &AlbumPhotoRepository{db: db}
}

// NewRepositories 基于同一个数据库句柄构建全部仓储。
// 传入事务句柄时，得到的一组仓储共享该事务。
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Photo:      NewPhotoRepository(db),
		Share:      NewShareRepository(db),
		Commentary: NewCommentaryRepository(db),
		Album:      NewAlbumRepository(db),
		AlbumPhoto: NewAlbumPhotoRepository(db),
	}
}
