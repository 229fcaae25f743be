package repository

import "fotoshare-server/internal/model"

type AlbumStore interface {
	FindByID(id uint) (*model.Album, error)
	FindByOwner(ownerID uint) ([]model.Album, error)
	Create(album *model.Album) error
	Save(album *model.Album) error
	Delete(album *model.Album) error
	DeleteByOwner(ownerID uint) error
}

type AlbumPhotoStore interface {
	FindByAlbum(albumID uint) ([]model.AlbumPhoto, error)
	FindByPhoto(photoID uint) ([]model.AlbumPhoto, error)
	Exists(albumID, photoID uint) (bool, error)
	CountByAlbum(albumID uint) (int64, error)
	Create(link *model.AlbumPhoto) error
	DeleteByAlbumAndPhoto(albumID, photoID uint) error
	DeleteByAlbum(albumID uint) error
	DeleteByPhoto(photoID uint) error
}
