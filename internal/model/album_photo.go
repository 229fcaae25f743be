package model

import "time"

// AlbumPhoto 相册与照片的多对多关联，复合主键，无独立身份。
type AlbumPhoto struct {
	AlbumID uint      `json:"album_id" gorm:"primaryKey;autoIncrement:false"`
	PhotoID uint      `json:"photo_id" gorm:"primaryKey;autoIncrement:false;index"`
	AddedAt time.Time `json:"added_at"`
}
