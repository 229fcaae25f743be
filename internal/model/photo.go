package model

import "time"

type Photo struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Title            string     `json:"title" gorm:"size:255"`
	Description      string     `json:"description" gorm:"type:text"`
	OriginalFilename string     `json:"original_filename" gorm:"not null"`
	StorageFilename  string     `json:"-" gorm:"not null;unique"`
	ContentType      string     `json:"content_type" gorm:"not null;size:50"`
	FileSize         int64      `json:"file_size"`
	Visibility       Visibility `json:"visibility" gorm:"type:varchar(10);not null;default:PRIVATE;index"`
	OwnerID          uint       `json:"owner_id" gorm:"not null;index"`
	CreatedAt        time.Time  `json:"created_at"`
}
