package model

import "time"

type Commentary struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	PhotoID   uint      `json:"photo_id" gorm:"not null;index"`
	AuthorID  uint      `json:"author_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}
