package model

import "time"

type Album struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:100"`
	Description string    `json:"description" gorm:"type:text"`
	OwnerID     uint      `json:"owner_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
}
