package model

import "time"

// Share 显式授权记录：同一 (photo, user) 至多一条，重复授权覆盖权限。
type Share struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	PhotoID    uint       `json:"photo_id" gorm:"not null;uniqueIndex:idx_share_photo_user"`
	UserID     uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_share_photo_user;index"`
	Permission Permission `json:"permission" gorm:"type:varchar(10);not null"`
	CreatedAt  time.Time  `json:"created_at"`
}
