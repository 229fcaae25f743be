package model

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"unique;not null;size:50"`
	Email        string    `json:"email" gorm:"unique;not null;size:255"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" gorm:"type:varchar(10);not null;default:USER"`
	Enabled      bool      `json:"enabled" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at"`
}
