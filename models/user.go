package models

import (
	"time"
)

// User rows are managed by the identity platform; this service only
// reads them for author joins.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName  string    `gorm:"size:255" json:"full_name"`
	Avatar    string    `gorm:"size:512" json:"avatar"`
	Role      string    `gorm:"size:20;default:'GENERAL_USER'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
