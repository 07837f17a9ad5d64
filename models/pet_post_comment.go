package models

import (
	"time"
)

type PetPostComment struct {
	ID     uint `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID uint `gorm:"not null;index" json:"post_id"`
	UserID uint `gorm:"not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	// ParentID is set on replies; a reply's parent must belong to the
	// same post.
	ParentID    *uint     `gorm:"index" json:"parent_id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	IsDeleted   bool      `gorm:"not null;default:false" json:"is_deleted"`
	ReportCount int64     `gorm:"not null;default:0" json:"report_count"`
	CreatedAt   time.Time `json:"created_at"`
}
