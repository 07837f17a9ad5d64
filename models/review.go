package models

import (
	"time"
)

type Review struct {
	ID         uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint     `gorm:"not null;index" json:"user_id"`
	User       User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	HospitalID uint     `gorm:"not null;index" json:"hospital_id"`
	Hospital   Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Rating     int      `gorm:"not null" json:"rating"`
	Content    string   `gorm:"type:text" json:"content"`
	PhotoURL   string   `gorm:"size:512" json:"photo_url"`
	// ReportCount tracks moderation flags; the row is hidden from
	// default reads only via IsDeleted, never automatically.
	ReportCount int64     `gorm:"not null;default:0" json:"report_count"`
	IsDeleted   bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ReviewReport struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ReviewID   uint      `gorm:"not null;uniqueIndex:idx_review_reports_review_user" json:"review_id"`
	ReportedBy uint      `gorm:"not null;uniqueIndex:idx_review_reports_review_user" json:"reported_by"`
	Reason     string    `gorm:"size:255;not null" json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}
