package models

import (
	"time"
)

type Hospital struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Address   string    `gorm:"size:512" json:"address"`
	Phone     string    `gorm:"size:20" json:"phone"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type HospitalImage struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	HospitalID uint      `gorm:"not null;index" json:"hospital_id"`
	ImageURL   string    `gorm:"size:512;not null" json:"image_url"`
	CreatedBy  *uint     `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}
