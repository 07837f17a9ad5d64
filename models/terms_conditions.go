package models

import (
	"time"
)

type TermsConditions struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Version       int64     `gorm:"not null;default:1;index" json:"version"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	EffectiveDate time.Time `gorm:"not null" json:"effective_date"`
	LastUpdatedBy *uint     `json:"last_updated_by"`
	IsDeleted     bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (TermsConditions) TableName() string {
	return "terms_conditions"
}
