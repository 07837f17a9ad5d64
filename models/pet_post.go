package models

import (
	"time"
)

// Pet types accepted for a gallery post.
const (
	PetTypeDog   = "DOG"
	PetTypeCat   = "CAT"
	PetTypeOther = "OTHER"
)

func ValidPetType(t string) bool {
	switch t {
	case PetTypeDog, PetTypeCat, PetTypeOther:
		return true
	}
	return false
}

type PetPost struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	User        User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Caption     string `gorm:"size:255;not null" json:"caption"`
	Description string `gorm:"type:text" json:"description"`
	PetType     string `gorm:"size:20;not null" json:"pet_type"`
	// Tags is stored as a comma-separated list, filtered with LIKE.
	Tags          string    `gorm:"size:255" json:"tags"`
	ImageURL      string    `gorm:"size:512" json:"image_url"`
	LikesCount    int64     `gorm:"not null;default:0" json:"likes_count"`
	CommentsCount int64     `gorm:"not null;default:0" json:"comments_count"`
	IsDeleted     bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
