package models

import (
	"time"
)

// PetPostLike existence is the only signal: a row means the user has
// liked the post. At most one row per (user, post).
type PetPostLike struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_pet_post_likes_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_pet_post_likes_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
