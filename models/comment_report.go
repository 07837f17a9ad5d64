package models

import (
	"time"
)

type CommentReport struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CommentID  uint      `gorm:"not null;uniqueIndex:idx_comment_reports_comment_user" json:"comment_id"`
	ReportedBy uint      `gorm:"not null;uniqueIndex:idx_comment_reports_comment_user" json:"reported_by"`
	Reason     string    `gorm:"size:255;not null" json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}
