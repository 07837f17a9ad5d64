package services

import (
	"errors"
	"net/http"
	"strings"

	"github.com/petcare-hub/api-go/apierr"
	"github.com/petcare-hub/api-go/models"
	"gorm.io/gorm"
)

// InteractionService handles likes, reply listing and comment
// moderation reports.
type InteractionService struct {
	DB *gorm.DB
}

func NewInteractionService(db *gorm.DB) *InteractionService {
	return &InteractionService{DB: db}
}

const defaultReportReason = "No reason"

// ToggleLike flips the like relation for (userID, postID) and reports
// the resulting state. The counter is recomputed from the live rows on
// every call, so a stale value self-heals on the next toggle.
func (s *InteractionService) ToggleLike(postID, userID uint) (bool, error) {
	var post models.PetPost
	err := s.DB.Where("id = ? AND is_deleted = ?", postID, false).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, apierr.NewNotFound("Post not found")
	}
	if err != nil {
		return false, internalError("toggle like: get post", err)
	}

	liked := false
	var existing models.PetPostLike
	err = s.DB.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		like := models.PetPostLike{UserID: userID, PostID: postID}
		if err := s.DB.Create(&like).Error; err != nil {
			return false, internalError("toggle like: create", err)
		}
		liked = true
	case err != nil:
		return false, internalError("toggle like: lookup", err)
	default:
		if err := s.DB.Delete(&existing).Error; err != nil {
			return false, internalError("toggle like: delete", err)
		}
	}

	if err := s.refreshLikeCount(postID); err != nil {
		return false, err
	}

	return liked, nil
}

func (s *InteractionService) ReportComment(commentID, userID uint, reason string) (*models.CommentReport, error) {
	var comment models.PetPostComment
	err := s.DB.Where("id = ? AND is_deleted = ?", commentID, false).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NewNotFound("Comment not found")
	}
	if err != nil {
		return nil, internalError("report comment: get comment", err)
	}

	var reported int64
	if err := s.DB.Model(&models.CommentReport{}).
		Where("comment_id = ? AND reported_by = ?", commentID, userID).
		Count(&reported).Error; err != nil {
		return nil, internalError("report comment: duplicate check", err)
	}
	if reported > 0 {
		return nil, apierr.New(http.StatusBadRequest, "You have already reported this comment")
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = defaultReportReason
	}

	report := models.CommentReport{
		CommentID:  commentID,
		ReportedBy: userID,
		Reason:     reason,
	}
	if err := s.DB.Create(&report).Error; err != nil {
		return nil, internalError("report comment: create", err)
	}

	count := s.DB.Model(&models.CommentReport{}).
		Select("COUNT(*)").
		Where("comment_id = ?", commentID)
	if err := s.DB.Model(&models.PetPostComment{}).Where("id = ?", commentID).
		Update("report_count", count).Error; err != nil {
		return nil, internalError("report comment: refresh count", err)
	}

	return &report, nil
}

// GetCommentReplies lists the live direct children of a comment,
// oldest first.
func (s *InteractionService) GetCommentReplies(commentID uint, params models.ListParams) ([]models.PetPostComment, int64, error) {
	var parent models.PetPostComment
	err := s.DB.Where("id = ? AND is_deleted = ?", commentID, false).First(&parent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, apierr.NewNotFound("Comment not found")
	}
	if err != nil {
		return nil, 0, internalError("get replies: get parent", err)
	}

	params.Normalize()
	db := s.DB.Model(&models.PetPostComment{}).
		Where("parent_id = ? AND is_deleted = ?", commentID, false)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, internalError("get replies: count", err)
	}

	var replies []models.PetPostComment
	if err := db.Preload("User").Order("created_at ASC").
		Offset(params.Offset()).Limit(params.Limit).Find(&replies).Error; err != nil {
		return nil, 0, internalError("get replies: list", err)
	}

	return replies, total, nil
}

func (s *InteractionService) refreshLikeCount(postID uint) error {
	count := s.DB.Model(&models.PetPostLike{}).
		Select("COUNT(*)").
		Where("post_id = ?", postID)

	if err := s.DB.Model(&models.PetPost{}).Where("id = ?", postID).
		Update("likes_count", count).Error; err != nil {
		return internalError("refresh like count", err)
	}
	return nil
}
