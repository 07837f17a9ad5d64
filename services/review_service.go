package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/petcare-hub/api-go/apierr"
	"github.com/petcare-hub/api-go/models"
	"github.com/petcare-hub/api-go/storage"
	"gorm.io/gorm"
)

// ReviewService manages hospital reviews and their moderation reports.
type ReviewService struct {
	DB     *gorm.DB
	Images storage.ImageStore
}

func NewReviewService(db *gorm.DB, images storage.ImageStore) *ReviewService {
	return &ReviewService{DB: db, Images: images}
}

const reviewBucket = "reviews"

type ReviewInput struct {
	Rating  int
	Content string
}

type ReviewListQuery struct {
	models.ListParams
	HospitalID uint
	UserID     uint
}

type HospitalStats struct {
	TotalReviews  int64   `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
}

func validateReviewInput(input ReviewInput, upload *storage.Upload, isUpdate bool) *apierr.ApiError {
	var errs []string

	if !isUpdate && input.Rating == 0 {
		errs = append(errs, "Rating is required")
	} else if input.Rating != 0 && (input.Rating < 1 || input.Rating > 5) {
		errs = append(errs, "Rating must be between 1 and 5")
	}

	if content := strings.TrimSpace(input.Content); content != "" && utf8.RuneCountInString(content) < 10 {
		errs = append(errs, "Review content must be at least 10 characters")
	}

	if upload != nil {
		errs = append(errs, storage.ValidateImage(*upload)...)
	}

	if len(errs) > 0 {
		return apierr.NewValidation("Invalid data", errs)
	}
	return nil
}

func (s *ReviewService) CreateReview(ctx context.Context, hospitalID, userID uint, input ReviewInput, upload *storage.Upload) (*models.Review, error) {
	canReview, err := s.CanUserReview(userID, hospitalID)
	if err != nil {
		return nil, err
	}
	if !canReview {
		return nil, apierr.New(http.StatusBadRequest, "You have already reviewed this hospital")
	}

	if err := validateReviewInput(input, upload, false); err != nil {
		return nil, err
	}

	photoURL := ""
	if upload != nil {
		photoURL, err = s.Images.Store(ctx, *upload, reviewBucket)
		if err != nil {
			return nil, apierr.From(err)
		}
	}

	review := models.Review{
		UserID:     userID,
		HospitalID: hospitalID,
		Rating:     input.Rating,
		Content:    strings.TrimSpace(input.Content),
		PhotoURL:   photoURL,
	}

	if err := s.DB.Create(&review).Error; err != nil {
		storage.Cleanup(ctx, s.Images, photoURL)
		return nil, internalError("create review", err)
	}

	return &review, nil
}

func (s *ReviewService) GetReviews(q ReviewListQuery) ([]models.Review, int64, error) {
	q.Normalize()

	db := s.DB.Model(&models.Review{}).Where("is_deleted = ?", false)
	if q.HospitalID != 0 {
		db = db.Where("hospital_id = ?", q.HospitalID)
	}
	if q.UserID != 0 {
		db = db.Where("user_id = ?", q.UserID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, internalError("count reviews", err)
	}

	var reviews []models.Review
	if err := db.Preload("User").Preload("Hospital").Order("created_at DESC").
		Offset(q.Offset()).Limit(q.Limit).Find(&reviews).Error; err != nil {
		return nil, 0, internalError("list reviews", err)
	}

	return reviews, total, nil
}

func (s *ReviewService) GetReviewByID(id uint) (*models.Review, error) {
	var review models.Review
	err := s.DB.Preload("User").Preload("Hospital").
		Where("id = ? AND is_deleted = ?", id, false).First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NewNotFound("Review not found")
	}
	if err != nil {
		return nil, internalError("get review", err)
	}
	return &review, nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, id, userID uint, input ReviewInput, upload *storage.Upload) (*models.Review, error) {
	review, err := s.GetReviewByID(id)
	if err != nil {
		return nil, err
	}

	if review.UserID != userID {
		return nil, apierr.NewForbidden("You do not have permission to edit this review")
	}

	if err := validateReviewInput(input, upload, true); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.Rating != 0 {
		updates["rating"] = input.Rating
	}
	if input.Content != "" {
		updates["content"] = strings.TrimSpace(input.Content)
	}

	oldPhotoURL := review.PhotoURL
	newPhotoURL := ""
	if upload != nil {
		newPhotoURL, err = s.Images.Store(ctx, *upload, reviewBucket)
		if err != nil {
			return nil, apierr.From(err)
		}
		updates["photo_url"] = newPhotoURL
	}

	if len(updates) > 0 {
		if err := s.DB.Model(review).Updates(updates).Error; err != nil {
			storage.Cleanup(ctx, s.Images, newPhotoURL)
			return nil, internalError("update review", err)
		}
	}

	if newPhotoURL != "" && oldPhotoURL != "" && oldPhotoURL != newPhotoURL {
		storage.Cleanup(ctx, s.Images, oldPhotoURL)
	}

	return s.GetReviewByID(id)
}

func (s *ReviewService) ReportReview(reviewID, userID uint, reason string) (*models.ReviewReport, error) {
	if _, err := s.GetReviewByID(reviewID); err != nil {
		return nil, err
	}

	var reported int64
	if err := s.DB.Model(&models.ReviewReport{}).
		Where("review_id = ? AND reported_by = ?", reviewID, userID).
		Count(&reported).Error; err != nil {
		return nil, internalError("report review: duplicate check", err)
	}
	if reported > 0 {
		return nil, apierr.New(http.StatusBadRequest, "You have already reported this review")
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = defaultReportReason
	}

	report := models.ReviewReport{
		ReviewID:   reviewID,
		ReportedBy: userID,
		Reason:     reason,
	}
	if err := s.DB.Create(&report).Error; err != nil {
		return nil, internalError("report review: create", err)
	}

	count := s.DB.Model(&models.ReviewReport{}).
		Select("COUNT(*)").
		Where("review_id = ?", reviewID)
	if err := s.DB.Model(&models.Review{}).Where("id = ?", reviewID).
		Update("report_count", count).Error; err != nil {
		return nil, internalError("report review: refresh count", err)
	}

	return &report, nil
}

// ToggleSoftDelete flips the review's deleted flag, so it also
// restores a previously hidden review.
func (s *ReviewService) ToggleSoftDelete(id, userID uint, isAdmin bool) (*models.Review, error) {
	var review models.Review
	err := s.DB.First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NewNotFound("Review not found")
	}
	if err != nil {
		return nil, internalError("toggle review delete", err)
	}

	if !isAdmin && review.UserID != userID {
		return nil, apierr.NewForbidden("You do not have permission to modify this review")
	}

	hidden := !review.IsDeleted
	if err := s.DB.Model(&review).Update("is_deleted", hidden).Error; err != nil {
		return nil, internalError("toggle review delete", err)
	}
	review.IsDeleted = hidden

	return &review, nil
}

// DeleteReview soft-deletes; the photo stays for a possible restore.
func (s *ReviewService) DeleteReview(id, userID uint, isAdmin bool) error {
	review, err := s.GetReviewByID(id)
	if err != nil {
		return err
	}

	if !isAdmin && review.UserID != userID {
		return apierr.NewForbidden("You do not have permission to delete this review")
	}

	if err := s.DB.Model(review).Update("is_deleted", true).Error; err != nil {
		return internalError("delete review", err)
	}
	return nil
}

// HardDeleteReview removes the row, its reports and its photo.
func (s *ReviewService) HardDeleteReview(ctx context.Context, id uint) error {
	var review models.Review
	err := s.DB.First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierr.NewNotFound("Review not found")
	}
	if err != nil {
		return internalError("hard delete review", err)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", review.ID).Delete(&models.ReviewReport{}).Error; err != nil {
			return err
		}
		return tx.Delete(&review).Error
	})
	if err != nil {
		return internalError("hard delete review", err)
	}

	storage.Cleanup(ctx, s.Images, review.PhotoURL)
	return nil
}

func (s *ReviewService) GetHospitalReviews(hospitalID uint, params models.ListParams) ([]models.Review, int64, error) {
	if err := s.checkHospitalExists(hospitalID); err != nil {
		return nil, 0, err
	}
	q := ReviewListQuery{ListParams: params, HospitalID: hospitalID}
	return s.GetReviews(q)
}

func (s *ReviewService) GetUserReviews(userID uint, params models.ListParams) ([]models.Review, int64, error) {
	q := ReviewListQuery{ListParams: params, UserID: userID}
	return s.GetReviews(q)
}

func (s *ReviewService) GetHospitalStats(hospitalID uint) (*HospitalStats, error) {
	if err := s.checkHospitalExists(hospitalID); err != nil {
		return nil, err
	}

	var stats HospitalStats
	err := s.DB.Model(&models.Review{}).
		Select("COUNT(*) as total_reviews, COALESCE(AVG(rating), 0) as average_rating").
		Where("hospital_id = ? AND is_deleted = ?", hospitalID, false).
		Scan(&stats).Error
	if err != nil {
		return nil, internalError("hospital stats", err)
	}

	return &stats, nil
}

// CanUserReview reports whether the user has no live review for the
// hospital yet.
func (s *ReviewService) CanUserReview(userID, hospitalID uint) (bool, error) {
	if err := s.checkHospitalExists(hospitalID); err != nil {
		return false, err
	}

	var existing int64
	err := s.DB.Model(&models.Review{}).
		Where("user_id = ? AND hospital_id = ? AND is_deleted = ?", userID, hospitalID, false).
		Count(&existing).Error
	if err != nil {
		return false, internalError("can user review", err)
	}
	return existing == 0, nil
}

func (s *ReviewService) checkHospitalExists(hospitalID uint) error {
	var hospital models.Hospital
	err := s.DB.Where("id = ? AND is_deleted = ?", hospitalID, false).First(&hospital).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierr.NewNotFound("Hospital not found")
	}
	if err != nil {
		return internalError("get hospital", err)
	}
	return nil
}
