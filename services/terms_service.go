package services

import (
	"errors"
	"strings"
	"time"

	"github.com/petcare-hub/api-go/apierr"
	"github.com/petcare-hub/api-go/models"
	"gorm.io/gorm"
)

// TermsService manages the versioned terms-and-conditions documents.
type TermsService struct {
	DB *gorm.DB
}

func NewTermsService(db *gorm.DB) *TermsService {
	return &TermsService{DB: db}
}

const effectiveDateLayout = "2006-01-02"

type TermsInput struct {
	Title         string
	Content       string
	EffectiveDate string
}

type TermsChanges struct {
	TitleChanged      bool `json:"title_changed"`
	ContentChanged    bool `json:"content_changed"`
	EffectiveDateDays int  `json:"effective_date_days_apart"`
}

type TermsComparison struct {
	Version1 models.TermsConditions `json:"version1"`
	Version2 models.TermsConditions `json:"version2"`
	Changes  TermsChanges           `json:"changes"`
}

// GetCurrentTerms returns the newest live version already in effect.
func (s *TermsService) GetCurrentTerms() (*models.TermsConditions, error) {
	return s.GetEffectiveTerms(time.Now())
}

func (s *TermsService) GetEffectiveTerms(at time.Time) (*models.TermsConditions, error) {
	var terms models.TermsConditions
	err := s.DB.Where("is_deleted = ? AND effective_date <= ?", false, at).
		Order("effective_date DESC, version DESC").
		First(&terms).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NewNotFound("No terms and conditions in effect")
	}
	if err != nil {
		return nil, internalError("get effective terms", err)
	}
	return &terms, nil
}

func (s *TermsService) CreateNewVersion(input TermsInput, userID uint) (*models.TermsConditions, error) {
	var errs []string

	if strings.TrimSpace(input.Title) == "" {
		errs = append(errs, "Title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		errs = append(errs, "Content is required")
	}

	var effectiveDate time.Time
	if input.EffectiveDate == "" {
		errs = append(errs, "Effective date is required")
	} else {
		parsed, err := time.Parse(effectiveDateLayout, input.EffectiveDate)
		if err != nil {
			errs = append(errs, "Effective date must be in YYYY-MM-DD format")
		} else if parsed.Before(time.Now().Truncate(24 * time.Hour)) {
			errs = append(errs, "Effective date cannot be in the past")
		} else {
			effectiveDate = parsed
		}
	}

	if len(errs) > 0 {
		return nil, apierr.NewValidation("Invalid data", errs)
	}

	// Version numbers are never reused, so soft-deleted versions still
	// count toward the maximum.
	var latest int64
	if err := s.DB.Model(&models.TermsConditions{}).
		Select("COALESCE(MAX(version), 0)").Scan(&latest).Error; err != nil {
		return nil, internalError("next terms version", err)
	}

	terms := models.TermsConditions{
		Version:       latest + 1,
		Title:         strings.TrimSpace(input.Title),
		Content:       input.Content,
		EffectiveDate: effectiveDate,
		LastUpdatedBy: &userID,
	}

	if err := s.DB.Create(&terms).Error; err != nil {
		return nil, internalError("create terms version", err)
	}

	return &terms, nil
}

func (s *TermsService) GetVersionHistory(params models.ListParams) ([]models.TermsConditions, int64, error) {
	params.Normalize()

	db := s.DB.Model(&models.TermsConditions{}).Where("is_deleted = ?", false)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, internalError("count terms versions", err)
	}

	var history []models.TermsConditions
	if err := db.Order("version DESC").
		Offset(params.Offset()).Limit(params.Limit).Find(&history).Error; err != nil {
		return nil, 0, internalError("list terms versions", err)
	}

	return history, total, nil
}

func (s *TermsService) GetVersion(version int64) (*models.TermsConditions, error) {
	var terms models.TermsConditions
	err := s.DB.Where("version = ? AND is_deleted = ?", version, false).First(&terms).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NewNotFound("Version not found")
	}
	if err != nil {
		return nil, internalError("get terms version", err)
	}
	return &terms, nil
}

func (s *TermsService) CompareVersions(v1, v2 int64) (*TermsComparison, error) {
	first, err := s.GetVersion(v1)
	if err != nil {
		return nil, err
	}
	second, err := s.GetVersion(v2)
	if err != nil {
		return nil, err
	}

	days := int(second.EffectiveDate.Sub(first.EffectiveDate).Hours() / 24)
	if days < 0 {
		days = -days
	}

	return &TermsComparison{
		Version1: *first,
		Version2: *second,
		Changes: TermsChanges{
			TitleChanged:      first.Title != second.Title,
			ContentChanged:    first.Content != second.Content,
			EffectiveDateDays: days,
		},
	}, nil
}

// ToggleSoftDelete hides or restores a version; callers enforce the
// admin requirement.
func (s *TermsService) ToggleSoftDelete(id uint) (*models.TermsConditions, error) {
	var terms models.TermsConditions
	err := s.DB.First(&terms, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NewNotFound("Version not found")
	}
	if err != nil {
		return nil, internalError("toggle terms delete", err)
	}

	hidden := !terms.IsDeleted
	if err := s.DB.Model(&terms).Update("is_deleted", hidden).Error; err != nil {
		return nil, internalError("toggle terms delete", err)
	}
	terms.IsDeleted = hidden

	return &terms, nil
}

func (s *TermsService) HardDelete(id uint) error {
	var terms models.TermsConditions
	err := s.DB.First(&terms, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierr.NewNotFound("Version not found")
	}
	if err != nil {
		return internalError("hard delete terms", err)
	}

	if err := s.DB.Delete(&terms).Error; err != nil {
		return internalError("hard delete terms", err)
	}
	return nil
}
