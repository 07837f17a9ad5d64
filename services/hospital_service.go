package services

import (
	"context"
	"errors"

	"github.com/petcare-hub/api-go/apierr"
	"github.com/petcare-hub/api-go/models"
	"github.com/petcare-hub/api-go/storage"
	"gorm.io/gorm"
)

// HospitalService exposes hospital lookups and the hospital image
// gallery.
type HospitalService struct {
	DB     *gorm.DB
	Images storage.ImageStore
}

func NewHospitalService(db *gorm.DB, images storage.ImageStore) *HospitalService {
	return &HospitalService{DB: db, Images: images}
}

const (
	hospitalBucket    = "hospitals"
	maxImagesPerBatch = 5
)

func (s *HospitalService) GetHospitalByID(id uint) (*models.Hospital, error) {
	var hospital models.Hospital
	err := s.DB.Where("id = ? AND is_deleted = ?", id, false).First(&hospital).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NewNotFound("Hospital not found")
	}
	if err != nil {
		return nil, internalError("get hospital", err)
	}
	return &hospital, nil
}

// AddImages validates the whole batch before storing anything, then
// stores and records each file. A failed row insert removes every
// asset stored in this call so none are orphaned.
func (s *HospitalService) AddImages(ctx context.Context, hospitalID, userID uint, uploads []storage.Upload) ([]models.HospitalImage, error) {
	if _, err := s.GetHospitalByID(hospitalID); err != nil {
		return nil, err
	}

	var errs []string
	if len(uploads) == 0 {
		errs = append(errs, "At least one image is required")
	}
	if len(uploads) > maxImagesPerBatch {
		errs = append(errs, "A maximum of 5 images can be uploaded at once")
	}
	for _, upload := range uploads {
		errs = append(errs, storage.ValidateImage(upload)...)
	}
	if len(errs) > 0 {
		return nil, apierr.NewValidation("Invalid data", errs)
	}

	var stored []string
	cleanupAll := func() {
		for _, ref := range stored {
			storage.Cleanup(ctx, s.Images, ref)
		}
	}

	images := make([]models.HospitalImage, 0, len(uploads))
	for _, upload := range uploads {
		ref, err := s.Images.Store(ctx, upload, hospitalBucket)
		if err != nil {
			cleanupAll()
			return nil, apierr.From(err)
		}
		stored = append(stored, ref)

		image := models.HospitalImage{
			HospitalID: hospitalID,
			ImageURL:   ref,
			CreatedBy:  &userID,
		}
		if err := s.DB.Create(&image).Error; err != nil {
			cleanupAll()
			return nil, internalError("create hospital image", err)
		}
		images = append(images, image)
	}

	return images, nil
}

func (s *HospitalService) ListImages(hospitalID uint) ([]models.HospitalImage, error) {
	if _, err := s.GetHospitalByID(hospitalID); err != nil {
		return nil, err
	}

	var images []models.HospitalImage
	if err := s.DB.Where("hospital_id = ?", hospitalID).
		Order("created_at DESC").Find(&images).Error; err != nil {
		return nil, internalError("list hospital images", err)
	}
	return images, nil
}

func (s *HospitalService) DeleteImage(ctx context.Context, id, userID uint, isAdmin bool) error {
	var image models.HospitalImage
	err := s.DB.First(&image, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierr.NewNotFound("Image not found")
	}
	if err != nil {
		return internalError("get hospital image", err)
	}

	if !isAdmin && (image.CreatedBy == nil || *image.CreatedBy != userID) {
		return apierr.NewForbidden("You do not have permission to delete this image")
	}

	if err := s.DB.Delete(&image).Error; err != nil {
		return internalError("delete hospital image", err)
	}

	storage.Cleanup(ctx, s.Images, image.ImageURL)
	return nil
}
