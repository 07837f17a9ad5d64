package storage

import (
	"context"
	"io"
	"log"

	"github.com/petcare-hub/api-go/apierr"
)

// Upload is a candidate file read out of a multipart request.
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ImageStore persists uploaded images and hands back an addressable
// reference. Store validates before persisting; Remove is best-effort
// from the caller's point of view (use Cleanup).
type ImageStore interface {
	Store(ctx context.Context, upload Upload, bucket string) (string, error)
	Remove(ctx context.Context, ref string) error
}

const maxImageSize = 5 * 1024 * 1024 // 5MB

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// ValidateImage returns every problem with the candidate file so
// callers can fold them into an aggregated validation error.
func ValidateImage(upload Upload) []string {
	var errs []string
	if _, ok := allowedImageTypes[upload.ContentType]; !ok {
		errs = append(errs, "Only image files (jpg, png, gif) are accepted")
	}
	if upload.Size > maxImageSize {
		errs = append(errs, "Image size must be less than 5MB")
	}
	return errs
}

func validateUpload(upload Upload) error {
	if errs := ValidateImage(upload); len(errs) > 0 {
		return apierr.NewValidation("Invalid image", errs)
	}
	return nil
}

// Cleanup removes a previously stored asset, swallowing and logging
// any failure so cleanup never replaces the primary error.
func Cleanup(ctx context.Context, store ImageStore, ref string) {
	if store == nil || ref == "" {
		return
	}
	if err := store.Remove(ctx, ref); err != nil {
		log.Printf("asset cleanup failed for %s: %v", ref, err)
	}
}
