package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/petcare-hub/api-go/apierr"
	"github.com/petcare-hub/api-go/models"
	"github.com/petcare-hub/api-go/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newHospitalService(t *testing.T) (*HospitalService, *fakeImageStore, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	images := &fakeImageStore{}
	return NewHospitalService(db, images), images, db
}

func uploadBatch(n int) []storage.Upload {
	uploads := make([]storage.Upload, 0, n)
	for i := 0; i < n; i++ {
		uploads = append(uploads, *testUpload())
	}
	return uploads
}

func TestAddImagesStoresBatch(t *testing.T) {
	s, images, db := newHospitalService(t)
	hospital := createTestHospital(t, db)
	createTestUser(t, db, 1)

	created, err := s.AddImages(context.Background(), hospital.ID, 1, uploadBatch(3))
	require.NoError(t, err)
	assert.Len(t, created, 3)
	assert.Len(t, images.stored, 3)

	listed, err := s.ListImages(hospital.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 3)
}

func TestAddImagesValidatesWholeBatchFirst(t *testing.T) {
	s, images, db := newHospitalService(t)
	hospital := createTestHospital(t, db)

	_, err := s.AddImages(context.Background(), hospital.ID, 1, nil)
	require.Error(t, err)
	assert.Contains(t, apierr.From(err).Errors, "At least one image is required")

	_, err = s.AddImages(context.Background(), hospital.ID, 1, uploadBatch(6))
	require.Error(t, err)
	assert.Contains(t, apierr.From(err).Errors, "A maximum of 5 images can be uploaded at once")

	// One bad file anywhere in the batch keeps everything out of storage.
	batch := uploadBatch(2)
	batch[1].ContentType = "application/zip"
	_, err = s.AddImages(context.Background(), hospital.ID, 1, batch)
	require.Error(t, err)
	assert.Contains(t, apierr.From(err).Errors, "Only image files (jpg, png, gif) are accepted")
	assert.Empty(t, images.stored)
}

func TestAddImagesHospitalNotFound(t *testing.T) {
	s, _, _ := newHospitalService(t)

	_, err := s.AddImages(context.Background(), 42, 1, uploadBatch(1))
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierr.From(err).Status)
}

func TestAddImagesCleansUpStoredAssetsOnInsertFailure(t *testing.T) {
	s, images, db := newHospitalService(t)
	hospital := createTestHospital(t, db)

	require.NoError(t, db.Migrator().DropTable(&models.HospitalImage{}))

	_, err := s.AddImages(context.Background(), hospital.ID, 1, uploadBatch(2))
	require.Error(t, err)
	assert.ElementsMatch(t, images.stored, images.removed)
}

func TestDeleteImageUploaderOrAdmin(t *testing.T) {
	s, images, db := newHospitalService(t)
	hospital := createTestHospital(t, db)
	createTestUser(t, db, 1)

	created, err := s.AddImages(context.Background(), hospital.ID, 1, uploadBatch(2))
	require.NoError(t, err)

	err = s.DeleteImage(context.Background(), created[0].ID, 2, false)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apierr.From(err).Status)

	require.NoError(t, s.DeleteImage(context.Background(), created[0].ID, 1, false))
	require.NoError(t, s.DeleteImage(context.Background(), created[1].ID, 2, true))

	assert.Contains(t, images.removed, created[0].ImageURL)
	assert.Contains(t, images.removed, created[1].ImageURL)

	err = s.DeleteImage(context.Background(), created[0].ID, 1, false)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierr.From(err).Status)
}
