package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/petcare-hub/api-go/models"
	"github.com/petcare-hub/api-go/storage"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Hospital{},
		&models.HospitalImage{},
		&models.PetPost{},
		&models.PetPostComment{},
		&models.PetPostLike{},
		&models.CommentReport{},
		&models.Review{},
		&models.ReviewReport{},
		&models.TermsConditions{},
	))

	return db
}

// fakeImageStore records every stored and removed reference so tests
// can assert on the orphan-cleanup behavior without touching S3.
type fakeImageStore struct {
	stored     []string
	removed    []string
	failStore  bool
	failRemove bool
	seq        int
}

func (f *fakeImageStore) Store(_ context.Context, upload storage.Upload, bucket string) (string, error) {
	if errs := storage.ValidateImage(upload); len(errs) > 0 {
		return "", errors.New(errs[0])
	}
	if f.failStore {
		return "", errors.New("storage unavailable")
	}
	f.seq++
	ref := fmt.Sprintf("https://cdn.test/%s/%d%s", bucket, f.seq, filepath.Ext(upload.FileName))
	f.stored = append(f.stored, ref)
	return ref, nil
}

func (f *fakeImageStore) Remove(_ context.Context, ref string) error {
	if f.failRemove {
		return errors.New("remove failed")
	}
	f.removed = append(f.removed, ref)
	return nil
}

func testUpload() *storage.Upload {
	return &storage.Upload{
		FileName:    "dog.jpg",
		ContentType: "image/jpeg",
		Size:        1024,
		Body:        bytes.NewReader([]byte("fake image bytes")),
	}
}

func createTestUser(t *testing.T, db *gorm.DB, id uint) models.User {
	t.Helper()
	user := models.User{ID: id, FullName: fmt.Sprintf("User %d", id)}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestHospital(t *testing.T, db *gorm.DB) models.Hospital {
	t.Helper()
	hospital := models.Hospital{Name: "Happy Paws Clinic", Address: "1 Main St"}
	require.NoError(t, db.Create(&hospital).Error)
	return hospital
}
