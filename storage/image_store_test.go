package storage

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/petcare-hub/api-go/config"
	"github.com/stretchr/testify/assert"
)

func TestValidateImage(t *testing.T) {
	upload := Upload{
		FileName:    "dog.jpg",
		ContentType: "image/jpeg",
		Size:        maxImageSize,
		Body:        bytes.NewReader([]byte("jpeg bytes")),
	}
	assert.Empty(t, ValidateImage(upload))

	upload.Size = maxImageSize + 1
	assert.Equal(t, []string{"Image size must be less than 5MB"}, ValidateImage(upload))

	upload.ContentType = "application/pdf"
	errs := ValidateImage(upload)
	assert.Contains(t, errs, "Only image files (jpg, png, gif) are accepted")
	assert.Contains(t, errs, "Image size must be less than 5MB")

	upload = Upload{FileName: "cat.gif", ContentType: "image/gif", Size: 512}
	assert.Empty(t, ValidateImage(upload))
}

type flakyStore struct {
	removed []string
	err     error
}

func (f *flakyStore) Store(context.Context, Upload, string) (string, error) { return "", nil }

func (f *flakyStore) Remove(_ context.Context, ref string) error {
	f.removed = append(f.removed, ref)
	return f.err
}

func TestCleanupSwallowsRemoveErrors(t *testing.T) {
	store := &flakyStore{err: errors.New("bucket unreachable")}

	Cleanup(context.Background(), store, "https://cdn.example.com/reviews/1_a.jpg")
	assert.Len(t, store.removed, 1)

	// A nil store or empty ref is a no-op.
	Cleanup(context.Background(), nil, "ref")
	Cleanup(context.Background(), store, "")
	assert.Len(t, store.removed, 1)
}

func TestGenerateKeyPreservesExtension(t *testing.T) {
	key := generateKey("petgallery", "holiday photo.png")
	assert.True(t, strings.HasPrefix(key, "petgallery/"))
	assert.True(t, strings.HasSuffix(key, ".png"))

	assert.False(t, strings.Contains(generateKey("reviews", "noext"), "."))
}

func TestKeyFromRefStripsPublicURL(t *testing.T) {
	s := &S3Store{cfg: &config.StorageConfig{PublicURL: "https://cdn.example.com"}}

	assert.Equal(t, "reviews/1_a.jpg", s.keyFromRef("https://cdn.example.com/reviews/1_a.jpg"))
	assert.Equal(t, "", s.keyFromRef("https://cdn.example.com/"))
}
