package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/petcare-hub/api-go/models"
	"github.com/petcare-hub/api-go/services"
	"github.com/petcare-hub/api-go/storage"
	"github.com/petcare-hub/api-go/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type memoryImageStore struct {
	seq int
}

func (m *memoryImageStore) Store(_ context.Context, upload storage.Upload, bucket string) (string, error) {
	if errs := storage.ValidateImage(upload); len(errs) > 0 {
		return "", errors.New(errs[0])
	}
	m.seq++
	return fmt.Sprintf("https://cdn.test/%s/%d", bucket, m.seq), nil
}

func (m *memoryImageStore) Remove(context.Context, string) error { return nil }

// newGalleryRouter wires the gallery endpoints behind a stub auth layer
// that injects the given claims directly.
func newGalleryRouter(t *testing.T, claims *utils.UserClaims) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.PetPost{},
		&models.PetPostComment{},
		&models.PetPostLike{},
		&models.CommentReport{},
	))
	require.NoError(t, db.Create(&models.User{ID: claims.UserID, FullName: "Tester"}).Error)

	gc := NewGalleryController(services.NewGalleryService(db, &memoryImageStore{}))

	r := gin.New()
	api := r.Group("/api")
	api.Use(func(c *gin.Context) {
		c.Set(string(utils.UserContextKey), claims)
		c.Next()
	})
	posts := api.Group("/posts")
	{
		posts.POST("", gc.CreatePost)
		posts.GET("", gc.GetPosts)
		posts.GET("/:id", gc.GetPostDetail)
		posts.POST("/:id/comments", gc.AddComment)
	}

	return r, db
}

func postForm(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	if withImage {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="image"; filename="dog.jpg"`)
		header.Set("Content-Type", "image/jpeg")
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreatePostEndpoint(t *testing.T) {
	r, db := newGalleryRouter(t, &utils.UserClaims{UserID: 1})

	body, contentType := postForm(t, map[string]string{
		"caption":     "Sunny afternoon walk",
		"description": "Our retriever discovering the park fountain.",
		"pet_type":    "DOG",
		"tags":        "park,retriever",
	}, true)

	req := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Post created successfully", resp.Message)

	var count int64
	db.Model(&models.PetPost{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreatePostEndpointAggregatesErrors(t *testing.T) {
	r, _ := newGalleryRouter(t, &utils.UserClaims{UserID: 1})

	body, contentType := postForm(t, map[string]string{
		"caption":  "Hi",
		"pet_type": "HAMSTER",
	}, false)

	req := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Errors, "Image is required")
	assert.Contains(t, resp.Errors, "Caption must be at least 5 characters")
	assert.Contains(t, resp.Errors, "Invalid pet type (DOG, CAT, OTHER)")
}

func TestGetPostsEndpointPaginationEnvelope(t *testing.T) {
	r, db := newGalleryRouter(t, &utils.UserClaims{UserID: 1})

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.PetPost{
			UserID:      1,
			Caption:     fmt.Sprintf("Caption number %d", i),
			Description: "A description long enough to pass.",
			PetType:     models.PetTypeCat,
			ImageURL:    "https://cdn.test/petgallery/seed",
		}).Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/posts?page=1&limit=2", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Pagination)
	assert.Equal(t, int64(3), resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
}

func TestAddCommentEndpointPostNotFound(t *testing.T) {
	r, _ := newGalleryRouter(t, &utils.UserClaims{UserID: 1})

	payload := bytes.NewBufferString(`{"content": "Such a good boy"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/posts/99/comments", payload)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Post not found", resp.Message)
}
