package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/petcare-hub/api-go/apierr"
	"github.com/petcare-hub/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newInteractionService(t *testing.T) (*InteractionService, *GalleryService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewInteractionService(db), NewGalleryService(db, &fakeImageStore{}), db
}

func TestToggleLikeFlipsStateAndCounter(t *testing.T) {
	interactions, gallery, db := newInteractionService(t)
	createTestUser(t, db, 1)
	post := createGalleryPost(t, gallery, 1)

	liked, err := interactions.ToggleLike(post.ID, 1)
	require.NoError(t, err)
	assert.True(t, liked)

	current, err := gallery.GetPostDetail(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), current.LikesCount)

	// A second toggle returns to the original state and counter.
	liked, err = interactions.ToggleLike(post.ID, 1)
	require.NoError(t, err)
	assert.False(t, liked)

	current, err = gallery.GetPostDetail(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), current.LikesCount)

	var rows int64
	db.Model(&models.PetPostLike{}).Where("post_id = ?", post.ID).Count(&rows)
	assert.Zero(t, rows)
}

func TestToggleLikeCounterTracksLiveRows(t *testing.T) {
	interactions, gallery, db := newInteractionService(t)
	createTestUser(t, db, 1)
	createTestUser(t, db, 2)
	createTestUser(t, db, 3)
	post := createGalleryPost(t, gallery, 1)

	for _, userID := range []uint{1, 2, 3} {
		_, err := interactions.ToggleLike(post.ID, userID)
		require.NoError(t, err)
	}

	current, err := gallery.GetPostDetail(post.ID)
	require.NoError(t, err)

	var rows int64
	db.Model(&models.PetPostLike{}).Where("post_id = ?", post.ID).Count(&rows)
	assert.Equal(t, rows, current.LikesCount)
}

func TestToggleLikePostNotFound(t *testing.T) {
	interactions, _, _ := newInteractionService(t)

	_, err := interactions.ToggleLike(42, 1)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierr.From(err).Status)
}

func TestReportCommentDuplicateRejected(t *testing.T) {
	interactions, gallery, db := newInteractionService(t)
	createTestUser(t, db, 1)
	post := createGalleryPost(t, gallery, 1)
	comment, err := gallery.AddComment(post.ID, 1, "Questionable comment", nil)
	require.NoError(t, err)

	report, err := interactions.ReportComment(comment.ID, 2, "")
	require.NoError(t, err)
	assert.Equal(t, "No reason", report.Reason)

	_, err = interactions.ReportComment(comment.ID, 2, "spam")
	require.Error(t, err)
	apiErr := apierr.From(err)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "You have already reported this comment", apiErr.Message)

	// A different user may still report it.
	_, err = interactions.ReportComment(comment.ID, 3, "offensive")
	require.NoError(t, err)

	var stored models.PetPostComment
	require.NoError(t, db.First(&stored, comment.ID).Error)
	assert.Equal(t, int64(2), stored.ReportCount)
}

func TestReportCommentNotFound(t *testing.T) {
	interactions, _, _ := newInteractionService(t)

	_, err := interactions.ReportComment(99, 1, "spam")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierr.From(err).Status)
}

func TestGetCommentRepliesOrderedOldestFirst(t *testing.T) {
	interactions, gallery, db := newInteractionService(t)
	createTestUser(t, db, 1)
	post := createGalleryPost(t, gallery, 1)
	parent, err := gallery.AddComment(post.ID, 1, "Parent comment", nil)
	require.NoError(t, err)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		reply := models.PetPostComment{
			PostID:    post.ID,
			UserID:    1,
			ParentID:  &parent.ID,
			Content:   "Reply",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&reply).Error)
	}
	// A soft-deleted reply stays out of the listing.
	deleted := models.PetPostComment{
		PostID:    post.ID,
		UserID:    1,
		ParentID:  &parent.ID,
		Content:   "Gone",
		IsDeleted: true,
		CreatedAt: base.Add(5 * time.Minute),
	}
	require.NoError(t, db.Create(&deleted).Error)

	replies, total, err := interactions.GetCommentReplies(parent.ID, models.ListParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, replies, 2)
	assert.True(t, replies[0].CreatedAt.Before(replies[1].CreatedAt))

	params := models.ListParams{Page: 1, Limit: 2}
	params.Normalize()
	assert.Equal(t, 2, params.TotalPages(total))
}

func TestGetCommentRepliesParentNotFound(t *testing.T) {
	interactions, _, _ := newInteractionService(t)

	_, _, err := interactions.GetCommentReplies(123, models.ListParams{Page: 1, Limit: 10})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierr.From(err).Status)
}
