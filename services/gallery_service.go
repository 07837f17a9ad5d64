package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/petcare-hub/api-go/apierr"
	"github.com/petcare-hub/api-go/models"
	"github.com/petcare-hub/api-go/storage"
	"gorm.io/gorm"
)

// GalleryService owns the pet gallery content: posts and comments.
type GalleryService struct {
	DB     *gorm.DB
	Images storage.ImageStore
}

func NewGalleryService(db *gorm.DB, images storage.ImageStore) *GalleryService {
	return &GalleryService{DB: db, Images: images}
}

const galleryBucket = "petgallery"

// PostInput carries the writable post fields. Empty strings mean "not
// provided" on update.
type PostInput struct {
	Caption     string
	Description string
	PetType     string
	Tags        string
}

type PostListQuery struct {
	models.ListParams
	PetType   string
	Tags      string
	UserID    uint
	SortBy    string
	SortOrder string
}

var postSortColumns = []string{"created_at", "likes_count", "comments_count"}

// validatePostInput collects every violation instead of stopping at
// the first one.
func validatePostInput(input PostInput, upload *storage.Upload, isUpdate bool) *apierr.ApiError {
	var errs []string

	if !isUpdate && upload == nil {
		errs = append(errs, "Image is required")
	}

	caption := strings.TrimSpace(input.Caption)
	if !isUpdate && caption == "" {
		errs = append(errs, "Caption is required")
	} else if caption != "" && utf8.RuneCountInString(caption) < 5 {
		errs = append(errs, "Caption must be at least 5 characters")
	}

	if desc := strings.TrimSpace(input.Description); desc != "" && utf8.RuneCountInString(desc) < 10 {
		errs = append(errs, "Description must be at least 10 characters")
	}

	if !isUpdate && input.PetType == "" {
		errs = append(errs, "Pet type is required")
	} else if input.PetType != "" && !models.ValidPetType(input.PetType) {
		errs = append(errs, "Invalid pet type (DOG, CAT, OTHER)")
	}

	if input.Tags != "" {
		tags := strings.Split(input.Tags, ",")
		for i := range tags {
			tags[i] = strings.TrimSpace(tags[i])
		}
		for _, tag := range tags {
			if utf8.RuneCountInString(tag) < 2 {
				errs = append(errs, "Each tag must be at least 2 characters")
				break
			}
		}
		if len(tags) > 5 {
			errs = append(errs, "Maximum 5 tags per post")
		}
	}

	if upload != nil {
		errs = append(errs, storage.ValidateImage(*upload)...)
	}

	if len(errs) > 0 {
		return apierr.NewValidation("Invalid data", errs)
	}
	return nil
}

func (s *GalleryService) CreatePost(ctx context.Context, userID uint, input PostInput, upload *storage.Upload) (*models.PetPost, error) {
	if err := validatePostInput(input, upload, false); err != nil {
		return nil, err
	}

	imageURL, err := s.Images.Store(ctx, *upload, galleryBucket)
	if err != nil {
		return nil, apierr.From(err)
	}

	post := models.PetPost{
		UserID:      userID,
		Caption:     strings.TrimSpace(input.Caption),
		Description: strings.TrimSpace(input.Description),
		PetType:     input.PetType,
		Tags:        input.Tags,
		ImageURL:    imageURL,
	}

	if err := s.DB.Create(&post).Error; err != nil {
		// The asset is already in storage; remove it so the failed
		// create leaves nothing orphaned.
		storage.Cleanup(ctx, s.Images, imageURL)
		return nil, internalError("create post", err)
	}

	return &post, nil
}

func (s *GalleryService) GetPosts(q PostListQuery) ([]models.PetPost, int64, error) {
	q.Normalize()

	db := s.DB.Model(&models.PetPost{}).Where("is_deleted = ?", false)
	if q.PetType != "" {
		db = db.Where("pet_type = ?", q.PetType)
	}
	if q.Tags != "" {
		db = db.Where("tags LIKE ?", "%"+q.Tags+"%")
	}
	if q.UserID != 0 {
		db = db.Where("user_id = ?", q.UserID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, internalError("count posts", err)
	}

	var posts []models.PetPost
	order := models.OrderClause(q.SortBy, q.SortOrder, postSortColumns, "created_at")
	if err := db.Preload("User").Order(order).Offset(q.Offset()).Limit(q.Limit).Find(&posts).Error; err != nil {
		return nil, 0, internalError("list posts", err)
	}

	return posts, total, nil
}

func (s *GalleryService) GetPostDetail(id uint) (*models.PetPost, error) {
	var post models.PetPost
	err := s.DB.Preload("User").Where("id = ? AND is_deleted = ?", id, false).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NewNotFound("Post not found")
	}
	if err != nil {
		return nil, internalError("get post detail", err)
	}
	return &post, nil
}

func (s *GalleryService) UpdatePost(ctx context.Context, id, userID uint, input PostInput, upload *storage.Upload) (*models.PetPost, error) {
	post, err := s.GetPostDetail(id)
	if err != nil {
		return nil, err
	}

	if post.UserID != userID {
		return nil, apierr.NewForbidden("You do not have permission to edit this post")
	}

	if err := validatePostInput(input, upload, true); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.Caption != "" {
		updates["caption"] = strings.TrimSpace(input.Caption)
	}
	if input.Description != "" {
		updates["description"] = strings.TrimSpace(input.Description)
	}
	if input.PetType != "" {
		updates["pet_type"] = input.PetType
	}
	if input.Tags != "" {
		updates["tags"] = input.Tags
	}

	oldImageURL := post.ImageURL
	newImageURL := ""
	if upload != nil {
		newImageURL, err = s.Images.Store(ctx, *upload, galleryBucket)
		if err != nil {
			return nil, apierr.From(err)
		}
		updates["image_url"] = newImageURL
	}

	if len(updates) > 0 {
		if err := s.DB.Model(post).Updates(updates).Error; err != nil {
			storage.Cleanup(ctx, s.Images, newImageURL)
			return nil, internalError("update post", err)
		}
	}

	// The old asset goes away only once the replacement is confirmed.
	if newImageURL != "" && oldImageURL != "" && oldImageURL != newImageURL {
		storage.Cleanup(ctx, s.Images, oldImageURL)
	}

	return s.GetPostDetail(id)
}

// DeletePost hard-deletes the post together with its comments, their
// reports and its likes, then requests removal of the stored image.
func (s *GalleryService) DeletePost(ctx context.Context, id, requesterID uint, isAdmin bool) error {
	post, err := s.GetPostDetail(id)
	if err != nil {
		return err
	}

	if !isAdmin && post.UserID != requesterID {
		return apierr.NewForbidden("You do not have permission to delete this post")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id IN (SELECT id FROM pet_post_comments WHERE post_id = ?)", post.ID).
			Delete(&models.CommentReport{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.PetPostComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.PetPostLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(post).Error
	})
	if err != nil {
		return internalError("delete post", err)
	}

	storage.Cleanup(ctx, s.Images, post.ImageURL)
	return nil
}

func (s *GalleryService) AddComment(postID, userID uint, content string, parentID *uint) (*models.PetPostComment, error) {
	if _, err := s.GetPostDetail(postID); err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apierr.NewValidation("Invalid data", []string{"Comment content cannot be empty"})
	}

	if parentID != nil {
		var parent models.PetPostComment
		err := s.DB.Where("id = ? AND is_deleted = ?", *parentID, false).First(&parent).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && parent.PostID != postID) {
			return nil, apierr.NewNotFound("Parent comment not found")
		}
		if err != nil {
			return nil, internalError("get parent comment", err)
		}
	}

	comment := models.PetPostComment{
		PostID:   postID,
		UserID:   userID,
		ParentID: parentID,
		Content:  content,
	}

	if err := s.DB.Create(&comment).Error; err != nil {
		return nil, internalError("create comment", err)
	}

	if err := s.refreshCommentCount(postID); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (s *GalleryService) GetPostComments(postID uint, params models.ListParams) ([]models.PetPostComment, int64, error) {
	if _, err := s.GetPostDetail(postID); err != nil {
		return nil, 0, err
	}

	params.Normalize()
	db := s.DB.Model(&models.PetPostComment{}).
		Where("post_id = ? AND parent_id IS NULL AND is_deleted = ?", postID, false)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, internalError("count comments", err)
	}

	var comments []models.PetPostComment
	if err := db.Preload("User").Order("created_at DESC").
		Offset(params.Offset()).Limit(params.Limit).Find(&comments).Error; err != nil {
		return nil, 0, internalError("list comments", err)
	}

	return comments, total, nil
}

func (s *GalleryService) DeleteComment(commentID, requesterID uint, isAdmin bool) error {
	var comment models.PetPostComment
	err := s.DB.Where("id = ? AND is_deleted = ?", commentID, false).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierr.NewNotFound("Comment not found")
	}
	if err != nil {
		return internalError("get comment", err)
	}

	if !isAdmin && comment.UserID != requesterID {
		return apierr.NewForbidden("You do not have permission to delete this comment")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", comment.ID).Delete(&models.CommentReport{}).Error; err != nil {
			return err
		}
		return tx.Delete(&comment).Error
	})
	if err != nil {
		return internalError("delete comment", err)
	}

	return s.refreshCommentCount(comment.PostID)
}

// refreshCommentCount recomputes the denormalized counter from the
// live comment rows; it is a cache, not a source of truth.
func (s *GalleryService) refreshCommentCount(postID uint) error {
	count := s.DB.Model(&models.PetPostComment{}).
		Select("COUNT(*)").
		Where("post_id = ? AND is_deleted = ?", postID, false)

	if err := s.DB.Model(&models.PetPost{}).Where("id = ?", postID).
		Update("comments_count", count).Error; err != nil {
		return internalError("refresh comment count", err)
	}
	return nil
}
