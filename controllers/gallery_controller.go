package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/petcare-hub/api-go/models"
	"github.com/petcare-hub/api-go/services"
	"github.com/petcare-hub/api-go/utils"
)

type GalleryController struct {
	Service *services.GalleryService
}

func NewGalleryController(service *services.GalleryService) *GalleryController {
	return &GalleryController{Service: service}
}

type postListRequest struct {
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
	PetType   string `form:"petType"`
	Tags      string `form:"tags"`
	UserID    uint   `form:"userId"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

type commentRequest struct {
	Content  string `json:"content"`
	ParentID *uint  `json:"parent_id"`
}

// CreatePost handles the multipart post form; the image field is
// required at creation time.
func (gc *GalleryController) CreatePost(c *gin.Context) {
	user := utils.GetUser(c)

	upload, err := formUpload(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}

	input := services.PostInput{
		Caption:     c.PostForm("caption"),
		Description: c.PostForm("description"),
		PetType:     c.PostForm("pet_type"),
		Tags:        c.PostForm("tags"),
	}

	post, err := gc.Service.CreatePost(c.Request.Context(), user.UserID, input, upload)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Post created successfully", post)
}

func (gc *GalleryController) GetPosts(c *gin.Context) {
	var req postListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, invalidRequest(err))
		return
	}

	query := services.PostListQuery{
		ListParams: models.ListParams{Page: req.Page, Limit: req.Limit},
		PetType:    req.PetType,
		Tags:       req.Tags,
		UserID:     req.UserID,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	}
	query.Normalize()

	posts, total, err := gc.Service.GetPosts(query)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, posts, newPagination(query.ListParams, total))
}

func (gc *GalleryController) GetPostDetail(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	post, err := gc.Service.GetPostDetail(id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", post)
}

func (gc *GalleryController) UpdatePost(c *gin.Context) {
	user := utils.GetUser(c)
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	upload, err := formUpload(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}

	input := services.PostInput{
		Caption:     c.PostForm("caption"),
		Description: c.PostForm("description"),
		PetType:     c.PostForm("pet_type"),
		Tags:        c.PostForm("tags"),
	}

	post, err := gc.Service.UpdatePost(c.Request.Context(), id, user.UserID, input, upload)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Post updated successfully", post)
}

func (gc *GalleryController) DeletePost(c *gin.Context) {
	user := utils.GetUser(c)
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := gc.Service.DeletePost(c.Request.Context(), id, user.UserID, user.IsAdmin()); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Post deleted successfully", nil)
}

func (gc *GalleryController) AddComment(c *gin.Context) {
	user := utils.GetUser(c)
	postID, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest(err))
		return
	}

	comment, err := gc.Service.AddComment(postID, user.UserID, req.Content, req.ParentID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Comment added successfully", comment)
}

func (gc *GalleryController) GetPostComments(c *gin.Context) {
	postID, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	params := listParams(c)
	comments, total, err := gc.Service.GetPostComments(postID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, comments, newPagination(params, total))
}

func (gc *GalleryController) DeleteComment(c *gin.Context) {
	user := utils.GetUser(c)
	commentID, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := gc.Service.DeleteComment(commentID, user.UserID, user.IsAdmin()); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Comment deleted successfully", nil)
}
