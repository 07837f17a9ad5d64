package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petcare-hub/api-go/services"
	"github.com/petcare-hub/api-go/utils"
)

type ReviewController struct {
	Service *services.ReviewService
}

func NewReviewController(service *services.ReviewService) *ReviewController {
	return &ReviewController{Service: service}
}

func reviewFormInput(c *gin.Context) services.ReviewInput {
	rating, _ := strconv.Atoi(c.PostForm("rating"))
	return services.ReviewInput{
		Rating:  rating,
		Content: c.PostForm("content"),
	}
}

func (rc *ReviewController) CreateReview(c *gin.Context) {
	user := utils.GetUser(c)
	hospitalID, err := parseID(c, "hospitalId")
	if err != nil {
		respondError(c, err)
		return
	}

	upload, err := formUpload(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}

	review, err := rc.Service.CreateReview(c.Request.Context(), hospitalID, user.UserID, reviewFormInput(c), upload)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Review created successfully", review)
}

func (rc *ReviewController) GetReviews(c *gin.Context) {
	hospitalID, _ := strconv.ParseUint(c.Query("hospitalId"), 10, 32)
	userID, _ := strconv.ParseUint(c.Query("userId"), 10, 32)

	query := services.ReviewListQuery{
		ListParams: listParams(c),
		HospitalID: uint(hospitalID),
		UserID:     uint(userID),
	}

	reviews, total, err := rc.Service.GetReviews(query)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, reviews, newPagination(query.ListParams, total))
}

func (rc *ReviewController) GetReviewByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	review, err := rc.Service.GetReviewByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", review)
}

func (rc *ReviewController) UpdateReview(c *gin.Context) {
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

	review, err := rc.Service.UpdateReview(c.Request.Context(), id, user.UserID, reviewFormInput(c), upload)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Review updated successfully", review)
}

func (rc *ReviewController) DeleteReview(c *gin.Context) {
	user := utils.GetUser(c)
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := rc.Service.DeleteReview(id, user.UserID, user.IsAdmin()); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Review deleted successfully", nil)
}

func (rc *ReviewController) HardDeleteReview(c *gin.Context) {
	user := utils.GetUser(c)
	if !user.IsAdmin() {
		respondError(c, forbiddenAdminOnly())
		return
	}

	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := rc.Service.HardDeleteReview(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Review permanently deleted", nil)
}

func (rc *ReviewController) ReportReview(c *gin.Context) {
	user := utils.GetUser(c)
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req reportRequest
	_ = c.ShouldBindJSON(&req)

	report, err := rc.Service.ReportReview(id, user.UserID, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Review reported successfully", report)
}

func (rc *ReviewController) ToggleSoftDelete(c *gin.Context) {
	user := utils.GetUser(c)
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	review, err := rc.Service.ToggleSoftDelete(id, user.UserID, user.IsAdmin())
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Review restored successfully"
	if review.IsDeleted {
		message = "Review hidden successfully"
	}
	respondSuccess(c, http.StatusOK, message, review)
}

func (rc *ReviewController) GetHospitalReviews(c *gin.Context) {
	hospitalID, err := parseID(c, "hospitalId")
	if err != nil {
		respondError(c, err)
		return
	}

	params := listParams(c)
	reviews, total, err := rc.Service.GetHospitalReviews(hospitalID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, reviews, newPagination(params, total))
}

func (rc *ReviewController) GetUserReviews(c *gin.Context) {
	user := utils.GetUser(c)

	params := listParams(c)
	reviews, total, err := rc.Service.GetUserReviews(user.UserID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, reviews, newPagination(params, total))
}

func (rc *ReviewController) GetHospitalStats(c *gin.Context) {
	hospitalID, err := parseID(c, "hospitalId")
	if err != nil {
		respondError(c, err)
		return
	}

	stats, err := rc.Service.GetHospitalStats(hospitalID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", stats)
}

func (rc *ReviewController) CanUserReview(c *gin.Context) {
	user := utils.GetUser(c)
	hospitalID, err := parseID(c, "hospitalId")
	if err != nil {
		respondError(c, err)
		return
	}

	canReview, err := rc.Service.CanUserReview(user.UserID, hospitalID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", gin.H{"can_review": canReview})
}
