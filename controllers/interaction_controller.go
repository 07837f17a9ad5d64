package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/petcare-hub/api-go/services"
	"github.com/petcare-hub/api-go/utils"
)

type InteractionController struct {
	Service *services.InteractionService
}

func NewInteractionController(service *services.InteractionService) *InteractionController {
	return &InteractionController{Service: service}
}

type reportRequest struct {
	Reason string `json:"reason"`
}

func (ic *InteractionController) ToggleLike(c *gin.Context) {
	user := utils.GetUser(c)
	postID, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	liked, err := ic.Service.ToggleLike(postID, user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Post unliked"
	if liked {
		message = "Post liked"
	}
	respondSuccess(c, http.StatusOK, message, gin.H{"liked": liked})
}

func (ic *InteractionController) ReportComment(c *gin.Context) {
	user := utils.GetUser(c)
	commentID, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req reportRequest
	// The body is optional; an absent reason falls back to a default.
	_ = c.ShouldBindJSON(&req)

	report, err := ic.Service.ReportComment(commentID, user.UserID, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Comment reported successfully", report)
}

func (ic *InteractionController) GetCommentReplies(c *gin.Context) {
	commentID, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	params := listParams(c)
	replies, total, err := ic.Service.GetCommentReplies(commentID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, replies, newPagination(params, total))
}
