package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/petcare-hub/api-go/apierr"
	"github.com/petcare-hub/api-go/services"
	"github.com/petcare-hub/api-go/utils"
)

type TermsController struct {
	Service *services.TermsService
}

func NewTermsController(service *services.TermsService) *TermsController {
	return &TermsController{Service: service}
}

type termsRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	EffectiveDate string `json:"effective_date"`
}

func (tc *TermsController) GetCurrentTerms(c *gin.Context) {
	terms, err := tc.Service.GetCurrentTerms()
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "", terms)
}

func (tc *TermsController) CreateNewVersion(c *gin.Context) {
	user := utils.GetUser(c)
	if !user.IsAdmin() {
		respondError(c, forbiddenAdminOnly())
		return
	}

	var req termsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidRequest(err))
		return
	}

	terms, err := tc.Service.CreateNewVersion(services.TermsInput{
		Title:         req.Title,
		Content:       req.Content,
		EffectiveDate: req.EffectiveDate,
	}, user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "New version created successfully", terms)
}

func (tc *TermsController) GetVersionHistory(c *gin.Context) {
	params := listParams(c)
	history, total, err := tc.Service.GetVersionHistory(params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondList(c, history, newPagination(params, total))
}

func (tc *TermsController) GetVersion(c *gin.Context) {
	version, err := strconv.ParseInt(c.Param("version"), 10, 64)
	if err != nil || version < 1 {
		respondError(c, apierr.NewValidation("Invalid version", []string{"Version must be a positive integer"}))
		return
	}

	terms, err := tc.Service.GetVersion(version)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", terms)
}

func (tc *TermsController) GetEffectiveTerms(c *gin.Context) {
	at := time.Now()
	if date := c.Query("date"); date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			respondError(c, apierr.NewValidation("Invalid date", []string{"Date must be in YYYY-MM-DD format"}))
			return
		}
		at = parsed
	}

	terms, err := tc.Service.GetEffectiveTerms(at)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", terms)
}

func (tc *TermsController) CompareVersions(c *gin.Context) {
	v1, err1 := strconv.ParseInt(c.Query("version1"), 10, 64)
	v2, err2 := strconv.ParseInt(c.Query("version2"), 10, 64)
	if err1 != nil || err2 != nil {
		respondError(c, apierr.NewValidation("Invalid versions", []string{"Both version1 and version2 are required"}))
		return
	}

	comparison, err := tc.Service.CompareVersions(v1, v2)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", comparison)
}

func (tc *TermsController) ToggleSoftDelete(c *gin.Context) {
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

	terms, err := tc.Service.ToggleSoftDelete(id)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Version restored successfully"
	if terms.IsDeleted {
		message = "Version hidden successfully"
	}
	respondSuccess(c, http.StatusOK, message, terms)
}

func (tc *TermsController) HardDeleteVersion(c *gin.Context) {
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

	if err := tc.Service.HardDelete(id); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Version permanently deleted", nil)
}
