package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petcare-hub/api-go/apierr"
	"github.com/petcare-hub/api-go/models"
	"github.com/petcare-hub/api-go/storage"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Status     string      `json:"status"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func newPagination(params models.ListParams, total int64) *Pagination {
	return &Pagination{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: params.TotalPages(total),
	}
}

func respondSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Status: "success", Message: message, Data: data})
}

func respondList(c *gin.Context, data interface{}, pagination *Pagination) {
	c.JSON(http.StatusOK, Response{Status: "success", Data: data, Pagination: pagination})
}

func respondError(c *gin.Context, err error) {
	apiErr := apierr.From(err)
	c.JSON(apiErr.Status, Response{
		Status:  "error",
		Message: apiErr.Message,
		Errors:  apiErr.Errors,
	})
}

func invalidRequest(err error) error {
	return apierr.NewValidation("Invalid request", []string{err.Error()})
}

func forbiddenAdminOnly() error {
	return apierr.NewForbidden("You are not authorized to perform this action")
}

func parseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, apierr.NewValidation("Invalid id", []string{"Path parameter " + name + " must be a positive integer"})
	}
	return uint(id), nil
}

func listParams(c *gin.Context) models.ListParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	params := models.ListParams{Page: page, Limit: limit}
	params.Normalize()
	return params
}

// formUpload reads one multipart file field into an Upload; a missing
// field is not an error, it just means no file was sent.
func formUpload(c *gin.Context, field string) (*storage.Upload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, apierr.NewValidation("Invalid upload", []string{err.Error()})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, apierr.NewValidation("Invalid upload", []string{err.Error()})
	}

	return &storage.Upload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	}, nil
}
