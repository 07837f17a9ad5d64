package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/petcare-hub/api-go/services"
	"github.com/petcare-hub/api-go/storage"
	"github.com/petcare-hub/api-go/utils"
)

type HospitalController struct {
	Service *services.HospitalService
}

func NewHospitalController(service *services.HospitalService) *HospitalController {
	return &HospitalController{Service: service}
}

func (hc *HospitalController) GetHospital(c *gin.Context) {
	id, err := parseID(c, "hospitalId")
	if err != nil {
		respondError(c, err)
		return
	}

	hospital, err := hc.Service.GetHospitalByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", hospital)
}

// AddImages accepts up to five files under the "images" field.
func (hc *HospitalController) AddImages(c *gin.Context) {
	user := utils.GetUser(c)
	hospitalID, err := parseID(c, "hospitalId")
	if err != nil {
		respondError(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, invalidRequest(err))
		return
	}

	var uploads []storage.Upload
	for _, fileHeader := range form.File["images"] {
		file, err := fileHeader.Open()
		if err != nil {
			respondError(c, err)
			return
		}
		uploads = append(uploads, storage.Upload{
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Body:        file,
		})
	}

	images, err := hc.Service.AddImages(c.Request.Context(), hospitalID, user.UserID, uploads)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Images uploaded successfully", images)
}

func (hc *HospitalController) ListImages(c *gin.Context) {
	hospitalID, err := parseID(c, "hospitalId")
	if err != nil {
		respondError(c, err)
		return
	}

	images, err := hc.Service.ListImages(hospitalID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "", images)
}

func (hc *HospitalController) DeleteImage(c *gin.Context) {
	user := utils.GetUser(c)
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := hc.Service.DeleteImage(c.Request.Context(), id, user.UserID, user.IsAdmin()); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Image deleted successfully", nil)
}
