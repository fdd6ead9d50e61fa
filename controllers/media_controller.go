package controllers

import (
	"errors"
	"log"
	"net/http"

	"tyco-hotel-backend/services"
	"tyco-hotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type base64UploadPayload struct {
	Image  string `json:"image" binding:"required"`
	Folder string `json:"folder"`
}

type MediaController struct {
	MediaSvc *services.MediaService
}

func NewMediaController(svc *services.MediaService) *MediaController {
	return &MediaController{MediaSvc: svc}
}

// UploadRoomImages accepts a multipart form with 1-4 files under "images"
// and attaches them to the room. Files written before a failure are not
// cleaned up.
func (ctrl *MediaController) UploadRoomImages(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	files := form.File["images"]
	urls, err := ctrl.MediaSvc.AttachRoomImages(id, files)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONError(c, http.StatusNotFound, "Room not found")
		case errors.Is(err, services.ErrNoImages):
			utils.JSONError(c, http.StatusBadRequest, "At least one image is required")
		case errors.Is(err, services.ErrTooManyImages):
			utils.JSONError(c, http.StatusBadRequest, "You can only upload up to 4 images")
		case errors.Is(err, services.ErrImageTypeNotOK):
			utils.JSONError(c, http.StatusBadRequest, "Only jpg, jpeg, png and webp images are accepted")
		default:
			log.Printf("upload images for room %d failed: %v", id, err)
			utils.JSONError(c, http.StatusInternalServerError, "Upload failed")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "urls": urls})
}

// UploadBase64 stores a single base64-encoded image and returns its URL.
func (ctrl *MediaController) UploadBase64(c *gin.Context) {
	var payload base64UploadPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	folder := payload.Folder
	if folder == "" {
		folder = "misc"
	}

	url, err := ctrl.MediaSvc.SaveBase64Image(payload.Image, folder)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidImage):
			utils.JSONError(c, http.StatusBadRequest, "Image is not valid base64")
		case errors.Is(err, services.ErrInvalidFolder):
			utils.JSONError(c, http.StatusBadRequest, "Folder must be a plain directory name")
		default:
			log.Printf("base64 upload failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Upload failed")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "url": url})
}

// GetGallery lists every stored image URL for the public gallery page.
func (ctrl *MediaController) GetGallery(c *gin.Context) {
	urls, err := ctrl.MediaSvc.ListGallery()
	if err != nil {
		log.Printf("gallery listing failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list gallery")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "images": urls})
}
