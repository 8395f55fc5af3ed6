package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/autumnvows/wedding_backend/services"
	"github.com/autumnvows/wedding_backend/websocket"
	"github.com/gin-gonic/gin"
)

// UploadPhotos godoc
// @Summary Upload one or more photos
// @Description Accepts a multipart batch under the "photos" field with an optional shared "caption". Files are validated individually; the response reports success or failure per file.
// @Tags photos
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param photos formData file true "Image files (JPEG, PNG or HEIC, max 5MB each)"
// @Param caption formData string false "Caption shared by the batch"
// @Success 201 {object} map[string]interface{} "Per-file upload results"
// @Failure 400 {object} map[string]interface{} "No file stored"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not on the guest list"
// @Router /api/photos [post]
func UploadPhotos(c *gin.Context) {
	email := c.MustGet("userEmail").(string)

	guest, err := rsvpService.LookupGuest(email)
	if err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": guestNotFoundMessage})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	fileHeaders := form.File["photos"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one file is required"})
		return
	}
	caption := c.PostForm("caption")

	files := make([]services.UploadFile, 0, len(fileHeaders))
	openErrors := map[string]string{}
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			openErrors[fh.Filename] = "failed to read file"
			continue
		}
		defer f.Close()
		files = append(files, services.UploadFile{
			Name:        fh.Filename,
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
			Reader:      f,
		})
	}

	results := photoService.UploadBatch(guest, caption, files)
	for name, msg := range openErrors {
		results = append(results, services.UploadResult{Filename: name, Error: msg})
	}

	uploaded := 0
	for _, r := range results {
		if r.Photo != nil {
			uploaded++
			websocket.Broadcast(websocket.EventPhotoUploaded, r.Photo)
		}
	}

	status := http.StatusCreated
	if uploaded == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{
		"uploaded": uploaded,
		"failed":   len(results) - uploaded,
		"results":  results,
	})
}

// GetPhotos godoc
// @Summary Guest photo gallery page
// @Description Returns one page of guest-uploaded photos, newest first, 12 per page. has_more signals whether another page exists.
// @Tags photos
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Success 200 {object} map[string]interface{} "Photo page"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/photos [get]
func GetPhotos(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	photos, hasMore, err := photoService.ListPage(page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch photos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"photos":   photos,
		"page":     page,
		"has_more": hasMore,
	})
}

// GetCuratedPhotos returns the hosts' pre-selected photos listed straight from
// the curated bucket.
func GetCuratedPhotos(c *gin.Context) {
	photos, err := photoService.CuratedPhotos()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch photos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photos": photos})
}
