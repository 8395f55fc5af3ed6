package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/autumnvows/wedding_backend/database"
	"github.com/autumnvows/wedding_backend/models"
	"github.com/autumnvows/wedding_backend/services"
	"github.com/autumnvows/wedding_backend/utils"
	"github.com/autumnvows/wedding_backend/websocket"
	"github.com/gin-gonic/gin"
)

type AddCommentInput struct {
	CommentText string `json:"comment_text" binding:"required"`
}

func photoIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo ID"})
		return 0, false
	}
	return uint(id), true
}

// ToggleReaction godoc
// @Summary Toggle a heart on a photo
// @Description A reaction row present means liked; toggling removes or creates it
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 200 {object} map[string]interface{} "New reaction state and count"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not on the guest list"
// @Failure 404 {object} map[string]string "Photo not found"
// @Router /api/photos/{id}/reactions [post]
func ToggleReaction(c *gin.Context) {
	photoID, ok := photoIDParam(c)
	if !ok {
		return
	}
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

	var photo models.WeddingPhoto
	if err := database.DB.First(&photo, photoID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}

	liked := false
	var existing models.PhotoReaction
	if err := database.DB.Where("photo_id = ? AND guest_id = ?", photoID, guest.ID).
		First(&existing).Error; err == nil {
		if err := database.DB.Delete(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reaction"})
			return
		}
	} else {
		reaction := models.PhotoReaction{
			PhotoID:      photoID,
			GuestID:      guest.ID,
			ReactionType: "heart",
		}
		if err := database.DB.Create(&reaction).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reaction"})
			return
		}
		liked = true
	}

	var count int64
	database.DB.Model(&models.PhotoReaction{}).Where("photo_id = ?", photoID).Count(&count)

	websocket.Broadcast(websocket.EventReactionToggled, gin.H{
		"photo_id": photoID,
		"count":    count,
	})

	c.JSON(http.StatusOK, gin.H{
		"liked": liked,
		"count": count,
	})
}

// GetReactions returns the reaction count for a photo, and whether the caller
// has reacted when a valid bearer token accompanies the request.
func GetReactions(c *gin.Context) {
	photoID, ok := photoIDParam(c)
	if !ok {
		return
	}

	var count int64
	if err := database.DB.Model(&models.PhotoReaction{}).
		Where("photo_id = ?", photoID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reactions"})
		return
	}

	reacted := false
	if email, ok := optionalBearerEmail(c); ok {
		if guest, err := rsvpService.LookupGuest(email); err == nil {
			var existing models.PhotoReaction
			if err := database.DB.Where("photo_id = ? AND guest_id = ?", photoID, guest.ID).
				First(&existing).Error; err == nil {
				reacted = true
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   count,
		"reacted": reacted,
	})
}

// GetComments returns all comments on a photo, oldest first, with the
// commenter's name expanded.
func GetComments(c *gin.Context) {
	photoID, ok := photoIDParam(c)
	if !ok {
		return
	}

	var comments []models.PhotoComment
	if err := database.DB.Where("photo_id = ?", photoID).
		Preload("Guest").
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// AddComment godoc
// @Summary Comment on a photo
// @Tags photos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Param comment body AddCommentInput true "Comment"
// @Success 201 {object} map[string]interface{} "Created comment"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not on the guest list"
// @Failure 404 {object} map[string]string "Photo not found"
// @Router /api/photos/{id}/comments [post]
func AddComment(c *gin.Context) {
	photoID, ok := photoIDParam(c)
	if !ok {
		return
	}
	email := c.MustGet("userEmail").(string)

	var input AddCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(input.CommentText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment must not be empty"})
		return
	}

	guest, err := rsvpService.LookupGuest(email)
	if err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": guestNotFoundMessage})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
		return
	}

	var photo models.WeddingPhoto
	if err := database.DB.First(&photo, photoID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}

	comment := models.PhotoComment{
		PhotoID:     photoID,
		GuestID:     guest.ID,
		CommentText: strings.TrimSpace(input.CommentText),
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}
	comment.Guest = *guest

	websocket.Broadcast(websocket.EventCommentAdded, comment)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment added",
		"comment": comment,
	})
}

// optionalBearerEmail parses an Authorization header if one is present.
// Reactions are publicly readable; the reacted flag just needs a best-effort
// identity.
func optionalBearerEmail(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	_, email, err := utils.ParseToken(parts[1])
	if err != nil || email == "" {
		return "", false
	}
	return email, true
}
