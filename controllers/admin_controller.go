package controllers

import (
	"net/http"

	"github.com/autumnvows/wedding_backend/database"
	"github.com/autumnvows/wedding_backend/models"
	"github.com/autumnvows/wedding_backend/utils"
	"github.com/gin-gonic/gin"
)

type CreateGuestInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// CreateGuest godoc
// @Summary Add a guest to the guest list
// @Description Creates an invited guest with a generated invite code. Guest rows are the gate for RSVP, registration and photo upload.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param guest body CreateGuestInput true "Guest"
// @Success 201 {object} map[string]interface{} "Created guest"
// @Failure 400 {object} map[string]string "Invalid input or duplicate email"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin access required"
// @Router /api/admin/guests [post]
func CreateGuest(c *gin.Context) {
	var input CreateGuestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := models.NormalizeEmail(input.Email)

	var existing models.InvitedGuest
	if result := database.DB.Where("email = ?", email).First(&existing); result.RowsAffected > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A guest with this email already exists"})
		return
	}

	code, err := utils.GenerateInviteCode()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invite code"})
		return
	}

	guest := models.InvitedGuest{
		Name:       input.Name,
		Email:      email,
		InviteCode: code,
	}
	if err := database.DB.Create(&guest).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Guest added to the list",
		"guest":   guest,
	})
}

// ListGuests godoc
// @Summary Guest list with RSVP status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Guests with status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin access required"
// @Router /api/admin/guests [get]
func ListGuests(c *gin.Context) {
	var guests []models.InvitedGuest
	if err := database.DB.Order("created_at ASC, id ASC").Find(&guests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guests"})
		return
	}

	var responses []models.RsvpResponse
	if err := database.DB.Preload("AdditionalGuests").
		Order("created_at DESC, id DESC").
		Find(&responses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch responses"})
		return
	}

	// Latest response per guest; the list is already newest-first.
	latest := make(map[uint]*models.RsvpResponse, len(responses))
	for i := range responses {
		r := &responses[i]
		if _, ok := latest[r.GuestID]; !ok {
			latest[r.GuestID] = r
		}
	}

	entries := make([]gin.H, 0, len(guests))
	for _, g := range guests {
		entry := gin.H{
			"guest":  g,
			"status": "pending",
		}
		if r, ok := latest[g.ID]; ok {
			if r.Attending {
				entry["status"] = "attending"
			} else {
				entry["status"] = "declined"
			}
			entry["rsvp"] = r
		}
		entries = append(entries, entry)
	}

	c.JSON(http.StatusOK, gin.H{"guests": entries})
}

// RsvpSummary godoc
// @Summary RSVP totals for the dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Counts and headcount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin access required"
// @Router /api/admin/rsvps/summary [get]
func RsvpSummary(c *gin.Context) {
	var totalGuests int64
	if err := database.DB.Model(&models.InvitedGuest{}).Count(&totalGuests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch summary"})
		return
	}

	var responses []models.RsvpResponse
	if err := database.DB.Preload("AdditionalGuests").Find(&responses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch summary"})
		return
	}

	attending, declined := 0, 0
	headcount := 0
	for _, r := range responses {
		if r.Attending {
			attending++
			headcount += 1 + len(r.AdditionalGuests)
		} else {
			declined++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_guests": totalGuests,
		"attending":    attending,
		"declined":     declined,
		"pending":      totalGuests - int64(attending) - int64(declined),
		"headcount":    headcount,
	})
}
