package controllers

import (
	"errors"
	"net/http"

	"github.com/autumnvows/wedding_backend/services"
	"github.com/gin-gonic/gin"
)

type VerifyEmailInput struct {
	Email string `json:"email" binding:"required,email"`
}

const guestNotFoundMessage = "This email is not on our guest list. Please contact the hosts if this is an error."

// VerifyEmail godoc
// @Summary Verify an invitation email
// @Description Checks the email against the guest list and returns the guest together with any existing RSVP for pre-filling the form
// @Tags rsvp
// @Accept json
// @Produce json
// @Param email body VerifyEmailInput true "Email to verify"
// @Success 200 {object} map[string]interface{} "Guest info and existing RSVP"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Email not on the guest list"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/rsvp/verify [post]
func VerifyEmail(c *gin.Context) {
	var input VerifyEmailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guest, err := rsvpService.LookupGuest(input.Email)
	if err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": guestNotFoundMessage})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
		return
	}

	existing, err := rsvpService.CurrentResponse(guest.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
		return
	}

	resp := gin.H{
		"guest": gin.H{
			"id":   guest.ID,
			"name": guest.Name,
		},
	}
	if existing != nil {
		resp["existing_rsvp"] = existing
	}

	c.JSON(http.StatusOK, resp)
}

// GetMyRsvp godoc
// @Summary Current RSVP for the authenticated guest
// @Description Returns the logged-in guest's record and latest response with additional guests expanded
// @Tags rsvp
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Guest and current RSVP"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Not on the guest list"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/rsvp [get]
func GetMyRsvp(c *gin.Context) {
	email := c.MustGet("userEmail").(string)

	guest, err := rsvpService.LookupGuest(email)
	if err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": guestNotFoundMessage})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
		return
	}

	existing, err := rsvpService.CurrentResponse(guest.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
		return
	}

	resp := gin.H{
		"guest": gin.H{
			"id":    guest.ID,
			"name":  guest.Name,
			"email": guest.Email,
		},
	}
	if existing != nil {
		resp["rsvp"] = existing
	}

	c.JSON(http.StatusOK, resp)
}

// SubmitRsvp godoc
// @Summary Submit or replace an RSVP
// @Description Validates the whole form, then records the response. A prior response is superseded as a whole: attendance, texts and the additional-guest list together.
// @Tags rsvp
// @Accept json
// @Produce json
// @Param rsvp body services.RsvpForm true "RSVP form"
// @Success 200 {object} map[string]interface{} "Recorded response"
// @Failure 400 {object} map[string]interface{} "Validation failure with per-field violations"
// @Failure 404 {object} map[string]string "Email not on the guest list"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/rsvp [post]
func SubmitRsvp(c *gin.Context) {
	var form services.RsvpForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := rsvpService.Submit(form)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":      "Some fields are invalid",
				"violations": vErr.Violations,
			})
		case errors.Is(err, services.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": guestNotFoundMessage})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong while saving your RSVP, please try again"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Thank you for your RSVP!",
		"rsvp":    response,
	})
}
