package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEvent returns the static event details that back the read-only screens.
func GetEvent(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"couple":        envOr("EVENT_COUPLE", "Mario & Elena"),
		"date":          envOr("EVENT_DATE", "2025-09-20"),
		"venue":         envOr("EVENT_VENUE", "Villa degli Ulivi, Toscana"),
		"rsvp_deadline": envOr("EVENT_RSVP_DEADLINE", "2025-08-15"),
	})
}
