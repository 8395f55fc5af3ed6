package models

import (
	"strings"
	"time"
)

// InvitedGuest is an identity row on the guest list. Rows are created by the
// hosts through the admin API and are immutable from the visitor's side.
type InvitedGuest struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Email      string    `gorm:"size:255;not null;unique" json:"email"`
	InviteCode string    `gorm:"size:32;not null;unique" json:"invite_code"`
	CreatedAt  time.Time `json:"created_at"`
}

// NormalizeEmail lowercases and trims an address so lookups are
// case-insensitive. Guest emails are stored already normalized.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
