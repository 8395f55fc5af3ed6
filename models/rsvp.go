package models

import (
	"time"
)

// RsvpResponse is a guest's current attendance answer. The application keeps
// exactly one row per guest: re-submitting updates the row in place and
// wholesale-replaces its additional guests.
type RsvpResponse struct {
	ID                  uint              `gorm:"primaryKey" json:"id"`
	GuestID             uint              `gorm:"not null;index" json:"guest_id"`
	Guest               InvitedGuest      `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	Attending           bool              `gorm:"not null" json:"attending"`
	DietaryRestrictions string            `gorm:"type:text" json:"dietary_restrictions,omitempty"`
	Message             string            `gorm:"type:text" json:"message,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
	AdditionalGuests    []AdditionalGuest `gorm:"foreignKey:RsvpID" json:"additional_guests,omitempty"`
}

// AdditionalGuest is a named plus-one owned by exactly one RsvpResponse.
// Children never outlive their parent response.
type AdditionalGuest struct {
	ID                  uint   `gorm:"primaryKey" json:"id"`
	RsvpID              uint   `gorm:"not null;index" json:"rsvp_id"`
	Name                string `gorm:"size:255;not null" json:"name"`
	DietaryRestrictions string `gorm:"type:text" json:"dietary_restrictions,omitempty"`
}
