package models

import (
	"time"
)

// WeddingPhoto is a guest-uploaded photo row. The image bytes live in object
// storage; the row only carries the public URL. Rows are never mutated.
type WeddingPhoto struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	GuestID      uint         `gorm:"not null;index" json:"guest_id"`
	Guest        InvitedGuest `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	ImageURL     string       `gorm:"size:512;not null" json:"image_url"`
	ThumbnailURL string       `gorm:"size:512" json:"thumbnail_url,omitempty"`
	Caption      string       `gorm:"type:text" json:"caption,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// PhotoReaction has toggle semantics: a row present means the guest liked the
// photo. At most one row per (photo, guest).
type PhotoReaction struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PhotoID      uint      `gorm:"not null;index:idx_photo_guest,unique" json:"photo_id"`
	GuestID      uint      `gorm:"not null;index:idx_photo_guest,unique" json:"guest_id"`
	ReactionType string    `gorm:"size:20;not null;default:'heart'" json:"reaction_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// PhotoComment is append-only.
type PhotoComment struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	PhotoID     uint         `gorm:"not null;index" json:"photo_id"`
	GuestID     uint         `gorm:"not null" json:"guest_id"`
	Guest       InvitedGuest `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	CommentText string       `gorm:"type:text;not null" json:"comment_text"`
	CreatedAt   time.Time    `json:"created_at"`
}
