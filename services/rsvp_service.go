package services

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/autumnvows/wedding_backend/models"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ErrGuestNotFound is returned when an email is not on the guest list. It is
// an explicit absence signal, not a storage error: no write is attempted.
var ErrGuestNotFound = errors.New("guest not found")

// AdditionalGuestForm is one declared plus-one on the RSVP form.
type AdditionalGuestForm struct {
	Name                string `json:"name"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
}

// RsvpForm is the whole form submitted in one shot. The attendee's own name is
// never taken from the form; it comes from the guest record.
type RsvpForm struct {
	Email               string                `json:"email"`
	Attending           string                `json:"attending"`
	HasPlusOne          bool                  `json:"hasPlusOne"`
	DietaryRestrictions string                `json:"dietaryRestrictions"`
	SongRequest         string                `json:"songRequest"`
	AdditionalGuests    []AdditionalGuestForm `json:"additionalGuests"`
}

// FieldViolation reports one invalid form field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated field, not just the first. When it is
// returned nothing has been written.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	fields := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		fields[i] = v.Field
	}
	return "invalid rsvp form: " + strings.Join(fields, ", ")
}

// RsvpService owns guest lookup and the RSVP reconciliation flow: one current
// response per guest, superseded as a whole on every re-submission.
type RsvpService struct {
	db       *gorm.DB
	validate *validator.Validate
	log      zerolog.Logger
}

func NewRsvpService(db *gorm.DB) *RsvpService {
	return &RsvpService{
		db:       db,
		validate: validator.New(),
		log:      zerolog.New(os.Stdout).With().Timestamp().Str("component", "rsvp").Logger(),
	}
}

// LookupGuest normalizes the email and returns the matching guest record, or
// ErrGuestNotFound. Zero rows is not a storage error. If the store ever held
// more than one match the lowest created_at wins, deterministically.
func (s *RsvpService) LookupGuest(email string) (*models.InvitedGuest, error) {
	normalized := models.NormalizeEmail(email)

	var guests []models.InvitedGuest
	if err := s.db.Where("email = ?", normalized).
		Order("created_at ASC, id ASC").
		Limit(1).
		Find(&guests).Error; err != nil {
		s.log.Error().Err(err).Str("email", normalized).Msg("guest lookup failed")
		return nil, fmt.Errorf("failed to look up guest: %w", err)
	}

	if len(guests) == 0 {
		return nil, ErrGuestNotFound
	}
	return &guests[0], nil
}

// CurrentResponse returns the guest's latest response with its additional
// guests expanded, or nil when the guest has not answered yet.
func (s *RsvpService) CurrentResponse(guestID uint) (*models.RsvpResponse, error) {
	var responses []models.RsvpResponse
	if err := s.db.Where("guest_id = ?", guestID).
		Preload("AdditionalGuests").
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&responses).Error; err != nil {
		s.log.Error().Err(err).Uint("guest_id", guestID).Msg("response lookup failed")
		return nil, fmt.Errorf("failed to look up response: %w", err)
	}

	if len(responses) == 0 {
		return nil, nil
	}
	return &responses[0], nil
}

// Validate checks the whole form before any side effect and returns every
// violated field. A plus-one row left entirely blank is treated as an unfilled
// form row and ignored; a row with any content must carry a name.
func (s *RsvpService) Validate(form RsvpForm) []FieldViolation {
	var violations []FieldViolation

	if err := s.validate.Var(form.Email, "required,email"); err != nil {
		violations = append(violations, FieldViolation{
			Field:   "email",
			Message: "A valid email address is required",
		})
	}

	if form.Attending != "yes" && form.Attending != "no" {
		violations = append(violations, FieldViolation{
			Field:   "attending",
			Message: "Attending must be 'yes' or 'no'",
		})
	}

	if form.Attending == "yes" && form.HasPlusOne {
		for i, g := range form.AdditionalGuests {
			if strings.TrimSpace(g.Name) == "" && strings.TrimSpace(g.DietaryRestrictions) == "" {
				continue
			}
			if strings.TrimSpace(g.Name) == "" {
				violations = append(violations, FieldViolation{
					Field:   fmt.Sprintf("additionalGuests[%d].name", i),
					Message: "Additional guest name must not be empty",
				})
			}
		}
	}

	return violations
}

// Submit reconciles the form with any prior response inside one transaction.
// An existing response is updated in place and its children wholesale-replaced;
// delete-then-recreate of the parent row is deliberately not used so a failure
// mid-submit can never leave a guest who had answered with no answer at all.
func (s *RsvpService) Submit(form RsvpForm) (*models.RsvpResponse, error) {
	if violations := s.Validate(form); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	guest, err := s.LookupGuest(form.Email)
	if err != nil {
		return nil, err
	}

	attending := form.Attending == "yes"
	children := collectAdditionalGuests(form, attending)

	var result models.RsvpResponse
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing []models.RsvpResponse
		if err := tx.Where("guest_id = ?", guest.ID).
			Order("created_at DESC, id DESC").
			Find(&existing).Error; err != nil {
			return err
		}

		if len(existing) == 0 {
			result = models.RsvpResponse{
				GuestID:             guest.ID,
				Attending:           attending,
				DietaryRestrictions: form.DietaryRestrictions,
				Message:             form.SongRequest,
			}
			if err := tx.Create(&result).Error; err != nil {
				return err
			}
		} else {
			// Stray older rows left by pre-convention clients are removed so
			// exactly one response per guest remains.
			for _, stale := range existing[1:] {
				if err := tx.Where("rsvp_id = ?", stale.ID).
					Delete(&models.AdditionalGuest{}).Error; err != nil {
					return err
				}
				if err := tx.Delete(&models.RsvpResponse{}, stale.ID).Error; err != nil {
					return err
				}
			}

			result = existing[0]
			updates := map[string]interface{}{
				"attending":            attending,
				"dietary_restrictions": form.DietaryRestrictions,
				"message":              form.SongRequest,
			}
			if err := tx.Model(&models.RsvpResponse{}).
				Where("id = ?", result.ID).
				Updates(updates).Error; err != nil {
				return err
			}
			if err := tx.Where("rsvp_id = ?", result.ID).
				Delete(&models.AdditionalGuest{}).Error; err != nil {
				return err
			}

			result.Attending = attending
			result.DietaryRestrictions = form.DietaryRestrictions
			result.Message = form.SongRequest
		}

		for i := range children {
			children[i].RsvpID = result.ID
		}
		if len(children) > 0 {
			if err := tx.Create(&children).Error; err != nil {
				return err
			}
		}
		result.AdditionalGuests = children
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Uint("guest_id", guest.ID).Msg("rsvp submit failed")
		return nil, fmt.Errorf("failed to submit rsvp: %w", err)
	}

	s.log.Info().
		Uint("guest_id", guest.ID).
		Bool("attending", attending).
		Int("additional_guests", len(children)).
		Msg("rsvp recorded")
	return &result, nil
}

// collectAdditionalGuests keeps only named plus-ones, and none at all when the
// guest declined: the attendance flag, texts and child list supersede together.
func collectAdditionalGuests(form RsvpForm, attending bool) []models.AdditionalGuest {
	if !attending || !form.HasPlusOne {
		return nil
	}

	var children []models.AdditionalGuest
	for _, g := range form.AdditionalGuests {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			continue
		}
		children = append(children, models.AdditionalGuest{
			Name:                name,
			DietaryRestrictions: strings.TrimSpace(g.DietaryRestrictions),
		})
	}
	return children
}
