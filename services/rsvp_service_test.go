package services

import (
	"testing"

	"github.com/autumnvows/wedding_backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupGuestNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewRsvpService(db)

	_, err := svc.LookupGuest("nobody@example.com")
	assert.ErrorIs(t, err, ErrGuestNotFound)

	// A miss never creates anything
	var count int64
	require.NoError(t, db.Model(&models.RsvpResponse{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLookupGuestNormalizesEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewRsvpService(db)
	createGuest(t, db, "Mario Rossi", "mario@example.com")

	guest, err := svc.LookupGuest("  MARIO@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "Mario Rossi", guest.Name)
}

func TestValidateReportsEveryViolation(t *testing.T) {
	db := newTestDB(t)
	svc := NewRsvpService(db)

	form := RsvpForm{
		Email:      "not-an-email",
		Attending:  "maybe",
		HasPlusOne: true,
		AdditionalGuests: []AdditionalGuestForm{
			{Name: "Anna"},
			{Name: "", DietaryRestrictions: "vegan"},
		},
	}

	violations := svc.Validate(form)
	fields := make([]string, len(violations))
	for i, v := range violations {
		fields[i] = v.Field
	}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "attending")
	// attending is invalid so the plus-one check does not run yet
	assert.Len(t, violations, 2)
}

func TestValidatePlusOneNames(t *testing.T) {
	db := newTestDB(t)
	svc := NewRsvpService(db)

	form := RsvpForm{
		Email:      "mario@example.com",
		Attending:  "yes",
		HasPlusOne: true,
		AdditionalGuests: []AdditionalGuestForm{
			{Name: "Anna", DietaryRestrictions: ""},
			{Name: "", DietaryRestrictions: "vegan"},
			{Name: "", DietaryRestrictions: ""}, // blank row, ignored
		},
	}

	violations := svc.Validate(form)
	require.Len(t, violations, 1)
	assert.Equal(t, "additionalGuests[1].name", violations[0].Field)
}

func TestSubmitValidationFailureWritesNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewRsvpService(db)
	createGuest(t, db, "Mario Rossi", "mario@example.com")

	form := RsvpForm{
		Email:      "mario@example.com",
		Attending:  "yes",
		HasPlusOne: true,
		AdditionalGuests: []AdditionalGuestForm{
			{Name: "Anna"},
			{Name: "", DietaryRestrictions: "vegan"},
		},
	}

	_, err := svc.Submit(form)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	var responses, children int64
	require.NoError(t, db.Model(&models.RsvpResponse{}).Count(&responses).Error)
	require.NoError(t, db.Model(&models.AdditionalGuest{}).Count(&children).Error)
	assert.Zero(t, responses)
	assert.Zero(t, children)
}

func TestSubmitUnknownGuestWritesNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewRsvpService(db)

	_, err := svc.Submit(RsvpForm{Email: "stranger@example.com", Attending: "yes"})
	assert.ErrorIs(t, err, ErrGuestNotFound)

	var count int64
	require.NoError(t, db.Model(&models.RsvpResponse{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitFirstResponse(t *testing.T) {
	db := newTestDB(t)
	svc := NewRsvpService(db)
	guest := createGuest(t, db, "Mario Rossi", "mario@example.com")

	form := RsvpForm{
		Email:               "mario@example.com",
		Attending:           "yes",
		HasPlusOne:          true,
		DietaryRestrictions: "no nuts",
		SongRequest:         "That's Amore",
		AdditionalGuests: []AdditionalGuestForm{
			{Name: "Anna", DietaryRestrictions: "vegan"},
			{Name: "  Luca  "},
			{Name: "", DietaryRestrictions: ""},
		},
	}

	resp, err := svc.Submit(form)
	require.NoError(t, err)
	assert.Equal(t, guest.ID, resp.GuestID)
	assert.True(t, resp.Attending)
	assert.Equal(t, "no nuts", resp.DietaryRestrictions)
	assert.Equal(t, "That's Amore", resp.Message)

	var children []models.AdditionalGuest
	require.NoError(t, db.Where("rsvp_id = ?", resp.ID).Order("id").Find(&children).Error)
	require.Len(t, children, 2)
	assert.Equal(t, "Anna", children[0].Name)
	assert.Equal(t, "vegan", children[0].DietaryRestrictions)
	assert.Equal(t, "Luca", children[1].Name)
}

func TestSubmitDeclineIgnoresAdditionalGuests(t *testing.T) {
	db := newTestDB(t)
	svc := NewRsvpService(db)
	guest := createGuest(t, db, "Mario Rossi", "mario@example.com")

	form := RsvpForm{
		Email:      "mario@example.com",
		Attending:  "no",
		HasPlusOne: true,
		AdditionalGuests: []AdditionalGuestForm{
			{Name: "Anna"},
		},
	}

	resp, err := svc.Submit(form)
	require.NoError(t, err)
	assert.False(t, resp.Attending)

	var responses, children int64
	require.NoError(t, db.Model(&models.RsvpResponse{}).Where("guest_id = ?", guest.ID).Count(&responses).Error)
	require.NoError(t, db.Model(&models.AdditionalGuest{}).Count(&children).Error)
	assert.EqualValues(t, 1, responses)
	assert.Zero(t, children)
}

func TestResubmitReplacesWholly(t *testing.T) {
	db := newTestDB(t)
	svc := NewRsvpService(db)
	guest := createGuest(t, db, "Mario Rossi", "mario@example.com")

	_, err := svc.Submit(RsvpForm{Email: "mario@example.com", Attending: "no"})
	require.NoError(t, err)

	resp, err := svc.Submit(RsvpForm{
		Email:      "mario@example.com",
		Attending:  "yes",
		HasPlusOne: true,
		AdditionalGuests: []AdditionalGuestForm{
			{Name: "Anna"},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Attending)

	// Exactly one response remains, with exactly the latest children
	var responses []models.RsvpResponse
	require.NoError(t, db.Where("guest_id = ?", guest.ID).Find(&responses).Error)
	require.Len(t, responses, 1)
	assert.True(t, responses[0].Attending)

	var children []models.AdditionalGuest
	require.NoError(t, db.Find(&children).Error)
	require.Len(t, children, 1)
	assert.Equal(t, "Anna", children[0].Name)
	assert.Equal(t, responses[0].ID, children[0].RsvpID)
}

func TestResubmitNeverMergesFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewRsvpService(db)
	createGuest(t, db, "Mario Rossi", "mario@example.com")

	_, err := svc.Submit(RsvpForm{
		Email:               "mario@example.com",
		Attending:           "yes",
		DietaryRestrictions: "no nuts",
		SongRequest:         "That's Amore",
	})
	require.NoError(t, err)

	// The replacement leaves both texts blank; nothing survives from before
	resp, err := svc.Submit(RsvpForm{Email: "mario@example.com", Attending: "yes"})
	require.NoError(t, err)
	assert.Empty(t, resp.DietaryRestrictions)
	assert.Empty(t, resp.Message)

	var stored models.RsvpResponse
	require.NoError(t, db.First(&stored, resp.ID).Error)
	assert.Empty(t, stored.DietaryRestrictions)
	assert.Empty(t, stored.Message)
}

func TestSubmitIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewRsvpService(db)
	guest := createGuest(t, db, "Mario Rossi", "mario@example.com")

	form := RsvpForm{
		Email:      "mario@example.com",
		Attending:  "yes",
		HasPlusOne: true,
		AdditionalGuests: []AdditionalGuestForm{
			{Name: "Anna"},
		},
	}

	first, err := svc.Submit(form)
	require.NoError(t, err)
	second, err := svc.Submit(form)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var responses, children int64
	require.NoError(t, db.Model(&models.RsvpResponse{}).Where("guest_id = ?", guest.ID).Count(&responses).Error)
	require.NoError(t, db.Model(&models.AdditionalGuest{}).Count(&children).Error)
	assert.EqualValues(t, 1, responses)
	assert.EqualValues(t, 1, children)
}

func TestSubmitCollapsesStrayResponses(t *testing.T) {
	db := newTestDB(t)
	svc := NewRsvpService(db)
	guest := createGuest(t, db, "Mario Rossi", "mario@example.com")

	// Rows left behind by pre-convention clients that inserted instead of updating
	for i := 0; i < 3; i++ {
		stray := models.RsvpResponse{GuestID: guest.ID, Attending: i%2 == 0}
		require.NoError(t, db.Create(&stray).Error)
		require.NoError(t, db.Create(&models.AdditionalGuest{RsvpID: stray.ID, Name: "Old"}).Error)
	}

	_, err := svc.Submit(RsvpForm{Email: "mario@example.com", Attending: "no"})
	require.NoError(t, err)

	var responses, children int64
	require.NoError(t, db.Model(&models.RsvpResponse{}).Where("guest_id = ?", guest.ID).Count(&responses).Error)
	require.NoError(t, db.Model(&models.AdditionalGuest{}).Count(&children).Error)
	assert.EqualValues(t, 1, responses)
	assert.Zero(t, children)
}

func TestCurrentResponse(t *testing.T) {
	db := newTestDB(t)
	svc := NewRsvpService(db)
	guest := createGuest(t, db, "Mario Rossi", "mario@example.com")

	resp, err := svc.CurrentResponse(guest.ID)
	require.NoError(t, err)
	assert.Nil(t, resp)

	_, err = svc.Submit(RsvpForm{
		Email:      "mario@example.com",
		Attending:  "yes",
		HasPlusOne: true,
		AdditionalGuests: []AdditionalGuestForm{
			{Name: "Anna"},
		},
	})
	require.NoError(t, err)

	resp, err = svc.CurrentResponse(guest.ID)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, resp.Attending)
	require.Len(t, resp.AdditionalGuests, 1)
	assert.Equal(t, "Anna", resp.AdditionalGuests[0].Name)
}
