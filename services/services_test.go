package services

import (
	"fmt"
	"testing"

	"github.com/autumnvows/wedding_backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.InvitedGuest{},
		&models.RsvpResponse{},
		&models.AdditionalGuest{},
		&models.WeddingPhoto{},
		&models.PhotoReaction{},
		&models.PhotoComment{},
	))
	return db
}

func createGuest(t *testing.T, db *gorm.DB, name, email string) *models.InvitedGuest {
	t.Helper()

	guest := models.InvitedGuest{
		Name:       name,
		Email:      models.NormalizeEmail(email),
		InviteCode: fmt.Sprintf("code-%s-%s", t.Name(), email),
	}
	require.NoError(t, db.Create(&guest).Error)
	return &guest
}
