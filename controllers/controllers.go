package controllers

import (
	"github.com/autumnvows/wedding_backend/database"
	"github.com/autumnvows/wedding_backend/services"
	"github.com/autumnvows/wedding_backend/storage"
)

var (
	rsvpService  *services.RsvpService
	photoService *services.PhotoService
)

// Init wires the controllers to the database connection and object store.
// Must be called after database.Connect.
func Init(store storage.ObjectStore) {
	rsvpService = services.NewRsvpService(database.DB)
	photoService = services.NewPhotoService(database.DB, store)
}
