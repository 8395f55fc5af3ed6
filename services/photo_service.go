package services

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/autumnvows/wedding_backend/models"
	"github.com/autumnvows/wedding_backend/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const (
	// MaxUploadBytes is the per-file size ceiling. A file of exactly this size
	// is accepted; one byte over is rejected.
	MaxUploadBytes = 5 << 20

	// PhotosPerPage is the fixed gallery page size.
	PhotosPerPage = 12

	// PhotoBucket holds guest uploads, CuratedBucket the hosts' own photos.
	PhotoBucket   = "wedding-photos"
	CuratedBucket = "our-photos"
)

var allowedUploadExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".heic": true,
}

var allowedUploadMIMEs = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/heic": true,
}

var curatedImagePattern = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|webp|gif)$`)

// UploadFile is one file of an upload batch as received from the client.
type UploadFile struct {
	Name        string
	Size        int64
	ContentType string
	Reader      io.Reader
}

// UploadResult reports the outcome for a single file. Partial batch failure is
// allowed: successes are kept, failures carry a per-file reason.
type UploadResult struct {
	Filename string               `json:"filename"`
	Photo    *models.WeddingPhoto `json:"photo,omitempty"`
	Error    string               `json:"error,omitempty"`
}

// CuratedPhoto is a host-supplied image listed straight from the curated
// bucket. There is no database row behind it.
type CuratedPhoto struct {
	Key     string `json:"key"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// PhotoService owns the photo sharing flow: batch upload into object storage
// plus one row per stored object, and the paginated read path.
type PhotoService struct {
	db    *gorm.DB
	store storage.ObjectStore
	log   zerolog.Logger
}

func NewPhotoService(db *gorm.DB, store storage.ObjectStore) *PhotoService {
	return &PhotoService{
		db:    db,
		store: store,
		log:   zerolog.New(os.Stdout).With().Timestamp().Str("component", "photos").Logger(),
	}
}

// UploadBatch stores each accepted file under a collision-resistant key
// namespaced by the uploader and inserts one WeddingPhoto row per stored
// object. The caption is shared across the batch. A row-insert failure after a
// successful upload triggers a best-effort delete of the orphaned object.
func (s *PhotoService) UploadBatch(guest *models.InvitedGuest, caption string, files []UploadFile) []UploadResult {
	results := make([]UploadResult, 0, len(files))
	for _, f := range files {
		results = append(results, s.uploadOne(guest, caption, f))
	}
	return results
}

func (s *PhotoService) uploadOne(guest *models.InvitedGuest, caption string, f UploadFile) UploadResult {
	result := UploadResult{Filename: f.Name}

	ext := strings.ToLower(path.Ext(f.Name))
	if !allowedUploadExts[ext] && !allowedUploadMIMEs[f.ContentType] {
		result.Error = "unsupported file type, only JPEG, PNG and HEIC are accepted"
		return result
	}
	if f.Size > MaxUploadBytes {
		result.Error = "file exceeds the 5MB size limit"
		return result
	}

	// Sizes reported by multipart headers are trusted up front but re-checked
	// against the actual bytes.
	data, err := io.ReadAll(io.LimitReader(f.Reader, MaxUploadBytes+1))
	if err != nil {
		s.log.Error().Err(err).Str("file", f.Name).Msg("failed to read upload")
		result.Error = "failed to read file"
		return result
	}
	if int64(len(data)) > MaxUploadBytes {
		result.Error = "file exceeds the 5MB size limit"
		return result
	}

	key := fmt.Sprintf("%d/%d_%s%s", guest.ID, time.Now().UnixMilli(), uuid.NewString(), ext)
	if err := s.store.Upload(PhotoBucket, key, bytes.NewReader(data)); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("object upload failed")
		result.Error = "failed to store file"
		return result
	}

	photo := models.WeddingPhoto{
		GuestID:      guest.ID,
		ImageURL:     s.store.PublicURL(PhotoBucket, key),
		ThumbnailURL: s.makeThumbnail(key, ext, data),
		Caption:      caption,
	}
	if err := s.db.Create(&photo).Error; err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("photo row insert failed")
		// The object is now orphaned; clean it up best-effort.
		if delErr := s.store.Delete(PhotoBucket, key); delErr != nil {
			s.log.Warn().Err(delErr).Str("key", key).Msg("orphaned object cleanup failed")
		}
		result.Error = "failed to save photo"
		return result
	}

	photo.Guest = *guest
	result.Photo = &photo
	return result
}

// makeThumbnail stores a scaled-down JPEG next to the original. HEIC and
// undecodable files are skipped; a thumbnail is never worth failing an upload.
func (s *PhotoService) makeThumbnail(key, ext string, data []byte) string {
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return ""
	}

	thumb, err := storage.MakeThumbnail(data)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("thumbnail generation failed")
		return ""
	}

	thumbKey := strings.TrimSuffix(key, ext) + "_thumb.jpg"
	if err := s.store.Upload(PhotoBucket, thumbKey, bytes.NewReader(thumb)); err != nil {
		s.log.Warn().Err(err).Str("key", thumbKey).Msg("thumbnail upload failed")
		return ""
	}
	return s.store.PublicURL(PhotoBucket, thumbKey)
}

// ListPage returns one gallery page, newest first, with the uploader expanded.
// hasMore is derived from whether the page came back full; page 1 restarts
// from the top.
func (s *PhotoService) ListPage(page int) ([]models.WeddingPhoto, bool, error) {
	if page < 1 {
		page = 1
	}

	var photos []models.WeddingPhoto
	if err := s.db.Preload("Guest").
		Order("created_at DESC, id DESC").
		Offset((page - 1) * PhotosPerPage).
		Limit(PhotosPerPage).
		Find(&photos).Error; err != nil {
		s.log.Error().Err(err).Int("page", page).Msg("photo page fetch failed")
		return nil, false, fmt.Errorf("failed to fetch photos: %w", err)
	}

	return photos, len(photos) == PhotosPerPage, nil
}

// CuratedPhotos lists the hosts' pre-selected images straight from the curated
// bucket with public URLs and filename-derived captions.
func (s *PhotoService) CuratedPhotos() ([]CuratedPhoto, error) {
	objects, err := s.store.List(CuratedBucket, "")
	if err != nil {
		s.log.Error().Err(err).Msg("curated bucket listing failed")
		return nil, fmt.Errorf("failed to list curated photos: %w", err)
	}

	photos := make([]CuratedPhoto, 0, len(objects))
	for _, obj := range objects {
		if !curatedImagePattern.MatchString(obj.Key) {
			continue
		}
		photos = append(photos, CuratedPhoto{
			Key:     obj.Key,
			URL:     s.store.PublicURL(CuratedBucket, obj.Key),
			Caption: captionFromFilename(obj.Key),
		})
	}
	return photos, nil
}

// captionFromFilename turns "first-dance_2025.jpg" into "First dance 2025".
// Filenames that are only digits or too short yield no caption.
func captionFromFilename(key string) string {
	name := path.Base(key)
	name = strings.TrimSuffix(name, path.Ext(name))
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	name = strings.TrimSpace(name)

	if len(name) <= 3 || allDigits(name) {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
