package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"tyco-hotel-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNoImages       = errors.New("no_images")
	ErrTooManyImages  = errors.New("too_many_images")
	ErrInvalidImage   = errors.New("invalid_image")
	ErrImageTypeNotOK = errors.New("unsupported_image_type")
	ErrInvalidFolder  = errors.New("invalid_folder")
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// MediaService writes uploaded room and gallery images under a local uploads
// directory that the router serves statically, and records the resulting
// URLs on the room document. There is no rollback: files written before a
// later failure stay on disk.
type MediaService struct {
	DB      *gorm.DB
	BaseDir string // e.g. "uploads"
	BaseURL string // e.g. "/uploads"
}

func NewMediaService(db *gorm.DB, baseDir, baseURL string) *MediaService {
	return &MediaService{
		DB:      db,
		BaseDir: baseDir,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *MediaService) roomDir(roomID uint) string {
	return filepath.Join(s.BaseDir, "rooms", fmt.Sprintf("%d", roomID))
}

func (s *MediaService) urlFor(relPath string) string {
	return s.BaseURL + "/" + filepath.ToSlash(relPath)
}

// AttachRoomImages stores 1-4 uploaded files for a room and appends their
// URLs to the room's image list. The 4-image cap counts the images the room
// already has.
func (s *MediaService) AttachRoomImages(roomID uint, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, ErrNoImages
	}

	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room: %w", err)
	}

	existing, err := models.DecodeStringList(room.Images)
	if err != nil {
		return nil, fmt.Errorf("failed to decode room images: %w", err)
	}
	if len(existing)+len(files) > models.MaxRoomImages {
		return nil, ErrTooManyImages
	}

	dir := s.roomDir(roomID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("mkdir uploads dir: %w", err)
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if !allowedImageExts[ext] {
			return nil, ErrImageTypeNotOK
		}

		name := uuid.NewString() + ext
		dst := filepath.Join(dir, name)
		if err := saveUploadedFile(fh, dst); err != nil {
			return nil, fmt.Errorf("write image: %w", err)
		}

		rel, _ := filepath.Rel(s.BaseDir, dst)
		urls = append(urls, s.urlFor(rel))
	}

	updated := append(existing, urls...)
	encoded, err := models.EncodeStringList(updated)
	if err != nil {
		return nil, fmt.Errorf("failed to encode room images: %w", err)
	}
	if err := s.DB.Model(&room).Update("images", encoded).Error; err != nil {
		return nil, fmt.Errorf("failed to update room images: %w", err)
	}

	return urls, nil
}

// validFolderName accepts a single path element: no separators, no "..",
// nothing absolute. The folder arrives from the request payload, so it must
// not be able to steer the write outside the uploads directory.
func validFolderName(folder string) bool {
	if folder == "" || folder == "." || folder == ".." {
		return false
	}
	if strings.ContainsAny(folder, `/\`) {
		return false
	}
	return folder == filepath.Base(folder)
}

// SaveBase64Image stores a data-URL or raw base64 JPEG under the given
// subdirectory and returns its public URL. Kept for the admin console's
// paste-style uploads.
func (s *MediaService) SaveBase64Image(b64, subdir string) (string, error) {
	if !validFolderName(subdir) {
		return "", ErrInvalidFolder
	}

	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", ErrInvalidImage
	}

	dir := filepath.Join(s.BaseDir, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	name := uuid.NewString() + ".jpg"
	dst := filepath.Join(dir, name)
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	rel, _ := filepath.Rel(s.BaseDir, dst)
	return s.urlFor(rel), nil
}

// ListGallery walks the uploads tree and returns the URL of every stored
// image, sorted for a stable gallery order.
func (s *MediaService) ListGallery() ([]string, error) {
	urls := []string{}

	err := filepath.WalkDir(s.BaseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !allowedImageExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		rel, relErr := filepath.Rel(s.BaseDir, path)
		if relErr != nil {
			return relErr
		}
		urls = append(urls, s.urlFor(rel))
		return nil
	})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return urls, nil
		}
		return nil, fmt.Errorf("failed to walk uploads: %w", err)
	}

	sort.Strings(urls)
	return urls, nil
}

func saveUploadedFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
