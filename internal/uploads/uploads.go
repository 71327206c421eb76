package uploads

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/foliocms/foliocms/pkg/logger"
)

// MaxFileSize is the upload ceiling, checked before anything touches disk.
const MaxFileSize = 10 << 20 // 10 MiB

// PublicPath is the URL prefix under which stored assets are served.
const PublicPath = "/api/files"

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var allowedTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
}

var (
	ErrTypeNotAllowed = errors.New("file type not allowed")
	ErrTooLarge       = fmt.Errorf("file too large, maximum size is %dMB", MaxFileSize/(1024*1024))
	errBadSubfolder   = errors.New("invalid subfolder")
)

// FileInfo describes a stored asset.
type FileInfo struct {
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename,omitempty"`
	Size             int64     `json:"size"`
	MimeType         string    `json:"mime_type,omitempty"`
	Modified         time.Time `json:"modified"`
	URL              string    `json:"url"`
}

// Backend stores asset bytes under slash-separated keys.
type Backend interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Remove(ctx context.Context, key string) (bool, error)
	List(ctx context.Context, subfolder string) ([]FileInfo, error)
}

// Manager validates and post-processes uploads before handing them to a
// backend. One Manager serves the whole process.
type Manager struct {
	backend Backend
}

func NewManager(b Backend) *Manager {
	return &Manager{backend: b}
}

// Save validates the payload, generates a unique filename preserving the
// original extension and stores the bytes. Raster images are re-encoded
// (truecolor, longest side capped at 1920px); a re-encode failure keeps
// the original bytes and is only logged.
func (m *Manager) Save(ctx context.Context, originalName, contentType string, data []byte, subfolder string) (FileInfo, error) {
	if !allowedTypes[contentType] {
		return FileInfo{}, fmt.Errorf("%w: %s", ErrTypeNotAllowed, contentType)
	}
	if int64(len(data)) > MaxFileSize {
		return FileInfo{}, ErrTooLarge
	}
	sub, err := cleanSubfolder(subfolder)
	if err != nil {
		return FileInfo{}, err
	}

	ext := strings.ToLower(path.Ext(originalName))
	filename := uuid.NewString() + ext
	key := filename
	if sub != "" {
		key = sub + "/" + filename
	}

	if allowedImageTypes[contentType] {
		if optimized, err := optimizeImage(data, contentType); err != nil {
			logger.Warnf("image optimization failed for %s: %v", originalName, err)
		} else {
			data = optimized
		}
	}

	if err := m.backend.Put(ctx, key, data, contentType); err != nil {
		return FileInfo{}, fmt.Errorf("store upload: %w", err)
	}

	return FileInfo{
		Filename:         filename,
		OriginalFilename: originalName,
		Size:             int64(len(data)),
		MimeType:         contentType,
		Modified:         time.Now().UTC(),
		URL:              PublicPath + "/" + key,
	}, nil
}

// Delete removes a stored asset. Returns false when nothing matched or the
// name would escape the storage root.
func (m *Manager) Delete(ctx context.Context, filename, subfolder string) (bool, error) {
	sub, err := cleanSubfolder(subfolder)
	if err != nil {
		return false, nil
	}
	if filename == "" || strings.ContainsAny(filename, "/\\") || filename == ".." {
		return false, nil
	}
	key := filename
	if sub != "" {
		key = sub + "/" + filename
	}
	return m.backend.Remove(ctx, key)
}

// List returns stored assets newest-first. A missing directory yields an
// empty list, never an error.
func (m *Manager) List(ctx context.Context, subfolder string) ([]FileInfo, error) {
	sub, err := cleanSubfolder(subfolder)
	if err != nil {
		return []FileInfo{}, nil
	}
	return m.backend.List(ctx, sub)
}

// cleanSubfolder accepts an empty string or a single path element; anything
// that could climb out of the storage root is rejected.
func cleanSubfolder(subfolder string) (string, error) {
	if subfolder == "" {
		return "", nil
	}
	cleaned := path.Clean(subfolder)
	if cleaned == "." || cleaned == ".." || strings.ContainsAny(cleaned, "/\\") {
		return "", errBadSubfolder
	}
	return cleaned, nil
}
