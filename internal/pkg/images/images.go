package images

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotDataURI      = errors.New("image is not a base64 data URI")
	ErrInvalidMimeType = errors.New("unsupported image type")
	ErrEmptyImage      = errors.New("image payload is empty")
)

// extByMime определяет расширение файла по mime-типу data URI.
var extByMime = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Store сохраняет картинки рецептов на локальный диск.
// Принимает inline base64 data URI, отдаёт публичный URL.
type Store struct {
	baseDir    string // absolute path to uploads dir
	staticBase string // URL prefix for serving files
}

func NewStore(baseDir, staticBase string) *Store {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if staticBase == "" {
		staticBase = "/static/uploads"
	}
	return &Store{baseDir: baseDir, staticBase: staticBase}
}

// SaveDataURI decodes a "data:image/png;base64,...." string, writes the bytes
// under the uploads dir and returns the public URL of the stored file.
func (s *Store) SaveDataURI(dataURI string) (string, error) {
	mimeType, payload, err := splitDataURI(dataURI)
	if err != nil {
		return "", err
	}

	ext, ok := extByMime[mimeType]
	if !ok {
		return "", ErrInvalidMimeType
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotDataURI, err)
	}
	if len(raw) == 0 {
		return "", ErrEmptyImage
	}

	// Build directory: uploads/YYYY/MM/DD/
	now := time.Now()
	relDir := fmt.Sprintf("%d/%02d/%02d", now.Year(), now.Month(), now.Day())
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := uuid.New().String() + ext
	absPath := filepath.Join(absDir, filename)
	if err := os.WriteFile(absPath, raw, 0644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	relPath := filepath.Join(relDir, filename)
	return s.staticBase + "/" + strings.ReplaceAll(relPath, "\\", "/"), nil
}

func splitDataURI(dataURI string) (mimeType, payload string, err error) {
	if !strings.HasPrefix(dataURI, "data:") {
		return "", "", ErrNotDataURI
	}
	meta, payload, found := strings.Cut(dataURI[len("data:"):], ",")
	if !found {
		return "", "", ErrNotDataURI
	}
	if !strings.HasSuffix(meta, ";base64") {
		return "", "", ErrNotDataURI
	}
	mimeType = strings.TrimSuffix(meta, ";base64")
	return mimeType, payload, nil
}
