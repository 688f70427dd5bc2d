// Package storage persists uploaded pet images on local disk under a
// directory that the server also serves statically.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type ImageStore interface {
	// Save writes the image bytes under a collision-resistant name derived
	// from the original filename and returns the public URL path.
	Save(originalName string, data []byte) (string, error)
	// Remove deletes a previously saved image by its public URL path.
	Remove(url string) error
}

type LocalImageStore struct {
	dir       string
	urlPrefix string
}

func NewLocalImageStore(dir, urlPrefix string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalImageStore{dir: dir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

func (s *LocalImageStore) Save(originalName string, data []byte) (string, error) {
	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(filepath.Base(originalName), ext)
	name := slug.Make(base)
	if name == "" {
		name = "image"
	}
	filename := name + "-" + uuid.NewString() + ext

	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return s.urlPrefix + "/" + filename, nil
}

func (s *LocalImageStore) Remove(url string) error {
	filename := filepath.Base(url)
	if filename == "." || filename == "/" {
		return fmt.Errorf("invalid image url %q", url)
	}
	return os.Remove(filepath.Join(s.dir, filename))
}

// Dir returns the directory images are written to, for static file serving.
func (s *LocalImageStore) Dir() string {
	return s.dir
}
