package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ImageUpload is a decoded multipart file, passed down so services stay
// independent of the HTTP layer.
type ImageUpload struct {
	Filename string
	Reader   io.Reader
}

// ImageStore writes uploads under baseDir/<kind>/ with uuid-prefixed names
// and returns the URL path they are served back on.
type ImageStore struct {
	baseDir string
}

func NewImageStore(baseDir string) *ImageStore {
	return &ImageStore{baseDir: baseDir}
}

func (s *ImageStore) Save(kind string, upload *ImageUpload) (string, error) {
	dir := filepath.Join(s.baseDir, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + "_" + filepath.Base(upload.Filename)
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, upload.Reader); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return "/uploads/" + kind + "/" + name, nil
}
