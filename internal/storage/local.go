package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Images above this size are refused before anything touches disk.
const maxImageBytes = 8 << 20

// LocalImageStore keeps vehicle images on the local filesystem.
type LocalImageStore struct {
	imagesDir string
}

func NewLocalImageStore(uploadDir string) (*LocalImageStore, error) {
	imagesDir := filepath.Join(uploadDir, "images")
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}
	return &LocalImageStore{imagesDir: imagesDir}, nil
}

func (s *LocalImageStore) Save(ctx context.Context, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) > maxImageBytes {
		return "", ErrImageTooBig
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", ErrNotAnImage
	}

	key := uuid.NewString() + mime.Extension()
	fullPath := filepath.Join(s.imagesDir, key)
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return key, nil
}

func (s *LocalImageStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	// Keys are server-generated, but reject path traversal anyway.
	if key != filepath.Base(key) {
		return nil, "", ErrNotFound
	}

	data, err := os.ReadFile(filepath.Join(s.imagesDir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}
	return io.NopCloser(bytes.NewReader(data)), mimetype.Detect(data).String(), nil
}

func (s *LocalImageStore) Delete(ctx context.Context, key string) error {
	if key != filepath.Base(key) {
		return ErrNotFound
	}
	err := os.Remove(filepath.Join(s.imagesDir, key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
