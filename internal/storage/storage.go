package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrNotAnImage  = errors.New("uploaded data is not an image")
	ErrImageTooBig = errors.New("image exceeds size limit")
)

// ImageStore abstracts where vehicle images live. The local implementation
// keeps them on disk; a cloud backend would satisfy the same interface.
type ImageStore interface {
	// Save stores the image and returns the generated key. The data is
	// sniffed; non-image payloads are rejected with ErrNotAnImage.
	Save(ctx context.Context, r io.Reader) (string, error)

	// Open returns the image bytes and its MIME type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	Delete(ctx context.Context, key string) error
}
