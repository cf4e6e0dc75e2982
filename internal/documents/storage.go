package documents

import (
	"context"
	"io"
	"time"
)

// StorageDriver defines how attachment binaries are persisted.
type StorageDriver interface {
	// Save writes the content under the given key
	Save(ctx context.Context, key string, body io.Reader, contentType string) error

	// Get returns a ReadCloser streaming the document back, plus its content type
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes the document
	Delete(ctx context.Context, key string) error

	// GenerateURL returns a public-facing URL for the key
	GenerateURL(ctx context.Context, key string, expires time.Duration) (string, error)
}
