package documents

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
)

// DocumentMetadata describes one stored attachment
type DocumentMetadata struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Key      string    `json:"key"`
	URL      string    `json:"url"`
	Size     int64     `json:"size"`
	MimeType string    `json:"mimeType"`
}

// DocumentService stores and retrieves news attachments through a driver
type DocumentService struct {
	Driver StorageDriver
}

func NewDocumentService(driver StorageDriver) *DocumentService {
	return &DocumentService{Driver: driver}
}

// Store saves the incoming document and returns its metadata. The storage key
// is the generated ID plus the original extension.
func (s *DocumentService) Store(ctx context.Context, filename string, reader io.Reader, size int64, mime string) (*DocumentMetadata, error) {
	if mime == "" {
		mime = "application/octet-stream"
	}
	id := uuid.New()
	key := fmt.Sprintf("%s%s", id.String(), filepath.Ext(filename))

	if err := s.Driver.Save(ctx, key, reader, mime); err != nil {
		return nil, fmt.Errorf("storage driver failed: %w", err)
	}

	url, err := s.Driver.GenerateURL(ctx, key, 0)
	if err != nil {
		if delErr := s.Driver.Delete(ctx, key); delErr != nil {
			slog.WarnContext(ctx, "failed to clean up orphaned document", "key", key, "error", delErr)
		}
		return nil, fmt.Errorf("failed to generate URL: %w", err)
	}

	metadata := &DocumentMetadata{
		ID:       id,
		Name:     filename,
		Key:      key,
		URL:      url,
		Size:     size,
		MimeType: mime,
	}

	slog.InfoContext(ctx, "document stored", "id", id, "key", key)
	return metadata, nil
}

// Fetch retrieves the document content and its MIME type
func (s *DocumentService) Fetch(ctx context.Context, key string) (io.ReadCloser, string, error) {
	return s.Driver.Get(ctx, key)
}
