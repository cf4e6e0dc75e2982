package documents

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDriver struct {
	saved   map[string]string
	saveErr error
	urlErr  error
	deleted []string
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{saved: make(map[string]string)}
}

func (f *fakeDriver) Save(ctx context.Context, key string, body io.Reader, contentType string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	b, _ := io.ReadAll(body)
	f.saved[key] = string(b)
	return nil
}

func (f *fakeDriver) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	content, ok := f.saved[key]
	if !ok {
		return nil, "", errors.New("not found")
	}
	return io.NopCloser(strings.NewReader(content)), "text/plain", nil
}

func (f *fakeDriver) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	delete(f.saved, key)
	return nil
}

func (f *fakeDriver) GenerateURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	if f.urlErr != nil {
		return "", f.urlErr
	}
	return "/api/documents/" + key, nil
}

func TestDocumentServiceStore(t *testing.T) {
	driver := newFakeDriver()
	svc := NewDocumentService(driver)

	meta, err := svc.Store(context.Background(), "gazette.pdf", strings.NewReader("content"), 7, "application/pdf")
	require.NoError(t, err)

	// The key keeps the original extension but not the original name
	assert.True(t, strings.HasSuffix(meta.Key, ".pdf"))
	assert.NotContains(t, meta.Key, "gazette")
	assert.Equal(t, "gazette.pdf", meta.Name)
	assert.Equal(t, "/api/documents/"+meta.Key, meta.URL)
	assert.Equal(t, "application/pdf", meta.MimeType)
	assert.Equal(t, "content", driver.saved[meta.Key])
}

func TestDocumentServiceStore_DefaultMimeType(t *testing.T) {
	svc := NewDocumentService(newFakeDriver())

	meta, err := svc.Store(context.Background(), "blob", strings.NewReader("x"), 1, "")
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", meta.MimeType)
}

func TestDocumentServiceStore_CleansUpOnURLFailure(t *testing.T) {
	driver := newFakeDriver()
	driver.urlErr = errors.New("presign failed")
	svc := NewDocumentService(driver)

	_, err := svc.Store(context.Background(), "gazette.pdf", strings.NewReader("content"), 7, "application/pdf")
	require.Error(t, err)

	assert.Empty(t, driver.saved, "orphaned blob must be removed")
	assert.Len(t, driver.deleted, 1)
}
