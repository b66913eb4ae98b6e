package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"society/internal/domain"
)

// Buckets used by the site.
const (
	BucketProgramImages = "program-images"
	BucketTeamPhotos    = "team-photos"
	BucketInvoices      = "invoices"
)

var allowedExtensions = map[string]map[string]bool{
	BucketProgramImages: {".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true},
	BucketTeamPhotos:    {".jpg": true, ".jpeg": true, ".png": true, ".webp": true},
	BucketInvoices:      {".jpg": true, ".jpeg": true, ".png": true, ".pdf": true},
}

// FileStore keeps uploaded objects on the local filesystem under one
// directory per bucket and hands out public URLs below baseURL.
type FileStore struct {
	basePath string
	baseURL  string
}

// NewFileStore initializes a FileStore rooted at basePath.
func NewFileStore(basePath, baseURL string) (*FileStore, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("storage: base path is required")
	}
	for bucket := range allowedExtensions {
		if err := os.MkdirAll(filepath.Join(basePath, bucket), 0o755); err != nil {
			return nil, fmt.Errorf("storage: ensure bucket %s: %w", bucket, err)
		}
	}
	return &FileStore{basePath: basePath, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// BasePath returns the configured root directory.
func (s *FileStore) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// Upload stores data in bucket under a random name that keeps the extension
// of filename, and returns the public URL of the object.
func (s *FileStore) Upload(ctx context.Context, bucket, filename string, data []byte) (string, error) {
	if s == nil {
		return "", errors.New("storage: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	exts, ok := allowedExtensions[bucket]
	if !ok {
		return "", fmt.Errorf("%w: unknown bucket %q", domain.ErrInvalidInput, bucket)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !exts[ext] {
		return "", fmt.Errorf("%w: file type %q not allowed in %s", domain.ErrInvalidInput, ext, bucket)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", domain.ErrInvalidInput)
	}
	key := uuid.NewString() + ext
	fullPath := filepath.Join(s.basePath, bucket, key)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	return s.PublicURL(bucket, key), nil
}

// PublicURL returns the URL an object is served from.
func (s *FileStore) PublicURL(bucket, key string) string {
	return s.baseURL + "/" + path.Join(bucket, key)
}

// Delete removes the object behind publicURL. URLs that do not point into
// bucket are ignored.
func (s *FileStore) Delete(ctx context.Context, bucket, publicURL string) error {
	if s == nil {
		return errors.New("storage: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	prefix := s.baseURL + "/" + bucket + "/"
	if !strings.HasPrefix(publicURL, prefix) {
		return nil
	}
	key, err := sanitizeKey(strings.TrimPrefix(publicURL, prefix))
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(s.basePath, bucket, filepath.FromSlash(key)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: remove file: %w", err)
	}
	return nil
}

// sanitizeKey normalizes a key and prevents escaping the bucket directory.
func sanitizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("storage: key is required")
	}
	key = strings.ReplaceAll(key, "\\", "/")
	cleaned := path.Clean("/" + key)[1:]
	if cleaned == "" || strings.Contains(cleaned, "/") {
		return "", errors.New("storage: invalid key")
	}
	return cleaned, nil
}
