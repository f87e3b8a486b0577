package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store persists uploaded files and resolves their public URLs.
type Store interface {
	Save(subdir, filename string, r io.Reader) (SavedFile, error)
	Delete(storedName string) error
}

// SavedFile describes a stored upload.
type SavedFile struct {
	StoredName string // path relative to the storage root
	URL        string // public URL the file is served under
	Size       int64
}

// LocalStore saves files on the local filesystem under a base directory and
// serves them through a static route.
type LocalStore struct {
	basePath string
	baseURL  string
	maxSize  int64
}

// NewLocalStore creates a store rooted at basePath. Files are addressed under
// baseURL (e.g. /uploads). maxSize of 0 disables the size limit.
func NewLocalStore(basePath, baseURL string, maxSize int64) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStore{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxSize:  maxSize,
	}, nil
}

// Save writes the reader's contents under subdir with a randomized name,
// keeping the original extension.
func (s *LocalStore) Save(subdir, filename string, r io.Reader) (SavedFile, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	storedName := path.Join(sanitizeSegment(subdir), uuid.New().String()+ext)

	dir := filepath.Join(s.basePath, filepath.Dir(filepath.FromSlash(storedName)))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return SavedFile{}, fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(s.basePath, filepath.FromSlash(storedName)))
	if err != nil {
		return SavedFile{}, fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	src := r
	if s.maxSize > 0 {
		src = io.LimitReader(r, s.maxSize+1)
	}

	written, err := io.Copy(dst, src)
	if err != nil {
		_ = os.Remove(dst.Name())
		return SavedFile{}, fmt.Errorf("failed to write upload: %w", err)
	}
	if s.maxSize > 0 && written > s.maxSize {
		_ = os.Remove(dst.Name())
		return SavedFile{}, fmt.Errorf("file exceeds maximum size of %d bytes", s.maxSize)
	}

	return SavedFile{
		StoredName: storedName,
		URL:        s.baseURL + "/" + storedName,
		Size:       written,
	}, nil
}

// Delete removes a stored file. Missing files are not an error.
func (s *LocalStore) Delete(storedName string) error {
	clean := filepath.Clean(filepath.FromSlash(storedName))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("invalid stored name: %s", storedName)
	}
	err := os.Remove(filepath.Join(s.basePath, clean))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete upload: %w", err)
	}
	return nil
}

// BasePath returns the root directory files are stored under.
func (s *LocalStore) BasePath() string {
	return s.basePath
}

// sanitizeSegment keeps a single safe path segment out of caller input
func sanitizeSegment(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "misc"
	}
	return b.String()
}
