package printing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSystemStorage keeps rendered documents on the local file system under a
// single base directory.
type FileSystemStorage struct {
	baseDir string
}

// NewFileSystemStorage creates the base directory if needed and returns the
// storage.
func NewFileSystemStorage(baseDir string) (*FileSystemStorage, error) {
	if baseDir == "" {
		return nil, NewRenderError(ErrCodeStorageFailed, "storage base directory is empty", nil)
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, NewRenderError(ErrCodeStorageFailed, "failed to create storage directory", err)
	}
	return &FileSystemStorage{baseDir: baseDir}, nil
}

// Store writes the document under the base directory and returns its path.
// The filename is sanitized so callers cannot escape the directory.
func (s *FileSystemStorage) Store(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", NewRenderError(ErrCodeStorageFailed, "document is empty", nil)
	}

	path := filepath.Join(s.baseDir, sanitizeFileName(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", NewRenderError(ErrCodeStorageFailed, fmt.Sprintf("failed to write %s", path), err)
	}
	return path, nil
}

// BaseDir returns the storage root
func (s *FileSystemStorage) BaseDir() string {
	return s.baseDir
}

// sanitizeFileName strips path separators and parent references from a
// candidate filename.
func sanitizeFileName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, name)
	if name == "" || name == "." {
		name = "document.pdf"
	}
	return name
}
