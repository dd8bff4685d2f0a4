package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStorage writes image files to a directory served as static content.
// Save returns URL paths under urlPrefix, never the directory path, so the
// filesystem layout stays out of API responses and the router decides where
// the files are mounted.
type LocalStorage struct {
	dir       string
	urlPrefix string
}

func NewLocalStorage(dir, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{
		dir:       dir,
		urlPrefix: strings.Trim(urlPrefix, "/"),
	}, nil
}

func (s *LocalStorage) Save(fileName string, src io.Reader) (string, error) {
	// fileName is generated server-side, but never trust it with a path.
	fileName = filepath.Base(fileName)

	dst, err := os.Create(filepath.Join(s.dir, fileName))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return path.Join(s.urlPrefix, fileName), nil
}

func (s *LocalStorage) Delete(relPath string) error {
	if relPath == "" {
		return nil
	}

	fullPath := filepath.Join(s.dir, filepath.Base(relPath))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image file: %w", err)
	}
	return nil
}
