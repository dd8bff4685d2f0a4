package storage

import "io"

// Storage persists artwork image files. Implementations return the relative
// URL path stored in artworks.image_url.
type Storage interface {
	Save(fileName string, src io.Reader) (string, error)
	Delete(relPath string) error
}
