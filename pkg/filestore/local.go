package filestore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store writes request-scoped scratch files under a single directory.
// Names are random uuids, so concurrent requests never collide and no
// locking is needed; callers own cleanup via Remove.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes data to a uniquely named file and returns its path.
func (s *Store) Save(data []byte, ext string) (string, error) {
	path := filepath.Join(s.dir, uuid.New().String()+ext)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write scratch file: %w", err)
	}
	return path, nil
}

// Remove deletes a scratch file. A missing file is not an error; the
// goal is only that nothing leaks.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
