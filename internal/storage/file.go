package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// FileStore writes each key to its own file under Dir.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FileStore{Dir: dir}, nil
}

func (s *FileStore) path(key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	if !validKey.MatchString(key) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.Dir, key+".json"), nil
}

func (s *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFailedLoad, key, err)
	}
	return data, nil
}

// Save writes through a temp file and renames it into place.
func (s *FileStore) Save(_ context.Context, key string, value []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.Dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFailedSave, key, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %s: %w", ErrFailedSave, key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFailedSave, key, err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFailedSave, key, err)
	}
	return nil
}
