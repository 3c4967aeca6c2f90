package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"brm-service/internal/app/contracts"
)

type localStorage struct {
	dir string
}

// NewLocalStorage keeps each document as <dir>/<document>.json. The directory
// is created when missing.
func NewLocalStorage(dir string) (contracts.DocumentBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &localStorage{dir: dir}, nil
}

func (s *localStorage) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *localStorage) ReadDocument(ctx context.Context, name string) ([]byte, error) {
	return os.ReadFile(s.path(name))
}

// WriteDocument replaces the file through a rename so readers never observe a
// partially written document.
func (s *localStorage) WriteDocument(ctx context.Context, name string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path(name))
}

func (s *localStorage) DocumentExists(ctx context.Context, name string) (bool, error) {
	_, err := os.Stat(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

func (s *localStorage) Ping(ctx context.Context) error {
	_, err := os.Stat(s.dir)
	return err
}
