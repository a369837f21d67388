package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

// FileStore keeps one file per key under a state directory. Writes go through
// a temp file and rename so a crash mid-save never corrupts the previous
// snapshot.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("state directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create state directory")
	}

	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrKeyNotFound, "key %s", key)
		}
		return nil, errors.Wrapf(err, "load snapshot %s", key)
	}
	return data, nil
}

func (s *FileStore) Save(_ context.Context, key string, data []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "write snapshot %s", key)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "commit snapshot %s", key)
	}
	return nil
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "delete snapshot %s", key)
	}
	return nil
}

func (s *FileStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) {
		return "", errors.Newf("invalid snapshot key: %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
