package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/renameio/v2"
	"github.com/molpadia/molpashow/internal/domain/repository"
	"go.uber.org/zap"
)

// FileStore keeps all keys in one JSON file which is replaced atomically on every write.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
}

func NewFileStore(path string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &StoreError{Op: "open", Backend: "file", Err: err}
	}
	return &FileStore{path: path, logger: logger}, nil
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.read()
	if err != nil {
		return nil, &StoreError{Op: "get", Backend: "file", Key: key, Err: err}
	}
	v, ok := values[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return []byte(v), nil
}

func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.read()
	if err != nil {
		return &StoreError{Op: "set", Backend: "file", Key: key, Err: err}
	}
	values[key] = string(value)
	if err := s.write(values); err != nil {
		return &StoreError{Op: "set", Backend: "file", Key: key, Err: err}
	}
	return nil
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.read()
	if err != nil {
		return &StoreError{Op: "delete", Backend: "file", Key: key, Err: err}
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	if err := s.write(values); err != nil {
		return &StoreError{Op: "delete", Backend: "file", Key: key, Err: err}
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

// A missing file is an empty store. So is a file that no longer parses or holds a
// JSON null; it is replaced by the next write.
func (s *FileStore) read() (map[string]string, error) {
	values := make(map[string]string)
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, &values); err != nil || values == nil {
		s.logger.Warn("ignoring corrupt store file", zap.String("path", s.path), zap.Error(err))
		return make(map[string]string), nil
	}
	return values, nil
}

func (s *FileStore) write(values map[string]string) error {
	b, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	return renameio.WriteFile(s.path, b, 0o644)
}
