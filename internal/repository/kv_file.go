package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileKeyValueRepository persists settings as a YAML map in a single file.
// Every Set rewrites the file through a temp file and rename.
type FileKeyValueRepository struct {
	mu   sync.Mutex
	path string
}

// Ensure FileKeyValueRepository implements KeyValueRepositoryInterface
var _ KeyValueRepositoryInterface = (*FileKeyValueRepository)(nil)

// NewFileKeyValueRepository creates a file-backed store, creating the parent directory if needed
func NewFileKeyValueRepository(path string) (*FileKeyValueRepository, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create kv directory: %w", err)
		}
	}
	return &FileKeyValueRepository{path: path}, nil
}

func (r *FileKeyValueRepository) load() (map[string]string, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read kv file: %w", err)
	}

	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse kv file: %w", err)
	}
	if values == nil {
		values = map[string]string{}
	}
	return values, nil
}

// Get returns the value stored under key
func (r *FileKeyValueRepository) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set stores value under key
func (r *FileKeyValueRepository) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.load()
	if err != nil {
		return err
	}
	values[key] = value

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode kv file: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write kv file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace kv file: %w", err)
	}
	return nil
}

// Ping checks that the backing file is readable and well formed
func (r *FileKeyValueRepository) Ping(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.load()
	return err
}

// Close is a no-op
func (r *FileKeyValueRepository) Close() error { return nil }
