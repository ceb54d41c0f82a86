package mealplan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend stores each document as a JSON file inside a base
// directory. It is the default durable backend for single-user
// installs.
type FileBackend struct {
	basePath string
}

// NewFileBackend creates a FileBackend and ensures the base directory
// exists.
func NewFileBackend(basePath string) (*FileBackend, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &FileBackend{basePath: basePath}, nil
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.basePath, key+".json")
}

// Get reads the document file for key.
func (b *FileBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read document %s: %w", key, err)
	}
	return data, true, nil
}

// Set writes the document file for key.
func (b *FileBackend) Set(_ context.Context, key string, data []byte) error {
	if err := os.WriteFile(b.path(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", key, err)
	}
	return nil
}

// Delete removes the document file for key, tolerating absence.
func (b *FileBackend) Delete(_ context.Context, key string) error {
	if err := os.Remove(b.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete document %s: %w", key, err)
	}
	return nil
}
