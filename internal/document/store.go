package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store reads and writes whole documents.
type Store interface {
	Read(ctx context.Context, path string) (string, error)
	Write(ctx context.Context, path, text string) error
}

// FileStore is a Store backed by the local filesystem.
type FileStore struct{}

// NewFileStore creates a filesystem-backed store.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Read returns the contents of the file at path.
func (s *FileStore) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return string(data), nil
}

// Write replaces the file at path through a temporary file and rename, keeping
// the permissions of the existing file.
func (s *FileStore) Write(ctx context.Context, path, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op once the rename succeeded.
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.WriteString(text); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace document: %w", err)
	}
	return nil
}

// MemoryStore is an in-memory Store. WriteErr, when set, makes every Write fail.
type MemoryStore struct {
	mu       sync.Mutex
	docs     map[string]string
	writes   int
	WriteErr error
}

// NewMemoryStore creates a store holding the given documents.
func NewMemoryStore(docs map[string]string) *MemoryStore {
	s := &MemoryStore{docs: make(map[string]string, len(docs))}
	for path, text := range docs {
		s.docs[path] = text
	}
	return s
}

// Read returns the stored document.
func (s *MemoryStore) Read(ctx context.Context, path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text, ok := s.docs[path]
	if !ok {
		return "", fmt.Errorf("failed to read document %s: %w", path, os.ErrNotExist)
	}
	return text, nil
}

// Write stores text under path.
func (s *MemoryStore) Write(ctx context.Context, path, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.docs[path] = text
	s.writes++
	return nil
}

// Writes returns how many successful writes the store has seen.
func (s *MemoryStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
