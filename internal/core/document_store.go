package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/viant/afs"
	_ "github.com/viant/afs/mem"
)

// ErrDocumentNotFound is returned when the target document does not exist.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentStore abstracts document persistence for testability.
type DocumentStore interface {
	Load(ctx context.Context, path string) ([]byte, error)
	Save(ctx context.Context, path string, data []byte) error
}

// AFSStore implements DocumentStore on top of afs, so both local paths and
// storage URLs such as mem://localhost/file.cs are accepted.
type AFSStore struct {
	fs afs.Service
}

func NewAFSStore() *AFSStore {
	return &AFSStore{fs: afs.New()}
}

func (s *AFSStore) Load(ctx context.Context, path string) ([]byte, error) {
	URL, err := toURL(path)
	if err != nil {
		return nil, err
	}
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", path, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func (s *AFSStore) Save(ctx context.Context, path string, data []byte) error {
	URL, err := toURL(path)
	if err != nil {
		return err
	}
	if err := s.fs.Upload(ctx, URL, 0644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// toURL turns a plain filesystem path into an absolute file:// URL and leaves URLs alone.
func toURL(path string) (string, error) {
	if strings.Contains(path, "://") {
		return path, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

// InMemoryStore implements DocumentStore for testing (no disk I/O).
type InMemoryStore struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{docs: make(map[string][]byte)}
}

func (ms *InMemoryStore) Load(_ context.Context, path string) ([]byte, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	data, ok := ms.docs[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
	}
	// Return a copy to avoid mutation
	return bytes.Clone(data), nil
}

func (ms *InMemoryStore) Save(_ context.Context, path string, data []byte) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.docs[path] = bytes.Clone(data)
	return nil
}
