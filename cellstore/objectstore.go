package cellstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ObjectStore is a path based blob store. Paths use forward slashes
// regardless of platform. Get and Delete return an error wrapping ErrNotFound
// for a missing path.
type ObjectStore interface {
	Get(ctx context.Context, storagePath string) ([]byte, error)
	Put(ctx context.Context, storagePath string, data []byte) error
	Delete(ctx context.Context, storagePath string) error
	// List returns the paths beginning with prefix in lexical order.
	List(ctx context.Context, prefix string) ([]string, error)
}

// MemoryStore is an in memory ObjectStore. It may be shared between
// goroutines.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, storagePath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[storagePath]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, storagePath)
	}
	return append([]byte(nil), data...), nil
}

func (s *MemoryStore) Put(ctx context.Context, storagePath string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[storagePath] = append([]byte(nil), data...)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, storagePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[storagePath]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, storagePath)
	}
	delete(s.objects, storagePath)
	return nil
}

func (s *MemoryStore) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var paths []string
	for p := range s.objects {
		if strings.HasPrefix(p, prefix) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// DirStore keeps each object as a file below a root directory.
type DirStore struct {
	root string
}

func NewDirStore(root string) (*DirStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &DirStore{root: root}, nil
}

func (s *DirStore) filePath(storagePath string) string {
	return filepath.Join(s.root, filepath.FromSlash(storagePath))
}

func notFound(err error, storagePath string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, storagePath)
	}
	return err
}

func (s *DirStore) Get(ctx context.Context, storagePath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.filePath(storagePath))
	if err != nil {
		return nil, notFound(err, storagePath)
	}
	return data, nil
}

func (s *DirStore) Put(ctx context.Context, storagePath string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name := s.filePath(storagePath)
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return err
	}
	return os.WriteFile(name, data, 0o644)
}

func (s *DirStore) Delete(ctx context.Context, storagePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return notFound(os.Remove(s.filePath(storagePath)), storagePath)
}

func (s *DirStore) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var paths []string
	err := filepath.WalkDir(s.root, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, name)
		if err != nil {
			return err
		}
		if p := filepath.ToSlash(rel); strings.HasPrefix(p, prefix) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
