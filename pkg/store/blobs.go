// Package store persists daybook collections as JSON blobs in a local
// key-value store.
package store

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

// Keys of the blobs daybook keeps.
const (
	KeyTasks         = "productivity_tasks"
	KeyFinance       = "productivity_finance"
	KeySubscriptions = "productivity_subscriptions"
	KeyWatermark     = "productivity_last_midnight_check"
)

// ErrNotFound is returned by Blobs.Read for keys that were never written.
var ErrNotFound = errors.New("store: key not found")

// Blobs is a string-keyed byte store.
type Blobs interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
}

// Disk is a Blobs backed by one file per key under a base directory.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

// Open creates a Disk at cfg's base path, loading the config when cfg is nil.
// Reads are not cached; other daybook processes write the same files.
func Open(cfg Config) (*Disk, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Disk{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
	}), basePath: basePath}, nil
}

// BasePath is the directory holding the blobs.
func (s *Disk) BasePath() string {
	return s.basePath
}

func (s *Disk) Read(key string) ([]byte, error) {
	val, err := s.d.Read(key)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return val, err
}

func (s *Disk) Write(key string, val []byte) error {
	return s.d.Write(key, val)
}

// Keys lists the stored keys.
func (s *Disk) Keys() []string {
	done := make(chan struct{})
	defer close(done)
	keys := make([]string, 0)
	for key := range s.d.Keys(done) {
		keys = append(keys, key)
	}
	return keys
}

// Blobs are flat: each key is a file directly under the base path.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{FileName: key}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}

// Memory is an in-process Blobs, used by tests and dry runs.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
	// FailWrites makes every Write fail, to exercise the drop-on-error path.
	FailWrites bool
}

// NewMemory returns an empty Memory.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), val...), nil
}

func (m *Memory) Write(key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return errors.New("store: memory writes disabled")
	}
	m.data[key] = append([]byte(nil), val...)
	return nil
}
