// Package cache implements the validity-checked declaration cache.
package cache

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/declgraph/internal/core/domain"
	"go.trai.ch/declgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DeclCache = (*Memory)(nil)

// fileSig is the recorded state of one contributing file. A lookup is valid
// only if size, modification time and content hash all still match.
type fileSig struct {
	size    int64
	modTime time.Time
	sum     uint64
}

type entry struct {
	decls []*domain.Namespace
	files []string
	sigs  map[string]fileSig
}

// Memory is an in-process DeclCache keyed by (source path, configuration
// fingerprint). Cached graphs are returned as-is and must be treated as
// immutable by callers.
type Memory struct {
	mu      sync.RWMutex
	entries map[ports.CacheKey]*entry
}

// NewMemory creates an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[ports.CacheKey]*entry)}
}

// Lookup returns the cached declarations for key if every recorded file is
// unchanged. Any file that cannot be re-checked invalidates the entry.
func (m *Memory) Lookup(key ports.CacheKey) ([]*domain.Namespace, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}

	for path, recorded := range e.sigs {
		current, err := signature(path)
		if err != nil || current != recorded {
			return nil, false
		}
	}
	return e.decls, true
}

// Store replaces any prior entry for key, recording the current signature of
// every contributing file.
func (m *Memory) Store(key ports.CacheKey, decls []*domain.Namespace, files []string) error {
	sigs := make(map[string]fileSig, len(files))
	for _, path := range files {
		sig, err := signature(path)
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrCacheIO, err.Error()), "path", path)
		}
		sigs[path] = sig
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = &entry{decls: decls, files: files, sigs: sigs}
	return nil
}

// signature computes the validity signature of one file.
func signature(path string) (fileSig, error) {
	info, err := os.Stat(path)
	if err != nil {
		return fileSig{}, err
	}

	f, err := os.Open(path) //nolint:gosec // Path was recorded by the linker
	if err != nil {
		return fileSig{}, err
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return fileSig{}, err
	}
	return fileSig{size: info.Size(), modTime: info.ModTime(), sum: h.Sum64()}, nil
}
