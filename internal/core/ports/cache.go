package ports

import "go.trai.ch/declgraph/internal/core/domain"

// CacheKey identifies one cached read: the absolute source (or dump) path
// plus the configuration fingerprint.
type CacheKey struct {
	Source      string
	Fingerprint string
}

// DeclCache stores linked declaration graphs between reads.
//
// Implementations must be safe for concurrent lookup and store on distinct
// keys and must serialize stores for the same key (last writer wins).
// Cached graphs are treated as immutable by callers.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type DeclCache interface {
	// Lookup returns the cached root declarations for key, but only if none
	// of the files recorded at store time have changed since. Any file that
	// cannot be re-checked makes the entry invalid, never an error.
	Lookup(key CacheKey) ([]*domain.Namespace, bool)

	// Store replaces any prior entry for key with the given root
	// declarations and the set of files that contributed to them.
	Store(key CacheKey, decls []*domain.Namespace, files []string) error
}
