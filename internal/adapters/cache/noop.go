package cache

import (
	"go.trai.ch/declgraph/internal/core/domain"
	"go.trai.ch/declgraph/internal/core/ports"
)

var _ ports.DeclCache = Noop{}

// Noop is the drop-in default cache: every lookup misses and stores are
// discarded. The caller then owns every graph it receives.
type Noop struct{}

// Lookup always misses.
func (Noop) Lookup(ports.CacheKey) ([]*domain.Namespace, bool) { return nil, false }

// Store discards the entry.
func (Noop) Store(ports.CacheKey, []*domain.Namespace, []string) error { return nil }
