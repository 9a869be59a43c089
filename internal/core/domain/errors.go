package domain

import "go.trai.ch/zerr"

var (
	// ErrNotFound is returned when a source file cannot be resolved against
	// the configured search directories.
	ErrNotFound = zerr.New("source file not found")

	// ErrToolInvocation is returned when the external front-end tool reports
	// failure or claims success without producing a readable dump.
	ErrToolInvocation = zerr.New("tool invocation failed")

	// ErrMalformedDump is returned when a record references an id that is
	// absent from the relevant dump table.
	ErrMalformedDump = zerr.New("malformed dump")

	// ErrCacheIO is returned when cache storage is unreadable or unwritable.
	// Callers degrade it to a cache miss; it is never fatal.
	ErrCacheIO = zerr.New("cache storage unavailable")
)
