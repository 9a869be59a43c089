package domain

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Config holds the external front-end tool configuration for one reader.
// Everything that affects parse output is folded into Fingerprint.
type Config struct {
	// ToolPath is the front-end executable, castxml by default.
	ToolPath string
	// WorkingDir anchors relative source and include paths. It is the first
	// search directory.
	WorkingDir string
	// IncludePaths are searched after WorkingDir, in order.
	IncludePaths []string
	// Defines are preprocessor symbols passed as -D.
	Defines []string
	// Undefines are preprocessor symbols passed as -U.
	Undefines []string
	// CFlags are extra compiler flags passed through verbatim.
	CFlags []string
	// Compiler is the value for --castxml-cc-gnu; empty means the tool's
	// default.
	Compiler string
	// StartDecls restricts the dump to the named declarations and their
	// dependencies (--castxml-start).
	StartDecls []string
	// ToolTimeout bounds a single tool invocation. Zero means no timeout.
	// It does not affect parse output and is excluded from the fingerprint.
	ToolTimeout time.Duration
}

// DefaultConfig returns a Config with the tool resolved from PATH and the
// current directory as working directory.
func DefaultConfig() *Config {
	return &Config{
		ToolPath:   "castxml",
		WorkingDir: ".",
	}
}

// Fingerprint deterministically encodes every setting that affects parse
// output. Two configs with equal fingerprints produce identical dumps for
// identical inputs.
func (c *Config) Fingerprint() string {
	h := xxhash.New()

	writeField := func(s string) {
		_, _ = h.WriteString(s)
		_, _ = h.Write([]byte{0})
	}
	writeSection := func(ss []string) {
		for _, s := range ss {
			writeField(s)
		}
		_, _ = h.Write([]byte{0})
	}

	writeField(c.ToolPath)
	writeField(c.WorkingDir)
	writeField(c.Compiler)
	writeSection(c.IncludePaths)
	writeSection(c.Defines)
	writeSection(c.Undefines)
	writeSection(c.CFlags)
	writeSection(c.StartDecls)

	return fmt.Sprintf("%016x", h.Sum64())
}
