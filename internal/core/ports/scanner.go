// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/declgraph/internal/core/domain"

// ScanResult holds the id-keyed tables extracted from one dump. Declarations
// and types still carry unresolved record ids; the linker rewrites them into
// object references and the tables are discarded afterwards.
type ScanResult struct {
	// Decls maps record ids to unlinked declarations.
	Decls map[domain.RecordID]domain.Decl
	// DeclOrder lists declaration ids in the order they appeared in the
	// dump. Linking and alias binding follow this order so results are
	// deterministic.
	DeclOrder []domain.RecordID
	// Types maps record ids to unlinked type expressions.
	Types map[domain.RecordID]domain.Type
	// Access maps member declaration ids to their access qualifier.
	Access map[domain.RecordID]domain.AccessKind
	// Membership maps a declaration id to the id of its enclosing scope.
	Membership map[domain.RecordID]domain.RecordID
	// Files maps file ids to the paths reported by the tool. The linker
	// normalizes them to absolute paths in place.
	Files map[domain.RecordID]string
}

// Scanner turns a tool-generated dump file into unlinked record tables.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	// Scan reads the dump at path. A dump that cannot be parsed at all is a
	// tool-output error; cross-record consistency is the linker's concern.
	Scan(path string) (*ScanResult, error)
}
