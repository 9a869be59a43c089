// Package linker rewrites the record ids inside scanned declarations and
// types into direct object references.
package linker

import (
	"path/filepath"
	"slices"

	"go.trai.ch/declgraph/internal/core/domain"
	"go.trai.ch/declgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// Link resolves every id field in res into an object reference, attaches
// scope, membership and access information, and normalizes file paths in the
// file table to absolute form relative to workingDir.
//
// All types are visited first, then all declarations, each exactly once by
// iterating the id tables. Visiting by table membership rather than chasing
// resolved neighbours means recursive and mutually referential records
// terminate. Any id absent from its table aborts the whole pass; a partially
// linked graph is never returned.
func Link(res *ports.ScanResult, workingDir string) error {
	normalizeFiles(res.Files, workingDir)

	l := &linker{res: res}

	for _, id := range orderedIDs(res.Types) {
		if err := l.linkType(id, res.Types[id]); err != nil {
			return err
		}
	}
	for _, id := range declOrder(res) {
		if err := l.linkDecl(id, res.Decls[id]); err != nil {
			return err
		}
	}
	return nil
}

type linker struct {
	res *ports.ScanResult
}

// linkType applies the per-variant resolution rule to one type record.
// The switch is exhaustive over the closed variant set; a new type kind
// must add a case here.
func (l *linker) linkType(id domain.RecordID, t domain.Type) error {
	switch tt := t.(type) {
	case *domain.FundamentalType:
		return nil
	case *domain.DeclaratedType:
		d, err := l.declByID(id, tt.DeclID)
		if err != nil {
			return err
		}
		tt.Decl = d
	case *domain.PointerType:
		b, err := l.typeByID(id, tt.BaseID)
		if err != nil {
			return err
		}
		tt.Base = b
	case *domain.ReferenceType:
		b, err := l.typeByID(id, tt.BaseID)
		if err != nil {
			return err
		}
		tt.Base = b
	case *domain.ArrayType:
		b, err := l.typeByID(id, tt.BaseID)
		if err != nil {
			return err
		}
		tt.Base = b
	case *domain.CvQualifiedType:
		b, err := l.typeByID(id, tt.BaseID)
		if err != nil {
			return err
		}
		tt.Base = b
	case *domain.FunctionType:
		r, err := l.typeByID(id, tt.ReturnsID)
		if err != nil {
			return err
		}
		tt.Returns = r
		return l.linkArguments(id, tt.Arguments)
	default:
		return zerr.With(zerr.Wrap(domain.ErrMalformedDump, "unhandled type record kind"), "record", string(id))
	}
	return nil
}

// linkDecl applies the per-variant resolution rule to one declaration
// record, then attaches its scope, access qualifier and source location.
func (l *linker) linkDecl(id domain.RecordID, d domain.Decl) error {
	switch dd := d.(type) {
	case *domain.Namespace, *domain.Class, *domain.Enumeration:
		// No type fields of their own; members attach themselves below.
	case *domain.Typedef:
		t, err := l.typeByID(id, dd.TypeID)
		if err != nil {
			return err
		}
		dd.Type = t
	case *domain.Variable:
		t, err := l.typeByID(id, dd.TypeID)
		if err != nil {
			return err
		}
		dd.Type = t
	case *domain.Calldef:
		if dd.ReturnsID != "" {
			r, err := l.typeByID(id, dd.ReturnsID)
			if err != nil {
				return err
			}
			dd.Returns = r
		}
		if err := l.linkArguments(id, dd.Arguments); err != nil {
			return err
		}
	default:
		return zerr.With(zerr.Wrap(domain.ErrMalformedDump, "unhandled declaration record kind"), "record", string(id))
	}

	if err := l.attachScope(id, d); err != nil {
		return err
	}
	if access, ok := l.res.Access[id]; ok {
		d.Base().Access = access
	}
	return l.resolveLocation(id, d)
}

func (l *linker) linkArguments(owner domain.RecordID, args []domain.Argument) error {
	for i := range args {
		t, err := l.typeByID(owner, args[i].TypeID)
		if err != nil {
			return err
		}
		args[i].Type = t
	}
	return nil
}

// attachScope wires the declaration to its enclosing scope and registers it
// as a member of that scope.
func (l *linker) attachScope(id domain.RecordID, d domain.Decl) error {
	scopeID, ok := l.res.Membership[id]
	if !ok {
		return nil
	}
	scope, ok := l.res.Decls[scopeID]
	if !ok {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrMalformedDump, "scope reference to unknown id"),
			"id", string(scopeID)), "record", string(id))
	}
	d.SetScope(scope)
	switch s := scope.(type) {
	case *domain.Namespace:
		s.Decls = append(s.Decls, d)
	case *domain.Class:
		s.Decls = append(s.Decls, d)
	default:
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrMalformedDump, "scope record cannot own members"),
			"id", string(scopeID)), "record", string(id))
	}
	return nil
}

func (l *linker) resolveLocation(id domain.RecordID, d domain.Decl) error {
	loc := &d.Base().Loc
	if loc.FileID == "" {
		return nil
	}
	path, ok := l.res.Files[loc.FileID]
	if !ok {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrMalformedDump, "file reference to unknown id"),
			"id", string(loc.FileID)), "record", string(id))
	}
	loc.File = path
	return nil
}

func (l *linker) typeByID(owner, id domain.RecordID) (domain.Type, error) {
	t, ok := l.res.Types[id]
	if !ok {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrMalformedDump, "type reference to unknown id"),
			"id", string(id)), "record", string(owner))
	}
	return t, nil
}

func (l *linker) declByID(owner, id domain.RecordID) (domain.Decl, error) {
	d, ok := l.res.Decls[id]
	if !ok {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrMalformedDump, "declaration reference to unknown id"),
			"id", string(id)), "record", string(owner))
	}
	return d, nil
}

// declOrder returns the declaration visiting order: the scan order when the
// scanner recorded one, otherwise sorted ids so linking stays deterministic.
func declOrder(res *ports.ScanResult) []domain.RecordID {
	if len(res.DeclOrder) == len(res.Decls) {
		return res.DeclOrder
	}
	return orderedIDs(res.Decls)
}

func orderedIDs[V any](m map[domain.RecordID]V) []domain.RecordID {
	ids := make([]domain.RecordID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// normalizeFiles rewrites every file table entry to a cleaned absolute path
// anchored at workingDir.
func normalizeFiles(files map[domain.RecordID]string, workingDir string) {
	for id, path := range files {
		if !filepath.IsAbs(path) {
			path = filepath.Join(workingDir, path)
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		files[id] = filepath.Clean(path)
	}
}
