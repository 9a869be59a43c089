package linker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/declgraph/internal/core/domain"
	"go.trai.ch/declgraph/internal/core/ports"
	"go.trai.ch/declgraph/internal/engine/linker"
)

func newResult() *ports.ScanResult {
	return &ports.ScanResult{
		Decls:      map[domain.RecordID]domain.Decl{},
		Types:      map[domain.RecordID]domain.Type{},
		Access:     map[domain.RecordID]domain.AccessKind{},
		Membership: map[domain.RecordID]domain.RecordID{},
		Files:      map[domain.RecordID]string{},
	}
}

func addDecl(res *ports.ScanResult, id domain.RecordID, d domain.Decl) {
	res.Decls[id] = d
	res.DeclOrder = append(res.DeclOrder, id)
	res.Types[id] = &domain.DeclaratedType{DeclID: id}
}

func TestLink_ResolvesAllReferences(t *testing.T) {
	res := newResult()

	ns := &domain.Namespace{DeclBase: domain.DeclBase{DeclName: "::"}}
	cls := &domain.Class{
		DeclBase: domain.DeclBase{DeclName: "widget", Loc: domain.Location{FileID: "f1", Line: 3}},
		Variant:  domain.ClassKindClass,
	}
	field := &domain.Variable{
		DeclBase: domain.DeclBase{DeclName: "next"},
		TypeID:   "_p",
	}
	addDecl(res, "_1", ns)
	addDecl(res, "_2", cls)
	addDecl(res, "_3", field)

	res.Types["_p"] = &domain.PointerType{BaseID: "_2"}
	res.Membership["_2"] = "_1"
	res.Membership["_3"] = "_2"
	res.Access["_3"] = domain.AccessPrivate
	res.Files["f1"] = "src/widget.hpp"

	require.NoError(t, linker.Link(res, "/work"))

	// Scope and membership edges.
	assert.Same(t, ns, cls.Scope())
	assert.Same(t, cls, field.Scope())
	require.Len(t, ns.Decls, 1)
	require.Len(t, cls.Decls, 1)
	assert.Same(t, field, cls.Decls[0])

	// Type references resolved through the pointer.
	ptr, ok := field.Type.(*domain.PointerType)
	require.True(t, ok)
	declarated, ok := ptr.Base.(*domain.DeclaratedType)
	require.True(t, ok)
	assert.Same(t, cls, declarated.Decl)

	// Access and normalized location.
	assert.Equal(t, domain.AccessPrivate, field.Base().Access)
	assert.Equal(t, "/work/src/widget.hpp", cls.Loc.File)
	assert.Equal(t, 3, cls.Loc.Line)
}

func TestLink_RecursiveTypeTerminates(t *testing.T) {
	res := newResult()

	// struct node { node *next; }; the pointer refers back to its owner.
	node := &domain.Class{DeclBase: domain.DeclBase{DeclName: "node"}, Variant: domain.ClassKindStruct}
	next := &domain.Variable{DeclBase: domain.DeclBase{DeclName: "next"}, TypeID: "_p"}
	addDecl(res, "_1", node)
	addDecl(res, "_2", next)
	res.Types["_p"] = &domain.PointerType{BaseID: "_1"}
	res.Membership["_2"] = "_1"

	require.NoError(t, linker.Link(res, "/work"))

	ptr := next.Type.(*domain.PointerType)
	assert.Same(t, node, ptr.Base.(*domain.DeclaratedType).Decl)
}

func TestLink_UnknownTypeReference(t *testing.T) {
	res := newResult()
	addDecl(res, "_1", &domain.Typedef{DeclBase: domain.DeclBase{DeclName: "alias"}, TypeID: "_missing"})

	err := linker.Link(res, "/work")
	require.ErrorIs(t, err, domain.ErrMalformedDump)
	assert.Contains(t, err.Error(), "type reference")
}

func TestLink_UnknownDeclReference(t *testing.T) {
	res := newResult()
	res.Types["_t"] = &domain.DeclaratedType{DeclID: "_missing"}

	err := linker.Link(res, "/work")
	require.ErrorIs(t, err, domain.ErrMalformedDump)
}

func TestLink_UnknownScopeReference(t *testing.T) {
	res := newResult()
	addDecl(res, "_1", &domain.Namespace{DeclBase: domain.DeclBase{DeclName: "util"}})
	res.Membership["_1"] = "_missing"

	err := linker.Link(res, "/work")
	require.ErrorIs(t, err, domain.ErrMalformedDump)
}

func TestLink_UnknownFileReference(t *testing.T) {
	res := newResult()
	addDecl(res, "_1", &domain.Namespace{
		DeclBase: domain.DeclBase{DeclName: "util", Loc: domain.Location{FileID: "f9"}},
	})

	err := linker.Link(res, "/work")
	require.ErrorIs(t, err, domain.ErrMalformedDump)
}

func TestLink_AbsolutePathsUntouched(t *testing.T) {
	res := newResult()
	addDecl(res, "_1", &domain.Namespace{
		DeclBase: domain.DeclBase{DeclName: "::", Loc: domain.Location{FileID: "f1"}},
	})
	res.Files["f1"] = "/usr/include/cstddef"

	require.NoError(t, linker.Link(res, "/work"))
	assert.Equal(t, "/usr/include/cstddef", res.Decls["_1"].Base().Loc.File)
}
