package linker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/declgraph/internal/core/domain"
	"go.trai.ch/declgraph/internal/engine/linker"
)

func TestPatchOrphans_ReattachesToGlobalNamespace(t *testing.T) {
	res := newResult()
	global := &domain.Namespace{DeclBase: domain.DeclBase{DeclName: "::"}}
	orphanFn := &domain.Calldef{DeclBase: domain.DeclBase{DeclName: "helper"}, Variant: domain.CalldefFunction}
	orphanEnum := &domain.Enumeration{DeclBase: domain.DeclBase{DeclName: "color"}}
	addDecl(res, "_1", global)
	addDecl(res, "_2", orphanFn)
	addDecl(res, "_3", orphanEnum)

	linker.PatchOrphans(res)

	assert.Same(t, global, orphanFn.Scope())
	assert.Same(t, global, orphanEnum.Scope())
	require.Len(t, global.Decls, 2)
}

func TestPatchOrphans_LeavesScopedDeclsAlone(t *testing.T) {
	res := newResult()
	global := &domain.Namespace{DeclBase: domain.DeclBase{DeclName: "::"}}
	ns := &domain.Namespace{DeclBase: domain.DeclBase{DeclName: "util"}}
	ns.SetScope(global)
	fn := &domain.Calldef{DeclBase: domain.DeclBase{DeclName: "helper"}, Variant: domain.CalldefFunction}
	fn.SetScope(ns)
	ns.Decls = append(ns.Decls, fn)
	addDecl(res, "_1", global)
	addDecl(res, "_2", ns)
	addDecl(res, "_3", fn)

	linker.PatchOrphans(res)

	assert.Same(t, ns, fn.Scope())
	assert.Empty(t, global.Decls)
}

func TestPatchOrphans_NoGlobalNamespace(t *testing.T) {
	res := newResult()
	addDecl(res, "_1", &domain.Calldef{DeclBase: domain.DeclBase{DeclName: "helper"}, Variant: domain.CalldefFunction})

	// Nothing to attach to; the pass must be a no-op.
	linker.PatchOrphans(res)
	assert.Nil(t, res.Decls["_1"].Scope())
}
