package linker

import (
	"go.trai.ch/declgraph/internal/core/domain"
	"go.trai.ch/declgraph/internal/core/ports"
)

// PatchOrphans corrects a known tool-reporting anomaly: calldef and enum
// records occasionally arrive without an enclosing scope (typedefs inside
// function templates trigger it, among others). Such declarations are
// reattached to the global namespace in place.
func PatchOrphans(res *ports.ScanResult) {
	global := globalNamespace(res)
	if global == nil {
		return
	}
	for _, id := range declOrder(res) {
		d := res.Decls[id]
		switch d.(type) {
		case *domain.Calldef, *domain.Enumeration:
		default:
			continue
		}
		if d.Scope() != nil {
			continue
		}
		d.SetScope(global)
		global.Decls = append(global.Decls, d)
	}
}

func globalNamespace(res *ports.ScanResult) *domain.Namespace {
	for _, id := range declOrder(res) {
		if ns, ok := res.Decls[id].(*domain.Namespace); ok && ns.Scope() == nil {
			return ns
		}
	}
	return nil
}
