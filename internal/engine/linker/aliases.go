package linker

import (
	"go.trai.ch/declgraph/internal/core/domain"
	"go.trai.ch/declgraph/internal/core/ports"
)

// BindAliases registers every typedef on the class it ultimately names.
//
// Alias chains are chased first, so `typedef A B; typedef B C;` records both
// B and C on A. The first time a class object is encountered in a run its
// alias set is cleared, keyed on object identity rather than name: two
// distinct classes sharing a name never share an alias set, and re-running
// the pass over the same graph is idempotent. Typedefs whose resolved type
// is not a plain declarated reference to a class are ignored.
func BindAliases(res *ports.ScanResult) {
	visited := make(map[*domain.Class]struct{})
	for _, id := range declOrder(res) {
		td, ok := res.Decls[id].(*domain.Typedef)
		if !ok {
			continue
		}
		dt, ok := domain.RemoveAlias(td.Type).(*domain.DeclaratedType)
		if !ok {
			continue
		}
		cls, ok := dt.Decl.(*domain.Class)
		if !ok {
			continue
		}
		if _, seen := visited[cls]; !seen {
			visited[cls] = struct{}{}
			cls.Aliases = cls.Aliases[:0]
		}
		cls.Aliases = append(cls.Aliases, td)
	}
}
