package evidence

import (
	"go/ast"
)

// AssignDelegate matches name-to-name handoffs: a declaration initialized
// from another variable, or an assignment writing a bare identifier into the
// site's name. Either way the value is assumed to be tracked elsewhere, which
// errs toward silence over a false positive and misses some real leaks.
type AssignDelegate struct{}

// Name returns the collector name.
func (*AssignDelegate) Name() string { return "AssignDelegate" }

// Collect returns the declaration itself when its initializer is a bare
// variable reference, plus every assignment of a bare identifier to the
// site's name.
func (*AssignDelegate) Collect(cctx *CheckContext, site *Site, seq []ast.Node) []ast.Node {
	var found []ast.Node

	if site.Init != nil && isBareVarRef(cctx, site.Init) {
		found = append(found, site.Ident)
	}

	for _, n := range seq {
		assign, ok := n.(*ast.AssignStmt)
		if !ok {
			continue
		}
		for i, lhs := range assign.Lhs {
			if !writesToSiteName(cctx, lhs, site) {
				continue
			}
			if isBareVarRef(cctx, pairedRHS(assign, i)) {
				found = append(found, assign)
				break
			}
		}
	}

	return found
}

// writesToSiteName matches the site's bare identifier or a property write
// spelled with the same name. Identifiers resolve by object; property writes
// match by name alone, so a write to any same-named field counts as a handoff.
func writesToSiteName(cctx *CheckContext, lhs ast.Expr, site *Site) bool {
	switch lhs := lhs.(type) {
	case *ast.Ident:
		return cctx.objectOf(lhs) == site.Obj
	case *ast.SelectorExpr:
		return lhs.Sel.Name == site.Ident.Name
	}

	return false
}
