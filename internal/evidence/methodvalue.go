package evidence

import (
	"go/ast"
)

// MethodValue matches taking the release method as a bound method value
// without calling it, e.g. cleanup := f.Close. The release is presumed to
// happen when the callback later fires, so this counts the same as a direct
// invocation.
type MethodValue struct{}

// Name returns the collector name.
func (*MethodValue) Name() string { return "MethodValue" }

// Collect returns every value-position selector binding a release method of
// the site.
func (*MethodValue) Collect(cctx *CheckContext, site *Site, seq []ast.Node) []ast.Node {
	funs := callFunSelectors(seq)

	var found []ast.Node

	for _, n := range seq {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok || funs[sel] {
			continue
		}
		if !hasReleaseMethod(site, sel.Sel.Name) {
			continue
		}
		if refersToSite(cctx, sel.X, site) {
			found = append(found, sel)
		}
	}

	return found
}
