package evidence

import (
	"go/ast"
)

// ReleaseCall matches a direct invocation of a release method on the site's
// variable, e.g. f.Close(). This is the primary suppression signal: the
// resource's own release method is called somewhere in scope.
type ReleaseCall struct{}

// Name returns the collector name.
func (*ReleaseCall) Name() string { return "ReleaseCall" }

// Collect returns every call of a release-shaped method whose receiver
// resolves to the site.
func (*ReleaseCall) Collect(cctx *CheckContext, site *Site, seq []ast.Node) []ast.Node {
	var found []ast.Node

	for _, n := range seq {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			continue
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			continue
		}
		if !hasReleaseMethod(site, sel.Sel.Name) {
			continue
		}
		if refersToSite(cctx, sel.X, site) {
			found = append(found, call)
		}
	}

	return found
}
