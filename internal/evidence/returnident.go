package evidence

import (
	"go/ast"
)

// ReturnIdent matches a bare return of the site's identifier: ownership moves
// to the caller. Only used for local variables; kept as its own heuristic
// rather than folded into the escape collectors, so returns stay suppressed
// even when argument escapes are disabled.
type ReturnIdent struct{}

// Name returns the collector name.
func (*ReturnIdent) Name() string { return "ReturnIdent" }

// Collect returns every return statement whose results include the site's
// bare identifier.
func (*ReturnIdent) Collect(cctx *CheckContext, site *Site, seq []ast.Node) []ast.Node {
	var found []ast.Node

	for _, n := range seq {
		ret, ok := n.(*ast.ReturnStmt)
		if !ok {
			continue
		}
		for _, res := range ret.Results {
			if isSiteIdent(cctx, res, site) {
				found = append(found, ret)
				break
			}
		}
	}

	return found
}
