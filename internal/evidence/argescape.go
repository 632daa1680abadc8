package evidence

import (
	"go/ast"
)

// ArgEscape matches any call that receives the site as a bare argument. The
// callee might release the resource, and without visibility into its body the
// analysis suppresses rather than risk a false positive. This heuristic
// dominates the precision/recall trade-off of the whole analyzer; it can be
// turned off with -arg-escape=false.
type ArgEscape struct{}

// Name returns the collector name.
func (*ArgEscape) Name() string { return "ArgEscape" }

// Collect returns every call taking the site as an argument.
func (*ArgEscape) Collect(cctx *CheckContext, site *Site, seq []ast.Node) []ast.Node {
	var found []ast.Node

	for _, n := range seq {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			continue
		}
		for _, arg := range call.Args {
			if refersToSite(cctx, arg, site) {
				found = append(found, call)
				break
			}
		}
	}

	return found
}
