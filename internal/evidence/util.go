package evidence

import (
	"go/ast"
	"go/types"
	"slices"
)

// objectOf resolves an identifier through the pass type info.
func (c *CheckContext) objectOf(ident *ast.Ident) types.Object {
	return c.Pass.TypesInfo.ObjectOf(ident)
}

// isSiteIdent reports whether expr is a bare identifier resolving to the
// site's object. Resolution is by object, not by name, so shadowed variables
// never produce evidence for each other.
func isSiteIdent(cctx *CheckContext, expr ast.Expr, site *Site) bool {
	ident, ok := expr.(*ast.Ident)
	if !ok {
		return false
	}

	return cctx.objectOf(ident) == site.Obj
}

// refersToSite reports whether expr denotes the site's variable or field.
// Locals are bare identifiers only; fields are also reachable through a
// selector on any value of the declaring type, including the receiver inside
// the type's own methods.
func refersToSite(cctx *CheckContext, expr ast.Expr, site *Site) bool {
	if isSiteIdent(cctx, expr, site) {
		return true
	}
	if site.Kind != Field {
		return false
	}

	sel, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return false
	}

	return cctx.objectOf(sel.Sel) == site.Obj
}

// isBareVarRef reports whether expr is a bare identifier naming some variable
// (not a constant, a function, or nil).
func isBareVarRef(cctx *CheckContext, expr ast.Expr) bool {
	ident, ok := expr.(*ast.Ident)
	if !ok {
		return false
	}

	_, ok = cctx.objectOf(ident).(*types.Var)

	return ok
}

// hasReleaseMethod reports whether name is a release method for the site's
// declared type.
func hasReleaseMethod(site *Site, name string) bool {
	return slices.Contains(site.Methods, name)
}

// callFunSelectors returns the selector expressions appearing in call
// position, so value-position selectors can be told apart from invocations.
func callFunSelectors(seq []ast.Node) map[*ast.SelectorExpr]bool {
	funs := make(map[*ast.SelectorExpr]bool)

	for _, n := range seq {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			continue
		}
		if sel, ok := call.Fun.(*ast.SelectorExpr); ok {
			funs[sel] = true
		}
	}

	return funs
}

// pairedRHS returns the right-hand side matching the i-th left-hand side, or
// nil for tuple assignments from a single expression.
func pairedRHS(assign *ast.AssignStmt, i int) ast.Expr {
	if len(assign.Rhs) == len(assign.Lhs) {
		return assign.Rhs[i]
	}

	return nil
}
