package evidence

import (
	"go/ast"
	"go/types"
)

// CtorInit suppresses fields whose lifecycle is constructor-managed: a keyed
// composite literal naming the field, or a function parameter written straight
// into it. Such fields are assumed intentionally owned by the enclosing type,
// commonly handed in from outside. Fields only.
type CtorInit struct{}

// Name returns the collector name.
func (*CtorInit) Name() string { return "CtorInit" }

// Collect returns keyed literal elements initializing the field and
// assignments that store a function parameter into it.
func (*CtorInit) Collect(cctx *CheckContext, site *Site, seq []ast.Node) []ast.Node {
	if site.Kind != Field {
		return nil
	}

	var found []ast.Node

	for _, n := range seq {
		switch n := n.(type) {
		case *ast.KeyValueExpr:
			if key, ok := n.Key.(*ast.Ident); ok && cctx.objectOf(key) == site.Obj {
				found = append(found, n)
			}
		case *ast.FuncDecl:
			found = append(found, paramToFieldWrites(cctx, site, n)...)
		}
	}

	return found
}

// paramToFieldWrites finds assignments inside fn that copy one of its
// parameters directly into the site's field, e.g. c.conn = conn in a
// constructor or setter.
func paramToFieldWrites(cctx *CheckContext, site *Site, fn *ast.FuncDecl) []ast.Node {
	if fn.Body == nil {
		return nil
	}

	params := paramObjects(cctx, fn.Type)
	if len(params) == 0 {
		return nil
	}

	var found []ast.Node

	ast.Inspect(fn.Body, func(n ast.Node) bool {
		assign, ok := n.(*ast.AssignStmt)
		if !ok {
			return true
		}
		for i, lhs := range assign.Lhs {
			sel, ok := lhs.(*ast.SelectorExpr)
			if !ok || cctx.objectOf(sel.Sel) != site.Obj {
				continue
			}
			ident, ok := pairedRHS(assign, i).(*ast.Ident)
			if !ok {
				continue
			}
			if params[cctx.objectOf(ident)] {
				found = append(found, assign)
			}
		}
		return true
	})

	return found
}

// paramObjects collects the parameter objects of a function type.
func paramObjects(cctx *CheckContext, fnType *ast.FuncType) map[types.Object]bool {
	params := make(map[types.Object]bool)

	if fnType == nil || fnType.Params == nil {
		return params
	}

	for _, field := range fnType.Params.List {
		for _, name := range field.Names {
			if obj := cctx.objectOf(name); obj != nil {
				params[obj] = true
			}
		}
	}

	return params
}
