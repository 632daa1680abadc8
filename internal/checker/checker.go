// Package checker runs the evidence collectors over declaration sites and
// reports the ones with no evidence at all.
package checker

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/erluxman/unreleased/internal/container"
	"github.com/erluxman/unreleased/internal/directive/ignore"
	"github.com/erluxman/unreleased/internal/evidence"
	"github.com/erluxman/unreleased/internal/resource"
)

// Options selects which declaration site kinds are checked.
type Options struct {
	Locals bool
	Fields bool
}

// Checker evaluates declaration sites against the evidence collectors.
type Checker struct {
	registry        *resource.Registry
	localCollectors []evidence.Collector
	fieldCollectors []evidence.Collector
	ignoreMaps      map[string]ignore.Map
	skipFiles       map[string]bool
	opts            Options
	flatten         *container.Cache
}

// New creates a checker.
func New(
	reg *resource.Registry,
	localCollectors []evidence.Collector,
	fieldCollectors []evidence.Collector,
	ignoreMaps map[string]ignore.Map,
	skipFiles map[string]bool,
	opts Options,
) *Checker {
	return &Checker{
		registry:        reg,
		localCollectors: localCollectors,
		fieldCollectors: fieldCollectors,
		ignoreMaps:      ignoreMaps,
		skipFiles:       skipFiles,
		opts:            opts,
		flatten:         container.NewCache(),
	}
}

// Run walks the package once and evaluates every declaration site. Each site
// is decided independently; nothing is shared across sites except the
// read-only registry and the flatten cache.
func (c *Checker) Run(pass *analysis.Pass, insp *inspector.Inspector) {
	nodeFilter := []ast.Node{
		(*ast.AssignStmt)(nil),
		(*ast.ValueSpec)(nil),
		(*ast.StructType)(nil),
	}

	insp.WithStack(nodeFilter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		filename := pass.Fset.Position(n.Pos()).Filename
		if c.skipFiles[filename] {
			return true
		}

		switch node := n.(type) {
		case *ast.AssignStmt:
			if c.opts.Locals && node.Tok == token.DEFINE {
				c.checkDefine(pass, node, stack)
			}
		case *ast.ValueSpec:
			if c.opts.Locals {
				c.checkValueSpec(pass, node, stack)
			}
		case *ast.StructType:
			if c.opts.Fields {
				c.checkStruct(pass, node)
			}
		}

		return true
	})
}

// checkDefine handles short variable declarations: a, b := ...
// Each declared name goes through the pipeline independently.
func (c *Checker) checkDefine(pass *analysis.Pass, assign *ast.AssignStmt, stack []ast.Node) {
	body := container.EnclosingFuncBody(stack)
	if body == nil {
		return
	}

	for i, lhs := range assign.Lhs {
		ident, ok := lhs.(*ast.Ident)
		if !ok {
			continue
		}
		var init ast.Expr
		if len(assign.Rhs) == len(assign.Lhs) {
			init = assign.Rhs[i]
		}
		c.checkLocal(pass, ident, init, body)
	}
}

// checkValueSpec handles var declarations inside function bodies. Package
// level specs have no enclosing function and are out of scope.
func (c *Checker) checkValueSpec(pass *analysis.Pass, spec *ast.ValueSpec, stack []ast.Node) {
	body := container.EnclosingFuncBody(stack)
	if body == nil {
		return
	}

	for i, name := range spec.Names {
		var init ast.Expr
		if len(spec.Values) == len(spec.Names) {
			init = spec.Values[i]
		}
		c.checkLocal(pass, name, init, body)
	}
}

func (c *Checker) checkLocal(pass *analysis.Pass, ident *ast.Ident, init ast.Expr, body *ast.BlockStmt) {
	site := c.newSite(pass, ident, evidence.Local, init)
	if site == nil {
		return
	}

	seq := c.flatten.Flatten(body)
	c.decide(pass, site, seq, c.localCollectors, ignore.Locals,
		"resource %q is never released (missing %s)")
}

// checkStruct evaluates every named field of a struct type. The evidence
// container for a field is the declaring package: the methods, constructors
// and composite literals that manage it all live outside the type
// declaration.
func (c *Checker) checkStruct(pass *analysis.Pass, st *ast.StructType) {
	if st.Fields == nil {
		return
	}

	var seq []ast.Node // built lazily, most structs hold no resources

	for _, field := range st.Fields.List {
		for _, name := range field.Names {
			site := c.newSite(pass, name, evidence.Field, nil)
			if site == nil {
				continue
			}
			if seq == nil {
				seq = c.flatten.PackageSequence(pass.Files)
			}
			c.decide(pass, site, seq, c.fieldCollectors, ignore.Fields,
				"resource field %q is never released (missing %s)")
		}
	}
}

// newSite builds a Site when the identifier declares a variable of a
// resource-like type, nil otherwise.
func (c *Checker) newSite(pass *analysis.Pass, ident *ast.Ident, kind evidence.SiteKind, init ast.Expr) *evidence.Site {
	if ident.Name == "_" {
		return nil
	}

	obj, ok := pass.TypesInfo.Defs[ident].(*types.Var)
	if !ok {
		return nil // reused variable in a := statement, or no object
	}

	methods := c.registry.MethodsFor(obj.Type())
	if len(methods) == 0 {
		return nil
	}

	return &evidence.Site{
		Ident:   ident,
		Obj:     obj,
		Kind:    kind,
		Init:    init,
		Methods: methods,
	}
}

// decide reports the site iff every collector comes back empty.
func (c *Checker) decide(
	pass *analysis.Pass,
	site *evidence.Site,
	seq []ast.Node,
	collectors []evidence.Collector,
	kind ignore.Kind,
	format string,
) {
	cctx := &evidence.CheckContext{Pass: pass}

	for _, col := range collectors {
		if len(col.Collect(cctx, site, seq)) > 0 {
			return
		}
	}

	if c.shouldIgnore(pass, site.Ident.Pos(), kind) {
		return
	}

	pass.Reportf(site.Ident.Pos(), format, site.Ident.Name, site.Methods[0])
}

// shouldIgnore checks for an ignore directive covering the position.
func (c *Checker) shouldIgnore(pass *analysis.Pass, pos token.Pos, kind ignore.Kind) bool {
	filename := pass.Fset.Position(pos).Filename
	ignoreMap, ok := c.ignoreMaps[filename]
	if !ok {
		return false
	}

	line := pass.Fset.Position(pos).Line

	return ignoreMap.ShouldIgnore(line, kind)
}
