// Package evidence implements the structural heuristics that decide whether a
// declared resource is accounted for within its container.
//
// Each collector filters the container's flattened node sequence for one kind
// of evidence. A site is reported only when every collector comes back empty,
// so the overall decision is a pure existential OR: any single piece of
// evidence suppresses the diagnostic.
package evidence

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// SiteKind distinguishes local variable sites from struct field sites.
type SiteKind int

const (
	// Local is a variable declared inside a function body.
	Local SiteKind = iota
	// Field is a named struct field.
	Field
)

// Site is one declared variable or field under analysis.
type Site struct {
	// Ident is the declaring identifier.
	Ident *ast.Ident
	// Obj is the resolved object for Ident.
	Obj *types.Var
	// Kind tells whether the site is a local variable or a struct field.
	Kind SiteKind
	// Init is the declaration initializer; nil when the declaration has none.
	Init ast.Expr
	// Methods holds the release methods of every registry predicate accepting
	// the declared type, in registration order.
	Methods []string
}

// CheckContext provides context for evidence collection.
type CheckContext struct {
	Pass *analysis.Pass
}

// Collector scans a container's flattened node sequence for one kind of
// evidence that a site is accounted for.
type Collector interface {
	// Name returns a human-readable name for the collector.
	Name() string

	// Collect returns the nodes constituting evidence for the site.
	Collect(cctx *CheckContext, site *Site, seq []ast.Node) []ast.Node
}
