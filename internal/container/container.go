// Package container resolves the scope boundary for a declaration site and
// flattens it into the node sequence the evidence collectors filter over.
package container

import (
	"go/ast"
)

// EnclosingFuncBody returns the body of the nearest enclosing function
// declaration or literal on the traversal stack, or nil when the stack holds
// no function. The stack is ordered root-first, as produced by
// inspector.WithStack.
func EnclosingFuncBody(stack []ast.Node) *ast.BlockStmt {
	for i := len(stack) - 1; i >= 0; i-- {
		switch fn := stack[i].(type) {
		case *ast.FuncDecl:
			return fn.Body
		case *ast.FuncLit:
			return fn.Body
		}
	}

	return nil
}

// Flatten returns the complete pre-order sequence of nodes rooted at root,
// including root itself. Same tree, same sequence, every run.
func Flatten(root ast.Node) []ast.Node {
	var seq []ast.Node

	ast.Inspect(root, func(n ast.Node) bool {
		if n != nil {
			seq = append(seq, n)
		}
		return true
	})

	return seq
}

// Cache memoizes flattened sequences per container for the duration of one
// run. Recomputation would be idempotent; the cache is an optimization only.
type Cache struct {
	seqs    map[ast.Node][]ast.Node
	pkgSeq  []ast.Node
	pkgDone bool
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{seqs: make(map[ast.Node][]ast.Node)}
}

// Flatten returns the cached sequence for root, computing it on first use.
func (c *Cache) Flatten(root ast.Node) []ast.Node {
	if seq, ok := c.seqs[root]; ok {
		return seq
	}

	seq := Flatten(root)
	c.seqs[root] = seq

	return seq
}

// PackageSequence flattens every file of the package into one sequence, in
// file order. It is the container for struct fields: the methods, constructors
// and composite literals that manage a field live at package level, not inside
// the type declaration.
func (c *Cache) PackageSequence(files []*ast.File) []ast.Node {
	if !c.pkgDone {
		for _, f := range files {
			c.pkgSeq = append(c.pkgSeq, Flatten(f)...)
		}
		c.pkgDone = true
	}

	return c.pkgSeq
}
