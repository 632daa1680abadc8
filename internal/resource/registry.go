// Package resource defines the predicate registry that decides which declared
// types are resource-like and which method releases them.
package resource

import (
	"go/types"
	"slices"
)

// Entry pairs a type predicate with the name of the method that releases
// matching values.
type Entry struct {
	Matches func(t types.Type) bool
	Method  string
}

// Registry is an ordered list of entries. Matching is an existential scan: a
// type is in scope if any predicate accepts it, and a method name is
// release-shaped for a type if any accepting predicate is paired with it.
type Registry struct {
	entries []Entry
}

// New creates a registry holding the built-in io.Closer entry.
func New() *Registry {
	return &Registry{entries: []Entry{closerEntry()}}
}

// Register appends an entry to the registry.
func (r *Registry) Register(e Entry) {
	r.entries = append(r.entries, e)
}

// MethodsFor returns the release methods of every entry whose predicate
// accepts t, in registration order, deduplicated. An empty result means t is
// not resource-like.
func (r *Registry) MethodsFor(t types.Type) []string {
	var methods []string

	for _, e := range r.entries {
		if !e.Matches(t) {
			continue
		}
		if !slices.Contains(methods, e.Method) {
			methods = append(methods, e.Method)
		}
	}

	return methods
}
