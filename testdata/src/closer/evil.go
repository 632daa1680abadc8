// This file covers adversarial patterns and documented heuristic boundaries.
package closer

import (
	"io"
	"os"
)

// Package-level variables are outside any function body and out of scope.
var globalResource = NewResource()

// [BAD]: Releasing a different resource of the same type does not count.
func badWrongReceiver() {
	a := NewResource() // want `resource "a" is never released \(missing Close\)`
	b := NewResource()
	_ = a
	_ = b.Close()
}

// [BAD]: Releasing through an interface alias suppresses the alias, not the
// source: the alias declaration is the one initialized from a variable.
func badAliasSource() error {
	f, err := os.Open("data.txt") // want `resource "f" is never released \(missing Close\)`
	if err != nil {
		return err
	}
	var c io.Closer = f
	return c.Close()
}

// stash exists so property writes spelled like a local can be exercised.
type stash struct {
	r *Resource
}

// [GOOD]: A property write with the local's name and a bare-identifier RHS is
// a handoff for both the local and the field. Matching is by name for
// property writes; this over-suppression is a documented trade-off.
func goodPropertyWriteByName(s *stash, spare *Resource) {
	r := NewResource()
	s.r = spare
	_ = r
}

// [BAD]: A call on the resource that is not the release method is no evidence.
func badUnrelatedMethodCall() error {
	f, err := os.Open("data.txt") // want `resource "f" is never released \(missing Close\)`
	if err != nil {
		return err
	}
	_, err = f.Stat()
	return err
}

// [GOOD]: A same-named method on an unrelated value is irrelevant either way,
// but the resource's own release still counts through an if body.
func goodCloseInBranch(cond bool) {
	r := NewResource()
	if cond {
		_ = r.Close()
	}
}
