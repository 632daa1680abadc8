// Package closer contains test fixtures for the unreleased resource checker.
// This file covers basic/daily patterns - direct release, returns, handoffs.
// See advanced.go for nesting and shadowing and evil.go for adversarial tests.
package closer

import (
	"os"
)

// Resource is a closable handle used throughout the fixtures.
type Resource struct {
	closed bool
}

// NewResource creates an open resource.
func NewResource() *Resource { return &Resource{} }

// Close releases the resource.
func (r *Resource) Close() error {
	r.closed = true
	return nil
}

// ===== SHOULD REPORT =====

// [BAD]: Declared, never released - basic bad case
func badNeverReleased() {
	r := NewResource() // want `resource "r" is never released \(missing Close\)`
	_ = r
}

// [BAD]: var declaration, assigned from a call, never released
func badVarDecl() {
	var r *Resource // want `resource "r" is never released \(missing Close\)`
	r = NewResource()
	_ = r
}

// [BAD]: os.File left open
func badFile() error {
	f, err := os.Open("data.txt") // want `resource "f" is never released \(missing Close\)`
	if err != nil {
		return err
	}
	_ = f
	return nil
}

// [BAD]: Only one of two declarations is released
func badOneOfTwo() {
	a, b := NewResource(), NewResource() // want `resource "b" is never released \(missing Close\)`
	_ = a.Close()
	_ = b
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: Direct release call
func goodDirectClose() {
	r := NewResource()
	_ = r.Close()
}

// [GOOD]: Deferred release
func goodDeferClose() error {
	f, err := os.Open("data.txt")
	if err != nil {
		return err
	}
	defer f.Close()
	return nil
}

// [GOOD]: Bound method value taken as a callback
func goodMethodValue() {
	r := NewResource()
	cleanup := r.Close
	_ = cleanup
}

// [GOOD]: Ownership returned to the caller
func goodReturn() *Resource {
	r := NewResource()
	return r
}

// [GOOD]: Initialized from another variable - tracked elsewhere
func goodAliasInit(shared *Resource) {
	r := shared
	_ = r
}

// [GOOD]: Non-resource types are never in scope
func goodNonResource() {
	s := "hello"
	n := 42
	_, _ = s, n
}

// ===== LOCALITY =====

// Two sibling functions declaring a same-named resource are evaluated
// independently: tidyTwin's release never rescues leakyTwin.

func leakyTwin() {
	r := NewResource() // want `resource "r" is never released \(missing Close\)`
	_ = r
}

func tidyTwin() {
	r := NewResource()
	_ = r.Close()
}
