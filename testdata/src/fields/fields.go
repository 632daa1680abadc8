// Package fields contains test fixtures for struct field resource tracking.
// The evidence container for a field is its declaring package: methods,
// constructors and composite literals all live outside the type declaration.
package fields

import (
	"io"
	"net"
)

// Resource is a closable handle used throughout the fixtures.
type Resource struct{}

// Close releases the resource.
func (r *Resource) Close() error { return nil }

// NewResource creates an open resource.
func NewResource() *Resource { return &Resource{} }

// ===== SHOULD REPORT =====

// [BAD]: Field with no evidence anywhere in the package
type Leaky struct {
	conn net.Conn // want `resource field "conn" is never released \(missing Close\)`
}

// [BAD]: Every name of a multi-name field line is evaluated independently
type Multi struct {
	a, b net.Conn // want `resource field "a" is never released \(missing Close\)` `resource field "b" is never released \(missing Close\)`
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: Field released in a method of the type
type Managed struct {
	conn net.Conn
}

func (m *Managed) Shutdown() error {
	return m.conn.Close()
}

// [GOOD]: Keyed composite literal - constructor-managed lifecycle
type Literal struct {
	w io.WriteCloser
}

func NewLiteral(w io.WriteCloser) *Literal {
	return &Literal{w: w}
}

// [GOOD]: Constructor parameter written straight into the field
type Injected struct {
	src *Resource
}

func NewInjected(src *Resource) *Injected {
	inj := &Injected{}
	inj.src = src
	return inj
}

// [GOOD]: Field handed to a call - the callee might release it
type Delegated struct {
	res *Resource
}

func (d *Delegated) flush() {
	dispose(d.res)
}

func dispose(r *Resource) { _ = r.Close() }

// [GOOD]: Bound method value taken from the field
type Deferred struct {
	h *Resource
}

func (d *Deferred) cleanupFn() func() error {
	return d.h.Close
}

// ===== LOCALITY =====

// Same field name on an unrelated type stays independent: hanging up
// TidyPair's socket says nothing about LeakyPair's.

type LeakyPair struct {
	sock net.Conn // want `resource field "sock" is never released \(missing Close\)`
}

type TidyPair struct {
	sock net.Conn
}

func (t *TidyPair) hangup() error { return t.sock.Close() }
