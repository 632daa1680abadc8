// This file covers nesting, shadowing and assignment-handoff patterns.
package closer

// [GOOD]: Release inside a deferred closure still lands in the container
func goodCloseInClosure() {
	r := NewResource()
	defer func() {
		_ = r.Close()
	}()
}

// [GOOD]: Bare-identifier assignment hands the slot to another owner
func goodHandoffToName(spare *Resource) {
	var r *Resource
	r = spare
	_ = r
}

// [BAD]: Shadowed inner declaration has its own scope; releasing the inner
// one leaves the outer unaccounted for.
func badShadowed() {
	r := NewResource() // want `resource "r" is never released \(missing Close\)`
	_ = r
	{
		r := NewResource()
		_ = r.Close()
	}
}

// [BAD]: A declaration inside a function literal is scoped to that literal;
// the outer function's release evidence does not reach it.
func badInsideClosure() func() {
	outer := NewResource()
	defer outer.Close()
	return func() {
		inner := NewResource() // want `resource "inner" is never released \(missing Close\)`
		_ = inner
	}
}

// [GOOD]: Evidence anywhere in the function body counts, before or after the
// declaration; the analysis is structural, not flow sensitive.
func goodCloseBeforeDecl() {
	var r *Resource
	for i := 0; i < 2; i++ {
		if r != nil {
			_ = r.Close()
		}
		r = NewResource()
	}
}
