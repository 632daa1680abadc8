// Package typeutil provides small helpers over go/types shared by the
// predicate registry and the evidence collectors.
package typeutil

import (
	"go/types"
)

// IsNamedType checks if the type matches the given package path and type
// name. It handles pointer types automatically.
func IsNamedType(t types.Type, pkgPath, typeName string) bool {
	t = UnwrapPointer(t)

	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()
	if obj == nil || obj.Pkg() == nil {
		return false
	}

	return obj.Pkg().Path() == pkgPath && obj.Name() == typeName
}

// UnwrapPointer returns the element type if t is a pointer, otherwise returns t.
func UnwrapPointer(t types.Type) types.Type {
	if ptr, ok := t.(*types.Pointer); ok {
		return ptr.Elem()
	}

	return t
}
