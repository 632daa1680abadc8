package resource

import (
	"go/token"
	"go/types"
)

// closerIface is a structural copy of io.Closer, so matching does not require
// loading the io package.
var closerIface = func() *types.Interface {
	errType := types.Universe.Lookup("error").Type()
	results := types.NewTuple(types.NewVar(token.NoPos, nil, "", errType))
	sig := types.NewSignatureType(nil, nil, nil, nil, results, false)
	closeFn := types.NewFunc(token.NoPos, nil, "Close", sig)
	iface := types.NewInterfaceType([]*types.Func{closeFn}, nil)
	iface.Complete()

	return iface
}()

// closerEntry matches any type implementing io.Closer, directly or through
// its pointer method set. Results are stable within a run and cached.
func closerEntry() Entry {
	cache := make(map[types.Type]bool)

	return Entry{
		Method: "Close",
		Matches: func(t types.Type) bool {
			if t == nil {
				return false
			}
			if v, ok := cache[t]; ok {
				return v
			}

			res := types.Implements(t, closerIface)
			if !res {
				if _, isPtr := t.(*types.Pointer); !isPtr {
					res = types.Implements(types.NewPointer(t), closerIface)
				}
			}

			cache[t] = res

			return res
		},
	}
}
