package resource

import (
	"fmt"
	"go/types"
	"strings"

	"github.com/erluxman/unreleased/internal/typeutil"
)

// Spec holds parsed components of a resource specification.
// Format: "pkg/path.Type=Method".
type Spec struct {
	PkgPath  string
	TypeName string
	Method   string
}

// ParseSpec parses a single resource specification string into components.
func ParseSpec(s string) (Spec, error) {
	typePart, method, ok := strings.Cut(s, "=")
	if !ok || method == "" {
		return Spec{}, fmt.Errorf("invalid resource spec %q: want pkg/path.Type=Method", s)
	}

	lastDot := strings.LastIndex(typePart, ".")
	if lastDot <= 0 || lastDot == len(typePart)-1 {
		return Spec{}, fmt.Errorf("invalid resource type %q: want pkg/path.Type", typePart)
	}

	return Spec{
		PkgPath:  typePart[:lastDot],
		TypeName: typePart[lastDot+1:],
		Method:   method,
	}, nil
}

// ParseList parses a comma-separated list of resource specifications.
func ParseList(s string) ([]Spec, error) {
	if s == "" {
		return nil, nil
	}

	var specs []Spec

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		spec, err := ParseSpec(part)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

// Entry converts the spec into a registry entry matching the named type,
// pointer or value.
func (s Spec) Entry() Entry {
	return Entry{
		Method: s.Method,
		Matches: func(t types.Type) bool {
			return typeutil.IsNamedType(t, s.PkgPath, s.TypeName)
		},
	}
}
