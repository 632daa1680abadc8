package ignore

import (
	"go/ast"
	"go/token"
	"strings"
)

// Kind represents a site kind that can be ignored.
type Kind string

// Valid site kinds.
const (
	Locals Kind = "locals"
	Fields Kind = "fields"
)

// Entry tracks an ignore directive and its usage.
type Entry struct {
	pos   token.Pos     // Position of the ignore comment
	kinds []Kind        // List of site kinds (empty = all)
	used  map[Kind]bool // Track usage per kind
}

// Map tracks ignore entries by line number.
type Map map[int]*Entry

// EnabledKinds tracks which site kinds are currently checked.
type EnabledKinds map[Kind]bool

// Build scans a file for ignore comments and returns a map.
func Build(fset *token.FileSet, file *ast.File) Map {
	m := make(Map)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if kinds, ok := parseComment(c.Text); ok {
				line := fset.Position(c.Pos()).Line
				m[line] = &Entry{
					pos:   c.Pos(),
					kinds: kinds,
					used:  make(map[Kind]bool),
				}
			}
		}
	}

	return m
}

// parseComment parses an ignore directive and returns the site kinds.
// Returns a nil slice if no specific kinds are specified (ignore all).
// Returns false if not an ignore comment.
func parseComment(text string) ([]Kind, bool) {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, "unreleased:ignore") {
		return nil, false
	}

	// Extract kind names after "unreleased:ignore"
	rest := strings.TrimPrefix(text, "unreleased:ignore")
	rest = strings.TrimSpace(rest)

	if rest == "" {
		return nil, true // No specific kinds = ignore all
	}

	// Stop at comment markers: " - ", " // ", or " //"
	if idx := strings.Index(rest, " - "); idx >= 0 {
		rest = rest[:idx]
	}
	if idx := strings.Index(rest, " //"); idx >= 0 {
		rest = rest[:idx]
	}
	// Handle "- " at the start (no kinds specified, just comment)
	if strings.HasPrefix(rest, "- ") || rest == "-" {
		return nil, true
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil, true
	}

	// Parse comma-separated kind names
	parts := strings.Split(rest, ",")
	kinds := make([]Kind, 0, len(parts))

	for _, part := range parts {
		name := Kind(strings.TrimSpace(part))
		if name != "" {
			kinds = append(kinds, name)
		}
	}

	return kinds, true
}

// ShouldIgnore returns true if the given line should be ignored for the specified kind.
func (m Map) ShouldIgnore(line int, kind Kind) bool {
	if m.shouldIgnoreEntry(m[line], kind) {
		return true
	}
	if m.shouldIgnoreEntry(m[line-1], kind) {
		return true
	}

	return false
}

// shouldIgnoreEntry checks if an entry ignores the specified kind.
func (m Map) shouldIgnoreEntry(entry *Entry, kind Kind) bool {
	if entry == nil {
		return false
	}

	// Empty kinds list means ignore all
	if len(entry.kinds) == 0 {
		entry.used[kind] = true
		return true
	}

	// Check if the specified kind is in the list
	for _, k := range entry.kinds {
		if k == kind {
			entry.used[kind] = true
			return true
		}
	}

	return false
}

// UnusedIgnore represents an unused ignore directive.
type UnusedIgnore struct {
	Pos   token.Pos
	Kinds []Kind // Unused kind names (empty if entire directive is unused)
}

// GetUnusedIgnores returns ignore directives that were not used.
func (m Map) GetUnusedIgnores(enabled EnabledKinds) []UnusedIgnore {
	var unused []UnusedIgnore

	for _, entry := range m {
		if len(entry.kinds) == 0 {
			// Ignore-all directive: check if any enabled kind used it
			anyUsed := false
			for kind := range enabled {
				if entry.used[kind] {
					anyUsed = true
					break
				}
			}
			if !anyUsed {
				unused = append(unused, UnusedIgnore{Pos: entry.pos})
			}
		} else {
			// Specific kinds: report each unused one
			var unusedKinds []Kind
			for _, kind := range entry.kinds {
				if !enabled[kind] {
					// Kind is not checked this run - report as invalid
					unusedKinds = append(unusedKinds, kind)
				} else if !entry.used[kind] {
					// Kind is checked but the directive never fired
					unusedKinds = append(unusedKinds, kind)
				}
			}
			if len(unusedKinds) > 0 {
				unused = append(unused, UnusedIgnore{
					Pos:   entry.pos,
					Kinds: unusedKinds,
				})
			}
		}
	}

	return unused
}
