// Package ignore provides //unreleased:ignore directive parsing.
//
// # Overview
//
// The ignore directive suppresses analyzer warnings for specific lines
// or specific site kinds.
//
// # Directive Placement
//
// The directive can appear on the line before or the same line:
//
//	//unreleased:ignore
//	f, _ := os.Open(path)  // Warning suppressed
//
//	f, _ := os.Open(path)  //unreleased:ignore  // Also works
//
// # Kind-Specific Ignores
//
// Specify site kinds to ignore only specific checks:
//
//	//unreleased:ignore locals
//	f, _ := os.Open(path)  // Only the local-variable check ignored
//
//	//unreleased:ignore locals,fields
//
// # Valid Kind Names
//
//	┌────────┬──────────────────────────────────────────┐
//	│ Name   │ Description                              │
//	├────────┼──────────────────────────────────────────┤
//	│ locals │ local variable release checking          │
//	│ fields │ struct field release checking            │
//	└────────┴──────────────────────────────────────────┘
//
// # Reasons
//
// Text after " - " documents why the site is ignored and is not parsed:
//
//	//unreleased:ignore - closed by the connection pool
//
// # Parsing
//
// Use [Build] to collect the directives of one file:
//
//	ignoreMap := ignore.Build(pass.Fset, file)
//
// # Checking Ignores
//
// Use [Map.ShouldIgnore] before reporting:
//
//	if ignoreMap.ShouldIgnore(lineNum, ignore.Locals) {
//	    return // Skip this site
//	}
//
// # Unused Ignore Detection
//
// The package tracks which directives fired and reports the rest as
// warnings:
//
//	//unreleased:ignore  // Warning: unused ignore directive
//	normalCode()         // No warning to suppress
package ignore
