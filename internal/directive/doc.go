// Package directive provides directive parsing for unreleased.
//
// # Directive Format
//
// All directives follow the format:
//
//	//unreleased:<directive> [args]
//
// Examples:
//
//	//unreleased:ignore
//	//unreleased:ignore locals
//	//unreleased:ignore locals,fields
//
// # Ignore Directive
//
// Suppresses warnings for the next line or same line:
//
//	//unreleased:ignore
//	f := openLog()  // No warning
//
//	f := openLog()  //unreleased:ignore  // Same line works too
//
// Kind-specific ignores:
//
//	//unreleased:ignore fields
//	conn net.Conn  // Only the field checker is ignored
//
// See [ignore] package for details.
package directive
