// Package ignoredirective covers //unreleased:ignore handling.
package ignoredirective

import "os"

// [GOOD]: Same-line ignore
func goodIgnoredSameLine() {
	f, _ := os.Open("data.txt") //unreleased:ignore
	_ = f
}

// [GOOD]: Previous-line ignore
func goodIgnoredPrevLine() {
	//unreleased:ignore
	f, _ := os.Open("data.txt")
	_ = f
}

// [GOOD]: Ignore with a trailing reason
func goodIgnoredWithReason() {
	f, _ := os.Open("data.txt") //unreleased:ignore - closed by the OS at exit
	_ = f
}

// [GOOD]: Kind-specific ignore
func goodIgnoredKindSpecific() {
	f, _ := os.Open("data.txt") //unreleased:ignore locals
	_ = f
}

// [BAD]: Ignore naming the wrong kind does not suppress, and is itself
// reported as unused.
func badIgnoredWrongKind() {
	//unreleased:ignore fields // want `unused unreleased:ignore directive for kind\(s\): fields`
	f, _ := os.Open("data.txt") // want `resource "f" is never released \(missing Close\)`
	_ = f
}

// [BAD]: An ignore that suppresses nothing is reported as unused.
func badUnusedIgnore() {
	//unreleased:ignore // want `unused unreleased:ignore directive`
	f, _ := os.Open("data.txt")
	defer f.Close()
}
