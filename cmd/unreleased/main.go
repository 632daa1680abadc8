// Command unreleased is a linter that flags resource-like variables and
// struct fields that are never released.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/erluxman/unreleased"
)

func main() {
	singlechecker.Main(unreleased.Analyzer)
}
