// Package unreleased provides a go/analysis based analyzer for detecting
// resource-like variables and struct fields that are never released.
package unreleased

import (
	"errors"
	"flag"
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/erluxman/unreleased/internal/checker"
	"github.com/erluxman/unreleased/internal/config"
	"github.com/erluxman/unreleased/internal/directive/ignore"
	"github.com/erluxman/unreleased/internal/evidence"
	"github.com/erluxman/unreleased/internal/resource"
)

// Flags for the analyzer.
var (
	resourceSpecs string
	configPath    string

	// Heuristic and site-kind toggles (all enabled by default).
	enableArgEscape bool
	enableLocals    bool
	enableFields    bool
)

func init() {
	Analyzer.Flags.StringVar(&resourceSpecs, "resources", "",
		"comma-separated list of extra resource types and their release methods (e.g., database/sql.Tx=Rollback)")
	Analyzer.Flags.StringVar(&configPath, "config", "",
		"path to a YAML config file with resource entries and heuristic toggles")

	// Heuristic flags (default: all enabled)
	Analyzer.Flags.BoolVar(&enableArgEscape, "arg-escape", true,
		"treat passing a resource as a call argument as release evidence; disable for a stricter mode")
	Analyzer.Flags.BoolVar(&enableLocals, "locals", true, "check local variable declarations")
	Analyzer.Flags.BoolVar(&enableFields, "fields", true, "check struct field declarations")
}

// Analyzer is the main analyzer for unreleased.
var Analyzer = &analysis.Analyzer{
	Name:     "unreleased",
	Doc:      "checks that resource-like variables and fields are released or handed off before going out of scope",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
	Flags:    flag.FlagSet{},
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	// Build set of files to skip
	skipFiles := buildSkipFiles(pass)

	// Build ignore maps for each file (excluding skipped files)
	ignoreMaps := buildIgnoreMaps(pass, skipFiles)

	// Assemble the predicate registry from built-ins, flags and config
	reg, argEscape, err := buildRegistry()
	if err != nil {
		return nil, err
	}

	// Create and run the checker over both site kinds
	chk := checker.New(
		reg,
		buildCollectors(evidence.Local, argEscape),
		buildCollectors(evidence.Field, argEscape),
		ignoreMaps,
		skipFiles,
		checker.Options{Locals: enableLocals, Fields: enableFields},
	)
	chk.Run(pass, insp)

	// Report unused ignore directives
	reportUnusedIgnores(pass, ignoreMaps, buildEnabledKinds())

	return nil, nil
}

// buildRegistry creates the predicate registry for one run.
// Flag entries are registered after the built-in io.Closer entry; config file
// entries come last, and a config-file arg-escape setting overrides the flag.
func buildRegistry() (*resource.Registry, bool, error) {
	reg := resource.New()
	argEscape := enableArgEscape

	specs, err := resource.ParseList(resourceSpecs)
	if err != nil {
		return nil, false, err
	}
	for _, spec := range specs {
		reg.Register(spec.Entry())
	}

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, false, err
		}
		for _, res := range cfg.Resources {
			spec, err := resource.ParseSpec(res.Type + "=" + res.Method)
			if err != nil {
				return nil, false, err
			}
			reg.Register(spec.Entry())
		}
		if cfg.ArgEscape != nil {
			argEscape = *cfg.ArgEscape
		}
	}

	return reg, argEscape, nil
}

// buildCollectors assembles the evidence collector set for a site kind.
func buildCollectors(kind evidence.SiteKind, argEscape bool) []evidence.Collector {
	var collectors []evidence.Collector

	if kind == evidence.Field {
		collectors = append(collectors, &evidence.CtorInit{})
	} else {
		collectors = append(collectors, &evidence.ReturnIdent{})
	}

	collectors = append(collectors,
		&evidence.ReleaseCall{},
		&evidence.AssignDelegate{},
		&evidence.MethodValue{},
	)

	if argEscape {
		collectors = append(collectors, &evidence.ArgEscape{})
	}

	return collectors
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files are always skipped.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename

		// Always skip generated files
		if ast.IsGenerated(file) {
			skipFiles[filename] = true
		}
	}

	return skipFiles
}

// buildIgnoreMaps creates ignore maps for each file in the pass.
func buildIgnoreMaps(pass *analysis.Pass, skipFiles map[string]bool) map[string]ignore.Map {
	ignoreMaps := make(map[string]ignore.Map)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if skipFiles[filename] {
			continue
		}
		ignoreMaps[filename] = ignore.Build(pass.Fset, file)
	}

	return ignoreMaps
}

// buildEnabledKinds creates a map of which site kinds are enabled.
func buildEnabledKinds() ignore.EnabledKinds {
	enabled := make(ignore.EnabledKinds)

	if enableLocals {
		enabled[ignore.Locals] = true
	}

	if enableFields {
		enabled[ignore.Fields] = true
	}

	return enabled
}

// reportUnusedIgnores reports any ignore directives that were not used.
func reportUnusedIgnores(pass *analysis.Pass, ignoreMaps map[string]ignore.Map, enabled ignore.EnabledKinds) {
	for _, ignoreMap := range ignoreMaps {
		for _, unused := range ignoreMap.GetUnusedIgnores(enabled) {
			if len(unused.Kinds) == 0 {
				pass.Reportf(unused.Pos, "unused unreleased:ignore directive")
			} else {
				kindNames := make([]string, len(unused.Kinds))
				for i, k := range unused.Kinds {
					kindNames[i] = string(k)
				}
				pass.Reportf(unused.Pos, "unused unreleased:ignore directive for kind(s): %s", strings.Join(kindNames, ", "))
			}
		}
	}
}
