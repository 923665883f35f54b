package module

import (
	"errors"
	"fmt"

	"github.com/fernlang/fern/arena"
	fern "github.com/fernlang/fern"
)

// ErrModuleNotFound is returned (wrapped) when a module path resolves to no
// file on disk, with or without a .fn extension.
var ErrModuleNotFound = errors.New("module not found")

// ErrImportCycle is returned (wrapped) when resolving an import would revisit
// a module still in the middle of being loaded.
var ErrImportCycle = errors.New("import cycle")

// LoadError reports a failure to load one module, naming both the path that
// failed and (when known) the importing module that triggered the load.
type LoadError struct {
	Path         string
	ImportedFrom string
	Cause        error
}

func (e *LoadError) Error() string {
	if e.ImportedFrom == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Cause)
	}

	return fmt.Sprintf("%s (imported from %s): %v", e.Path, e.ImportedFrom, e.Cause)
}

func (e *LoadError) Unwrap() error { return e.Cause }

// Module is one parsed source file, resolved and cached by absolute path.
type Module struct {
	// Path is the absolute path this module was loaded from.
	Path string

	// Arena is a fresh arena created for this module when it is loaded. The
	// Loader's default Parser parses into a separate arena of its own, so the
	// nodes reachable from Program are not allocated from this one.
	Arena *arena.Arena

	// Program is the top-level statement sequence produced by ParseProgram.
	Program []fern.Stmt

	// Diagnostics holds any syntax errors recorded while parsing this file.
	// A module with non-empty Diagnostics is still cached and still usable
	// for import resolution, matching the front end's never-abort-on-first-
	// mistake design.
	Diagnostics []fern.Diagnostic
}

// NewModule wraps a freshly parsed file as a cached Module.
func NewModule(path string, arena *arena.Arena, program []fern.Stmt, diags []fern.Diagnostic) *Module {
	return &Module{Path: path, Arena: arena, Program: program, Diagnostics: diags}
}

// HadError reports whether parsing this module recorded any diagnostic.
func (m *Module) HadError() bool { return len(m.Diagnostics) > 0 }
