package module

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	fern "github.com/fernlang/fern"
	"github.com/fernlang/fern/arena"
)

// Loader handles loading, parsing, and caching of Fern modules, and resolves
// the dotted paths named by `module`/`import` declarations to files on disk.
type Loader struct {
	// cache stores loaded modules by absolute path.
	cache map[string]*Module

	// resolving tracks the in-progress resolution stack (absolute paths),
	// in load order, so a cycle (A imports B imports A) is detected before
	// it recurses forever.
	resolving []string

	// Parser is the function used to parse .fn files. Defaults to Parse but
	// can be overridden for testing.
	Parser func(filename string, data []byte) ([]fern.Stmt, []fern.Diagnostic)
}

// NewLoader creates a new module loader.
func NewLoader() *Loader {
	return &Loader{
		cache: make(map[string]*Module),
		Parser: func(filename string, data []byte) ([]fern.Stmt, []fern.Diagnostic) {
			return fern.Parse(arena.New(), filename, data)
		},
	}
}

// Load loads a module from the given path.
// Relative paths are resolved from the current working directory.
// Returns a cached module if already loaded.
func (l *Loader) Load(path string) (*Module, error) {
	absPath, err := l.resolvePath(path, "")
	if err != nil {
		return nil, err
	}

	return l.loadAbsolute(absPath, "")
}

// LoadFrom loads a module, resolving the path relative to a base module.
// This is used for loading imports.
func (l *Loader) LoadFrom(path string, from *Module) (*Module, error) {
	absPath, err := l.resolvePath(path, from.Path)
	if err != nil {
		return nil, &LoadError{
			Path:         path,
			ImportedFrom: from.Path,
			Cause:        err,
		}
	}

	return l.loadAbsolute(absPath, from.Path)
}

// resolvePath resolves a path to an absolute path.
// If basePath is provided, relative paths are resolved from its directory.
// A dotted path with no separators and no .fn extension (`app.db.user`, the
// shape `module`/`import` declarations name) is first expanded into a
// directory-per-segment path before being checked against the filesystem.
func (l *Loader) resolvePath(path, basePath string) (string, error) {
	if filepath.IsAbs(path) {
		return l.normalizeFernPath(path)
	}

	var baseDir string

	if basePath != "" {
		baseDir = filepath.Dir(basePath)
	} else {
		var err error

		baseDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	rel := path
	if !strings.ContainsAny(path, `/\`) && filepath.Ext(path) != ".fn" {
		rel = filepath.Join(strings.Split(path, ".")...)
	}

	return l.normalizeFernPath(filepath.Join(baseDir, rel))
}

// normalizeFernPath ensures the path has a .fn extension and exists.
func (l *Loader) normalizeFernPath(path string) (string, error) {
	// Clean the path
	path = filepath.Clean(path)

	// Try the path as-is first
	if _, err := os.Stat(path); err == nil {
		return filepath.Abs(path)
	}

	// If no extension, try adding .fn
	if filepath.Ext(path) == "" {
		withExt := path + ".fn"
		if _, err := os.Stat(withExt); err == nil {
			return filepath.Abs(withExt)
		}
	}

	return "", fmt.Errorf("%w: %s", ErrModuleNotFound, path)
}

// loadAbsolute loads a module from an absolute path, detecting import cycles
// via the in-progress resolution stack before falling through to the cache
// and then the filesystem.
func (l *Loader) loadAbsolute(absPath, importedFrom string) (*Module, error) {
	if containsPath(l.resolving, absPath) {
		return nil, &LoadError{
			Path:         absPath,
			ImportedFrom: importedFrom,
			Cause:        fmt.Errorf("%w: %s", ErrImportCycle, cycleDescription(l.resolving, absPath)),
		}
	}

	// Check cache
	if mod, ok := l.cache[absPath]; ok {
		return mod, nil
	}

	l.resolving = append(l.resolving, absPath)
	defer func() { l.resolving = l.resolving[:len(l.resolving)-1] }()

	// Read file
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, &LoadError{
			Path:         absPath,
			ImportedFrom: importedFrom,
			Cause:        err,
		}
	}

	// Parse
	program, diags := l.Parser(absPath, data)

	// Create module and cache it
	mod := NewModule(absPath, arena.New(), program, diags)
	l.cache[absPath] = mod

	return mod, nil
}

func containsPath(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}

	return false
}

// cycleDescription renders the resolution stack from the first occurrence of
// the repeated path onward, e.g. "a.fn -> b.fn -> a.fn".
func cycleDescription(resolving []string, repeated string) string {
	start := 0

	for i, p := range resolving {
		if p == repeated {
			start = i

			break
		}
	}

	chain := append(append([]string{}, resolving[start:]...), repeated)

	return strings.Join(chain, " -> ")
}

// LoadGraph loads path and every module it (transitively) imports, returning
// the root module. This is the entry point that actually exercises the
// resolving stack: Load/LoadFrom alone only protect a single file read, but
// a cycle only exists across an import graph, so the walk has to happen
// here, recursing into each ImportStmt/ModuleStmt-adjacent import path
// before loadAbsolute pops the importing module off the stack.
func (l *Loader) LoadGraph(path string) (*Module, error) {
	mod, err := l.Load(path)
	if err != nil {
		return nil, err
	}

	if err := l.loadImports(mod); err != nil {
		return nil, err
	}

	return mod, nil
}

// loadImports resolves and recursively loads every import declared in mod,
// re-pushing mod's path onto the resolving stack for the duration so a cycle
// reachable through mod's imports is caught before it recurses forever.
func (l *Loader) loadImports(mod *Module) error {
	l.resolving = append(l.resolving, mod.Path)
	defer func() { l.resolving = l.resolving[:len(l.resolving)-1] }()

	for _, stmt := range mod.Program {
		imp, ok := stmt.(*fern.ImportStmt)
		if !ok {
			continue
		}

		dotted := strings.Join(imp.Path, ".")

		imported, err := l.LoadFrom(dotted, mod)
		if err != nil {
			return err
		}

		if _, ok := l.cache[imported.Path]; ok && !containsPath(l.resolving, imported.Path) {
			if err := l.loadImports(imported); err != nil {
				return err
			}
		}
	}

	return nil
}

// Clear clears the module cache and any in-progress resolution state.
func (l *Loader) Clear() {
	l.cache = make(map[string]*Module)
	l.resolving = nil
}

// Cached returns all cached modules.
func (l *Loader) Cached() map[string]*Module {
	result := make(map[string]*Module, len(l.cache))
	maps.Copy(result, l.cache)

	return result
}
