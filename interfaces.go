package fern

import (
	"io"

	"github.com/fernlang/fern/arena"
)

// TypeChecker is the seam a semantic analysis pass would implement. It is
// declared here as an interface only, with no in-tree implementation,
// mirroring the teacher's dialect.go Dialect/Database interfaces: those were
// registered collaborators whose concrete bodies lived outside the package
// under test. Checking is explicitly out of scope (spec.md's Non-goals); this
// interface exists so cmd/fern's `check` subcommand and the language server
// have a stable seam to call through once one exists.
type TypeChecker interface {
	Check(a *arena.Arena, program []Stmt) (*CheckedProgram, []Diagnostic)
}

// CodeGenerator is the analogous seam for a compilation backend. Also
// unimplemented in-tree.
type CodeGenerator interface {
	Generate(w io.Writer, program *CheckedProgram) error
}

// CheckedProgram is an opaque placeholder for whatever a TypeChecker
// produces. Its real shape (a typed AST, a symbol table, whatever a given
// checker implementation wants) is that implementation's concern, not the
// front end's.
type CheckedProgram struct {
	// Opaque is reserved for a future checker's output; the front end never
	// populates or inspects it.
	Opaque any
}
