package fern

import (
	"fmt"
	"strings"
)

// TypeKind is the closed enumeration of the post-inference Type IR's
// variants. This is distinct from the parser-level TypeAnn family in
// ast.go: TypeAnn is what the parser produces from source syntax; Type is
// what a checker would produce by resolving those annotations and running
// inference (the checker itself is out of scope; see checker.TypeChecker in
// interfaces.go). The IR is kept here so front-end tests can exercise
// name/arity/arena-free data flow downstream of parsing without depending on
// a concrete inference engine.
type TypeKind int

const (
	KindPrimitive TypeKind = iota
	KindVar
	KindApp  // constructor applied to type arguments, e.g. List<Int>
	KindFunc
	KindTuple
	KindError // the designated "ill-typed" sentinel, equal only to other KindError types
)

// Type is a node in the post-inference type representation. Unlike AST
// nodes, Types are not arena-allocated: they're produced after parsing is
// complete and the parse arena may already have been destroyed, and they're
// cheap enough (a handful of fields, no source locations) to let the Go
// garbage collector own them directly.
type Type struct {
	Kind TypeKind

	// KindPrimitive
	Name string // "Int", "Float", "String", "Bool", "Unit", ...

	// KindVar
	VarName string // the source-level name this variable was minted for, e.g. "T"; empty for an anonymous fresh var
	VarID   int    // unique within the TypeSession that minted it
	Bound   *Type  // nil while unbound; once set, the variable compares, clones, and renders as Bound instead of itself

	// KindApp
	Ctor string
	Args []*Type

	// KindFunc
	Params []*Type
	Result *Type

	// KindTuple
	Elems []*Type

	// KindError
	Message string // human-readable reason resolution failed; empty for the shared ErrorType sentinel
}

// TypeSession owns the monotonic type-variable ID counter for one
// inference run. The counter is deliberately a field here rather than a
// package-level global so that concurrent or repeated inference runs (e.g.
// one per file in a long-lived LSP process) never share or race on it.
type TypeSession struct {
	nextVarID int
}

// NewTypeSession creates a session with a fresh variable-ID counter.
func NewTypeSession() *TypeSession {
	return &TypeSession{}
}

// FreshVar mints a new, globally-distinct-within-this-session anonymous type
// variable.
func (s *TypeSession) FreshVar() *Type {
	s.nextVarID++

	return &Type{Kind: KindVar, VarID: s.nextVarID}
}

// FreshNamedVar mints a new type variable that remembers the source-level
// name it stands for (e.g. the `T` in `fn identity<T>(x: T) -> T`), so
// String can render it back instead of a synthetic `tN`.
func (s *TypeSession) FreshNamedVar(name string) *Type {
	s.nextVarID++

	return &Type{Kind: KindVar, VarName: name, VarID: s.nextVarID}
}

// Primitive constructs a named primitive type (Int, Float, String, Bool,
// Unit, ...).
func Primitive(name string) *Type {
	return &Type{Kind: KindPrimitive, Name: name}
}

// App constructs a type-constructor application, e.g. App("List", elem) for
// List<T>.
func App(ctor string, args ...*Type) *Type {
	return &Type{Kind: KindApp, Ctor: ctor, Args: args}
}

// Func constructs a function type.
func Func(params []*Type, result *Type) *Type {
	return &Type{Kind: KindFunc, Params: params, Result: result}
}

// Tuple constructs a tuple type.
func Tuple(elems ...*Type) *Type {
	return &Type{Kind: KindTuple, Elems: elems}
}

// ErrorType is the designated ill-typed sentinel with no specific message:
// it compares equal to any KindError type (whatever its Message) and to no
// other kind, and is returned in place of a real Type
// wherever resolution fails, so that later stages can keep walking the tree
// instead of aborting.
var ErrorType = &Type{Kind: KindError}

// ErrorTypef constructs an ill-typed sentinel carrying a reason, for callers
// that want the failure message to travel with the type instead of being
// reported out of band.
func ErrorTypef(format string, args ...any) *Type {
	return &Type{Kind: KindError, Message: fmt.Sprintf(format, args...)}
}

// resolve follows a KindVar's Bound chain to the type it's ultimately bound
// to, per spec.md's "a bound variable compares as its binding": every
// comparison, clone, and render operation looks through a bound variable
// rather than treating it as an opaque placeholder.
func (t *Type) resolve() *Type {
	for t != nil && t.Kind == KindVar && t.Bound != nil {
		t = t.Bound
	}

	return t
}

// Equal reports structural equality. An unbound KindVar compares equal only
// to another unbound KindVar with the same VarID; a bound KindVar compares
// as whatever it's bound to.
func (t *Type) Equal(other *Type) bool {
	t = t.resolve()
	other = other.resolve()

	if t == nil || other == nil {
		return t == other
	}

	if t.Kind != other.Kind {
		return false
	}

	switch t.Kind {
	case KindPrimitive:
		return t.Name == other.Name
	case KindVar:
		return t.VarID == other.VarID
	case KindApp:
		if t.Ctor != other.Ctor || len(t.Args) != len(other.Args) {
			return false
		}

		for i := range t.Args {
			if !t.Args[i].Equal(other.Args[i]) {
				return false
			}
		}

		return true
	case KindFunc:
		if len(t.Params) != len(other.Params) {
			return false
		}

		for i := range t.Params {
			if !t.Params[i].Equal(other.Params[i]) {
				return false
			}
		}

		return t.Result.Equal(other.Result)
	case KindTuple:
		if len(t.Elems) != len(other.Elems) {
			return false
		}

		for i := range t.Elems {
			if !t.Elems[i].Equal(other.Elems[i]) {
				return false
			}
		}

		return true
	case KindError:
		return true
	default:
		return false
	}
}

// Assignable reports whether a value of type t may be used where other is
// expected. It is currently equality - Fern has no subtyping - but it is the
// hook a future structural/trait-based subtyping relation would extend
// instead of callers having to switch from Equal to something else
// throughout the tree.
func (t *Type) Assignable(other *Type) bool {
	return t.Equal(other)
}

// Clone returns a deep copy, so that one inference session's substitutions
// never mutate a type shared with another.
func (t *Type) Clone() *Type {
	if t == nil {
		return nil
	}

	c := &Type{
		Kind:    t.Kind,
		Name:    t.Name,
		VarName: t.VarName,
		VarID:   t.VarID,
		Bound:   t.Bound.Clone(),
		Ctor:    t.Ctor,
		Message: t.Message,
	}

	for _, a := range t.Args {
		c.Args = append(c.Args, a.Clone())
	}

	for _, p := range t.Params {
		c.Params = append(c.Params, p.Clone())
	}

	c.Result = t.Result.Clone()

	for _, e := range t.Elems {
		c.Elems = append(c.Elems, e.Clone())
	}

	return c
}

// String renders the type the way Fern source would write it.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case KindPrimitive:
		return t.Name
	case KindVar:
		if t.Bound != nil {
			return t.Bound.String()
		}

		if t.VarName != "" {
			return t.VarName
		}

		return fmt.Sprintf("t%d", t.VarID)
	case KindApp:
		if len(t.Args) == 0 {
			return t.Ctor
		}

		parts := make([]string, len(t.Args))
		for i, a := range t.Args {
			parts[i] = a.String()
		}

		return fmt.Sprintf("%s<%s>", t.Ctor, strings.Join(parts, ", "))
	case KindFunc:
		parts := make([]string, len(t.Params))
		for i, p := range t.Params {
			parts[i] = p.String()
		}

		return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), t.Result.String())
	case KindTuple:
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = e.String()
		}

		return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
	case KindError:
		if t.Message != "" {
			return fmt.Sprintf("<error: %s>", t.Message)
		}

		return "<error>"
	default:
		return "<unknown>"
	}
}
