package fern_test

import (
	"testing"

	fern "github.com/fernlang/fern"
)

func TestTypeSessionFreshVarIsMonotonicAndDistinct(t *testing.T) {
	t.Parallel()

	s := fern.NewTypeSession()

	v1 := s.FreshVar()
	v2 := s.FreshVar()

	if v1.VarID == v2.VarID {
		t.Fatalf("FreshVar() returned duplicate VarID %d", v1.VarID)
	}

	if v2.VarID != v1.VarID+1 {
		t.Errorf("FreshVar() VarID sequence = %d, %d; want consecutive", v1.VarID, v2.VarID)
	}

	if v1.Kind != fern.KindVar {
		t.Errorf("FreshVar().Kind = %v, want KindVar", v1.Kind)
	}
}

func TestTypeSessionsDoNotShareCounters(t *testing.T) {
	t.Parallel()

	s1 := fern.NewTypeSession()
	s2 := fern.NewTypeSession()

	a := s1.FreshVar()
	b := s2.FreshVar()

	if a.VarID != b.VarID {
		t.Errorf("independent sessions' first FreshVar() = %d, %d; want both to start at 1", a.VarID, b.VarID)
	}
}

func TestFreshNamedVarKeepsName(t *testing.T) {
	t.Parallel()

	s := fern.NewTypeSession()

	v := s.FreshNamedVar("T")

	if v.VarName != "T" {
		t.Errorf("FreshNamedVar(%q).VarName = %q", "T", v.VarName)
	}

	if v.String() != "T" {
		t.Errorf("FreshNamedVar(%q).String() = %q, want %q", "T", v.String(), "T")
	}
}

func TestTypeEqual(t *testing.T) {
	t.Parallel()

	s := fern.NewTypeSession()
	v1 := s.FreshVar()
	v2 := s.FreshVar()

	tests := []struct {
		name  string
		a, b  *fern.Type
		equal bool
	}{
		{"identical primitives", fern.Primitive("Int"), fern.Primitive("Int"), true},
		{"different primitives", fern.Primitive("Int"), fern.Primitive("String"), false},
		{"same var id", v1, v1, true},
		{"different var id", v1, v2, false},
		{"identical app", fern.App("List", fern.Primitive("Int")), fern.App("List", fern.Primitive("Int")), true},
		{"different ctor", fern.App("List", fern.Primitive("Int")), fern.App("Set", fern.Primitive("Int")), false},
		{"different arity", fern.App("Pair", fern.Primitive("Int")), fern.App("Pair", fern.Primitive("Int"), fern.Primitive("Int")), false},
		{
			"identical func",
			fern.Func([]*fern.Type{fern.Primitive("Int")}, fern.Primitive("Bool")),
			fern.Func([]*fern.Type{fern.Primitive("Int")}, fern.Primitive("Bool")),
			true,
		},
		{
			"different result",
			fern.Func([]*fern.Type{fern.Primitive("Int")}, fern.Primitive("Bool")),
			fern.Func([]*fern.Type{fern.Primitive("Int")}, fern.Primitive("Unit")),
			false,
		},
		{
			"identical tuple",
			fern.Tuple(fern.Primitive("Int"), fern.Primitive("Bool")),
			fern.Tuple(fern.Primitive("Int"), fern.Primitive("Bool")),
			true,
		},
		{"error sentinel self equal", fern.ErrorType, fern.ErrorType, true},
		{"error sentinel equal to another error", fern.ErrorType, fern.ErrorTypef("mismatch"), true},
		{"error not equal to primitive", fern.ErrorType, fern.Primitive("Int"), false},
		{"nil equal nil", nil, nil, true},
		{"nil not equal non-nil", nil, fern.Primitive("Int"), false},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.a.Equal(tt.b); got != tt.equal {
				t.Errorf("%s.Equal(%s) = %v, want %v", tt.a, tt.b, got, tt.equal)
			}
		})
	}
}

func TestTypeEqualBoundVariableComparesAsItsBinding(t *testing.T) {
	t.Parallel()

	s := fern.NewTypeSession()

	v := s.FreshVar()
	v.Bound = fern.Primitive("Int")

	if !v.Equal(fern.Primitive("Int")) {
		t.Errorf("bound var %s should Equal its binding Int", v)
	}

	if v.Equal(fern.Primitive("Bool")) {
		t.Errorf("bound var %s should not Equal unrelated type Bool", v)
	}

	other := s.FreshVar()
	other.Bound = fern.Primitive("Int")

	if !v.Equal(other) {
		t.Errorf("two variables bound to equal types should themselves be Equal")
	}
}

func TestTypeCloneIsDeepAndIndependent(t *testing.T) {
	t.Parallel()

	s := fern.NewTypeSession()
	v := s.FreshVar()
	v.Bound = fern.Primitive("Int")

	orig := fern.App("List", v)

	clone := orig.Clone()

	if !orig.Equal(clone) {
		t.Fatalf("Clone() of %s produced unequal type %s", orig, clone)
	}

	clone.Args[0].Bound = fern.Primitive("Bool")

	if orig.Args[0].Bound.Name != "Int" {
		t.Errorf("mutating clone's Bound field mutated the original: got %s", orig.Args[0].Bound)
	}

	errOrig := fern.ErrorTypef("boom")
	errClone := errOrig.Clone()

	if errClone.Message != "boom" {
		t.Errorf("Clone() dropped KindError.Message: got %q", errClone.Message)
	}
}

func TestTypeCloneNil(t *testing.T) {
	t.Parallel()

	var tp *fern.Type

	if tp.Clone() != nil {
		t.Error("(*Type)(nil).Clone() should return nil")
	}
}

func TestTypeString(t *testing.T) {
	t.Parallel()

	s := fern.NewTypeSession()
	anon := s.FreshVar()
	named := s.FreshNamedVar("T")

	bound := s.FreshVar()
	bound.Bound = fern.Primitive("Int")

	tests := []struct {
		name string
		typ  *fern.Type
		want string
	}{
		{"primitive", fern.Primitive("Int"), "Int"},
		{"anonymous var", anon, "t1"},
		{"named var", named, "T"},
		{"bound var renders binding", bound, "Int"},
		{"nullary app", fern.App("Unit"), "Unit"},
		{"app with args", fern.App("List", fern.Primitive("Int")), "List<Int>"},
		{
			"func",
			fern.Func([]*fern.Type{fern.Primitive("Int"), fern.Primitive("Bool")}, fern.Primitive("Unit")),
			"(Int, Bool) -> Unit",
		},
		{"tuple", fern.Tuple(fern.Primitive("Int"), fern.Primitive("Bool")), "(Int, Bool)"},
		{"error sentinel", fern.ErrorType, "<error>"},
		{"error with message", fern.ErrorTypef("unbound name %q", "foo"), `<error: unbound name "foo">`},
		{"nil", (*fern.Type)(nil), "<nil>"},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeAssignableIsCurrentlyEquality(t *testing.T) {
	t.Parallel()

	a := fern.App("List", fern.Primitive("Int"))
	b := fern.App("List", fern.Primitive("Int"))
	c := fern.Primitive("Bool")

	if !a.Assignable(b) {
		t.Errorf("Assignable() should agree with Equal() for equal types")
	}

	if a.Assignable(c) {
		t.Errorf("Assignable() should agree with Equal() for unequal types")
	}

	if a.Assignable(b) != a.Equal(b) {
		t.Errorf("Assignable() diverges from Equal(): Assignable=%v Equal=%v", a.Assignable(b), a.Equal(b))
	}
}
