package fern_test

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	fern "github.com/fernlang/fern"
	"github.com/fernlang/fern/arena"
)

// cmpIgnoreLoc drops SourceLoc from comparisons since positions differ by
// construction between a hand-built expected AST and a parsed one.
var cmpIgnoreLoc = cmpopts.IgnoreTypes(fern.SourceLoc{})

var cmpExportAll = cmp.Exporter(func(reflect.Type) bool { return true })

func parseExpr(t *testing.T, src string) fern.Expr {
	t.Helper()

	a := arena.New()
	t.Cleanup(a.Destroy)

	p := fern.NewParser(a, "test.fn", []byte(src))
	expr := p.ParseExpression()

	if p.HadError() {
		t.Fatalf("ParseExpression(%q) had errors: %v", src, p.Diagnostics())
	}

	return expr
}

func TestParserBinaryPrecedence(t *testing.T) {
	t.Parallel()

	// `*` binds tighter than `+`: 1 + 2 * 3 parses as 1 + (2 * 3).
	expr := parseExpr(t, "1 + 2 * 3")

	bin, ok := expr.(*fern.Binary)
	if !ok {
		t.Fatalf("top-level expr = %T, want *fern.Binary", expr)
	}

	if bin.Op != fern.OpAdd {
		t.Fatalf("top-level op = %v, want OpAdd", bin.Op)
	}

	rhs, ok := bin.Right.(*fern.Binary)
	if !ok {
		t.Fatalf("right-hand side = %T, want *fern.Binary", bin.Right)
	}

	if rhs.Op != fern.OpMul {
		t.Errorf("right-hand op = %v, want OpMul", rhs.Op)
	}
}

func TestParserPowerIsRightAssociative(t *testing.T) {
	t.Parallel()

	// 2 ** 3 ** 2 must parse as 2 ** (3 ** 2), not (2 ** 3) ** 2.
	expr := parseExpr(t, "2 ** 3 ** 2")

	bin, ok := expr.(*fern.Binary)
	if !ok || bin.Op != fern.OpPow {
		t.Fatalf("top-level expr = %#v, want OpPow Binary", expr)
	}

	rhs, ok := bin.Right.(*fern.Binary)
	if !ok || rhs.Op != fern.OpPow {
		t.Fatalf("right-hand side = %#v, want nested OpPow Binary", bin.Right)
	}

	left, ok := bin.Left.(*fern.IntLit)
	if !ok || left.Value != 2 {
		t.Errorf("left-hand side = %#v, want IntLit(2)", bin.Left)
	}
}

func TestParserIfElseExpression(t *testing.T) {
	t.Parallel()

	expr := parseExpr(t, "if true: 1 else: 2")

	ifExpr, ok := expr.(*fern.If)
	if !ok {
		t.Fatalf("expr = %T, want *fern.If", expr)
	}

	if ifExpr.Else == nil {
		t.Error("Else branch is nil, want non-nil")
	}
}

func TestParserCallWithLabelledArgs(t *testing.T) {
	t.Parallel()

	expr := parseExpr(t, `greet(name: "world")`)

	call, ok := expr.(*fern.Call)
	if !ok {
		t.Fatalf("expr = %T, want *fern.Call", expr)
	}

	if len(call.Args) != 1 {
		t.Fatalf("len(Args) = %d, want 1", len(call.Args))
	}

	if call.Args[0].Label != "name" {
		t.Errorf("Args[0].Label = %q, want %q", call.Args[0].Label, "name")
	}
}

func TestParserMultiClauseFunction(t *testing.T) {
	t.Parallel()

	src := "fn fib(0) -> 0\nfn fib(1) -> 1\nfn fib(n) -> fib(n - 1) + fib(n - 2)\n"

	a := arena.New()
	defer a.Destroy()

	program, diags := fern.Parse(a, "test.fn", []byte(src))
	if len(diags) != 0 {
		t.Fatalf("Parse() diagnostics = %v, want none", diags)
	}

	if len(program) != 1 {
		t.Fatalf("len(program) = %d, want 1", len(program))
	}

	fn, ok := program[0].(*fern.FnStmt)
	if !ok {
		t.Fatalf("program[0] = %T, want *fern.FnStmt", program[0])
	}

	if !fn.IsMultiClause() {
		t.Fatal("IsMultiClause() = false, want true for a clause-per-line fn")
	}

	if len(fn.Clauses) != 3 {
		t.Errorf("len(Clauses) = %d, want 3", len(fn.Clauses))
	}
}

func TestParserRecordsDiagnosticsWithoutAborting(t *testing.T) {
	t.Parallel()

	// A malformed let followed by a well-formed one: the parser must record
	// the first error, recover, and still parse the second statement.
	src := "let = \nlet y = 2\n"

	a := arena.New()
	defer a.Destroy()

	program, diags := fern.Parse(a, "test.fn", []byte(src))

	if len(diags) == 0 {
		t.Fatal("expected at least one diagnostic for the malformed let")
	}

	found := false

	for _, stmt := range program {
		if let, ok := stmt.(*fern.LetStmt); ok {
			if ident, ok := let.Pattern.(*fern.IdentPattern); ok && ident.Name == "y" {
				found = true
			}
		}
	}

	if !found {
		t.Error("parser did not recover and parse the well-formed `let y = 2` after the error")
	}
}

func TestParserASTStableAcrossReparse(t *testing.T) {
	t.Parallel()

	src := "let x = 1 + 2\n"

	parseOnce := func() []fern.Stmt {
		a := arena.New()
		defer a.Destroy()

		program, diags := fern.Parse(a, "test.fn", []byte(src))
		if len(diags) != 0 {
			t.Fatalf("Parse() diagnostics = %v, want none", diags)
		}

		return program
	}

	first := parseOnce()
	second := parseOnce()

	if diff := cmp.Diff(first, second, cmpIgnoreLoc, cmpExportAll); diff != "" {
		t.Errorf("re-parsing identical source produced a different AST (-first +second):\n%s", diff)
	}
}
