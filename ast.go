package fern

import "github.com/fernlang/fern/arena"

// Expr is the interface every expression AST node implements. Callers switch
// on the concrete type (there is no visitor API, per spec.md §4.3); nodes are
// built bottom-up through the New* constructors below and are immutable
// thereafter.
type Expr interface {
	Loc() SourceLoc
	exprNode()
}

// Stmt is the interface every statement AST node implements.
type Stmt interface {
	Loc() SourceLoc
	stmtNode()
}

// Pattern is the interface every pattern AST node implements.
type Pattern interface {
	Loc() SourceLoc
	patternNode()
}

// TypeAnn is the interface every parser-level type annotation implements.
// This is distinct from the post-inference Type IR in types.go: the parser
// only ever produces TypeAnn values; Type is the checker's output.
type TypeAnn interface {
	Loc() SourceLoc
	typeAnnNode()
}

type exprBase struct{ loc SourceLoc }

func (e exprBase) Loc() SourceLoc { return e.loc }
func (exprBase) exprNode()        {}

type stmtBase struct{ loc SourceLoc }

func (s stmtBase) Loc() SourceLoc { return s.loc }
func (stmtBase) stmtNode()        {}

type patternBase struct{ loc SourceLoc }

func (p patternBase) Loc() SourceLoc { return p.loc }
func (patternBase) patternNode()     {}

type typeAnnBase struct{ loc SourceLoc }

func (t typeAnnBase) Loc() SourceLoc { return t.loc }
func (typeAnnBase) typeAnnNode()     {}

// =============================================================================
// Operators
// =============================================================================

// BinaryOp is the closed set of binary operators spec.md §4.2's precedence
// table defines (range gets its own RangeExpr node; this covers pipe and the
// arithmetic/comparison/logical operators).
type BinaryOp int

const (
	OpOr BinaryOp = iota
	OpAnd
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpIn
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpPipe // |>
)

// UnaryOp is the closed set of unary prefix operators.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpNot
)

// =============================================================================
// Literals and primary expressions
// =============================================================================

// IntLit is an integer literal. Value is parsed from Text at construction
// time (decimal, hex, octal, or binary, with `_` separators stripped); the
// front end does no range checking, that's the checker's concern.
type IntLit struct {
	exprBase

	Text  string
	Value int64
}

// FloatLit is a decimal floating-point literal.
type FloatLit struct {
	exprBase

	Text  string
	Value float64
}

// StringLit is a complete (non-interpolated) string literal; Value is the
// escape-processed content.
type StringLit struct {
	exprBase

	Value string
}

// InterpPart is one segment of an InterpStringLit: either a literal text run
// or an embedded expression.
type InterpPart struct {
	Text string // valid when Expr == nil
	Expr Expr   // valid when non-nil
}

// InterpStringLit is a string literal containing one or more `{expr}`
// interpolations.
type InterpStringLit struct {
	exprBase

	Parts []InterpPart
}

// BoolLit is `true` or `false`.
type BoolLit struct {
	exprBase

	Value bool
}

// Ident is a bare identifier reference.
type Ident struct {
	exprBase

	Name string
}

// Binary is a binary operator application.
type Binary struct {
	exprBase

	Op          BinaryOp
	Left, Right Expr
}

// Unary is a unary prefix operator application.
type Unary struct {
	exprBase

	Op      UnaryOp
	Operand Expr
}

// Arg is one call argument, optionally labelled (`f(x: 1)`).
type Arg struct {
	Label string // empty when positional
	Value Expr
}

// Call is a function call with an ordered, possibly-labelled argument list.
type Call struct {
	exprBase

	Callee Expr
	Args   []Arg
}

// If is a conditional expression with an optional else branch.
type If struct {
	exprBase

	Cond Expr
	Then Expr
	Else Expr // nil if absent
}

// MatchArm is one `pattern [if guard] => body` arm, shared by match, with,
// and receive expressions.
type MatchArm struct {
	Pattern Pattern
	Guard   Expr // nil if absent
	Body    Expr
}

// Match is a pattern match over an optional scrutinee value.
type Match struct {
	exprBase

	Value Expr // nil for a valueless match that matches against control flow
	Arms  []MatchArm
}

// Block is a brace-delimited sequence of statements with an optional final
// expression value. A block with no final expression evaluates to unit.
type Block struct {
	exprBase

	Stmts []Stmt
	Final Expr // nil if the block has no trailing value expression
}

// ListLit is a `[e1, e2, ...]` list literal.
type ListLit struct {
	exprBase

	Elems []Expr
}

// TupleLit is a `(e1, e2, ...)` tuple literal (two or more elements, or one
// element with a trailing comma).
type TupleLit struct {
	exprBase

	Elems []Expr
}

// MapEntry is one `key: value` pair of a MapLit.
type MapEntry struct {
	Key, Value Expr
}

// MapLit is a `%{k: v, ...}` map literal.
type MapLit struct {
	exprBase

	Entries []MapEntry
}

// FieldUpdate is one `field: value` pair of a RecordUpdate.
type FieldUpdate struct {
	Field string
	Value Expr
}

// RecordUpdate is a `%{base | field: value, ...}` record-update expression.
type RecordUpdate struct {
	exprBase

	Base   Expr
	Fields []FieldUpdate
}

// ListComprehension is a `[body for var in iterable if cond]` expression.
type ListComprehension struct {
	exprBase

	Body     Expr
	VarName  string
	Iterable Expr
	Cond     Expr // nil if absent
}

// Lambda is an anonymous function literal.
type Lambda struct {
	exprBase

	Params []string
	Body   Expr
}

// DotAccess is `object.field`; Field may be a numeric lexeme for tuple
// indexing (`t.0`).
type DotAccess struct {
	exprBase

	Object Expr
	Field  string
}

// IndexExpr is `object[index]`.
type IndexExpr struct {
	exprBase

	Object Expr
	Index  Expr
}

// RangeExpr is `start..end` or `start..=end`.
type RangeExpr struct {
	exprBase

	Start, End Expr
	Inclusive  bool
}

// Bind is `name <- expr`, a first-class expression usable inside `with`
// bindings and block statement sequences; the checker interprets it
// monadically over Result-shaped types (spec.md's GLOSSARY).
type Bind struct {
	exprBase

	Name  string
	Value Expr
}

// WithBinding is one `name <- value` or `name = value` clause of a With
// expression.
type WithBinding struct {
	Name  string
	Value Expr
}

// With is a `with name <- expr, ...: body [else arms]` expression.
type With struct {
	exprBase

	Bindings []WithBinding
	Body     Expr
	ElseArms []MatchArm // nil if absent
}

// ForExpr is a `for var in iterable: body` loop.
type ForExpr struct {
	exprBase

	Var      string
	Iterable Expr
	Body     Expr
}

// WhileExpr is a `while cond: body` loop.
type WhileExpr struct {
	exprBase

	Cond Expr
	Body Expr
}

// LoopExpr is an unconditional `loop: body`.
type LoopExpr struct {
	exprBase

	Body Expr
}

// Spawn is `spawn(expr)`, starting an actor running expr.
type Spawn struct {
	exprBase

	Call Expr
}

// Send is `send(pid, msg)`.
type Send struct {
	exprBase

	Pid, Msg Expr
}

// AfterClause is the optional `after { timeout, body }` of a Receive.
type AfterClause struct {
	Timeout Expr
	Body    Expr
}

// Receive is a `receive: arms... [after ...]` actor mailbox read.
type Receive struct {
	exprBase

	Arms  []MatchArm
	After *AfterClause // nil if absent
}

// Try is the postfix `expr?` operator: evaluates to the success value of a
// Result-shaped expression, or propagates the failure to the enclosing
// function (spec.md's GLOSSARY).
type Try struct {
	exprBase

	Value Expr
}

// =============================================================================
// Statements
// =============================================================================

// LetStmt is `let pattern [: type] = value [else expr]`.
type LetStmt struct {
	stmtBase

	Pattern Pattern
	Type    TypeAnn // nil if no annotation
	Value   Expr
	Else    Expr // nil if absent
}

// Param is one typed parameter of a single-clause function.
type Param struct {
	Name string
	Type TypeAnn
}

// FnClause is one clause of a multi-clause function.
type FnClause struct {
	Patterns   []Pattern
	ReturnType TypeAnn // nil if absent
	Body       Expr
}

// FnStmt is a function declaration. It is either the single-clause shape
// (Params non-nil, Clauses nil) or the multi-clause shape (Clauses non-nil,
// Params nil); spec.md §3 requires these never coexist on one node.
type FnStmt struct {
	stmtBase

	Name       string
	IsPublic   bool
	Params     []Param  // single-clause shape
	ReturnType TypeAnn  // single-clause shape; nil if absent
	Where      []Expr   // single-clause shape; optional where-clauses
	Body       Expr     // single-clause shape
	Clauses    []FnClause // multi-clause shape
}

// IsMultiClause reports whether this is the multi-clause shape.
func (f *FnStmt) IsMultiClause() bool { return f.Clauses != nil }

// ReturnStmt is `return [value] [if cond | unless cond]`.
type ReturnStmt struct {
	stmtBase

	Value Expr // nil if bare `return`
	Cond  Expr // nil if no postfix guard; already normalised (unless wraps cond in a Not)
}

// DeferStmt is `defer expr`.
type DeferStmt struct {
	stmtBase

	Value Expr
}

// BreakStmt is `break [value]`.
type BreakStmt struct {
	stmtBase

	Value Expr // nil if bare `break`
}

// ContinueStmt is `continue`.
type ContinueStmt struct {
	stmtBase
}

// ExprStmt wraps an expression used in statement position.
type ExprStmt struct {
	stmtBase

	Value Expr
}

// RecordField is one field of a record type definition.
type RecordField struct {
	Name string
	Type TypeAnn
}

// SumVariant is one variant of a sum type definition.
type SumVariant struct {
	Name   string
	Fields []TypeAnn
}

// TypeDeclStmt is a `type Name = ...` declaration, either a record (Fields
// non-nil) or a sum type (Variants non-nil).
type TypeDeclStmt struct {
	stmtBase

	Name       string
	IsPublic   bool
	TypeParams []string
	Fields     []RecordField // record shape
	Variants   []SumVariant  // sum shape
	Derive     []string
}

// TraitStmt is a `trait Name<T> [where Super]: methods...` declaration.
type TraitStmt struct {
	stmtBase

	Name        string
	TypeParams  []string
	SuperTraits []string
	Methods     []*FnStmt
}

// ImplStmt is an `impl Trait for Type: methods...` declaration.
type ImplStmt struct {
	stmtBase

	TraitName string
	TypeArgs  []TypeAnn
	Methods   []*FnStmt
}

// NewtypeStmt is a `newtype Name = Ctor(Inner)` declaration.
type NewtypeStmt struct {
	stmtBase

	Name     string
	CtorName string
	Inner    TypeAnn
	IsPublic bool
}

// ModuleStmt is a `module a.b.c` declaration.
type ModuleStmt struct {
	stmtBase

	Path []string
}

// ImportStmt is an `import a.b.c [(x, y)] [as alias]` declaration.
type ImportStmt struct {
	stmtBase

	Path  []string
	Items []string // nil for a plain (non-selective) import
	Alias string   // empty if absent
}

// =============================================================================
// Patterns
// =============================================================================

// WildcardPattern is `_`.
type WildcardPattern struct{ patternBase }

// IdentPattern binds the matched value to Name.
type IdentPattern struct {
	patternBase

	Name string
}

// LiteralPattern matches a literal value.
type LiteralPattern struct {
	patternBase

	Value Expr
}

// TuplePattern matches an ordered sequence of sub-patterns; also used for
// list patterns.
type TuplePattern struct {
	patternBase

	Elems []Pattern
}

// ConstructorPattern matches a named constructor applied to argument
// patterns; a nullary constructor (e.g. `None`) has an empty Args slice.
type ConstructorPattern struct {
	patternBase

	Name string
	Args []Pattern
}

// RestPattern is `..name` or `.._` inside a tuple/list pattern.
type RestPattern struct {
	patternBase

	Name string // "_" for the anonymous form
}

// =============================================================================
// Type annotations (parser level)
// =============================================================================

// NamedType is a named type reference with optional type arguments
// (`Option<Int>`, `String`).
type NamedType struct {
	typeAnnBase

	Name string
	Args []TypeAnn
}

// FuncTypeAnn is a function type annotation (`(Int, Int) -> Int`).
type FuncTypeAnn struct {
	typeAnnBase

	Params []TypeAnn
	Result TypeAnn
}

// TupleTypeAnn is a tuple type annotation (`(Int, String)`).
type TupleTypeAnn struct {
	typeAnnBase

	Elems []TypeAnn
}

// =============================================================================
// Constructors
//
// Each constructor allocates its node from the arena and returns the typed
// pointer; callers never mutate a node after construction.
// =============================================================================

func NewIntLit(a *arena.Arena, loc SourceLoc, text string, value int64) *IntLit {
	n := arena.Alloc[IntLit](a)
	*n = IntLit{exprBase{loc}, text, value}

	return n
}

func NewFloatLit(a *arena.Arena, loc SourceLoc, text string, value float64) *FloatLit {
	n := arena.Alloc[FloatLit](a)
	*n = FloatLit{exprBase{loc}, text, value}

	return n
}

func NewStringLit(a *arena.Arena, loc SourceLoc, value string) *StringLit {
	n := arena.Alloc[StringLit](a)
	*n = StringLit{exprBase{loc}, value}

	return n
}

func NewInterpStringLit(a *arena.Arena, loc SourceLoc, parts []InterpPart) *InterpStringLit {
	n := arena.Alloc[InterpStringLit](a)
	*n = InterpStringLit{exprBase{loc}, parts}

	return n
}

func NewBoolLit(a *arena.Arena, loc SourceLoc, value bool) *BoolLit {
	n := arena.Alloc[BoolLit](a)
	*n = BoolLit{exprBase{loc}, value}

	return n
}

func NewIdent(a *arena.Arena, loc SourceLoc, name string) *Ident {
	n := arena.Alloc[Ident](a)
	*n = Ident{exprBase{loc}, name}

	return n
}

func NewBinary(a *arena.Arena, loc SourceLoc, op BinaryOp, left, right Expr) *Binary {
	n := arena.Alloc[Binary](a)
	*n = Binary{exprBase{loc}, op, left, right}

	return n
}

func NewUnary(a *arena.Arena, loc SourceLoc, op UnaryOp, operand Expr) *Unary {
	n := arena.Alloc[Unary](a)
	*n = Unary{exprBase{loc}, op, operand}

	return n
}

func NewCall(a *arena.Arena, loc SourceLoc, callee Expr, args []Arg) *Call {
	n := arena.Alloc[Call](a)
	*n = Call{exprBase{loc}, callee, args}

	return n
}

func NewIf(a *arena.Arena, loc SourceLoc, cond, then, els Expr) *If {
	n := arena.Alloc[If](a)
	*n = If{exprBase{loc}, cond, then, els}

	return n
}

func NewMatch(a *arena.Arena, loc SourceLoc, value Expr, arms []MatchArm) *Match {
	n := arena.Alloc[Match](a)
	*n = Match{exprBase{loc}, value, arms}

	return n
}

func NewBlock(a *arena.Arena, loc SourceLoc, stmts []Stmt, final Expr) *Block {
	n := arena.Alloc[Block](a)
	*n = Block{exprBase{loc}, stmts, final}

	return n
}

func NewListLit(a *arena.Arena, loc SourceLoc, elems []Expr) *ListLit {
	n := arena.Alloc[ListLit](a)
	*n = ListLit{exprBase{loc}, elems}

	return n
}

func NewTupleLit(a *arena.Arena, loc SourceLoc, elems []Expr) *TupleLit {
	n := arena.Alloc[TupleLit](a)
	*n = TupleLit{exprBase{loc}, elems}

	return n
}

func NewMapLit(a *arena.Arena, loc SourceLoc, entries []MapEntry) *MapLit {
	n := arena.Alloc[MapLit](a)
	*n = MapLit{exprBase{loc}, entries}

	return n
}

func NewRecordUpdate(a *arena.Arena, loc SourceLoc, base Expr, fields []FieldUpdate) *RecordUpdate {
	n := arena.Alloc[RecordUpdate](a)
	*n = RecordUpdate{exprBase{loc}, base, fields}

	return n
}

func NewListComprehension(a *arena.Arena, loc SourceLoc, body Expr, varName string, iterable, cond Expr) *ListComprehension {
	n := arena.Alloc[ListComprehension](a)
	*n = ListComprehension{exprBase{loc}, body, varName, iterable, cond}

	return n
}

func NewLambda(a *arena.Arena, loc SourceLoc, params []string, body Expr) *Lambda {
	n := arena.Alloc[Lambda](a)
	*n = Lambda{exprBase{loc}, params, body}

	return n
}

func NewDotAccess(a *arena.Arena, loc SourceLoc, object Expr, field string) *DotAccess {
	n := arena.Alloc[DotAccess](a)
	*n = DotAccess{exprBase{loc}, object, field}

	return n
}

func NewIndexExpr(a *arena.Arena, loc SourceLoc, object, index Expr) *IndexExpr {
	n := arena.Alloc[IndexExpr](a)
	*n = IndexExpr{exprBase{loc}, object, index}

	return n
}

func NewRangeExpr(a *arena.Arena, loc SourceLoc, start, end Expr, inclusive bool) *RangeExpr {
	n := arena.Alloc[RangeExpr](a)
	*n = RangeExpr{exprBase{loc}, start, end, inclusive}

	return n
}

func NewBind(a *arena.Arena, loc SourceLoc, name string, value Expr) *Bind {
	n := arena.Alloc[Bind](a)
	*n = Bind{exprBase{loc}, name, value}

	return n
}

func NewWith(a *arena.Arena, loc SourceLoc, bindings []WithBinding, body Expr, elseArms []MatchArm) *With {
	n := arena.Alloc[With](a)
	*n = With{exprBase{loc}, bindings, body, elseArms}

	return n
}

func NewForExpr(a *arena.Arena, loc SourceLoc, v string, iterable, body Expr) *ForExpr {
	n := arena.Alloc[ForExpr](a)
	*n = ForExpr{exprBase{loc}, v, iterable, body}

	return n
}

func NewWhileExpr(a *arena.Arena, loc SourceLoc, cond, body Expr) *WhileExpr {
	n := arena.Alloc[WhileExpr](a)
	*n = WhileExpr{exprBase{loc}, cond, body}

	return n
}

func NewLoopExpr(a *arena.Arena, loc SourceLoc, body Expr) *LoopExpr {
	n := arena.Alloc[LoopExpr](a)
	*n = LoopExpr{exprBase{loc}, body}

	return n
}

func NewSpawn(a *arena.Arena, loc SourceLoc, call Expr) *Spawn {
	n := arena.Alloc[Spawn](a)
	*n = Spawn{exprBase{loc}, call}

	return n
}

func NewSend(a *arena.Arena, loc SourceLoc, pid, msg Expr) *Send {
	n := arena.Alloc[Send](a)
	*n = Send{exprBase{loc}, pid, msg}

	return n
}

func NewReceive(a *arena.Arena, loc SourceLoc, arms []MatchArm, after *AfterClause) *Receive {
	n := arena.Alloc[Receive](a)
	*n = Receive{exprBase{loc}, arms, after}

	return n
}

func NewTry(a *arena.Arena, loc SourceLoc, value Expr) *Try {
	n := arena.Alloc[Try](a)
	*n = Try{exprBase{loc}, value}

	return n
}

func NewLetStmt(a *arena.Arena, loc SourceLoc, pattern Pattern, typ TypeAnn, value, els Expr) *LetStmt {
	n := arena.Alloc[LetStmt](a)
	*n = LetStmt{stmtBase{loc}, pattern, typ, value, els}

	return n
}

func NewFnStmtSingle(a *arena.Arena, loc SourceLoc, name string, isPublic bool, params []Param, ret TypeAnn, where []Expr, body Expr) *FnStmt {
	n := arena.Alloc[FnStmt](a)
	*n = FnStmt{stmtBase: stmtBase{loc}, Name: name, IsPublic: isPublic, Params: params, ReturnType: ret, Where: where, Body: body}

	return n
}

func NewFnStmtMulti(a *arena.Arena, loc SourceLoc, name string, isPublic bool, clauses []FnClause) *FnStmt {
	n := arena.Alloc[FnStmt](a)
	*n = FnStmt{stmtBase: stmtBase{loc}, Name: name, IsPublic: isPublic, Clauses: clauses}

	return n
}

func NewReturnStmt(a *arena.Arena, loc SourceLoc, value, cond Expr) *ReturnStmt {
	n := arena.Alloc[ReturnStmt](a)
	*n = ReturnStmt{stmtBase{loc}, value, cond}

	return n
}

func NewDeferStmt(a *arena.Arena, loc SourceLoc, value Expr) *DeferStmt {
	n := arena.Alloc[DeferStmt](a)
	*n = DeferStmt{stmtBase{loc}, value}

	return n
}

func NewBreakStmt(a *arena.Arena, loc SourceLoc, value Expr) *BreakStmt {
	n := arena.Alloc[BreakStmt](a)
	*n = BreakStmt{stmtBase{loc}, value}

	return n
}

func NewContinueStmt(a *arena.Arena, loc SourceLoc) *ContinueStmt {
	n := arena.Alloc[ContinueStmt](a)
	*n = ContinueStmt{stmtBase{loc}}

	return n
}

func NewExprStmt(a *arena.Arena, loc SourceLoc, value Expr) *ExprStmt {
	n := arena.Alloc[ExprStmt](a)
	*n = ExprStmt{stmtBase{loc}, value}

	return n
}

func NewTypeDeclStmt(a *arena.Arena, loc SourceLoc, name string, isPublic bool, typeParams []string, fields []RecordField, variants []SumVariant, derive []string) *TypeDeclStmt {
	n := arena.Alloc[TypeDeclStmt](a)
	*n = TypeDeclStmt{stmtBase{loc}, name, isPublic, typeParams, fields, variants, derive}

	return n
}

func NewTraitStmt(a *arena.Arena, loc SourceLoc, name string, typeParams, superTraits []string, methods []*FnStmt) *TraitStmt {
	n := arena.Alloc[TraitStmt](a)
	*n = TraitStmt{stmtBase{loc}, name, typeParams, superTraits, methods}

	return n
}

func NewImplStmt(a *arena.Arena, loc SourceLoc, traitName string, typeArgs []TypeAnn, methods []*FnStmt) *ImplStmt {
	n := arena.Alloc[ImplStmt](a)
	*n = ImplStmt{stmtBase{loc}, traitName, typeArgs, methods}

	return n
}

func NewNewtypeStmt(a *arena.Arena, loc SourceLoc, name, ctorName string, inner TypeAnn, isPublic bool) *NewtypeStmt {
	n := arena.Alloc[NewtypeStmt](a)
	*n = NewtypeStmt{stmtBase{loc}, name, ctorName, inner, isPublic}

	return n
}

func NewModuleStmt(a *arena.Arena, loc SourceLoc, path []string) *ModuleStmt {
	n := arena.Alloc[ModuleStmt](a)
	*n = ModuleStmt{stmtBase{loc}, path}

	return n
}

func NewImportStmt(a *arena.Arena, loc SourceLoc, path, items []string, alias string) *ImportStmt {
	n := arena.Alloc[ImportStmt](a)
	*n = ImportStmt{stmtBase{loc}, path, items, alias}

	return n
}

func NewWildcardPattern(a *arena.Arena, loc SourceLoc) *WildcardPattern {
	n := arena.Alloc[WildcardPattern](a)
	*n = WildcardPattern{patternBase{loc}}

	return n
}

func NewIdentPattern(a *arena.Arena, loc SourceLoc, name string) *IdentPattern {
	n := arena.Alloc[IdentPattern](a)
	*n = IdentPattern{patternBase{loc}, name}

	return n
}

func NewLiteralPattern(a *arena.Arena, loc SourceLoc, value Expr) *LiteralPattern {
	n := arena.Alloc[LiteralPattern](a)
	*n = LiteralPattern{patternBase{loc}, value}

	return n
}

func NewTuplePattern(a *arena.Arena, loc SourceLoc, elems []Pattern) *TuplePattern {
	n := arena.Alloc[TuplePattern](a)
	*n = TuplePattern{patternBase{loc}, elems}

	return n
}

func NewConstructorPattern(a *arena.Arena, loc SourceLoc, name string, args []Pattern) *ConstructorPattern {
	n := arena.Alloc[ConstructorPattern](a)
	*n = ConstructorPattern{patternBase{loc}, name, args}

	return n
}

func NewRestPattern(a *arena.Arena, loc SourceLoc, name string) *RestPattern {
	n := arena.Alloc[RestPattern](a)
	*n = RestPattern{patternBase{loc}, name}

	return n
}

func NewNamedType(a *arena.Arena, loc SourceLoc, name string, args []TypeAnn) *NamedType {
	n := arena.Alloc[NamedType](a)
	*n = NamedType{typeAnnBase{loc}, name, args}

	return n
}

func NewFuncTypeAnn(a *arena.Arena, loc SourceLoc, params []TypeAnn, result TypeAnn) *FuncTypeAnn {
	n := arena.Alloc[FuncTypeAnn](a)
	*n = FuncTypeAnn{typeAnnBase{loc}, params, result}

	return n
}

func NewTupleTypeAnn(a *arena.Arena, loc SourceLoc, elems []TypeAnn) *TupleTypeAnn {
	n := arena.Alloc[TupleTypeAnn](a)
	*n = TupleTypeAnn{typeAnnBase{loc}, elems}

	return n
}
