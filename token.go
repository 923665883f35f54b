package fern

import "fmt"

// SourceLoc is the position of a token or AST node in its source file.
// Line and Column are 1-indexed; Column counts bytes, not grapheme clusters.
type SourceLoc struct {
	Filename string
	Line     int
	Column   int
}

func (loc SourceLoc) String() string {
	return fmt.Sprintf("%s:%d:%d", loc.Filename, loc.Line, loc.Column)
}

// TokenKind is the closed enumeration of token kinds the lexer produces.
type TokenKind int

// Token kinds, grouped as spec.md §3 groups them: literals, identifiers and
// keywords, punctuation, operators, and layout.
const (
	// Literals.
	TokInt TokenKind = iota
	TokFloat
	TokString      // complete string literal
	TokStringBegin // first segment of an interpolation
	TokStringMid   // between two interpolations
	TokStringEnd   // final segment
	TokTrue
	TokFalse

	// Identifier.
	TokIdent

	// Keywords.
	TokAs
	TokAnd
	TokAfter
	TokDefer
	TokDerive
	TokDo
	TokElse
	TokBreak
	TokContinue
	TokFn
	TokFor
	TokIf
	TokImpl
	TokImport
	TokIn
	TokLet
	TokLoop
	TokMatch
	TokModule
	TokNot
	TokNewtype
	TokOr
	TokPub
	TokReceive
	TokReturn
	TokSend
	TokSpawn
	TokTrait
	TokType
	TokUnless
	TokUnderscore // bare `_`
	TokWhere
	TokWhile
	TokWith

	// Punctuation.
	TokLParen
	TokRParen
	TokLBracket
	TokRBracket
	TokLBrace
	TokRBrace
	TokComma
	TokColon
	TokDot
	TokAt
	TokQuestion

	// Operators.
	TokPlus
	TokMinus
	TokStar
	TokSlash
	TokPercent
	TokStarStar
	TokLt
	TokLtEq
	TokGt
	TokGtEq
	TokEqEq
	TokBangEq
	TokEq
	TokFatArrow // =>
	TokArrow    // ->
	TokLArrow   // <-
	TokPipe     // |
	TokPipeGt   // |>
	TokDotDot   // ..
	TokDotDotEq // ..=

	// Layout.
	TokNewline
	TokIndent
	TokDedent
	TokEOF
	TokError
)

var tokenKindNames = map[TokenKind]string{
	TokInt: "int", TokFloat: "float", TokString: "string",
	TokStringBegin: "string-begin", TokStringMid: "string-mid", TokStringEnd: "string-end",
	TokTrue: "true", TokFalse: "false", TokIdent: "ident",
	TokAs: "as", TokAnd: "and", TokAfter: "after", TokDefer: "defer", TokDerive: "derive",
	TokDo: "do", TokElse: "else", TokBreak: "break", TokContinue: "continue",
	TokFn: "fn", TokFor: "for", TokIf: "if", TokImpl: "impl", TokImport: "import",
	TokIn: "in", TokLet: "let", TokLoop: "loop", TokMatch: "match", TokModule: "module", TokNot: "not",
	TokNewtype: "newtype", TokOr: "or", TokPub: "pub", TokReceive: "receive",
	TokReturn: "return", TokSend: "send", TokSpawn: "spawn", TokTrait: "trait",
	TokType: "type", TokUnless: "unless", TokUnderscore: "_", TokWhere: "where", TokWhile: "while", TokWith: "with",
	TokLParen: "(", TokRParen: ")", TokLBracket: "[", TokRBracket: "]",
	TokLBrace: "{", TokRBrace: "}", TokComma: ",", TokColon: ":", TokDot: ".",
	TokAt: "@", TokQuestion: "?",
	TokPlus: "+", TokMinus: "-", TokStar: "*", TokSlash: "/", TokPercent: "%",
	TokStarStar: "**", TokLt: "<", TokLtEq: "<=", TokGt: ">", TokGtEq: ">=",
	TokEqEq: "==", TokBangEq: "!=", TokEq: "=", TokFatArrow: "=>", TokArrow: "->",
	TokLArrow: "<-", TokPipe: "|", TokPipeGt: "|>", TokDotDot: "..", TokDotDotEq: "..=",
	TokNewline: "NEWLINE", TokIndent: "INDENT", TokDedent: "DEDENT", TokEOF: "EOF", TokError: "ERROR",
}

func (k TokenKind) String() string {
	if s, ok := tokenKindNames[k]; ok {
		return s
	}

	return "unknown"
}

// keywords maps reserved-word lexemes to their keyword token kind. Looked up
// once an identifier lexeme has been scanned.
var keywords = map[string]TokenKind{
	"as": TokAs, "and": TokAnd, "after": TokAfter, "defer": TokDefer, "derive": TokDerive,
	"do": TokDo, "else": TokElse, "break": TokBreak, "continue": TokContinue,
	"false": TokFalse, "fn": TokFn, "for": TokFor, "if": TokIf, "impl": TokImpl,
	"import": TokImport, "in": TokIn, "let": TokLet, "loop": TokLoop, "match": TokMatch, "module": TokModule,
	"not": TokNot, "newtype": TokNewtype, "or": TokOr, "pub": TokPub, "receive": TokReceive,
	"return": TokReturn, "send": TokSend, "spawn": TokSpawn, "trait": TokTrait,
	"true": TokTrue, "type": TokType, "unless": TokUnless, "where": TokWhere, "while": TokWhile, "with": TokWith,
}

// Token is a single lexeme: its kind, its (arena-owned, escape-processed for
// strings) text, and its source location.
type Token struct {
	Kind TokenKind
	Text string
	Loc  SourceLoc
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Text, t.Loc)
}

// IsLayout reports whether t is a synthetic layout token (NEWLINE/INDENT/DEDENT).
func (t Token) IsLayout() bool {
	return t.Kind == TokNewline || t.Kind == TokIndent || t.Kind == TokDedent
}
