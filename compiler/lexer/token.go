// File: lexer/token.go
package lexer

import "fmt"

// Kind identifies a token. Values 0..255 are single-byte tokens whose kind
// is the byte itself (';', '(', '+', ...); named kinds start above that.
type Kind int

// Named token kinds
const (
	EOF Kind = 256 + iota
	Illegal

	// Identifiers and literals
	Ident
	IntLit
	FloatLit
	DQString // "..."
	SQString // '...' longer than one character
	CharLit  // 'c'

	// Multi-character operators
	Eq         // ==
	NotEq      // !=
	LessEq     // <=
	GreaterEq  // >=
	AndAnd     // &&
	OrOr       // ||
	Shl        // <<
	Shr        // >>
	PlusPlus   // ++
	MinusMinus // --
	Arrow      // ->
	AndEq      // &=
	OrEq       // |=
	XorEq      // ^=
	PlusEq     // +=
	MinusEq    // -=
	MulEq      // *=
	DivEq      // /=
	ModEq      // %=
	ShlEq      // <<=
	ShrEq      // >>=
	EqArrow    // =>

	lastKind
)

var kindNames = map[Kind]string{
	EOF:        "EOF",
	Illegal:    "ILLEGAL",
	Ident:      "identifier",
	IntLit:     "integer literal",
	FloatLit:   "float literal",
	DQString:   "string literal",
	SQString:   "single-quoted string",
	CharLit:    "character literal",
	Eq:         "'=='",
	NotEq:      "'!='",
	LessEq:     "'<='",
	GreaterEq:  "'>='",
	AndAnd:     "'&&'",
	OrOr:       "'||'",
	Shl:        "'<<'",
	Shr:        "'>>'",
	PlusPlus:   "'++'",
	MinusMinus: "'--'",
	Arrow:      "'->'",
	AndEq:      "'&='",
	OrEq:       "'|='",
	XorEq:      "'^='",
	PlusEq:     "'+='",
	MinusEq:    "'-='",
	MulEq:      "'*='",
	DivEq:      "'/='",
	ModEq:      "'%='",
	ShlEq:      "'<<='",
	ShrEq:      "'>>='",
	EqArrow:    "'=>'",
}

// Valid reports whether k is a single byte or one of the named kinds.
func (k Kind) Valid() bool {
	return (k >= 0 && k < 256) || (k >= EOF && k < lastKind)
}

func (k Kind) String() string {
	if k >= 0 && k < 256 {
		return fmt.Sprintf("'%c'", rune(k))
	}
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("<unknown token %d>", int(k))
}

// Location is a 1-based source position.
type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Token is one raw lexical unit. Text is only valid until the next call to
// Next on the Source that produced it.
type Token struct {
	Kind Kind
	Text string // identifier text or decoded string literal
	Int  int64  // decoded integer or character value
	Pos  Location
}

// Source is a pull-based token stream with position reporting.
type Source interface {
	// Next scans and returns the next token; at end of input it keeps
	// returning a token of kind EOF.
	Next() Token
	// Location reports where the most recently returned token started.
	Location() Location
}
