// File: parser/token.go
package parser

import (
	"fmt"

	"github.com/dangerclosesec/cscm/compiler/arena"
	"github.com/dangerclosesec/cscm/compiler/lexer"
)

// precedences is the binary operator table. Higher binds tighter.
var precedences = map[lexer.Kind]int{
	'+': 1,
	'-': 1,
	'*': 2,
	'/': 2,
}

// TokenInfo is a raw token plus its operator classification
type TokenInfo struct {
	Kind             lexer.Kind
	Op               byte
	IsBinaryOperator bool
	Precedence       int

	Int  int64
	Text string // arena-owned copy for identifiers and string literals
	Pos  lexer.Location
}

// IsEOF reports whether the token marks end of input
func (t TokenInfo) IsEOF() bool {
	return t.Kind == lexer.EOF
}

func (t TokenInfo) String() string {
	switch {
	case t.IsBinaryOperator:
		return fmt.Sprintf("%s %s binary precedence=%d", t.Pos, t.Kind, t.Precedence)
	case t.Kind == lexer.Ident:
		return fmt.Sprintf("%s %s %s", t.Pos, t.Kind, t.Text)
	case t.Kind == lexer.DQString:
		return fmt.Sprintf("%s %s %q", t.Pos, t.Kind, t.Text)
	case t.Kind == lexer.IntLit:
		return fmt.Sprintf("%s %s %d", t.Pos, t.Kind, t.Int)
	default:
		return fmt.Sprintf("%s %s", t.Pos, t.Kind)
	}
}

// Classifier wraps a raw token source with one token of lookahead and
// operator precedence metadata.
type Classifier struct {
	src   lexer.Source
	arena *arena.Arena

	peeked  TokenInfo
	pending bool
}

// NewClassifier creates a new Classifier
func NewClassifier(src lexer.Source, a *arena.Arena) *Classifier {
	return &Classifier{src: src, arena: a}
}

// Peek returns the next token without consuming it
func (c *Classifier) Peek() (TokenInfo, error) {
	if c.pending {
		return c.peeked, nil
	}
	info, err := c.classify(c.src.Next())
	if err != nil {
		return TokenInfo{}, err
	}
	c.peeked = info
	c.pending = true
	return info, nil
}

// Next consumes and returns the next token
func (c *Classifier) Next() (TokenInfo, error) {
	info, err := c.Peek()
	if err != nil {
		return TokenInfo{}, err
	}
	c.pending = false
	return info, nil
}

// classify attaches operator metadata and copies text payloads into the arena
func (c *Classifier) classify(tok lexer.Token) (TokenInfo, error) {
	info := TokenInfo{Kind: tok.Kind, Int: tok.Int, Pos: tok.Pos}
	if !tok.Kind.Valid() {
		return info, &Error{Kind: UnknownToken, Found: tok.Kind, Pos: c.src.Location()}
	}

	if prec, ok := precedences[tok.Kind]; ok {
		info.IsBinaryOperator = true
		info.Precedence = prec
		info.Op = byte(tok.Kind)
		return info, nil
	}

	if tok.Kind == lexer.Ident || tok.Kind == lexer.DQString {
		text, err := c.arena.CopyString(tok.Text)
		if err != nil {
			return info, fmt.Errorf("copying %s at %s: %w", tok.Kind, tok.Pos, err)
		}
		info.Text = text
	}
	return info, nil
}
