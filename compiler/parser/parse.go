// File: parser/parse.go
package parser

import (
	"fmt"
	"os"

	"github.com/dangerclosesec/cscm/compiler/arena"
	"github.com/dangerclosesec/cscm/compiler/ast"
	"github.com/dangerclosesec/cscm/compiler/lexer"
)

// Parse parses a complete source file: exactly one function and nothing
// after it.
func Parse(src []byte, a *arena.Arena) (*ast.Function, error) {
	p := NewParser(lexer.NewLexer(src), a)

	fn, err := p.ParseFunction()
	if err != nil {
		return nil, err
	}
	if err := p.ExpectEOF(); err != nil {
		return nil, err
	}
	return fn, nil
}

// ParseFile parses a source file from disk
func ParseFile(filePath string, a *arena.Arena) (*ast.Function, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filePath, err)
	}

	fn, err := Parse(content, a)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", filePath, err)
	}
	return fn, nil
}

// Tokens classifies src up to and including the EOF token
func Tokens(src []byte, a *arena.Arena) ([]TokenInfo, error) {
	c := NewClassifier(lexer.NewLexer(src), a)

	var tokens []TokenInfo
	for {
		tok, err := c.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.IsEOF() || tok.Kind == lexer.Illegal {
			return tokens, nil
		}
	}
}
