// File: parser/parser.go
package parser

import (
	"github.com/dangerclosesec/cscm/compiler/arena"
	"github.com/dangerclosesec/cscm/compiler/ast"
	"github.com/dangerclosesec/cscm/compiler/lexer"
)

// keywordReturn starts a return statement
const keywordReturn = "return"

// Parser builds an AST from a token source. All nodes come from the arena
// passed to NewParser and live as long as it does.
type Parser struct {
	tokens *Classifier

	binaryOps   *arena.Slab[ast.BinaryOp]
	numbers     *arena.Slab[ast.NumberLiteral]
	strings     *arena.Slab[ast.StringLiteral]
	identifiers *arena.Slab[ast.Identifier]
	returns     *arena.Slab[ast.Return]
	calls       *arena.Slab[ast.FunctionCall]
	assignments *arena.Slab[ast.Assignment]
	functions   *arena.Slab[ast.Function]
}

// NewParser creates a new Parser
func NewParser(src lexer.Source, a *arena.Arena) *Parser {
	return &Parser{
		tokens:      NewClassifier(src, a),
		binaryOps:   arena.NewSlab[ast.BinaryOp](a),
		numbers:     arena.NewSlab[ast.NumberLiteral](a),
		strings:     arena.NewSlab[ast.StringLiteral](a),
		identifiers: arena.NewSlab[ast.Identifier](a),
		returns:     arena.NewSlab[ast.Return](a),
		calls:       arena.NewSlab[ast.FunctionCall](a),
		assignments: arena.NewSlab[ast.Assignment](a),
		functions:   arena.NewSlab[ast.Function](a),
	}
}

// expect consumes the next token and checks its kind
func (p *Parser) expect(kind lexer.Kind) (TokenInfo, error) {
	tok, err := p.tokens.Next()
	if err != nil {
		return tok, err
	}
	if tok.Kind != kind {
		return tok, unexpected(kind, tok)
	}
	return tok, nil
}

// peekIs reports whether the next token is of the given kind
func (p *Parser) peekIs(kind lexer.Kind) (bool, error) {
	tok, err := p.tokens.Peek()
	if err != nil {
		return false, err
	}
	return tok.Kind == kind, nil
}

// Peek returns the next classified token without consuming it
func (p *Parser) Peek() (TokenInfo, error) {
	return p.tokens.Peek()
}

// Next consumes the next classified token
func (p *Parser) Next() (TokenInfo, error) {
	return p.tokens.Next()
}

// ExpectEOF fails unless the token stream is exhausted
func (p *Parser) ExpectEOF() error {
	_, err := p.expect(lexer.EOF)
	return err
}
