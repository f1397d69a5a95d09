// File: parser/expression.go
package parser

import (
	"github.com/dangerclosesec/cscm/compiler/ast"
	"github.com/dangerclosesec/cscm/compiler/lexer"
)

// ParseExpression parses one primary followed by any chain of binary
// operators.
func (p *Parser) ParseExpression() (ast.Expr, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseExpression(lhs, 0)
}

// parseExpression is precedence climbing: operators of equal precedence
// fold left, and a strictly tighter operator after the right operand pulls
// that operand into a subtree first.
func (p *Parser) parseExpression(lhs ast.Expr, minPrecedence int) (ast.Expr, error) {
	lookahead, err := p.tokens.Peek()
	if err != nil {
		return nil, err
	}

	for lookahead.IsBinaryOperator && lookahead.Precedence >= minPrecedence {
		op := lookahead
		if _, err := p.tokens.Next(); err != nil {
			return nil, err
		}

		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		if lookahead, err = p.tokens.Peek(); err != nil {
			return nil, err
		}
		for lookahead.IsBinaryOperator && lookahead.Precedence > op.Precedence {
			if rhs, err = p.parseExpression(rhs, op.Precedence+1); err != nil {
				return nil, err
			}
			if lookahead, err = p.tokens.Peek(); err != nil {
				return nil, err
			}
		}

		node, err := p.binaryOps.New()
		if err != nil {
			return nil, err
		}
		node.Op = op.Op
		node.Left = lhs
		node.Right = rhs
		lhs = node
	}

	return lhs, nil
}

// parsePrimary consumes exactly one literal or identifier
func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok, err := p.tokens.Next()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case lexer.IntLit:
		node, err := p.numbers.New()
		if err != nil {
			return nil, err
		}
		node.Value = tok.Int
		return node, nil
	case lexer.DQString:
		node, err := p.strings.New()
		if err != nil {
			return nil, err
		}
		node.Value = tok.Text
		return node, nil
	case lexer.Ident:
		node, err := p.identifiers.New()
		if err != nil {
			return nil, err
		}
		node.Name = tok.Text
		return node, nil
	case lexer.EOF:
		return nil, &Error{Kind: UnexpectedEOF, Found: tok.Kind, Pos: tok.Pos}
	default:
		return nil, &Error{Kind: UnparsablePrimary, Found: tok.Kind, Pos: tok.Pos}
	}
}
