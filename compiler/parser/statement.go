// File: parser/statement.go
package parser

import (
	"github.com/dangerclosesec/cscm/compiler/ast"
	"github.com/dangerclosesec/cscm/compiler/lexer"
)

// ParseFunction parses `TYPE NAME ( ... ) { STATEMENT* }`. Parameters are
// skipped without being modelled.
func (p *Parser) ParseFunction() (*ast.Function, error) {
	returnType, err := p.expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect('('); err != nil {
		return nil, err
	}

	// Consume any tokens until the closing parenthesis
	for {
		tok, err := p.tokens.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == ')' {
			break
		}
		if tok.IsEOF() {
			return nil, unexpected(')', tok)
		}
	}

	if _, err := p.expect('{'); err != nil {
		return nil, err
	}

	var statements []ast.Statement
	for {
		tok, err := p.tokens.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == '}' {
			break
		}
		if tok.IsEOF() {
			return nil, unexpected('}', tok)
		}

		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	if _, err := p.expect('}'); err != nil {
		return nil, err
	}

	fn, err := p.functions.New()
	if err != nil {
		return nil, err
	}
	fn.ReturnType = returnType.Text
	fn.Name = name.Text
	fn.Statements = statements
	return fn, nil
}

// ParseStatement parses a return, call or assignment statement. The token
// after the leading identifier decides which.
func (p *Parser) ParseStatement() (ast.Statement, error) {
	id, err := p.expect(lexer.Ident)
	if err != nil {
		return nil, err
	}

	if id.Text == keywordReturn {
		return p.parseReturn()
	}

	isCall, err := p.peekIs('(')
	if err != nil {
		return nil, err
	}
	if isCall {
		return p.parseCall(id)
	}
	return p.parseAssignment(id)
}

// parseReturn parses the rest of `return EXPR ;`
func (p *Parser) parseReturn() (ast.Statement, error) {
	value, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(';'); err != nil {
		return nil, err
	}

	stmt, err := p.returns.New()
	if err != nil {
		return nil, err
	}
	stmt.Value = value
	return stmt, nil
}

// parseCall parses the rest of `NAME ( EXPR ) ;`
func (p *Parser) parseCall(name TokenInfo) (ast.Statement, error) {
	if _, err := p.expect('('); err != nil {
		return nil, err
	}
	arg, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(')'); err != nil {
		return nil, err
	}
	if _, err := p.expect(';'); err != nil {
		return nil, err
	}

	stmt, err := p.calls.New()
	if err != nil {
		return nil, err
	}
	stmt.Name = name.Text
	stmt.Arg = arg
	return stmt, nil
}

// parseAssignment parses the rest of `NAME = EXPR ;`. A declaration-style
// `TYPE NAME = EXPR ;` is also accepted; the type name is dropped.
func (p *Parser) parseAssignment(first TokenInfo) (ast.Statement, error) {
	target := first

	declared, err := p.peekIs(lexer.Ident)
	if err != nil {
		return nil, err
	}
	if declared {
		if target, err = p.tokens.Next(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect('='); err != nil {
		return nil, err
	}
	value, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(';'); err != nil {
		return nil, err
	}

	stmt, err := p.assignments.New()
	if err != nil {
		return nil, err
	}
	stmt.Name = target.Text
	stmt.Value = value
	return stmt, nil
}
