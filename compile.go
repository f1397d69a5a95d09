// Package cscm compiles a one-function C subset into Scheme-style
// S-expressions.
package cscm

import (
	"fmt"
	"io"

	"github.com/dangerclosesec/cscm/compiler/arena"
	"github.com/dangerclosesec/cscm/compiler/ast"
	"github.com/dangerclosesec/cscm/compiler/codegen"
	"github.com/dangerclosesec/cscm/compiler/lexer"
	"github.com/dangerclosesec/cscm/compiler/parser"
)

// Result describes a successful compilation
type Result struct {
	Function  *ast.Function
	Program   string
	ArenaUsed int
}

// Compile parses src and writes the complete program to w. Nothing is
// written unless parsing succeeds.
func Compile(src []byte, w io.Writer, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	logger := cfg.Logger()

	a := arena.New(cfg.ArenaSize)
	fn, err := parser.Parse(src, a)
	if err != nil {
		logger.Debug("parse failed", "error", err, "arena_used", a.Used())
		return nil, err
	}
	logger.Debug("parsed function",
		"function", fn.Name,
		"return_type", fn.ReturnType,
		"statements", len(fn.Statements),
		"arena_used", a.Used(),
	)

	program := Program(fn, cfg)
	if _, err := io.WriteString(w, program); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}
	logger.Debug("wrote program", "function", fn.Name, "bytes", len(program))

	return &Result{Function: fn, Program: program, ArenaUsed: a.Used()}, nil
}

// Program wraps fn with the print alias prelude and a trailing call that
// prints the function's result.
func Program(fn *ast.Function, cfg *Config) string {
	var g codegen.Generator
	g.Function(fn)

	return fmt.Sprintf("(define %s %s)\n%s\n(%s (%s))\n",
		cfg.PrintAlias, cfg.PrintPrimitive,
		g.String(),
		cfg.PrintPrimitive, fn.Name,
	)
}

// CompileExpression compiles a single expression, optionally terminated by
// a semicolon, to its S-expression.
func CompileExpression(src []byte, cfg *Config) (string, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	p := parser.NewParser(lexer.NewLexer(src), arena.New(cfg.ArenaSize))
	expr, err := p.ParseExpression()
	if err != nil {
		return "", err
	}

	tok, err := p.Peek()
	if err != nil {
		return "", err
	}
	if tok.Kind == ';' {
		if _, err := p.Next(); err != nil {
			return "", err
		}
	}
	if err := p.ExpectEOF(); err != nil {
		return "", err
	}
	return codegen.Expr(expr), nil
}
