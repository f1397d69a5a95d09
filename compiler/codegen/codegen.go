// Package codegen renders a parsed function as S-expressions.
package codegen

import (
	"io"
	"strconv"
	"strings"

	"github.com/dangerclosesec/cscm/compiler/ast"
)

// indent prefixes every statement inside a function body
const indent = "  "

// Generator writes S-expression text. It never validates the tree; the
// parser only builds well-formed ones.
type Generator struct {
	sb strings.Builder
}

// String returns everything generated so far
func (g *Generator) String() string {
	return g.sb.String()
}

// WriteTo flushes the generated text to w
func (g *Generator) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.sb.String())
	return int64(n), err
}

// Function emits `(define (NAME)` followed by one line per statement and a
// closing parenthesis.
func (g *Generator) Function(fn *ast.Function) {
	g.sb.WriteString("(define (")
	g.sb.WriteString(fn.Name)
	g.sb.WriteString(")")
	for _, stmt := range fn.Statements {
		g.sb.WriteString("\n")
		g.sb.WriteString(indent)
		g.Statement(stmt)
	}
	g.sb.WriteString(")")
}

// Statement emits a single statement
func (g *Generator) Statement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Return:
		// the body's tail expression is its value
		g.Expr(s.Value)
	case *ast.FunctionCall:
		g.sb.WriteString("(")
		g.sb.WriteString(s.Name)
		g.sb.WriteString(" ")
		g.Expr(s.Arg)
		g.sb.WriteString(")")
	case *ast.Assignment:
		g.sb.WriteString("(define ")
		g.sb.WriteString(s.Name)
		g.sb.WriteString(" ")
		g.Expr(s.Value)
		g.sb.WriteString(")")
	}
}

// Expr emits an expression in prefix form
func (g *Generator) Expr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.BinaryOp:
		g.sb.WriteString("(")
		g.sb.WriteByte(e.Op)
		g.sb.WriteString(" ")
		g.Expr(e.Left)
		g.sb.WriteString(" ")
		g.Expr(e.Right)
		g.sb.WriteString(")")
	case *ast.NumberLiteral:
		g.sb.WriteString(strconv.FormatInt(e.Value, 10))
	case *ast.StringLiteral:
		// Decoded text goes out verbatim; embedded quotes are not re-escaped.
		g.sb.WriteString(`"`)
		g.sb.WriteString(e.Value)
		g.sb.WriteString(`"`)
	case *ast.Identifier:
		g.sb.WriteString(e.Name)
	}
}

// Function renders fn on its own
func Function(fn *ast.Function) string {
	var g Generator
	g.Function(fn)
	return g.String()
}

// Expr renders expr on its own
func Expr(expr ast.Expr) string {
	var g Generator
	g.Expr(expr)
	return g.String()
}
