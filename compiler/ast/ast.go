// Package ast defines the syntax tree built by the parser. Every node is
// allocated from the run's arena and is immutable once parsing finishes.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Expr represents an expression that yields a value.
type Expr interface {
	fmt.Stringer
	exprNode()
}

// Statement represents one statement of the function body.
type Statement interface {
	fmt.Stringer
	stmtNode()
}

// BinaryOp: LEFT OP RIGHT
type BinaryOp struct {
	Op    byte
	Left  Expr
	Right Expr
}

func (b *BinaryOp) exprNode() {}

func (b *BinaryOp) String() string {
	return "(" + b.Left.String() + " " + string(b.Op) + " " + b.Right.String() + ")"
}

// Literal values
type NumberLiteral struct {
	Value int64
}

func (n *NumberLiteral) exprNode()      {}
func (n *NumberLiteral) String() string { return strconv.FormatInt(n.Value, 10) }

type StringLiteral struct {
	Value string
}

func (s *StringLiteral) exprNode()      {}
func (s *StringLiteral) String() string { return strconv.Quote(s.Value) }

type Identifier struct {
	Name string
}

func (i *Identifier) exprNode()      {}
func (i *Identifier) String() string { return i.Name }

// Return: return EXPR ;
type Return struct {
	Value Expr
}

func (r *Return) stmtNode()      {}
func (r *Return) String() string { return "return " + r.Value.String() + ";" }

// FunctionCall: NAME ( ARG ) ;
type FunctionCall struct {
	Name string
	Arg  Expr
}

func (f *FunctionCall) stmtNode()      {}
func (f *FunctionCall) String() string { return f.Name + "(" + f.Arg.String() + ");" }

// Assignment: NAME = EXPR ;
type Assignment struct {
	Name  string
	Value Expr
}

func (a *Assignment) stmtNode()      {}
func (a *Assignment) String() string { return a.Name + " = " + a.Value.String() + ";" }

// Function is the single function a source file defines.
type Function struct {
	ReturnType string
	Name       string
	Statements []Statement
}

func (f *Function) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s() {\n", f.ReturnType, f.Name)
	for _, stmt := range f.Statements {
		sb.WriteString("    ")
		sb.WriteString(stmt.String())
		sb.WriteByte('\n')
	}
	sb.WriteString("}")
	return sb.String()
}
