package parser

import (
	"errors"
	"testing"

	"github.com/dangerclosesec/cscm/compiler/arena"
	"github.com/dangerclosesec/cscm/compiler/ast"
	"github.com/dangerclosesec/cscm/compiler/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseExpr(t *testing.T, input string) ast.Expr {
	t.Helper()
	p := NewParser(lexer.NewLexer([]byte(input)), arena.New(1<<16))
	expr, err := p.ParseExpression()
	require.NoError(t, err)
	return expr
}

func TestExpressionPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1", "1"},
		{"x", "x"},
		{`"hi"`, `"hi"`},
		{"a+b-c", "((a + b) - c)"},
		{"a-b-c", "((a - b) - c)"},
		{"a/b/c", "((a / b) / c)"},
		{"1+2*3", "(1 + (2 * 3))"},
		{"1*2+3", "((1 * 2) + 3)"},
		{"1+2*3-4", "((1 + (2 * 3)) - 4)"},
		{"1*2+3*4", "((1 * 2) + (3 * 4))"},
		{"1+2*3*4+5", "((1 + ((2 * 3) * 4)) + 5)"},
		{"a*b/c-d", "(((a * b) / c) - d)"},
		{`"a" + x`, `("a" + x)`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseExpr(t, tt.input).String())
		})
	}
}

func TestExpressionStopsAtUnknownOperator(t *testing.T) {
	p := NewParser(lexer.NewLexer([]byte("1 + 2 % 3")), arena.New(1<<16))
	expr, err := p.ParseExpression()
	require.NoError(t, err)
	assert.Equal(t, "(1 + 2)", expr.String())

	next, err := p.tokens.Peek()
	require.NoError(t, err)
	assert.Equal(t, lexer.Kind('%'), next.Kind)
}

func TestExpressionTree(t *testing.T) {
	expr := parseExpr(t, "1+2*3")

	root, ok := expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, byte('+'), root.Op)
	assert.Equal(t, &ast.NumberLiteral{Value: 1}, root.Left)

	right, ok := root.Right.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, byte('*'), right.Op)
	assert.Equal(t, &ast.NumberLiteral{Value: 2}, right.Left)
	assert.Equal(t, &ast.NumberLiteral{Value: 3}, right.Right)
}

func TestParseDeterministic(t *testing.T) {
	src := []byte(`int main() { x = 1 + 2 * y - 3; printf(x / 2); return x; }`)

	first, err := Parse(src, arena.New(1<<16))
	require.NoError(t, err)
	second, err := Parse(src, arena.New(1<<16))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseFunction(t *testing.T) {
	input := `int main(int argc, char **argv) {
    x = 1;
    int y = x * 2;
    printf("%d\n");
    return x + y;
}`

	fn, err := Parse([]byte(input), arena.New(1<<16))
	require.NoError(t, err)

	assert.Equal(t, "int", fn.ReturnType)
	assert.Equal(t, "main", fn.Name)
	assert.Equal(t, []ast.Statement{
		&ast.Assignment{Name: "x", Value: &ast.NumberLiteral{Value: 1}},
		&ast.Assignment{Name: "y", Value: &ast.BinaryOp{Op: '*', Left: &ast.Identifier{Name: "x"}, Right: &ast.NumberLiteral{Value: 2}}},
		&ast.FunctionCall{Name: "printf", Arg: &ast.StringLiteral{Value: "%d\n"}},
		&ast.Return{Value: &ast.BinaryOp{Op: '+', Left: &ast.Identifier{Name: "x"}, Right: &ast.Identifier{Name: "y"}}},
	}, fn.Statements)
}

func TestParseEmptyFunction(t *testing.T) {
	fn, err := Parse([]byte("void noop() {}"), arena.New(1<<16))
	require.NoError(t, err)
	assert.Equal(t, "noop", fn.Name)
	assert.Empty(t, fn.Statements)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     ErrorKind
		sentinel error
		expected lexer.Kind
		found    lexer.Kind
		pos      lexer.Location
		message  string
	}{
		{
			name:     "missing semicolon",
			input:    "int main() {\n  return 1\n}",
			kind:     UnexpectedToken,
			sentinel: ErrUnexpectedToken,
			expected: ';',
			found:    '}',
			pos:      lexer.Location{Line: 3, Column: 1},
			message:  "3:1 - expected token ';' but found '}' instead",
		},
		{
			name:     "missing closing paren in signature",
			input:    "int main(int a",
			kind:     UnexpectedEOF,
			sentinel: ErrUnexpectedEOF,
			expected: ')',
			found:    lexer.EOF,
			pos:      lexer.Location{Line: 1, Column: 15},
		},
		{
			name:     "missing closing brace",
			input:    "int main() { x = 1;",
			kind:     UnexpectedEOF,
			sentinel: ErrUnexpectedEOF,
			expected: '}',
			found:    lexer.EOF,
			pos:      lexer.Location{Line: 1, Column: 20},
		},
		{
			name:     "parenthesised expression",
			input:    "int main() { return (1); }",
			kind:     UnparsablePrimary,
			sentinel: ErrUnparsablePrimary,
			found:    '(',
			pos:      lexer.Location{Line: 1, Column: 21},
			message:  "1:21 - cannot parse tokens of type '('",
		},
		{
			name:     "input ends after operator",
			input:    "int main() { return 1 +",
			kind:     UnexpectedEOF,
			sentinel: ErrUnexpectedEOF,
			found:    lexer.EOF,
			pos:      lexer.Location{Line: 1, Column: 24},
			message:  "1:24 - expected expression but found " + lexer.EOF.String() + " instead",
		},
		{
			name:     "unary minus",
			input:    "int main() { return -1; }",
			kind:     UnparsablePrimary,
			sentinel: ErrUnparsablePrimary,
			found:    '-',
			pos:      lexer.Location{Line: 1, Column: 21},
		},
		{
			name:     "float literal",
			input:    "int main() { return 1.5; }",
			kind:     UnparsablePrimary,
			sentinel: ErrUnparsablePrimary,
			found:    lexer.FloatLit,
			pos:      lexer.Location{Line: 1, Column: 21},
		},
		{
			name:     "unsupported operator",
			input:    "int main() { return a % b; }",
			kind:     UnexpectedToken,
			sentinel: ErrUnexpectedToken,
			expected: ';',
			found:    '%',
			pos:      lexer.Location{Line: 1, Column: 23},
		},
		{
			name:     "call missing close paren",
			input:    "int main() { foo(1; }",
			kind:     UnexpectedToken,
			sentinel: ErrUnexpectedToken,
			expected: ')',
			found:    ';',
			pos:      lexer.Location{Line: 1, Column: 19},
		},
		{
			name:     "statement starting with literal",
			input:    "int main() { 1; }",
			kind:     UnexpectedToken,
			sentinel: ErrUnexpectedToken,
			expected: lexer.Ident,
			found:    lexer.IntLit,
			pos:      lexer.Location{Line: 1, Column: 14},
		},
		{
			name:     "trailing tokens",
			input:    "int main() {} int",
			kind:     UnexpectedToken,
			sentinel: ErrUnexpectedToken,
			expected: lexer.EOF,
			found:    lexer.Ident,
			pos:      lexer.Location{Line: 1, Column: 15},
		},
		{
			name:     "empty input",
			input:    "",
			kind:     UnexpectedEOF,
			sentinel: ErrUnexpectedEOF,
			expected: lexer.Ident,
			found:    lexer.EOF,
			pos:      lexer.Location{Line: 1, Column: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := Parse([]byte(tt.input), arena.New(1<<16))
			require.Error(t, err)
			assert.Nil(t, fn)

			var perr *Error
			require.True(t, errors.As(err, &perr), "expected *Error, got %T: %v", err, err)
			assert.Equal(t, tt.kind, perr.Kind)
			assert.Equal(t, tt.expected, perr.Expected)
			assert.Equal(t, tt.found, perr.Found)
			assert.Equal(t, tt.pos, perr.Pos)
			assert.ErrorIs(t, err, tt.sentinel)
			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}
		})
	}
}

func TestParseArenaExhausted(t *testing.T) {
	_, err := Parse([]byte(`int main() { return "a rather long string literal"; }`), arena.New(16))
	require.Error(t, err)
	assert.ErrorIs(t, err, arena.ErrExhausted)
}

func TestTokens(t *testing.T) {
	tokens, err := Tokens([]byte("x = 1 + 2 * y;"), arena.New(1<<16))
	require.NoError(t, err)
	require.Len(t, tokens, 9)

	assert.Equal(t, "x", tokens[0].Text)
	assert.False(t, tokens[1].IsBinaryOperator)
	assert.True(t, tokens[3].IsBinaryOperator)
	assert.Equal(t, 1, tokens[3].Precedence)
	assert.Equal(t, byte('+'), tokens[3].Op)
	assert.Equal(t, 2, tokens[5].Precedence)
	assert.True(t, tokens[8].IsEOF())
	assert.Equal(t, "1:7 '+' binary precedence=1", tokens[3].String())
}
