// File: lexer/lexer.go
package lexer

import (
	"strconv"
	"strings"
)

// Lexer tokenizes C-style source text
type Lexer struct {
	input        []byte
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	column       int

	last Location // start of the most recently returned token
}

var _ Source = (*Lexer)(nil)

// NewLexer creates a new Lexer
func NewLexer(input []byte) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances the position
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0 // EOF
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

// peekChar returns the next character without advancing the position
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0 // EOF
	}
	return l.input[l.readPosition]
}

func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

// Text of Illegal tokens produced for input that ends inside a comment or
// a quoted literal
const (
	UnterminatedComment = "unterminated comment"
	UnterminatedLiteral = "unterminated literal"
)

// Location reports where the most recently returned token started
func (l *Lexer) Location() Location {
	return l.last
}

// Next returns the next token
func (l *Lexer) Next() Token {
	if ok := l.skipSpaceAndComments(); !ok {
		l.last = Location{Line: l.line, Column: l.column}
		return Token{Kind: Illegal, Text: UnterminatedComment, Pos: l.last}
	}

	pos := Location{Line: l.line, Column: l.column}
	l.last = pos

	if l.atEOF() {
		return Token{Kind: EOF, Pos: pos}
	}

	switch {
	case isLetter(l.ch):
		return Token{Kind: Ident, Text: l.readIdentifier(), Pos: pos}
	case isDigit(l.ch), l.ch == '.' && isDigit(l.peekChar()):
		return l.readNumber(pos)
	case l.ch == '"':
		return l.readQuoted('"', pos)
	case l.ch == '\'':
		return l.readQuoted('\'', pos)
	}

	if kind, n := l.operator(); n > 0 {
		for i := 0; i < n; i++ {
			l.readChar()
		}
		return Token{Kind: kind, Pos: pos}
	}

	ch := l.ch
	l.readChar()
	return Token{Kind: Kind(ch), Int: int64(ch), Pos: pos}
}

// skipSpaceAndComments skips whitespace and both comment styles. It
// returns false on an unterminated block comment.
func (l *Lexer) skipSpaceAndComments() bool {
	for !l.atEOF() {
		switch {
		case isSpace(l.ch):
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for !l.atEOF() && l.ch != '\n' {
				l.readChar()
			}
		case l.ch == '/' && l.peekChar() == '*':
			l.readChar()
			l.readChar()
			for !(l.ch == '*' && l.peekChar() == '/') {
				if l.atEOF() {
					return false
				}
				l.readChar()
			}
			l.readChar()
			l.readChar()
		default:
			return true
		}
	}
	return true
}

// operators lists multi-character operators, longest first
var operators = []struct {
	text string
	kind Kind
}{
	{"<<=", ShlEq},
	{">>=", ShrEq},
	{"==", Eq},
	{"!=", NotEq},
	{"<=", LessEq},
	{">=", GreaterEq},
	{"&&", AndAnd},
	{"||", OrOr},
	{"<<", Shl},
	{">>", Shr},
	{"++", PlusPlus},
	{"--", MinusMinus},
	{"->", Arrow},
	{"&=", AndEq},
	{"|=", OrEq},
	{"^=", XorEq},
	{"+=", PlusEq},
	{"-=", MinusEq},
	{"*=", MulEq},
	{"/=", DivEq},
	{"%=", ModEq},
	{"=>", EqArrow},
}

// operator matches a multi-character operator at the current position
func (l *Lexer) operator() (Kind, int) {
	rest := l.input[l.position:]
	for _, op := range operators {
		if len(rest) >= len(op.text) && string(rest[:len(op.text)]) == op.text {
			return op.kind, len(op.text)
		}
	}
	return 0, 0
}

// readIdentifier reads an identifier
func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return string(l.input[position:l.position])
}

// readNumber reads an integer or float literal
func (l *Lexer) readNumber(pos Location) Token {
	start := l.position
	isFloat := false

	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		l.readChar()
		l.readChar()
		for isHexDigit(l.ch) {
			l.readChar()
		}
	} else {
		for isDigit(l.ch) {
			l.readChar()
		}
		if l.ch == '.' {
			isFloat = true
			l.readChar()
			for isDigit(l.ch) {
				l.readChar()
			}
		}
		if l.ch == 'e' || l.ch == 'E' {
			isFloat = true
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}

	text := string(l.input[start:l.position])
	// integer suffixes are accepted and ignored
	for l.ch == 'u' || l.ch == 'U' || l.ch == 'l' || l.ch == 'L' || (isFloat && (l.ch == 'f' || l.ch == 'F')) {
		l.readChar()
	}

	if isFloat {
		return Token{Kind: FloatLit, Text: text, Pos: pos}
	}

	v, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		return Token{Kind: Illegal, Text: text, Pos: pos}
	}
	return Token{Kind: IntLit, Int: v, Text: text, Pos: pos}
}

// readQuoted reads a string or character literal, decoding escapes
func (l *Lexer) readQuoted(quote byte, pos Location) Token {
	l.readChar() // opening quote

	var sb strings.Builder
	for l.ch != quote {
		if l.atEOF() || l.ch == '\n' {
			return Token{Kind: Illegal, Text: UnterminatedLiteral, Pos: pos}
		}
		if l.ch == '\\' {
			l.readChar()
			sb.WriteByte(l.readEscape())
			continue
		}
		sb.WriteByte(l.ch)
		l.readChar()
	}
	l.readChar() // closing quote

	text := sb.String()
	switch {
	case quote == '"':
		return Token{Kind: DQString, Text: text, Pos: pos}
	case len(text) == 1:
		return Token{Kind: CharLit, Text: text, Int: int64(text[0]), Pos: pos}
	default:
		return Token{Kind: SQString, Text: text, Pos: pos}
	}
}

// readEscape decodes the escape sequence following a backslash
func (l *Lexer) readEscape() byte {
	ch := l.ch
	l.readChar()
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	case 'a':
		return '\a'
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'v':
		return '\v'
	case 'x':
		var v byte
		for i := 0; i < 2 && isHexDigit(l.ch); i++ {
			v = v<<4 | hexValue(l.ch)
			l.readChar()
		}
		return v
	default:
		// \\, \", \' and unknown escapes yield the character itself
		return ch
	}
}

// isLetter returns true if the character can start an identifier
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit returns true if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}

func hexValue(ch byte) byte {
	switch {
	case isDigit(ch):
		return ch - '0'
	case 'a' <= ch && ch <= 'f':
		return ch - 'a' + 10
	default:
		return ch - 'A' + 10
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}
