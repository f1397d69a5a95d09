package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dangerclosesec/cscm"
	"github.com/dangerclosesec/cscm/compiler/lexer"
	"github.com/peterh/liner"
)

const PROMPT = "c> "
const PROMPT_EXPR = "e> "
const CONTINUATION_PROMPT = ".. "

// Words offered by tab completion
var completionWords = []string{
	"int", "char", "void", "return", "printf",
	":expr", ":func", ":help", ":reset", "exit", "quit",
}

// Session holds the state of one interactive session. Input accumulates
// until it forms a complete function (or, in expression mode, a complete
// line) and is then compiled and written to out.
type Session struct {
	cfg      *cscm.Config
	out      io.Writer
	buf      strings.Builder
	exprMode bool
}

// NewSession creates a session writing results to out
func NewSession(cfg *cscm.Config, out io.Writer) *Session {
	if cfg == nil {
		cfg = cscm.NewConfig()
	}
	return &Session{cfg: cfg, out: out}
}

// Prompt returns the prompt for the next line
func (s *Session) Prompt() string {
	switch {
	case s.buf.Len() > 0:
		return CONTINUATION_PROMPT
	case s.exprMode:
		return PROMPT_EXPR
	default:
		return PROMPT
	}
}

// Pending reports whether a partial input is buffered
func (s *Session) Pending() bool {
	return s.buf.Len() > 0
}

// Reset drops any buffered input
func (s *Session) Reset() {
	s.buf.Reset()
}

// Handle processes one input line. It returns the complete input that was
// compiled, if any, and whether the session should end.
func (s *Session) Handle(line string) (complete string, quit bool) {
	trimmed := strings.TrimSpace(line)

	// No C line starts with ':', so commands work mid-function too.
	if strings.HasPrefix(trimmed, ":") {
		s.command(trimmed)
		return "", false
	}

	if s.buf.Len() == 0 {
		switch trimmed {
		case "exit", "quit":
			return "", true
		case "":
			return "", false
		}
	}

	if s.buf.Len() > 0 {
		s.buf.WriteString("\n")
	}
	s.buf.WriteString(line)

	input := s.buf.String()
	if !s.exprMode && needsMoreInput(input) {
		return "", false
	}
	s.buf.Reset()

	s.compile(input)
	return input, false
}

func (s *Session) compile(input string) {
	if s.exprMode {
		out, err := cscm.CompileExpression([]byte(input), s.cfg)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return
		}
		fmt.Fprintln(s.out, out)
		return
	}

	if _, err := cscm.Compile([]byte(input), s.out, s.cfg); err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
}

func (s *Session) command(cmd string) {
	switch cmd {
	case ":expr":
		s.exprMode = true
		fmt.Fprintln(s.out, "expression mode")
	case ":func":
		s.exprMode = false
		fmt.Fprintln(s.out, "function mode")
	case ":reset":
		if s.buf.Len() > 0 {
			fmt.Fprintln(s.out, "input discarded")
		}
		s.buf.Reset()
	case ":help":
		fmt.Fprintln(s.out, "  :func   compile whole functions (default)")
		fmt.Fprintln(s.out, "  :expr   compile single expressions")
		fmt.Fprintln(s.out, "  :reset  discard buffered input")
		fmt.Fprintln(s.out, "  exit    leave the REPL")
	default:
		fmt.Fprintf(s.out, "unknown command %s (try :help)\n", cmd)
	}
}

// needsMoreInput reports whether input is still an incomplete function:
// no body opened yet, braces unbalanced, or a comment left open.
func needsMoreInput(input string) bool {
	l := lexer.NewLexer([]byte(input))
	depth := 0
	opened := false

	for {
		tok := l.Next()
		switch tok.Kind {
		case lexer.EOF:
			return !opened || depth > 0
		case lexer.Illegal:
			return tok.Text == lexer.UnterminatedComment
		case '{':
			depth++
			opened = true
		case '}':
			depth--
			if depth <= 0 {
				return false
			}
		}
	}
}

// Start runs the interactive loop with line editing and history until EOF
// or exit. historyFile may be empty.
func Start(out io.Writer, cfg *cscm.Config, version, historyFile string) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	line.SetCompleter(func(line string) []string {
		return filterCompletions(line)
	})

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			line.ReadHistory(f)
			f.Close()
		}

		defer func() {
			if f, err := os.Create(historyFile); err == nil {
				line.WriteHistory(f)
				f.Close()
			}
		}()
	}

	fmt.Fprintln(out, "cscm", version)
	fmt.Fprintln(out, "Type 'exit' or Ctrl+D to quit, ':help' for commands")

	session := NewSession(cfg, out)
	for {
		input, err := line.Prompt(session.Prompt())
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				if session.Pending() {
					fmt.Fprintln(out, "^C (cleared)")
				}
				session.Reset()
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		complete, quit := session.Handle(input)
		if quit {
			return nil
		}
		if complete != "" {
			line.AppendHistory(complete)
		}
	}
}

func filterCompletions(line string) []string {
	start := strings.LastIndexAny(line, " \t(") + 1
	prefix := line[start:]
	if prefix == "" {
		return nil
	}

	var matches []string
	for _, w := range completionWords {
		if strings.HasPrefix(w, prefix) {
			matches = append(matches, line[:start]+w)
		}
	}
	return matches
}
