package cscm

import (
	"io"
	"log/slog"
)

// DefaultArenaSize is the block reserved for one compilation run.
const DefaultArenaSize = 8 << 20

// Config holds the configuration settings for a compilation run.
type Config struct {
	// logger is the logger used for logging messages.
	logger *slog.Logger

	// ArenaSize is the number of bytes reserved for AST nodes and strings.
	// Default is DefaultArenaSize.
	ArenaSize int

	// PrintAlias is the name the source program prints through.
	// Default is "printf".
	PrintAlias string

	// PrintPrimitive is the target's native print procedure.
	// Default is "print".
	PrintPrimitive string
}

func NewConfig() *Config {
	return &Config{
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		ArenaSize:      DefaultArenaSize,
		PrintAlias:     "printf",
		PrintPrimitive: "print",
	}
}

// SetArenaSize sets the arena size in bytes.
func (c *Config) SetArenaSize(size int) {
	c.ArenaSize = size
}

// SetPrint sets the print alias and the primitive it is bound to.
func (c *Config) SetPrint(alias, primitive string) {
	c.PrintAlias = alias
	c.PrintPrimitive = primitive
}

// SetLogger sets the logger.
func (c *Config) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

// Logger returns the configured logger.
func (c *Config) Logger() *slog.Logger {
	return c.logger
}
