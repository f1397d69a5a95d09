package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dangerclosesec/cscm"
	"github.com/dangerclosesec/cscm/compiler/arena"
	"github.com/dangerclosesec/cscm/compiler/parser"
	"github.com/dangerclosesec/cscm/internal/audit"
	"github.com/dangerclosesec/cscm/internal/config"
	"github.com/dangerclosesec/cscm/internal/domain"
	"github.com/dangerclosesec/cscm/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Error codes for failures that are not parse errors
const (
	CodeArenaExhausted = "arena_exhausted"
	CodeInternal       = "internal"
)

type CompilerService struct {
	cfg      *config.Config
	recorder audit.Recorder
	logger   *slog.Logger
	validate *validator.Validate
}

func NewCompilerService(cfg *config.Config, recorder audit.Recorder, logger *slog.Logger) *CompilerService {
	if recorder == nil {
		recorder = &audit.NoOpRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CompilerService{
		cfg:      cfg,
		recorder: recorder,
		logger:   logger,
		validate: validator.New(),
	}
}

type CompileInput struct {
	Source string `json:"source" validate:"required"`
	Name   string `json:"name" validate:"omitempty,max=255"`
}

type CompileOutput struct {
	ID         uuid.UUID `json:"id"`
	Output     string    `json:"output"`
	Function   string    `json:"function"`
	Statements int       `json:"statements"`
	ArenaUsed  int       `json:"arena_used"`
}

// Compile runs one compilation and records it. origin is one of the
// model.Origin constants; req is nil outside HTTP.
func (s *CompilerService) Compile(ctx context.Context, input CompileInput, origin string, req *http.Request) (*CompileOutput, error) {
	if err := s.validateCompileInput(input); err != nil {
		return nil, err
	}

	runID := uuid.New()
	logger := s.logger.With("run_id", runID.String(), "origin", origin, "source", input.Name)

	start := time.Now()
	var out bytes.Buffer
	res, err := cscm.Compile([]byte(input.Source), &out, s.compilerConfig(logger))
	elapsed := time.Since(start)

	record := &model.Compilation{
		ID:          runID,
		Origin:      origin,
		SourceName:  input.Name,
		SourceBytes: len(input.Source),
		DurationUS:  elapsed.Microseconds(),
		Settings: model.JSONMap{
			"arena_size":      s.cfg.Arena.Size,
			"print_alias":     s.cfg.Output.PrintAlias,
			"print_primitive": s.cfg.Output.PrintPrimitive,
		},
	}

	if err != nil {
		code, line, column := DescribeError(err)
		record.ErrorCode = code
		record.ErrorMessage = err.Error()
		record.Line = line
		record.Column = column
		logger.Info("Compilation failed", "error", err, "error_code", code, "duration", elapsed)
	} else {
		record.Success = true
		record.FunctionName = res.Function.Name
		record.Statements = len(res.Function.Statements)
		record.OutputBytes = out.Len()
		record.ArenaUsed = res.ArenaUsed
		logger.Info("Compilation succeeded",
			"function", res.Function.Name,
			"statements", len(res.Function.Statements),
			"arena_used", res.ArenaUsed,
			"duration", elapsed,
		)
	}

	if recErr := s.recorder.RecordCompilation(ctx, record, req); recErr != nil {
		logger.Warn("Failed to record compilation", "error", recErr)
	}

	if err != nil {
		return nil, err
	}

	return &CompileOutput{
		ID:         runID,
		Output:     out.String(),
		Function:   res.Function.Name,
		Statements: len(res.Function.Statements),
		ArenaUsed:  res.ArenaUsed,
	}, nil
}

func (s *CompilerService) compilerConfig(logger *slog.Logger) *cscm.Config {
	c := cscm.NewConfig()
	c.SetArenaSize(s.cfg.Arena.Size)
	c.SetPrint(s.cfg.Output.PrintAlias, s.cfg.Output.PrintPrimitive)
	c.SetLogger(logger)
	return c
}

// validateCompileInput performs validation on compile input
func (s *CompilerService) validateCompileInput(input CompileInput) error {
	if input.Source == "" {
		return domain.ErrEmptySource
	}

	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if int64(len(input.Source)) > s.cfg.Server.MaxSourceBytes {
		return domain.ErrSourceTooLarge
	}

	return nil
}

// DescribeError maps a compile error to its code and, for parse errors,
// the source position.
func DescribeError(err error) (code string, line, column int) {
	var perr *parser.Error
	switch {
	case errors.As(err, &perr):
		return perr.Kind.Code(), perr.Pos.Line, perr.Pos.Column
	case errors.Is(err, arena.ErrExhausted):
		return CodeArenaExhausted, 0, 0
	default:
		return CodeInternal, 0, 0
	}
}
