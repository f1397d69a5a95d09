package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dangerclosesec/cscm/compiler/parser"
	"github.com/dangerclosesec/cscm/internal/config"
	"github.com/dangerclosesec/cscm/internal/domain"
	"github.com/dangerclosesec/cscm/internal/mocks"
	"github.com/dangerclosesec/cscm/internal/model"
	"github.com/dangerclosesec/cscm/internal/service"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCompilerServiceCompile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.Defaults()

	t.Run("success is recorded", func(t *testing.T) {
		repo := mocks.NewMockCompilationRepositoryIface(ctrl)
		svc := service.NewCompilerService(cfg, service.NewCompilationLogService(repo), quietLogger())

		var recorded *model.Compilation
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *model.Compilation) error {
				recorded = c
				return nil
			})

		out, err := svc.Compile(context.Background(), service.CompileInput{
			Source: "int main() { return 1 + 2; }",
			Name:   "main.c",
		}, model.OriginCLI, nil)
		require.NoError(t, err)

		assert.Equal(t, "(define printf print)\n(define (main)\n  (+ 1 2))\n(print (main))\n", out.Output)
		assert.Equal(t, "main", out.Function)
		assert.Equal(t, 1, out.Statements)
		assert.NotEqual(t, uuid.Nil, out.ID)

		require.NotNil(t, recorded)
		assert.Equal(t, out.ID, recorded.ID)
		assert.True(t, recorded.Success)
		assert.Equal(t, model.OriginCLI, recorded.Origin)
		assert.Equal(t, "main.c", recorded.SourceName)
		assert.Equal(t, "main", recorded.FunctionName)
		assert.Equal(t, len(out.Output), recorded.OutputBytes)
		assert.Equal(t, "printf", recorded.Settings["print_alias"])
		assert.Empty(t, recorded.RequestID)
	})

	t.Run("parse failure is recorded with position", func(t *testing.T) {
		repo := mocks.NewMockCompilationRepositoryIface(ctrl)
		svc := service.NewCompilerService(cfg, service.NewCompilationLogService(repo), quietLogger())

		var recorded *model.Compilation
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *model.Compilation) error {
				recorded = c
				return nil
			})

		_, err := svc.Compile(context.Background(), service.CompileInput{
			Source: "int main() {\n    x = 1\n}",
		}, model.OriginCLI, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, parser.ErrUnexpectedToken)

		require.NotNil(t, recorded)
		assert.False(t, recorded.Success)
		assert.Equal(t, "unexpected_token", recorded.ErrorCode)
		assert.Equal(t, 3, recorded.Line)
		assert.Equal(t, 1, recorded.Column)
		assert.Equal(t, err.Error(), recorded.ErrorMessage)
	})

	t.Run("request metadata is attached", func(t *testing.T) {
		repo := mocks.NewMockCompilationRepositoryIface(ctrl)
		svc := service.NewCompilerService(cfg, service.NewCompilationLogService(repo), quietLogger())

		req := httptest.NewRequest("POST", "/compile", nil)
		req.Header.Set("User-Agent", "cscm-test")
		ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-1")

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *model.Compilation) error {
				assert.Equal(t, model.OriginHTTP, c.Origin)
				assert.Equal(t, "req-1", c.RequestID)
				assert.Equal(t, "cscm-test", c.UserAgent)
				assert.Equal(t, req.RemoteAddr, c.ClientIP)
				return nil
			})

		_, err := svc.Compile(ctx, service.CompileInput{Source: "int f() {}"}, model.OriginHTTP, req)
		require.NoError(t, err)
	})

	t.Run("recorder failure does not fail the compile", func(t *testing.T) {
		repo := mocks.NewMockCompilationRepositoryIface(ctrl)
		svc := service.NewCompilerService(cfg, service.NewCompilationLogService(repo), quietLogger())

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))

		out, err := svc.Compile(context.Background(), service.CompileInput{Source: "int f() {}"}, model.OriginCLI, nil)
		require.NoError(t, err)
		assert.Equal(t, "f", out.Function)
	})

	t.Run("invalid input is rejected before compiling", func(t *testing.T) {
		repo := mocks.NewMockCompilationRepositoryIface(ctrl)
		svc := service.NewCompilerService(cfg, service.NewCompilationLogService(repo), quietLogger())

		_, err := svc.Compile(context.Background(), service.CompileInput{}, model.OriginHTTP, nil)
		assert.ErrorIs(t, err, domain.ErrEmptySource)

		_, err = svc.Compile(context.Background(), service.CompileInput{
			Source: "int f() {}",
			Name:   strings.Repeat("n", 256),
		}, model.OriginHTTP, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("oversized source is rejected", func(t *testing.T) {
		small := config.Defaults()
		small.Server.MaxSourceBytes = 8
		svc := service.NewCompilerService(small, nil, quietLogger())

		_, err := svc.Compile(context.Background(), service.CompileInput{Source: "int main() {}"}, model.OriginHTTP, nil)
		assert.ErrorIs(t, err, domain.ErrSourceTooLarge)
	})
}

func TestDescribeError(t *testing.T) {
	code, line, column := service.DescribeError(&parser.Error{Kind: parser.UnparsablePrimary, Pos: parserPos(1, 21)})
	assert.Equal(t, "unparsable_primary", code)
	assert.Equal(t, 1, line)
	assert.Equal(t, 21, column)

	small := config.Defaults()
	small.Arena.Size = 4
	svc := service.NewCompilerService(small, nil, quietLogger())
	_, err := svc.Compile(context.Background(), service.CompileInput{Source: "int main() { return 1; }"}, model.OriginCLI, nil)
	require.Error(t, err)
	code, _, _ = service.DescribeError(err)
	assert.Equal(t, service.CodeArenaExhausted, code)

	code, _, _ = service.DescribeError(errors.New("boom"))
	assert.Equal(t, service.CodeInternal, code)
}
