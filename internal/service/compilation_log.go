package service

import (
	"context"
	"net/http"
	"time"

	"github.com/dangerclosesec/cscm/internal/audit"
	"github.com/dangerclosesec/cscm/internal/domain"
	"github.com/dangerclosesec/cscm/internal/model"
	"github.com/dangerclosesec/cscm/internal/repository"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Ensure CompilationLogService implements the audit.Recorder interface
var _ audit.Recorder = (*CompilationLogService)(nil)

// CompilationLogService handles operations related to compilation history.
// A nil repository disables history.
type CompilationLogService struct {
	repo repository.CompilationRepositoryIface
}

// NewCompilationLogService creates a new CompilationLogService
func NewCompilationLogService(repo repository.CompilationRepositoryIface) *CompilationLogService {
	return &CompilationLogService{
		repo: repo,
	}
}

// Enabled reports whether history is backed by a database
func (s *CompilationLogService) Enabled() bool {
	return s != nil && s.repo != nil
}

// RecordCompilation stores a compile run, adding request metadata when the
// run came in over HTTP
func (s *CompilationLogService) RecordCompilation(ctx context.Context, c *model.Compilation, req *http.Request) error {
	if !s.Enabled() {
		return nil
	}

	if c.Timestamp.IsZero() {
		c.Timestamp = time.Now().UTC()
	}

	if req != nil {
		c.RequestID = middleware.GetReqID(ctx)
		c.ClientIP = req.RemoteAddr
		c.UserAgent = req.UserAgent()
	}

	return s.repo.Create(ctx, c)
}

// GetCompilation retrieves a compilation record by ID
func (s *CompilationLogService) GetCompilation(ctx context.Context, id uuid.UUID) (*model.Compilation, error) {
	if !s.Enabled() {
		return nil, domain.ErrHistoryDisabled
	}
	return s.repo.FindByID(ctx, id)
}

// ListCompilations retrieves compilation records matching params
func (s *CompilationLogService) ListCompilations(ctx context.Context, params repository.QueryParams) ([]model.Compilation, int64, error) {
	if !s.Enabled() {
		return nil, 0, domain.ErrHistoryDisabled
	}
	return s.repo.Query(ctx, params)
}
