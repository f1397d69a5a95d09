package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/cscm/internal/domain"
	"github.com/dangerclosesec/cscm/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompilationRepositoryIface interface {
	Create(ctx context.Context, c *model.Compilation) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Compilation, error)
	Query(ctx context.Context, params QueryParams) ([]model.Compilation, int64, error)
}

// CompilationRepository handles database operations for compilation history
type CompilationRepository struct {
	db *gorm.DB
}

// NewCompilationRepository creates a new CompilationRepository
func NewCompilationRepository(db *gorm.DB) *CompilationRepository {
	return &CompilationRepository{
		db: db,
	}
}

// Create inserts a new compilation record
func (r *CompilationRepository) Create(ctx context.Context, c *model.Compilation) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	if c.Timestamp.IsZero() {
		c.Timestamp = time.Now().UTC()
	}

	result := r.db.WithContext(ctx).Create(c)
	if result.Error != nil {
		return fmt.Errorf("failed to create compilation: %w", result.Error)
	}

	return nil
}

// FindByID retrieves a compilation record by its ID
func (r *CompilationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Compilation, error) {
	var c model.Compilation
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&c)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find compilation: %w", result.Error)
	}

	return &c, nil
}

// QueryParams holds parameters for querying compilation history
type QueryParams struct {
	Origin     string
	SourceName string
	Function   string
	ErrorCode  string
	Success    *bool
	StartTime  time.Time
	EndTime    time.Time
	Limit      int
	Offset     int
}

// DefaultQueryLimit caps Query when no limit is given
const DefaultQueryLimit = 100

// Query retrieves compilations matching params, newest first
func (r *CompilationRepository) Query(ctx context.Context, params QueryParams) ([]model.Compilation, int64, error) {
	var records []model.Compilation
	var count int64

	query := r.db.WithContext(ctx).Model(&model.Compilation{})

	if params.Origin != "" {
		query = query.Where("origin = ?", params.Origin)
	}
	if params.SourceName != "" {
		query = query.Where("source_name = ?", params.SourceName)
	}
	if params.Function != "" {
		query = query.Where("function_name = ?", params.Function)
	}
	if params.ErrorCode != "" {
		query = query.Where("error_code = ?", params.ErrorCode)
	}
	if params.Success != nil {
		query = query.Where("success = ?", *params.Success)
	}
	if !params.StartTime.IsZero() {
		query = query.Where("timestamp >= ?", params.StartTime)
	}
	if !params.EndTime.IsZero() {
		query = query.Where("timestamp <= ?", params.EndTime)
	}

	// Total before pagination
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count compilations: %w", err)
	}

	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	} else {
		query = query.Limit(DefaultQueryLimit)
	}

	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	result := query.Order("timestamp DESC").Find(&records)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to query compilations: %w", result.Error)
	}

	return records, count, nil
}
