package audit

import (
	"context"
	"net/http"

	"github.com/dangerclosesec/cscm/internal/model"
)

// Recorder stores the outcome of compile runs
type Recorder interface {
	// RecordCompilation stores c. req is nil outside HTTP.
	RecordCompilation(ctx context.Context, c *model.Compilation, req *http.Request) error
}

// NoOpRecorder is a recorder that does nothing
type NoOpRecorder struct{}

// RecordCompilation implements Recorder.RecordCompilation
func (r *NoOpRecorder) RecordCompilation(ctx context.Context, c *model.Compilation, req *http.Request) error {
	return nil
}
