package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dangerclosesec/cscm/internal/domain"
	"github.com/dangerclosesec/cscm/internal/repository"
	"github.com/dangerclosesec/cscm/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CompilationLogHandler handles API requests related to compilation history
type CompilationLogHandler struct {
	logService *service.CompilationLogService
}

// NewCompilationLogHandler creates a new compilation history handler
func NewCompilationLogHandler(logService *service.CompilationLogService) *CompilationLogHandler {
	return &CompilationLogHandler{
		logService: logService,
	}
}

// ListCompilations handles requests to retrieve compilation history with filtering
func (h *CompilationLogHandler) ListCompilations(w http.ResponseWriter, r *http.Request) {
	params := ParseQueryParams(r)

	records, total, err := h.logService.ListCompilations(r.Context(), params)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}

	response := struct {
		Compilations interface{} `json:"compilations"`
		Total        int64       `json:"total"`
	}{
		Compilations: records,
		Total:        total,
	}

	respondWithJSON(w, http.StatusOK, response)
}

// GetCompilation handles requests to retrieve one compilation by ID
func (h *CompilationLogHandler) GetCompilation(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		respondWithError(w, http.StatusBadRequest, "Missing compilation ID")
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid compilation ID format")
		return
	}

	record, err := h.logService.GetCompilation(r.Context(), id)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, record)
}

func (h *CompilationLogHandler) respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Compilation not found")
	case errors.Is(err, domain.ErrHistoryDisabled):
		respondWithCodedError(w, http.StatusServiceUnavailable, err.Error(), "history_disabled")
	default:
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve compilations")
	}
}

// ParseQueryParams reads history filters from the request's query string.
// Malformed values are ignored.
func ParseQueryParams(r *http.Request) repository.QueryParams {
	params := repository.QueryParams{}
	q := r.URL.Query()

	params.Origin = q.Get("origin")
	params.SourceName = q.Get("source")
	params.Function = q.Get("function")
	params.ErrorCode = q.Get("error_code")

	if successStr := q.Get("success"); successStr != "" {
		success, err := strconv.ParseBool(successStr)
		if err == nil {
			params.Success = &success
		}
	}

	if startTimeStr := q.Get("start_time"); startTimeStr != "" {
		startTime, err := time.Parse(time.RFC3339, startTimeStr)
		if err == nil {
			params.StartTime = startTime
		}
	}

	if endTimeStr := q.Get("end_time"); endTimeStr != "" {
		endTime, err := time.Parse(time.RFC3339, endTimeStr)
		if err == nil {
			params.EndTime = endTime
		}
	}

	// Pagination
	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err == nil && limit > 0 {
			params.Limit = limit
		}
	}

	if offsetStr := q.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err == nil && offset >= 0 {
			params.Offset = offset
		}
	}

	return params
}
