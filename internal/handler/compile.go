package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/dangerclosesec/cscm/internal/domain"
	"github.com/dangerclosesec/cscm/internal/model"
	"github.com/dangerclosesec/cscm/internal/service"
)

// CompileHandler serves the compile endpoint
type CompileHandler struct {
	compilerService *service.CompilerService
	maxBodyBytes    int64
}

// NewCompileHandler creates a new compile handler. Request bodies larger
// than maxBodyBytes are rejected.
func NewCompileHandler(compilerService *service.CompilerService, maxBodyBytes int64) *CompileHandler {
	return &CompileHandler{
		compilerService: compilerService,
		maxBodyBytes:    maxBodyBytes,
	}
}

type CompileResponse struct {
	BaseResponse
	service.CompileOutput
}

// Compile accepts either a JSON CompileInput or, with a text/plain body,
// the raw source with an optional name query parameter.
func (h *CompileHandler) Compile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	input, err := decodeCompileInput(r)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondWithCodedError(w, http.StatusRequestEntityTooLarge, domain.ErrSourceTooLarge.Error(), "source_too_large")
			return
		}
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.compilerService.Compile(r.Context(), input, model.OriginHTTP, r)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptySource):
			respondWithCodedError(w, http.StatusBadRequest, err.Error(), "empty_source")
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithCodedError(w, http.StatusBadRequest, err.Error(), "invalid_input")
		case errors.Is(err, domain.ErrSourceTooLarge):
			respondWithCodedError(w, http.StatusRequestEntityTooLarge, err.Error(), "source_too_large")
		default:
			code, line, column := service.DescribeError(err)
			status := http.StatusUnprocessableEntity
			if code == service.CodeInternal {
				status = http.StatusInternalServerError
			}
			respondWithJSON(w, status, ErrorResponse{
				Error:  err.Error(),
				Code:   &code,
				Line:   line,
				Column: column,
			})
		}
		return
	}

	respondWithJSON(w, http.StatusOK, CompileResponse{
		BaseResponse:  BaseResponse{Ok: true},
		CompileOutput: *out,
	})
}

func decodeCompileInput(r *http.Request) (service.CompileInput, error) {
	var input service.CompileInput

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "text/plain" {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return input, err
		}
		input.Source = string(body)
		input.Name = r.URL.Query().Get("name")
		return input, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return input, err
	}
	return input, nil
}
