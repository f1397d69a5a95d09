package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient(nil)
	assert.Equal(t, "http://localhost:4790", client.config.BaseURL)
	assert.Same(t, http.DefaultClient, client.client)

	customConfig := &Config{
		BaseURL:    "http://example.com",
		Timeout:    5 * time.Second,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
	client = NewClient(customConfig)
	assert.Equal(t, "http://example.com", client.config.BaseURL)
	assert.Equal(t, 5*time.Second, client.config.Timeout)
	assert.Same(t, customConfig.HTTPClient, client.client)
}

func TestCompile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/compile", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req CompileRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		if req.Source == "bad" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"ok":         false,
				"error":      "1:1 - cannot parse tokens of type identifier",
				"error_code": "unparsable_primary",
				"line":       1,
				"column":     1,
			})
			return
		}
		json.NewEncoder(w).Encode(CompileResponse{Ok: true, ID: "abc", Output: "(define (main))", Function: "main"})
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL, Timeout: time.Second})

	resp, err := client.Compile(context.Background(), &CompileRequest{Source: "int main() {}", Name: "main.c"})
	require.NoError(t, err)
	assert.True(t, resp.Ok)
	assert.Equal(t, "main", resp.Function)
	assert.Equal(t, "(define (main))", resp.Output)

	_, err = client.Compile(context.Background(), &CompileRequest{Source: "bad"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "unparsable_primary", apiErr.Code)
	assert.Equal(t, 1, apiErr.Line)
	assert.Equal(t, 1, apiErr.Column)
	assert.Contains(t, apiErr.Error(), "[unparsable_primary]")
}

func TestCompileValidation(t *testing.T) {
	client := NewClient(&Config{BaseURL: "http://invalid"})

	_, err := client.Compile(context.Background(), nil)
	assert.Error(t, err)

	_, err = client.Compile(context.Background(), &CompileRequest{})
	assert.Error(t, err)

	_, err = client.GetCompilation(context.Background(), "")
	assert.Error(t, err)
}

func TestListAndGetCompilations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/compilations":
			assert.Equal(t, "http", r.URL.Query().Get("origin"))
			assert.Equal(t, "false", r.URL.Query().Get("success"))
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			json.NewEncoder(w).Encode(ListCompilationsResponse{
				Compilations: []Compilation{{ID: "1", ErrorCode: "unexpected_eof"}},
				Total:        12,
			})
		case "/compilations/1":
			json.NewEncoder(w).Encode(Compilation{ID: "1", Function: "main", Success: true})
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("not json"))
		}
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	ctx := context.Background()

	failed := false
	list, err := client.ListCompilations(ctx, &ListOptions{Origin: "http", Success: &failed, Limit: 5})
	require.NoError(t, err)
	assert.EqualValues(t, 12, list.Total)
	require.Len(t, list.Compilations, 1)
	assert.Equal(t, "unexpected_eof", list.Compilations[0].ErrorCode)

	one, err := client.GetCompilation(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "main", one.Function)

	_, err = client.GetCompilation(ctx, "2")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "request failed with status code 404 (Status: 404)", apiErr.Error())
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/healthz", r.URL.Path)
		w.Write([]byte(`{"status":"healthy"}`))
	}))
	defer server.Close()

	assert.NoError(t, NewClient(&Config{BaseURL: server.URL}).Health(context.Background()))
}
