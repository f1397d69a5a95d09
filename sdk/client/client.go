package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Config represents the configuration for the compile service client
type Config struct {
	// BaseURL is the base URL of the compile service
	BaseURL string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:4790",
		HTTPClient: http.DefaultClient,
		Timeout:    10 * time.Second,
	}
}

// Client is the compile service client
type Client struct {
	config *Config
	client *http.Client
}

// NewClient creates a new client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		config: config,
		client: client,
	}
}

// CompileRequest represents a compile request
type CompileRequest struct {
	Source string `json:"source"`
	Name   string `json:"name,omitempty"`
}

// CompileResponse represents a successful compile
type CompileResponse struct {
	Ok         bool   `json:"ok"`
	ID         string `json:"id"`
	Output     string `json:"output"`
	Function   string `json:"function"`
	Statements int    `json:"statements"`
	ArenaUsed  int    `json:"arena_used"`
}

// Compile sends source to the service and returns the compiled program.
// Parse failures come back as an *APIError carrying the position.
func (c *Client) Compile(ctx context.Context, req *CompileRequest) (*CompileResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Source == "" {
		return nil, errors.New("source is required")
	}

	var resp CompileResponse
	if err := c.do(ctx, http.MethodPost, c.config.BaseURL+"/compile", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Compilation is one entry of the service's compile history
type Compilation struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Origin       string    `json:"origin"`
	SourceName   string    `json:"source_name"`
	SourceBytes  int       `json:"source_bytes"`
	Success      bool      `json:"success"`
	Function     string    `json:"function,omitempty"`
	Statements   int       `json:"statements"`
	OutputBytes  int       `json:"output_bytes"`
	ErrorCode    string    `json:"error_code,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
	Line         int       `json:"line,omitempty"`
	Column       int       `json:"column,omitempty"`
	DurationUS   int64     `json:"duration_us"`
}

// ListOptions filters ListCompilations
type ListOptions struct {
	Origin   string
	Function string
	Success  *bool
	Limit    int
	Offset   int
}

// ListCompilationsResponse represents a page of compile history
type ListCompilationsResponse struct {
	Compilations []Compilation `json:"compilations"`
	Total        int64         `json:"total"`
}

// ListCompilations retrieves compile history, newest first
func (c *Client) ListCompilations(ctx context.Context, opts *ListOptions) (*ListCompilationsResponse, error) {
	q := url.Values{}
	if opts != nil {
		if opts.Origin != "" {
			q.Set("origin", opts.Origin)
		}
		if opts.Function != "" {
			q.Set("function", opts.Function)
		}
		if opts.Success != nil {
			q.Set("success", strconv.FormatBool(*opts.Success))
		}
		if opts.Limit > 0 {
			q.Set("limit", strconv.Itoa(opts.Limit))
		}
		if opts.Offset > 0 {
			q.Set("offset", strconv.Itoa(opts.Offset))
		}
	}

	endpoint := c.config.BaseURL + "/compilations"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var resp ListCompilationsResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCompilation retrieves one compile history entry
func (c *Client) GetCompilation(ctx context.Context, id string) (*Compilation, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}

	var resp Compilation
	if err := c.do(ctx, http.MethodGet, c.config.BaseURL+"/compilations/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health checks that the service is up
func (c *Client) Health(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	return c.do(ctx, http.MethodGet, c.config.BaseURL+"/healthz", nil, &resp)
}

// APIError is a non-2xx response from the service
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"error_code,omitempty"`
	Message    string `json:"error"`
	Line       int    `json:"line,omitempty"`
	Column     int    `json:"column,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s (Status: %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s (Status: %d)", e.Message, e.StatusCode)
}

// do sends a request with an optional JSON body and decodes the JSON response into resp
func (c *Client) do(ctx context.Context, method, endpoint string, req interface{}, resp interface{}) error {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	var body io.Reader
	if req != nil {
		reqBody, err := json.Marshal(req)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(reqBody)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		var apiErr APIError
		if err := json.NewDecoder(httpResp.Body).Decode(&apiErr); err != nil {
			return &APIError{
				StatusCode: httpResp.StatusCode,
				Message:    fmt.Sprintf("request failed with status code %d", httpResp.StatusCode),
			}
		}

		apiErr.StatusCode = httpResp.StatusCode
		return &apiErr
	}

	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
