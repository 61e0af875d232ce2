package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ytget/callshot/internal/config"
)

// Endpoint paths
const (
	PathHealth    = "/health"
	PathStyles    = "/styles"
	PathCallTypes = "/call-types"
	PathGenerate  = "/generate"

	HeaderRequestID = "X-Request-ID"
	maxErrorBody    = 4096
)

// ErrEmptyPrompt is returned by GenerateImage for a blank prompt
var ErrEmptyPrompt = errors.New("prompt is required")

// StatusError is returned for non-2xx responses
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Client talks to the image-generation service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for cfg. The base URL is fixed for the client's lifetime.
func NewClient(cfg config.APIConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultAPITimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the base URL requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HealthCheck calls GET /health
func (c *Client) HealthCheck(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, PathHealth, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetStyles calls GET /styles
func (c *Client) GetStyles(ctx context.Context) (*StylesResponse, error) {
	var out StylesResponse
	if err := c.do(ctx, http.MethodGet, PathStyles, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCallTypes calls GET /call-types
func (c *Client) GetCallTypes(ctx context.Context) (*CallTypesResponse, error) {
	var out CallTypesResponse
	if err := c.do(ctx, http.MethodGet, PathCallTypes, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateImage calls POST /generate
func (c *Client) GenerateImage(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrEmptyPrompt
	}
	var out GenerateResponse
	if err := c.do(ctx, http.MethodPost, PathGenerate, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
