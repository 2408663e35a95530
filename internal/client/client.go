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
	"strings"
	"time"

	"notes/internal/config"
	"notes/internal/logging"
	"notes/internal/types"
)

const (
	defaultTimeout  = 10 * time.Second
	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 4 << 10
)

// Client talks to the notes REST API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

func WithLogger(logger logging.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = config.DefaultAPIBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig builds a client for the configured API.
func NewFromConfig(cfg config.Config, logger logging.Logger) *Client {
	return New(cfg.APIBaseURL(), WithTimeout(cfg.APITimeout()), WithLogger(logger))
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) ListNotes(ctx context.Context) ([]types.Note, error) {
	var notes []types.Note
	if err := c.doJSON(ctx, http.MethodGet, "/notes", nil, &notes); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []types.Note{}
	}
	return notes, nil
}

func (c *Client) GetNote(ctx context.Context, id types.NoteID) (*types.Note, error) {
	path, err := notePath(id)
	if err != nil {
		return nil, err
	}
	var note types.Note
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) CreateNote(ctx context.Context, input types.NoteInput) (*types.Note, error) {
	var note types.Note
	if err := c.doJSON(ctx, http.MethodPost, "/notes", input, &note); err != nil {
		return nil, err
	}
	if note.ID.IsZero() {
		return nil, errors.New("create note: response is missing an id")
	}
	return &note, nil
}

func (c *Client) UpdateNote(ctx context.Context, id types.NoteID, input types.NoteInput) (*types.Note, error) {
	path, err := notePath(id)
	if err != nil {
		return nil, err
	}
	var note types.Note
	if err := c.doJSON(ctx, http.MethodPut, path, input, &note); err != nil {
		return nil, err
	}
	if note.ID.IsZero() {
		note.ID = id
	}
	return &note, nil
}

func (c *Client) DeleteNote(ctx context.Context, id types.NoteID) error {
	path, err := notePath(id)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

func notePath(id types.NoteID) (string, error) {
	if id.IsZero() {
		return "", errors.New("note id is required")
	}
	return "/notes/" + url.PathEscape(strings.TrimSpace(id.String())), nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	requestID := logging.NewRequestID()
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.logger.With(
		logging.F("request_id", requestID),
		logging.F("method", method),
		logging.F("path", path),
	)
	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("api request failed", logging.Err(err))
		return err
	}
	defer resp.Body.Close()
	log.Debug("api request", logging.F("status", resp.StatusCode), logging.F("elapsed", time.Since(started)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeAPIError(resp)
		log.Warn("api error", logging.F("status", apiErr.StatusCode), logging.F("detail", apiErr.Message))
		return apiErr
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) *APIError {
	type errorPayload struct {
		Error string `json:"error"`
	}
	var payload errorPayload
	_ = json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&payload)
	if strings.TrimSpace(payload.Error) != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
}

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// AsAPIError unwraps err to an *APIError when there is one.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

func IsNotFound(err error) bool {
	apiErr := AsAPIError(err)
	return apiErr != nil && apiErr.StatusCode == http.StatusNotFound
}
