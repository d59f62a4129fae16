// Package restclient is the JSON-over-HTTP plumbing shared by the outbound
// adapters. It turns the backends' `{"error": "..."}` bodies into
// *errs.BusinessError and everything that prevented a readable answer into
// *errs.TransportError, so adapters only deal with their DTOs.
package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"missionctl/internal/pkg/errs"
)

// DefaultTimeout bounds a single request when the caller does not choose one.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of a failed response is read looking for a message.
const maxErrorBody = 64 << 10

// maxErrorText is the longest plain-text failure body quoted in an error.
const maxErrorText = 256

// Client issues JSON requests against one base URL.
//
// Example:
//
//	c, err := restclient.New("http://localhost:5090/api", 5*time.Second, logger)
//	if err != nil {
//	    return err
//	}
//	var out statusDTO
//	err = c.Get(ctx, "package status", restclient.Path("package-status", pkg), &out)
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", fmt.Errorf("%q is not an absolute URL", baseURL))
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// BaseURL returns the normalised base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Path joins escaped segments into a request path.
//
// Example:
//
//	restclient.Path("drone-control", "D 1", "rtl") // "/drone-control/D%201/rtl"
func Path(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// Get decodes the JSON answer of GET path into out. A nil out discards the body.
func (c *Client) Get(ctx context.Context, operation string, path string, out any) error {
	return c.do(ctx, http.MethodGet, operation, path, nil, out)
}

// Post sends body as JSON and decodes the answer into out. A nil body sends
// an empty JSON object, which the backends expect on bodiless actions.
func (c *Client) Post(ctx context.Context, operation string, path string, body any, out any) error {
	if body == nil {
		body = struct{}{}
	}
	return c.do(ctx, http.MethodPost, operation, path, body, out)
}

func (c *Client) do(ctx context.Context, method string, operation string, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errs.NewTransportError(operation, fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.NewTransportError(operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewTransportError(operation, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "backend call",
		"operation", operation,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.failure(operation, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewTransportError(operation, fmt.Errorf("read response: %w", err))
	}
	if msg, ok := errorMessage(raw); ok {
		return errs.NewBusinessError(operation, msg, resp.StatusCode)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.NewTransportError(operation, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) failure(operation string, resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return errs.NewTransportError(operation, fmt.Errorf("status %d: read body: %w", resp.StatusCode, err))
	}
	if msg, ok := errorMessage(raw); ok {
		return errs.NewBusinessError(operation, msg, resp.StatusCode)
	}
	if text := strings.TrimSpace(string(raw)); text != "" && len(text) <= maxErrorText {
		return errs.NewTransportError(operation, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, text))
	}
	return errs.NewTransportError(operation, fmt.Errorf("unexpected status %d", resp.StatusCode))
}

// errorMessage extracts the backend's `{"error": "..."}` text. Bodies that are
// not JSON objects, or whose error field is empty, carry no message.
func errorMessage(raw []byte) (string, bool) {
	var body struct {
		Error *string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", false
	}
	if body.Error == nil || strings.TrimSpace(*body.Error) == "" {
		return "", false
	}
	return *body.Error, true
}
