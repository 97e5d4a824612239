package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "http://ubaya.cloud/react/160422148/uas"
	resultSuccess  = "success"
	bodySnippetMax = 8 << 10
)

// Client wraps HTTP access to the booking backend. Every operation is a
// single request/response: errors are terminal for the current action and
// the caller must re-trigger manually.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// APIError is returned when the backend responds with a non-2xx status.
type APIError struct {
	StatusCode int
	Status     string
	Script     string
	Body       string
}

func (e *APIError) Error() string {
	if e == nil {
		return "api error"
	}
	return fmt.Sprintf("api error: %s: %s", e.Status, e.Body)
}

// DomainError is returned when the backend answered 2xx but flagged the
// operation as failed; Message carries the server-provided text.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	if e == nil || strings.TrimSpace(e.Message) == "" {
		return "request rejected by server"
	}
	return e.Message
}

// NetworkError wraps a transport failure (connection refused, DNS, ...).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	if e == nil || e.Err == nil {
		return "failed to connect to server"
	}
	return fmt.Sprintf("failed to connect to server: %s", e.Err.Error())
}

func (e *NetworkError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsDomainError reports whether the server rejected the operation at the
// application level.
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// IsNetworkError reports whether the request never reached the server.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// NewClient creates a new API client. If httpClient is nil, a default
// client is used; if baseURL is empty, the production endpoint is used.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

type resultEnvelope struct {
	Result  string `json:"result"`
	Message string `json:"message"`
}

// getData performs a GET against a backend script and decodes the
// `{"data": ...}` envelope into out. A missing or null data field leaves
// out untouched: the backend omits it for empty result sets.
func (c *Client) getData(ctx context.Context, script string, query url.Values, out any) error {
	endpoint := c.baseURL + "/" + script
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req, script)
	if err != nil {
		return err
	}

	var envelope dataEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("decode response from %s: %w", script, err)
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode response from %s: %w", script, err)
	}
	return nil
}

// postForm performs a form-urlencoded POST and checks the
// `{"result": "success", ...}` envelope. A result other than "success"
// becomes a DomainError carrying the server message. When out is non-nil
// the full body is decoded into it as well, for envelopes that carry
// extra fields next to result (login, register).
func (c *Client) postForm(ctx context.Context, script string, form url.Values, out any) error {
	endpoint := c.baseURL + "/" + script

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req, script)
	if err != nil {
		return err
	}

	var envelope resultEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("decode response from %s: %w", script, err)
	}
	if envelope.Result != resultSuccess {
		return &DomainError{Message: envelope.Message}
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response from %s: %w", script, err)
		}
	}
	return nil
}

func (c *Client) do(req *http.Request, script string) ([]byte, error) {
	res, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, &NetworkError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, bodySnippetMax))
		return nil, &APIError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Script:     script,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", script, err)
	}
	return body, nil
}
