package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Default client settings.
const (
	DefaultTimeout = 30 * time.Second
)

// Config configures the API client.
type Config struct {
	// BaseURL is the root of the upstream API, e.g. "https://api.mail.tm".
	BaseURL string
	// HTTPClient is the underlying HTTP client. A default with
	// DefaultTimeout is used when nil.
	HTTPClient *http.Client
	// Retry controls transport-level retries. DefaultRetryConfig is
	// used when nil.
	Retry *RetryConfig
}

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retry      *RetryConfig
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	retry := cfg.Retry
	if retry == nil {
		retry = DefaultRetryConfig()
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		retry:      retry,
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs a JSON request against the API. path must start with "/";
// pagination continuation paths returned by the server are passed through
// unchanged. token is the bearer credential, empty for unauthenticated
// endpoints. body and result may be nil.
func (c *Client) Do(ctx context.Context, method, path, token string, body, result interface{}) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	url := c.baseURL + path

	var resp *http.Response
	for attempt := 0; ; attempt++ {
		req, err := c.newRequest(ctx, method, url, token, payload)
		if err != nil {
			return err
		}

		resp, err = c.httpClient.Do(req)
		if err != nil {
			if attempt < c.retry.MaxRetries {
				if werr := c.retry.Wait(ctx, attempt); werr != nil {
					return werr
				}
				continue
			}
			return &NetworkError{Err: err, URL: url, Attempt: attempt + 1}
		}

		if c.retry.ShouldRetry(attempt, resp.StatusCode) {
			resp.Body.Close()
			if werr := c.retry.Wait(ctx, attempt); werr != nil {
				return werr
			}
			continue
		}
		break
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseErrorResponse(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, method, url, token string, payload []byte) (*http.Request, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	// The upstream reports errors either as a hydra problem document or
	// as a plain {"message": ...} object depending on the endpoint.
	var errResp struct {
		Title       string `json:"hydra:title"`
		Description string `json:"hydra:description"`
		Message     string `json:"message"`
	}

	message := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Description != "":
			message = errResp.Description
		case errResp.Message != "":
			message = errResp.Message
		case errResp.Title != "":
			message = errResp.Title
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}
