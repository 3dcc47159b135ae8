package driftmail

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/driftmail/client-go/internal/api"
)

// Account address synthesis. The local part keeps a recognizable prefix
// ahead of the random hex so generated addresses are easy to spot in
// upstream dashboards.
const (
	localPartPrefix  = "user"
	localPartRandLen = 8
)

// Client is the entry point for provisioning and reading disposable
// mailboxes. A Client is safe for concurrent use; each Account carries
// its own credential.
type Client struct {
	apiClient *api.Client
}

// New creates a new client. Without options it talks to the public
// mail.tm API.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.timeout}
	}

	retry := api.NoRetry()
	if cfg.retries > 0 {
		retry = api.DefaultRetryConfig()
		retry.MaxRetries = cfg.retries
		if cfg.retryOn != nil {
			codes := make(map[int]struct{}, len(cfg.retryOn))
			for _, code := range cfg.retryOn {
				codes[code] = struct{}{}
			}
			retry.RetryableOn = func(statusCode int) bool {
				_, ok := codes[statusCode]
				return ok
			}
		}
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		HTTPClient: httpClient,
		Retry:      retry,
	})
	if err != nil {
		return nil, err
	}

	return &Client{apiClient: apiClient}, nil
}

// CreateAccount provisions a new disposable mailbox: it picks an active
// domain, registers a random address/password pair, and exchanges it for
// a bearer token. The four steps are atomic from the caller's view; any
// failure aborts the whole operation and no partial credential is
// returned. CreateAccount does not retry.
func (c *Client) CreateAccount(ctx context.Context) (*Account, error) {
	domains, err := c.apiClient.GetDomains(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDomainsAvailable, wrapError(err))
	}

	domain := pickDomain(domains)
	if domain == "" {
		return nil, ErrNoDomainsAvailable
	}

	address := fmt.Sprintf("%s%s@%s", localPartPrefix, randomHex(localPartRandLen), domain)
	password := randomHex(32)

	if _, err := c.apiClient.CreateAccount(ctx, address, password); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAccountCreationFailed, wrapError(err))
	}

	token, err := c.apiClient.CreateToken(ctx, address, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoginFailed, wrapError(err))
	}
	if token == "" {
		return nil, fmt.Errorf("%w: token response contained no token", ErrLoginFailed)
	}

	return &Account{
		credential: Credential{
			Address:  address,
			Password: password,
			Token:    token,
		},
		client: c,
	}, nil
}

// AccountFromCredential binds a previously stored credential to this
// client, typically after loading it from a session store. The token is
// used as-is; if it has expired upstream, subsequent calls fail with
// ErrUnauthorized.
func (c *Client) AccountFromCredential(cred Credential) *Account {
	return &Account{credential: cred, client: c}
}

// pickDomain returns the first active domain, or "" when none is usable.
func pickDomain(domains []api.Domain) string {
	for _, d := range domains {
		if d.IsActive {
			return d.Domain
		}
	}
	return ""
}

// randomHex returns n hex characters from a random UUID. Collision
// resistance is all that is required here; these values are not
// security-sensitive secrets.
func randomHex(n int) string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	for len(s) < n {
		s += strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	return s[:n]
}
