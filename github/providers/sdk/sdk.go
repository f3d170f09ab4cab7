// Package sdk provides a GitHub provider implementation using the go-github SDK.
//
// This package implements the github.Provider interface on top of
// github.com/google/go-github/v67. Requests are built with the SDK's
// NewRequest and sent with BareDo, so the SDK handles authentication, base
// URLs and rate limit bookkeeping while the raw response body is handed back
// to the client untouched.
package sdk

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/go-github/v67/github"
	"github.com/jmgilman/ghrest/errors"
	gh "github.com/jmgilman/ghrest/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// rateLimitBurst is the number of requests allowed back to back before the
// limiter starts spacing them out.
const rateLimitBurst = 10

// SDKProvider implements github.Provider using the go-github SDK.
type SDKProvider struct {
	client  *github.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewSDKProvider creates a provider using the GitHub SDK.
//
// Example with token authentication:
//
//	provider, err := sdk.NewSDKProvider(sdk.WithToken("ghp_..."))
//
// Example with custom client:
//
//	httpClient := &http.Client{Timeout: 30 * time.Second}
//	ghClient := github.NewClient(httpClient)
//	provider, err := sdk.NewSDKProvider(sdk.WithClient(ghClient))
//
// Example against GitHub Enterprise Server with a request budget:
//
//	provider, err := sdk.NewSDKProvider(
//	    sdk.WithToken("ghp_..."),
//	    sdk.WithEnterpriseURL("https://github.example.com/"),
//	    sdk.WithRateLimit(5000),
//	)
func NewSDKProvider(opts ...Option) (*SDKProvider, error) {
	cfg := &config{
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	client := cfg.client
	if client == nil {
		switch {
		case cfg.tokenSource != nil:
			client = github.NewClient(oauth2.NewClient(context.Background(), cfg.tokenSource))
		case cfg.token != "":
			client = github.NewClient(nil).WithAuthToken(cfg.token)
		default:
			err := errors.New(errors.CodeInvalidInput, "either token, token source or client must be provided")
			return nil, errors.WithContext(err, "field", "token or client")
		}
	}

	if cfg.enterpriseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(cfg.enterpriseURL, cfg.enterpriseURL)
		if err != nil {
			wrapped := errors.Wrap(err, errors.CodeInvalidInput, "invalid enterprise URL")
			return nil, errors.WithContext(wrapped, "field", "enterprise_url")
		}
	}

	return &SDKProvider{
		client:  client,
		limiter: cfg.limiter,
		logger:  cfg.logger,
	}, nil
}

// config holds configuration for SDKProvider.
type config struct {
	client        *github.Client
	token         string
	tokenSource   oauth2.TokenSource
	enterpriseURL string
	limiter       *rate.Limiter
	logger        *slog.Logger
}

// Option configures the SDK provider.
type Option func(*config) error

// WithToken sets the authentication token for the SDK provider.
func WithToken(token string) Option {
	return func(cfg *config) error {
		if token == "" {
			err := errors.New(errors.CodeInvalidInput, "token cannot be empty")
			return errors.WithContext(err, "field", "token")
		}
		cfg.token = token
		return nil
	}
}

// WithTokenSource authenticates with an OAuth2 token source, such as one
// produced by an app installation flow. Tokens are refreshed as needed.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(cfg *config) error {
		if ts == nil {
			err := errors.New(errors.CodeInvalidInput, "token source cannot be nil")
			return errors.WithContext(err, "field", "token_source")
		}
		cfg.tokenSource = ts
		return nil
	}
}

// WithClient sets a custom GitHub client for the SDK provider.
// This allows full control over the HTTP client configuration,
// authentication, and other advanced settings.
func WithClient(client *github.Client) Option {
	return func(cfg *config) error {
		if client == nil {
			err := errors.New(errors.CodeInvalidInput, "client cannot be nil")
			return errors.WithContext(err, "field", "client")
		}
		cfg.client = client
		return nil
	}
}

// WithEnterpriseURL points the provider at a GitHub Enterprise Server
// instance. The "api/v3/" suffix is added when missing.
func WithEnterpriseURL(baseURL string) Option {
	return func(cfg *config) error {
		if baseURL == "" {
			err := errors.New(errors.CodeInvalidInput, "enterprise URL cannot be empty")
			return errors.WithContext(err, "field", "enterprise_url")
		}
		cfg.enterpriseURL = baseURL
		return nil
	}
}

// WithRateLimit caps the provider at requestsPerHour, waiting before each
// request once the budget is spent. The limiter is shared by every caller of
// the provider.
func WithRateLimit(requestsPerHour int) Option {
	return func(cfg *config) error {
		if requestsPerHour <= 0 {
			err := errors.New(errors.CodeInvalidInput, "requests per hour must be positive")
			return errors.WithContext(err, "field", "requests_per_hour")
		}
		cfg.limiter = rate.NewLimiter(rate.Limit(float64(requestsPerHour)/time.Hour.Seconds()), rateLimitBurst)
		return nil
	}
}

// WithLogger sets the logger for transport failures.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			err := errors.New(errors.CodeInvalidInput, "logger cannot be nil")
			return errors.WithContext(err, "field", "logger")
		}
		cfg.logger = logger
		return nil
	}
}

// Do sends req to the GitHub API and returns the raw response.
func (s *SDKProvider) Do(ctx context.Context, req *gh.Request) (*gh.Response, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, s.wrapWaitError(ctx, err)
		}
	}

	// A nil json.RawMessage would still be encoded, as "null".
	var body any
	if req.Body != nil {
		body = json.RawMessage(req.Body)
	}

	httpReq, err := s.client.NewRequest(req.Method, req.URL(), body)
	if err != nil {
		wrapped := errors.Wrap(err, errors.CodeInvalidInput, "failed to build request")
		return nil, errors.WithContext(wrapped, "path", req.Path)
	}

	resp, err := s.client.BareDo(ctx, httpReq)
	if err != nil {
		var accepted *github.AcceptedError
		if errors.As(err, &accepted) {
			return &gh.Response{StatusCode: http.StatusAccepted, Body: accepted.Raw}, nil
		}
		wrapped := s.wrapError(err, resp, "github request failed")
		s.logger.WarnContext(ctx, "github api call failed",
			"method", req.Method,
			"path", req.Path,
			"code", errors.GetCode(wrapped),
		)
		return nil, wrapped
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		wrapped := errors.Wrap(err, errors.CodeNetwork, "failed to read response body")
		return nil, errors.WithContext(wrapped, "path", req.Path)
	}

	return &gh.Response{StatusCode: resp.StatusCode, Body: data}, nil
}

// wrapError wraps go-github errors with appropriate error codes.
func (s *SDKProvider) wrapError(err error, resp *github.Response, message string) error {
	if err == nil {
		return nil
	}

	// Extract status code from response
	statusCode := 0
	if resp != nil && resp.Response != nil {
		statusCode = resp.StatusCode
	}

	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		wrapped := errors.Wrap(err, errors.CodeRateLimit, message)
		if statusCode != 0 {
			wrapped = errors.WithContext(wrapped, "status", statusCode)
		}
		return wrapped
	}

	// Try to get status code from ErrorResponse
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		statusCode = ghErr.Response.StatusCode
	}

	if statusCode != 0 {
		return gh.WrapHTTPError(err, statusCode, message)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(err, errors.CodeTimeout, message)
	}

	// Fallback to network error for unknown errors
	return errors.Wrap(err, errors.CodeNetwork, message)
}

// wrapWaitError classifies a failed limiter wait. The limiter refuses early
// when the next slot lies beyond the context deadline.
func (s *SDKProvider) wrapWaitError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		code := errors.CodeNetwork
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			code = errors.CodeTimeout
		}
		return errors.Wrap(err, code, "request canceled while waiting for rate limit")
	}
	return errors.Wrap(err, errors.CodeRateLimit, "rate limit budget exhausted before deadline")
}
