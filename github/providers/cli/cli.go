//nolint:contextcheck // Context is properly passed via CommandWrapper.WithContext() but linter cannot verify
package cli

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/jmgilman/ghrest/errors"
	"github.com/jmgilman/ghrest/exec"
	github "github.com/jmgilman/ghrest/github"
)

// Option configures the CLI provider.
type Option func(*CLIProvider) error

// CLIProvider implements github.Provider using the gh CLI.
//
// Every request runs "gh api" with --include, so the status line and headers
// precede the body on stdout. The body is returned as is.
type CLIProvider struct {
	wrapper  *exec.CommandWrapper
	hostname string
	logger   *slog.Logger
}

// NewCLIProvider creates a provider using the gh CLI.
// Inherits authentication from gh CLI configuration.
// Uses the workspace exec module for command execution.
//
// Example:
//
//	provider, err := cli.NewCLIProvider()
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewCLIProvider(opts ...Option) (*CLIProvider, error) {
	// Default executor
	executor := exec.New(exec.WithInheritEnv(), exec.WithDisableColors())

	provider := &CLIProvider{
		wrapper: exec.NewWrapper(executor, "gh"),
		logger:  slog.New(slog.DiscardHandler),
	}

	// Apply options (can override the wrapper)
	for _, opt := range opts {
		if err := opt(provider); err != nil {
			return nil, err
		}
	}

	// Verify gh is installed and authenticated
	args := []string{"auth", "status"}
	if provider.hostname != "" {
		args = append(args, "--hostname", provider.hostname)
	}
	result, err := provider.wrapper.Clone().Run(args...)
	if err != nil {
		return nil, wrapAuthError(err, result)
	}

	return provider, nil
}

// WithExecutor sets a custom executor for the CLI provider.
// This is primarily useful for testing with a mock executor.
func WithExecutor(executor exec.Executor) Option {
	return func(p *CLIProvider) error {
		if executor == nil {
			err := errors.New(errors.CodeInvalidInput, "executor cannot be nil")
			return errors.WithContext(err, "field", "executor")
		}
		p.wrapper = exec.NewWrapper(executor, "gh")
		return nil
	}
}

// WithHostname targets a GitHub Enterprise Server host that gh is logged
// in to.
func WithHostname(hostname string) Option {
	return func(p *CLIProvider) error {
		if hostname == "" {
			err := errors.New(errors.CodeInvalidInput, "hostname cannot be empty")
			return errors.WithContext(err, "field", "hostname")
		}
		p.hostname = hostname
		return nil
	}
}

// WithLogger sets the logger for failed gh invocations.
func WithLogger(logger *slog.Logger) Option {
	return func(p *CLIProvider) error {
		if logger == nil {
			err := errors.New(errors.CodeInvalidInput, "logger cannot be nil")
			return errors.WithContext(err, "field", "logger")
		}
		p.logger = logger
		return nil
	}
}

// Do runs req through "gh api" and returns the raw response.
func (c *CLIProvider) Do(ctx context.Context, req *github.Request) (*github.Response, error) {
	args := []string{"api", req.URL(), "--method", req.Method, "--include"}
	if c.hostname != "" {
		args = append(args, "--hostname", c.hostname)
	}

	executor := c.wrapper.Clone().WithContext(ctx)
	if req.Body != nil {
		args = append(args, "--input", "-")
		executor = executor.WithStdin(bytes.NewReader(req.Body))
	}

	result, runErr := executor.Run(args...)

	var status int
	var body []byte
	parsed := false
	if result != nil {
		status, body, parsed = parseIncluded(result.Stdout)
	}

	switch {
	case parsed && status >= http.StatusBadRequest:
		if runErr == nil {
			runErr = errors.Newf(errors.CodeExecutionFailed, "gh api returned status %d", status)
		}
		err := withStderr(github.WrapHTTPError(runErr, status, "github request failed"), result)
		c.logFailure(ctx, req, err)
		return nil, err
	case runErr != nil:
		err := c.wrapCLIError(runErr, result, "gh api failed")
		c.logFailure(ctx, req, err)
		return nil, err
	case !parsed:
		err := errors.New(errors.CodeExecutionFailed, "gh api output has no status line")
		return nil, errors.WithContext(err, "path", req.Path)
	}

	return &github.Response{StatusCode: status, Body: body}, nil
}

func (c *CLIProvider) logFailure(ctx context.Context, req *github.Request, err error) {
	c.logger.WarnContext(ctx, "gh api call failed",
		"method", req.Method,
		"path", req.Path,
		"code", errors.GetCode(err),
	)
}

// parseIncluded splits "gh api --include" output into the status code and
// the body. ok is false when the output does not start with a status line.
func parseIncluded(out string) (status int, body []byte, ok bool) {
	if !strings.HasPrefix(out, "HTTP/") {
		return 0, nil, false
	}

	head, rest := out, ""
	for _, sep := range []string{"\r\n\r\n", "\n\n"} {
		if i := strings.Index(out, sep); i >= 0 {
			head, rest = out[:i], out[i+len(sep):]
			break
		}
	}

	statusLine, _, _ := strings.Cut(head, "\n")
	fields := strings.Fields(statusLine)
	if len(fields) < 2 {
		return 0, nil, false
	}
	status, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, nil, false
	}

	if rest != "" {
		body = []byte(rest)
	}
	return status, body, true
}

// getErrorCodeFromResult determines the error code based on the result.
func (c *CLIProvider) getErrorCodeFromResult(result *exec.Result) errors.ErrorCode {
	switch result.ExitCode {
	case 2:
		return errors.CodeUnauthorized
	case 4:
		return errors.CodeNotFound
	}

	// Check stderr for specific error patterns
	switch stderr := result.Stderr; {
	case contains(stderr, "not found", "could not resolve", "no such"):
		return errors.CodeNotFound
	case contains(stderr, "authentication", "not logged in", "unauthorized"):
		return errors.CodeUnauthorized
	case contains(stderr, "forbidden", "permission denied"):
		return errors.CodeForbidden
	case contains(stderr, "rate limit"):
		return errors.CodeRateLimit
	case contains(stderr, "invalid", "malformed", "bad request"):
		return errors.CodeInvalidInput
	case contains(stderr, "conflict", "already exists"):
		return errors.CodeConflict
	case contains(stderr, "timeout", "timed out"):
		return errors.CodeTimeout
	case contains(stderr, "network", "connection"):
		return errors.CodeNetwork
	}
	return errors.CodeExecutionFailed
}

// wrapCLIError wraps CLI execution errors with appropriate error types.
func (c *CLIProvider) wrapCLIError(err error, result *exec.Result, message string) error {
	if err == nil {
		return nil
	}

	// Default to execution failed
	code := errors.CodeExecutionFailed

	// Map exit codes to error types
	if result != nil {
		code = c.getErrorCodeFromResult(result)
	}

	return withStderr(errors.Wrap(err, code, message), result)
}

// withStderr includes stderr in error details if available.
func withStderr(err error, result *exec.Result) error {
	if result == nil || result.Stderr == "" {
		return err
	}
	wrappedErr := errors.WithContext(err, "stderr", strings.TrimSpace(result.Stderr))
	return errors.WithContext(wrappedErr, "exit_code", result.ExitCode)
}

// contains checks if any of the patterns exist in the text (case-insensitive).
func contains(text string, patterns ...string) bool {
	lowText := strings.ToLower(text)
	for _, pattern := range patterns {
		if strings.Contains(lowText, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

// wrapAuthError wraps authentication errors from gh CLI.
func wrapAuthError(err error, result *exec.Result) error {
	authErr := errors.Wrap(err, errors.CodeUnauthorized, "gh CLI not authenticated")
	authErr = errors.WithContext(authErr, "hint", "Run 'gh auth login' to authenticate")
	if result != nil && result.Stderr != "" {
		authErr = errors.WithContext(authErr, "stderr", result.Stderr)
	}
	return authErr
}
