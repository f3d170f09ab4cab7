package github

import (
	"fmt"
	"net/http"

	"github.com/jmgilman/ghrest/errors"
)

// GitHub-specific error codes (use existing codes from errors library).
// These are convenience aliases for readability in GitHub context.
const (
	// ErrCodeNotFound indicates a requested resource was not found.
	ErrCodeNotFound = errors.CodeNotFound

	// ErrCodeAuthenticationFailed indicates authentication failure.
	ErrCodeAuthenticationFailed = errors.CodeUnauthorized

	// ErrCodePermissionDenied indicates insufficient permissions.
	ErrCodePermissionDenied = errors.CodeForbidden

	// ErrCodeRateLimited indicates rate limit exceeded.
	ErrCodeRateLimited = errors.CodeRateLimit

	// ErrCodeInvalidInput indicates invalid parameters or malformed data.
	ErrCodeInvalidInput = errors.CodeInvalidInput

	// ErrCodeConflict indicates a conflict (e.g., resource already exists).
	ErrCodeConflict = errors.CodeConflict

	// ErrCodeDecodeFailed indicates a response body could not be decoded.
	ErrCodeDecodeFailed = errors.CodeDecodeFailed

	// ErrCodeNetwork indicates network-related errors.
	ErrCodeNetwork = errors.CodeNetwork

	// ErrCodeInternal indicates internal errors.
	ErrCodeInternal = errors.CodeInternal
)

// WrapHTTPError wraps an error based on HTTP status code from GitHub API.
// The status is recorded in the error context.
func WrapHTTPError(err error, statusCode int, message string) error {
	if err == nil {
		return nil
	}

	return errors.WithContext(errors.Wrap(err, StatusCode(statusCode), message), "status", statusCode)
}

// StatusCode maps an HTTP status from the GitHub API to an error code.
func StatusCode(statusCode int) errors.ErrorCode {
	switch statusCode {
	case http.StatusNotFound, http.StatusGone:
		return errors.CodeNotFound
	case http.StatusUnauthorized:
		return errors.CodeUnauthorized
	case http.StatusForbidden:
		return errors.CodeForbidden
	case http.StatusConflict:
		return errors.CodeConflict
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		return errors.CodeInvalidInput
	case http.StatusTooManyRequests:
		return errors.CodeRateLimit
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return errors.CodeTimeout
	case http.StatusServiceUnavailable:
		return errors.CodeUnavailable
	}
	if statusCode >= 500 {
		return errors.CodeNetwork
	}
	return errors.CodeInternal
}

// newInvalidInputError creates an invalid input error with context.
func newInvalidInputError(field, reason string) error {
	err := errors.New(
		errors.CodeInvalidInput,
		fmt.Sprintf("invalid %s: %s", field, reason),
	)
	err = errors.WithContext(err, "field", field)
	err = errors.WithContext(err, "reason", reason)
	return err
}

// newUnexpectedStatusError reports a success status other than the one an
// endpoint documents.
func newUnexpectedStatusError(req *Request, want, got int) error {
	err := errors.Newf(errors.CodeInternal, "%s %s: expected status %d, got %d", req.Method, req.Path, want, got)
	return errors.WithContextMap(err, map[string]interface{}{
		"status":   got,
		"expected": want,
		"path":     req.Path,
	})
}
