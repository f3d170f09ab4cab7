// Package errors provides the structured errors returned by ghrest.
//
// Every failure surfaced by the client carries an ErrorCode that names what
// went wrong (a resource was not found, a response could not be decoded, the
// rate limit was hit) and an ErrorClassification that tells callers whether
// retrying can help. Errors remain compatible with the standard library:
// errors.Is, errors.As and errors.Unwrap all walk the cause chain.
//
// # Creating errors
//
//	err := errors.New(errors.CodeInvalidInput, "owner is required")
//	err := errors.Newf(errors.CodeNotFound, "comment %d not found", id)
//
// # Wrapping errors
//
//	if err := json.Unmarshal(body, &v); err != nil {
//	    return errors.Wrap(err, errors.CodeDecodeFailed, "malformed response body")
//	}
//
// Wrap keeps the classification of a wrapped PlatformError, so a retryable
// network failure stays retryable after being annotated higher up the stack.
//
// # Context
//
//	err = errors.WithContext(err, "entity", "Repository")
//	err = errors.WithContext(err, "field", "visibility")
//
// # Inspecting errors
//
//	switch errors.GetCode(err) {
//	case errors.CodeNotFound:
//	    // ...
//	case errors.CodeRateLimit:
//	    // back off
//	}
//
// ToJSON renders any error as a flat ErrorResponse without exposing the
// wrapped cause chain.
package errors
