package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps err with a code and message. Returns nil if err is nil.
//
// If err already contains a PlatformError its classification is preserved,
// so a retryable failure stays retryable after being annotated.
//
// Example:
//
//	resp, err := client.BareDo(ctx, req)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeNetwork, "request failed")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		classification = platformErr.Classification()
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps err with a code and a formatted message. Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}
