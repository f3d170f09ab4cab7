package errors

import "errors"

// WithContext returns a copy of err with key set to value in its context.
// Returns nil if err is nil. A plain error is first converted into a
// PlatformError with CodeUnknown that wraps it.
//
// Example:
//
//	err := errors.New(errors.CodeDecodeFailed, "unknown enum value")
//	err = errors.WithContext(err, "field", "visibility")
func WithContext(err error, key string, value interface{}) PlatformError {
	if err == nil {
		return nil
	}

	platformErr := asPlatformError(err)

	ctx := platformErr.Context()
	if ctx == nil {
		ctx = make(map[string]interface{}, 1)
	}
	ctx[key] = value

	return &platformError{
		code:           platformErr.Code(),
		classification: platformErr.Classification(),
		message:        platformErr.Message(),
		context:        ctx,
		cause:          platformErr.Unwrap(),
	}
}

// WithContextMap returns a copy of err with every entry of ctx merged into
// its context. Later keys overwrite earlier ones.
func WithContextMap(err error, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	platformErr := asPlatformError(err)

	merged := platformErr.Context()
	if merged == nil {
		merged = make(map[string]interface{}, len(ctx))
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &platformError{
		code:           platformErr.Code(),
		classification: platformErr.Classification(),
		message:        platformErr.Message(),
		context:        merged,
		cause:          platformErr.Unwrap(),
	}
}

func asPlatformError(err error) PlatformError {
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		return platformErr
	}
	return &platformError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}
