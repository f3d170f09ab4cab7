package github

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/jmgilman/ghrest/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   errors.ErrorCode
	}{
		{http.StatusBadRequest, errors.CodeInvalidInput},
		{http.StatusUnauthorized, errors.CodeUnauthorized},
		{http.StatusForbidden, errors.CodeForbidden},
		{http.StatusNotFound, errors.CodeNotFound},
		{http.StatusRequestTimeout, errors.CodeTimeout},
		{http.StatusConflict, errors.CodeConflict},
		{http.StatusGone, errors.CodeNotFound},
		{http.StatusUnprocessableEntity, errors.CodeInvalidInput},
		{http.StatusTooManyRequests, errors.CodeRateLimit},
		{http.StatusInternalServerError, errors.CodeNetwork},
		{http.StatusBadGateway, errors.CodeNetwork},
		{http.StatusServiceUnavailable, errors.CodeUnavailable},
		{http.StatusGatewayTimeout, errors.CodeTimeout},
		{http.StatusTeapot, errors.CodeInternal},
		{http.StatusMovedPermanently, errors.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StatusCode(tt.status))
		})
	}
}

func TestWrapHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, WrapHTTPError(nil, http.StatusNotFound, "x"))
	})

	t.Run("code and status", func(t *testing.T) {
		t.Parallel()

		cause := stderrors.New("boom")
		err := WrapHTTPError(cause, http.StatusServiceUnavailable, "github request failed")

		var platformErr errors.PlatformError
		require.True(t, errors.As(err, &platformErr))
		assert.Equal(t, errors.CodeUnavailable, platformErr.Code())
		assert.Equal(t, http.StatusServiceUnavailable, platformErr.Context()["status"])
		assert.True(t, errors.IsRetryable(err))
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("not found is permanent", func(t *testing.T) {
		t.Parallel()

		err := WrapHTTPError(stderrors.New("boom"), http.StatusNotFound, "missing")
		assert.False(t, errors.IsRetryable(err))
	})
}

func TestRequestHelpers(t *testing.T) {
	t.Parallel()

	t.Run("segments are escaped", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "repos/a%2Fb/c%20d/pages", repoPath("a/b", "c d", "pages"))
		assert.Equal(t, "orgs/o/teams/s/memberships/u", joinPath("orgs", "o", "teams", "s", "memberships", "u"))
	})

	t.Run("required rejects blank values", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, required("owner", "o", "repo", "r"))

		err := required("owner", "o", "repo", "  ")
		require.Error(t, err)

		var platformErr errors.PlatformError
		require.True(t, errors.As(err, &platformErr))
		assert.Equal(t, errors.CodeInvalidInput, platformErr.Code())
		assert.Equal(t, "repo", platformErr.Context()["field"])
	})

	t.Run("positive", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, positive("id", 1))
		assert.Error(t, positive("id", 0))
		assert.Error(t, positive("id", -3))
	})
}
