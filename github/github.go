package github

import (
	"net/url"
	"strconv"
	"strings"
)

// joinPath builds a relative API path, escaping every segment.
func joinPath(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return strings.Join(escaped, "/")
}

// repoPath builds a path under repos/{owner}/{repo}.
func repoPath(owner, repo string, rest ...string) string {
	return joinPath(append([]string{"repos", owner, repo}, rest...)...)
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

// required returns an INVALID_INPUT error for the first empty value.
// Arguments are name, value pairs.
func required(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return newInvalidInputError(pairs[i], "cannot be empty")
		}
	}
	return nil
}

func positive(name string, n int64) error {
	if n <= 0 {
		return newInvalidInputError(name, "must be positive")
	}
	return nil
}
