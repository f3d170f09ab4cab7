// Package exec runs local commands behind a small, mockable interface.
//
// It exists so the gh CLI provider can shell out to `gh api` while tests swap
// in a mock executor. The concrete Command wraps os/exec; CommandWrapper
// prepends a fixed binary name to every Run call.
//
//	gh := exec.NewWrapper(exec.New(exec.WithInheritEnv()), "gh")
//	result, err := gh.Clone().
//		WithContext(ctx).
//		WithStdin(strings.NewReader(`{"body":"hi"}`)).
//		Run("api", "repos/octocat/hello/issues/1/comments", "--input", "-")
//
// Settings applied through Option values at construction are global; settings
// applied through the With* methods are local to the next Run and are reset
// afterwards. Use Clone to derive an independent executor per call when the
// same executor is shared between goroutines.
package exec
