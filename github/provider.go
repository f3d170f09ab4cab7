package github

import "context"

//go:generate go run github.com/matryer/moq@latest -out mocks/provider.go -pkg mocks . Provider

// Provider performs raw GitHub REST calls.
// Implementations include the SDK provider (using go-github) and the CLI
// provider (using gh api).
//
// A provider only moves bytes: it knows nothing about entities or formats.
// Services build the Request and materialize the Response body, which keeps
// providers small and makes the client easy to test with a mock.
//
// Implementations must return a PlatformError for non-2xx responses, with
// the code derived from the status through WrapHTTPError. Transport failures
// use CodeNetwork or CodeTimeout.
//
// Example using SDK provider:
//
//	provider, err := sdk.NewSDKProvider(sdk.WithToken("ghp_..."))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := github.NewClient(provider)
//
// Example using CLI provider:
//
//	provider, err := cli.NewCLIProvider()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := github.NewClient(provider)
type Provider interface {
	// Do performs req and returns the response of a successful (2xx) call.
	Do(ctx context.Context, req *Request) (*Response, error)
}

// Request is a single REST call.
type Request struct {
	// Method is the HTTP method, such as http.MethodGet.
	Method string

	// Path is relative to the API root, without a leading slash, for example
	// "repos/octocat/hello-world/pages".
	Path string

	// Query is the encoded query string including its leading "?", or "".
	Query string

	// Body is the JSON request body, or nil for requests without one.
	Body []byte
}

// URL returns Path joined with Query.
func (r *Request) URL() string {
	return r.Path + r.Query
}

// Response is the result of a successful call.
type Response struct {
	StatusCode int
	Body       []byte
}
