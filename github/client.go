package github

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmgilman/ghrest/errors"
	"github.com/jmgilman/ghrest/github/params"
)

// Client provides typed access to GitHub REST resources.
// It serves as the main entry point; each resource group is a service field.
//
// Example usage:
//
//	// Create provider
//	provider, err := sdk.NewSDKProvider(sdk.WithToken("ghp_..."))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create GitHub client
//	client := github.NewClient(provider)
//
//	// Fetch a repository as a typed entity
//	res, err := client.Repositories.Get(ctx, "octocat", "hello-world", github.FormatTyped)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Typed().FullName())
type Client struct {
	provider Provider
	logger   *slog.Logger

	Issues       *IssuesService
	Pages        *PagesService
	Projects     *ProjectsService
	Teams        *TeamsService
	Repositories *RepositoriesService
}

type service struct {
	client *Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the logger used for request tracing. Requests are logged
// at Debug and failures at Warn. The default discards everything.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a new GitHub client with the specified provider.
func NewClient(provider Provider, opts ...ClientOption) *Client {
	c := &Client{
		provider: provider,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	common := service{client: c}
	c.Issues = (*IssuesService)(&common)
	c.Pages = (*PagesService)(&common)
	c.Projects = (*ProjectsService)(&common)
	c.Teams = (*TeamsService)(&common)
	c.Repositories = (*RepositoriesService)(&common)
	return c
}

// Provider returns the underlying Provider.
// This is an escape hatch that allows direct access to the provider
// for endpoints not covered by the services.
func (c *Client) Provider() Provider {
	return c.provider
}

// newRequest assembles a Request. Either params value may be nil.
func newRequest(method, path string, query, body *params.Params) (*Request, error) {
	req := &Request{
		Method: method,
		Path:   path,
		Query:  query.QueryString(),
	}
	if body != nil {
		data, err := body.Body()
		if err != nil {
			return nil, err
		}
		req.Body = data
	}
	return req, nil
}

// do sends req through the provider and logs the outcome.
func (c *Client) do(ctx context.Context, req *Request, format Format) (*Response, error) {
	start := time.Now()
	resp, err := c.provider.Do(ctx, req)
	elapsed := time.Since(start)

	if err != nil {
		c.logger.WarnContext(ctx, "github request failed",
			"method", req.Method,
			"path", req.Path,
			"duration", elapsed,
			"code", errors.GetCode(err),
			"error", err,
		)
		return nil, err
	}

	c.logger.DebugContext(ctx, "github request",
		"method", req.Method,
		"path", req.Path,
		"status", resp.StatusCode,
		"duration", elapsed,
		"format", format.String(),
	)
	return resp, nil
}

// doNoContent sends req to an endpoint that answers 204 on success.
func (c *Client) doNoContent(ctx context.Context, req *Request) error {
	resp, err := c.do(ctx, req, FormatText)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		err := newUnexpectedStatusError(req, http.StatusNoContent, resp.StatusCode)
		c.logger.WarnContext(ctx, "github request returned unexpected status",
			"method", req.Method,
			"path", req.Path,
			"status", resp.StatusCode,
		)
		return err
	}
	return nil
}

func (c *Client) logDecodeFailure(ctx context.Context, req *Request, err error) {
	c.logger.WarnContext(ctx, "github response could not be decoded",
		"method", req.Method,
		"path", req.Path,
		"error", err,
	)
}

// mustFormat panics on a Format outside the declared set, before any request
// is sent.
func mustFormat(f Format) {
	switch f {
	case FormatTyped, FormatJSON, FormatText:
		return
	}
	panic("github: unknown format " + f.String())
}

func fetch[T any](ctx context.Context, c *Client, req *Request, f Format, decode DecodeFunc[T]) (*Result[T], error) {
	mustFormat(f)
	resp, err := c.do(ctx, req, f)
	if err != nil {
		return nil, err
	}
	res, err := Materialize(resp.Body, f, decode)
	if err != nil {
		c.logDecodeFailure(ctx, req, err)
		return nil, err
	}
	return res, nil
}

func fetchList[T any](ctx context.Context, c *Client, req *Request, f Format, decode DecodeFunc[T]) (*Result[[]T], error) {
	mustFormat(f)
	resp, err := c.do(ctx, req, f)
	if err != nil {
		return nil, err
	}
	res, err := MaterializeList(resp.Body, f, decode)
	if err != nil {
		c.logDecodeFailure(ctx, req, err)
		return nil, err
	}
	return res, nil
}

func fetchCollection[T any](
	ctx context.Context,
	c *Client,
	req *Request,
	f Format,
	countKey, itemsKey string,
	decode DecodeFunc[T],
) (*Result[*Collection[T]], error) {
	mustFormat(f)
	resp, err := c.do(ctx, req, f)
	if err != nil {
		return nil, err
	}
	res, err := MaterializeCollection(resp.Body, f, countKey, itemsKey, decode)
	if err != nil {
		c.logDecodeFailure(ctx, req, err)
		return nil, err
	}
	return res, nil
}
