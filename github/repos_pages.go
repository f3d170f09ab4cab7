package github

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmgilman/ghrest/github/params"
)

// PagesService handles GitHub Pages sites, builds and deployments.
//
// GitHub API docs: https://docs.github.com/rest/pages/pages
type PagesService service

func (s *PagesService) request(method, owner, repo string, query, body *params.Params, rest ...string) (*Request, error) {
	if err := required("owner", owner, "repo", repo); err != nil {
		return nil, err
	}
	return newRequest(method, repoPath(owner, repo, append([]string{"pages"}, rest...)...), query, body)
}

// GetSite fetches the Pages configuration of a repository.
func (s *PagesService) GetSite(ctx context.Context, owner, repo string, format Format) (*Result[*PagesSite], error) {
	req, err := s.request(http.MethodGet, owner, repo, nil, nil)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.client, req, format, DecodePagesSite)
}

// CreateSite enables Pages for a repository.
func (s *PagesService) CreateSite(
	ctx context.Context,
	owner, repo string,
	opts CreatePagesOptions,
	format Format,
) (*Result[*PagesSite], error) {
	if opts.BuildType != PagesBuildWorkflow && opts.Source == nil {
		return nil, newInvalidInputError("source", "required unless build type is workflow")
	}
	req, err := s.request(http.MethodPost, owner, repo, nil, opts.body())
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.client, req, format, DecodePagesSite)
}

// UpdateSite changes the Pages configuration. GitHub answers 204 with no
// body.
func (s *PagesService) UpdateSite(ctx context.Context, owner, repo string, opts UpdatePagesOptions) error {
	req, err := s.request(http.MethodPut, owner, repo, nil, opts.body())
	if err != nil {
		return err
	}
	return s.client.doNoContent(ctx, req)
}

// DeleteSite disables Pages for a repository.
func (s *PagesService) DeleteSite(ctx context.Context, owner, repo string) error {
	req, err := s.request(http.MethodDelete, owner, repo, nil, nil)
	if err != nil {
		return err
	}
	return s.client.doNoContent(ctx, req)
}

// ListBuilds lists the builds of a legacy Pages site, newest first.
func (s *PagesService) ListBuilds(
	ctx context.Context,
	owner, repo string,
	opts *ListOptions,
	format Format,
) (*Result[[]*PagesBuild], error) {
	req, err := s.request(http.MethodGet, owner, repo, opts.query(), nil, "builds")
	if err != nil {
		return nil, err
	}
	return fetchList(ctx, s.client, req, format, DecodePagesBuild)
}

// RequestBuild queues a build of the latest revision. The returned build
// only carries URL and Status.
func (s *PagesService) RequestBuild(ctx context.Context, owner, repo string, format Format) (*Result[*PagesBuild], error) {
	req, err := s.request(http.MethodPost, owner, repo, nil, nil, "builds")
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.client, req, format, DecodePagesBuild)
}

// GetLatestBuild fetches the most recent build.
func (s *PagesService) GetLatestBuild(ctx context.Context, owner, repo string, format Format) (*Result[*PagesBuild], error) {
	req, err := s.request(http.MethodGet, owner, repo, nil, nil, "builds", "latest")
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.client, req, format, DecodePagesBuild)
}

// GetBuild fetches a build by id.
func (s *PagesService) GetBuild(
	ctx context.Context,
	owner, repo string,
	buildID int64,
	format Format,
) (*Result[*PagesBuild], error) {
	if err := positive("build_id", buildID); err != nil {
		return nil, err
	}
	req, err := s.request(http.MethodGet, owner, repo, nil, nil, "builds", itoa(buildID))
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.client, req, format, DecodePagesBuild)
}

// CreateDeployment deploys an uploaded artifact to a workflow-built site.
func (s *PagesService) CreateDeployment(
	ctx context.Context,
	owner, repo string,
	opts CreatePagesDeploymentOptions,
	format Format,
) (*Result[*PagesDeployment], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	req, err := s.request(http.MethodPost, owner, repo, nil, opts.body(), "deployment")
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.client, req, format, DecodePagesDeployment)
}

// GetHealthCheck fetches the DNS health of the site's custom domain.
//
// GitHub answers 202 with an empty body while the check is still running.
// That response materializes as an empty object: a health check whose
// Domain and AltDomain are nil, or "" for FormatText.
func (s *PagesService) GetHealthCheck(ctx context.Context, owner, repo string, format Format) (*Result[*PagesHealthCheck], error) {
	req, err := s.request(http.MethodGet, owner, repo, nil, nil, "health")
	if err != nil {
		return nil, err
	}

	mustFormat(format)
	resp, err := s.client.do(ctx, req, format)
	if err != nil {
		return nil, err
	}
	body := resp.Body
	if resp.StatusCode == http.StatusAccepted && len(bytes.TrimSpace(body)) == 0 && format != FormatText {
		body = []byte("{}")
	}
	res, err := Materialize(body, format, DecodePagesHealthCheck)
	if err != nil {
		s.client.logDecodeFailure(ctx, req, err)
		return nil, err
	}
	return res, nil
}
