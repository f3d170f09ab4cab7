package github

import (
	"context"
	"net/http"

	"github.com/jmgilman/ghrest/github/params"
)

// RepositoriesService handles repositories and their tags, languages and
// CODEOWNERS diagnostics.
//
// GitHub API docs: https://docs.github.com/rest/repos
type RepositoriesService service

// Get fetches a repository.
func (s *RepositoriesService) Get(ctx context.Context, owner, repo string, format Format) (*Result[*Repository], error) {
	if err := required("owner", owner, "repo", repo); err != nil {
		return nil, err
	}
	req, err := newRequest(http.MethodGet, repoPath(owner, repo), nil, nil)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.client, req, format, DecodeRepository)
}

// ListOrgRepos lists the repositories of an organization.
func (s *RepositoriesService) ListOrgRepos(
	ctx context.Context,
	org string,
	opts *ListOrgReposOptions,
	format Format,
) (*Result[[]*Repository], error) {
	if err := required("org", org); err != nil {
		return nil, err
	}
	req, err := newRequest(http.MethodGet, joinPath("orgs", org, "repos"), opts.query(), nil)
	if err != nil {
		return nil, err
	}
	return fetchList(ctx, s.client, req, format, DecodeRepository)
}

// ListLanguages fetches the byte count of each language in a repository.
func (s *RepositoriesService) ListLanguages(
	ctx context.Context,
	owner, repo string,
	format Format,
) (*Result[*RepositoryLanguages], error) {
	if err := required("owner", owner, "repo", repo); err != nil {
		return nil, err
	}
	req, err := newRequest(http.MethodGet, repoPath(owner, repo, "languages"), nil, nil)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.client, req, format, DecodeRepositoryLanguages)
}

// ListTags lists the tags of a repository.
func (s *RepositoriesService) ListTags(
	ctx context.Context,
	owner, repo string,
	opts *ListOptions,
	format Format,
) (*Result[[]*RepositoryTag], error) {
	if err := required("owner", owner, "repo", repo); err != nil {
		return nil, err
	}
	req, err := newRequest(http.MethodGet, repoPath(owner, repo, "tags"), opts.query(), nil)
	if err != nil {
		return nil, err
	}
	return fetchList(ctx, s.client, req, format, DecodeRepositoryTag)
}

// ListTagProtections lists the tag protection rules of a repository.
func (s *RepositoriesService) ListTagProtections(
	ctx context.Context,
	owner, repo string,
	format Format,
) (*Result[[]*TagProtection], error) {
	if err := required("owner", owner, "repo", repo); err != nil {
		return nil, err
	}
	req, err := newRequest(http.MethodGet, repoPath(owner, repo, "tags", "protection"), nil, nil)
	if err != nil {
		return nil, err
	}
	return fetchList(ctx, s.client, req, format, DecodeTagProtection)
}

// CreateTagProtection protects tags matching pattern.
func (s *RepositoriesService) CreateTagProtection(
	ctx context.Context,
	owner, repo, pattern string,
	format Format,
) (*Result[*TagProtection], error) {
	if err := required("owner", owner, "repo", repo, "pattern", pattern); err != nil {
		return nil, err
	}
	req, err := newRequest(
		http.MethodPost,
		repoPath(owner, repo, "tags", "protection"),
		nil,
		params.New().Add("pattern", pattern),
	)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.client, req, format, DecodeTagProtection)
}

// DeleteTagProtection removes a tag protection rule.
func (s *RepositoriesService) DeleteTagProtection(ctx context.Context, owner, repo string, id int64) error {
	if err := required("owner", owner, "repo", repo); err != nil {
		return err
	}
	if err := positive("tag_protection_id", id); err != nil {
		return err
	}
	req, err := newRequest(http.MethodDelete, repoPath(owner, repo, "tags", "protection", itoa(id)), nil, nil)
	if err != nil {
		return err
	}
	return s.client.doNoContent(ctx, req)
}

// ListCodeownersErrors lists syntax errors in the repository's CODEOWNERS
// file at ref. An empty ref uses the default branch.
func (s *RepositoriesService) ListCodeownersErrors(
	ctx context.Context,
	owner, repo, ref string,
	format Format,
) (*Result[*CodeOwnersErrors], error) {
	if err := required("owner", owner, "repo", repo); err != nil {
		return nil, err
	}
	q := params.New().AddIf(ref != "", "ref", ref)
	req, err := newRequest(http.MethodGet, repoPath(owner, repo, "codeowners", "errors"), q, nil)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.client, req, format, DecodeCodeOwnersErrors)
}

// ListActionsEnabledRepos lists the repositories where GitHub Actions is
// enabled, for organizations that enable it on selected repositories only.
// TotalCount reports all such repositories; Items holds the current page.
func (s *RepositoriesService) ListActionsEnabledRepos(
	ctx context.Context,
	org string,
	opts *ListOptions,
	format Format,
) (*Result[*OrganizationRepositories], error) {
	if err := required("org", org); err != nil {
		return nil, err
	}
	req, err := newRequest(
		http.MethodGet,
		joinPath("orgs", org, "actions", "permissions", "repositories"),
		opts.query(),
		nil,
	)
	if err != nil {
		return nil, err
	}
	return fetchCollection(ctx, s.client, req, format, "total_count", "repositories", DecodeRepository)
}
