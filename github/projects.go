package github

import (
	"context"
	"net/http"

	"github.com/jmgilman/ghrest/github/params"
)

// ProjectsService handles classic project boards.
//
// GitHub API docs: https://docs.github.com/rest/projects/projects
type ProjectsService service

func (s *ProjectsService) list(
	ctx context.Context,
	path string,
	opts *ListProjectsOptions,
	format Format,
) (*Result[[]*Project], error) {
	req, err := newRequest(http.MethodGet, path, opts.query(), nil)
	if err != nil {
		return nil, err
	}
	return fetchList(ctx, s.client, req, format, DecodeProject)
}

func (s *ProjectsService) create(
	ctx context.Context,
	path, name, body string,
	format Format,
) (*Result[*Project], error) {
	if err := required("name", name); err != nil {
		return nil, err
	}
	payload := params.New().
		Add("name", name).
		AddIf(body != "", "body", body)
	req, err := newRequest(http.MethodPost, path, nil, payload)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.client, req, format, DecodeProject)
}

// ListOrgProjects lists the classic projects of an organization.
func (s *ProjectsService) ListOrgProjects(
	ctx context.Context,
	org string,
	opts *ListProjectsOptions,
	format Format,
) (*Result[[]*Project], error) {
	if err := required("org", org); err != nil {
		return nil, err
	}
	return s.list(ctx, joinPath("orgs", org, "projects"), opts, format)
}

// CreateOrgProject creates a classic project owned by an organization.
// An empty body is omitted.
func (s *ProjectsService) CreateOrgProject(
	ctx context.Context,
	org, name, body string,
	format Format,
) (*Result[*Project], error) {
	if err := required("org", org); err != nil {
		return nil, err
	}
	return s.create(ctx, joinPath("orgs", org, "projects"), name, body, format)
}

// ListRepoProjects lists the classic projects of a repository.
func (s *ProjectsService) ListRepoProjects(
	ctx context.Context,
	owner, repo string,
	opts *ListProjectsOptions,
	format Format,
) (*Result[[]*Project], error) {
	if err := required("owner", owner, "repo", repo); err != nil {
		return nil, err
	}
	return s.list(ctx, repoPath(owner, repo, "projects"), opts, format)
}

// CreateRepoProject creates a classic project in a repository.
func (s *ProjectsService) CreateRepoProject(
	ctx context.Context,
	owner, repo, name, body string,
	format Format,
) (*Result[*Project], error) {
	if err := required("owner", owner, "repo", repo); err != nil {
		return nil, err
	}
	return s.create(ctx, repoPath(owner, repo, "projects"), name, body, format)
}

// ListUserProjects lists the classic projects of a user.
func (s *ProjectsService) ListUserProjects(
	ctx context.Context,
	username string,
	opts *ListProjectsOptions,
	format Format,
) (*Result[[]*Project], error) {
	if err := required("username", username); err != nil {
		return nil, err
	}
	return s.list(ctx, joinPath("users", username, "projects"), opts, format)
}

// CreateUserProject creates a classic project for the authenticated user.
func (s *ProjectsService) CreateUserProject(
	ctx context.Context,
	name, body string,
	format Format,
) (*Result[*Project], error) {
	return s.create(ctx, joinPath("user", "projects"), name, body, format)
}

// GetProject fetches a classic project by id.
func (s *ProjectsService) GetProject(ctx context.Context, id int64, format Format) (*Result[*Project], error) {
	if err := positive("project_id", id); err != nil {
		return nil, err
	}
	req, err := newRequest(http.MethodGet, joinPath("projects", itoa(id)), nil, nil)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.client, req, format, DecodeProject)
}

// UpdateProject changes a classic project. Only the fields set in opts are
// sent.
func (s *ProjectsService) UpdateProject(
	ctx context.Context,
	id int64,
	opts UpdateProjectOptions,
	format Format,
) (*Result[*Project], error) {
	if err := positive("project_id", id); err != nil {
		return nil, err
	}
	if opts.Name != nil && *opts.Name == "" {
		return nil, newInvalidInputError("name", "cannot be empty")
	}
	req, err := newRequest(http.MethodPatch, joinPath("projects", itoa(id)), nil, opts.body())
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.client, req, format, DecodeProject)
}

// DeleteProject deletes a classic project.
func (s *ProjectsService) DeleteProject(ctx context.Context, id int64) error {
	if err := positive("project_id", id); err != nil {
		return err
	}
	req, err := newRequest(http.MethodDelete, joinPath("projects", itoa(id)), nil, nil)
	if err != nil {
		return err
	}
	return s.client.doNoContent(ctx, req)
}
