package github

import (
	"time"

	"github.com/jmgilman/ghrest/github/params"
)

// This file contains the option types accepted by service methods. Zero
// fields are left out of the request, so GitHub applies its own defaults.

// ListOptions contains pagination options for list operations.
type ListOptions struct {
	// Page is the page number for pagination (1-indexed)
	Page int

	// PerPage is the number of items per page (GitHub caps it at 100)
	PerPage int
}

func (o *ListOptions) addTo(p *params.Params) *params.Params {
	if o == nil {
		return p
	}
	return p.
		AddIf(o.PerPage > 0, "per_page", o.PerPage).
		AddIf(o.Page > 0, "page", o.Page)
}

func (o *ListOptions) query() *params.Params {
	return o.addTo(params.New())
}

// ListCommentsOptions contains options for listing issue comments.
type ListCommentsOptions struct {
	ListOptions

	// Sort is the sort field ("created" or "updated"). Only used when listing
	// the comments of a whole repository.
	Sort string

	// Direction is the sort direction ("asc" or "desc"). Requires Sort.
	Direction string

	// Since limits results to comments updated at or after this time
	Since time.Time
}

func (o *ListCommentsOptions) query() *params.Params {
	p := params.New()
	if o == nil {
		return p
	}
	p.AddIf(o.Sort != "", "sort", o.Sort).
		AddIf(o.Direction != "", "direction", o.Direction).
		AddIf(!o.Since.IsZero(), "since", o.Since)
	return o.ListOptions.addTo(p)
}

// ListProjectsOptions contains options for listing classic projects.
type ListProjectsOptions struct {
	ListOptions

	// State filters by project state ("open", "closed" or "all")
	State string
}

func (o *ListProjectsOptions) query() *params.Params {
	p := params.New()
	if o == nil {
		return p
	}
	p.AddIf(o.State != "", "state", o.State)
	return o.ListOptions.addTo(p)
}

// UpdateProjectOptions contains options for updating a classic project.
// Only non-zero fields are sent.
type UpdateProjectOptions struct {
	// Name is the new project name
	Name *string

	// Body is the new project description
	Body *string

	// State is the new project state
	State ProjectState

	// OrganizationPermission is the new baseline permission for organization
	// members
	OrganizationPermission ProjectPermission

	// Private sets the project visibility
	Private *bool
}

func (o UpdateProjectOptions) body() *params.Params {
	p := params.New()
	if o.Name != nil {
		p.Add("name", *o.Name)
	}
	if o.Body != nil {
		p.Add("body", *o.Body)
	}
	p.AddIf(o.State != ProjectStateUnset, "state", o.State.String()).
		AddIf(o.OrganizationPermission != ProjectPermissionUnset, "organization_permission", o.OrganizationPermission.String())
	if o.Private != nil {
		p.Add("private", *o.Private)
	}
	return p
}

// ListTeamMembersOptions contains options for listing team members.
type ListTeamMembersOptions struct {
	ListOptions

	// Role filters by role ("member", "maintainer" or "all")
	Role string
}

func (o *ListTeamMembersOptions) query() *params.Params {
	p := params.New()
	if o == nil {
		return p
	}
	p.AddIf(o.Role != "", "role", o.Role)
	return o.ListOptions.addTo(p)
}

// ListOrgReposOptions contains options for listing organization
// repositories.
type ListOrgReposOptions struct {
	ListOptions

	// Type filters by repository type ("all", "public", "private", "forks",
	// "sources" or "member")
	Type string

	// Sort is the sort field ("created", "updated", "pushed" or "full_name")
	Sort string

	// Direction is the sort direction ("asc" or "desc")
	Direction string
}

func (o *ListOrgReposOptions) query() *params.Params {
	p := params.New()
	if o == nil {
		return p
	}
	p.AddIf(o.Type != "", "type", o.Type).
		AddIf(o.Sort != "", "sort", o.Sort).
		AddIf(o.Direction != "", "direction", o.Direction)
	return o.ListOptions.addTo(p)
}

// CreatePagesOptions contains options for enabling a Pages site.
type CreatePagesOptions struct {
	// BuildType selects legacy (branch) or workflow builds
	BuildType PagesBuildType

	// Source is the publishing branch and directory. Required for legacy
	// builds.
	Source *PagesSource
}

func (o CreatePagesOptions) body() *params.Params {
	p := params.New().
		AddIf(o.BuildType != PagesBuildUnset, "build_type", o.BuildType.String())
	if o.Source != nil {
		p.Add("source", sourceParams(o.Source))
	}
	return p
}

// UpdatePagesOptions contains options for updating a Pages site.
type UpdatePagesOptions struct {
	// CNAME sets the custom domain
	CNAME *string

	// ClearCNAME removes the custom domain. It takes precedence over CNAME.
	ClearCNAME bool

	// HTTPSEnforced toggles the HTTP to HTTPS redirect
	HTTPSEnforced *bool

	// BuildType switches between legacy and workflow builds
	BuildType PagesBuildType

	// Source is the new publishing branch and directory
	Source *PagesSource
}

func (o UpdatePagesOptions) body() *params.Params {
	p := params.New()
	switch {
	case o.ClearCNAME:
		p.Add("cname", params.Null)
	case o.CNAME != nil:
		p.Add("cname", *o.CNAME)
	}
	if o.HTTPSEnforced != nil {
		p.Add("https_enforced", *o.HTTPSEnforced)
	}
	p.AddIf(o.BuildType != PagesBuildUnset, "build_type", o.BuildType.String())
	if o.Source != nil {
		p.Add("source", sourceParams(o.Source))
	}
	return p
}

func sourceParams(s *PagesSource) *params.Params {
	return params.New().
		Add("branch", s.Branch()).
		AddIf(s.Path() != "", "path", s.Path())
}

// CreatePagesDeploymentOptions contains options for deploying a
// workflow-built Pages site.
type CreatePagesDeploymentOptions struct {
	// ArtifactURL is the URL of the uploaded site artifact. Either it or
	// ArtifactID is required.
	ArtifactURL string

	// ArtifactID is the id of the uploaded site artifact
	ArtifactID int64

	// Environment is the target deployment environment (default
	// "github-pages")
	Environment string

	// PagesBuildVersion is the SHA of the commit being deployed (required)
	PagesBuildVersion string

	// OIDCToken is the workflow's OIDC token (required)
	OIDCToken string
}

func (o CreatePagesDeploymentOptions) validate() error {
	switch {
	case o.ArtifactURL == "" && o.ArtifactID == 0:
		return newInvalidInputError("artifact", "artifact URL or artifact ID is required")
	case o.PagesBuildVersion == "":
		return newInvalidInputError("pages_build_version", "cannot be empty")
	case o.OIDCToken == "":
		return newInvalidInputError("oidc_token", "cannot be empty")
	}
	return nil
}

func (o CreatePagesDeploymentOptions) body() *params.Params {
	return params.New().
		AddIf(o.ArtifactID != 0, "artifact_id", o.ArtifactID).
		AddIf(o.ArtifactURL != "", "artifact_url", o.ArtifactURL).
		AddIf(o.Environment != "", "environment", o.Environment).
		Add("pages_build_version", o.PagesBuildVersion).
		Add("oidc_token", o.OIDCToken)
}
