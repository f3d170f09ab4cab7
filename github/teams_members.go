package github

import (
	"context"
	"net/http"

	"github.com/jmgilman/ghrest/github/params"
)

// TeamsService handles team membership.
//
// GitHub API docs: https://docs.github.com/rest/teams/members
type TeamsService service

// ListMembers lists the members of a team, including members of child
// teams.
func (s *TeamsService) ListMembers(
	ctx context.Context,
	org, slug string,
	opts *ListTeamMembersOptions,
	format Format,
) (*Result[[]*User], error) {
	if err := required("org", org, "team_slug", slug); err != nil {
		return nil, err
	}
	req, err := newRequest(http.MethodGet, joinPath("orgs", org, "teams", slug, "members"), opts.query(), nil)
	if err != nil {
		return nil, err
	}
	return fetchList(ctx, s.client, req, format, DecodeUser)
}

// GetMembership fetches a user's membership in a team.
func (s *TeamsService) GetMembership(
	ctx context.Context,
	org, slug, username string,
	format Format,
) (*Result[*TeamMembership], error) {
	if err := required("org", org, "team_slug", slug, "username", username); err != nil {
		return nil, err
	}
	req, err := newRequest(http.MethodGet, membershipPath(org, slug, username), nil, nil)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.client, req, format, DecodeTeamMembership)
}

// AddOrUpdateMembership adds a user to a team or changes their role. Users
// outside the organization are invited and their membership stays pending
// until they accept. An unset role leaves GitHub's default (member).
func (s *TeamsService) AddOrUpdateMembership(
	ctx context.Context,
	org, slug, username string,
	role TeamRole,
	format Format,
) (*Result[*TeamMembership], error) {
	if err := required("org", org, "team_slug", slug, "username", username); err != nil {
		return nil, err
	}
	body := params.New().AddIf(role != TeamRoleUnset, "role", role.String())
	req, err := newRequest(http.MethodPut, membershipPath(org, slug, username), nil, body)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.client, req, format, DecodeTeamMembership)
}

// RemoveMembership removes a user from a team.
func (s *TeamsService) RemoveMembership(ctx context.Context, org, slug, username string) error {
	if err := required("org", org, "team_slug", slug, "username", username); err != nil {
		return err
	}
	req, err := newRequest(http.MethodDelete, membershipPath(org, slug, username), nil, nil)
	if err != nil {
		return err
	}
	return s.client.doNoContent(ctx, req)
}

func membershipPath(org, slug, username string) string {
	return joinPath("orgs", org, "teams", slug, "memberships", username)
}
