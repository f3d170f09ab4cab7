package github

import (
	"testing"

	"github.com/jmgilman/ghrest/errors"
	"github.com/jmgilman/ghrest/github/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseObject(t *testing.T, raw string) field.Object {
	t.Helper()

	obj, err := field.ParseObject([]byte(raw))
	require.NoError(t, err)
	return obj
}

// enumCase decodes obj and returns the wire string of the enum under test.
type enumCase struct {
	name   string
	key    string
	wires  []string
	decode func(field.Object) (string, error)
}

func TestEntities_EnumFidelity(t *testing.T) {
	t.Parallel()

	cases := []enumCase{
		{
			name:  "IssueComment.author_association",
			key:   "author_association",
			wires: []string{"COLLABORATOR", "CONTRIBUTOR", "FIRST_TIMER", "FIRST_TIME_CONTRIBUTOR", "MANNEQUIN", "MEMBER", "NONE", "OWNER"},
			decode: func(obj field.Object) (string, error) {
				c, err := DecodeIssueComment(obj)
				if err != nil {
					return "", err
				}
				return c.AuthorAssociation().String(), nil
			},
		},
		{
			name:  "Project.state",
			key:   "state",
			wires: []string{"open", "closed"},
			decode: func(obj field.Object) (string, error) {
				p, err := DecodeProject(obj)
				if err != nil {
					return "", err
				}
				return p.State().String(), nil
			},
		},
		{
			name:  "Project.organization_permission",
			key:   "organization_permission",
			wires: []string{"read", "write", "admin", "none"},
			decode: func(obj field.Object) (string, error) {
				p, err := DecodeProject(obj)
				if err != nil {
					return "", err
				}
				return p.OrganizationPermission().String(), nil
			},
		},
		{
			name:  "PagesSite.status",
			key:   "status",
			wires: []string{"built", "building", "errored"},
			decode: func(obj field.Object) (string, error) {
				s, err := DecodePagesSite(obj)
				if err != nil {
					return "", err
				}
				return s.Status().String(), nil
			},
		},
		{
			name:  "PagesSite.protected_domain_state",
			key:   "protected_domain_state",
			wires: []string{"pending", "verified", "unverified"},
			decode: func(obj field.Object) (string, error) {
				s, err := DecodePagesSite(obj)
				if err != nil {
					return "", err
				}
				return s.ProtectedDomainState().String(), nil
			},
		},
		{
			name:  "PagesSite.build_type",
			key:   "build_type",
			wires: []string{"legacy", "workflow"},
			decode: func(obj field.Object) (string, error) {
				s, err := DecodePagesSite(obj)
				if err != nil {
					return "", err
				}
				return s.BuildType().String(), nil
			},
		},
		{
			name:  "PagesBuild.status",
			key:   "status",
			wires: []string{"queued", "building", "built", "errored"},
			decode: func(obj field.Object) (string, error) {
				b, err := DecodePagesBuild(obj)
				if err != nil {
					return "", err
				}
				return b.Status().String(), nil
			},
		},
		{
			name:  "TeamMembership.role",
			key:   "role",
			wires: []string{"member", "maintainer"},
			decode: func(obj field.Object) (string, error) {
				m, err := DecodeTeamMembership(obj)
				if err != nil {
					return "", err
				}
				return m.Role().String(), nil
			},
		},
		{
			name:  "TeamMembership.state",
			key:   "state",
			wires: []string{"active", "pending"},
			decode: func(obj field.Object) (string, error) {
				m, err := DecodeTeamMembership(obj)
				if err != nil {
					return "", err
				}
				return m.State().String(), nil
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			for _, wire := range tc.wires {
				got, err := tc.decode(field.Object{tc.key: wire})
				require.NoError(t, err, wire)
				assert.Equal(t, wire, got)
			}

			got, err := tc.decode(field.Object{})
			require.NoError(t, err)
			assert.Empty(t, got, "absent enum must be unset")

			got, err = tc.decode(field.Object{tc.key: nil})
			require.NoError(t, err)
			assert.Empty(t, got, "null enum must be unset")

			_, err = tc.decode(field.Object{tc.key: "definitely-not-a-value"})
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.CodeDecodeFailed))
		})
	}
}

func TestDecodeIssueComment(t *testing.T) {
	t.Parallel()

	c, err := DecodeIssueComment(parseObject(t, `{
		"id": 1,
		"node_id": "MDEyOklzc3VlQ29tbWVudDE=",
		"url": "https://api.github.com/repos/octocat/Hello-World/issues/comments/1",
		"html_url": "https://github.com/octocat/Hello-World/issues/1347#issuecomment-1",
		"issue_url": "https://api.github.com/repos/octocat/Hello-World/issues/1347",
		"body": "Me too",
		"user": {"login": "octocat", "site_admin": false},
		"created_at": "2011-04-14T16:00:49Z",
		"updated_at": "2011-04-14T16:00:49Z",
		"author_association": "COLLABORATOR",
		"reactions": {"total_count": 3, "+1": 2, "-1": 0, "rocket": 1}
	}`))

	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID())
	assert.Equal(t, "Me too", *c.Body())
	assert.Equal(t, "octocat", c.User().Login())
	assert.Equal(t, AssociationCollaborator, c.AuthorAssociation())
	assert.Contains(t, c.IssueURL(), "/issues/1347")
	require.NotNil(t, c.Reactions())
	assert.Equal(t, 3, c.Reactions().TotalCount())
	assert.Equal(t, 2, c.Reactions().PlusOne())
	assert.Equal(t, 0, c.Reactions().MinusOne())
	assert.Equal(t, 1, c.Reactions().Rocket())
	assert.Equal(t, c.CreatedAt(), c.UpdatedAt())
}

func TestDecodeIssueComment_DeletedUser(t *testing.T) {
	t.Parallel()

	c, err := DecodeIssueComment(parseObject(t, `{"id": 5, "user": null, "body": null}`))

	require.NoError(t, err)
	assert.Nil(t, c.User())
	assert.Nil(t, c.Body())
	assert.Nil(t, c.Reactions())
}

func TestDecodeProject(t *testing.T) {
	t.Parallel()

	p, err := DecodeProject(parseObject(t, `{
		"owner_url": "https://api.github.com/repos/api-playground/projects-test",
		"id": 1002604,
		"number": 1,
		"name": "Projects Documentation",
		"body": "Developer documentation project",
		"state": "open",
		"creator": {"login": "octocat"},
		"organization_permission": "write",
		"private": true,
		"created_at": "2011-04-10T20:09:31Z"
	}`))

	require.NoError(t, err)
	assert.Equal(t, int64(1002604), p.ID())
	assert.Equal(t, 1, p.Number())
	assert.Equal(t, "Projects Documentation", p.Name())
	assert.Equal(t, ProjectStateOpen, p.State())
	assert.Equal(t, ProjectPermissionWrite, p.OrganizationPermission())
	assert.True(t, p.IsPrivate())
	assert.Equal(t, "octocat", p.Creator().Login())
	assert.True(t, p.CreatedAt().IsSet())
	assert.False(t, p.UpdatedAt().IsSet())
}

func TestDecodePagesSite(t *testing.T) {
	t.Parallel()

	s, err := DecodePagesSite(parseObject(t, `{
		"url": "https://api.github.com/repos/github/developer.github.com/pages",
		"status": "built",
		"cname": "developer.github.com",
		"custom_404": false,
		"html_url": "https://developer.github.com",
		"source": {"branch": "master", "path": "/"},
		"public": true,
		"pending_domain_unverified_at": "2024-04-30T19:33:31Z",
		"protected_domain_state": "verified",
		"https_certificate": {
			"state": "approved",
			"description": "Certificate is approved",
			"domains": ["developer.github.com"],
			"expires_at": "2021-05-22"
		},
		"https_enforced": true,
		"build_type": "legacy"
	}`))

	require.NoError(t, err)
	assert.Equal(t, PagesStatusBuilt, s.Status())
	assert.Equal(t, "developer.github.com", *s.CNAME())
	assert.Equal(t, ProtectedDomainVerified, s.ProtectedDomainState())
	assert.Equal(t, PagesBuildLegacy, s.BuildType())
	assert.True(t, s.IsPublic())
	assert.True(t, s.HTTPSEnforced())
	assert.False(t, s.Custom404())
	require.NotNil(t, s.Source())
	assert.Equal(t, "master", s.Source().Branch())
	assert.Equal(t, "/", s.Source().Path())
	require.NotNil(t, s.HTTPSCertificate())
	assert.Equal(t, []string{"developer.github.com"}, s.HTTPSCertificate().Domains())
	assert.Equal(t, "2021-05-22", s.HTTPSCertificate().ExpiresAt())
	assert.Equal(t, int64(1714505611000), s.PendingDomainUnverifiedAt().UnixMilli())
}

func TestDecodePagesSite_WorkflowWithoutCNAME(t *testing.T) {
	t.Parallel()

	s, err := DecodePagesSite(parseObject(t, `{"status": null, "cname": null, "build_type": "workflow", "source": null}`))

	require.NoError(t, err)
	assert.Equal(t, PagesStatusUnset, s.Status())
	assert.Nil(t, s.CNAME())
	assert.Nil(t, s.Source())
	assert.Equal(t, PagesBuildWorkflow, s.BuildType())
}

func TestDecodePagesBuild(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		raw            string
		wantStatus     PagesBuildStatus
		wantError      *string
		wantPusher     string
		wantCommit     string
		wantDurationMs int
	}{
		{
			name: "full build",
			raw: `{
				"url": "https://api.github.com/repos/github/developer.github.com/pages/builds/5472601",
				"status": "built",
				"error": {"message": null},
				"pusher": {"login": "octocat"},
				"commit": "351391cdcb88ffae71ec3028c91f375a8036a26b",
				"duration": 2104,
				"created_at": "2014-02-10T19:00:49Z",
				"updated_at": "2014-02-10T19:00:51Z"
			}`,
			wantStatus:     PagesBuildStatusBuilt,
			wantPusher:     "octocat",
			wantCommit:     "351391cdcb88ffae71ec3028c91f375a8036a26b",
			wantDurationMs: 2104,
		},
		{
			name:       "failed build",
			raw:        `{"status": "errored", "error": {"message": "Page build failed."}}`,
			wantStatus: PagesBuildStatusErrored,
			wantError:  ptr("Page build failed."),
		},
		{
			name:       "requested build",
			raw:        `{"url": "https://api.github.com/repos/o/r/pages/builds/latest", "status": "queued"}`,
			wantStatus: PagesBuildStatusQueued,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := DecodePagesBuild(parseObject(t, tt.raw))
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, b.Status())
			assert.Equal(t, tt.wantError, b.ErrorMessage())
			if tt.wantPusher == "" {
				assert.Nil(t, b.Pusher())
			} else {
				assert.Equal(t, tt.wantPusher, b.Pusher().Login())
			}
			assert.Equal(t, tt.wantCommit, b.Commit())
			assert.Equal(t, tt.wantDurationMs, b.Duration())
		})
	}
}

func TestDecodePagesDeployment(t *testing.T) {
	t.Parallel()

	numeric, err := DecodePagesDeployment(parseObject(t, `{
		"id": 4,
		"status_url": "https://api.github.com/repos/github/developer.github.com/pages/deployments/4/status",
		"page_url": "developer.github.com"
	}`))
	require.NoError(t, err)
	assert.Equal(t, "4", numeric.ID())
	assert.Contains(t, numeric.StatusURL(), "/deployments/4/status")
	assert.Equal(t, "developer.github.com", numeric.PageURL())
	assert.Nil(t, numeric.PreviewURL())

	text, err := DecodePagesDeployment(parseObject(t, `{"id": "abc123", "preview_url": "https://preview"}`))
	require.NoError(t, err)
	assert.Equal(t, "abc123", text.ID())
	assert.Equal(t, "https://preview", *text.PreviewURL())

	absent, err := DecodePagesDeployment(field.Object{})
	require.NoError(t, err)
	assert.Empty(t, absent.ID())
}

func TestDecodePagesHealthCheck(t *testing.T) {
	t.Parallel()

	h, err := DecodePagesHealthCheck(parseObject(t, `{
		"domain": {
			"host": "example.com",
			"uri": "http://example.com/",
			"nameservers": "default",
			"dns_resolves": true,
			"is_proxied": false,
			"is_apex_domain": true,
			"is_cname_to_pages_dot_github_dot_com": null,
			"is_pointed_to_github_pages_ip": true,
			"is_https_eligible": true,
			"responds_to_https": true,
			"caa_error": null,
			"reason": null
		},
		"alt_domain": null
	}`))

	require.NoError(t, err)
	d := h.Domain()
	require.NotNil(t, d)
	assert.Equal(t, "example.com", d.Host())
	assert.Equal(t, "default", d.Nameservers())
	assert.True(t, d.DNSResolves())
	assert.False(t, d.IsProxied())
	assert.True(t, d.IsApexDomain())
	assert.False(t, d.IsCNAMEToPagesDotGitHubDotCom())
	assert.True(t, d.IsPointedToGitHubPagesIP())
	assert.True(t, d.IsHTTPSEligible())
	assert.True(t, d.RespondsToHTTPS())
	assert.False(t, d.EnforcesHTTPS())
	assert.Nil(t, d.CAAError())
	assert.Nil(t, d.Reason())
	assert.Nil(t, h.AltDomain())
}

func TestDecodeTeamMembership(t *testing.T) {
	t.Parallel()

	m, err := DecodeTeamMembership(parseObject(t, `{
		"url": "https://api.github.com/teams/1/memberships/octocat",
		"role": "maintainer",
		"state": "pending"
	}`))

	require.NoError(t, err)
	assert.Equal(t, TeamRoleMaintainer, m.Role())
	assert.Equal(t, MembershipStatePending, m.State())
	assert.Equal(t, "https://api.github.com/teams/1/memberships/octocat", m.URL())
}

func TestDecodeTagProtection(t *testing.T) {
	t.Parallel()

	p, err := DecodeTagProtection(parseObject(t, `{"id": 2, "pattern": "v1.*", "enabled": true}`))

	require.NoError(t, err)
	assert.Equal(t, int64(2), p.ID())
	assert.Equal(t, "v1.*", p.Pattern())
	assert.True(t, p.Enabled())
	assert.False(t, p.CreatedAt().IsSet())
}

func TestDecodeRepositoryTag(t *testing.T) {
	t.Parallel()

	tag, err := DecodeRepositoryTag(parseObject(t, `{
		"name": "v0.1",
		"commit": {
			"sha": "c5b97d5ae6c19d5c5df71a34c7fbeeda2479ccbc",
			"url": "https://api.github.com/repos/octocat/Hello-World/commits/c5b97d5ae6c19d5c5df71a34c7fbeeda2479ccbc"
		},
		"zipball_url": "https://github.com/octocat/Hello-World/zipball/v0.1",
		"tarball_url": "https://github.com/octocat/Hello-World/tarball/v0.1",
		"node_id": "MDQ6VXNlcjE="
	}`))

	require.NoError(t, err)
	assert.Equal(t, "v0.1", tag.Name())
	assert.Equal(t, "c5b97d5ae6c19d5c5df71a34c7fbeeda2479ccbc", tag.CommitSHA())
	assert.Contains(t, tag.ZipballURL(), "zipball")
	assert.Contains(t, tag.TarballURL(), "tarball")

	bare, err := DecodeRepositoryTag(field.Object{"name": "v2"})
	require.NoError(t, err)
	assert.Empty(t, bare.CommitSHA())
}

func TestDecodeCodeOwnersErrors(t *testing.T) {
	t.Parallel()

	errs, err := DecodeCodeOwnersErrors(parseObject(t, `{
		"errors": [
			{
				"line": 3,
				"column": 1,
				"kind": "Invalid pattern",
				"source": "***/*.rb @monalisa",
				"suggestion": "Did you mean `+"`**/*.rb`"+`?",
				"message": "Invalid pattern on line 3: Did you mean `+"`**/*.rb`"+`?",
				"path": ".github/CODEOWNERS"
			},
			{
				"line": 7,
				"column": 7,
				"kind": "Invalid owner",
				"source": "*.txt docs@",
				"suggestion": null,
				"message": "Invalid owner on line 7",
				"path": ".github/CODEOWNERS"
			}
		]
	}`))

	require.NoError(t, err)
	require.Equal(t, 2, errs.Len())
	list := errs.Errors()
	assert.Equal(t, 3, list[0].Line())
	assert.Equal(t, "Invalid pattern", list[0].Kind())
	assert.NotNil(t, list[0].Suggestion())
	assert.Equal(t, 7, list[1].Column())
	assert.Nil(t, list[1].Suggestion())
	assert.Equal(t, ".github/CODEOWNERS", list[1].Path())

	empty, err := DecodeCodeOwnersErrors(parseObject(t, `{"errors": []}`))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestRepositoryLanguages(t *testing.T) {
	t.Parallel()

	langs, err := DecodeRepositoryLanguages(parseObject(t, `{"C": 78769, "Python": 7769, "Go": 7769, "Shell": 0}`))
	require.NoError(t, err)

	assert.Equal(t, 4, langs.Len())
	assert.Equal(t, []string{"C", "Go", "Python", "Shell"}, langs.Names())
	assert.Equal(t, int64(78769+7769+7769), langs.Total())

	n, ok := langs.Bytes("Python")
	assert.True(t, ok)
	assert.Equal(t, int64(7769), n)

	_, ok = langs.Bytes("Rust")
	assert.False(t, ok)

	built := NewRepositoryLanguages(map[string]int64{"C": 78769, "Python": 7769, "Go": 7769, "Shell": 0})
	assert.Equal(t, langs.Map(), built.Map())
}

func TestUser_ProgrammaticMatchesDecoded(t *testing.T) {
	t.Parallel()

	decoded, err := DecodeUser(parseObject(t, `{
		"login": "octocat",
		"id": 1,
		"node_id": "MDQ6VXNlcjE=",
		"avatar_url": "https://github.com/images/error/octocat_happy.gif",
		"gravatar_id": "",
		"type": "User",
		"site_admin": false
	}`))
	require.NoError(t, err)

	built := NewUser(UserFields{
		Login:      "octocat",
		ID:         1,
		NodeID:     "MDQ6VXNlcjE=",
		AvatarURL:  "https://github.com/images/error/octocat_happy.gif",
		GravatarID: ptr(""),
		Type:       "User",
	})

	assert.Equal(t, built, decoded)
	assert.Nil(t, decoded.Name())
	assert.Nil(t, decoded.Email())
}
