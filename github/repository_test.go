package github

import (
	"testing"

	"github.com/jmgilman/ghrest/errors"
	"github.com/jmgilman/ghrest/github/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRepo(t *testing.T, raw string) (*Repository, error) {
	t.Helper()

	obj, err := field.ParseObject([]byte(raw))
	require.NoError(t, err)
	return DecodeRepository(obj)
}

func TestDecodeRepository_Scenario(t *testing.T) {
	t.Parallel()

	repo, err := decodeRepo(t, `{
		"name": "octo-repo",
		"full_name": "octocat/octo-repo",
		"private": false,
		"fork": true
	}`)

	require.NoError(t, err)
	assert.Equal(t, "octo-repo", repo.Name())
	assert.Equal(t, "octocat/octo-repo", repo.FullName())
	assert.True(t, repo.IsFork())
	assert.False(t, repo.IsPrivate())
	assert.Nil(t, repo.License())
}

func TestDecodeRepository_NestedParent(t *testing.T) {
	t.Parallel()

	repo, err := decodeRepo(t, `{
		"name": "fork",
		"fork": true,
		"parent": {
			"name": "upstream",
			"owner": {"login": "octocat"}
		},
		"source": {
			"name": "root",
			"parent": {"name": "deeper"}
		}
	}`)

	require.NoError(t, err)

	parent := repo.Parent()
	require.NotNil(t, parent)
	assert.Equal(t, "upstream", parent.Name())
	assert.Equal(t, "octocat", parent.Owner().Login())
	assert.Nil(t, parent.Parent())
	assert.Nil(t, parent.License())
	assert.Zero(t, parent.ID())

	source := repo.Source()
	require.NotNil(t, source)
	require.NotNil(t, source.Parent())
	assert.Equal(t, "deeper", source.Parent().Name())

	assert.Nil(t, repo.TemplateRepository())
}

func TestDecodeRepository_MissingOptionalFields(t *testing.T) {
	t.Parallel()

	repo, err := decodeRepo(t, `{}`)
	require.NoError(t, err)

	assert.Zero(t, repo.ID())
	assert.Empty(t, repo.Name())
	assert.Nil(t, repo.Description())
	assert.Nil(t, repo.Homepage())
	assert.Nil(t, repo.Language())
	assert.Nil(t, repo.MirrorURL())
	assert.Nil(t, repo.Owner())
	assert.Nil(t, repo.Organization())
	assert.Nil(t, repo.Permissions())
	assert.Nil(t, repo.SecurityAndAnalysis())
	assert.Empty(t, repo.Topics())
	assert.False(t, repo.HasIssues())
	assert.False(t, repo.AllowSquashMerge())
	assert.Zero(t, repo.ForksCount())
	assert.Equal(t, VisibilityUnset, repo.Visibility())
	assert.Equal(t, SquashTitleUnset, repo.SquashMergeCommitTitle())
	assert.Equal(t, MergeMessageUnset, repo.MergeCommitMessage())
	assert.False(t, repo.PushedAt().IsSet())
	assert.Equal(t, field.InvalidTimestamp, repo.PushedAt().UnixMilli())
}

func TestDecodeRepository_NullMembers(t *testing.T) {
	t.Parallel()

	repo, err := decodeRepo(t, `{
		"description": null,
		"license": null,
		"visibility": null,
		"template_repository": null,
		"pushed_at": null
	}`)

	require.NoError(t, err)
	assert.Nil(t, repo.Description())
	assert.Nil(t, repo.License())
	assert.Equal(t, VisibilityUnset, repo.Visibility())
	assert.Nil(t, repo.TemplateRepository())
	assert.False(t, repo.PushedAt().IsSet())
}

func TestDecodeRepository_EnumFidelity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		wire string
		get  func(*Repository) string
		want string
	}{
		{"visibility", "public", func(r *Repository) string { return r.Visibility().String() }, VisibilityPublic.String()},
		{"visibility", "private", func(r *Repository) string { return r.Visibility().String() }, VisibilityPrivate.String()},
		{"visibility", "internal", func(r *Repository) string { return r.Visibility().String() }, VisibilityInternal.String()},
		{"squash_merge_commit_title", "PR_TITLE", func(r *Repository) string { return r.SquashMergeCommitTitle().String() }, "PR_TITLE"},
		{"squash_merge_commit_title", "COMMIT_OR_PR_TITLE", func(r *Repository) string { return r.SquashMergeCommitTitle().String() }, "COMMIT_OR_PR_TITLE"},
		{"squash_merge_commit_message", "PR_BODY", func(r *Repository) string { return r.SquashMergeCommitMessage().String() }, "PR_BODY"},
		{"squash_merge_commit_message", "COMMIT_MESSAGES", func(r *Repository) string { return r.SquashMergeCommitMessage().String() }, "COMMIT_MESSAGES"},
		{"squash_merge_commit_message", "BLANK", func(r *Repository) string { return r.SquashMergeCommitMessage().String() }, "BLANK"},
		{"merge_commit_title", "PR_TITLE", func(r *Repository) string { return r.MergeCommitTitle().String() }, "PR_TITLE"},
		{"merge_commit_title", "MERGE_MESSAGE", func(r *Repository) string { return r.MergeCommitTitle().String() }, "MERGE_MESSAGE"},
		{"merge_commit_message", "PR_BODY", func(r *Repository) string { return r.MergeCommitMessage().String() }, "PR_BODY"},
		{"merge_commit_message", "PR_TITLE", func(r *Repository) string { return r.MergeCommitMessage().String() }, "PR_TITLE"},
		{"merge_commit_message", "BLANK", func(r *Repository) string { return r.MergeCommitMessage().String() }, "BLANK"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.wire, func(t *testing.T) {
			t.Parallel()

			repo, err := DecodeRepository(field.Object{tt.key: tt.wire})
			require.NoError(t, err)
			assert.Equal(t, tt.want, tt.get(repo))
		})
	}

	assert.Equal(t, VisibilityPrivate, mustDecodeRepo(t, field.Object{"visibility": "private"}).Visibility())
	assert.Equal(t, MergeTitleMergeMessage, mustDecodeRepo(t, field.Object{"merge_commit_title": "MERGE_MESSAGE"}).MergeCommitTitle())
}

func mustDecodeRepo(t *testing.T, obj field.Object) *Repository {
	t.Helper()

	repo, err := DecodeRepository(obj)
	require.NoError(t, err)
	return repo
}

func TestDecodeRepository_UnknownEnum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		obj  field.Object
		key  string
	}{
		{"unknown visibility", field.Object{"visibility": "secret"}, "visibility"},
		{"wrong case", field.Object{"visibility": "Public"}, "visibility"},
		{"non-string", field.Object{"merge_commit_title": true}, "merge_commit_title"},
		{"nested parent", field.Object{"parent": map[string]any{"visibility": "nope"}}, "visibility"},
		{"security analysis", field.Object{
			"security_and_analysis": map[string]any{
				"secret_scanning": map[string]any{"status": "maybe"},
			},
		}, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo, err := DecodeRepository(tt.obj)
			require.Error(t, err)
			assert.Nil(t, repo)

			var platformErr errors.PlatformError
			require.True(t, errors.As(err, &platformErr))
			assert.Equal(t, errors.CodeDecodeFailed, platformErr.Code())
			assert.Equal(t, tt.key, platformErr.Context()["field"])
			assert.NotEmpty(t, platformErr.Context()["entity"])
		})
	}
}

func TestDecodeRepository_FullPayload(t *testing.T) {
	t.Parallel()

	repo, err := decodeRepo(t, `{
		"id": 9007199254740993,
		"description": "This your first repo!",
		"license": {"key": "mit", "name": "MIT License", "spdx_id": "MIT", "node_id": "MDc6TGljZW5zZW1pdA=="},
		"permissions": {"admin": false, "push": true, "pull": true},
		"security_and_analysis": {
			"advanced_security": {"status": "enabled"},
			"secret_scanning": {"status": "disabled"}
		},
		"organization": {"login": "github", "type": "Organization"},
		"template_repository": {"name": "template", "is_template": true},
		"has_issues": true,
		"allow_squash_merge": true,
		"squash_merge_commit_title": "COMMIT_OR_PR_TITLE",
		"forks_count": 9,
		"open_issues_count": 2,
		"size": 108,
		"pushed_at": "2011-01-26T19:06:43Z"
	}`)

	require.NoError(t, err)
	assert.Equal(t, int64(9007199254740993), repo.ID())
	require.NotNil(t, repo.Description())
	assert.Equal(t, "This your first repo!", *repo.Description())

	require.NotNil(t, repo.License())
	assert.Equal(t, "mit", repo.License().Key())
	assert.Equal(t, "MIT", *repo.License().SPDXID())
	assert.Nil(t, repo.License().URL())

	require.NotNil(t, repo.Permissions())
	assert.True(t, repo.Permissions().Push())
	assert.False(t, repo.Permissions().Admin())
	assert.False(t, repo.Permissions().Maintain())

	sa := repo.SecurityAndAnalysis()
	require.NotNil(t, sa)
	assert.Equal(t, SecurityAnalysisEnabled, sa.AdvancedSecurity())
	assert.Equal(t, SecurityAnalysisDisabled, sa.SecretScanning())
	assert.Equal(t, SecurityAnalysisUnset, sa.SecretScanningPushProtection())

	assert.Equal(t, "Organization", repo.Organization().Type())
	require.NotNil(t, repo.TemplateRepository())
	assert.True(t, repo.TemplateRepository().IsTemplate())

	assert.True(t, repo.HasIssues())
	assert.True(t, repo.AllowSquashMerge())
	assert.Equal(t, SquashTitleCommitOrPRTitle, repo.SquashMergeCommitTitle())
	assert.Equal(t, 9, repo.ForksCount())
	assert.Equal(t, 2, repo.OpenIssuesCount())
	assert.Equal(t, 108, repo.Size())
	assert.Equal(t, int64(1296068803000), repo.PushedAt().UnixMilli())
}

func TestRepository_ProgrammaticMatchesDecoded(t *testing.T) {
	t.Parallel()

	decoded, err := decodeRepo(t, `{
		"id": 42,
		"name": "hello",
		"full_name": "octocat/hello",
		"owner": {"login": "octocat", "id": 1},
		"description": "hi",
		"topics": ["go"],
		"visibility": "internal",
		"fork": true,
		"merge_commit_message": "PR_TITLE",
		"created_at": "2020-01-02T03:04:05Z"
	}`)
	require.NoError(t, err)

	built := NewRepository(RepositoryFields{
		ID:                 42,
		Name:               "hello",
		FullName:           "octocat/hello",
		Owner:              NewUser(UserFields{Login: "octocat", ID: 1}),
		Description:        ptr("hi"),
		Topics:             []string{"go"},
		Visibility:         VisibilityInternal,
		Fork:               true,
		MergeCommitMessage: MergeMessagePRTitle,
		CreatedAt:          field.NewTimestamp("2020-01-02T03:04:05Z"),
	})

	assert.Equal(t, decoded, built)
}

func TestRepository_TopicsAreCopied(t *testing.T) {
	t.Parallel()

	topics := []string{"a", "b"}
	repo := NewRepository(RepositoryFields{Topics: topics})

	topics[0] = "changed"
	got := repo.Topics()
	assert.Equal(t, []string{"a", "b"}, got)

	got[1] = "changed"
	assert.Equal(t, []string{"a", "b"}, repo.Topics())
}

func TestDecodeOrganizationRepositories(t *testing.T) {
	t.Parallel()

	obj, err := field.ParseObject([]byte(`{"total_count": 57, "repositories": [{"name": "a"}, {"name": "b"}, {"name": "c"}]}`))
	require.NoError(t, err)

	repos, err := DecodeOrganizationRepositories(obj)
	require.NoError(t, err)
	assert.Equal(t, 57, repos.TotalCount())
	assert.Equal(t, 3, repos.Len())
}

func ptr[T any](v T) *T {
	return &v
}
