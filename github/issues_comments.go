package github

import (
	"context"
	"net/http"

	"github.com/jmgilman/ghrest/github/params"
)

// IssuesService handles issue and pull request comments.
//
// GitHub API docs: https://docs.github.com/rest/issues/comments
type IssuesService service

// ListRepoComments lists the comments on every issue and pull request of a
// repository.
func (s *IssuesService) ListRepoComments(
	ctx context.Context,
	owner, repo string,
	opts *ListCommentsOptions,
	format Format,
) (*Result[[]*IssueComment], error) {
	if err := required("owner", owner, "repo", repo); err != nil {
		return nil, err
	}
	req, err := newRequest(http.MethodGet, repoPath(owner, repo, "issues", "comments"), opts.query(), nil)
	if err != nil {
		return nil, err
	}
	return fetchList(ctx, s.client, req, format, DecodeIssueComment)
}

// ListComments lists the comments on one issue or pull request, oldest
// first. Sort and Direction are ignored by this endpoint.
func (s *IssuesService) ListComments(
	ctx context.Context,
	owner, repo string,
	number int,
	opts *ListCommentsOptions,
	format Format,
) (*Result[[]*IssueComment], error) {
	if err := required("owner", owner, "repo", repo); err != nil {
		return nil, err
	}
	if err := positive("number", int64(number)); err != nil {
		return nil, err
	}

	q := params.New()
	if opts != nil {
		q.AddIf(!opts.Since.IsZero(), "since", opts.Since)
		opts.ListOptions.addTo(q)
	}
	req, err := newRequest(http.MethodGet, repoPath(owner, repo, "issues", itoa(int64(number)), "comments"), q, nil)
	if err != nil {
		return nil, err
	}
	return fetchList(ctx, s.client, req, format, DecodeIssueComment)
}

// GetComment fetches a single comment by id.
func (s *IssuesService) GetComment(
	ctx context.Context,
	owner, repo string,
	id int64,
	format Format,
) (*Result[*IssueComment], error) {
	if err := required("owner", owner, "repo", repo); err != nil {
		return nil, err
	}
	if err := positive("comment_id", id); err != nil {
		return nil, err
	}
	req, err := newRequest(http.MethodGet, repoPath(owner, repo, "issues", "comments", itoa(id)), nil, nil)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.client, req, format, DecodeIssueComment)
}

// CreateComment adds a comment to an issue or pull request.
func (s *IssuesService) CreateComment(
	ctx context.Context,
	owner, repo string,
	number int,
	body string,
	format Format,
) (*Result[*IssueComment], error) {
	if err := required("owner", owner, "repo", repo, "body", body); err != nil {
		return nil, err
	}
	if err := positive("number", int64(number)); err != nil {
		return nil, err
	}
	req, err := newRequest(
		http.MethodPost,
		repoPath(owner, repo, "issues", itoa(int64(number)), "comments"),
		nil,
		params.New().Add("body", body),
	)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.client, req, format, DecodeIssueComment)
}

// UpdateComment replaces the body of a comment.
func (s *IssuesService) UpdateComment(
	ctx context.Context,
	owner, repo string,
	id int64,
	body string,
	format Format,
) (*Result[*IssueComment], error) {
	if err := required("owner", owner, "repo", repo, "body", body); err != nil {
		return nil, err
	}
	if err := positive("comment_id", id); err != nil {
		return nil, err
	}
	req, err := newRequest(
		http.MethodPatch,
		repoPath(owner, repo, "issues", "comments", itoa(id)),
		nil,
		params.New().Add("body", body),
	)
	if err != nil {
		return nil, err
	}
	return fetch(ctx, s.client, req, format, DecodeIssueComment)
}

// DeleteComment deletes a comment.
func (s *IssuesService) DeleteComment(ctx context.Context, owner, repo string, id int64) error {
	if err := required("owner", owner, "repo", repo); err != nil {
		return err
	}
	if err := positive("comment_id", id); err != nil {
		return err
	}
	req, err := newRequest(http.MethodDelete, repoPath(owner, repo, "issues", "comments", itoa(id)), nil, nil)
	if err != nil {
		return err
	}
	return s.client.doNoContent(ctx, req)
}
