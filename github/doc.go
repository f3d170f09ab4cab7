// Package github provides a typed client for a subset of the GitHub REST API.
//
// Every service method builds a request path and its query or body
// parameters, sends it through a pluggable Provider, and materializes the
// response body in the representation the caller asks for.
//
// # Architecture
//
// The library is built on several key principles:
//
//  1. Provider abstraction: a Provider moves raw requests and bodies
//  2. Two concrete providers: go-github (providers/sdk) and gh (providers/cli)
//  3. Services grouped by resource (Issues, Pages, Projects, Teams, Repositories)
//  4. Immutable entities decoded tolerantly from JSON (package field)
//  5. Caller-selected output Format per call
//  6. Consistent error handling using the errors package
//
// # Formats
//
// Each service method takes a Format as its last argument and returns a
// Result:
//
//   - FormatTyped: Result.Typed holds the decoded entity (or slice, or
//     Collection for counted lists)
//   - FormatJSON: Result.JSON holds a generic map[string]any or []any
//   - FormatText: Result.Text holds the response body byte for byte
//
// FormatTyped is the zero value. Passing any other Format value panics.
//
// # Entities
//
// Entities such as Repository, IssueComment and PagesSite are read-only.
// Each has a Fields struct, a New constructor taking it, and a Decode
// function taking a field.Object. Both constructors yield the same state, so
// test fixtures can be built without JSON:
//
//	repo := github.NewRepository(github.RepositoryFields{
//	    Name:     "hello-world",
//	    FullName: "octocat/hello-world",
//	    Owner:    github.NewUser(github.UserFields{Login: "octocat"}),
//	})
//
// Missing members decode to zero values and missing nested entities to nil.
// Enum members (Visibility, PagesBuildStatus, TeamRole, ...) are strict: an
// unknown wire value is a DECODE_FAILED error, while an absent or null value
// is the type's Unset constant.
//
// # Usage Examples
//
// ## Example 1: Using SDK Provider with Token
//
//	provider, err := sdk.NewSDKProvider(sdk.WithToken("ghp_xxxxxxxxxxxx"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := github.NewClient(provider, github.WithLogger(slog.Default()))
//
//	res, err := client.Repositories.Get(ctx, "octocat", "hello-world", github.FormatTyped)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	repo := res.Typed()
//	fmt.Printf("Repository: %s (%s)\n", repo.FullName(), repo.Visibility())
//
// ## Example 2: Using CLI Provider
//
//	provider, err := cli.NewCLIProvider()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := github.NewClient(provider)
//
//	res, err := client.Issues.ListRepoComments(ctx, "octocat", "hello-world",
//	    &github.ListCommentsOptions{Sort: "created", Direction: "desc"},
//	    github.FormatTyped,
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range res.Typed() {
//	    fmt.Printf("%s: %s\n", c.User().Login(), *c.Body())
//	}
//
// ## Example 3: Counted lists
//
//	res, err := client.Repositories.ListActionsEnabledRepos(ctx, "myorg",
//	    &github.ListOptions{PerPage: 30}, github.FormatTyped)
//	if err != nil {
//	    return err
//	}
//	page := res.Typed()
//	fmt.Printf("showing %d of %d repositories\n", page.Len(), page.TotalCount())
//
// ## Example 4: Clearing a Pages custom domain
//
//	err := client.Pages.UpdateSite(ctx, "octocat", "hello-world", github.UpdatePagesOptions{
//	    ClearCNAME: true,
//	})
//
// # Error Handling
//
// The library uses the errors package for consistent error handling.
// All errors carry an error code:
//
//   - ErrCodeNotFound: the resource does not exist (HTTP 404 or 410)
//   - ErrCodeAuthenticationFailed: invalid or missing authentication
//   - ErrCodePermissionDenied: insufficient permissions
//   - ErrCodeRateLimited: API rate limit exceeded
//   - ErrCodeInvalidInput: invalid parameters, rejected before or by GitHub
//   - ErrCodeConflict: resource conflict
//   - ErrCodeDecodeFailed: malformed JSON or an unknown enum value
//   - ErrCodeNetwork: network or server-side failures
//   - ErrCodeInternal: unexpected responses, such as 200 where 204 is documented
//
// Example error handling:
//
//	_, err := client.Pages.GetSite(ctx, "octocat", "hello-world", github.FormatTyped)
//	switch errors.GetCode(err) {
//	case errors.CodeNotFound:
//	    fmt.Println("Pages is not enabled")
//	case errors.CodeDecodeFailed:
//	    fmt.Println("GitHub returned something unexpected:", err)
//	}
//
// # Testing
//
// The mocks sub-package holds a ProviderMock generated by moq:
//
//	mock := &mocks.ProviderMock{
//	    DoFunc: func(ctx context.Context, req *github.Request) (*github.Response, error) {
//	        return &github.Response{StatusCode: 200, Body: []byte(`{"name":"test"}`)}, nil
//	    },
//	}
//	client := github.NewClient(mock)
//
// For testing the CLI provider without gh installed, pass an
// exec/mocks.ExecutorMock through cli.WithExecutor.
//
// # Dependencies
//
// This library depends on:
//   - github.com/google/go-github/v67 - Official GitHub SDK (for the SDK provider)
//   - golang.org/x/oauth2 - token sources for the SDK provider
//   - golang.org/x/time/rate - client-side request throttling
//   - github.com/jmgilman/ghrest/errors - error codes
//   - github.com/jmgilman/ghrest/exec - command execution (for the CLI provider)
//
// # References
//
// For more information:
//   - GitHub REST API: https://docs.github.com/en/rest
//   - go-github SDK: https://pkg.go.dev/github.com/google/go-github/v67
//   - gh CLI: https://cli.github.com/
package github
