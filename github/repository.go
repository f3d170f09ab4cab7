package github

import (
	"slices"

	"github.com/jmgilman/ghrest/github/field"
)

// Visibility is who can see a repository.
type Visibility int

const (
	VisibilityUnset Visibility = iota
	VisibilityPublic
	VisibilityPrivate
	VisibilityInternal
)

var visibilityTable = field.NewEnumTable("visibility", map[Visibility]string{
	VisibilityPublic:   "public",
	VisibilityPrivate:  "private",
	VisibilityInternal: "internal",
})

// String returns the wire value, or "" when unset.
func (v Visibility) String() string {
	return visibilityTable.Wire(v)
}

// SquashMergeCommitTitle is the default title of squash merge commits.
type SquashMergeCommitTitle int

const (
	SquashTitleUnset SquashMergeCommitTitle = iota
	SquashTitlePRTitle
	SquashTitleCommitOrPRTitle
)

var squashMergeCommitTitleTable = field.NewEnumTable("squash_merge_commit_title", map[SquashMergeCommitTitle]string{
	SquashTitlePRTitle:         "PR_TITLE",
	SquashTitleCommitOrPRTitle: "COMMIT_OR_PR_TITLE",
})

// String returns the wire value, or "" when unset.
func (v SquashMergeCommitTitle) String() string {
	return squashMergeCommitTitleTable.Wire(v)
}

// SquashMergeCommitMessage is the default message of squash merge commits.
type SquashMergeCommitMessage int

const (
	SquashMessageUnset SquashMergeCommitMessage = iota
	SquashMessagePRBody
	SquashMessageCommitMessages
	SquashMessageBlank
)

var squashMergeCommitMessageTable = field.NewEnumTable("squash_merge_commit_message", map[SquashMergeCommitMessage]string{
	SquashMessagePRBody:         "PR_BODY",
	SquashMessageCommitMessages: "COMMIT_MESSAGES",
	SquashMessageBlank:          "BLANK",
})

// String returns the wire value, or "" when unset.
func (v SquashMergeCommitMessage) String() string {
	return squashMergeCommitMessageTable.Wire(v)
}

// MergeCommitTitle is the default title of merge commits.
type MergeCommitTitle int

const (
	MergeTitleUnset MergeCommitTitle = iota
	MergeTitlePRTitle
	MergeTitleMergeMessage
)

var mergeCommitTitleTable = field.NewEnumTable("merge_commit_title", map[MergeCommitTitle]string{
	MergeTitlePRTitle:      "PR_TITLE",
	MergeTitleMergeMessage: "MERGE_MESSAGE",
})

// String returns the wire value, or "" when unset.
func (v MergeCommitTitle) String() string {
	return mergeCommitTitleTable.Wire(v)
}

// MergeCommitMessage is the default message of merge commits.
type MergeCommitMessage int

const (
	MergeMessageUnset MergeCommitMessage = iota
	MergeMessagePRBody
	MergeMessagePRTitle
	MergeMessageBlank
)

var mergeCommitMessageTable = field.NewEnumTable("merge_commit_message", map[MergeCommitMessage]string{
	MergeMessagePRBody:  "PR_BODY",
	MergeMessagePRTitle: "PR_TITLE",
	MergeMessageBlank:   "BLANK",
})

// String returns the wire value, or "" when unset.
func (v MergeCommitMessage) String() string {
	return mergeCommitMessageTable.Wire(v)
}

// SecurityAnalysisStatus is the state of one security feature.
type SecurityAnalysisStatus int

const (
	SecurityAnalysisUnset SecurityAnalysisStatus = iota
	SecurityAnalysisEnabled
	SecurityAnalysisDisabled
)

var securityAnalysisStatusTable = field.NewEnumTable("security_analysis_status", map[SecurityAnalysisStatus]string{
	SecurityAnalysisEnabled:  "enabled",
	SecurityAnalysisDisabled: "disabled",
})

// String returns the wire value, or "" when unset.
func (v SecurityAnalysisStatus) String() string {
	return securityAnalysisStatusTable.Wire(v)
}

// LicenseFields holds the attributes of a License.
type LicenseFields struct {
	Key    string
	Name   string
	SPDXID *string
	URL    *string
	NodeID string
}

// License is the license GitHub detected for a repository.
type License struct {
	f LicenseFields
}

// NewLicense returns a License with the given attributes.
func NewLicense(f LicenseFields) *License {
	return &License{f: f}
}

// DecodeLicense builds a License from its JSON object.
func DecodeLicense(obj field.Object) (*License, error) {
	return NewLicense(LicenseFields{
		Key:    obj.StringValue("key"),
		Name:   obj.StringValue("name"),
		SPDXID: obj.String("spdx_id"),
		URL:    obj.String("url"),
		NodeID: obj.StringValue("node_id"),
	}), nil
}

// Key returns the license key, such as "mit".
func (l *License) Key() string {
	return l.f.Key
}

// Name returns the license name.
func (l *License) Name() string {
	return l.f.Name
}

// SPDXID returns the SPDX identifier, or nil.
func (l *License) SPDXID() *string {
	return l.f.SPDXID
}

// URL returns the API URL of the license, or nil.
func (l *License) URL() *string {
	return l.f.URL
}

// NodeID returns the GraphQL node id.
func (l *License) NodeID() string {
	return l.f.NodeID
}
// SecurityAnalysisFields holds the attributes of a SecurityAnalysis.
type SecurityAnalysisFields struct {
	AdvancedSecurity             SecurityAnalysisStatus
	SecretScanning               SecurityAnalysisStatus
	SecretScanningPushProtection SecurityAnalysisStatus
}

// SecurityAnalysis reports which security features a repository has
// enabled. Each status is unset when GitHub omits it.
type SecurityAnalysis struct {
	f SecurityAnalysisFields
}

// NewSecurityAnalysis returns a SecurityAnalysis with the given attributes.
func NewSecurityAnalysis(f SecurityAnalysisFields) *SecurityAnalysis {
	return &SecurityAnalysis{f: f}
}

// DecodeSecurityAnalysis builds a SecurityAnalysis from its JSON object,
// where each feature is an object holding a status.
func DecodeSecurityAnalysis(obj field.Object) (*SecurityAnalysis, error) {
	d := newDecoder("SecurityAnalysis", obj)
	status := func(key string) SecurityAnalysisStatus {
		v, err := securityAnalysisStatusTable.Read(obj.Object(key), "status")
		if err != nil {
			d.fail(err)
		}
		return v
	}
	f := SecurityAnalysisFields{
		AdvancedSecurity:             status("advanced_security"),
		SecretScanning:               status("secret_scanning"),
		SecretScanningPushProtection: status("secret_scanning_push_protection"),
	}
	if d.err != nil {
		return nil, d.err
	}
	return NewSecurityAnalysis(f), nil
}

// AdvancedSecurity returns the GitHub Advanced Security status.
func (s *SecurityAnalysis) AdvancedSecurity() SecurityAnalysisStatus {
	return s.f.AdvancedSecurity
}

// SecretScanning returns the secret scanning status.
func (s *SecurityAnalysis) SecretScanning() SecurityAnalysisStatus {
	return s.f.SecretScanning
}

// SecretScanningPushProtection returns the push protection status.
func (s *SecurityAnalysis) SecretScanningPushProtection() SecurityAnalysisStatus {
	return s.f.SecretScanningPushProtection
}
// RepositoryPermissionsFields holds the attributes of a RepositoryPermissions.
type RepositoryPermissionsFields struct {
	Admin    bool
	Maintain bool
	Push     bool
	Triage   bool
	Pull     bool
}

// RepositoryPermissions is what the authenticated user may do on a
// repository.
type RepositoryPermissions struct {
	f RepositoryPermissionsFields
}

// NewRepositoryPermissions returns a RepositoryPermissions with the given
// attributes.
func NewRepositoryPermissions(f RepositoryPermissionsFields) *RepositoryPermissions {
	return &RepositoryPermissions{f: f}
}

// DecodeRepositoryPermissions builds a RepositoryPermissions from its JSON
// object.
func DecodeRepositoryPermissions(obj field.Object) (*RepositoryPermissions, error) {
	return NewRepositoryPermissions(RepositoryPermissionsFields{
		Admin:    obj.Bool("admin"),
		Maintain: obj.Bool("maintain"),
		Push:     obj.Bool("push"),
		Triage:   obj.Bool("triage"),
		Pull:     obj.Bool("pull"),
	}), nil
}

// Admin reports admin access.
func (p *RepositoryPermissions) Admin() bool {
	return p.f.Admin
}

// Maintain reports maintain access.
func (p *RepositoryPermissions) Maintain() bool {
	return p.f.Maintain
}

// Push reports push access.
func (p *RepositoryPermissions) Push() bool {
	return p.f.Push
}

// Triage reports triage access.
func (p *RepositoryPermissions) Triage() bool {
	return p.f.Triage
}

// Pull reports pull access.
func (p *RepositoryPermissions) Pull() bool {
	return p.f.Pull
}
// RepositoryFields holds the attributes of a Repository.
type RepositoryFields struct {
	// Identification
	ID           int64
	NodeID       string
	Name         string
	FullName     string
	Owner        *User
	Organization *User

	// Metadata
	Description    *string
	Homepage       *string
	Language       *string
	Topics         []string
	DefaultBranch  string
	Visibility     Visibility
	Private        bool
	Fork           bool
	IsTemplate     bool
	Archived       bool
	Disabled       bool
	Size           int
	TempCloneToken *string

	// Nested entities
	License             *License
	Permissions         *RepositoryPermissions
	SecurityAndAnalysis *SecurityAnalysis
	Parent              *Repository
	Source              *Repository
	TemplateRepository  *Repository

	// URLs
	URL        string
	HTMLURL    string
	ArchiveURL string
	CloneURL   string
	GitURL     string
	SSHURL     string
	SVNURL     string
	MirrorURL  *string

	// Counters
	ForksCount       int
	StargazersCount  int
	WatchersCount    int
	OpenIssuesCount  int
	SubscribersCount int
	NetworkCount     int
	Forks            int
	OpenIssues       int
	Watchers         int

	// Features
	HasIssues      bool
	HasProjects    bool
	HasWiki        bool
	HasPages       bool
	HasDownloads   bool
	HasDiscussions bool

	// Merge settings
	AllowRebaseMerge          bool
	AllowSquashMerge          bool
	AllowAutoMerge            bool
	AllowMergeCommit          bool
	AllowUpdateBranch         bool
	AllowForking              bool
	DeleteBranchOnMerge       bool
	UseSquashPRTitleAsDefault bool
	WebCommitSignoffRequired  bool
	SquashMergeCommitTitle    SquashMergeCommitTitle
	SquashMergeCommitMessage  SquashMergeCommitMessage
	MergeCommitTitle          MergeCommitTitle
	MergeCommitMessage        MergeCommitMessage

	// Timestamps
	PushedAt  field.Timestamp
	CreatedAt field.Timestamp
	UpdatedAt field.Timestamp
}

// Repository is a GitHub repository.
//
// Repositories nested in other payloads (a fork's parent, an organization
// listing) carry fewer members than a direct fetch. Missing members read as
// zero values and missing nested entities as nil.
type Repository struct {
	f RepositoryFields
}

// NewRepository returns a Repository with the given attributes.
func NewRepository(f RepositoryFields) *Repository {
	f.Topics = slices.Clone(f.Topics)
	return &Repository{f: f}
}

// DecodeRepository builds a Repository from its JSON object. The parent,
// source and template_repository members are decoded recursively.
func DecodeRepository(obj field.Object) (*Repository, error) {
	d := newDecoder("Repository", obj)
	f := RepositoryFields{
		ID:           obj.Int64("id", 0),
		NodeID:       obj.StringValue("node_id"),
		Name:         obj.StringValue("name"),
		FullName:     obj.StringValue("full_name"),
		Owner:        readNested(d, "owner", DecodeUser),
		Organization: readNested(d, "organization", DecodeUser),

		Description:    obj.String("description"),
		Homepage:       obj.String("homepage"),
		Language:       obj.String("language"),
		Topics:         obj.Strings("topics"),
		DefaultBranch:  obj.StringValue("default_branch"),
		Visibility:     readEnum(d, visibilityTable, "visibility"),
		Private:        obj.Bool("private"),
		Fork:           obj.Bool("fork"),
		IsTemplate:     obj.Bool("is_template"),
		Archived:       obj.Bool("archived"),
		Disabled:       obj.Bool("disabled"),
		Size:           obj.Int("size", 0),
		TempCloneToken: obj.String("temp_clone_token"),

		License:             readNested(d, "license", DecodeLicense),
		Permissions:         readNested(d, "permissions", DecodeRepositoryPermissions),
		SecurityAndAnalysis: readNested(d, "security_and_analysis", DecodeSecurityAnalysis),
		Parent:              readNested(d, "parent", DecodeRepository),
		Source:              readNested(d, "source", DecodeRepository),
		TemplateRepository:  readNested(d, "template_repository", DecodeRepository),

		URL:        obj.StringValue("url"),
		HTMLURL:    obj.StringValue("html_url"),
		ArchiveURL: obj.StringValue("archive_url"),
		CloneURL:   obj.StringValue("clone_url"),
		GitURL:     obj.StringValue("git_url"),
		SSHURL:     obj.StringValue("ssh_url"),
		SVNURL:     obj.StringValue("svn_url"),
		MirrorURL:  obj.String("mirror_url"),

		ForksCount:       obj.Int("forks_count", 0),
		StargazersCount:  obj.Int("stargazers_count", 0),
		WatchersCount:    obj.Int("watchers_count", 0),
		OpenIssuesCount:  obj.Int("open_issues_count", 0),
		SubscribersCount: obj.Int("subscribers_count", 0),
		NetworkCount:     obj.Int("network_count", 0),
		Forks:            obj.Int("forks", 0),
		OpenIssues:       obj.Int("open_issues", 0),
		Watchers:         obj.Int("watchers", 0),

		HasIssues:      obj.Bool("has_issues"),
		HasProjects:    obj.Bool("has_projects"),
		HasWiki:        obj.Bool("has_wiki"),
		HasPages:       obj.Bool("has_pages"),
		HasDownloads:   obj.Bool("has_downloads"),
		HasDiscussions: obj.Bool("has_discussions"),

		AllowRebaseMerge:          obj.Bool("allow_rebase_merge"),
		AllowSquashMerge:          obj.Bool("allow_squash_merge"),
		AllowAutoMerge:            obj.Bool("allow_auto_merge"),
		AllowMergeCommit:          obj.Bool("allow_merge_commit"),
		AllowUpdateBranch:         obj.Bool("allow_update_branch"),
		AllowForking:              obj.Bool("allow_forking"),
		DeleteBranchOnMerge:       obj.Bool("delete_branch_on_merge"),
		UseSquashPRTitleAsDefault: obj.Bool("use_squash_pr_title_as_default"),
		WebCommitSignoffRequired:  obj.Bool("web_commit_signoff_required"),
		SquashMergeCommitTitle:    readEnum(d, squashMergeCommitTitleTable, "squash_merge_commit_title"),
		SquashMergeCommitMessage:  readEnum(d, squashMergeCommitMessageTable, "squash_merge_commit_message"),
		MergeCommitTitle:          readEnum(d, mergeCommitTitleTable, "merge_commit_title"),
		MergeCommitMessage:        readEnum(d, mergeCommitMessageTable, "merge_commit_message"),

		PushedAt:  obj.Timestamp("pushed_at"),
		CreatedAt: obj.Timestamp("created_at"),
		UpdatedAt: obj.Timestamp("updated_at"),
	}
	if d.err != nil {
		return nil, d.err
	}
	return NewRepository(f), nil
}

// ID returns the repository id.
func (r *Repository) ID() int64 {
	return r.f.ID
}

// NodeID returns the GraphQL node id.
func (r *Repository) NodeID() string {
	return r.f.NodeID
}

// Name returns the repository name without its owner.
func (r *Repository) Name() string {
	return r.f.Name
}

// FullName returns "owner/name".
func (r *Repository) FullName() string {
	return r.f.FullName
}

// Owner returns the owning account, or nil.
func (r *Repository) Owner() *User {
	return r.f.Owner
}

// Organization returns the owning organization, or nil.
func (r *Repository) Organization() *User {
	return r.f.Organization
}

// Description returns the description, or nil.
func (r *Repository) Description() *string {
	return r.f.Description
}

// Homepage returns the homepage URL, or nil.
func (r *Repository) Homepage() *string {
	return r.f.Homepage
}

// Language returns the primary language, or nil.
func (r *Repository) Language() *string {
	return r.f.Language
}

// Topics returns the repository topics.
func (r *Repository) Topics() []string {
	return slices.Clone(r.f.Topics)
}

// DefaultBranch returns the default branch name.
func (r *Repository) DefaultBranch() string {
	return r.f.DefaultBranch
}

// Visibility returns the repository visibility.
func (r *Repository) Visibility() Visibility {
	return r.f.Visibility
}

// IsPrivate reports whether the repository is private.
func (r *Repository) IsPrivate() bool {
	return r.f.Private
}

// IsFork reports whether the repository is a fork.
func (r *Repository) IsFork() bool {
	return r.f.Fork
}

// IsTemplate reports whether the repository is a template.
func (r *Repository) IsTemplate() bool {
	return r.f.IsTemplate
}

// IsArchived reports whether the repository is archived.
func (r *Repository) IsArchived() bool {
	return r.f.Archived
}

// IsDisabled reports whether the repository is disabled.
func (r *Repository) IsDisabled() bool {
	return r.f.Disabled
}

// Size returns the repository size in kilobytes.
func (r *Repository) Size() int {
	return r.f.Size
}

// TempCloneToken returns the temporary clone token, or nil.
func (r *Repository) TempCloneToken() *string {
	return r.f.TempCloneToken
}

// License returns the detected license, or nil.
func (r *Repository) License() *License {
	return r.f.License
}

// Permissions returns the caller's permissions, or nil.
func (r *Repository) Permissions() *RepositoryPermissions {
	return r.f.Permissions
}

// SecurityAndAnalysis returns the security feature settings, or nil.
func (r *Repository) SecurityAndAnalysis() *SecurityAnalysis {
	return r.f.SecurityAndAnalysis
}

// Parent returns the repository this one was forked from, or nil.
func (r *Repository) Parent() *Repository {
	return r.f.Parent
}

// Source returns the root of the fork network, or nil.
func (r *Repository) Source() *Repository {
	return r.f.Source
}

// TemplateRepository returns the template this repository was generated from, or nil.
func (r *Repository) TemplateRepository() *Repository {
	return r.f.TemplateRepository
}

// URL returns the API URL.
func (r *Repository) URL() string {
	return r.f.URL
}

// HTMLURL returns the web URL.
func (r *Repository) HTMLURL() string {
	return r.f.HTMLURL
}

// ArchiveURL returns the archive URL template.
func (r *Repository) ArchiveURL() string {
	return r.f.ArchiveURL
}

// CloneURL returns the HTTPS clone URL.
func (r *Repository) CloneURL() string {
	return r.f.CloneURL
}

// GitURL returns the git:// URL.
func (r *Repository) GitURL() string {
	return r.f.GitURL
}

// SSHURL returns the SSH clone URL.
func (r *Repository) SSHURL() string {
	return r.f.SSHURL
}

// SVNURL returns the Subversion URL.
func (r *Repository) SVNURL() string {
	return r.f.SVNURL
}

// MirrorURL returns the mirror source URL, or nil.
func (r *Repository) MirrorURL() *string {
	return r.f.MirrorURL
}

// ForksCount returns the number of forks.
func (r *Repository) ForksCount() int {
	return r.f.ForksCount
}

// StargazersCount returns the number of stars.
func (r *Repository) StargazersCount() int {
	return r.f.StargazersCount
}

// WatchersCount returns the number of watchers.
func (r *Repository) WatchersCount() int {
	return r.f.WatchersCount
}

// OpenIssuesCount returns the number of open issues and pull requests.
func (r *Repository) OpenIssuesCount() int {
	return r.f.OpenIssuesCount
}

// SubscribersCount returns the number of subscribers.
func (r *Repository) SubscribersCount() int {
	return r.f.SubscribersCount
}

// NetworkCount returns the size of the fork network.
func (r *Repository) NetworkCount() int {
	return r.f.NetworkCount
}

// Forks returns the legacy forks counter.
func (r *Repository) Forks() int {
	return r.f.Forks
}

// OpenIssues returns the legacy open issues counter.
func (r *Repository) OpenIssues() int {
	return r.f.OpenIssues
}

// Watchers returns the legacy watchers counter.
func (r *Repository) Watchers() int {
	return r.f.Watchers
}

// HasIssues reports whether issues are enabled.
func (r *Repository) HasIssues() bool {
	return r.f.HasIssues
}

// HasProjects reports whether projects are enabled.
func (r *Repository) HasProjects() bool {
	return r.f.HasProjects
}

// HasWiki reports whether the wiki is enabled.
func (r *Repository) HasWiki() bool {
	return r.f.HasWiki
}

// HasPages reports whether a Pages site exists.
func (r *Repository) HasPages() bool {
	return r.f.HasPages
}

// HasDownloads reports whether downloads are enabled.
func (r *Repository) HasDownloads() bool {
	return r.f.HasDownloads
}

// HasDiscussions reports whether discussions are enabled.
func (r *Repository) HasDiscussions() bool {
	return r.f.HasDiscussions
}

// AllowRebaseMerge reports whether rebase merging is allowed.
func (r *Repository) AllowRebaseMerge() bool {
	return r.f.AllowRebaseMerge
}

// AllowSquashMerge reports whether squash merging is allowed.
func (r *Repository) AllowSquashMerge() bool {
	return r.f.AllowSquashMerge
}

// AllowAutoMerge reports whether auto-merge is allowed.
func (r *Repository) AllowAutoMerge() bool {
	return r.f.AllowAutoMerge
}

// AllowMergeCommit reports whether merge commits are allowed.
func (r *Repository) AllowMergeCommit() bool {
	return r.f.AllowMergeCommit
}

// AllowUpdateBranch reports whether pull request branches may be updated.
func (r *Repository) AllowUpdateBranch() bool {
	return r.f.AllowUpdateBranch
}

// AllowForking reports whether private forks are allowed.
func (r *Repository) AllowForking() bool {
	return r.f.AllowForking
}

// DeleteBranchOnMerge reports whether head branches are deleted after merge.
func (r *Repository) DeleteBranchOnMerge() bool {
	return r.f.DeleteBranchOnMerge
}

// UseSquashPRTitleAsDefault reports the legacy squash title setting.
func (r *Repository) UseSquashPRTitleAsDefault() bool {
	return r.f.UseSquashPRTitleAsDefault
}

// WebCommitSignoffRequired reports whether web commits must be signed off.
func (r *Repository) WebCommitSignoffRequired() bool {
	return r.f.WebCommitSignoffRequired
}

// SquashMergeCommitTitle returns the default squash commit title.
func (r *Repository) SquashMergeCommitTitle() SquashMergeCommitTitle {
	return r.f.SquashMergeCommitTitle
}

// SquashMergeCommitMessage returns the default squash commit message.
func (r *Repository) SquashMergeCommitMessage() SquashMergeCommitMessage {
	return r.f.SquashMergeCommitMessage
}

// MergeCommitTitle returns the default merge commit title.
func (r *Repository) MergeCommitTitle() MergeCommitTitle {
	return r.f.MergeCommitTitle
}

// MergeCommitMessage returns the default merge commit message.
func (r *Repository) MergeCommitMessage() MergeCommitMessage {
	return r.f.MergeCommitMessage
}

// PushedAt returns when the repository was last pushed to.
func (r *Repository) PushedAt() field.Timestamp {
	return r.f.PushedAt
}

// CreatedAt returns when the repository was created.
func (r *Repository) CreatedAt() field.Timestamp {
	return r.f.CreatedAt
}

// UpdatedAt returns when the repository was last updated.
func (r *Repository) UpdatedAt() field.Timestamp {
	return r.f.UpdatedAt
}

// OrganizationRepositories is a page of an organization's repositories with
// the total across all pages.
type OrganizationRepositories = Collection[*Repository]

// DecodeOrganizationRepositories builds an OrganizationRepositories from a
// {"total_count": N, "repositories": [...]} object.
func DecodeOrganizationRepositories(obj field.Object) (*OrganizationRepositories, error) {
	return DecodeCollection(obj, "total_count", "repositories", DecodeRepository)
}
