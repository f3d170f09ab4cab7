package github

import "github.com/jmgilman/ghrest/github/field"

// TagProtectionFields holds the attributes of a TagProtection.
type TagProtectionFields struct {
	ID        int64
	Pattern   string
	Enabled   bool
	CreatedAt field.Timestamp
	UpdatedAt field.Timestamp
}

// TagProtection is a tag protection rule of a repository.
type TagProtection struct {
	f TagProtectionFields
}

// NewTagProtection returns a TagProtection with the given attributes.
func NewTagProtection(f TagProtectionFields) *TagProtection {
	return &TagProtection{f: f}
}

// DecodeTagProtection builds a TagProtection from its JSON object.
func DecodeTagProtection(obj field.Object) (*TagProtection, error) {
	return NewTagProtection(TagProtectionFields{
		ID:        obj.Int64("id", 0),
		Pattern:   obj.StringValue("pattern"),
		Enabled:   obj.Bool("enabled"),
		CreatedAt: obj.Timestamp("created_at"),
		UpdatedAt: obj.Timestamp("updated_at"),
	}), nil
}

// ID returns the rule id.
func (p *TagProtection) ID() int64 {
	return p.f.ID
}

// Pattern returns the protected tag pattern, such as "v1.*".
func (p *TagProtection) Pattern() string {
	return p.f.Pattern
}

// Enabled reports whether the rule is enforced.
func (p *TagProtection) Enabled() bool {
	return p.f.Enabled
}

// CreatedAt returns when the rule was created.
func (p *TagProtection) CreatedAt() field.Timestamp {
	return p.f.CreatedAt
}

// UpdatedAt returns when the rule was last updated.
func (p *TagProtection) UpdatedAt() field.Timestamp {
	return p.f.UpdatedAt
}
// RepositoryTagFields holds the attributes of a RepositoryTag.
type RepositoryTagFields struct {
	Name       string
	NodeID     string
	ZipballURL string
	TarballURL string
	CommitSHA  string
	CommitURL  string
}

// RepositoryTag is a git tag as listed by the repository tags endpoint.
type RepositoryTag struct {
	f RepositoryTagFields
}

// NewRepositoryTag returns a RepositoryTag with the given attributes.
func NewRepositoryTag(f RepositoryTagFields) *RepositoryTag {
	return &RepositoryTag{f: f}
}

// DecodeRepositoryTag builds a RepositoryTag from its JSON object.
func DecodeRepositoryTag(obj field.Object) (*RepositoryTag, error) {
	commit := obj.Object("commit")
	return NewRepositoryTag(RepositoryTagFields{
		Name:       obj.StringValue("name"),
		NodeID:     obj.StringValue("node_id"),
		ZipballURL: obj.StringValue("zipball_url"),
		TarballURL: obj.StringValue("tarball_url"),
		CommitSHA:  commit.StringValue("sha"),
		CommitURL:  commit.StringValue("url"),
	}), nil
}

// Name returns the tag name.
func (t *RepositoryTag) Name() string {
	return t.f.Name
}

// NodeID returns the GraphQL node id.
func (t *RepositoryTag) NodeID() string {
	return t.f.NodeID
}

// ZipballURL returns the zip archive URL.
func (t *RepositoryTag) ZipballURL() string {
	return t.f.ZipballURL
}

// TarballURL returns the tar archive URL.
func (t *RepositoryTag) TarballURL() string {
	return t.f.TarballURL
}

// CommitSHA returns the SHA of the tagged commit.
func (t *RepositoryTag) CommitSHA() string {
	return t.f.CommitSHA
}

// CommitURL returns the API URL of the tagged commit.
func (t *RepositoryTag) CommitURL() string {
	return t.f.CommitURL
}
