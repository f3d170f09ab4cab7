package github

import "github.com/jmgilman/ghrest/github/field"

// AuthorAssociation is how a comment's author relates to the repository.
type AuthorAssociation int

const (
	AssociationUnset AuthorAssociation = iota
	AssociationCollaborator
	AssociationContributor
	AssociationFirstTimer
	AssociationFirstTimeContributor
	AssociationMannequin
	AssociationMember
	AssociationNone
	AssociationOwner
)

var authorAssociationTable = field.NewEnumTable("author_association", map[AuthorAssociation]string{
	AssociationCollaborator:         "COLLABORATOR",
	AssociationContributor:          "CONTRIBUTOR",
	AssociationFirstTimer:           "FIRST_TIMER",
	AssociationFirstTimeContributor: "FIRST_TIME_CONTRIBUTOR",
	AssociationMannequin:            "MANNEQUIN",
	AssociationMember:               "MEMBER",
	AssociationNone:                 "NONE",
	AssociationOwner:                "OWNER",
})

// String returns the wire value, or "" when unset.
func (v AuthorAssociation) String() string {
	return authorAssociationTable.Wire(v)
}

// ReactionsFields holds the attributes of a Reactions rollup.
type ReactionsFields struct {
	URL        string
	TotalCount int
	PlusOne    int
	MinusOne   int
	Laugh      int
	Confused   int
	Heart      int
	Hooray     int
	Eyes       int
	Rocket     int
}

// Reactions counts the emoji reactions on a comment.
type Reactions struct {
	f ReactionsFields
}

// NewReactions returns a Reactions with the given attributes.
func NewReactions(f ReactionsFields) *Reactions {
	return &Reactions{f: f}
}

// DecodeReactions builds a Reactions from its JSON object.
func DecodeReactions(obj field.Object) (*Reactions, error) {
	return NewReactions(ReactionsFields{
		URL:        obj.StringValue("url"),
		TotalCount: obj.Int("total_count", 0),
		PlusOne:    obj.Int("+1", 0),
		MinusOne:   obj.Int("-1", 0),
		Laugh:      obj.Int("laugh", 0),
		Confused:   obj.Int("confused", 0),
		Heart:      obj.Int("heart", 0),
		Hooray:     obj.Int("hooray", 0),
		Eyes:       obj.Int("eyes", 0),
		Rocket:     obj.Int("rocket", 0),
	}), nil
}

// URL returns the API URL of the reaction list.
func (r *Reactions) URL() string {
	return r.f.URL
}

// TotalCount returns the number of reactions of any kind.
func (r *Reactions) TotalCount() int {
	return r.f.TotalCount
}

// PlusOne returns the "+1" count.
func (r *Reactions) PlusOne() int {
	return r.f.PlusOne
}

// MinusOne returns the "-1" count.
func (r *Reactions) MinusOne() int {
	return r.f.MinusOne
}

// Laugh returns the laugh count.
func (r *Reactions) Laugh() int {
	return r.f.Laugh
}

// Confused returns the confused count.
func (r *Reactions) Confused() int {
	return r.f.Confused
}

// Heart returns the heart count.
func (r *Reactions) Heart() int {
	return r.f.Heart
}

// Hooray returns the hooray count.
func (r *Reactions) Hooray() int {
	return r.f.Hooray
}

// Eyes returns the eyes count.
func (r *Reactions) Eyes() int {
	return r.f.Eyes
}

// Rocket returns the rocket count.
func (r *Reactions) Rocket() int {
	return r.f.Rocket
}
// IssueCommentFields holds the attributes of an IssueComment.
type IssueCommentFields struct {
	ID                int64
	NodeID            string
	URL               string
	HTMLURL           string
	IssueURL          string
	Body              *string
	User              *User
	AuthorAssociation AuthorAssociation
	Reactions         *Reactions
	CreatedAt         field.Timestamp
	UpdatedAt         field.Timestamp
}

// IssueComment is a comment on an issue or pull request.
type IssueComment struct {
	f IssueCommentFields
}

// NewIssueComment returns an IssueComment with the given attributes.
func NewIssueComment(f IssueCommentFields) *IssueComment {
	return &IssueComment{f: f}
}

// DecodeIssueComment builds an IssueComment from its JSON object.
func DecodeIssueComment(obj field.Object) (*IssueComment, error) {
	d := newDecoder("IssueComment", obj)
	f := IssueCommentFields{
		ID:                obj.Int64("id", 0),
		NodeID:            obj.StringValue("node_id"),
		URL:               obj.StringValue("url"),
		HTMLURL:           obj.StringValue("html_url"),
		IssueURL:          obj.StringValue("issue_url"),
		Body:              obj.String("body"),
		User:              readNested(d, "user", DecodeUser),
		AuthorAssociation: readEnum(d, authorAssociationTable, "author_association"),
		Reactions:         readNested(d, "reactions", DecodeReactions),
		CreatedAt:         obj.Timestamp("created_at"),
		UpdatedAt:         obj.Timestamp("updated_at"),
	}
	if d.err != nil {
		return nil, d.err
	}
	return NewIssueComment(f), nil
}

// ID returns the comment id.
func (c *IssueComment) ID() int64 {
	return c.f.ID
}

// NodeID returns the GraphQL node id.
func (c *IssueComment) NodeID() string {
	return c.f.NodeID
}

// URL returns the API URL.
func (c *IssueComment) URL() string {
	return c.f.URL
}

// HTMLURL returns the web URL.
func (c *IssueComment) HTMLURL() string {
	return c.f.HTMLURL
}

// IssueURL returns the API URL of the issue the comment belongs to.
func (c *IssueComment) IssueURL() string {
	return c.f.IssueURL
}

// Body returns the Markdown body, or nil.
func (c *IssueComment) Body() *string {
	return c.f.Body
}

// User returns the author, or nil for deleted accounts.
func (c *IssueComment) User() *User {
	return c.f.User
}

// AuthorAssociation returns the author's relationship to the repository.
func (c *IssueComment) AuthorAssociation() AuthorAssociation {
	return c.f.AuthorAssociation
}

// Reactions returns the reaction rollup, or nil.
func (c *IssueComment) Reactions() *Reactions {
	return c.f.Reactions
}

// CreatedAt returns when the comment was created.
func (c *IssueComment) CreatedAt() field.Timestamp {
	return c.f.CreatedAt
}

// UpdatedAt returns when the comment was last edited.
func (c *IssueComment) UpdatedAt() field.Timestamp {
	return c.f.UpdatedAt
}
