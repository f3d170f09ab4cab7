package github

import "github.com/jmgilman/ghrest/github/field"

// UserFields holds the attributes of a User.
type UserFields struct {
	// Identification
	Login  string
	ID     int64
	NodeID string
	Type   string

	// Profile
	Name       *string
	Email      *string
	AvatarURL  string
	GravatarID *string
	SiteAdmin  bool

	// URLs
	URL     string
	HTMLURL string
}

// User is the summary GitHub embeds wherever a user or organization appears:
// repository owners, comment authors, team members and so on. Name and Email
// are only present on some endpoints.
type User struct {
	f UserFields
}

// NewUser returns a User with the given attributes.
func NewUser(f UserFields) *User {
	return &User{f: f}
}

// DecodeUser builds a User from its JSON object.
func DecodeUser(obj field.Object) (*User, error) {
	return NewUser(UserFields{
		Login:      obj.StringValue("login"),
		ID:         obj.Int64("id", 0),
		NodeID:     obj.StringValue("node_id"),
		Type:       obj.StringValue("type"),
		Name:       obj.String("name"),
		Email:      obj.String("email"),
		AvatarURL:  obj.StringValue("avatar_url"),
		GravatarID: obj.String("gravatar_id"),
		SiteAdmin:  obj.Bool("site_admin"),
		URL:        obj.StringValue("url"),
		HTMLURL:    obj.StringValue("html_url"),
	}), nil
}

// Login returns the account login.
func (u *User) Login() string {
	return u.f.Login
}

// ID returns the numeric account id.
func (u *User) ID() int64 {
	return u.f.ID
}

// NodeID returns the GraphQL node id.
func (u *User) NodeID() string {
	return u.f.NodeID
}

// Type returns the account type, such as "User" or "Organization".
func (u *User) Type() string {
	return u.f.Type
}

// Name returns the display name, or nil when not included.
func (u *User) Name() *string {
	return u.f.Name
}

// Email returns the public email, or nil when not included.
func (u *User) Email() *string {
	return u.f.Email
}

// AvatarURL returns the avatar image URL.
func (u *User) AvatarURL() string {
	return u.f.AvatarURL
}

// GravatarID returns the Gravatar id, or nil.
func (u *User) GravatarID() *string {
	return u.f.GravatarID
}

// SiteAdmin reports whether the account is a site administrator.
func (u *User) SiteAdmin() bool {
	return u.f.SiteAdmin
}

// URL returns the API URL of the account.
func (u *User) URL() string {
	return u.f.URL
}

// HTMLURL returns the web URL of the account.
func (u *User) HTMLURL() string {
	return u.f.HTMLURL
}
