package github

import "github.com/jmgilman/ghrest/github/field"

// ProjectState is whether a classic project is open.
type ProjectState int

const (
	ProjectStateUnset ProjectState = iota
	ProjectStateOpen
	ProjectStateClosed
)

var projectStateTable = field.NewEnumTable("project_state", map[ProjectState]string{
	ProjectStateOpen:   "open",
	ProjectStateClosed: "closed",
})

// String returns the wire value, or "" when unset.
func (v ProjectState) String() string {
	return projectStateTable.Wire(v)
}

// ProjectPermission is the baseline permission organization members have on a project.
type ProjectPermission int

const (
	ProjectPermissionUnset ProjectPermission = iota
	ProjectPermissionRead
	ProjectPermissionWrite
	ProjectPermissionAdmin
	ProjectPermissionNone
)

var projectPermissionTable = field.NewEnumTable("organization_permission", map[ProjectPermission]string{
	ProjectPermissionRead:  "read",
	ProjectPermissionWrite: "write",
	ProjectPermissionAdmin: "admin",
	ProjectPermissionNone:  "none",
})

// String returns the wire value, or "" when unset.
func (v ProjectPermission) String() string {
	return projectPermissionTable.Wire(v)
}

// ProjectFields holds the attributes of a Project.
type ProjectFields struct {
	ID                     int64
	NodeID                 string
	Number                 int
	Name                   string
	Body                   *string
	State                  ProjectState
	Creator                *User
	OrganizationPermission ProjectPermission
	Private                bool
	OwnerURL               string
	URL                    string
	HTMLURL                string
	ColumnsURL             string
	CreatedAt              field.Timestamp
	UpdatedAt              field.Timestamp
}

// Project is a classic project board owned by an organization, a
// repository or a user.
type Project struct {
	f ProjectFields
}

// NewProject returns a Project with the given attributes.
func NewProject(f ProjectFields) *Project {
	return &Project{f: f}
}

// DecodeProject builds a Project from its JSON object.
func DecodeProject(obj field.Object) (*Project, error) {
	d := newDecoder("Project", obj)
	f := ProjectFields{
		ID:                     obj.Int64("id", 0),
		NodeID:                 obj.StringValue("node_id"),
		Number:                 obj.Int("number", 0),
		Name:                   obj.StringValue("name"),
		Body:                   obj.String("body"),
		State:                  readEnum(d, projectStateTable, "state"),
		Creator:                readNested(d, "creator", DecodeUser),
		OrganizationPermission: readEnum(d, projectPermissionTable, "organization_permission"),
		Private:                obj.Bool("private"),
		OwnerURL:               obj.StringValue("owner_url"),
		URL:                    obj.StringValue("url"),
		HTMLURL:                obj.StringValue("html_url"),
		ColumnsURL:             obj.StringValue("columns_url"),
		CreatedAt:              obj.Timestamp("created_at"),
		UpdatedAt:              obj.Timestamp("updated_at"),
	}
	if d.err != nil {
		return nil, d.err
	}
	return NewProject(f), nil
}

// ID returns the project id.
func (p *Project) ID() int64 {
	return p.f.ID
}

// NodeID returns the GraphQL node id.
func (p *Project) NodeID() string {
	return p.f.NodeID
}

// Number returns the project number within its owner.
func (p *Project) Number() int {
	return p.f.Number
}

// Name returns the project name.
func (p *Project) Name() string {
	return p.f.Name
}

// Body returns the description, or nil.
func (p *Project) Body() *string {
	return p.f.Body
}

// State returns whether the project is open or closed.
func (p *Project) State() ProjectState {
	return p.f.State
}

// Creator returns the account that created the project, or nil.
func (p *Project) Creator() *User {
	return p.f.Creator
}

// OrganizationPermission returns the baseline organization permission. Unset for non-organization projects.
func (p *Project) OrganizationPermission() ProjectPermission {
	return p.f.OrganizationPermission
}

// IsPrivate reports whether the project is private.
func (p *Project) IsPrivate() bool {
	return p.f.Private
}

// OwnerURL returns the API URL of the owner.
func (p *Project) OwnerURL() string {
	return p.f.OwnerURL
}

// URL returns the API URL.
func (p *Project) URL() string {
	return p.f.URL
}

// HTMLURL returns the web URL.
func (p *Project) HTMLURL() string {
	return p.f.HTMLURL
}

// ColumnsURL returns the API URL of the project's columns.
func (p *Project) ColumnsURL() string {
	return p.f.ColumnsURL
}

// CreatedAt returns when the project was created.
func (p *Project) CreatedAt() field.Timestamp {
	return p.f.CreatedAt
}

// UpdatedAt returns when the project was last updated.
func (p *Project) UpdatedAt() field.Timestamp {
	return p.f.UpdatedAt
}
