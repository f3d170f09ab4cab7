package github

import "github.com/jmgilman/ghrest/github/field"

// TeamRole is a member's role within a team.
type TeamRole int

const (
	TeamRoleUnset TeamRole = iota
	TeamRoleMember
	TeamRoleMaintainer
)

var teamRoleTable = field.NewEnumTable("team_role", map[TeamRole]string{
	TeamRoleMember:     "member",
	TeamRoleMaintainer: "maintainer",
})

// String returns the wire value, or "" when unset.
func (v TeamRole) String() string {
	return teamRoleTable.Wire(v)
}

// MembershipState is whether a team membership has been accepted.
type MembershipState int

const (
	MembershipStateUnset MembershipState = iota
	MembershipStateActive
	MembershipStatePending
)

var membershipStateTable = field.NewEnumTable("membership_state", map[MembershipState]string{
	MembershipStateActive:  "active",
	MembershipStatePending: "pending",
})

// String returns the wire value, or "" when unset.
func (v MembershipState) String() string {
	return membershipStateTable.Wire(v)
}

// TeamMembershipFields holds the attributes of a TeamMembership.
type TeamMembershipFields struct {
	URL   string
	Role  TeamRole
	State MembershipState
}

// TeamMembership is a user's membership in a team. State is pending until
// an invited user accepts the organization invitation.
type TeamMembership struct {
	f TeamMembershipFields
}

// NewTeamMembership returns a TeamMembership with the given attributes.
func NewTeamMembership(f TeamMembershipFields) *TeamMembership {
	return &TeamMembership{f: f}
}

// DecodeTeamMembership builds a TeamMembership from its JSON object.
func DecodeTeamMembership(obj field.Object) (*TeamMembership, error) {
	d := newDecoder("TeamMembership", obj)
	f := TeamMembershipFields{
		URL:   obj.StringValue("url"),
		Role:  readEnum(d, teamRoleTable, "role"),
		State: readEnum(d, membershipStateTable, "state"),
	}
	if d.err != nil {
		return nil, d.err
	}
	return NewTeamMembership(f), nil
}

// URL returns the API URL of the membership.
func (m *TeamMembership) URL() string {
	return m.f.URL
}

// Role returns the member's role.
func (m *TeamMembership) Role() TeamRole {
	return m.f.Role
}

// State returns whether the membership is active or pending.
func (m *TeamMembership) State() MembershipState {
	return m.f.State
}
