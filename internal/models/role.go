package models

import "strings"

// Role is the closed set of account roles, ordered as a fixed hierarchy:
// Superadmin (level 0) creates Admins (level 1), Admins create the three
// level-2 team roles. The level-2 roles are siblings with no ordering
// among them.
type Role string

const (
	RoleSuperadmin  Role = "SUPERADMIN"
	RoleAdmin       Role = "ADMIN"
	RoleTeaching    Role = "TEACHING"
	RolePublishing  Role = "PUBLISHING"
	RoleSmallGroups Role = "SMALL_GROUPS"
)

// Roles lists every valid role, hierarchy order first.
var Roles = []Role{RoleSuperadmin, RoleAdmin, RoleTeaching, RolePublishing, RoleSmallGroups}

func (r Role) Valid() bool {
	switch r {
	case RoleSuperadmin, RoleAdmin, RoleTeaching, RolePublishing, RoleSmallGroups:
		return true
	}
	return false
}

// Level returns the hierarchy depth: 0 for Superadmin, 1 for Admin,
// 2 for the team roles. Returns -1 for an unknown role.
func (r Role) Level() int {
	switch r {
	case RoleSuperadmin:
		return 0
	case RoleAdmin:
		return 1
	case RoleTeaching, RolePublishing, RoleSmallGroups:
		return 2
	}
	return -1
}

// Parent returns the role one level above, i.e. the only role allowed to
// create, update, or delete accounts of role r. ok is false for Superadmin,
// which has no parent, and for unknown roles.
func (r Role) Parent() (parent Role, ok bool) {
	switch r {
	case RoleAdmin:
		return RoleSuperadmin, true
	case RoleTeaching, RolePublishing, RoleSmallGroups:
		return RoleAdmin, true
	}
	return "", false
}

// DisplayName renders the role for human-facing text ("Small Groups").
func (r Role) DisplayName() string {
	parts := strings.Split(strings.ToLower(string(r)), "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// ParseRole accepts either the stored enum value ("SMALL_GROUPS") or the
// route path segment ("small_groups").
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if r.Valid() {
		return r, true
	}
	return "", false
}
