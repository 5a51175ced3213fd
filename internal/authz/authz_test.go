package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gracechapel/pastor-mobile-api/internal/models"
)

func TestPermitCreateMatchesHierarchy(t *testing.T) {
	// Create is permitted iff the caller is the immediate parent of the target.
	for _, caller := range models.Roles {
		for _, target := range models.Roles {
			parent, ok := target.Parent()
			want := ok && parent == caller
			assert.Equalf(t, want, Permit(caller, ActionCreate, target),
				"create %s -> %s", caller, target)
		}
	}
}

func TestPermitUpdateDeleteSameAsCreate(t *testing.T) {
	for _, caller := range models.Roles {
		for _, target := range models.Roles {
			want := Permit(caller, ActionCreate, target)
			assert.Equal(t, want, Permit(caller, ActionUpdate, target))
			assert.Equal(t, want, Permit(caller, ActionDelete, target))
		}
	}
}

func TestPermitRead(t *testing.T) {
	tests := []struct {
		caller models.Role
		target models.Role
		want   bool
	}{
		{models.RoleSuperadmin, models.RoleAdmin, true},
		{models.RoleSuperadmin, models.RoleTeaching, true},
		{models.RoleAdmin, models.RoleTeaching, true},
		{models.RoleAdmin, models.RolePublishing, true},
		{models.RoleAdmin, models.RoleSmallGroups, true},
		{models.RoleAdmin, models.RoleAdmin, true},
		{models.RoleAdmin, models.RoleSuperadmin, false},
		{models.RoleTeaching, models.RoleTeaching, true},
		{models.RoleTeaching, models.RolePublishing, false},
		{models.RoleTeaching, models.RoleAdmin, false},
		{models.RoleSmallGroups, models.RoleSuperadmin, false},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, Permit(tt.caller, ActionRead, tt.target),
			"read %s -> %s", tt.caller, tt.target)
	}
}

func TestPermitRejectsUnknownRoles(t *testing.T) {
	assert.False(t, Permit("PASTOR", ActionCreate, models.RoleAdmin))
	assert.False(t, Permit(models.RoleSuperadmin, ActionRead, ""))
	assert.False(t, Permit(models.RoleSuperadmin, Action(99), models.RoleAdmin))
}

func TestSelfDeleteNeverPermitted(t *testing.T) {
	// No role is its own parent, so Delete(R, R) is always denied.
	for _, r := range models.Roles {
		assert.Falsef(t, Permit(r, ActionDelete, r), "self-delete %s", r)
	}
}
