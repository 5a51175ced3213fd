// Package authz decides which operations a caller role may perform on a
// target role. It is a pure decision layer: handlers consult it and perform
// the I/O themselves.
package authz

import "github.com/gracechapel/pastor-mobile-api/internal/models"

type Action int

const (
	ActionCreate Action = iota
	ActionRead
	ActionUpdate
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionRead:
		return "read"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	}
	return "unknown"
}

// Permit reports whether caller may perform action on accounts of the target
// role. Create, Update, and Delete are reserved for the immediate parent of
// the target role. Read is allowed for Superadmin and Admin on any role at or
// below their own level; the level-2 team roles may read only their own role.
// Self-service profile access goes through the /user/me endpoints and does
// not consult Permit.
func Permit(caller models.Role, action Action, target models.Role) bool {
	if !caller.Valid() || !target.Valid() {
		return false
	}

	switch action {
	case ActionCreate, ActionUpdate, ActionDelete:
		parent, ok := target.Parent()
		return ok && parent == caller
	case ActionRead:
		if caller.Level() <= 1 {
			return caller.Level() <= target.Level()
		}
		return caller == target
	}
	return false
}
