package domain

import (
	"time"

	"github.com/google/uuid"
)

// Actor is an authenticated user acting on inventory.
type Actor struct {
	ID          uuid.UUID
	Email       string
	FullName    string
	Role        Role
	Permissions PermissionMatrix
	CreatedAt   time.Time
}

// Can reports whether the actor holds p. Admins hold every permission.
func (a Actor) Can(p Permission) bool {
	if a.Role.IsAdmin() {
		return true
	}
	return a.Permissions.Allows(p)
}
