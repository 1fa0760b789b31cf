package user

import (
	"github.com/google/uuid"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, Role: role}
}

func (a Actor) IsPrivileged() bool {
	return a.Role.IsPrivileged()
}

// CanAccess allows the owner or a privileged actor.
func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	return a.IsPrivileged() || a.ID == ownerID
}

func (a Actor) RequireAccess(ownerID uuid.UUID) error {
	if !a.CanAccess(ownerID) {
		return ErrNotOwner
	}
	return nil
}

func (a Actor) RequirePrivileged() error {
	if !a.IsPrivileged() {
		return ErrNotAdmin
	}
	return nil
}
