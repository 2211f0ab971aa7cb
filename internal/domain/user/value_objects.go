package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

// Principal is the authenticated caller as asserted by the identity provider.
// The zero value is an anonymous caller.
type Principal struct {
	id   uuid.UUID
	role Role
}

func NewPrincipal(id uuid.UUID, role Role) Principal {
	return Principal{id: id, role: role}
}

func Anonymous() Principal {
	return Principal{}
}

func (p Principal) ID() uuid.UUID { return p.id }
func (p Principal) Role() Role    { return p.role }

func (p Principal) IsAuthenticated() bool {
	return p.id != uuid.Nil && p.role.IsValid()
}

func (p Principal) CanSell() bool {
	return p.role == RoleSeller || p.role == RoleAdmin
}
