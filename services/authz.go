package services

import "cerocafe-backend/entity"

// Actor is the authenticated identity behind a request, as resolved by the
// auth middleware. Ledger entries record it verbatim.
type Actor struct {
	ID   uint
	Name string
	Role string
}

// RequireStaff gates every operation reserved for the café crew. All
// role checks in the service layer go through here.
func RequireStaff(actor Actor) error {
	switch actor.Role {
	case entity.RoleStaff, entity.RoleOwner:
		return nil
	}
	return ErrForbidden
}
