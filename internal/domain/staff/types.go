package staff

import "errors"

var ErrInvalidRole = errors.New("invalid staff role")

// Role controls access to the back office. Managers handle bookings,
// admins additionally manage promo codes and API keys.
type Role string

const (
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleManager, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}
