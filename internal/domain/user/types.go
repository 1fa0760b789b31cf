package user

type Role string

const (
	RoleGuest Role = "guest"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsPrivileged reports whether the role may bypass ownership checks.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
