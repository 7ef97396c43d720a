package userconfig

import (
	"fmt"
	"slices"
)

// Role is the access level of a user.
type Role string

const (
	RoleIntern Role = "intern"
	RoleMentor Role = "mentor"
	RoleAdmin  Role = "admin"
)

var roles = []Role{RoleIntern, RoleMentor, RoleAdmin}

// Roles returns every valid role in declaration order.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

func roleNames() []string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return names
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	return slices.Contains(roles, r)
}

// ParseRole converts s into a Role, rejecting anything but the declared names.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

// User is a validated user record. Values returned by this package always
// satisfy every field constraint at once.
type User struct {
	ID    string `json:"id" yaml:"id"`
	Email string `json:"email" yaml:"email"`
	Role  Role   `json:"role" yaml:"role"`
}

// Validate re-runs the shape validation against u as if it had been decoded
// from input. It returns nil for any User produced by this package.
func (u User) Validate(opts ...Option) error {
	_, err := validateUser(u.object(), newOptions(opts))
	return err
}

func (u User) object() map[string]any {
	return map[string]any{
		"id":    u.ID,
		"email": u.Email,
		"role":  string(u.Role),
	}
}
