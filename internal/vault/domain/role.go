package domain

import "fmt"

// Role is the flat authorization level of a user.
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// ParseRole accepts the canonical role names only.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("domain: unknown role %q", s)
	}
}

func (r Role) String() string { return string(r) }

// RoleSet is the set of roles an operation admits.
type RoleSet map[Role]struct{}

func NewRoleSet(roles ...Role) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

// Allowed reports whether actual is one of the required roles. An empty set
// admits nobody.
func Allowed(required RoleSet, actual Role) bool {
	_, ok := required[actual]
	return ok
}
