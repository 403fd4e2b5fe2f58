package entity

import (
	"errors"
	"strings"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleEmployee1 Role = "Employee1"
	RoleEmployee2 Role = "Employee2"
	RoleUser      Role = "User"
)

var ErrUnknownRole = errors.New("unrecognized role configuration")

var roles = []Role{RoleAdmin, RoleEmployee1, RoleEmployee2, RoleUser}

// ParseRole is the only place a stored role name is turned into a Role.
// Matching ignores case and surrounding blanks.
func ParseRole(s string) (Role, error) {
	s = strings.TrimSpace(s)
	for _, r := range roles {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return "", ErrUnknownRole
}

// LandingPath is where a freshly signed-in account is sent.
func (r Role) LandingPath() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleEmployee1:
		return "/employee1"
	case RoleEmployee2:
		return "/employee2"
	default:
		return "/"
	}
}

// IsStaff covers everyone allowed to see the order board.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleEmployee1 || r == RoleEmployee2
}

func StaffRoles() []Role { return []Role{RoleAdmin, RoleEmployee1, RoleEmployee2} }
