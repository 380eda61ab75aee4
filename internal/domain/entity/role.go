// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleEmployee is a regular staff member with read-only access.
	RoleEmployee Role = "Employee"
	// RoleHR is a human-resources operator.
	RoleHR Role = "HR"
	// RoleAdmin is a system administrator.
	RoleAdmin Role = "Admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleHR, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole converts role text (as stored in session claims) back to a Role.
// Matching is case-insensitive; unknown text yields false.
func ParseRole(s string) (Role, bool) {
	for _, r := range []Role{RoleEmployee, RoleHR, RoleAdmin} {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return r, true
		}
	}

	return "", false
}
