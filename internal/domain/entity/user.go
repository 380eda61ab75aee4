// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is an account that can sign in to the staff application.
type User struct {
	ID           int64  // Store-assigned identity.
	Username     string // Login name, unique case-insensitively.
	PasswordHash string // Encoded password digest produced by a PasswordHasher.
	Email        string // Contact email.
	Role         Role   // Capability role.
	EmployeeID   *int64 // Linked employee record; expected for RoleEmployee users, nil otherwise.
	IsActive     bool   // Inactive accounts cannot authenticate.
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	if u.EmployeeID != nil {
		id := *u.EmployeeID
		clone.EmployeeID = &id
	}

	return &clone
}
