package entity

import "strconv"

// SessionKey is the fixed key under which claims are kept in session storage.
const SessionKey = "UserSession"

// NoEmployeeID is the principal employee id used when claims carry none.
const NoEmployeeID int64 = 0

// SessionClaims is the public snapshot of a User persisted for the browser session.
// It is not re-validated against the credential store on every read.
type SessionClaims struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	EmployeeID *int64 `json:"employeeId,omitempty"`
}

// ClaimsFromUser extracts the session claims of a user.
func ClaimsFromUser(u *User) *SessionClaims {
	claims := &SessionClaims{
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role.String(),
	}
	if u.EmployeeID != nil {
		id := *u.EmployeeID
		claims.EmployeeID = &id
	}

	return claims
}

// Principal is the caller identity reconstructed from session claims.
type Principal struct {
	Name       string
	Email      string
	Role       Role
	EmployeeID int64 // NoEmployeeID when the claims carry none.
}

// EmployeeIDText renders the employee id the way it is exposed as a claim value.
func (p *Principal) EmployeeIDText() string {
	return strconv.FormatInt(p.EmployeeID, 10)
}

// AuthState is the session state: Anonymous when Principal is nil.
type AuthState struct {
	Principal *Principal
	Claims    *SessionClaims
}

// Anonymous returns the unauthenticated state.
func Anonymous() *AuthState {
	return &AuthState{}
}

// Authenticated builds the state for the given claims.
// Unknown role text reconstructs to an empty Role, which grants no capability.
func Authenticated(claims *SessionClaims) *AuthState {
	role, _ := ParseRole(claims.Role)
	employeeID := NoEmployeeID
	if claims.EmployeeID != nil {
		employeeID = *claims.EmployeeID
	}

	return &AuthState{
		Claims: claims,
		Principal: &Principal{
			Name:       claims.Username,
			Email:      claims.Email,
			Role:       role,
			EmployeeID: employeeID,
		},
	}
}

// IsAuthenticated reports whether the state carries a principal.
func (s *AuthState) IsAuthenticated() bool {
	return s != nil && s.Principal != nil
}

// Role returns the principal role, or an empty Role when anonymous.
func (s *AuthState) Role() Role {
	if !s.IsAuthenticated() {
		return ""
	}

	return s.Principal.Role
}

// AuthStateEvent is published on every session transition.
type AuthStateEvent struct {
	RequestID     string `json:"request_id,omitempty"`
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
	Role          string `json:"role,omitempty"`
	OccurredAt    int64  `json:"occurred_at"`
}
