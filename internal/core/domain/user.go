package domain

// UserRole is the coarse access level attached to a user.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
	RoleGuest UserRole = "guest"
)

// Valid reports whether r is one of the enumerated roles.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleUser || r == RoleGuest
}

// User represents an authenticated principal. The UserID is the opaque
// identity every transaction is keyed by.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	GoogleID     string   `json:"-"`
	AuditFields
}

// Profile is the user-editable onboarding profile. A user with no saved
// profile has not completed onboarding.
type Profile struct {
	Name string `json:"name"`
}

// GoogleUserInfo is the subset of the Google userinfo payload the sign-in
// flow consumes.
type GoogleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
