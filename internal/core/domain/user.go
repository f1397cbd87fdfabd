package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleGuest = "guest"
)

// GuestSubject is the shared token subject used for anonymous guest sessions.
// No persisted user record backs this subject.
const GuestSubject = "guest"

// ValidRole reports whether r is a recognized role value.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleGuest
}

// User models an account in the system. HashedPassword is never serialized
// in any outward-facing response.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name,omitempty"`
	HashedPassword string    `json:"-"`
	Role           string    `json:"role"`
	Disabled       bool      `json:"disabled"`
	CreatedAt      time.Time `json:"created_at"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
