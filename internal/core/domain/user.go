package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Bio          string    `json:"bio,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanMutate reports whether the user may mutate a resource owned by ownerID.
// Owners and admins pass; everyone else is rejected.
func (u *User) CanMutate(ownerID string) bool {
	return u.ID == ownerID || u.IsAdmin()
}
