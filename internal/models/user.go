package models

import "time"

type UserRole string

const (
	UserRoleUser       UserRole = "user"
	UserRoleAdmin      UserRole = "admin"
	UserRoleSuperAdmin UserRole = "super-admin"
)

// Valid reports whether the role is one of the three known roles.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin, UserRoleSuperAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role grants access to admin routes.
func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin || r == UserRoleSuperAdmin
}

type User struct {
	ID            string
	Email         string
	PasswordHash  []byte
	FirstName     string
	LastName      string
	Phone         *string
	Role          UserRole
	EmailVerified bool
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UserUpdate carries a partial user mutation. Nil fields are left
// untouched by the repository.
type UserUpdate struct {
	Email         *string
	FirstName     *string
	LastName      *string
	Phone         *string
	Role          *UserRole
	EmailVerified *bool
	IsActive      *bool
	PasswordHash  []byte
}

// Empty reports whether the update would touch no columns.
func (u UserUpdate) Empty() bool {
	return u.Email == nil && u.FirstName == nil && u.LastName == nil &&
		u.Phone == nil && u.Role == nil && u.EmailVerified == nil &&
		u.IsActive == nil && u.PasswordHash == nil
}

// Session is the server-side record backing a bearer credential. It is
// valid only while ExpiresAt is in the future and the owning user is active.
type Session struct {
	ID         string
	UserID     string
	TokenHash  []byte
	IPAddress  string
	UserAgent  string
	CreatedAt  time.Time
	LastSeenAt time.Time
	ExpiresAt  time.Time
}
