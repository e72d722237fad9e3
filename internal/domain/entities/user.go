package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleGuest      UserRole = "GUEST"
	UserRoleHost       UserRole = "HOST"
	UserRoleSuperAdmin UserRole = "SUPERADMIN"
)

// User represents a user entity
type User struct {
	ID           uuid.UUID   `json:"id"`
	Email        string      `json:"email"`
	Name         string      `json:"name"`
	PasswordHash string      `json:"-"`
	Role         UserRole    `json:"role"`
	AvatarURL    null.String `json:"avatar,omitempty"`
	// IDVerified is the global identity flag. When set, it short-circuits
	// every per-host verification check.
	IDVerified bool      `json:"idVerified"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the platform-wide admin role.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleSuperAdmin
}

// RegisterInput represents input for registering a user
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=4"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileInput represents input for editing the own profile
type UpdateProfileInput struct {
	Name   string `json:"name" binding:"required,min=2,max=100"`
	Avatar string `json:"avatar"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}
