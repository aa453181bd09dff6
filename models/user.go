package models

import "time"

// Role determines which parts of the API an account may use.
type Role string

const (
	// RoleCustomer is the default role assigned at registration.
	RoleCustomer Role = "customer"

	// RoleStaff grants access to the kitchen and order-management routes.
	RoleStaff Role = "staff"

	// RoleManager grants full administrative access, including menu CRUD,
	// scheduling, and analytics.
	RoleManager Role = "manager"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleManager:
		return true
	}
	return false
}

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id,omitempty"`

	// Login is the unique user login identifier.
	// Typically used during authentication.
	Login string `json:"login"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Phone is an optional contact number. Required for meal pass purchases.
	Phone string `json:"phone,omitempty"`

	// Password carries the plaintext password on register/login requests only.
	// It is never persisted and never serialized in responses.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the password.
	// It is used only at the persistence layer and never leaves the server.
	PasswordHash string `json:"-"`

	// Role determines route-level authorization. See [Role].
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
