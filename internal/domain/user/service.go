package user

import (
	"context"
)

// UserService defines account management operations. Callers pass the
// authenticated identity explicitly; no ambient security context is consulted.
type UserService interface {
	// Register creates a new account with a bcrypt-hashed password.
	// Role defaults to EMPLOYEE when not supplied.
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)

	// List returns all users (admin).
	List(ctx context.Context) ([]UserResponse, error)

	// GetByID returns a single user by id (admin).
	GetByID(ctx context.Context, id string) (UserResponse, error)

	// GetByUsername returns the caller's own record.
	GetByUsername(ctx context.Context, username string) (UserResponse, error)

	// UpdateProfile updates the caller's own profile.
	UpdateProfile(ctx context.Context, username string, req UpdateProfileRequest) (UserResponse, error)

	// UpdateProfileByID updates any user's profile (admin).
	UpdateProfileByID(ctx context.Context, id string, req UpdateProfileRequest) (UserResponse, error)

	// Delete removes a user together with all their attendance sessions,
	// adjustments and leaves in a single transaction (admin).
	Delete(ctx context.Context, id string) error
}
