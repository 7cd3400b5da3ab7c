package user

import (
	"context"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]User, error)
	// Create fills in the storage-assigned timestamps on success.
	Create(ctx context.Context, newUser *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
}
