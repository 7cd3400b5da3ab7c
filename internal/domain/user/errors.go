package user

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already registered")
	ErrAdminRequired  = errors.New("admin privilege required")
)
