package user

import "time"

type Role string

const (
	RoleEmployee Role = "EMPLOYEE" // Regular employee
	RoleAdmin    Role = "ADMIN"    // Can process adjustments/leaves and manage users
)

type User struct {
	ID           string
	Username     string
	PasswordHash string
	FirstName    *string
	LastName     *string
	Email        *string
	Mobile       *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanProcessRequests checks if the user may decide adjustment and leave requests.
func (u *User) CanProcessRequests() bool {
	return u.IsAdmin()
}
