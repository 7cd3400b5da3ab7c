package adjustment

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Adjustment is a request to record an attendance session retroactively.
// It stays PENDING until an admin approves or rejects it; a processed
// adjustment is immutable.
type Adjustment struct {
	ID                string
	UserID            string
	RequestedCheckIn  time.Time
	RequestedCheckOut time.Time
	Reason            string
	Status            Status
	ProcessedBy       *string
	ProcessedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (a *Adjustment) Pending() bool {
	return a.Status == StatusPending
}
