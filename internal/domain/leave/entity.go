package leave

import (
	"time"
)

// MonthlyQuotaDays is the number of leave days a user may take per
// calendar month. A leave counts against the month its start date falls in.
const MonthlyQuotaDays = 3

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Leave is a request for time off. Days is the inclusive day count of the
// [StartDate, EndDate] range.
type Leave struct {
	ID           string
	UserID       string
	StartDate    time.Time
	EndDate      time.Time
	Days         int
	Reason       string
	Status       Status
	AdminComment *string
	ProcessedBy  *string
	ProcessedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
