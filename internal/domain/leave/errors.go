package leave

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrLeaveNotFound = errors.New("leave request not found")
)

// InvalidRequestError rejects a leave application with a message the client
// can show verbatim. Each rejection reason has its own message so callers
// can tell them apart.
type InvalidRequestError struct {
	Message string
}

func (e *InvalidRequestError) Error() string {
	return e.Message
}

// ValidateWindow checks the requested date range against the current day.
// The start may be today; only days strictly before today are rejected.
func ValidateWindow(start, end, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if start.Before(today) {
		return &InvalidRequestError{Message: "Start date cannot be in the past"}
	}
	if end.Before(start) {
		return &InvalidRequestError{Message: "End date cannot be before start date"}
	}
	return nil
}

// QuotaExceededError reports how many days remain in the month's quota
// against how many were requested.
func QuotaExceededError(available, requested int) error {
	return &InvalidRequestError{
		Message: fmt.Sprintf("Monthly leave quota exceeded. Available: %d, Requested: %d", available, requested),
	}
}
