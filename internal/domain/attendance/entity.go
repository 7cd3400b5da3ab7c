package attendance

import (
	"time"
)

// Session is one work period: opened by check-in, closed once by check-out.
// A closed session never reopens.
type Session struct {
	ID                   string
	UserID               string
	CheckInTime          time.Time
	CheckOutTime         *time.Time
	TotalDurationSeconds *int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Open reports whether the session has not been checked out yet.
func (s *Session) Open() bool {
	return s.CheckOutTime == nil
}
