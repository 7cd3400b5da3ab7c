package leave

import (
	"context"
	"time"
)

// LeaveRepository persists leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, leave *Leave) error
	GetByID(ctx context.Context, id string) (*Leave, error)
	ListPending(ctx context.Context) ([]Leave, error)
	ListByUser(ctx context.Context, userID string) ([]Leave, error)
	// SumDaysStartingBetween totals the Days of the user's non-REJECTED
	// leaves whose start date falls inside [start, end]. Used for the
	// monthly quota check.
	SumDaysStartingBetween(ctx context.Context, userID string, start, end time.Time) (int, error)
	// Process sets the status and admin comment of a leave unconditionally;
	// a processed leave may be re-processed to a new decision.
	Process(ctx context.Context, id string, status Status, comment *string, processedBy string) (*Leave, error)
	DeleteAllByUser(ctx context.Context, userID string) error
}
