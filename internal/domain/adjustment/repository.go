package adjustment

import (
	"context"
)

// AdjustmentRepository persists adjustment requests.
type AdjustmentRepository interface {
	Create(ctx context.Context, adj *Adjustment) error
	GetByID(ctx context.Context, id string) (*Adjustment, error)
	ListPending(ctx context.Context) ([]Adjustment, error)
	ListByUser(ctx context.Context, userID string) ([]Adjustment, error)
	// Decide moves a PENDING adjustment to APPROVED or REJECTED. It returns
	// ErrAlreadyProcessed when the row is no longer PENDING, which makes the
	// status change the serialization point for concurrent decisions.
	Decide(ctx context.Context, id string, status Status, processedBy string) (*Adjustment, error)
	DeleteAllByUser(ctx context.Context, userID string) error
}
