package adjustment

import (
	"context"
)

// AdjustmentService covers the retroactive-attendance workflow. Approval
// also synthesizes the attendance session for the requested window; the two
// writes happen in one transaction. Approve and Reject verify the acting
// user's role themselves, so they stay safe even if a route is wired
// without the admin middleware.
type AdjustmentService interface {
	Request(ctx context.Context, username string, req *RequestAdjustmentRequest) (*AdjustmentResponse, error)
	ListPending(ctx context.Context) ([]AdjustmentResponse, error)
	ListMine(ctx context.Context, username string) ([]AdjustmentResponse, error)
	Approve(ctx context.Context, adjustmentID, approverUsername string) (*AdjustmentResponse, error)
	Reject(ctx context.Context, adjustmentID, approverUsername string) (*AdjustmentResponse, error)
}
