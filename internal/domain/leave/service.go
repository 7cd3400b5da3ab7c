package leave

import (
	"context"
)

// LeaveService covers leave applications and their processing. Unlike
// attendance adjustments, Process carries no already-processed guard: an
// admin may revise an earlier decision, and the latest one wins.
type LeaveService interface {
	Apply(ctx context.Context, username string, req *ApplyLeaveRequest) (*LeaveResponse, error)
	ListMine(ctx context.Context, username string) ([]LeaveResponse, error)
	ListPending(ctx context.Context) ([]LeaveResponse, error)
	Process(ctx context.Context, leaveID, processorUsername string, req *ProcessLeaveRequest) (*LeaveResponse, error)
}
