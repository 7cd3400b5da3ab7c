package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/workpulse/workforce-backend-go/internal/domain/leave"
	"github.com/workpulse/workforce-backend-go/internal/domain/user"
	"github.com/workpulse/workforce-backend-go/internal/pkg/calendar"
)

type leaveServiceImpl struct {
	leaveRepo leave.LeaveRepository
	userRepo  user.UserRepository
	now       func() time.Time
}

func NewLeaveService(leaveRepo leave.LeaveRepository, userRepo user.UserRepository) leave.LeaveService {
	return &leaveServiceImpl{
		leaveRepo: leaveRepo,
		userRepo:  userRepo,
		now:       time.Now,
	}
}

func (s *leaveServiceImpl) Apply(ctx context.Context, username string, req *leave.ApplyLeaveRequest) (*leave.LeaveResponse, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	start, end, err := req.Dates()
	if err != nil {
		return nil, err
	}

	if err := leave.ValidateWindow(start, end, s.now()); err != nil {
		return nil, err
	}
	days := calendar.DaysInclusive(start, end)

	// Quota is charged to the month the leave starts in; a request spanning
	// the month boundary still counts fully against the start month.
	monthStart, monthEnd := calendar.MonthWindow(start)
	used, err := s.leaveRepo.SumDaysStartingBetween(ctx, u.ID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("sum leave days: %w", err)
	}
	available := leave.MonthlyQuotaDays - used
	if available < 0 {
		available = 0
	}
	if days > available {
		return nil, leave.QuotaExceededError(available, days)
	}

	lv := &leave.Leave{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		StartDate: start,
		EndDate:   end,
		Days:      days,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	}
	if err := s.leaveRepo.Create(ctx, lv); err != nil {
		return nil, fmt.Errorf("create leave: %w", err)
	}

	resp := leave.ToResponse(*lv)
	return &resp, nil
}

func (s *leaveServiceImpl) ListMine(ctx context.Context, username string) ([]leave.LeaveResponse, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	leaves, err := s.leaveRepo.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("list leaves: %w", err)
	}
	return leave.ToResponses(leaves), nil
}

func (s *leaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveResponse, error) {
	leaves, err := s.leaveRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending leaves: %w", err)
	}
	return leave.ToResponses(leaves), nil
}

// Process records the decision without checking the current status, so an
// admin can revise an earlier call. Role enforcement happens at the route.
func (s *leaveServiceImpl) Process(ctx context.Context, leaveID, processorUsername string, req *leave.ProcessLeaveRequest) (*leave.LeaveResponse, error) {
	processor, err := s.userRepo.GetByUsername(ctx, processorUsername)
	if err != nil {
		return nil, err
	}

	processed, err := s.leaveRepo.Process(ctx, leaveID, leave.Status(req.Status), req.Comment, processor.Username)
	if err != nil {
		return nil, err
	}

	resp := leave.ToResponse(*processed)
	return &resp, nil
}
