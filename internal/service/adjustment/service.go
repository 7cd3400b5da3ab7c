package adjustment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/workpulse/workforce-backend-go/internal/domain/adjustment"
	"github.com/workpulse/workforce-backend-go/internal/domain/attendance"
	"github.com/workpulse/workforce-backend-go/internal/domain/user"
	"github.com/workpulse/workforce-backend-go/internal/pkg/database"
	"github.com/workpulse/workforce-backend-go/internal/repository/postgresql"
)

type adjustmentServiceImpl struct {
	adjustmentRepo adjustment.AdjustmentRepository
	sessionRepo    attendance.SessionRepository
	userRepo       user.UserRepository
	runTx          func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func NewAdjustmentService(
	db *database.DB,
	adjustmentRepo adjustment.AdjustmentRepository,
	sessionRepo attendance.SessionRepository,
	userRepo user.UserRepository,
) adjustment.AdjustmentService {
	return &adjustmentServiceImpl{
		adjustmentRepo: adjustmentRepo,
		sessionRepo:    sessionRepo,
		userRepo:       userRepo,
		runTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func (s *adjustmentServiceImpl) Request(ctx context.Context, username string, req *adjustment.RequestAdjustmentRequest) (*adjustment.AdjustmentResponse, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	checkIn, checkOut, err := req.Times()
	if err != nil {
		return nil, err
	}

	adj := &adjustment.Adjustment{
		ID:                uuid.NewString(),
		UserID:            u.ID,
		RequestedCheckIn:  checkIn,
		RequestedCheckOut: checkOut,
		Reason:            req.Reason,
		Status:            adjustment.StatusPending,
	}
	if err := s.adjustmentRepo.Create(ctx, adj); err != nil {
		return nil, fmt.Errorf("create adjustment: %w", err)
	}

	resp := adjustment.ToResponse(*adj)
	return &resp, nil
}

func (s *adjustmentServiceImpl) ListPending(ctx context.Context) ([]adjustment.AdjustmentResponse, error) {
	adjustments, err := s.adjustmentRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending adjustments: %w", err)
	}
	return adjustment.ToResponses(adjustments), nil
}

func (s *adjustmentServiceImpl) ListMine(ctx context.Context, username string) ([]adjustment.AdjustmentResponse, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	adjustments, err := s.adjustmentRepo.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	return adjustment.ToResponses(adjustments), nil
}

func (s *adjustmentServiceImpl) Approve(ctx context.Context, adjustmentID, approverUsername string) (*adjustment.AdjustmentResponse, error) {
	approver, err := s.requireAdmin(ctx, approverUsername)
	if err != nil {
		return nil, err
	}

	// The decision and the synthesized session commit together or not at all.
	var decided *adjustment.Adjustment
	err = s.runTx(ctx, func(txCtx context.Context) error {
		decided, err = s.adjustmentRepo.Decide(txCtx, adjustmentID, adjustment.StatusApproved, approver.Username)
		if err != nil {
			return err
		}

		duration := int64(decided.RequestedCheckOut.Sub(decided.RequestedCheckIn).Seconds())
		checkOut := decided.RequestedCheckOut
		session := &attendance.Session{
			ID:                   uuid.NewString(),
			UserID:               decided.UserID,
			CheckInTime:          decided.RequestedCheckIn,
			CheckOutTime:         &checkOut,
			TotalDurationSeconds: &duration,
		}
		if err := s.sessionRepo.Create(txCtx, session); err != nil {
			return fmt.Errorf("create session from adjustment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := adjustment.ToResponse(*decided)
	return &resp, nil
}

func (s *adjustmentServiceImpl) Reject(ctx context.Context, adjustmentID, approverUsername string) (*adjustment.AdjustmentResponse, error) {
	approver, err := s.requireAdmin(ctx, approverUsername)
	if err != nil {
		return nil, err
	}

	decided, err := s.adjustmentRepo.Decide(ctx, adjustmentID, adjustment.StatusRejected, approver.Username)
	if err != nil {
		return nil, err
	}

	resp := adjustment.ToResponse(*decided)
	return &resp, nil
}

func (s *adjustmentServiceImpl) requireAdmin(ctx context.Context, username string) (*user.User, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !u.IsAdmin() {
		return nil, user.ErrAdminRequired
	}
	return u, nil
}
