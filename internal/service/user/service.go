package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/workpulse/workforce-backend-go/internal/domain/adjustment"
	"github.com/workpulse/workforce-backend-go/internal/domain/attendance"
	"github.com/workpulse/workforce-backend-go/internal/domain/leave"
	"github.com/workpulse/workforce-backend-go/internal/domain/user"
	"github.com/workpulse/workforce-backend-go/internal/pkg/database"
	"github.com/workpulse/workforce-backend-go/internal/repository/postgresql"
)

type userServiceImpl struct {
	userRepo         user.UserRepository
	sessionRepo      attendance.SessionRepository
	adjustmentRepo   adjustment.AdjustmentRepository
	leaveRepo        leave.LeaveRepository
	refreshTokenRepo postgresql.RefreshTokenRepository
	runTx            func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func NewUserService(
	db *database.DB,
	userRepo user.UserRepository,
	sessionRepo attendance.SessionRepository,
	adjustmentRepo adjustment.AdjustmentRepository,
	leaveRepo leave.LeaveRepository,
	refreshTokenRepo postgresql.RefreshTokenRepository,
) user.UserService {
	return &userServiceImpl{
		userRepo:         userRepo,
		sessionRepo:      sessionRepo,
		adjustmentRepo:   adjustmentRepo,
		leaveRepo:        leaveRepo,
		refreshTokenRepo: refreshTokenRepo,
		runTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func (s *userServiceImpl) Register(ctx context.Context, req user.RegisterRequest) (user.UserResponse, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return user.UserResponse{}, user.ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("hash password: %w", err)
	}

	role := user.RoleEmployee
	if req.Role != nil {
		role = user.Role(*req.Role)
	}

	newUser := &user.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Mobile:       req.Mobile,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return user.UserResponse{}, fmt.Errorf("create user: %w", err)
	}

	return user.ToResponse(*newUser), nil
}

func (s *userServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, user.ToResponse(u))
	}
	return out, nil
}

func (s *userServiceImpl) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(*u), nil
}

func (s *userServiceImpl) GetByUsername(ctx context.Context, username string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(*u), nil
}

func (s *userServiceImpl) UpdateProfile(ctx context.Context, username string, req user.UpdateProfileRequest) (user.UserResponse, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return user.UserResponse{}, err
	}
	return s.applyProfileUpdate(ctx, u, req)
}

func (s *userServiceImpl) UpdateProfileByID(ctx context.Context, id string, req user.UpdateProfileRequest) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return s.applyProfileUpdate(ctx, u, req)
}

func (s *userServiceImpl) applyProfileUpdate(ctx context.Context, u *user.User, req user.UpdateProfileRequest) (user.UserResponse, error) {
	if req.FirstName != nil {
		u.FirstName = req.FirstName
	}
	if req.LastName != nil {
		u.LastName = req.LastName
	}
	if req.Email != nil {
		u.Email = req.Email
	}
	if req.Mobile != nil {
		u.Mobile = req.Mobile
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		return user.UserResponse{}, fmt.Errorf("update user: %w", err)
	}

	return user.ToResponse(*u), nil
}

// Delete removes the user and every record that references them in one
// transaction, so a failure partway leaves nothing orphaned.
func (s *userServiceImpl) Delete(ctx context.Context, id string) error {
	exists, err := s.userRepo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return user.ErrUserNotFound
	}

	return s.runTx(ctx, func(txCtx context.Context) error {
		if err := s.leaveRepo.DeleteAllByUser(txCtx, id); err != nil {
			return fmt.Errorf("delete leaves: %w", err)
		}
		if err := s.adjustmentRepo.DeleteAllByUser(txCtx, id); err != nil {
			return fmt.Errorf("delete adjustments: %w", err)
		}
		if err := s.sessionRepo.DeleteAllByUser(txCtx, id); err != nil {
			return fmt.Errorf("delete attendance sessions: %w", err)
		}
		if err := s.refreshTokenRepo.DeleteAllByUser(txCtx, id); err != nil {
			return fmt.Errorf("delete refresh tokens: %w", err)
		}
		if err := s.userRepo.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
}
