package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/workforce-backend-go/internal/domain/leave"
	"github.com/workpulse/workforce-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	users map[string]*user.User
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*user.User, error) {
	if u, ok := f.users[username]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByID(_ context.Context, id string) (bool, error) { return false, nil }

func (f *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := f.users[username]
	return ok, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]user.User, error) { return nil, nil }

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error { return nil }

func (f *fakeUserRepo) Update(_ context.Context, u *user.User) error { return nil }

func (f *fakeUserRepo) Delete(_ context.Context, id string) error { return nil }

type fakeLeaveRepo struct {
	leaves map[string]*leave.Leave
}

func (f *fakeLeaveRepo) Create(_ context.Context, l *leave.Leave) error {
	copied := *l
	f.leaves[l.ID] = &copied
	return nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (*leave.Leave, error) {
	if l, ok := f.leaves[id]; ok {
		copied := *l
		return &copied, nil
	}
	return nil, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) ListPending(_ context.Context) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range f.leaves {
		if l.Status == leave.StatusPending {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByUser(_ context.Context, userID string) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range f.leaves {
		if l.UserID == userID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) SumDaysStartingBetween(_ context.Context, userID string, start, end time.Time) (int, error) {
	total := 0
	for _, l := range f.leaves {
		if l.UserID != userID || l.Status == leave.StatusRejected {
			continue
		}
		if !l.StartDate.Before(start) && !l.StartDate.After(end) {
			total += l.Days
		}
	}
	return total, nil
}

func (f *fakeLeaveRepo) Process(_ context.Context, id string, status leave.Status, comment *string, processedBy string) (*leave.Leave, error) {
	l, ok := f.leaves[id]
	if !ok {
		return nil, leave.ErrLeaveNotFound
	}
	now := time.Now()
	l.Status = status
	l.AdminComment = comment
	l.ProcessedBy = &processedBy
	l.ProcessedAt = &now
	copied := *l
	return &copied, nil
}

func (f *fakeLeaveRepo) DeleteAllByUser(_ context.Context, userID string) error {
	for id, l := range f.leaves {
		if l.UserID == userID {
			delete(f.leaves, id)
		}
	}
	return nil
}

func newTestService(leaves *fakeLeaveRepo) *leaveServiceImpl {
	users := &fakeUserRepo{users: map[string]*user.User{
		"alice": {ID: "user-1", Username: "alice", Role: user.RoleEmployee},
		"bob":   {ID: "user-2", Username: "bob", Role: user.RoleAdmin},
	}}
	return &leaveServiceImpl{
		leaveRepo: leaves,
		userRepo:  users,
		now: func() time.Time {
			return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		},
	}
}

func apply(start, end string) *leave.ApplyLeaveRequest {
	return &leave.ApplyLeaveRequest{StartDate: start, EndDate: end, Reason: "vacation"}
}

func TestApplySingleDayCountsOne(t *testing.T) {
	svc := newTestService(&fakeLeaveRepo{leaves: map[string]*leave.Leave{}})

	created, err := svc.Apply(context.Background(), "alice", apply("2024-03-15", "2024-03-15"))
	require.NoError(t, err)

	assert.Equal(t, 1, created.Days)
	assert.Equal(t, string(leave.StatusPending), created.Status)
}

func TestApplyStartsTodayAllowed(t *testing.T) {
	svc := newTestService(&fakeLeaveRepo{leaves: map[string]*leave.Leave{}})

	created, err := svc.Apply(context.Background(), "alice", apply("2024-03-01", "2024-03-02"))
	require.NoError(t, err)
	assert.Equal(t, 2, created.Days)
}

func TestApplyStartInPastFails(t *testing.T) {
	svc := newTestService(&fakeLeaveRepo{leaves: map[string]*leave.Leave{}})

	_, err := svc.Apply(context.Background(), "alice", apply("2024-02-29", "2024-03-02"))
	require.Error(t, err)

	var invalid *leave.InvalidRequestError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Start date cannot be in the past", invalid.Message)
}

func TestApplyEndBeforeStartFails(t *testing.T) {
	svc := newTestService(&fakeLeaveRepo{leaves: map[string]*leave.Leave{}})

	_, err := svc.Apply(context.Background(), "alice", apply("2024-03-15", "2024-03-14"))
	require.Error(t, err)

	var invalid *leave.InvalidRequestError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "End date cannot be before start date", invalid.Message)
}

func TestMonthlyQuota(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&fakeLeaveRepo{leaves: map[string]*leave.Leave{}})

	// Two days used out of three.
	_, err := svc.Apply(ctx, "alice", apply("2024-03-11", "2024-03-12"))
	require.NoError(t, err)

	// Two more would exceed the quota.
	_, err = svc.Apply(ctx, "alice", apply("2024-03-18", "2024-03-19"))
	require.Error(t, err)

	var invalid *leave.InvalidRequestError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Monthly leave quota exceeded. Available: 1, Requested: 2", invalid.Message)

	// But one more fits exactly.
	_, err = svc.Apply(ctx, "alice", apply("2024-03-18", "2024-03-18"))
	require.NoError(t, err)
}

func TestRejectedLeaveReturnsDaysToQuota(t *testing.T) {
	ctx := context.Background()
	leaves := &fakeLeaveRepo{leaves: map[string]*leave.Leave{}}
	svc := newTestService(leaves)

	created, err := svc.Apply(ctx, "alice", apply("2024-03-11", "2024-03-13"))
	require.NoError(t, err)

	// Quota is exhausted while the request is pending.
	_, err = svc.Apply(ctx, "alice", apply("2024-03-18", "2024-03-18"))
	require.Error(t, err)

	_, err = svc.Process(ctx, created.ID, "bob", &leave.ProcessLeaveRequest{Status: string(leave.StatusRejected)})
	require.NoError(t, err)

	_, err = svc.Apply(ctx, "alice", apply("2024-03-18", "2024-03-20"))
	require.NoError(t, err)
}

func TestQuotaChargedToStartMonth(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&fakeLeaveRepo{leaves: map[string]*leave.Leave{}})

	// Three days starting in March exhaust March even though two fall in April.
	_, err := svc.Apply(ctx, "alice", apply("2024-03-30", "2024-04-01"))
	require.NoError(t, err)

	_, err = svc.Apply(ctx, "alice", apply("2024-03-31", "2024-03-31"))
	require.Error(t, err)

	// April's own quota is untouched.
	_, err = svc.Apply(ctx, "alice", apply("2024-04-02", "2024-04-04"))
	require.NoError(t, err)
}

func TestProcessRevisesEarlierDecision(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&fakeLeaveRepo{leaves: map[string]*leave.Leave{}})

	created, err := svc.Apply(ctx, "alice", apply("2024-03-11", "2024-03-11"))
	require.NoError(t, err)

	approved, err := svc.Process(ctx, created.ID, "bob", &leave.ProcessLeaveRequest{Status: string(leave.StatusApproved)})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), approved.Status)

	// Unlike adjustments, a second decision is accepted and overwrites the first.
	comment := "changed after reviewing the roster"
	revised, err := svc.Process(ctx, created.ID, "bob", &leave.ProcessLeaveRequest{Status: string(leave.StatusRejected), Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusRejected), revised.Status)
	require.NotNil(t, revised.AdminComment)
	assert.Equal(t, comment, *revised.AdminComment)
}

func TestProcessMissingLeave(t *testing.T) {
	svc := newTestService(&fakeLeaveRepo{leaves: map[string]*leave.Leave{}})

	_, err := svc.Process(context.Background(), "no-such-id", "bob", &leave.ProcessLeaveRequest{Status: string(leave.StatusApproved)})
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}
