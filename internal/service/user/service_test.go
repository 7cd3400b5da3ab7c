package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/workpulse/workforce-backend-go/internal/domain/adjustment"
	"github.com/workpulse/workforce-backend-go/internal/domain/attendance"
	"github.com/workpulse/workforce-backend-go/internal/domain/leave"
	"github.com/workpulse/workforce-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	users     map[string]*user.User
	deleteErr error
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

func (f *fakeUserRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	for _, u := range f.users {
		if u.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := f.users[username]
	return ok, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	if _, ok := f.users[u.Username]; ok {
		return user.ErrUsernameExists
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	copied := *u
	f.users[u.Username] = &copied
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	if _, ok := f.users[u.Username]; !ok {
		return user.ErrUserNotFound
	}
	copied := *u
	f.users[u.Username] = &copied
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for username, u := range f.users {
		if u.ID == id {
			delete(f.users, username)
			return nil
		}
	}
	return user.ErrUserNotFound
}

// cascadeRecorder implements the per-user delete of each dependent
// repository and records which user it was called for.
type cascadeRecorder struct {
	deletedFor []string
}

func (c *cascadeRecorder) DeleteAllByUser(_ context.Context, userID string) error {
	c.deletedFor = append(c.deletedFor, userID)
	return nil
}

type fakeSessionRepo struct{ cascadeRecorder }

func (f *fakeSessionRepo) Create(_ context.Context, s *attendance.Session) error { return nil }
func (f *fakeSessionRepo) GetByID(_ context.Context, id string) (*attendance.Session, error) {
	return nil, attendance.ErrSessionNotFound
}
func (f *fakeSessionRepo) GetOpenSession(_ context.Context, userID string) (*attendance.Session, error) {
	return nil, attendance.ErrNoActiveSession
}
func (f *fakeSessionRepo) Close(_ context.Context, s *attendance.Session) error { return nil }
func (f *fakeSessionRepo) ListByUser(_ context.Context, userID string) ([]attendance.Session, error) {
	return nil, nil
}
func (f *fakeSessionRepo) ListByUserBetween(_ context.Context, userID string, start, end time.Time) ([]attendance.Session, error) {
	return nil, nil
}

type fakeAdjustmentRepo struct{ cascadeRecorder }

func (f *fakeAdjustmentRepo) Create(_ context.Context, a *adjustment.Adjustment) error { return nil }
func (f *fakeAdjustmentRepo) GetByID(_ context.Context, id string) (*adjustment.Adjustment, error) {
	return nil, adjustment.ErrAdjustmentNotFound
}
func (f *fakeAdjustmentRepo) ListPending(_ context.Context) ([]adjustment.Adjustment, error) {
	return nil, nil
}
func (f *fakeAdjustmentRepo) ListByUser(_ context.Context, userID string) ([]adjustment.Adjustment, error) {
	return nil, nil
}
func (f *fakeAdjustmentRepo) Decide(_ context.Context, id string, status adjustment.Status, processedBy string) (*adjustment.Adjustment, error) {
	return nil, adjustment.ErrAdjustmentNotFound
}

type fakeLeaveRepo struct{ cascadeRecorder }

func (f *fakeLeaveRepo) Create(_ context.Context, l *leave.Leave) error { return nil }
func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (*leave.Leave, error) {
	return nil, leave.ErrLeaveNotFound
}
func (f *fakeLeaveRepo) ListPending(_ context.Context) ([]leave.Leave, error) { return nil, nil }
func (f *fakeLeaveRepo) ListByUser(_ context.Context, userID string) ([]leave.Leave, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) SumDaysStartingBetween(_ context.Context, userID string, start, end time.Time) (int, error) {
	return 0, nil
}
func (f *fakeLeaveRepo) Process(_ context.Context, id string, status leave.Status, comment *string, processedBy string) (*leave.Leave, error) {
	return nil, leave.ErrLeaveNotFound
}

type fakeRefreshTokenRepo struct{ cascadeRecorder }

func (f *fakeRefreshTokenRepo) Create(_ context.Context, userID, token string, expiresAt int64) error {
	return nil
}
func (f *fakeRefreshTokenRepo) IsRevoked(_ context.Context, token string) (bool, error) {
	return false, nil
}
func (f *fakeRefreshTokenRepo) Revoke(_ context.Context, token string) error { return nil }

type testEnv struct {
	svc        *userServiceImpl
	users      *fakeUserRepo
	sessions   *fakeSessionRepo
	adjusts    *fakeAdjustmentRepo
	leaves     *fakeLeaveRepo
	tokens     *fakeRefreshTokenRepo
	committed  bool
	rolledBack bool
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users: &fakeUserRepo{users: map[string]*user.User{
			"alice": {ID: "user-1", Username: "alice", Role: user.RoleEmployee},
		}},
		sessions: &fakeSessionRepo{},
		adjusts:  &fakeAdjustmentRepo{},
		leaves:   &fakeLeaveRepo{},
		tokens:   &fakeRefreshTokenRepo{},
	}
	env.svc = &userServiceImpl{
		userRepo:         env.users,
		sessionRepo:      env.sessions,
		adjustmentRepo:   env.adjusts,
		leaveRepo:        env.leaves,
		refreshTokenRepo: env.tokens,
		runTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			if err := fn(ctx); err != nil {
				env.rolledBack = true
				return err
			}
			env.committed = true
			return nil
		},
	}
	return env
}

func TestRegisterHashesPasswordAndDefaultsRole(t *testing.T) {
	env := newTestEnv()

	created, err := env.svc.Register(context.Background(), user.RegisterRequest{
		Username: "carol",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "carol", created.Username)
	assert.Equal(t, string(user.RoleEmployee), created.Role)

	stored := env.users.users["carol"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct horse", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.Register(context.Background(), user.RegisterRequest{
		Username: "alice",
		Password: "irrelevant",
	})
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}

func TestUpdateProfilePartial(t *testing.T) {
	env := newTestEnv()

	first := "Alice"
	email := "alice@example.com"
	updated, err := env.svc.UpdateProfile(context.Background(), "alice", user.UpdateProfileRequest{
		FirstName: &first,
		Email:     &email,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.FirstName)
	assert.Equal(t, "Alice", *updated.FirstName)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "alice@example.com", *updated.Email)
	assert.Nil(t, updated.LastName)
}

func TestDeleteCascades(t *testing.T) {
	env := newTestEnv()

	err := env.svc.Delete(context.Background(), "user-1")
	require.NoError(t, err)

	assert.True(t, env.committed)
	assert.Equal(t, []string{"user-1"}, env.leaves.deletedFor)
	assert.Equal(t, []string{"user-1"}, env.adjusts.deletedFor)
	assert.Equal(t, []string{"user-1"}, env.sessions.deletedFor)
	assert.Equal(t, []string{"user-1"}, env.tokens.deletedFor)
	_, ok := env.users.users["alice"]
	assert.False(t, ok)
}

func TestDeleteUnknownUser(t *testing.T) {
	env := newTestEnv()

	err := env.svc.Delete(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.False(t, env.committed)
}

func TestDeleteRollsBackOnFailure(t *testing.T) {
	env := newTestEnv()
	env.users.deleteErr = errors.New("connection reset")

	err := env.svc.Delete(context.Background(), "user-1")
	require.Error(t, err)
	assert.True(t, env.rolledBack)
	assert.False(t, env.committed)
}
