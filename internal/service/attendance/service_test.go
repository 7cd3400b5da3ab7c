package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/workforce-backend-go/internal/domain/attendance"
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
	f.users[u.Username] = u
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	f.users[u.Username] = u
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	for username, u := range f.users {
		if u.ID == id {
			delete(f.users, username)
			return nil
		}
	}
	return user.ErrUserNotFound
}

type fakeSessionRepo struct {
	sessions []*attendance.Session
}

func (f *fakeSessionRepo) Create(_ context.Context, s *attendance.Session) error {
	for _, existing := range f.sessions {
		if existing.UserID == s.UserID && existing.Open() {
			return attendance.ErrActiveSessionExists
		}
	}
	copied := *s
	f.sessions = append(f.sessions, &copied)
	return nil
}

func (f *fakeSessionRepo) GetByID(_ context.Context, id string) (*attendance.Session, error) {
	for _, s := range f.sessions {
		if s.ID == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, attendance.ErrSessionNotFound
}

func (f *fakeSessionRepo) GetOpenSession(_ context.Context, userID string) (*attendance.Session, error) {
	for _, s := range f.sessions {
		if s.UserID == userID && s.Open() {
			copied := *s
			return &copied, nil
		}
	}
	return nil, attendance.ErrNoActiveSession
}

func (f *fakeSessionRepo) Close(_ context.Context, session *attendance.Session) error {
	for _, s := range f.sessions {
		if s.ID == session.ID {
			if !s.Open() {
				return attendance.ErrSessionAlreadyClosed
			}
			s.CheckOutTime = session.CheckOutTime
			s.TotalDurationSeconds = session.TotalDurationSeconds
			return nil
		}
	}
	return attendance.ErrSessionNotFound
}

func (f *fakeSessionRepo) ListByUser(_ context.Context, userID string) ([]attendance.Session, error) {
	var out []attendance.Session
	for i := len(f.sessions) - 1; i >= 0; i-- {
		if f.sessions[i].UserID == userID {
			out = append(out, *f.sessions[i])
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) ListByUserBetween(_ context.Context, userID string, start, end time.Time) ([]attendance.Session, error) {
	var out []attendance.Session
	for _, s := range f.sessions {
		if s.UserID == userID && !s.CheckInTime.Before(start) && !s.CheckInTime.After(end) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) DeleteAllByUser(_ context.Context, userID string) error {
	var kept []*attendance.Session
	for _, s := range f.sessions {
		if s.UserID != userID {
			kept = append(kept, s)
		}
	}
	f.sessions = kept
	return nil
}

func testUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*user.User{
		"alice": {ID: "user-1", Username: "alice", Role: user.RoleEmployee},
	}}
}

func newTestService(sessions *fakeSessionRepo, users *fakeUserRepo, now func() time.Time) *sessionServiceImpl {
	return &sessionServiceImpl{
		sessionRepo: sessions,
		userRepo:    users,
		now:         now,
	}
}

func TestCheckInCheckOutFullDay(t *testing.T) {
	ctx := context.Background()
	sessions := &fakeSessionRepo{}

	current := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	svc := newTestService(sessions, testUserRepo(), func() time.Time { return current })

	opened, err := svc.CheckIn(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "N/A", opened.FormattedDuration)
	assert.Nil(t, opened.CheckOutTime)

	current = current.Add(8 * time.Hour)
	closed, err := svc.CheckOut(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, closed.TotalDurationSeconds)
	assert.Equal(t, int64(8*3600), *closed.TotalDurationSeconds)
	assert.Equal(t, "8 hours, 0 minutes, 0 seconds", closed.FormattedDuration)
}

func TestCheckInWithOpenSessionFails(t *testing.T) {
	ctx := context.Background()
	sessions := &fakeSessionRepo{}
	svc := newTestService(sessions, testUserRepo(), time.Now)

	_, err := svc.CheckIn(ctx, "alice")
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, "alice")
	assert.ErrorIs(t, err, attendance.ErrActiveSessionExists)
}

func TestCheckOutWithoutOpenSessionFails(t *testing.T) {
	svc := newTestService(&fakeSessionRepo{}, testUserRepo(), time.Now)

	_, err := svc.CheckOut(context.Background(), "alice")
	assert.ErrorIs(t, err, attendance.ErrNoActiveSession)
}

func TestCheckInUnknownUser(t *testing.T) {
	svc := newTestService(&fakeSessionRepo{}, testUserRepo(), time.Now)

	_, err := svc.CheckIn(context.Background(), "nobody")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func closedSession(id, userID string, checkIn time.Time, d time.Duration) *attendance.Session {
	checkOut := checkIn.Add(d)
	seconds := int64(d.Seconds())
	return &attendance.Session{
		ID:                   id,
		UserID:               userID,
		CheckInTime:          checkIn,
		CheckOutTime:         &checkOut,
		TotalDurationSeconds: &seconds,
	}
}

func TestWeeklyStats(t *testing.T) {
	// Week 10 of 2024 runs Monday March 4 through Sunday March 10.
	sessions := &fakeSessionRepo{sessions: []*attendance.Session{
		closedSession("s1", "user-1", time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), 8*time.Hour),
		closedSession("s2", "user-1", time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC), 4*time.Hour+30*time.Minute),
		closedSession("s3", "user-1", time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC), 4*time.Hour),
		// Open session contributes nothing.
		{ID: "s4", UserID: "user-1", CheckInTime: time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)},
		// Outside the week.
		closedSession("s5", "user-1", time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC), 8*time.Hour),
	}}
	svc := newTestService(sessions, testUserRepo(), time.Now)

	stats, err := svc.WeeklyStats(context.Background(), "alice", 2024, 10)
	require.NoError(t, err)

	assert.Equal(t, "16 hours, 30 minutes, 0 seconds", stats.TotalHoursThisWeek)
	assert.Equal(t, 2, stats.TotalWorkingDaysThisWeek)
	require.Len(t, stats.DailyBreakdown, 2)
	assert.Equal(t, attendance.DailyStat{Date: "2024-03-04", TotalHours: "8 hours, 0 minutes, 0 seconds"}, stats.DailyBreakdown[0])
	assert.Equal(t, attendance.DailyStat{Date: "2024-03-05", TotalHours: "8 hours, 30 minutes, 0 seconds"}, stats.DailyBreakdown[1])
}

func TestWeeklyStatsEmptyWeek(t *testing.T) {
	svc := newTestService(&fakeSessionRepo{}, testUserRepo(), time.Now)

	stats, err := svc.WeeklyStats(context.Background(), "alice", 2024, 10)
	require.NoError(t, err)

	assert.Equal(t, "0 hours, 0 minutes, 0 seconds", stats.TotalHoursThisWeek)
	assert.Zero(t, stats.TotalWorkingDaysThisWeek)
	assert.Empty(t, stats.DailyBreakdown)
}

func TestMonthlyStats(t *testing.T) {
	sessions := &fakeSessionRepo{sessions: []*attendance.Session{
		closedSession("s1", "user-1", time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), 8*time.Hour),  // ISO week 10
		closedSession("s2", "user-1", time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC), 4*time.Hour+30*time.Minute), // ISO week 11
		// Outside March.
		closedSession("s3", "user-1", time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC), 8*time.Hour),
	}}
	svc := newTestService(sessions, testUserRepo(), time.Now)

	stats, err := svc.MonthlyStats(context.Background(), "alice", 2024, 3)
	require.NoError(t, err)

	assert.Equal(t, "12 hours, 30 minutes, 0 seconds", stats.TotalHoursThisMonth)
	require.Len(t, stats.WeeklyBreakdown, 2)
	assert.Equal(t, attendance.WeekStat{Week: "Week 10", TotalHours: "8 hours, 0 minutes, 0 seconds"}, stats.WeeklyBreakdown[0])
	assert.Equal(t, attendance.WeekStat{Week: "Week 11", TotalHours: "4 hours, 30 minutes, 0 seconds"}, stats.WeeklyBreakdown[1])
}

func TestStatsForUnknownUserID(t *testing.T) {
	svc := newTestService(&fakeSessionRepo{}, testUserRepo(), time.Now)

	_, err := svc.WeeklyStatsForUser(context.Background(), "no-such-id", 2024, 10)
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	_, err = svc.MonthlyStatsForUser(context.Background(), "no-such-id", 2024, 3)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
