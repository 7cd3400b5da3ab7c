package attendance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/workpulse/workforce-backend-go/internal/domain/attendance"
	"github.com/workpulse/workforce-backend-go/internal/domain/user"
	"github.com/workpulse/workforce-backend-go/internal/pkg/calendar"
)

type sessionServiceImpl struct {
	sessionRepo attendance.SessionRepository
	userRepo    user.UserRepository
	now         func() time.Time
}

func NewSessionService(sessionRepo attendance.SessionRepository, userRepo user.UserRepository) attendance.SessionService {
	return &sessionServiceImpl{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

func (s *sessionServiceImpl) CheckIn(ctx context.Context, username string) (*attendance.SessionResponse, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if _, err := s.sessionRepo.GetOpenSession(ctx, u.ID); err == nil {
		return nil, attendance.ErrActiveSessionExists
	} else if !errors.Is(err, attendance.ErrNoActiveSession) {
		return nil, fmt.Errorf("check open session: %w", err)
	}

	session := &attendance.Session{
		ID:          uuid.NewString(),
		UserID:      u.ID,
		CheckInTime: s.now(),
	}
	// The unique index on open sessions catches the race two concurrent
	// check-ins can still win here.
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	resp := attendance.ToResponse(*session)
	return &resp, nil
}

func (s *sessionServiceImpl) CheckOut(ctx context.Context, username string) (*attendance.SessionResponse, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetOpenSession(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	checkOut := s.now()
	duration := int64(checkOut.Sub(session.CheckInTime).Seconds())
	session.CheckOutTime = &checkOut
	session.TotalDurationSeconds = &duration

	if err := s.sessionRepo.Close(ctx, session); err != nil {
		return nil, err
	}

	resp := attendance.ToResponse(*session)
	return &resp, nil
}

func (s *sessionServiceImpl) ListMine(ctx context.Context, username string) ([]attendance.SessionResponse, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.listByUserID(ctx, u.ID)
}

func (s *sessionServiceImpl) ListForUser(ctx context.Context, userID string) ([]attendance.SessionResponse, error) {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, user.ErrUserNotFound
	}
	return s.listByUserID(ctx, userID)
}

func (s *sessionServiceImpl) listByUserID(ctx context.Context, userID string) ([]attendance.SessionResponse, error) {
	sessions, err := s.sessionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return attendance.ToResponses(sessions), nil
}

func (s *sessionServiceImpl) WeeklyStats(ctx context.Context, username string, year, weekOfYear int) (*attendance.WeeklyStatsResponse, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.weeklyStats(ctx, u.ID, year, weekOfYear)
}

func (s *sessionServiceImpl) WeeklyStatsForUser(ctx context.Context, userID string, year, weekOfYear int) (*attendance.WeeklyStatsResponse, error) {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, user.ErrUserNotFound
	}
	return s.weeklyStats(ctx, userID, year, weekOfYear)
}

func (s *sessionServiceImpl) MonthlyStats(ctx context.Context, username string, year, month int) (*attendance.MonthlyStatsResponse, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.monthlyStats(ctx, u.ID, year, month)
}

func (s *sessionServiceImpl) MonthlyStatsForUser(ctx context.Context, userID string, year, month int) (*attendance.MonthlyStatsResponse, error) {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, user.ErrUserNotFound
	}
	return s.monthlyStats(ctx, userID, year, month)
}

func (s *sessionServiceImpl) weeklyStats(ctx context.Context, userID string, year, weekOfYear int) (*attendance.WeeklyStatsResponse, error) {
	start := calendar.WeekStart(year, weekOfYear)
	end := calendar.WeekEnd(year, weekOfYear)

	sessions, err := s.sessionRepo.ListByUserBetween(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	// Only completed sessions carry a duration; open ones contribute nothing.
	secondsByDay := make(map[string]int64)
	var totalSeconds int64
	for _, sess := range sessions {
		if sess.TotalDurationSeconds == nil {
			continue
		}
		day := calendar.DateKey(sess.CheckInTime)
		secondsByDay[day] += *sess.TotalDurationSeconds
		totalSeconds += *sess.TotalDurationSeconds
	}

	days := make([]string, 0, len(secondsByDay))
	for day := range secondsByDay {
		days = append(days, day)
	}
	sort.Strings(days)

	breakdown := make([]attendance.DailyStat, 0, len(days))
	for _, day := range days {
		breakdown = append(breakdown, attendance.DailyStat{
			Date:       day,
			TotalHours: calendar.FormatSeconds(secondsByDay[day]),
		})
	}

	return &attendance.WeeklyStatsResponse{
		Year:                     year,
		WeekOfYear:               weekOfYear,
		TotalHoursThisWeek:       calendar.FormatSeconds(totalSeconds),
		TotalWorkingDaysThisWeek: len(days),
		DailyBreakdown:           breakdown,
	}, nil
}

func (s *sessionServiceImpl) monthlyStats(ctx context.Context, userID string, year, month int) (*attendance.MonthlyStatsResponse, error) {
	start := calendar.MonthStart(year, time.Month(month))
	end := calendar.MonthEnd(year, time.Month(month))

	sessions, err := s.sessionRepo.ListByUserBetween(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	// Weeks follow the ISO numbering of each session's check-in date, which
	// can differ from the numbering the weekly report navigates by.
	secondsByWeek := make(map[int]int64)
	var totalSeconds int64
	for _, sess := range sessions {
		if sess.TotalDurationSeconds == nil {
			continue
		}
		_, week := sess.CheckInTime.ISOWeek()
		secondsByWeek[week] += *sess.TotalDurationSeconds
		totalSeconds += *sess.TotalDurationSeconds
	}

	weeks := make([]int, 0, len(secondsByWeek))
	for week := range secondsByWeek {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	breakdown := make([]attendance.WeekStat, 0, len(weeks))
	for _, week := range weeks {
		breakdown = append(breakdown, attendance.WeekStat{
			Week:       fmt.Sprintf("Week %d", week),
			TotalHours: calendar.FormatSeconds(secondsByWeek[week]),
		})
	}

	return &attendance.MonthlyStatsResponse{
		Year:                year,
		Month:               month,
		TotalHoursThisMonth: calendar.FormatSeconds(totalSeconds),
		WeeklyBreakdown:     breakdown,
	}, nil
}
