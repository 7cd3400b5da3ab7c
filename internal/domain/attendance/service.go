package attendance

import (
	"context"
)

// SessionService covers the attendance lifecycle and the derived statistics.
// Callers pass the acting identity explicitly; the service never reads it
// from ambient request state.
type SessionService interface {
	// CheckIn opens a new session for the user. Fails with
	// ErrActiveSessionExists when one is already open.
	CheckIn(ctx context.Context, username string) (*SessionResponse, error)
	// CheckOut closes the user's open session and records its duration.
	CheckOut(ctx context.Context, username string) (*SessionResponse, error)

	ListMine(ctx context.Context, username string) ([]SessionResponse, error)
	ListForUser(ctx context.Context, userID string) ([]SessionResponse, error)

	WeeklyStats(ctx context.Context, username string, year, weekOfYear int) (*WeeklyStatsResponse, error)
	MonthlyStats(ctx context.Context, username string, year, month int) (*MonthlyStatsResponse, error)
	WeeklyStatsForUser(ctx context.Context, userID string, year, weekOfYear int) (*WeeklyStatsResponse, error)
	MonthlyStatsForUser(ctx context.Context, userID string, year, month int) (*MonthlyStatsResponse, error)
}
