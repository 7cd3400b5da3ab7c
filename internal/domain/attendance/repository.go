package attendance

import (
	"context"
	"time"
)

// SessionRepository persists attendance sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	// GetOpenSession returns the user's single open session, or
	// ErrNoActiveSession when none exists.
	GetOpenSession(ctx context.Context, userID string) (*Session, error)
	Close(ctx context.Context, session *Session) error
	// ListByUser returns all sessions for the user, newest check-in first.
	ListByUser(ctx context.Context, userID string) ([]Session, error)
	// ListByUserBetween returns sessions whose check-in falls inside
	// [start, end], oldest first.
	ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]Session, error)
	DeleteAllByUser(ctx context.Context, userID string) error
}
