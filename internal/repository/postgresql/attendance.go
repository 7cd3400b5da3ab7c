package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/workpulse/workforce-backend-go/internal/domain/attendance"
	"github.com/workpulse/workforce-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.SessionRepository {
	return &attendanceRepositoryImpl{db: db}
}

const sessionColumns = `id, user_id, check_in_time, check_out_time, total_duration_seconds, created_at, updated_at`

func scanSession(row pgx.Row) (*attendance.Session, error) {
	var s attendance.Session
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.CheckInTime,
		&s.CheckOutTime,
		&s.TotalDurationSeconds,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, session *attendance.Session) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_sessions (id, user_id, check_in_time, check_out_time, total_duration_seconds)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		session.ID,
		session.UserID,
		session.CheckInTime,
		session.CheckOutTime,
		session.TotalDurationSeconds,
	).Scan(&session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		// The partial unique index on open sessions turns a concurrent
		// double check-in into a constraint violation.
		if isUniqueViolation(err) {
			return attendance.ErrActiveSessionExists
		}
		return err
	}
	return nil
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (*attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + sessionColumns + ` FROM attendance_sessions WHERE id = $1`
	s, err := scanSession(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrSessionNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *attendanceRepositoryImpl) GetOpenSession(ctx context.Context, userID string) (*attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + sessionColumns + ` FROM attendance_sessions WHERE user_id = $1 AND check_out_time IS NULL`
	s, err := scanSession(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrNoActiveSession
		}
		return nil, err
	}
	return s, nil
}

func (r *attendanceRepositoryImpl) Close(ctx context.Context, session *attendance.Session) error {
	q := GetQuerier(ctx, r.db)

	// Guarded on check_out_time so two concurrent check-outs cannot both
	// close the same session.
	query := `
		UPDATE attendance_sessions
		SET check_out_time = $1, total_duration_seconds = $2, updated_at = NOW()
		WHERE id = $3 AND check_out_time IS NULL
		RETURNING updated_at
	`
	err := q.QueryRow(ctx, query, session.CheckOutTime, session.TotalDurationSeconds, session.ID).Scan(&session.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrSessionAlreadyClosed
		}
		return err
	}
	return nil
}

func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + sessionColumns + ` FROM attendance_sessions WHERE user_id = $1 ORDER BY check_in_time DESC`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSessions(rows)
}

func (r *attendanceRepositoryImpl) ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE user_id = $1 AND check_in_time >= $2 AND check_in_time <= $3
		ORDER BY check_in_time ASC
	`
	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSessions(rows)
}

func (r *attendanceRepositoryImpl) DeleteAllByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM attendance_sessions WHERE user_id = $1`, userID)
	return err
}

func collectSessions(rows pgx.Rows) ([]attendance.Session, error) {
	var sessions []attendance.Session
	for rows.Next() {
		var s attendance.Session
		err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.CheckInTime,
			&s.CheckOutTime,
			&s.TotalDurationSeconds,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
