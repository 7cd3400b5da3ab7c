package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/workpulse/workforce-backend-go/internal/domain/leave"
	"github.com/workpulse/workforce-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `id, user_id, start_date, end_date, days, reason, status, admin_comment, processed_by, processed_at, created_at, updated_at`

func scanLeave(row pgx.Row) (*leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID,
		&l.UserID,
		&l.StartDate,
		&l.EndDate,
		&l.Days,
		&l.Reason,
		&l.Status,
		&l.AdminComment,
		&l.ProcessedBy,
		&l.ProcessedAt,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, lv *leave.Leave) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (id, user_id, start_date, end_date, days, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`
	return q.QueryRow(ctx, query,
		lv.ID,
		lv.UserID,
		lv.StartDate,
		lv.EndDate,
		lv.Days,
		lv.Reason,
		lv.Status,
	).Scan(&lv.CreatedAt, &lv.UpdatedAt)
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (*leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leaves WHERE id = $1`
	l, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrLeaveNotFound
		}
		return nil, err
	}
	return l, nil
}

func (r *leaveRepositoryImpl) ListPending(ctx context.Context) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leaves WHERE status = $1 ORDER BY created_at ASC`
	rows, err := q.Query(ctx, query, leave.StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func (r *leaveRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leaves WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func (r *leaveRepositoryImpl) SumDaysStartingBetween(ctx context.Context, userID string, start, end time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	// Rejected leaves give their days back to the quota.
	query := `
		SELECT COALESCE(SUM(days), 0)
		FROM leaves
		WHERE user_id = $1 AND status <> $2 AND start_date >= $3 AND start_date <= $4
	`
	var total int
	err := q.QueryRow(ctx, query, userID, leave.StatusRejected, start, end).Scan(&total)
	return total, err
}

func (r *leaveRepositoryImpl) Process(ctx context.Context, id string, status leave.Status, comment *string, processedBy string) (*leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	// No status guard: a leave decision may be revised later.
	query := `
		UPDATE leaves
		SET status = $1, admin_comment = $2, processed_by = $3, processed_at = NOW(), updated_at = NOW()
		WHERE id = $4
		RETURNING ` + leaveColumns
	l, err := scanLeave(q.QueryRow(ctx, query, status, comment, processedBy, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrLeaveNotFound
		}
		return nil, err
	}
	return l, nil
}

func (r *leaveRepositoryImpl) DeleteAllByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM leaves WHERE user_id = $1`, userID)
	return err
}

func collectLeaves(rows pgx.Rows) ([]leave.Leave, error) {
	var leaves []leave.Leave
	for rows.Next() {
		var l leave.Leave
		err := rows.Scan(
			&l.ID,
			&l.UserID,
			&l.StartDate,
			&l.EndDate,
			&l.Days,
			&l.Reason,
			&l.Status,
			&l.AdminComment,
			&l.ProcessedBy,
			&l.ProcessedAt,
			&l.CreatedAt,
			&l.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}
