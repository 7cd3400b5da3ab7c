package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/workpulse/workforce-backend-go/internal/domain/adjustment"
	"github.com/workpulse/workforce-backend-go/internal/pkg/database"
)

type adjustmentRepositoryImpl struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepositoryImpl{db: db}
}

const adjustmentColumns = `id, user_id, requested_check_in, requested_check_out, reason, status, processed_by, processed_at, created_at, updated_at`

func scanAdjustment(row pgx.Row) (*adjustment.Adjustment, error) {
	var a adjustment.Adjustment
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.RequestedCheckIn,
		&a.RequestedCheckOut,
		&a.Reason,
		&a.Status,
		&a.ProcessedBy,
		&a.ProcessedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adjustmentRepositoryImpl) Create(ctx context.Context, adj *adjustment.Adjustment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_adjustments (id, user_id, requested_check_in, requested_check_out, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	return q.QueryRow(ctx, query,
		adj.ID,
		adj.UserID,
		adj.RequestedCheckIn,
		adj.RequestedCheckOut,
		adj.Reason,
		adj.Status,
	).Scan(&adj.CreatedAt, &adj.UpdatedAt)
}

func (r *adjustmentRepositoryImpl) GetByID(ctx context.Context, id string) (*adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + adjustmentColumns + ` FROM attendance_adjustments WHERE id = $1`
	a, err := scanAdjustment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, adjustment.ErrAdjustmentNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *adjustmentRepositoryImpl) ListPending(ctx context.Context) ([]adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + adjustmentColumns + ` FROM attendance_adjustments WHERE status = $1 ORDER BY created_at ASC`
	rows, err := q.Query(ctx, query, adjustment.StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAdjustments(rows)
}

func (r *adjustmentRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + adjustmentColumns + ` FROM attendance_adjustments WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAdjustments(rows)
}

func (r *adjustmentRepositoryImpl) Decide(ctx context.Context, id string, status adjustment.Status, processedBy string) (*adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	// The status guard makes the PENDING row the serialization point: of two
	// concurrent decisions exactly one matches, the other sees no row.
	query := `
		UPDATE attendance_adjustments
		SET status = $1, processed_by = $2, processed_at = NOW(), updated_at = NOW()
		WHERE id = $3 AND status = $4
		RETURNING ` + adjustmentColumns
	a, err := scanAdjustment(q.QueryRow(ctx, query, status, processedBy, id, adjustment.StatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			exists, exErr := r.exists(ctx, id)
			if exErr != nil {
				return nil, exErr
			}
			if exists {
				return nil, adjustment.ErrAlreadyProcessed
			}
			return nil, adjustment.ErrAdjustmentNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *adjustmentRepositoryImpl) exists(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM attendance_adjustments WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *adjustmentRepositoryImpl) DeleteAllByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM attendance_adjustments WHERE user_id = $1`, userID)
	return err
}

func collectAdjustments(rows pgx.Rows) ([]adjustment.Adjustment, error) {
	var adjustments []adjustment.Adjustment
	for rows.Next() {
		var a adjustment.Adjustment
		err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.RequestedCheckIn,
			&a.RequestedCheckOut,
			&a.Reason,
			&a.Status,
			&a.ProcessedBy,
			&a.ProcessedAt,
			&a.CreatedAt,
			&a.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		adjustments = append(adjustments, a)
	}
	return adjustments, rows.Err()
}
