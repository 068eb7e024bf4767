package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shiftline/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftline/timeclock-backend-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// Create implements punch.PunchRepository. The punches_one_open partial
// unique index rejects a second open punch for the same worker, so the
// check-then-insert race collapses into a single constraint violation.
func (r *punchRepositoryImpl) Create(ctx context.Context, newPunch punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (worker_id, clock_in, clock_out, note, location, approved)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, worker_id, clock_in, clock_out, note, location, approved,
				  created_at, updated_at
	`

	var created punch.Punch
	err := q.QueryRow(ctx, query,
		newPunch.WorkerID,
		newPunch.ClockIn,
		newPunch.ClockOut,
		newPunch.Note,
		newPunch.Location,
		newPunch.Approved,
	).Scan(
		&created.ID,
		&created.WorkerID,
		&created.ClockIn,
		&created.ClockOut,
		&created.Note,
		&created.Location,
		&created.Approved,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "punches_one_open" {
			return punch.Punch{}, punch.ErrOpenPunchExists
		}
		return punch.Punch{}, err
	}

	return created, nil
}

// GetByID implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetByID(ctx context.Context, id string) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, clock_in, clock_out, note, location, approved,
			   created_at, updated_at
		FROM punches
		WHERE id = $1
	`

	var found punch.Punch
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.WorkerID,
		&found.ClockIn,
		&found.ClockOut,
		&found.Note,
		&found.Location,
		&found.Approved,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.Punch{}, punch.ErrPunchNotFound
		}
		return punch.Punch{}, err
	}

	return found, nil
}

// GetOpenForWorker implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetOpenForWorker(ctx context.Context, workerID string) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, clock_in, clock_out, note, location, approved,
			   created_at, updated_at
		FROM punches
		WHERE worker_id = $1 AND clock_out IS NULL
	`

	var found punch.Punch
	err := q.QueryRow(ctx, query, workerID).Scan(
		&found.ID,
		&found.WorkerID,
		&found.ClockIn,
		&found.ClockOut,
		&found.Note,
		&found.Location,
		&found.Approved,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.Punch{}, punch.ErrPunchNotFound
		}
		return punch.Punch{}, err
	}

	return found, nil
}

// Update implements punch.PunchRepository.
func (r *punchRepositoryImpl) Update(ctx context.Context, updatedPunch punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE punches
		SET clock_in = $1, clock_out = $2, note = $3, location = $4,
			approved = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id, worker_id, clock_in, clock_out, note, location, approved,
				  created_at, updated_at
	`

	var updated punch.Punch
	err := q.QueryRow(ctx, query,
		updatedPunch.ClockIn,
		updatedPunch.ClockOut,
		updatedPunch.Note,
		updatedPunch.Location,
		updatedPunch.Approved,
		updatedPunch.ID,
	).Scan(
		&updated.ID,
		&updated.WorkerID,
		&updated.ClockIn,
		&updated.ClockOut,
		&updated.Note,
		&updated.Location,
		&updated.Approved,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.Punch{}, punch.ErrPunchNotFound
		}
		return punch.Punch{}, err
	}

	return updated, nil
}

// ListForWorkerInRange implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListForWorkerInRange(ctx context.Context, workerID string, from time.Time, to time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, clock_in, clock_out, note, location, approved,
			   created_at, updated_at
		FROM punches
		WHERE worker_id = $1 AND clock_in >= $2 AND clock_in < $3
		ORDER BY clock_in DESC
	`

	rows, err := q.Query(ctx, query, workerID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPunches(rows)
}

// ListInRange implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListInRange(ctx context.Context, from time.Time, to time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, clock_in, clock_out, note, location, approved,
			   created_at, updated_at
		FROM punches
		WHERE clock_in >= $1 AND clock_in < $2
		ORDER BY clock_in DESC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPunches(rows)
}

func scanPunches(rows pgx.Rows) ([]punch.Punch, error) {
	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		if err := rows.Scan(
			&p.ID,
			&p.WorkerID,
			&p.ClockIn,
			&p.ClockOut,
			&p.Note,
			&p.Location,
			&p.Approved,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return punches, nil
}
