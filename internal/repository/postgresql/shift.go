package postgresql

import (
	"context"
	"time"

	"github.com/shiftline/timeclock-backend-go/internal/domain/shift"
	"github.com/shiftline/timeclock-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (worker_id, shift_date, start_time, end_time, position, location)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, worker_id, shift_date, start_time, end_time, position, location, created_at
	`

	var created shift.Shift
	err := q.QueryRow(ctx, query,
		newShift.WorkerID,
		newShift.Date,
		newShift.StartTime,
		newShift.EndTime,
		newShift.Position,
		newShift.Location,
	).Scan(
		&created.ID,
		&created.WorkerID,
		&created.Date,
		&created.StartTime,
		&created.EndTime,
		&created.Position,
		&created.Location,
		&created.CreatedAt,
	)
	if err != nil {
		return shift.Shift{}, err
	}

	return created, nil
}

// ListInRange implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListInRange(ctx context.Context, from time.Time, to time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, shift_date, start_time, end_time, position, location, created_at
		FROM shifts
		WHERE shift_date >= $1 AND shift_date <= $2
		ORDER BY shift_date, start_time
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(
			&s.ID,
			&s.WorkerID,
			&s.Date,
			&s.StartTime,
			&s.EndTime,
			&s.Position,
			&s.Location,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

// DeleteByIDs implements shift.ShiftRepository. Ids that match no shift
// are skipped; the count of rows actually deleted is returned.
func (r *shiftRepositoryImpl) DeleteByIDs(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, err
	}

	return int(tag.RowsAffected()), nil
}
