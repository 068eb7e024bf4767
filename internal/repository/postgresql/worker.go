package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shiftline/timeclock-backend-go/internal/domain/worker"
	"github.com/shiftline/timeclock-backend-go/internal/pkg/database"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

// Create implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Create(ctx context.Context, newWorker worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (username, full_name, password_hash, role, hourly_rate, pin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, username, full_name, password_hash, role, hourly_rate, pin,
				  created_at, updated_at
	`

	var created worker.Worker
	err := q.QueryRow(ctx, query,
		newWorker.Username,
		newWorker.FullName,
		newWorker.PasswordHash,
		newWorker.Role,
		newWorker.HourlyRate,
		newWorker.PIN,
	).Scan(
		&created.ID,
		&created.Username,
		&created.FullName,
		&created.PasswordHash,
		&created.Role,
		&created.HourlyRate,
		&created.PIN,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return worker.Worker{}, mapWorkerConstraintError(err)
	}

	return created, nil
}

// Update implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Update(ctx context.Context, updatedWorker worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET username = $1, full_name = $2, password_hash = $3, role = $4,
			hourly_rate = $5, pin = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id, username, full_name, password_hash, role, hourly_rate, pin,
				  created_at, updated_at
	`

	var updated worker.Worker
	err := q.QueryRow(ctx, query,
		updatedWorker.Username,
		updatedWorker.FullName,
		updatedWorker.PasswordHash,
		updatedWorker.Role,
		updatedWorker.HourlyRate,
		updatedWorker.PIN,
		updatedWorker.ID,
	).Scan(
		&updated.ID,
		&updated.Username,
		&updated.FullName,
		&updated.PasswordHash,
		&updated.Role,
		&updated.HourlyRate,
		&updated.PIN,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, mapWorkerConstraintError(err)
	}

	return updated, nil
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	return r.getByField(ctx, "id", id)
}

// GetByUsername implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByUsername(ctx context.Context, username string) (worker.Worker, error) {
	return r.getByField(ctx, "username", username)
}

// GetByPIN implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByPIN(ctx context.Context, pin string) (worker.Worker, error) {
	return r.getByField(ctx, "pin", pin)
}

func (r *workerRepositoryImpl) getByField(ctx context.Context, field string, value string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, full_name, password_hash, role, hourly_rate, pin,
			   created_at, updated_at
		FROM workers
		WHERE ` + field + ` = $1
	`

	var found worker.Worker
	err := q.QueryRow(ctx, query, value).Scan(
		&found.ID,
		&found.Username,
		&found.FullName,
		&found.PasswordHash,
		&found.Role,
		&found.HourlyRate,
		&found.PIN,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, err
	}

	return found, nil
}

// List implements worker.WorkerRepository.
func (r *workerRepositoryImpl) List(ctx context.Context) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, full_name, password_hash, role, hourly_rate, pin,
			   created_at, updated_at
		FROM workers
		ORDER BY full_name, username
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		if err := rows.Scan(
			&w.ID,
			&w.Username,
			&w.FullName,
			&w.PasswordHash,
			&w.Role,
			&w.HourlyRate,
			&w.PIN,
			&w.CreatedAt,
			&w.UpdatedAt,
		); err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workers, nil
}

// Count implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM workers`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// mapWorkerConstraintError translates unique violations on the username
// and pin columns into their domain conflict errors.
func mapWorkerConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "workers_username_key":
			return worker.ErrUsernameExists
		case "workers_pin_key":
			return worker.ErrPINExists
		}
	}
	return err
}
