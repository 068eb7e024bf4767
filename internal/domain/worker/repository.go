package worker

import "context"

// WorkerRepository defines data access methods for the staff register.
// Workers are never hard-deleted; punches keep referring to them.
type WorkerRepository interface {
	// Create inserts a new worker; returns ErrUsernameExists or
	// ErrPINExists on uniqueness violations
	Create(ctx context.Context, w Worker) (Worker, error)

	// Update persists the given worker record by ID
	Update(ctx context.Context, w Worker) (Worker, error)

	GetByID(ctx context.Context, id string) (Worker, error)
	GetByUsername(ctx context.Context, username string) (Worker, error)

	// GetByPIN is an exact-match lookup; no match is ErrWorkerNotFound
	GetByPIN(ctx context.Context, pin string) (Worker, error)

	// List returns all workers ordered by full name
	List(ctx context.Context) ([]Worker, error)

	Count(ctx context.Context) (int64, error)
}
