package worker

import "context"

// WorkerService defines business logic for the staff register
type WorkerService interface {
	// Create registers a new worker (admin only)
	Create(ctx context.Context, p Principal, req CreateWorkerRequest) (WorkerResponse, error)

	// Update applies a partial update by username (admin only)
	Update(ctx context.Context, p Principal, req UpdateWorkerRequest) (WorkerResponse, error)

	// List returns the full staff register (manager/admin)
	List(ctx context.Context, p Principal) ([]WorkerResponse, error)

	// GetByUsername retrieves a single worker (manager/admin)
	GetByUsername(ctx context.Context, p Principal, username string) (WorkerResponse, error)

	// Seed creates the bootstrap staff set when the register is empty
	Seed(ctx context.Context) error
}
