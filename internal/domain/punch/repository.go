package punch

import (
	"context"
	"time"
)

// PunchRepository defines data access methods for punch records.
// Punches are never deleted; corrections go through updates so the
// ledger stays an audit trail.
type PunchRepository interface {
	// Create inserts a new open punch. The store enforces the
	// one-open-punch-per-worker invariant and returns
	// ErrOpenPunchExists when a concurrent or earlier clock-in won.
	Create(ctx context.Context, p Punch) (Punch, error)

	GetByID(ctx context.Context, id string) (Punch, error)

	// GetOpenForWorker returns the worker's open punch, or
	// ErrPunchNotFound when there is none
	GetOpenForWorker(ctx context.Context, workerID string) (Punch, error)

	// Update overwrites the mutable fields of an existing punch
	Update(ctx context.Context, p Punch) (Punch, error)

	// ListForWorkerInRange returns the worker's punches with clock-in
	// in [from, to), newest clock-in first
	ListForWorkerInRange(ctx context.Context, workerID string, from, to time.Time) ([]Punch, error)

	// ListInRange returns all punches with clock-in in [from, to),
	// newest clock-in first
	ListInRange(ctx context.Context, from, to time.Time) ([]Punch, error)
}
