package shift

import (
	"context"
	"time"
)

// ShiftRepository defines data access methods for planned shifts
type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)

	// ListInRange returns shifts with date in [from, to], ordered by
	// date then start time
	ListInRange(ctx context.Context, from, to time.Time) ([]Shift, error)

	// DeleteByIDs removes the given shifts and returns how many
	// existed; unknown ids are skipped silently
	DeleteByIDs(ctx context.Context, ids []string) (int, error)
}
