package approval

import (
	"context"

	"github.com/shiftline/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftline/timeclock-backend-go/internal/domain/worker"
)

// ApprovalService defines the manager/admin mutation layer over the
// punch ledger. Adjustments are direct overwrites; the audit trail is
// the approved flag plus request logging, not a correction ledger.
type ApprovalService interface {
	// ListInRange returns punches with worker names for the inclusive
	// date range (the end date's full day is included), newest first
	ListInRange(ctx context.Context, p worker.Principal, filter RangeFilter) ([]punch.PunchResponse, error)

	// Adjust overwrites clock times and/or sets the approved flag.
	// Approving is idempotent; a request with no fields returns the
	// record unchanged.
	Adjust(ctx context.Context, p worker.Principal, req AdjustRequest) (punch.PunchResponse, error)
}
