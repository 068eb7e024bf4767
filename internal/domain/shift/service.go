package shift

import (
	"context"

	"github.com/shiftline/timeclock-backend-go/internal/domain/worker"
)

// ShiftService defines business logic for the shift planner.
// Shifts carry no overlap validation; double-booking is accepted.
type ShiftService interface {
	// Create adds a shift, optionally assigned to a worker (manager/admin)
	Create(ctx context.Context, p worker.Principal, req CreateShiftRequest) (ShiftResponse, error)

	// ListInWeek returns shifts for the Monday..Sunday week containing
	// the anchor date (manager/admin)
	ListInWeek(ctx context.Context, p worker.Principal, filter WeekFilter) ([]ShiftResponse, error)

	// DeleteShifts removes the given shifts; missing ids are ignored
	// and the count of actually deleted shifts is returned (manager/admin)
	DeleteShifts(ctx context.Context, p worker.Principal, req DeleteShiftsRequest) (DeleteShiftsResponse, error)
}
