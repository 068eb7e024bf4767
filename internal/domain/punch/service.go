package punch

import (
	"context"

	"github.com/shiftline/timeclock-backend-go/internal/domain/worker"
)

// PunchService defines business logic for the punch ledger
type PunchService interface {
	// ClockIn opens a new punch for the acting worker; fails with
	// ErrOpenPunchExists when one is already open
	ClockIn(ctx context.Context, p worker.Principal, req ClockInRequest) (PunchResponse, error)

	// ClockOut closes the identified punch; owner only. Note and
	// location text is appended to existing content, never overwritten.
	ClockOut(ctx context.Context, p worker.Principal, req ClockOutRequest) (PunchResponse, error)

	// ListForWorkerOnDate returns punches whose clock-in falls on the
	// given calendar date, newest first. Workers may list their own;
	// managers and admins may list anyone's.
	ListForWorkerOnDate(ctx context.Context, p worker.Principal, filter DayFilter) ([]PunchResponse, error)
}
