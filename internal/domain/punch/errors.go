package punch

import "errors"

// Punch ledger errors
var (
	// Clock-in/out errors
	ErrOpenPunchExists       = errors.New("worker already has an open punch")
	ErrPunchAlreadyClosed    = errors.New("punch is already clocked out")
	ErrClockOutBeforeClockIn = errors.New("clock-out must not be before clock-in")
	ErrNotPunchOwner         = errors.New("only the punch owner may clock out")

	// General errors
	ErrPunchNotFound = errors.New("punch record not found")
)
