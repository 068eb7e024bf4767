package shift

import "errors"

// Shift planner errors
var (
	ErrShiftNotFound = errors.New("shift not found")
)
