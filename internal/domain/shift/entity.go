package shift

import "time"

// Shift is a planned assignment. It is informational only: nothing
// links a shift to the punches recorded against it, and a worker may
// be double-booked.
type Shift struct {
	ID        string
	WorkerID  *string
	Date      time.Time
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	Position  string
	Location  string
	CreatedAt time.Time

	// DTO
	WorkerName *string
}
