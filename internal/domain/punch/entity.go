package punch

import (
	"time"
)

// Punch is one clock-in/clock-out record. A nil ClockOut means the
// punch is still open; a worker has at most one open punch at a time.
type Punch struct {
	ID        string
	WorkerID  string
	ClockIn   time.Time
	ClockOut  *time.Time
	Note      string
	Location  string
	Approved  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	WorkerName *string
}

// Open reports whether the punch has no clock-out yet.
func (p *Punch) Open() bool {
	return p.ClockOut == nil
}
