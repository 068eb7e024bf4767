package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, staff register management
	RoleManager  Role = "manager"  // Can schedule shifts and approve time
	RoleEmployee Role = "employee" // Clocks in/out, sees own punches
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleManager),
	string(RoleEmployee),
}

type Worker struct {
	ID           string
	Username     string
	FullName     string
	PasswordHash *string
	Role         Role
	HourlyRate   decimal.Decimal
	PIN          *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal is the acting identity a request carries into the core.
// It is built once at the boundary and passed explicitly; core
// operations never read ambient session state.
type Principal struct {
	WorkerID string
	Role     Role
}

// IsManager checks if the worker can schedule and approve
func (w *Worker) IsManager() bool {
	return w.Role == RoleManager || w.Role == RoleAdmin
}

// IsAdmin checks if the worker can manage the staff register
func (w *Worker) IsAdmin() bool {
	return w.Role == RoleAdmin
}
