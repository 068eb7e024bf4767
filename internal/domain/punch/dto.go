package punch

import (
	"github.com/shiftline/timeclock-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	Note     string `json:"note,omitempty"`
	Location string `json:"location,omitempty"`
}

type ClockOutRequest struct {
	PunchID  string `json:"-"`
	Note     string `json:"note,omitempty"`
	Location string `json:"location,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PunchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "punch_id",
			Message: "punch_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DayFilter struct {
	WorkerID string `json:"worker_id"`
	Date     string `json:"date"` // YYYY-MM-DD
}

func (f *DayFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if _, ok := validator.IsValidDate(f.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchResponse struct {
	ID         string  `json:"id"`
	WorkerID   string  `json:"worker_id"`
	WorkerName *string `json:"worker_name,omitempty"`
	ClockIn    string  `json:"clock_in"`
	ClockOut   *string `json:"clock_out,omitempty"`
	Note       string  `json:"note,omitempty"`
	Location   string  `json:"location,omitempty"`
	Approved   bool    `json:"approved"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}
