package shift

import (
	"github.com/shiftline/timeclock-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	WorkerID  *string `json:"worker_id,omitempty"`
	Date      string  `json:"date"`       // YYYY-MM-DD
	StartTime string  `json:"start_time"` // HH:MM
	EndTime   string  `json:"end_time"`   // HH:MM
	Position  string  `json:"position,omitempty"`
	Location  string  `json:"location,omitempty"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidClockTime(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if _, ok := validator.IsValidClockTime(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if r.WorkerID != nil && validator.IsEmpty(*r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id must not be empty when supplied",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WeekFilter struct {
	AnchorDate string `json:"anchor_date"` // any date inside the wanted Monday..Sunday week
}

func (f *WeekFilter) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(f.AnchorDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "anchor_date",
			Message: "anchor_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DeleteShiftsRequest struct {
	IDs []string `json:"ids"`
}

type ShiftResponse struct {
	ID         string  `json:"id"`
	WorkerID   *string `json:"worker_id,omitempty"`
	WorkerName *string `json:"worker_name,omitempty"`
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Position   string  `json:"position,omitempty"`
	Location   string  `json:"location,omitempty"`
}

type DeleteShiftsResponse struct {
	Deleted int `json:"deleted"`
}
