package approval

import (
	"github.com/shiftline/timeclock-backend-go/internal/pkg/validator"
)

type RangeFilter struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD, full day included
}

func (f *RangeFilter) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(f.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, okEnd := validator.IsValidDate(f.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AdjustRequest overwrites punch times directly and/or sets the
// approved flag. Any subset of fields may be supplied; an empty
// request is a no-op returning the unchanged record.
type AdjustRequest struct {
	PunchID     string  `json:"-"`
	NewClockIn  *string `json:"new_clock_in,omitempty"`  // RFC3339 or "YYYY-MM-DD HH:MM[:SS]"
	NewClockOut *string `json:"new_clock_out,omitempty"` // RFC3339 or "YYYY-MM-DD HH:MM[:SS]"
	Approve     *bool   `json:"approve,omitempty"`
}

func (r *AdjustRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PunchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "punch_id",
			Message: "punch_id is required",
		})
	}

	if r.NewClockIn != nil {
		if _, ok := validator.IsValidDateTime(*r.NewClockIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "new_clock_in",
				Message: "new_clock_in must be RFC3339 or YYYY-MM-DD HH:MM[:SS]",
			})
		}
	}

	if r.NewClockOut != nil {
		if _, ok := validator.IsValidDateTime(*r.NewClockOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "new_clock_out",
				Message: "new_clock_out must be RFC3339 or YYYY-MM-DD HH:MM[:SS]",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
