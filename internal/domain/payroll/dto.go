package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/shiftline/timeclock-backend-go/internal/pkg/validator"
)

type ReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Validate implements validation for ReportRequest.
func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DailyAggregateResponse struct {
	WorkerID      string          `json:"worker_id"`
	WorkerName    string          `json:"worker_name"`
	Date          string          `json:"date"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	Pay           decimal.Decimal `json:"pay"`
}

type ReportResponse struct {
	StartDate  string                   `json:"start_date"`
	EndDate    string                   `json:"end_date"`
	Rows       []DailyAggregateResponse `json:"rows"`
	TotalHours decimal.Decimal          `json:"total_hours"`
	TotalPay   decimal.Decimal          `json:"total_pay"`
}
