package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyAggregate is one worker-day row of the payroll report. Hours are
// rounded to two decimal places before the daily overtime split.
type DailyAggregate struct {
	WorkerID      string          `json:"worker_id"`
	WorkerName    string          `json:"worker_name"`
	Date          time.Time       `json:"date"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	Pay           decimal.Decimal `json:"pay"`
}
