package payroll

import (
	"context"
	"io"

	"github.com/shiftline/timeclock-backend-go/internal/domain/worker"
)

// PayrollService aggregates punches into per-worker daily pay rows.
// A punch is attributed to the calendar date of its clock-in; punches
// still open at aggregation time contribute zero hours.
type PayrollService interface {
	// Report builds the daily aggregates for the inclusive date range
	// (manager/admin)
	Report(ctx context.Context, p worker.Principal, req ReportRequest) (ReportResponse, error)

	// WriteCSV writes the report for the range to w as CSV (manager/admin)
	WriteCSV(ctx context.Context, p worker.Principal, req ReportRequest, w io.Writer) error
}
