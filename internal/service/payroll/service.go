package payroll

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shiftline/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftline/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftline/timeclock-backend-go/internal/domain/worker"
)

var otMultiplier = decimal.NewFromFloat(1.5)

type PayrollServiceImpl struct {
	punch.PunchRepository
	worker.WorkerRepository
	overtimeThreshold decimal.Decimal
}

func NewPayrollService(punchRepo punch.PunchRepository, workerRepo worker.WorkerRepository, dailyOvertimeHours float64) payroll.PayrollService {
	return &PayrollServiceImpl{
		PunchRepository:   punchRepo,
		WorkerRepository:  workerRepo,
		overtimeThreshold: decimal.NewFromFloat(dailyOvertimeHours),
	}
}

// Report implements payroll.PayrollService. Punches are grouped by
// worker and the calendar date of their clock-in; hours above the
// daily overtime threshold are paid at 1.5 times the hourly rate.
// Punches without a clock-out contribute zero hours. Approval status
// does not affect aggregation.
func (s *PayrollServiceImpl) Report(ctx context.Context, p worker.Principal, req payroll.ReportRequest) (payroll.ReportResponse, error) {
	if !worker.Allowed(p.Role, worker.CapabilityPayrollView) {
		return payroll.ReportResponse{}, worker.ErrCapabilityRequired
	}

	if err := req.Validate(); err != nil {
		return payroll.ReportResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	punches, err := s.PunchRepository.ListInRange(ctx, start, end.AddDate(0, 0, 1))
	if err != nil {
		return payroll.ReportResponse{}, err
	}

	type dayKey struct {
		workerID string
		date     string
	}
	hoursByDay := make(map[dayKey]decimal.Decimal)
	for _, record := range punches {
		key := dayKey{workerID: record.WorkerID, date: record.ClockIn.Format("2006-01-02")}
		hoursByDay[key] = hoursByDay[key].Add(punchHours(record))
	}

	workers := make(map[string]worker.Worker)
	aggregates := make([]payroll.DailyAggregate, 0, len(hoursByDay))
	for key, total := range hoursByDay {
		w, ok := workers[key.workerID]
		if !ok {
			w, err = s.WorkerRepository.GetByID(ctx, key.workerID)
			if err != nil {
				if errors.Is(err, worker.ErrWorkerNotFound) {
					continue
				}
				return payroll.ReportResponse{}, fmt.Errorf("failed to resolve worker %s: %w", key.workerID, err)
			}
			workers[key.workerID] = w
		}

		overtime := total.Sub(s.overtimeThreshold)
		if overtime.IsNegative() {
			overtime = decimal.Zero
		}
		regular := total.Sub(overtime)
		pay := regular.Mul(w.HourlyRate).Add(overtime.Mul(w.HourlyRate).Mul(otMultiplier))

		date, _ := time.Parse("2006-01-02", key.date)
		aggregates = append(aggregates, payroll.DailyAggregate{
			WorkerID:      key.workerID,
			WorkerName:    w.FullName,
			Date:          date,
			TotalHours:    total,
			RegularHours:  regular,
			OvertimeHours: overtime,
			HourlyRate:    w.HourlyRate,
			Pay:           pay,
		})
	}

	sort.Slice(aggregates, func(i, j int) bool {
		if aggregates[i].WorkerName != aggregates[j].WorkerName {
			return aggregates[i].WorkerName < aggregates[j].WorkerName
		}
		return aggregates[i].Date.Before(aggregates[j].Date)
	})

	resp := payroll.ReportResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Rows:      make([]payroll.DailyAggregateResponse, 0, len(aggregates)),
	}
	for _, agg := range aggregates {
		resp.Rows = append(resp.Rows, payroll.DailyAggregateResponse{
			WorkerID:      agg.WorkerID,
			WorkerName:    agg.WorkerName,
			Date:          agg.Date.Format("2006-01-02"),
			TotalHours:    agg.TotalHours,
			RegularHours:  agg.RegularHours,
			OvertimeHours: agg.OvertimeHours,
			HourlyRate:    agg.HourlyRate,
			Pay:           agg.Pay,
		})
		resp.TotalHours = resp.TotalHours.Add(agg.TotalHours)
		resp.TotalPay = resp.TotalPay.Add(agg.Pay)
	}

	return resp, nil
}

// WriteCSV implements payroll.PayrollService.
func (s *PayrollServiceImpl) WriteCSV(ctx context.Context, p worker.Principal, req payroll.ReportRequest, w io.Writer) error {
	report, err := s.Report(ctx, p, req)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{"worker_name", "date", "total_hours", "regular_hours", "overtime_hours", "hourly_rate", "pay"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range report.Rows {
		record := []string{
			row.WorkerName,
			row.Date,
			row.TotalHours.StringFixed(2),
			row.RegularHours.StringFixed(2),
			row.OvertimeHours.StringFixed(2),
			row.HourlyRate.StringFixed(2),
			row.Pay.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// punchHours returns the worked hours for one punch, rounded to two
// decimals. Open punches count as zero.
func punchHours(record punch.Punch) decimal.Decimal {
	if record.ClockOut == nil {
		return decimal.Zero
	}
	dur := record.ClockOut.Sub(record.ClockIn)
	if dur < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(dur.Hours()).Round(2)
}
