package payroll

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftline/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftline/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftline/timeclock-backend-go/internal/domain/worker"
	"github.com/shiftline/timeclock-backend-go/internal/repository/memory"
)

type payrollFixture struct {
	svc        payroll.PayrollService
	punchRepo  punch.PunchRepository
	workerRepo worker.WorkerRepository
	manager    worker.Principal
}

func newPayrollFixture(t *testing.T) payrollFixture {
	t.Helper()

	workerRepo := memory.NewWorkerRepository()
	punchRepo := memory.NewPunchRepository()

	return payrollFixture{
		svc:        NewPayrollService(punchRepo, workerRepo, 8),
		punchRepo:  punchRepo,
		workerRepo: workerRepo,
		manager:    worker.Principal{WorkerID: "mgr", Role: worker.RoleManager},
	}
}

func (f payrollFixture) addWorker(t *testing.T, username string, fullName string, rate int64) string {
	t.Helper()
	created, err := f.workerRepo.Create(context.Background(), worker.Worker{
		Username:   username,
		FullName:   fullName,
		Role:       worker.RoleEmployee,
		HourlyRate: decimal.NewFromInt(rate),
	})
	require.NoError(t, err)
	return created.ID
}

func (f payrollFixture) addClosedPunch(t *testing.T, workerID string, in time.Time, hours float64) {
	t.Helper()
	out := in.Add(time.Duration(hours * float64(time.Hour)))
	_, err := f.punchRepo.Create(context.Background(), punch.Punch{
		WorkerID: workerID,
		ClockIn:  in,
		ClockOut: &out,
	})
	require.NoError(t, err)
}

// ===== PAYROLL SERVICE TESTS =====

func TestPayrollService_Report_OvertimeSplit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPayrollFixture(t)

	workerID := f.addWorker(t, "erik", "Erik Ek", 100)
	in := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	f.addClosedPunch(t, workerID, in, 9)

	report, err := f.svc.Report(ctx, f.manager, payroll.ReportRequest{StartDate: "2026-03-10", EndDate: "2026-03-10"})
	require.NoError(t, err)

	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	assert.Equal(t, "Erik Ek", row.WorkerName)
	assert.Equal(t, "2026-03-10", row.Date)
	assert.True(t, row.TotalHours.Equal(decimal.NewFromInt(9)), "total %s", row.TotalHours)
	assert.True(t, row.RegularHours.Equal(decimal.NewFromInt(8)), "regular %s", row.RegularHours)
	assert.True(t, row.OvertimeHours.Equal(decimal.NewFromInt(1)), "overtime %s", row.OvertimeHours)
	// 8*100 + 1*100*1.5 = 950
	assert.True(t, row.Pay.Equal(decimal.NewFromInt(950)), "pay %s", row.Pay)
}

func TestPayrollService_Report_SplitShiftsBelowThreshold(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPayrollFixture(t)

	workerID := f.addWorker(t, "erik", "Erik Ek", 100)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	f.addClosedPunch(t, workerID, day.Add(8*time.Hour), 4)
	f.addClosedPunch(t, workerID, day.Add(14*time.Hour), 3)

	report, err := f.svc.Report(ctx, f.manager, payroll.ReportRequest{StartDate: "2026-03-10", EndDate: "2026-03-10"})
	require.NoError(t, err)

	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	assert.True(t, row.TotalHours.Equal(decimal.NewFromInt(7)))
	assert.True(t, row.RegularHours.Equal(decimal.NewFromInt(7)))
	assert.True(t, row.OvertimeHours.IsZero())
	assert.True(t, row.Pay.Equal(decimal.NewFromInt(700)))
}

func TestPayrollService_Report_OpenPunchContributesZero(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPayrollFixture(t)

	workerID := f.addWorker(t, "erik", "Erik Ek", 100)
	in := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	_, err := f.punchRepo.Create(ctx, punch.Punch{WorkerID: workerID, ClockIn: in})
	require.NoError(t, err)

	report, err := f.svc.Report(ctx, f.manager, payroll.ReportRequest{StartDate: "2026-03-10", EndDate: "2026-03-10"})
	require.NoError(t, err)

	require.Len(t, report.Rows, 1)
	assert.True(t, report.Rows[0].TotalHours.IsZero())
	assert.True(t, report.Rows[0].Pay.IsZero())
}

func TestPayrollService_Report_UnapprovedPunchesIncluded(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPayrollFixture(t)

	workerID := f.addWorker(t, "erik", "Erik Ek", 100)
	in := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	out := in.Add(6 * time.Hour)
	_, err := f.punchRepo.Create(ctx, punch.Punch{WorkerID: workerID, ClockIn: in, ClockOut: &out, Approved: false})
	require.NoError(t, err)

	report, err := f.svc.Report(ctx, f.manager, payroll.ReportRequest{StartDate: "2026-03-10", EndDate: "2026-03-10"})
	require.NoError(t, err)

	require.Len(t, report.Rows, 1)
	assert.True(t, report.Rows[0].TotalHours.Equal(decimal.NewFromInt(6)))
}

func TestPayrollService_Report_GroupsByClockInDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPayrollFixture(t)

	workerID := f.addWorker(t, "erik", "Erik Ek", 100)
	// Crosses midnight: all hours land on the clock-in date
	in := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)
	f.addClosedPunch(t, workerID, in, 4)

	report, err := f.svc.Report(ctx, f.manager, payroll.ReportRequest{StartDate: "2026-03-10", EndDate: "2026-03-11"})
	require.NoError(t, err)

	require.Len(t, report.Rows, 1)
	assert.Equal(t, "2026-03-10", report.Rows[0].Date)
	assert.True(t, report.Rows[0].TotalHours.Equal(decimal.NewFromInt(4)))
}

func TestPayrollService_Report_SortedByNameThenDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPayrollFixture(t)

	annaID := f.addWorker(t, "anna", "Anna Andersson", 165)
	erikID := f.addWorker(t, "erik", "Erik Ek", 145)
	day1 := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)
	f.addClosedPunch(t, erikID, day1, 8)
	f.addClosedPunch(t, annaID, day2, 8)
	f.addClosedPunch(t, annaID, day1, 8)

	report, err := f.svc.Report(ctx, f.manager, payroll.ReportRequest{StartDate: "2026-03-10", EndDate: "2026-03-11"})
	require.NoError(t, err)

	require.Len(t, report.Rows, 3)
	assert.Equal(t, "Anna Andersson", report.Rows[0].WorkerName)
	assert.Equal(t, "2026-03-10", report.Rows[0].Date)
	assert.Equal(t, "Anna Andersson", report.Rows[1].WorkerName)
	assert.Equal(t, "2026-03-11", report.Rows[1].Date)
	assert.Equal(t, "Erik Ek", report.Rows[2].WorkerName)

	// 24 hours total, anna 16*165 + erik 8*145
	assert.True(t, report.TotalHours.Equal(decimal.NewFromInt(24)))
	assert.True(t, report.TotalPay.Equal(decimal.NewFromInt(16*165+8*145)))
}

func TestPayrollService_Report_FractionalHoursRounded(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPayrollFixture(t)

	workerID := f.addWorker(t, "erik", "Erik Ek", 100)
	in := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	out := in.Add(7*time.Hour + 20*time.Minute)
	_, err := f.punchRepo.Create(ctx, punch.Punch{WorkerID: workerID, ClockIn: in, ClockOut: &out})
	require.NoError(t, err)

	report, err := f.svc.Report(ctx, f.manager, payroll.ReportRequest{StartDate: "2026-03-10", EndDate: "2026-03-10"})
	require.NoError(t, err)

	require.Len(t, report.Rows, 1)
	assert.True(t, report.Rows[0].TotalHours.Equal(decimal.NewFromFloat(7.33)), "hours %s", report.Rows[0].TotalHours)
}

func TestPayrollService_Report_InvalidRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPayrollFixture(t)

	_, err := f.svc.Report(ctx, f.manager, payroll.ReportRequest{StartDate: "2026-03-11", EndDate: "2026-03-10"})
	assert.Error(t, err)
}

func TestPayrollService_Report_EmployeeForbidden(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPayrollFixture(t)

	employee := worker.Principal{WorkerID: "emp", Role: worker.RoleEmployee}
	_, err := f.svc.Report(ctx, employee, payroll.ReportRequest{StartDate: "2026-03-10", EndDate: "2026-03-10"})
	assert.ErrorIs(t, err, worker.ErrCapabilityRequired)
}

func TestPayrollService_WriteCSV(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPayrollFixture(t)

	workerID := f.addWorker(t, "erik", "Erik Ek", 100)
	in := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	f.addClosedPunch(t, workerID, in, 9)

	var buf bytes.Buffer
	err := f.svc.WriteCSV(ctx, f.manager, payroll.ReportRequest{StartDate: "2026-03-10", EndDate: "2026-03-10"}, &buf)
	require.NoError(t, err)

	want := "worker_name,date,total_hours,regular_hours,overtime_hours,hourly_rate,pay\n" +
		"Erik Ek,2026-03-10,9.00,8.00,1.00,100.00,950.00\n"
	assert.Equal(t, want, buf.String())
}

func TestPayrollService_ConfigurableOvertimeThreshold(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	workerRepo := memory.NewWorkerRepository()
	punchRepo := memory.NewPunchRepository()
	svc := NewPayrollService(punchRepo, workerRepo, 6)

	created, err := workerRepo.Create(ctx, worker.Worker{
		Username:   "erik",
		FullName:   "Erik Ek",
		Role:       worker.RoleEmployee,
		HourlyRate: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	in := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	out := in.Add(7 * time.Hour)
	_, err = punchRepo.Create(ctx, punch.Punch{WorkerID: created.ID, ClockIn: in, ClockOut: &out})
	require.NoError(t, err)

	manager := worker.Principal{WorkerID: "mgr", Role: worker.RoleManager}
	report, err := svc.Report(ctx, manager, payroll.ReportRequest{StartDate: "2026-03-10", EndDate: "2026-03-10"})
	require.NoError(t, err)

	require.Len(t, report.Rows, 1)
	assert.True(t, report.Rows[0].RegularHours.Equal(decimal.NewFromInt(6)))
	assert.True(t, report.Rows[0].OvertimeHours.Equal(decimal.NewFromInt(1)))
}
