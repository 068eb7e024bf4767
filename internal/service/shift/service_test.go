package shift

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftline/timeclock-backend-go/internal/domain/shift"
	"github.com/shiftline/timeclock-backend-go/internal/domain/worker"
	"github.com/shiftline/timeclock-backend-go/internal/pkg/validator"
	"github.com/shiftline/timeclock-backend-go/internal/repository/memory"
)

func newTestShiftService(t *testing.T) (shift.ShiftService, string) {
	t.Helper()
	ctx := context.Background()

	workerRepo := memory.NewWorkerRepository()
	shiftRepo := memory.NewShiftRepository()

	created, err := workerRepo.Create(ctx, worker.Worker{
		Username: "anna",
		FullName: "Anna Andersson",
		Role:     worker.RoleManager,
	})
	require.NoError(t, err)

	return NewShiftService(shiftRepo, workerRepo), created.ID
}

func managerPrincipal() worker.Principal {
	return worker.Principal{WorkerID: "mgr", Role: worker.RoleManager}
}

// ===== SHIFT SERVICE TESTS =====

func TestShiftService_Create_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, workerID := newTestShiftService(t)

	created, err := svc.Create(ctx, managerPrincipal(), shift.CreateShiftRequest{
		WorkerID:  &workerID,
		Date:      "2026-03-09",
		StartTime: "08:00",
		EndTime:   "16:00",
		Position:  "server",
		Location:  "main floor",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "2026-03-09", created.Date)
	assert.Equal(t, "08:00", created.StartTime)
	require.NotNil(t, created.WorkerName)
	assert.Equal(t, "Anna Andersson", *created.WorkerName)
}

func TestShiftService_Create_UnassignedAllowed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestShiftService(t)

	created, err := svc.Create(ctx, managerPrincipal(), shift.CreateShiftRequest{
		Date:      "2026-03-09",
		StartTime: "08:00",
		EndTime:   "16:00",
	})
	require.NoError(t, err)
	assert.Nil(t, created.WorkerID)
	assert.Nil(t, created.WorkerName)
}

func TestShiftService_Create_UnknownWorkerRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestShiftService(t)

	ghost := "no-such-worker"
	_, err := svc.Create(ctx, managerPrincipal(), shift.CreateShiftRequest{
		WorkerID:  &ghost,
		Date:      "2026-03-09",
		StartTime: "08:00",
		EndTime:   "16:00",
	})
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestShiftService_Create_InvalidTimes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestShiftService(t)

	_, err := svc.Create(ctx, managerPrincipal(), shift.CreateShiftRequest{
		Date:      "09/03/2026",
		StartTime: "8am",
		EndTime:   "25:00",
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "start_time")
	assert.Contains(t, fields, "end_time")
}

func TestShiftService_Create_EmployeeForbidden(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestShiftService(t)

	employee := worker.Principal{WorkerID: "emp", Role: worker.RoleEmployee}
	_, err := svc.Create(ctx, employee, shift.CreateShiftRequest{
		Date:      "2026-03-09",
		StartTime: "08:00",
		EndTime:   "16:00",
	})
	assert.ErrorIs(t, err, worker.ErrCapabilityRequired)
}

func TestShiftService_ListInWeek_MondayThroughSunday(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestShiftService(t)

	// 2026-03-11 is a Wednesday; its week is Mon 2026-03-09 .. Sun 2026-03-15
	for _, date := range []string{"2026-03-08", "2026-03-09", "2026-03-15", "2026-03-16"} {
		_, err := svc.Create(ctx, managerPrincipal(), shift.CreateShiftRequest{
			Date:      date,
			StartTime: "08:00",
			EndTime:   "16:00",
		})
		require.NoError(t, err)
	}

	listed, err := svc.ListInWeek(ctx, managerPrincipal(), shift.WeekFilter{AnchorDate: "2026-03-11"})
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "2026-03-09", listed[0].Date)
	assert.Equal(t, "2026-03-15", listed[1].Date)
}

func TestShiftService_ListInWeek_AnchorOnMondayAndSunday(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestShiftService(t)

	_, err := svc.Create(ctx, managerPrincipal(), shift.CreateShiftRequest{
		Date:      "2026-03-09",
		StartTime: "08:00",
		EndTime:   "16:00",
	})
	require.NoError(t, err)

	for _, anchor := range []string{"2026-03-09", "2026-03-15"} {
		listed, err := svc.ListInWeek(ctx, managerPrincipal(), shift.WeekFilter{AnchorDate: anchor})
		require.NoError(t, err)
		assert.Len(t, listed, 1, "anchor %s", anchor)
	}
}

func TestShiftService_ListInWeek_EmployeeForbidden(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestShiftService(t)

	employee := worker.Principal{WorkerID: "emp", Role: worker.RoleEmployee}
	_, err := svc.ListInWeek(ctx, employee, shift.WeekFilter{AnchorDate: "2026-03-11"})
	assert.ErrorIs(t, err, worker.ErrCapabilityRequired)
}

func TestShiftService_DeleteShifts_SkipsUnknownIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestShiftService(t)

	var ids []string
	for _, date := range []string{"2026-03-09", "2026-03-10"} {
		created, err := svc.Create(ctx, managerPrincipal(), shift.CreateShiftRequest{
			Date:      date,
			StartTime: "08:00",
			EndTime:   "16:00",
		})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	resp, err := svc.DeleteShifts(ctx, managerPrincipal(), shift.DeleteShiftsRequest{
		IDs: append(ids, "missing-1", "missing-2"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Deleted)

	listed, err := svc.ListInWeek(ctx, managerPrincipal(), shift.WeekFilter{AnchorDate: "2026-03-09"})
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestShiftService_DeleteShifts_EmptyRequest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestShiftService(t)

	resp, err := svc.DeleteShifts(ctx, managerPrincipal(), shift.DeleteShiftsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Deleted)
}

func TestWeekStart(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		in     string
		monday string
	}{
		{"wednesday", "2026-03-11", "2026-03-09"},
		{"monday", "2026-03-09", "2026-03-09"},
		{"sunday", "2026-03-15", "2026-03-09"},
		{"year boundary", "2026-01-01", "2025-12-29"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			day, err := time.Parse("2006-01-02", tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.monday, WeekStart(day).Format("2006-01-02"))
		})
	}
}
