package approval

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftline/timeclock-backend-go/internal/domain/approval"
	"github.com/shiftline/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftline/timeclock-backend-go/internal/domain/worker"
	"github.com/shiftline/timeclock-backend-go/internal/pkg/validator"
	"github.com/shiftline/timeclock-backend-go/internal/repository/memory"
)

type approvalFixture struct {
	svc        approval.ApprovalService
	punchRepo  punch.PunchRepository
	workerRepo worker.WorkerRepository
	workerID   string
	manager    worker.Principal
}

func newApprovalFixture(t *testing.T) approvalFixture {
	t.Helper()
	ctx := context.Background()

	workerRepo := memory.NewWorkerRepository()
	punchRepo := memory.NewPunchRepository()

	created, err := workerRepo.Create(ctx, worker.Worker{
		Username: "erik",
		FullName: "Erik Ek",
		Role:     worker.RoleEmployee,
	})
	require.NoError(t, err)

	return approvalFixture{
		svc:        NewApprovalService(punchRepo, workerRepo),
		punchRepo:  punchRepo,
		workerRepo: workerRepo,
		workerID:   created.ID,
		manager:    worker.Principal{WorkerID: "mgr", Role: worker.RoleManager},
	}
}

func (f approvalFixture) closedPunch(t *testing.T, in time.Time, out time.Time) punch.Punch {
	t.Helper()
	created, err := f.punchRepo.Create(context.Background(), punch.Punch{
		WorkerID: f.workerID,
		ClockIn:  in,
		ClockOut: &out,
	})
	require.NoError(t, err)
	return created
}

// ===== APPROVAL SERVICE TESTS =====

func TestApprovalService_ListInRange_IncludesFullEndDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newApprovalFixture(t)

	inside := time.Date(2026, 3, 12, 23, 30, 0, 0, time.UTC)
	outside := time.Date(2026, 3, 13, 0, 30, 0, 0, time.UTC)
	f.closedPunch(t, inside, inside.Add(time.Hour))
	f.closedPunch(t, outside, outside.Add(time.Hour))

	listed, err := f.svc.ListInRange(ctx, f.manager, approval.RangeFilter{StartDate: "2026-03-10", EndDate: "2026-03-12"})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, inside.Format(time.RFC3339), listed[0].ClockIn)
	require.NotNil(t, listed[0].WorkerName)
	assert.Equal(t, "Erik Ek", *listed[0].WorkerName)
}

func TestApprovalService_ListInRange_InvalidRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newApprovalFixture(t)

	_, err := f.svc.ListInRange(ctx, f.manager, approval.RangeFilter{StartDate: "2026-03-12", EndDate: "2026-03-10"})
	require.Error(t, err)

	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
}

func TestApprovalService_ListInRange_RequiresViewAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newApprovalFixture(t)

	employee := worker.Principal{WorkerID: f.workerID, Role: worker.RoleEmployee}
	_, err := f.svc.ListInRange(ctx, employee, approval.RangeFilter{StartDate: "2026-03-10", EndDate: "2026-03-12"})
	assert.ErrorIs(t, err, worker.ErrCapabilityRequired)
}

func TestApprovalService_Adjust_OverwritesTimes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newApprovalFixture(t)

	in := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)
	created := f.closedPunch(t, in, in.Add(8*time.Hour))

	newIn := "2026-03-12 08:30"
	newOut := "2026-03-12T16:45:00Z"
	adjusted, err := f.svc.Adjust(ctx, f.manager, approval.AdjustRequest{
		PunchID:     created.ID,
		NewClockIn:  &newIn,
		NewClockOut: &newOut,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-12T08:30:00Z", adjusted.ClockIn)
	require.NotNil(t, adjusted.ClockOut)
	assert.Equal(t, "2026-03-12T16:45:00Z", *adjusted.ClockOut)
}

func TestApprovalService_Adjust_ApproveIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newApprovalFixture(t)

	in := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)
	created := f.closedPunch(t, in, in.Add(8*time.Hour))

	approve := true
	first, err := f.svc.Adjust(ctx, f.manager, approval.AdjustRequest{PunchID: created.ID, Approve: &approve})
	require.NoError(t, err)
	assert.True(t, first.Approved)

	second, err := f.svc.Adjust(ctx, f.manager, approval.AdjustRequest{PunchID: created.ID, Approve: &approve})
	require.NoError(t, err)
	assert.True(t, second.Approved)
}

func TestApprovalService_Adjust_EmptyRequestIsNoOp(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newApprovalFixture(t)

	in := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)
	created := f.closedPunch(t, in, in.Add(8*time.Hour))

	resp, err := f.svc.Adjust(ctx, f.manager, approval.AdjustRequest{PunchID: created.ID})
	require.NoError(t, err)

	stored, err := f.punchRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.UpdatedAt, stored.UpdatedAt, "no-op adjust must not touch the record")
	assert.Equal(t, created.ClockIn.Format(time.RFC3339), resp.ClockIn)
	assert.False(t, resp.Approved)
}

func TestApprovalService_Adjust_ClockOutBeforeClockInRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newApprovalFixture(t)

	in := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)
	created := f.closedPunch(t, in, in.Add(8*time.Hour))

	newOut := "2026-03-12 07:00"
	_, err := f.svc.Adjust(ctx, f.manager, approval.AdjustRequest{PunchID: created.ID, NewClockOut: &newOut})
	assert.ErrorIs(t, err, punch.ErrClockOutBeforeClockIn)

	// The rejected adjustment must not leak into the store
	stored, err := f.punchRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ClockOut)
	assert.True(t, stored.ClockOut.Equal(in.Add(8*time.Hour)))
}

func TestApprovalService_Adjust_BadTimestampFormat(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newApprovalFixture(t)

	in := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)
	created := f.closedPunch(t, in, in.Add(8*time.Hour))

	bad := "12/03/2026 08:00"
	_, err := f.svc.Adjust(ctx, f.manager, approval.AdjustRequest{PunchID: created.ID, NewClockIn: &bad})
	require.Error(t, err)

	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
}

func TestApprovalService_Adjust_RequiresAdjustCapability(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newApprovalFixture(t)

	employee := worker.Principal{WorkerID: f.workerID, Role: worker.RoleEmployee}
	approve := true
	_, err := f.svc.Adjust(ctx, employee, approval.AdjustRequest{PunchID: "whatever", Approve: &approve})
	assert.ErrorIs(t, err, worker.ErrCapabilityRequired)
}

func TestApprovalService_Adjust_UnknownPunch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newApprovalFixture(t)

	approve := true
	_, err := f.svc.Adjust(ctx, f.manager, approval.AdjustRequest{PunchID: "missing", Approve: &approve})
	assert.ErrorIs(t, err, punch.ErrPunchNotFound)
}
