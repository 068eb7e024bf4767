package approval

import (
	"context"
	"errors"
	"time"

	"github.com/shiftline/timeclock-backend-go/internal/domain/approval"
	"github.com/shiftline/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftline/timeclock-backend-go/internal/domain/worker"
)

type ApprovalServiceImpl struct {
	punch.PunchRepository
	worker.WorkerRepository
}

func NewApprovalService(punchRepo punch.PunchRepository, workerRepo worker.WorkerRepository) approval.ApprovalService {
	return &ApprovalServiceImpl{
		PunchRepository:  punchRepo,
		WorkerRepository: workerRepo,
	}
}

// ListInRange implements approval.ApprovalService.
func (s *ApprovalServiceImpl) ListInRange(ctx context.Context, p worker.Principal, filter approval.RangeFilter) ([]punch.PunchResponse, error) {
	if !worker.Allowed(p.Role, worker.CapabilityPunchViewAll) {
		return nil, worker.ErrCapabilityRequired
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, _ := time.Parse("2006-01-02", filter.StartDate)
	end, _ := time.Parse("2006-01-02", filter.EndDate)

	punches, err := s.PunchRepository.ListInRange(ctx, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	responses := make([]punch.PunchResponse, 0, len(punches))
	for _, record := range punches {
		name, ok := names[record.WorkerID]
		if !ok {
			owner, err := s.WorkerRepository.GetByID(ctx, record.WorkerID)
			if err != nil && !errors.Is(err, worker.ErrWorkerNotFound) {
				return nil, err
			}
			name = owner.FullName
			names[record.WorkerID] = name
		}
		if name != "" {
			record.WorkerName = &name
		}
		responses = append(responses, toPunchResponse(record))
	}

	return responses, nil
}

// Adjust implements approval.ApprovalService. Supplied times overwrite
// the stored ones directly; a request with no fields set leaves the
// record untouched and skips the write entirely.
func (s *ApprovalServiceImpl) Adjust(ctx context.Context, p worker.Principal, req approval.AdjustRequest) (punch.PunchResponse, error) {
	if !worker.Allowed(p.Role, worker.CapabilityPunchAdjust) {
		return punch.PunchResponse{}, worker.ErrCapabilityRequired
	}

	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	existing, err := s.PunchRepository.GetByID(ctx, req.PunchID)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	if req.NewClockIn == nil && req.NewClockOut == nil && req.Approve == nil {
		return toPunchResponse(existing), nil
	}

	if req.NewClockIn != nil {
		t, _ := parseAdjustTime(*req.NewClockIn)
		existing.ClockIn = t
	}
	if req.NewClockOut != nil {
		t, _ := parseAdjustTime(*req.NewClockOut)
		existing.ClockOut = &t
	}
	if existing.ClockOut != nil && existing.ClockOut.Before(existing.ClockIn) {
		return punch.PunchResponse{}, punch.ErrClockOutBeforeClockIn
	}
	if req.Approve != nil {
		existing.Approved = *req.Approve
	}

	updated, err := s.PunchRepository.Update(ctx, existing)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	return toPunchResponse(updated), nil
}

// parseAdjustTime accepts the formats AdjustRequest.Validate allows.
func parseAdjustTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
	} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func toPunchResponse(record punch.Punch) punch.PunchResponse {
	resp := punch.PunchResponse{
		ID:         record.ID,
		WorkerID:   record.WorkerID,
		WorkerName: record.WorkerName,
		ClockIn:    record.ClockIn.Format(time.RFC3339),
		Note:       record.Note,
		Location:   record.Location,
		Approved:   record.Approved,
		CreatedAt:  record.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  record.UpdatedAt.Format(time.RFC3339),
	}
	if record.ClockOut != nil {
		out := record.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &out
	}
	return resp
}
