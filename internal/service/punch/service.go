package punch

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftline/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftline/timeclock-backend-go/internal/domain/worker"
)

type PunchServiceImpl struct {
	punch.PunchRepository
	worker.WorkerRepository
	now func() time.Time
}

func NewPunchService(punchRepo punch.PunchRepository, workerRepo worker.WorkerRepository) punch.PunchService {
	return &PunchServiceImpl{
		PunchRepository:  punchRepo,
		WorkerRepository: workerRepo,
		now:              time.Now,
	}
}

// ClockIn implements punch.PunchService.
func (s *PunchServiceImpl) ClockIn(ctx context.Context, p worker.Principal, req punch.ClockInRequest) (punch.PunchResponse, error) {
	if !worker.Allowed(p.Role, worker.CapabilityPunchSelf) {
		return punch.PunchResponse{}, worker.ErrCapabilityRequired
	}

	if _, err := s.WorkerRepository.GetByID(ctx, p.WorkerID); err != nil {
		return punch.PunchResponse{}, err
	}

	created, err := s.PunchRepository.Create(ctx, punch.Punch{
		WorkerID: p.WorkerID,
		ClockIn:  s.now().UTC(),
		Note:     req.Note,
		Location: req.Location,
	})
	if err != nil {
		return punch.PunchResponse{}, err
	}

	return toPunchResponse(created), nil
}

// ClockOut implements punch.PunchService. Only the punch owner may
// close it; note and location text supplied here is appended to the
// existing content rather than replacing it.
func (s *PunchServiceImpl) ClockOut(ctx context.Context, p worker.Principal, req punch.ClockOutRequest) (punch.PunchResponse, error) {
	if !worker.Allowed(p.Role, worker.CapabilityPunchSelf) {
		return punch.PunchResponse{}, worker.ErrCapabilityRequired
	}

	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	existing, err := s.PunchRepository.GetByID(ctx, req.PunchID)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	if existing.WorkerID != p.WorkerID {
		return punch.PunchResponse{}, punch.ErrNotPunchOwner
	}
	if !existing.Open() {
		return punch.PunchResponse{}, punch.ErrPunchAlreadyClosed
	}

	nowUTC := s.now().UTC()
	if nowUTC.Before(existing.ClockIn) {
		return punch.PunchResponse{}, punch.ErrClockOutBeforeClockIn
	}

	existing.ClockOut = &nowUTC
	existing.Note = appendText(existing.Note, req.Note)
	existing.Location = appendText(existing.Location, req.Location)

	updated, err := s.PunchRepository.Update(ctx, existing)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	return toPunchResponse(updated), nil
}

// ListForWorkerOnDate implements punch.PunchService.
func (s *PunchServiceImpl) ListForWorkerOnDate(ctx context.Context, p worker.Principal, filter punch.DayFilter) ([]punch.PunchResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	if filter.WorkerID != p.WorkerID && !worker.Allowed(p.Role, worker.CapabilityPunchViewAll) {
		return nil, worker.ErrCapabilityRequired
	}

	day, err := time.Parse("2006-01-02", filter.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	punches, err := s.PunchRepository.ListForWorkerInRange(ctx, filter.WorkerID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	responses := make([]punch.PunchResponse, 0, len(punches))
	for _, record := range punches {
		responses = append(responses, toPunchResponse(record))
	}

	return responses, nil
}

// appendText joins extra onto existing on a new line; an empty extra
// leaves existing untouched.
func appendText(existing string, extra string) string {
	if extra == "" {
		return existing
	}
	if existing == "" {
		return extra
	}
	return existing + "\n" + extra
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
