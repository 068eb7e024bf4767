package shift

import (
	"context"
	"time"

	"github.com/shiftline/timeclock-backend-go/internal/domain/shift"
	"github.com/shiftline/timeclock-backend-go/internal/domain/worker"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
	worker.WorkerRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository, workerRepo worker.WorkerRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		ShiftRepository:  shiftRepo,
		WorkerRepository: workerRepo,
	}
}

// Create implements shift.ShiftService.
func (s *ShiftServiceImpl) Create(ctx context.Context, p worker.Principal, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if !worker.Allowed(p.Role, worker.CapabilityShiftManage) {
		return shift.ShiftResponse{}, worker.ErrCapabilityRequired
	}

	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.WorkerID != nil {
		if _, err := s.WorkerRepository.GetByID(ctx, *req.WorkerID); err != nil {
			return shift.ShiftResponse{}, err
		}
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	created, err := s.ShiftRepository.Create(ctx, shift.Shift{
		WorkerID:  req.WorkerID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Position:  req.Position,
		Location:  req.Location,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return s.toShiftResponse(ctx, created), nil
}

// ListInWeek implements shift.ShiftService. The week is the
// Monday..Sunday span that contains the anchor date.
func (s *ShiftServiceImpl) ListInWeek(ctx context.Context, p worker.Principal, filter shift.WeekFilter) ([]shift.ShiftResponse, error) {
	if !worker.Allowed(p.Role, worker.CapabilityShiftView) {
		return nil, worker.ErrCapabilityRequired
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	anchor, _ := time.Parse("2006-01-02", filter.AnchorDate)
	monday := WeekStart(anchor)
	sunday := monday.AddDate(0, 0, 6)

	shifts, err := s.ShiftRepository.ListInRange(ctx, monday, sunday)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, planned := range shifts {
		responses = append(responses, s.toShiftResponse(ctx, planned))
	}

	return responses, nil
}

// DeleteShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) DeleteShifts(ctx context.Context, p worker.Principal, req shift.DeleteShiftsRequest) (shift.DeleteShiftsResponse, error) {
	if !worker.Allowed(p.Role, worker.CapabilityShiftManage) {
		return shift.DeleteShiftsResponse{}, worker.ErrCapabilityRequired
	}

	deleted, err := s.ShiftRepository.DeleteByIDs(ctx, req.IDs)
	if err != nil {
		return shift.DeleteShiftsResponse{}, err
	}

	return shift.DeleteShiftsResponse{Deleted: deleted}, nil
}

// WeekStart returns the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	day := t.Truncate(24 * time.Hour)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func (s *ShiftServiceImpl) toShiftResponse(ctx context.Context, planned shift.Shift) shift.ShiftResponse {
	resp := shift.ShiftResponse{
		ID:        planned.ID,
		WorkerID:  planned.WorkerID,
		Date:      planned.Date.Format("2006-01-02"),
		StartTime: planned.StartTime,
		EndTime:   planned.EndTime,
		Position:  planned.Position,
		Location:  planned.Location,
	}
	if planned.WorkerID != nil {
		if owner, err := s.WorkerRepository.GetByID(ctx, *planned.WorkerID); err == nil {
			resp.WorkerName = &owner.FullName
		}
	}
	return resp
}
