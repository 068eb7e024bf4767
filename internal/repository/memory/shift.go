package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shiftline/timeclock-backend-go/internal/domain/shift"
)

type shiftRepositoryImpl struct {
	mu     sync.RWMutex
	shifts map[string]shift.Shift
}

func NewShiftRepository() shift.ShiftRepository {
	return &shiftRepositoryImpl{
		shifts: make(map[string]shift.Shift),
	}
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	newShift.ID = uuid.NewString()
	newShift.CreatedAt = time.Now()
	r.shifts[newShift.ID] = newShift

	return newShift, nil
}

// ListInRange implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListInRange(ctx context.Context, from time.Time, to time.Time) ([]shift.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var shifts []shift.Shift
	for _, s := range r.shifts {
		if s.Date.Before(from) || s.Date.After(to) {
			continue
		}
		shifts = append(shifts, s)
	}
	sort.Slice(shifts, func(i, j int) bool {
		if !shifts[i].Date.Equal(shifts[j].Date) {
			return shifts[i].Date.Before(shifts[j].Date)
		}
		return shifts[i].StartTime < shifts[j].StartTime
	})

	return shifts, nil
}

// DeleteByIDs implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) DeleteByIDs(ctx context.Context, ids []string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for _, id := range ids {
		if _, ok := r.shifts[id]; ok {
			delete(r.shifts, id)
			deleted++
		}
	}

	return deleted, nil
}
