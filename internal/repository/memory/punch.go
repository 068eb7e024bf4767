package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shiftline/timeclock-backend-go/internal/domain/punch"
)

type punchRepositoryImpl struct {
	mu      sync.RWMutex
	punches map[string]punch.Punch
}

func NewPunchRepository() punch.PunchRepository {
	return &punchRepositoryImpl{
		punches: make(map[string]punch.Punch),
	}
}

// Create implements punch.PunchRepository. The store-wide lock makes the
// open-punch check and the insert a single atomic step, so concurrent
// clock-ins for one worker cannot both succeed.
func (r *punchRepositoryImpl) Create(ctx context.Context, newPunch punch.Punch) (punch.Punch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if newPunch.ClockOut == nil {
		for _, p := range r.punches {
			if p.WorkerID == newPunch.WorkerID && p.ClockOut == nil {
				return punch.Punch{}, punch.ErrOpenPunchExists
			}
		}
	}

	now := time.Now()
	newPunch.ID = uuid.NewString()
	newPunch.CreatedAt = now
	newPunch.UpdatedAt = now
	r.punches[newPunch.ID] = newPunch

	return newPunch, nil
}

// GetByID implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetByID(ctx context.Context, id string) (punch.Punch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.punches[id]
	if !ok {
		return punch.Punch{}, punch.ErrPunchNotFound
	}
	return p, nil
}

// GetOpenForWorker implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetOpenForWorker(ctx context.Context, workerID string) (punch.Punch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.punches {
		if p.WorkerID == workerID && p.ClockOut == nil {
			return p, nil
		}
	}
	return punch.Punch{}, punch.ErrPunchNotFound
}

// Update implements punch.PunchRepository.
func (r *punchRepositoryImpl) Update(ctx context.Context, updatedPunch punch.Punch) (punch.Punch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.punches[updatedPunch.ID]
	if !ok {
		return punch.Punch{}, punch.ErrPunchNotFound
	}

	updatedPunch.WorkerID = existing.WorkerID
	updatedPunch.CreatedAt = existing.CreatedAt
	updatedPunch.UpdatedAt = time.Now()
	r.punches[updatedPunch.ID] = updatedPunch

	return updatedPunch, nil
}

// ListForWorkerInRange implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListForWorkerInRange(ctx context.Context, workerID string, from time.Time, to time.Time) ([]punch.Punch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var punches []punch.Punch
	for _, p := range r.punches {
		if p.WorkerID != workerID {
			continue
		}
		if inRange(p.ClockIn, from, to) {
			punches = append(punches, p)
		}
	}
	sortByClockInDesc(punches)

	return punches, nil
}

// ListInRange implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListInRange(ctx context.Context, from time.Time, to time.Time) ([]punch.Punch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var punches []punch.Punch
	for _, p := range r.punches {
		if inRange(p.ClockIn, from, to) {
			punches = append(punches, p)
		}
	}
	sortByClockInDesc(punches)

	return punches, nil
}

// inRange reports whether t falls in the half-open interval [from, to).
func inRange(t time.Time, from time.Time, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

func sortByClockInDesc(punches []punch.Punch) {
	sort.Slice(punches, func(i, j int) bool {
		return punches[i].ClockIn.After(punches[j].ClockIn)
	})
}
