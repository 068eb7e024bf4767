// Package memory provides in-memory repository implementations backed by
// mutex-guarded maps. They honor the same invariants as the PostgreSQL
// repositories and back both the STORE_TYPE=memory deployment mode and
// the service tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shiftline/timeclock-backend-go/internal/domain/worker"
)

type workerRepositoryImpl struct {
	mu      sync.RWMutex
	workers map[string]worker.Worker
}

func NewWorkerRepository() worker.WorkerRepository {
	return &workerRepositoryImpl{
		workers: make(map[string]worker.Worker),
	}
}

// Create implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Create(ctx context.Context, newWorker worker.Worker) (worker.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, w := range r.workers {
		if w.Username == newWorker.Username {
			return worker.Worker{}, worker.ErrUsernameExists
		}
		if newWorker.PIN != nil && w.PIN != nil && *w.PIN == *newWorker.PIN {
			return worker.Worker{}, worker.ErrPINExists
		}
	}

	now := time.Now()
	newWorker.ID = uuid.NewString()
	newWorker.CreatedAt = now
	newWorker.UpdatedAt = now
	r.workers[newWorker.ID] = newWorker

	return newWorker, nil
}

// Update implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Update(ctx context.Context, updatedWorker worker.Worker) (worker.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.workers[updatedWorker.ID]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}

	for id, w := range r.workers {
		if id == updatedWorker.ID {
			continue
		}
		if w.Username == updatedWorker.Username {
			return worker.Worker{}, worker.ErrUsernameExists
		}
		if updatedWorker.PIN != nil && w.PIN != nil && *w.PIN == *updatedWorker.PIN {
			return worker.Worker{}, worker.ErrPINExists
		}
	}

	updatedWorker.CreatedAt = existing.CreatedAt
	updatedWorker.UpdatedAt = time.Now()
	r.workers[updatedWorker.ID] = updatedWorker

	return updatedWorker, nil
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

// GetByUsername implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByUsername(ctx context.Context, username string) (worker.Worker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, w := range r.workers {
		if w.Username == username {
			return w, nil
		}
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

// GetByPIN implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByPIN(ctx context.Context, pin string) (worker.Worker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, w := range r.workers {
		if w.PIN != nil && *w.PIN == pin {
			return w, nil
		}
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

// List implements worker.WorkerRepository.
func (r *workerRepositoryImpl) List(ctx context.Context) ([]worker.Worker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	workers := make([]worker.Worker, 0, len(r.workers))
	for _, w := range r.workers {
		workers = append(workers, w)
	}
	sort.Slice(workers, func(i, j int) bool {
		if workers[i].FullName != workers[j].FullName {
			return workers[i].FullName < workers[j].FullName
		}
		return workers[i].Username < workers[j].Username
	})

	return workers, nil
}

// Count implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.workers)), nil
}
