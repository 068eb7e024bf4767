package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/shiftline/timeclock-backend-go/internal/domain/worker"
)

// defaultPassword backs accounts created without one; admins are
// expected to rotate it.
const defaultPassword = "changeme"

type WorkerServiceImpl struct {
	worker.WorkerRepository
}

func NewWorkerService(workerRepo worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{WorkerRepository: workerRepo}
}

// Create implements worker.WorkerService.
func (s *WorkerServiceImpl) Create(ctx context.Context, p worker.Principal, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if !worker.Allowed(p.Role, worker.CapabilityWorkerManage) {
		return worker.WorkerResponse{}, worker.ErrCapabilityRequired
	}

	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	password := defaultPassword
	if req.Password != nil && *req.Password != "" {
		password = *req.Password
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	created, err := s.WorkerRepository.Create(ctx, worker.Worker{
		Username:     req.Username,
		FullName:     req.FullName,
		PasswordHash: &hashStr,
		Role:         worker.Role(req.Role),
		HourlyRate:   req.HourlyRate,
		PIN:          req.PIN,
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return toWorkerResponse(created), nil
}

// Update implements worker.WorkerService.
func (s *WorkerServiceImpl) Update(ctx context.Context, p worker.Principal, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if !worker.Allowed(p.Role, worker.CapabilityWorkerManage) {
		return worker.WorkerResponse{}, worker.ErrCapabilityRequired
	}

	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	existing, err := s.WorkerRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	if req.FullName != nil {
		existing.FullName = *req.FullName
	}
	if req.Role != nil {
		existing.Role = worker.Role(*req.Role)
	}
	if req.HourlyRate != nil {
		existing.HourlyRate = *req.HourlyRate
	}
	if req.PIN != nil {
		existing.PIN = req.PIN
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return worker.WorkerResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashStr := string(hash)
		existing.PasswordHash = &hashStr
	}

	updated, err := s.WorkerRepository.Update(ctx, existing)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return toWorkerResponse(updated), nil
}

// List implements worker.WorkerService.
func (s *WorkerServiceImpl) List(ctx context.Context, p worker.Principal) ([]worker.WorkerResponse, error) {
	if !worker.Allowed(p.Role, worker.CapabilityWorkerView) {
		return nil, worker.ErrCapabilityRequired
	}

	workers, err := s.WorkerRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, toWorkerResponse(w))
	}

	return responses, nil
}

// GetByUsername implements worker.WorkerService.
func (s *WorkerServiceImpl) GetByUsername(ctx context.Context, p worker.Principal, username string) (worker.WorkerResponse, error) {
	if !worker.Allowed(p.Role, worker.CapabilityWorkerView) {
		return worker.WorkerResponse{}, worker.ErrCapabilityRequired
	}

	found, err := s.WorkerRepository.GetByUsername(ctx, username)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return toWorkerResponse(found), nil
}

// Seed implements worker.WorkerService. It bootstraps an empty staff
// register with a first admin plus sample staff, so a fresh deployment
// is immediately usable.
func (s *WorkerServiceImpl) Seed(ctx context.Context) error {
	count, err := s.WorkerRepository.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count workers: %w", err)
	}
	if count > 0 {
		return nil
	}

	seeds := []struct {
		username string
		fullName string
		password string
		role     worker.Role
		rate     int64
		pin      string
	}{
		{"admin", "System Admin", "admin123", worker.RoleAdmin, 0, "0000"},
		{"anna", "Anna Andersson", "chef123", worker.RoleManager, 165, "1111"},
		{"erik", "Erik Ek", "server123", worker.RoleEmployee, 145, "2222"},
	}

	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		hashStr := string(hash)
		pin := seed.pin

		if _, err := s.WorkerRepository.Create(ctx, worker.Worker{
			Username:     seed.username,
			FullName:     seed.fullName,
			PasswordHash: &hashStr,
			Role:         seed.role,
			HourlyRate:   decimal.NewFromInt(seed.rate),
			PIN:          &pin,
		}); err != nil {
			return fmt.Errorf("failed to seed worker %s: %w", seed.username, err)
		}
	}

	return nil
}

func toWorkerResponse(w worker.Worker) worker.WorkerResponse {
	return worker.WorkerResponse{
		ID:         w.ID,
		Username:   w.Username,
		FullName:   w.FullName,
		Role:       string(w.Role),
		HourlyRate: w.HourlyRate,
		HasPIN:     w.PIN != nil && *w.PIN != "",
		CreatedAt:  w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  w.UpdatedAt.Format(time.RFC3339),
	}
}
