package repository

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/hospital-staff-service/internal/domain"
)

// MemoryHospitalRepo is an in-memory HospitalRepository used by tests.
type MemoryHospitalRepo struct {
	mu        sync.RWMutex
	hospitals map[string]domain.Hospital
}

// NewMemoryHospitalRepo builds an empty repo.
func NewMemoryHospitalRepo() *MemoryHospitalRepo {
	return &MemoryHospitalRepo{hospitals: map[string]domain.Hospital{}}
}

func (r *MemoryHospitalRepo) Create(_ context.Context, hospital *domain.Hospital) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range r.hospitals {
		if h.AdminEmail == hospital.AdminEmail {
			return ErrDuplicateEmail
		}
	}

	now := time.Now()
	hospital.CreatedAt = now
	hospital.UpdatedAt = now
	r.hospitals[hospital.ID] = *hospital
	return nil
}

func (r *MemoryHospitalRepo) GetByID(_ context.Context, id string) (*domain.Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.hospitals[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &h, nil
}

func (r *MemoryHospitalRepo) GetByAdminEmail(_ context.Context, email string) (*domain.Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.hospitals {
		if h.AdminEmail == email {
			copied := h
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// Remove deletes a hospital record directly. Tests use it to simulate a
// hospital vanishing underneath an active session.
func (r *MemoryHospitalRepo) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.hospitals, id)
}
