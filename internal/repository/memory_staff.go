package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/spec-kit/hospital-staff-service/internal/domain"
)

// MemoryStaffRepo is an in-memory StaffRepository used by tests.
type MemoryStaffRepo struct {
	mu    sync.RWMutex
	staff map[string]domain.StaffMember
	seq   int
}

// NewMemoryStaffRepo builds an empty repo.
func NewMemoryStaffRepo() *MemoryStaffRepo {
	return &MemoryStaffRepo{staff: map[string]domain.StaffMember{}}
}

func (r *MemoryStaffRepo) Create(_ context.Context, staff *domain.StaffMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.staff {
		if s.Email == staff.Email {
			return ErrDuplicateEmail
		}
	}

	// Monotonic timestamps keep ListByHospital in insertion order even when
	// two inserts land on the same clock tick.
	r.seq++
	now := time.Now().Add(time.Duration(r.seq) * time.Microsecond)
	staff.CreatedAt = now
	staff.UpdatedAt = now
	r.staff[staff.ID] = *staff
	return nil
}

func (r *MemoryStaffRepo) Update(_ context.Context, staff *domain.StaffMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.staff[staff.ID]
	if !ok {
		return ErrNotFound
	}
	staff.CreatedAt = existing.CreatedAt
	staff.UpdatedAt = time.Now()
	r.staff[staff.ID] = *staff
	return nil
}

func (r *MemoryStaffRepo) GetByID(_ context.Context, id string) (*domain.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.staff[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *MemoryStaffRepo) GetByEmail(_ context.Context, email string) (*domain.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.staff {
		if s.Email == email {
			copied := s
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryStaffRepo) ListByHospital(_ context.Context, hospitalID string) ([]domain.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var members []domain.StaffMember
	for _, s := range r.staff {
		if s.HospitalID == hospitalID {
			members = append(members, s)
		}
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].CreatedAt.Before(members[j].CreatedAt)
	})
	return members, nil
}

func (r *MemoryStaffRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.staff[id]; !ok {
		return false, nil
	}
	delete(r.staff, id)
	return true, nil
}

// Count returns the number of stored staff records.
func (r *MemoryStaffRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.staff)
}
