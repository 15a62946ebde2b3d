package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/hospital-staff-service/internal/auth"
	"github.com/spec-kit/hospital-staff-service/internal/domain"
	"github.com/spec-kit/hospital-staff-service/internal/events"
	"github.com/spec-kit/hospital-staff-service/internal/repository"
	apperrors "github.com/spec-kit/hospital-staff-service/pkg/util"
)

// StaffService implements the provisioning workflow: staff accounts are
// created under the acting admin's hospital, listed, and removed. Every
// operation takes the caller's session explicitly; authorization is checked
// inside the same call that acts.
type StaffService struct {
	staff      repository.StaffRepository
	hospitals  repository.HospitalRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	bcryptCost int
}

// StaffDependencies bundles requirements for the staff service.
type StaffDependencies struct {
	StaffRepo    repository.StaffRepository
	HospitalRepo repository.HospitalRepository
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
	BcryptCost   int
}

// NewStaffService builds the service.
func NewStaffService(deps StaffDependencies) *StaffService {
	return &StaffService{
		staff:      deps.StaffRepo,
		hospitals:  deps.HospitalRepo,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		bcryptCost: deps.BcryptCost,
	}
}

// AddStaff provisions a staff account scoped to the admin's hospital and
// publishes a provisioning event carrying the one-time plaintext password for
// the credential notification. Provisioning success is independent of
// notification delivery.
func (s *StaffService) AddStaff(ctx context.Context, session *domain.Session, role, name, email, password string) (*domain.StaffMember, error) {
	if !session.IsAdmin() {
		return nil, apperrors.NewForbidden("admin session required")
	}
	if name == "" || email == "" || password == "" || role == "" {
		return nil, apperrors.NewValidationError("staffName, email, password and role are required", nil)
	}

	hospital, err := s.hospitals.GetByID(ctx, session.HospitalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("hospital")
		}
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	staff := &domain.StaffMember{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		HospitalID:   hospital.ID,
	}
	if err := s.staff.Create(ctx, staff); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewConflict("staff email already registered", nil)
		}
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventStaffProvisioned,
		Actor:     *session,
		Timestamp: time.Now(),
		Payload: events.StaffProvisionedPayload{
			StaffID:      staff.ID,
			StaffName:    staff.Name,
			StaffEmail:   staff.Email,
			Password:     password,
			HospitalID:   hospital.ID,
			HospitalName: hospital.Name,
		},
	})

	return staff, nil
}

// ListStaff returns the staff of the admin's hospital in insertion order.
func (s *StaffService) ListStaff(ctx context.Context, session *domain.Session) ([]domain.StaffMember, error) {
	if !session.IsAdmin() {
		return nil, apperrors.NewForbidden("admin session required")
	}
	return s.staff.ListByHospital(ctx, session.HospitalID)
}

// RemoveStaff deletes a staff member by id. The record must belong to the
// caller's hospital; a foreign record reports not-found so the call leaks
// nothing about other hospitals. Deleting an absent id is not-found too, and
// stays not-found on repeat.
func (s *StaffService) RemoveStaff(ctx context.Context, session *domain.Session, staffID string) error {
	if !session.IsAdmin() {
		return apperrors.NewForbidden("admin session required")
	}

	staff, err := s.staff.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("staff member")
		}
		return err
	}
	if staff.HospitalID != session.HospitalID {
		return apperrors.NewNotFound("staff member")
	}

	found, err := s.staff.Delete(ctx, staffID)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFound("staff member")
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventStaffRemoved,
		Actor:     *session,
		Timestamp: time.Now(),
		Payload: events.StaffRemovedPayload{
			StaffID:    staffID,
			HospitalID: session.HospitalID,
		},
	})

	return nil
}
