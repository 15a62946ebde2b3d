package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/hospital-staff-service/internal/auth"
	"github.com/spec-kit/hospital-staff-service/internal/domain"
	"github.com/spec-kit/hospital-staff-service/internal/repository"
	apperrors "github.com/spec-kit/hospital-staff-service/pkg/util"
)

// AuthService coordinates registration, login and session lifecycle.
type AuthService struct {
	hospitals  repository.HospitalRepository
	staff      repository.StaffRepository
	sessions   *auth.SessionManager
	bcryptCost int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	HospitalRepo repository.HospitalRepository
	StaffRepo    repository.StaffRepository
	Sessions     *auth.SessionManager
	BcryptCost   int
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	return &AuthService{
		hospitals:  deps.HospitalRepo,
		staff:      deps.StaffRepo,
		sessions:   deps.Sessions,
		bcryptCost: deps.BcryptCost,
	}
}

// RegisterHospital creates a new hospital with its admin credentials. The
// plaintext password is hashed before it touches the store.
func (s *AuthService) RegisterHospital(ctx context.Context, name, location string, staffSize int, adminEmail, password string) (*domain.Hospital, error) {
	if name == "" || location == "" || adminEmail == "" || password == "" {
		return nil, apperrors.NewValidationError("hospitalName, location, adminEmail and password are required", nil)
	}

	if _, err := s.hospitals.GetByAdminEmail(ctx, adminEmail); err == nil {
		return nil, apperrors.NewConflict("adminEmail already registered", nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	hospital := &domain.Hospital{
		ID:           uuid.NewString(),
		Name:         name,
		Location:     location,
		StaffSize:    staffSize,
		AdminEmail:   adminEmail,
		PasswordHash: hash,
	}
	if err := s.hospitals.Create(ctx, hospital); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewConflict("adminEmail already registered", nil)
		}
		return nil, err
	}
	return hospital, nil
}

// Login authenticates either a hospital admin or a staff member and issues a
// fresh session token. Unknown email and wrong password are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, userType domain.UserType, email, password string) (*domain.Session, string, time.Time, error) {
	if !userType.Valid() {
		return nil, "", time.Time{}, apperrors.NewValidationError("invalid user type", nil)
	}
	if email == "" || password == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("email and password required", nil)
	}

	var session domain.Session
	switch userType {
	case domain.UserTypeAdmin:
		hospital, err := s.hospitals.GetByAdminEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
			}
			return nil, "", time.Time{}, err
		}
		if err := auth.ComparePassword(hospital.PasswordHash, password); err != nil {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		session = domain.Session{
			UserID:     hospital.ID,
			Email:      email,
			UserType:   domain.UserTypeAdmin,
			HospitalID: hospital.ID,
		}
	case domain.UserTypeStaff:
		staff, err := s.staff.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
			}
			return nil, "", time.Time{}, err
		}
		if err := auth.ComparePassword(staff.PasswordHash, password); err != nil {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		session = domain.Session{
			UserID:     staff.ID,
			Email:      email,
			UserType:   domain.UserTypeStaff,
			HospitalID: staff.HospitalID,
		}
	}

	token, expiresAt, err := s.sessions.Create(ctx, session)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return &session, token, expiresAt, nil
}

// Logout destroys the presented token's session. Unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// Profile returns the hospital backing an admin session.
func (s *AuthService) Profile(ctx context.Context, session *domain.Session) (*domain.Hospital, error) {
	hospital, err := s.hospitals.GetByID(ctx, session.HospitalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("hospital")
		}
		return nil, err
	}
	return hospital, nil
}

// ChangePassword verifies the staff member's current password before storing
// a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, session *domain.Session, currentPassword, newPassword string) error {
	if newPassword == "" {
		return apperrors.NewValidationError("new password required", nil)
	}

	staff, err := s.staff.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("staff member")
		}
		return err
	}
	if err := auth.ComparePassword(staff.PasswordHash, currentPassword); err != nil {
		return apperrors.NewInvalidCredentials()
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	staff.PasswordHash = hash
	return s.staff.Update(ctx, staff)
}

// SessionManager exposes the underlying manager for middleware usage.
func (s *AuthService) SessionManager() *auth.SessionManager {
	return s.sessions
}
