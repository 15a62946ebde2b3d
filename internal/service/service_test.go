package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/hospital-staff-service/internal/auth"
	"github.com/spec-kit/hospital-staff-service/internal/domain"
	"github.com/spec-kit/hospital-staff-service/internal/events"
	"github.com/spec-kit/hospital-staff-service/internal/mailer"
	"github.com/spec-kit/hospital-staff-service/internal/observability"
	"github.com/spec-kit/hospital-staff-service/internal/repository"
	apperrors "github.com/spec-kit/hospital-staff-service/pkg/util"
)

// mockMailer records delivery attempts and optionally fails them.
type mockMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
	fail bool
}

func (m *mockMailer) Send(_ context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	if m.fail {
		return errors.New("relay unreachable")
	}
	return nil
}

func (m *mockMailer) attempts() []mailer.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mailer.Message{}, m.sent...)
}

type testEnv struct {
	auth      *AuthService
	staff     *StaffService
	hospitals *repository.MemoryHospitalRepo
	staffRepo *repository.MemoryStaffRepo
	mailer    *mockMailer
	metrics   *observability.Metrics
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	hospitals := repository.NewMemoryHospitalRepo()
	staffRepo := repository.NewMemoryStaffRepo()
	sessions := auth.NewSessionManager(auth.NewMemorySessionStore(), time.Hour)
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()
	mock := &mockMailer{}

	authService := NewAuthService(AuthDependencies{
		HospitalRepo: hospitals,
		StaffRepo:    staffRepo,
		Sessions:     sessions,
		BcryptCost:   bcrypt.MinCost,
	})
	staffService := NewStaffService(StaffDependencies{
		StaffRepo:    staffRepo,
		HospitalRepo: hospitals,
		Dispatcher:   dispatcher,
		Logger:       zap.NewNop(),
		BcryptCost:   bcrypt.MinCost,
	})
	NewNotificationService(dispatcher, mock, zap.NewNop(), metrics).RegisterHandlers()

	return &testEnv{
		auth:      authService,
		staff:     staffService,
		hospitals: hospitals,
		staffRepo: staffRepo,
		mailer:    mock,
		metrics:   metrics,
	}
}

func (e *testEnv) registerHospital(t *testing.T, adminEmail string) *domain.Hospital {
	t.Helper()
	hospital, err := e.auth.RegisterHospital(context.Background(), "St Mary", "Springfield", 40, adminEmail, "adminpw")
	require.NoError(t, err)
	return hospital
}

func (e *testEnv) adminSession(hospital *domain.Hospital) *domain.Session {
	return &domain.Session{
		UserID:     hospital.ID,
		Email:      hospital.AdminEmail,
		UserType:   domain.UserTypeAdmin,
		HospitalID: hospital.ID,
	}
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, status, apperrors.ToDomainError(err).HTTPStatus)
}
