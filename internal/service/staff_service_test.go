package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hospital-staff-service/internal/domain"
)

func TestAddStaffRequiresAdminSession(t *testing.T) {
	env := newTestEnv(t)
	hospital := env.registerHospital(t, "admin@stmary.org")

	staffSession := &domain.Session{
		UserID:     "staff-1",
		Email:      "dana@stmary.org",
		UserType:   domain.UserTypeStaff,
		HospitalID: hospital.ID,
	}

	_, err := env.staff.AddStaff(context.Background(), staffSession, "nurse", "Eve", "eve@stmary.org", "pw")
	requireStatus(t, err, http.StatusForbidden)
	require.Equal(t, 0, env.staffRepo.Count())
	require.Empty(t, env.mailer.attempts())
}

func TestAddStaffHospitalMissing(t *testing.T) {
	env := newTestEnv(t)
	hospital := env.registerHospital(t, "admin@stmary.org")
	session := env.adminSession(hospital)

	env.hospitals.Remove(hospital.ID)

	_, err := env.staff.AddStaff(context.Background(), session, "nurse", "Eve", "eve@stmary.org", "pw")
	requireStatus(t, err, http.StatusNotFound)
	require.Equal(t, 0, env.staffRepo.Count())
}

func TestAddStaffProvisionsAndNotifies(t *testing.T) {
	env := newTestEnv(t)
	hospital := env.registerHospital(t, "admin@stmary.org")

	created, err := env.staff.AddStaff(context.Background(), env.adminSession(hospital), "radiologist", "Dana", "dana@stmary.org", "staffpw")
	require.NoError(t, err)
	require.Equal(t, hospital.ID, created.HospitalID)
	require.NotEqual(t, "staffpw", created.PasswordHash)
	require.Equal(t, 1, env.staffRepo.Count())

	attempts := env.mailer.attempts()
	require.Len(t, attempts, 1)
	require.Equal(t, "dana@stmary.org", attempts[0].To)
	require.Equal(t, "Your Staff Account Details", attempts[0].Subject)
	require.Contains(t, attempts[0].Body, "Dana")
	require.Contains(t, attempts[0].Body, "staffpw")
	require.Contains(t, attempts[0].Body, hospital.Name)
	require.Equal(t, int64(1), env.metrics.NotificationCount("sent"))
}

// Provisioning success is independent of delivery: a dead relay still yields
// a created staff record, and the failure is visible on the metrics counter.
func TestAddStaffSucceedsWhenDeliveryFails(t *testing.T) {
	env := newTestEnv(t)
	env.mailer.fail = true
	hospital := env.registerHospital(t, "admin@stmary.org")

	created, err := env.staff.AddStaff(context.Background(), env.adminSession(hospital), "nurse", "Eve", "eve@stmary.org", "pw")
	require.NoError(t, err)
	require.Equal(t, 1, env.staffRepo.Count())
	require.NotNil(t, created)

	require.Len(t, env.mailer.attempts(), 1)
	require.Equal(t, int64(1), env.metrics.NotificationCount("failed"))
	require.Equal(t, int64(0), env.metrics.NotificationCount("sent"))
}

func TestAddStaffDuplicateEmailRejected(t *testing.T) {
	env := newTestEnv(t)
	hospital := env.registerHospital(t, "admin@stmary.org")
	session := env.adminSession(hospital)

	_, err := env.staff.AddStaff(context.Background(), session, "nurse", "Eve", "eve@stmary.org", "pw")
	require.NoError(t, err)

	_, err = env.staff.AddStaff(context.Background(), session, "nurse", "Eve Again", "eve@stmary.org", "pw")
	requireStatus(t, err, http.StatusConflict)
	require.Equal(t, 1, env.staffRepo.Count())
	require.Len(t, env.mailer.attempts(), 1)
}

func TestListStaffScopedToHospital(t *testing.T) {
	env := newTestEnv(t)
	first := env.registerHospital(t, "admin@stmary.org")
	second := env.registerHospital(t, "admin@shelbyville.org")

	_, err := env.staff.AddStaff(context.Background(), env.adminSession(first), "nurse", "Eve", "eve@stmary.org", "pw")
	require.NoError(t, err)
	_, err = env.staff.AddStaff(context.Background(), env.adminSession(first), "radiologist", "Dana", "dana@stmary.org", "pw")
	require.NoError(t, err)
	_, err = env.staff.AddStaff(context.Background(), env.adminSession(second), "nurse", "Mallory", "mallory@shelbyville.org", "pw")
	require.NoError(t, err)

	members, err := env.staff.ListStaff(context.Background(), env.adminSession(first))
	require.NoError(t, err)
	require.Len(t, members, 2)
	require.Equal(t, "Eve", members[0].Name)
	require.Equal(t, "Dana", members[1].Name)

	staffSession := &domain.Session{UserType: domain.UserTypeStaff, HospitalID: first.ID}
	_, err = env.staff.ListStaff(context.Background(), staffSession)
	requireStatus(t, err, http.StatusForbidden)
}

func TestRemoveStaffIdempotentFailure(t *testing.T) {
	env := newTestEnv(t)
	hospital := env.registerHospital(t, "admin@stmary.org")
	session := env.adminSession(hospital)

	err := env.staff.RemoveStaff(context.Background(), session, "missing-id")
	requireStatus(t, err, http.StatusNotFound)
	require.Equal(t, 0, env.staffRepo.Count())

	created, err := env.staff.AddStaff(context.Background(), session, "nurse", "Eve", "eve@stmary.org", "pw")
	require.NoError(t, err)

	require.NoError(t, env.staff.RemoveStaff(context.Background(), session, created.ID))
	require.Equal(t, 0, env.staffRepo.Count())

	err = env.staff.RemoveStaff(context.Background(), session, created.ID)
	requireStatus(t, err, http.StatusNotFound)
}

// A staff record of another hospital reads as not-found, and stays stored.
func TestRemoveStaffEnforcesOwnership(t *testing.T) {
	env := newTestEnv(t)
	first := env.registerHospital(t, "admin@stmary.org")
	second := env.registerHospital(t, "admin@shelbyville.org")

	created, err := env.staff.AddStaff(context.Background(), env.adminSession(first), "nurse", "Eve", "eve@stmary.org", "pw")
	require.NoError(t, err)

	err = env.staff.RemoveStaff(context.Background(), env.adminSession(second), created.ID)
	requireStatus(t, err, http.StatusNotFound)
	require.Equal(t, 1, env.staffRepo.Count())
}
