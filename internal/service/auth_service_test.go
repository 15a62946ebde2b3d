package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hospital-staff-service/internal/auth"
	"github.com/spec-kit/hospital-staff-service/internal/domain"
	apperrors "github.com/spec-kit/hospital-staff-service/pkg/util"
)

func TestRegisterHospitalHashesPassword(t *testing.T) {
	env := newTestEnv(t)

	hospital := env.registerHospital(t, "admin@stmary.org")
	require.NotEmpty(t, hospital.ID)
	require.NotEmpty(t, hospital.PasswordHash)
	require.NotEqual(t, "adminpw", hospital.PasswordHash)
}

func TestRegisterHospitalMissingFields(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.RegisterHospital(context.Background(), "", "Springfield", 10, "admin@stmary.org", "pw")
	requireStatus(t, err, http.StatusBadRequest)
}

func TestRegisterHospitalDuplicateAdminEmailRejected(t *testing.T) {
	env := newTestEnv(t)

	env.registerHospital(t, "admin@stmary.org")
	_, err := env.auth.RegisterHospital(context.Background(), "Other", "Shelbyville", 5, "admin@stmary.org", "pw")
	requireStatus(t, err, http.StatusConflict)
}

func TestLoginInvalidUserType(t *testing.T) {
	env := newTestEnv(t)

	_, _, _, err := env.auth.Login(context.Background(), "superuser", "admin@stmary.org", "adminpw")
	requireStatus(t, err, http.StatusBadRequest)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	env := newTestEnv(t)
	env.registerHospital(t, "admin@stmary.org")

	_, _, _, unknownErr := env.auth.Login(context.Background(), domain.UserTypeAdmin, "nobody@stmary.org", "adminpw")
	_, _, _, wrongPwErr := env.auth.Login(context.Background(), domain.UserTypeAdmin, "admin@stmary.org", "wrong")

	require.Error(t, unknownErr)
	require.Error(t, wrongPwErr)

	unknown := apperrors.ToDomainError(unknownErr)
	wrongPw := apperrors.ToDomainError(wrongPwErr)
	require.Equal(t, http.StatusUnauthorized, unknown.HTTPStatus)
	require.Equal(t, unknown.Code, wrongPw.Code)
	require.Equal(t, unknown.Message, wrongPw.Message)
}

func TestLoginIssuesResolvableSession(t *testing.T) {
	env := newTestEnv(t)
	hospital := env.registerHospital(t, "admin@stmary.org")

	session, token, expiresAt, err := env.auth.Login(context.Background(), domain.UserTypeAdmin, "admin@stmary.org", "adminpw")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.False(t, expiresAt.IsZero())
	require.Equal(t, hospital.ID, session.HospitalID)

	resolved, err := env.auth.SessionManager().Resolve(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, *session, *resolved)
}

func TestLogoutEndsSession(t *testing.T) {
	env := newTestEnv(t)
	env.registerHospital(t, "admin@stmary.org")

	_, token, _, err := env.auth.Login(context.Background(), domain.UserTypeAdmin, "admin@stmary.org", "adminpw")
	require.NoError(t, err)

	require.NoError(t, env.auth.Logout(context.Background(), token))

	_, err = env.auth.SessionManager().Resolve(context.Background(), token)
	require.ErrorIs(t, err, auth.ErrNoSession)
}

func TestStaffLoginAfterProvisioning(t *testing.T) {
	env := newTestEnv(t)
	hospital := env.registerHospital(t, "admin@stmary.org")

	created, err := env.staff.AddStaff(context.Background(), env.adminSession(hospital), "radiologist", "Dana", "dana@stmary.org", "staffpw")
	require.NoError(t, err)

	session, token, _, err := env.auth.Login(context.Background(), domain.UserTypeStaff, "dana@stmary.org", "staffpw")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, created.ID, session.UserID)
	require.Equal(t, hospital.ID, session.HospitalID)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	hospital := env.registerHospital(t, "admin@stmary.org")

	_, err := env.staff.AddStaff(context.Background(), env.adminSession(hospital), "radiologist", "Dana", "dana@stmary.org", "staffpw")
	require.NoError(t, err)

	session, _, _, err := env.auth.Login(context.Background(), domain.UserTypeStaff, "dana@stmary.org", "staffpw")
	require.NoError(t, err)

	err = env.auth.ChangePassword(context.Background(), session, "wrong", "newpw")
	requireStatus(t, err, http.StatusUnauthorized)

	require.NoError(t, env.auth.ChangePassword(context.Background(), session, "staffpw", "newpw"))

	_, _, _, err = env.auth.Login(context.Background(), domain.UserTypeStaff, "dana@stmary.org", "staffpw")
	requireStatus(t, err, http.StatusUnauthorized)
	_, _, _, err = env.auth.Login(context.Background(), domain.UserTypeStaff, "dana@stmary.org", "newpw")
	require.NoError(t, err)
}
