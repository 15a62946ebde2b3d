package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hospital-staff-service/internal/repository"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewForbidden("nope")
	mapped := ToDomainError(original)
	require.Equal(t, "FORBIDDEN", mapped.Code)
	require.Equal(t, http.StatusForbidden, mapped.HTTPStatus)
}

func TestToDomainErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("loading profile: %w", NewNotFound("hospital"))
	mapped := ToDomainError(wrapped)
	require.Equal(t, "NOT_FOUND", mapped.Code)
	require.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorRepositoryNotFound(t *testing.T) {
	mapped := ToDomainError(repository.ErrNotFound)
	require.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorUnexpectedBecomesInternal(t *testing.T) {
	cause := errors.New("connection refused")
	mapped := ToDomainError(cause)
	require.Equal(t, "INTERNAL_ERROR", mapped.Code)
	require.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	// raw cause is preserved for server-side logging, not for the message
	require.ErrorIs(t, mapped, cause)
	require.Equal(t, "internal server error", mapped.Message)
}

func TestInvalidCredentialsShape(t *testing.T) {
	mapped := ToDomainError(NewInvalidCredentials())
	require.Equal(t, http.StatusUnauthorized, mapped.HTTPStatus)
	require.Equal(t, "invalid credentials", mapped.Message)
}
