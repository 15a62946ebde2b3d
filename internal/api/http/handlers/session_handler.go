package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-staff-service/internal/api/dto"
	"github.com/spec-kit/hospital-staff-service/internal/auth"
	"github.com/spec-kit/hospital-staff-service/internal/domain"
	"github.com/spec-kit/hospital-staff-service/internal/service"
	apperrors "github.com/spec-kit/hospital-staff-service/pkg/util"
)

// SessionHandler exposes login and logout.
type SessionHandler struct {
	auth *service.AuthService
}

// NewSessionHandler constructs handler.
func NewSessionHandler(authService *service.AuthService) *SessionHandler {
	return &SessionHandler{auth: authService}
}

// Login handles POST /api/login.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	session, token, expiresAt, err := h.auth.Login(c.UserContext(), domain.UserType(req.UserType), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"message": string(session.UserType) + " login successful",
			"user": fiber.Map{
				"id":        session.UserID,
				"email":     session.Email,
				"user_type": session.UserType,
			},
			"auth": dto.AuthResponse{Token: token, ExpiresAt: expiresAt},
		},
	})
}

// Logout handles POST /api/logout. Only the presented token's session is
// destroyed; other clients stay logged in. Logging out without a token, or
// with a stale one, still succeeds.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	token := auth.BearerToken(c)
	if err := h.auth.Logout(c.UserContext(), token); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"message": "Logged out successfully"},
	})
}
