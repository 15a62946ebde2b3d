package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-staff-service/internal/domain"
	apperrors "github.com/spec-kit/hospital-staff-service/pkg/util"
)

// RequireAdmin ensures the caller holds an admin session.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := SessionFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("no active session")
		}
		if !session.IsAdmin() {
			return apperrors.NewForbidden("admin session required")
		}
		return c.Next()
	}
}

// RequireStaff ensures the caller holds a staff session.
func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := SessionFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("no active session")
		}
		if session.UserType != domain.UserTypeStaff {
			return apperrors.NewForbidden("staff session required")
		}
		return c.Next()
	}
}
