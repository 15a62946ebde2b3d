package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-staff-service/internal/api/dto"
	"github.com/spec-kit/hospital-staff-service/internal/auth"
	"github.com/spec-kit/hospital-staff-service/internal/service"
	apperrors "github.com/spec-kit/hospital-staff-service/pkg/util"
)

// HospitalHandler exposes hospital registration and the admin profile.
type HospitalHandler struct {
	auth *service.AuthService
}

// NewHospitalHandler constructs handler.
func NewHospitalHandler(authService *service.AuthService) *HospitalHandler {
	return &HospitalHandler{auth: authService}
}

// Register handles POST /api/hospital/register.
func (h *HospitalHandler) Register(c *fiber.Ctx) error {
	var req dto.HospitalRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	hospital, err := h.auth.RegisterHospital(c.UserContext(), req.HospitalName, req.Location, req.StaffSize, req.AdminEmail, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewHospitalResponse(hospital),
	})
}

// Profile handles GET /api/admin/profile.
func (h *HospitalHandler) Profile(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no active session")
	}

	hospital, err := h.auth.Profile(c.UserContext(), session)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.NewHospitalResponse(hospital),
	})
}
