package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-staff-service/internal/api/dto"
	"github.com/spec-kit/hospital-staff-service/internal/auth"
	"github.com/spec-kit/hospital-staff-service/internal/service"
	apperrors "github.com/spec-kit/hospital-staff-service/pkg/util"
)

// StaffHandler exposes staff provisioning, listing and removal plus the
// staff-side password change.
type StaffHandler struct {
	staff *service.StaffService
	auth  *service.AuthService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staffService *service.StaffService, authService *service.AuthService) *StaffHandler {
	return &StaffHandler{staff: staffService, auth: authService}
}

// Add handles POST /api/admin/add-staff.
func (h *StaffHandler) Add(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no active session")
	}

	var req dto.AddStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	staff, err := h.staff.AddStaff(c.UserContext(), session, req.Role, req.StaffName, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewStaffResponse(staff),
	})
}

// List handles GET /api/admin/staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no active session")
	}

	members, err := h.staff.ListStaff(c.UserContext(), session)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.NewStaffListResponse(members),
	})
}

// Remove handles DELETE /api/admin/delete-staff/:id.
func (h *StaffHandler) Remove(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no active session")
	}

	staffID := c.Params("id")
	if staffID == "" {
		return apperrors.NewValidationError("staff id required", nil)
	}

	if err := h.staff.RemoveStaff(c.UserContext(), session, staffID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{"message": "Staff deleted successfully"},
	})
}

// ChangePassword handles POST /api/staff/change-password.
func (h *StaffHandler) ChangePassword(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no active session")
	}

	var req dto.PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.auth.ChangePassword(c.UserContext(), session, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{"message": "Password changed successfully"},
	})
}
