package dto

import "github.com/spec-kit/hospital-staff-service/internal/domain"

// AddStaffRequest payload for provisioning a staff member.
type AddStaffRequest struct {
	StaffName string `json:"staffName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// PasswordChangeRequest payload for authenticated password changes.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// StaffResponse is a staff record as returned to clients, hash stripped.
type StaffResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	HospitalID string `json:"hospitalId"`
}

// NewStaffResponse maps a domain staff member to its wire form.
func NewStaffResponse(s *domain.StaffMember) StaffResponse {
	return StaffResponse{
		ID:         s.ID,
		Name:       s.Name,
		Email:      s.Email,
		Role:       s.Role,
		HospitalID: s.HospitalID,
	}
}

// NewStaffListResponse maps a slice of staff members.
func NewStaffListResponse(members []domain.StaffMember) []StaffResponse {
	out := make([]StaffResponse, 0, len(members))
	for i := range members {
		out = append(out, NewStaffResponse(&members[i]))
	}
	return out
}
