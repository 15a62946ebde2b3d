package dto

import "github.com/spec-kit/hospital-staff-service/internal/domain"

// HospitalRegisterRequest payload for hospital registration.
type HospitalRegisterRequest struct {
	HospitalName string `json:"hospitalName"`
	Location     string `json:"location"`
	StaffSize    int    `json:"staffSize"`
	AdminEmail   string `json:"adminEmail"`
	Password     string `json:"password"`
}

// HospitalResponse is a hospital record as returned to clients. There is
// deliberately no hash field here; the domain model never reaches the wire
// directly.
type HospitalResponse struct {
	HospitalID string `json:"hospitalId"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	StaffSize  int    `json:"staffSize"`
	AdminEmail string `json:"adminEmail"`
}

// NewHospitalResponse maps a domain hospital to its wire form.
func NewHospitalResponse(h *domain.Hospital) HospitalResponse {
	return HospitalResponse{
		HospitalID: h.ID,
		Name:       h.Name,
		Location:   h.Location,
		StaffSize:  h.StaffSize,
		AdminEmail: h.AdminEmail,
	}
}
