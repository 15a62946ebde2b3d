package domain

import "time"

// StaffMember models an account provisioned by a hospital admin. Each staff
// member belongs to exactly one hospital.
type StaffMember struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	HospitalID   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
