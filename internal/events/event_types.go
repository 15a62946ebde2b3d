package events

import (
	"time"

	"github.com/spec-kit/hospital-staff-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventHospitalRegistered EventType = "hospital_registered"
	EventStaffProvisioned   EventType = "staff_provisioned"
	EventStaffRemoved       EventType = "staff_removed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	Actor     domain.Session `json:"actor"`
	Timestamp time.Time      `json:"timestamp"`
	Payload   interface{}    `json:"payload"`
}

// HospitalRegisteredPayload payload.
type HospitalRegisteredPayload struct {
	HospitalID string `json:"hospital_id"`
	Name       string `json:"name"`
}

// StaffProvisionedPayload carries everything the credential notification
// needs. Password is the one-time plaintext handed to the new staff member;
// it exists only in this in-process payload and is never persisted or logged.
type StaffProvisionedPayload struct {
	StaffID      string `json:"staff_id"`
	StaffName    string `json:"staff_name"`
	StaffEmail   string `json:"staff_email"`
	Password     string `json:"-"`
	HospitalID   string `json:"hospital_id"`
	HospitalName string `json:"hospital_name"`
}

// StaffRemovedPayload payload.
type StaffRemovedPayload struct {
	StaffID    string `json:"staff_id"`
	HospitalID string `json:"hospital_id"`
}
