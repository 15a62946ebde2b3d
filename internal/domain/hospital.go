package domain

import "time"

// Hospital is the tenant entity owning staff accounts. The registering
// administrator authenticates against AdminEmail; the hospital record itself
// carries the admin credentials.
type Hospital struct {
	ID           string
	Name         string
	Location     string
	StaffSize    int
	AdminEmail   string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
