package domain

// UserType differentiates admin vs staff sessions.
type UserType string

const (
	UserTypeAdmin UserType = "admin"
	UserTypeStaff UserType = "staff"
)

// Valid reports whether the user type is one of the recognized values.
func (t UserType) Valid() bool {
	return t == UserTypeAdmin || t == UserTypeStaff
}

// Session is the identity bound to one opaque token. Every privileged call
// resolves its caller through a Session; there is no ambient "current user"
// state anywhere else.
//
// For admin sessions UserID and HospitalID are both the hospital id (the
// hospital record carries the admin credentials). For staff sessions UserID
// is the staff id and HospitalID the employing hospital.
type Session struct {
	UserID     string   `json:"user_id"`
	Email      string   `json:"email"`
	UserType   UserType `json:"user_type"`
	HospitalID string   `json:"hospital_id"`
}

// IsAdmin reports whether the session belongs to a hospital admin.
func (s Session) IsAdmin() bool {
	return s.UserType == UserTypeAdmin
}
