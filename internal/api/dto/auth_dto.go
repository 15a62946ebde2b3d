package dto

import "time"

// LoginRequest payload for both admin and staff login.
type LoginRequest struct {
	UserType string `json:"userType"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued session token and its expiry.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
