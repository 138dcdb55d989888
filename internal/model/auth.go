package model

import "github.com/golang-jwt/jwt/v5"

// UserClaims are JWT claims for authenticated users
type UserClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// RegisterRequest is the request body for account creation
type RegisterRequest struct {
	Email                 string     `json:"email"`
	Password              string     `json:"password"`
	Name                  string     `json:"name"`
	Category              Category   `json:"category"`
	State                 string     `json:"state"`
	City                  string     `json:"city"`
	AgeRange              string     `json:"ageRange"`
	Industry              string     `json:"industry,omitempty"`
	Interests             []string   `json:"sustainabilityInterests,omitempty"`
	Language              Language   `json:"language,omitempty"`
	CertificateVisibility Visibility `json:"certificateVisibility,omitempty"`
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned after successful register/login
type AuthResponse struct {
	Token   string       `json:"token"`
	Profile *UserProfile `json:"profile"`
}
