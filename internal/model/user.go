package model

import "time"

// User is the durable per-user record. AptitudeProfile is empty until the
// assessment flow persists a synthesized (or fallback) profile; surrounding
// navigation gates on its presence.
type User struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	Name            string    `json:"name" bson:"name"`
	Email           string    `json:"email" bson:"email"`
	PasswordHash    string    `json:"-" bson:"passwordHash"`
	Language        string    `json:"language" bson:"language"`
	AptitudeProfile string    `json:"aptitudeProfile,omitempty" bson:"aptitudeProfile,omitempty"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updatedAt"`
}

// HasProfile reports whether an assessment run has already persisted a
// profile for this user.
func (u *User) HasProfile() bool {
	return u.AptitudeProfile != ""
}

// SignupRequest is the body for POST /v1/auth/signup
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Language string `json:"language"`
}

// LoginRequest is the body for POST /v1/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token and profile gate for the client
type LoginResponse struct {
	Token      string `json:"token"`
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	HasProfile bool   `json:"hasProfile"`
}
