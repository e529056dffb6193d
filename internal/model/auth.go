package model

import "github.com/golang-jwt/jwt/v5"

// UserClaims are JWT claims for authenticated user sessions
type UserClaims struct {
	UserID   string `json:"userId"`
	Language string `json:"language,omitempty"`
	jwt.RegisteredClaims
}
