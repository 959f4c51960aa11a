package auth

import (
	"github.com/golang-jwt/jwt/v4"
)

// Admin is a catalog administrator.
type Admin struct {
	Username     string
	PasswordHash string
	Role         string
}

// JWTClaims represents JWT token claims
type JWTClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Type     string `json:"type"` // "access" or "refresh"
	jwt.RegisteredClaims
}
