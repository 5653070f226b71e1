package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	Roles []string `json:"roles"`
	Type  string   `json:"type"`
	jwt.RegisteredClaims
}

// TokenService validates access tokens issued by the identity provider.
// GenerateAccessToken exists for local tooling and tests.
type TokenService interface {
	GenerateAccessToken(subject string, roles []string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}
