package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims is the bearer token payload issued by the identity service.
// This service only reads it to learn which login is acting; it does not
// issue or refresh tokens.
type UserClaims struct {
	jwt.RegisteredClaims
	Login string `json:"login"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
