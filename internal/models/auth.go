package models

import "github.com/golang-jwt/jwt/v5"

// SignupRequest is the teacher registration payload. The frontend sends the
// id as a string; Numeric accepts either encoding and the service validates
// it parses before anything touches the store.
type SignupRequest struct {
	ID         Numeric `json:"id" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Email      string  `json:"email" validate:"required"`
	Password   string  `json:"password" validate:"required"`
	Department string  `json:"department" validate:"required"`
}

// VerifyRequest flips an account's verified flag.
type VerifyRequest struct {
	Email string `json:"email" validate:"required"`
}

// LoginRequest authenticates a teacher.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse wraps the profile together with the issued access token.
type LoginResponse struct {
	User  *TeacherProfile `json:"user"`
	Token string          `json:"token"`
}

// JWTClaims carries the authenticated teacher's identity.
type JWTClaims struct {
	TeacherID  int    `json:"teacher_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Department string `json:"department"`
	jwt.RegisteredClaims
}
