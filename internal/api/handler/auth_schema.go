package handler

import "github.com/afterclass/ecommerce-api/internal/core/domain"

// errorResponse is the standard error envelope returned on most 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
}

// registerRequest uses a pointer for age so a missing age is itself a
// violation rather than silently defaulting to zero.
type registerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Age       *int   `json:"age"        validate:"required,gte=0"`
	Password  string `json:"password"   validate:"required,min=5"`
	Role      string `json:"role"       validate:"omitempty,oneof=user admin"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type currentResponse struct {
	Message string             `json:"message"`
	User    domain.TokenClaims `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}
