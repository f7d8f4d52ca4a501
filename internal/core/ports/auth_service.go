package ports

import (
	"context"

	"github.com/afterclass/ecommerce-api/internal/core/domain"
)

// RegisterUserInput carries all data needed to register a new identity.
type RegisterUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Age       int
	Password  string
	// Role defaults to the plain user role when empty.
	Role string
}

type AuthService interface {
	// Login verifies the credentials and returns a signed token on success.
	// Unknown email and wrong password both come back as
	// domain.ErrInvalidCredentials so the response cannot be used to
	// enumerate accounts.
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
}

// TokenVerifier checks a token's signature and expiry and returns the
// embedded claim set.
type TokenVerifier interface {
	Verify(token string) (domain.TokenClaims, error)
}
