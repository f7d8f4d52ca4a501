package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/afterclass/ecommerce-api/internal/core/domain"
	"github.com/afterclass/ecommerce-api/internal/core/ports"
)

// AuthService implements registration and the email+password login strategy.
type AuthService struct {
	users  ports.UserRepository
	hasher *PasswordHasher
	issuer *TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher *PasswordHasher, issuer *TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, issuer: issuer, logger: logger}
}

// Login looks the identity up by email, verifies the password and issues a
// token. The two rejection reasons are logged at debug level only; callers
// see the same domain.ErrInvalidCredentials for both.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Debug().Str("email", email).Msg("login rejected: unknown email")
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Debug().Str("email", email).Msg("login rejected: wrong password")
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(domain.TokenClaims{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

// Register hashes the password and creates the identity. A duplicate email
// surfaces as the store's unique-index violation, wrapped by the caller.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}

	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Age:          input.Age,
		PasswordHash: hash,
		Role:         role,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Str("role", created.Role).Msg("user registered")
	return created, nil
}
