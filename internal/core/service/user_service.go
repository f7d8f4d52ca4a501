package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/afterclass/ecommerce-api/internal/core/domain"
	"github.com/afterclass/ecommerce-api/internal/core/ports"
)

// UserService implements the user CRUD operations. Listings are served
// through a short-lived cache that is invalidated on every mutation; cache
// failures never fail the request.
type UserService struct {
	repo   ports.UserRepository
	hasher *PasswordHasher
	cache  ports.UserCache
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher *PasswordHasher, cache ports.UserCache, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, cache: cache, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	if cached, err := s.cache.Get(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("user list cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, users); err != nil {
		s.logger.Warn().Err(err).Msg("user list cache write failed")
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, input ports.UpsertUserInput) (*domain.User, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Age:          input.Age,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return created, nil
}

// Update replaces the profile fields and rehashes the submitted password.
// The stored role is left untouched.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpsertUserInput) (*domain.User, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Age:          input.Age,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *UserService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("user list cache invalidation failed")
	}
}
