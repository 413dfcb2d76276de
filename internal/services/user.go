package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/gymtrack/apiserver/types"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (types.User, error)
	GetByUserID(ctx context.Context, userID string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
}

// MigrationRepository adopts workout data that predates the first account.
type MigrationRepository interface {
	AdoptOrphaned(ctx context.Context, ownerID uuid.UUID) error
}

// UserService encapsulates account use-cases.
type UserService struct {
	repo       UserRepository
	migrations MigrationRepository
}

func NewUserService(repo UserRepository, migrations MigrationRepository) *UserService {
	return &UserService{repo: repo, migrations: migrations}
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (types.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByUserID(ctx context.Context, userID string) (types.User, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// Create persists the new account and then adopts any ownerless workout
// data into it. Adoption runs on every registration; it is a no-op once
// nothing ownerless remains.
func (s *UserService) Create(ctx context.Context, user types.User) (types.User, error) {
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return types.User{}, err
	}
	if err := s.migrations.AdoptOrphaned(ctx, created.ID); err != nil {
		return types.User{}, err
	}
	return created, nil
}
