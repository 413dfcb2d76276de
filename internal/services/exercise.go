package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/gymtrack/apiserver/types"
)

// ExerciseRepository defines read operations for the exercise catalog.
type ExerciseRepository interface {
	List(ctx context.Context) ([]types.Exercise, error)
	Get(ctx context.Context, id uuid.UUID) (types.Exercise, error)
	ListByCategory(ctx context.Context, category types.Category) ([]types.Exercise, error)
}

// ExerciseService encapsulates exercise catalog use-cases.
type ExerciseService struct {
	repo ExerciseRepository
}

func NewExerciseService(repo ExerciseRepository) *ExerciseService {
	return &ExerciseService{repo: repo}
}

func (s *ExerciseService) List(ctx context.Context) ([]types.Exercise, error) {
	return s.repo.List(ctx)
}

func (s *ExerciseService) Get(ctx context.Context, id uuid.UUID) (types.Exercise, error) {
	return s.repo.Get(ctx, id)
}

func (s *ExerciseService) ListByCategory(ctx context.Context, category types.Category) ([]types.Exercise, error) {
	return s.repo.ListByCategory(ctx, category)
}
