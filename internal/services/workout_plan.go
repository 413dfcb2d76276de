package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/gymtrack/apiserver/types"
)

// WorkoutPlanRepository defines persistence operations for workout plans.
// Every operation is scoped to the owning user.
type WorkoutPlanRepository interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]types.WorkoutPlan, error)
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (types.WorkoutPlan, error)
	GetActiveByDay(ctx context.Context, day types.DayOfWeek, ownerID uuid.UUID) (types.WorkoutPlan, error)
	Create(ctx context.Context, plan types.WorkoutPlan) (types.WorkoutPlan, error)
	Update(ctx context.Context, plan types.WorkoutPlan, replaceExercises bool) (types.WorkoutPlan, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

// WorkoutPlanService encapsulates workout plan use-cases.
type WorkoutPlanService struct {
	repo WorkoutPlanRepository
}

func NewWorkoutPlanService(repo WorkoutPlanRepository) *WorkoutPlanService {
	return &WorkoutPlanService{repo: repo}
}

func (s *WorkoutPlanService) List(ctx context.Context, ownerID uuid.UUID) ([]types.WorkoutPlan, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *WorkoutPlanService) Get(ctx context.Context, id, ownerID uuid.UUID) (types.WorkoutPlan, error) {
	return s.repo.GetByID(ctx, id, ownerID)
}

func (s *WorkoutPlanService) GetActiveByDay(ctx context.Context, day types.DayOfWeek, ownerID uuid.UUID) (types.WorkoutPlan, error) {
	return s.repo.GetActiveByDay(ctx, day, ownerID)
}

// Create stamps the plan's owner from the authenticated caller. A client
// supplied owner field never reaches this layer.
func (s *WorkoutPlanService) Create(ctx context.Context, plan types.WorkoutPlan, ownerID uuid.UUID) (types.WorkoutPlan, error) {
	plan.UserID = &ownerID
	return s.repo.Create(ctx, plan)
}

func (s *WorkoutPlanService) Update(ctx context.Context, plan types.WorkoutPlan, ownerID uuid.UUID, replaceExercises bool) (types.WorkoutPlan, error) {
	plan.UserID = &ownerID
	return s.repo.Update(ctx, plan, replaceExercises)
}

func (s *WorkoutPlanService) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return s.repo.Delete(ctx, id, ownerID)
}
