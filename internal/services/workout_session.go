package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/gymtrack/apiserver/types"
)

// WorkoutSessionRepository defines persistence operations for workout
// sessions, owner-scoped like WorkoutPlanRepository.
type WorkoutSessionRepository interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]types.WorkoutSession, error)
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (types.WorkoutSession, error)
	Create(ctx context.Context, session types.WorkoutSession) (types.WorkoutSession, error)
	Update(ctx context.Context, session types.WorkoutSession, replaceLogs bool) (types.WorkoutSession, error)
	Complete(ctx context.Context, id, ownerID uuid.UUID) (types.WorkoutSession, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

// WorkoutSessionService encapsulates workout session use-cases.
type WorkoutSessionService struct {
	repo WorkoutSessionRepository
}

func NewWorkoutSessionService(repo WorkoutSessionRepository) *WorkoutSessionService {
	return &WorkoutSessionService{repo: repo}
}

func (s *WorkoutSessionService) List(ctx context.Context, ownerID uuid.UUID) ([]types.WorkoutSession, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *WorkoutSessionService) Get(ctx context.Context, id, ownerID uuid.UUID) (types.WorkoutSession, error) {
	return s.repo.GetByID(ctx, id, ownerID)
}

// Create stamps the session's owner from the authenticated caller.
func (s *WorkoutSessionService) Create(ctx context.Context, session types.WorkoutSession, ownerID uuid.UUID) (types.WorkoutSession, error) {
	session.UserID = &ownerID
	return s.repo.Create(ctx, session)
}

func (s *WorkoutSessionService) Update(ctx context.Context, session types.WorkoutSession, ownerID uuid.UUID, replaceLogs bool) (types.WorkoutSession, error) {
	session.UserID = &ownerID
	return s.repo.Update(ctx, session, replaceLogs)
}

func (s *WorkoutSessionService) Complete(ctx context.Context, id, ownerID uuid.UUID) (types.WorkoutSession, error) {
	return s.repo.Complete(ctx, id, ownerID)
}

func (s *WorkoutSessionService) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return s.repo.Delete(ctx, id, ownerID)
}
