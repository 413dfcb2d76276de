package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gymtrack/apiserver/internal/services"
	"github.com/gymtrack/apiserver/internal/store"
	"github.com/gymtrack/apiserver/types"
)

const defaultRestSeconds = 90

// WorkoutPlanHandler provides HTTP handlers for workout plans.
// Every route runs behind the auth middleware; a plan that does not exist
// and a plan owned by someone else produce the same not-found response.
type WorkoutPlanHandler struct {
	planService *services.WorkoutPlanService
}

// NewWorkoutPlanHandler constructs a handler with the provided service.
func NewWorkoutPlanHandler(planService *services.WorkoutPlanService) *WorkoutPlanHandler {
	return &WorkoutPlanHandler{planService: planService}
}

// WorkoutPlanRouter registers workout plan routes on the given router.
func WorkoutPlanRouter(r chi.Router, planService *services.WorkoutPlanService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewWorkoutPlanHandler(planService)

	r.Use(authMiddleware)
	r.Get("/", handler.ListWorkoutPlans)
	r.Get("/day/{dayOfWeek}", handler.GetWorkoutPlanByDay)
	r.Post("/", handler.CreateWorkoutPlan)
	r.Route("/{planID}", func(r chi.Router) {
		r.Get("/", handler.GetWorkoutPlan)
		r.Put("/", handler.UpdateWorkoutPlan)
		r.Delete("/", handler.DeleteWorkoutPlan)
	})
}

func (h *WorkoutPlanHandler) ListWorkoutPlans(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	plans, err := h.planService.List(r.Context(), identity.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch workout plans")
		return
	}

	writeData(w, http.StatusOK, plans)
}

func (h *WorkoutPlanHandler) GetWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	// An unparseable id cannot match any plan; it gets the same not-found
	// response as an unknown or unowned one.
	id, err := parseIDParam(r, "planID")
	if err != nil {
		writeError(w, http.StatusNotFound, "Workout plan not found")
		return
	}

	plan, err := h.planService.Get(r.Context(), id, identity.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Workout plan not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch workout plan")
		return
	}

	writeData(w, http.StatusOK, plan)
}

func (h *WorkoutPlanHandler) GetWorkoutPlanByDay(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	day := types.DayOfWeek(chi.URLParam(r, "dayOfWeek"))
	if !day.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid day of week")
		return
	}

	plan, err := h.planService.GetActiveByDay(r.Context(), day, identity.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Workout plan not found for this day")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch workout plan")
		return
	}

	writeData(w, http.StatusOK, plan)
}

func (h *WorkoutPlanHandler) CreateWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req WorkoutPlanUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == nil || *req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if req.DayOfWeek == nil || !req.DayOfWeek.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid day of week")
		return
	}

	plan := types.WorkoutPlan{
		Name:      *req.Name,
		DayOfWeek: *req.DayOfWeek,
		IsActive:  true,
		Notes:     req.Notes,
		Exercises: buildPlanExercises(req.Exercises),
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	created, err := h.planService.Create(r.Context(), plan, identity.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to create workout plan")
		return
	}

	writeData(w, http.StatusCreated, created)
}

func (h *WorkoutPlanHandler) UpdateWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id, err := parseIDParam(r, "planID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Workout plan not found")
		return
	}

	var req WorkoutPlanUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Fields absent from the payload keep their stored values; a supplied
	// exercises list replaces the full child list.
	existing, err := h.planService.Get(r.Context(), id, identity.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusBadRequest, "Workout plan not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update workout plan")
		return
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.DayOfWeek != nil {
		if !req.DayOfWeek.Valid() {
			writeError(w, http.StatusBadRequest, "Invalid day of week")
			return
		}
		existing.DayOfWeek = *req.DayOfWeek
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	if req.Notes != nil {
		existing.Notes = req.Notes
	}

	replaceExercises := req.Exercises != nil
	if replaceExercises {
		existing.Exercises = buildPlanExercises(req.Exercises)
	}

	updated, err := h.planService.Update(r.Context(), existing, identity.ID, replaceExercises)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusBadRequest, "Workout plan not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update workout plan")
		return
	}

	writeData(w, http.StatusOK, updated)
}

func (h *WorkoutPlanHandler) DeleteWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id, err := parseIDParam(r, "planID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Workout plan not found")
		return
	}

	if err := h.planService.Delete(r.Context(), id, identity.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusBadRequest, "Workout plan not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete workout plan")
		return
	}

	writeMessage(w, http.StatusOK, "Workout plan deleted successfully")
}

// PlanExerciseInput is one entry of a plan create/update payload.
type PlanExerciseInput struct {
	ExerciseID    uuid.UUID `json:"exerciseId"`
	OrderIndex    int       `json:"orderIndex"`
	PlannedSets   int       `json:"plannedSets"`
	PlannedReps   int       `json:"plannedReps"`
	PlannedWeight *float64  `json:"plannedWeight"`
	RestSeconds   *int      `json:"restSeconds"`
	Notes         *string   `json:"notes"`
}

// WorkoutPlanUpsertRequest is the create/update payload. Pointer fields
// distinguish "absent" from "zero" so updates can be partial.
type WorkoutPlanUpsertRequest struct {
	Name      *string             `json:"name"`
	DayOfWeek *types.DayOfWeek    `json:"dayOfWeek"`
	IsActive  *bool               `json:"isActive"`
	Notes     *string             `json:"notes"`
	Exercises []PlanExerciseInput `json:"exercises"`
}

func buildPlanExercises(inputs []PlanExerciseInput) []types.WorkoutExercise {
	entries := make([]types.WorkoutExercise, 0, len(inputs))
	for _, input := range inputs {
		entry := types.WorkoutExercise{
			ExerciseID:    input.ExerciseID,
			OrderIndex:    input.OrderIndex,
			PlannedSets:   input.PlannedSets,
			PlannedReps:   input.PlannedReps,
			PlannedWeight: input.PlannedWeight,
			RestSeconds:   defaultRestSeconds,
			Notes:         input.Notes,
		}
		if input.RestSeconds != nil {
			entry.RestSeconds = *input.RestSeconds
		}
		entries = append(entries, entry)
	}
	return entries
}
