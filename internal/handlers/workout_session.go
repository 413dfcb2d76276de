package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gymtrack/apiserver/internal/services"
	"github.com/gymtrack/apiserver/internal/store"
	"github.com/gymtrack/apiserver/types"
)

// WorkoutSessionHandler provides HTTP handlers for workout sessions, with
// the same ownership collapse as WorkoutPlanHandler.
type WorkoutSessionHandler struct {
	sessionService *services.WorkoutSessionService
}

// NewWorkoutSessionHandler constructs a handler with the provided service.
func NewWorkoutSessionHandler(sessionService *services.WorkoutSessionService) *WorkoutSessionHandler {
	return &WorkoutSessionHandler{sessionService: sessionService}
}

// WorkoutSessionRouter registers workout session routes on the given router.
func WorkoutSessionRouter(r chi.Router, sessionService *services.WorkoutSessionService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewWorkoutSessionHandler(sessionService)

	r.Use(authMiddleware)
	r.Get("/", handler.ListWorkoutSessions)
	r.Post("/", handler.CreateWorkoutSession)
	r.Route("/{sessionID}", func(r chi.Router) {
		r.Get("/", handler.GetWorkoutSession)
		r.Put("/", handler.UpdateWorkoutSession)
		r.Post("/complete", handler.CompleteWorkoutSession)
		r.Delete("/", handler.DeleteWorkoutSession)
	})
}

func (h *WorkoutSessionHandler) ListWorkoutSessions(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	sessions, err := h.sessionService.List(r.Context(), identity.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch workout sessions")
		return
	}

	writeData(w, http.StatusOK, sessions)
}

func (h *WorkoutSessionHandler) GetWorkoutSession(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id, err := parseIDParam(r, "sessionID")
	if err != nil {
		writeError(w, http.StatusNotFound, "Workout session not found")
		return
	}

	session, err := h.sessionService.Get(r.Context(), id, identity.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Workout session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch workout session")
		return
	}

	writeData(w, http.StatusOK, session)
}

func (h *WorkoutSessionHandler) CreateWorkoutSession(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req WorkoutSessionUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.DayOfWeek == nil || !req.DayOfWeek.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid day of week")
		return
	}

	session := types.WorkoutSession{
		DayOfWeek:     *req.DayOfWeek,
		WorkoutPlanID: req.WorkoutPlanID,
		Duration:      req.Duration,
		Notes:         req.Notes,
		Logs:          buildSessionLogs(req.Logs),
	}
	if req.Date != nil {
		session.Date = *req.Date
	}

	created, err := h.sessionService.Create(r.Context(), session, identity.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to create workout session")
		return
	}

	writeData(w, http.StatusCreated, created)
}

func (h *WorkoutSessionHandler) UpdateWorkoutSession(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id, err := parseIDParam(r, "sessionID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Workout session not found")
		return
	}

	var req WorkoutSessionUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Fields absent from the payload keep their stored values; a supplied
	// logs list replaces the full child list.
	existing, err := h.sessionService.Get(r.Context(), id, identity.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusBadRequest, "Workout session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update workout session")
		return
	}

	if req.Date != nil {
		existing.Date = *req.Date
	}
	if req.DayOfWeek != nil {
		if !req.DayOfWeek.Valid() {
			writeError(w, http.StatusBadRequest, "Invalid day of week")
			return
		}
		existing.DayOfWeek = *req.DayOfWeek
	}
	if req.WorkoutPlanID != nil {
		existing.WorkoutPlanID = req.WorkoutPlanID
	}
	if req.Duration != nil {
		existing.Duration = req.Duration
	}
	if req.Notes != nil {
		existing.Notes = req.Notes
	}

	replaceLogs := req.Logs != nil
	if replaceLogs {
		existing.Logs = buildSessionLogs(req.Logs)
	}

	updated, err := h.sessionService.Update(r.Context(), existing, identity.ID, replaceLogs)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusBadRequest, "Workout session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update workout session")
		return
	}

	writeData(w, http.StatusOK, updated)
}

func (h *WorkoutSessionHandler) CompleteWorkoutSession(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id, err := parseIDParam(r, "sessionID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Workout session not found")
		return
	}

	session, err := h.sessionService.Complete(r.Context(), id, identity.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusBadRequest, "Workout session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to complete workout session")
		return
	}

	writeData(w, http.StatusOK, session)
}

func (h *WorkoutSessionHandler) DeleteWorkoutSession(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id, err := parseIDParam(r, "sessionID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Workout session not found")
		return
	}

	if err := h.sessionService.Delete(r.Context(), id, identity.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusBadRequest, "Workout session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete workout session")
		return
	}

	writeMessage(w, http.StatusOK, "Workout session deleted successfully")
}

// SessionLogInput is one per-exercise log of a session create/update payload.
type SessionLogInput struct {
	ExerciseID uuid.UUID      `json:"exerciseId"`
	Sets       []types.SetLog `json:"sets"`
	Notes      *string        `json:"notes"`
}

// WorkoutSessionUpsertRequest is the create/update payload. Pointer fields
// distinguish "absent" from "zero" so updates can be partial.
type WorkoutSessionUpsertRequest struct {
	Date          *time.Time        `json:"date"`
	DayOfWeek     *types.DayOfWeek  `json:"dayOfWeek"`
	WorkoutPlanID *uuid.UUID        `json:"workoutPlanId"`
	Duration      *int              `json:"duration"`
	Notes         *string           `json:"notes"`
	Logs          []SessionLogInput `json:"logs"`
}

func buildSessionLogs(inputs []SessionLogInput) []types.WorkoutLog {
	logs := make([]types.WorkoutLog, 0, len(inputs))
	for _, input := range inputs {
		sets := input.Sets
		if sets == nil {
			sets = []types.SetLog{}
		}
		logs = append(logs, types.WorkoutLog{
			ExerciseID: input.ExerciseID,
			Sets:       sets,
			Notes:      input.Notes,
		})
	}
	return logs
}
