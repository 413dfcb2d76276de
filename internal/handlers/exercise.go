package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gymtrack/apiserver/internal/services"
	"github.com/gymtrack/apiserver/internal/store"
	"github.com/gymtrack/apiserver/types"
)

// ExerciseHandler serves the public, read-only exercise catalog.
type ExerciseHandler struct {
	exerciseService *services.ExerciseService
}

// NewExerciseHandler constructs a handler with the provided service.
func NewExerciseHandler(exerciseService *services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// ExerciseRouter registers exercise catalog routes on the given router.
func ExerciseRouter(r chi.Router, exerciseService *services.ExerciseService) {
	handler := NewExerciseHandler(exerciseService)

	r.Get("/", handler.ListExercises)
	r.Get("/category/{category}", handler.ListExercisesByCategory)
	r.Get("/{exerciseID}", handler.GetExercise)
}

func (h *ExerciseHandler) ListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.exerciseService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch exercises")
		return
	}
	writeData(w, http.StatusOK, exercises)
}

func (h *ExerciseHandler) GetExercise(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "exerciseID")
	if err != nil {
		writeError(w, http.StatusNotFound, "Exercise not found")
		return
	}

	exercise, err := h.exerciseService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Exercise not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch exercise")
		return
	}

	writeData(w, http.StatusOK, exercise)
}

func (h *ExerciseHandler) ListExercisesByCategory(w http.ResponseWriter, r *http.Request) {
	category := types.Category(chi.URLParam(r, "category"))
	if !category.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid category")
		return
	}

	exercises, err := h.exerciseService.ListByCategory(r.Context(), category)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch exercises")
		return
	}

	writeData(w, http.StatusOK, exercises)
}
