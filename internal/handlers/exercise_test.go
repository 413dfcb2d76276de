package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gymtrack/apiserver/internal/services"
	"github.com/gymtrack/apiserver/internal/store"
	"github.com/gymtrack/apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExerciseRepo struct {
	exercises map[uuid.UUID]types.Exercise
}

func newFakeExerciseRepo(exercises ...types.Exercise) *fakeExerciseRepo {
	repo := &fakeExerciseRepo{exercises: make(map[uuid.UUID]types.Exercise)}
	for _, exercise := range exercises {
		exercise.ID = uuid.New()
		repo.exercises[exercise.ID] = exercise
	}
	return repo
}

func (r *fakeExerciseRepo) List(ctx context.Context) ([]types.Exercise, error) {
	exercises := make([]types.Exercise, 0, len(r.exercises))
	for _, exercise := range r.exercises {
		exercises = append(exercises, exercise)
	}
	sort.Slice(exercises, func(i, j int) bool { return exercises[i].Name < exercises[j].Name })
	return exercises, nil
}

func (r *fakeExerciseRepo) Get(ctx context.Context, id uuid.UUID) (types.Exercise, error) {
	exercise, ok := r.exercises[id]
	if !ok {
		return types.Exercise{}, store.ErrNotFound
	}
	return exercise, nil
}

func (r *fakeExerciseRepo) ListByCategory(ctx context.Context, category types.Category) ([]types.Exercise, error) {
	all, _ := r.List(ctx)
	matched := make([]types.Exercise, 0)
	for _, exercise := range all {
		if exercise.Category == category {
			matched = append(matched, exercise)
		}
	}
	return matched, nil
}

func newExerciseRouter(repo *fakeExerciseRepo) *chi.Mux {
	exerciseService := services.NewExerciseService(repo)
	r := chi.NewRouter()
	r.Route("/exercises", func(r chi.Router) {
		ExerciseRouter(r, exerciseService)
	})
	return r
}

func TestListExercises(t *testing.T) {
	repo := newFakeExerciseRepo(
		types.Exercise{Name: "Barbell Bench Press", Category: types.CategoryPush, Difficulty: types.DifficultyIntermediate},
		types.Exercise{Name: "Plank", Category: types.CategoryCore, Difficulty: types.DifficultyBeginner},
	)
	router := newExerciseRouter(repo)

	rec, resp := doJSON(t, router, http.MethodGet, "/exercises/", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)

	var exercises []types.Exercise
	require.NoError(t, json.Unmarshal(resp.Data, &exercises))
	assert.Len(t, exercises, 2)
}

func TestGetExercise(t *testing.T) {
	repo := newFakeExerciseRepo(
		types.Exercise{Name: "Plank", Category: types.CategoryCore, Difficulty: types.DifficultyBeginner},
	)
	router := newExerciseRouter(repo)

	var id uuid.UUID
	for existing := range repo.exercises {
		id = existing
	}

	rec, resp := doJSON(t, router, http.MethodGet, "/exercises/"+id.String(), nil, "")

	require.Equal(t, http.StatusOK, rec.Code)

	var exercise types.Exercise
	require.NoError(t, json.Unmarshal(resp.Data, &exercise))
	assert.Equal(t, "Plank", exercise.Name)
}

func TestGetExerciseNotFound(t *testing.T) {
	router := newExerciseRouter(newFakeExerciseRepo())

	for _, path := range []string{
		"/exercises/" + uuid.New().String(),
		"/exercises/not-a-uuid",
	} {
		rec, resp := doJSON(t, router, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, "Exercise not found", resp.Error, path)
	}
}

func TestListExercisesByCategory(t *testing.T) {
	repo := newFakeExerciseRepo(
		types.Exercise{Name: "Barbell Bench Press", Category: types.CategoryPush, Difficulty: types.DifficultyIntermediate},
		types.Exercise{Name: "Plank", Category: types.CategoryCore, Difficulty: types.DifficultyBeginner},
	)
	router := newExerciseRouter(repo)

	rec, resp := doJSON(t, router, http.MethodGet, "/exercises/category/PUSH", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)

	var exercises []types.Exercise
	require.NoError(t, json.Unmarshal(resp.Data, &exercises))
	require.Len(t, exercises, 1)
	assert.Equal(t, "Barbell Bench Press", exercises[0].Name)
}

func TestListExercisesByCategoryInvalid(t *testing.T) {
	router := newExerciseRouter(newFakeExerciseRepo())

	rec, resp := doJSON(t, router, http.MethodGet, "/exercises/category/YOGA", nil, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid category", resp.Error)
}
