package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gymtrack/apiserver/internal/services"
	"github.com/gymtrack/apiserver/internal/store"
	"github.com/gymtrack/apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionRepo struct {
	sessions map[uuid.UUID]types.WorkoutSession

	lastReplaceLogs bool
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]types.WorkoutSession)}
}

func (r *fakeSessionRepo) owned(id, ownerID uuid.UUID) (types.WorkoutSession, bool) {
	session, ok := r.sessions[id]
	if !ok || session.UserID == nil || *session.UserID != ownerID {
		return types.WorkoutSession{}, false
	}
	return session, true
}

func (r *fakeSessionRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]types.WorkoutSession, error) {
	sessions := make([]types.WorkoutSession, 0)
	for _, session := range r.sessions {
		if session.UserID != nil && *session.UserID == ownerID {
			sessions = append(sessions, session)
		}
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].Date.After(sessions[j].Date) })
	return sessions, nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id, ownerID uuid.UUID) (types.WorkoutSession, error) {
	session, ok := r.owned(id, ownerID)
	if !ok {
		return types.WorkoutSession{}, store.ErrNotFound
	}
	return session, nil
}

func (r *fakeSessionRepo) Create(ctx context.Context, session types.WorkoutSession) (types.WorkoutSession, error) {
	session.ID = uuid.New()
	session.CreatedAt = time.Now()
	session.UpdatedAt = session.CreatedAt
	if session.Date.IsZero() {
		session.Date = session.CreatedAt
	}
	r.sessions[session.ID] = session
	return session, nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session types.WorkoutSession, replaceLogs bool) (types.WorkoutSession, error) {
	existing, ok := r.owned(session.ID, *session.UserID)
	if !ok {
		return types.WorkoutSession{}, store.ErrNotFound
	}
	r.lastReplaceLogs = replaceLogs
	if !replaceLogs {
		session.Logs = existing.Logs
	}
	session.CreatedAt = existing.CreatedAt
	session.UpdatedAt = time.Now()
	r.sessions[session.ID] = session
	return session, nil
}

func (r *fakeSessionRepo) Complete(ctx context.Context, id, ownerID uuid.UUID) (types.WorkoutSession, error) {
	session, ok := r.owned(id, ownerID)
	if !ok {
		return types.WorkoutSession{}, store.ErrNotFound
	}
	session.Completed = true
	session.UpdatedAt = time.Now()
	r.sessions[id] = session
	return session, nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if _, ok := r.owned(id, ownerID); !ok {
		return store.ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

func newSessionRouter(repo *fakeSessionRepo, caller AuthPayload) *chi.Mux {
	sessionService := services.NewWorkoutSessionService(repo)
	r := chi.NewRouter()
	r.Route("/workout-sessions", func(r chi.Router) {
		WorkoutSessionRouter(r, sessionService, injectIdentity(caller))
	})
	return r
}

func seedSession(repo *fakeSessionRepo, ownerID uuid.UUID, day types.DayOfWeek) types.WorkoutSession {
	session, _ := repo.Create(context.Background(), types.WorkoutSession{
		UserID:    &ownerID,
		DayOfWeek: day,
		Logs:      []types.WorkoutLog{},
	})
	return session
}

func TestCreateWorkoutSession(t *testing.T) {
	repo := newFakeSessionRepo()
	caller := testCaller()
	router := newSessionRouter(repo, caller)

	exerciseID := uuid.New()
	rec, resp := doJSON(t, router, http.MethodPost, "/workout-sessions/", map[string]any{
		"dayOfWeek": "WEDNESDAY",
		"logs": []map[string]any{
			{
				"exerciseId": exerciseID,
				"sets": []map[string]any{
					{"setNumber": 1, "reps": 10, "weight": 60, "completed": true},
					{"setNumber": 2, "reps": 8, "weight": 60, "completed": true},
				},
			},
		},
	}, "")

	require.Equal(t, http.StatusCreated, rec.Code)

	var session types.WorkoutSession
	require.NoError(t, json.Unmarshal(resp.Data, &session))
	require.NotNil(t, session.UserID)
	assert.Equal(t, caller.ID, *session.UserID)
	assert.Equal(t, types.Wednesday, session.DayOfWeek)
	assert.False(t, session.Completed)
	assert.False(t, session.Date.IsZero())

	require.Len(t, session.Logs, 1)
	assert.Equal(t, exerciseID, session.Logs[0].ExerciseID)
	require.Len(t, session.Logs[0].Sets, 2)
	assert.Equal(t, 60.0, session.Logs[0].Sets[0].Weight)
}

func TestCreateWorkoutSessionInvalidDay(t *testing.T) {
	router := newSessionRouter(newFakeSessionRepo(), testCaller())

	rec, resp := doJSON(t, router, http.MethodPost, "/workout-sessions/", map[string]any{
		"dayOfWeek": "SOMEDAY",
	}, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid day of week", resp.Error)
}

func TestListWorkoutSessionsScopedToOwner(t *testing.T) {
	repo := newFakeSessionRepo()
	caller := testCaller()
	router := newSessionRouter(repo, caller)

	mine := seedSession(repo, caller.ID, types.Monday)
	seedSession(repo, uuid.New(), types.Monday)

	rec, resp := doJSON(t, router, http.MethodGet, "/workout-sessions/", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)

	var sessions []types.WorkoutSession
	require.NoError(t, json.Unmarshal(resp.Data, &sessions))
	require.Len(t, sessions, 1)
	assert.Equal(t, mine.ID, sessions[0].ID)
}

func TestGetWorkoutSessionNotFoundCollapse(t *testing.T) {
	repo := newFakeSessionRepo()
	router := newSessionRouter(repo, testCaller())
	other := seedSession(repo, uuid.New(), types.Monday)

	paths := []string{
		"/workout-sessions/" + uuid.New().String(),
		"/workout-sessions/" + other.ID.String(),
		"/workout-sessions/not-a-uuid",
	}
	for _, path := range paths {
		rec, resp := doJSON(t, router, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, "Workout session not found", resp.Error, path)
	}
}

func TestUpdateWorkoutSessionPartial(t *testing.T) {
	repo := newFakeSessionRepo()
	caller := testCaller()
	router := newSessionRouter(repo, caller)

	session := seedSession(repo, caller.ID, types.Monday)
	session.Logs = []types.WorkoutLog{{ExerciseID: uuid.New()}}
	repo.sessions[session.ID] = session

	duration := 45
	rec, resp := doJSON(t, router, http.MethodPut, "/workout-sessions/"+session.ID.String(), map[string]any{
		"duration": duration,
	}, "")

	require.Equal(t, http.StatusOK, rec.Code)

	var updated types.WorkoutSession
	require.NoError(t, json.Unmarshal(resp.Data, &updated))
	require.NotNil(t, updated.Duration)
	assert.Equal(t, duration, *updated.Duration)
	assert.Equal(t, types.Monday, updated.DayOfWeek)
	assert.Len(t, updated.Logs, 1)
	assert.False(t, repo.lastReplaceLogs)
}

func TestUpdateWorkoutSessionReplacesLogs(t *testing.T) {
	repo := newFakeSessionRepo()
	caller := testCaller()
	router := newSessionRouter(repo, caller)

	session := seedSession(repo, caller.ID, types.Monday)
	session.Logs = []types.WorkoutLog{{ExerciseID: uuid.New()}, {ExerciseID: uuid.New()}}
	repo.sessions[session.ID] = session

	rec, resp := doJSON(t, router, http.MethodPut, "/workout-sessions/"+session.ID.String(), map[string]any{
		"logs": []map[string]any{},
	}, "")

	require.Equal(t, http.StatusOK, rec.Code)

	var updated types.WorkoutSession
	require.NoError(t, json.Unmarshal(resp.Data, &updated))
	assert.Empty(t, updated.Logs)
	assert.True(t, repo.lastReplaceLogs)
}

func TestCompleteWorkoutSession(t *testing.T) {
	repo := newFakeSessionRepo()
	caller := testCaller()
	router := newSessionRouter(repo, caller)
	session := seedSession(repo, caller.ID, types.Monday)

	rec, resp := doJSON(t, router, http.MethodPost, "/workout-sessions/"+session.ID.String()+"/complete", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)

	var completed types.WorkoutSession
	require.NoError(t, json.Unmarshal(resp.Data, &completed))
	assert.True(t, completed.Completed)
	assert.True(t, repo.sessions[session.ID].Completed)
}

func TestCompleteWorkoutSessionNotOwned(t *testing.T) {
	repo := newFakeSessionRepo()
	router := newSessionRouter(repo, testCaller())
	other := seedSession(repo, uuid.New(), types.Monday)

	rec, resp := doJSON(t, router, http.MethodPost, "/workout-sessions/"+other.ID.String()+"/complete", nil, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Workout session not found", resp.Error)
	assert.False(t, repo.sessions[other.ID].Completed)
}

func TestDeleteWorkoutSession(t *testing.T) {
	repo := newFakeSessionRepo()
	caller := testCaller()
	router := newSessionRouter(repo, caller)
	session := seedSession(repo, caller.ID, types.Monday)

	rec, resp := doJSON(t, router, http.MethodDelete, "/workout-sessions/"+session.ID.String(), nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Workout session deleted successfully", resp.Message)
	assert.NotContains(t, repo.sessions, session.ID)
}
