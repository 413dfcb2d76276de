package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/gymtrack/apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionTestColumns = []string{
	"id", "user_id", "date", "day_of_week", "workout_plan_id", "duration", "notes",
	"completed", "created_at", "updated_at",
}

var sessionLogTestColumns = []string{
	"wl_id", "workout_session_id", "exercise_id", "sets", "wl_notes",
	"e_id", "name", "description", "category", "muscle_groups", "equipment",
	"difficulty", "instructions", "video_url", "image_url", "created_at", "updated_at",
}

func TestWorkoutSessionRepository_GetByID_AttachesLogs(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	ownerID := uuid.New()
	logID := uuid.New()
	exerciseID := uuid.New()
	now := time.Now()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sessionRows := sqlmock.NewRows(sessionTestColumns).
		AddRow(id.String(), ownerID.String(), now, "WEDNESDAY", nil, nil, nil, false, now, now)
	mock.ExpectQuery("FROM workout_sessions").WithArgs(id, ownerID).WillReturnRows(sessionRows)

	logRows := sqlmock.NewRows(sessionLogTestColumns).AddRow(
		logID.String(), id.String(), exerciseID.String(),
		[]byte(`[{"setNumber":1,"reps":10,"weight":60,"completed":true}]`), nil,
		exerciseID.String(), "Barbell Bench Press", nil, "PUSH", []byte(`["chest"]`), nil,
		"INTERMEDIATE", nil, nil, nil, now, now,
	)
	mock.ExpectQuery("FROM workout_logs wl").WillReturnRows(logRows)

	repo := NewWorkoutSessionRepository(db)
	session, err := repo.GetByID(ctx, id, ownerID)

	require.NoError(t, err)
	assert.Equal(t, id, session.ID)
	assert.Equal(t, types.Wednesday, session.DayOfWeek)
	assert.Nil(t, session.WorkoutPlan)

	require.Len(t, session.Logs, 1)
	log := session.Logs[0]
	assert.Equal(t, exerciseID, log.ExerciseID)
	require.Len(t, log.Sets, 1)
	assert.Equal(t, 1, log.Sets[0].SetNumber)
	assert.Equal(t, 60.0, log.Sets[0].Weight)
	assert.True(t, log.Sets[0].Completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkoutSessionRepository_GetByID_CorruptSets(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	ownerID := uuid.New()
	exerciseID := uuid.New()
	now := time.Now()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sessionRows := sqlmock.NewRows(sessionTestColumns).
		AddRow(id.String(), ownerID.String(), now, "WEDNESDAY", nil, nil, nil, false, now, now)
	mock.ExpectQuery("FROM workout_sessions").WithArgs(id, ownerID).WillReturnRows(sessionRows)

	logRows := sqlmock.NewRows(sessionLogTestColumns).AddRow(
		uuid.New().String(), id.String(), exerciseID.String(),
		[]byte(`{not json`), nil,
		exerciseID.String(), "Barbell Bench Press", nil, "PUSH", []byte(`["chest"]`), nil,
		"INTERMEDIATE", nil, nil, nil, now, now,
	)
	mock.ExpectQuery("FROM workout_logs wl").WillReturnRows(logRows)

	repo := NewWorkoutSessionRepository(db)
	_, err = repo.GetByID(ctx, id, ownerID)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkoutSessionRepository_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM workout_sessions").WillReturnError(sql.ErrNoRows)

	repo := NewWorkoutSessionRepository(db)
	_, err = repo.GetByID(ctx, uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkoutSessionRepository_Complete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	ownerID := uuid.New()
	now := time.Now()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE workout_sessions").
		WithArgs(sqlmock.AnyArg(), id, ownerID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Complete re-reads the session to return the updated row.
	sessionRows := sqlmock.NewRows(sessionTestColumns).
		AddRow(id.String(), ownerID.String(), now, "WEDNESDAY", nil, nil, nil, true, now, now)
	mock.ExpectQuery("FROM workout_sessions").WithArgs(id, ownerID).WillReturnRows(sessionRows)
	mock.ExpectQuery("FROM workout_logs wl").WillReturnRows(sqlmock.NewRows(sessionLogTestColumns))

	repo := NewWorkoutSessionRepository(db)
	session, err := repo.Complete(ctx, id, ownerID)

	require.NoError(t, err)
	assert.True(t, session.Completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkoutSessionRepository_Complete_NotOwned(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE workout_sessions").WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewWorkoutSessionRepository(db)
	_, err = repo.Complete(ctx, uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkoutSessionRepository_Delete_NotFound(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM workout_sessions").WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewWorkoutSessionRepository(db)
	err = repo.Delete(ctx, uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
