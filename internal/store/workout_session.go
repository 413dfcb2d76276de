package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gymtrack/apiserver/types"
	"github.com/lib/pq"
)

const sessionColumns = `id, user_id, date, day_of_week, workout_plan_id, duration, notes,
		completed, created_at, updated_at`

// WorkoutSessionRepository handles persistence for workout sessions.
// Reads and writes are owner-scoped the same way as WorkoutPlanRepository.
type WorkoutSessionRepository struct {
	db *sql.DB
}

func NewWorkoutSessionRepository(db *sql.DB) *WorkoutSessionRepository {
	return &WorkoutSessionRepository{db: db}
}

// ListByOwner returns the owner's sessions newest first, with logs and the
// linked plan (scalars only) attached.
func (r *WorkoutSessionRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]types.WorkoutSession, error) {
	const query = `
		SELECT ` + sessionColumns + `
		FROM workout_sessions
		WHERE user_id = $1
		ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]types.WorkoutSession, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.hydrateSessions(ctx, sessions, false); err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetByID returns the owner's session with logs attached and, when the
// session is linked to a plan, the plan with its exercise entries.
func (r *WorkoutSessionRepository) GetByID(ctx context.Context, id, ownerID uuid.UUID) (types.WorkoutSession, error) {
	const query = `
		SELECT ` + sessionColumns + `
		FROM workout_sessions
		WHERE id = $1 AND user_id = $2`
	row := r.db.QueryRowContext(ctx, query, id, ownerID)

	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.WorkoutSession{}, ErrNotFound
		}
		return types.WorkoutSession{}, err
	}

	sessions := []types.WorkoutSession{session}
	if err := r.hydrateSessions(ctx, sessions, true); err != nil {
		return types.WorkoutSession{}, err
	}
	return sessions[0], nil
}

// Create inserts the session and all its logs in one transaction.
func (r *WorkoutSessionRepository) Create(ctx context.Context, session types.WorkoutSession) (types.WorkoutSession, error) {
	now := time.Now()
	session.ID = uuid.New()
	session.CreatedAt = now
	session.UpdatedAt = now
	if session.Date.IsZero() {
		session.Date = now
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return types.WorkoutSession{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const query = `
		INSERT INTO workout_sessions (id, user_id, date, day_of_week, workout_plan_id,
			duration, notes, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err := tx.ExecContext(
		ctx,
		query,
		session.ID,
		session.UserID,
		session.Date,
		string(session.DayOfWeek),
		session.WorkoutPlanID,
		session.Duration,
		session.Notes,
		session.Completed,
		session.CreatedAt,
		session.UpdatedAt,
	); err != nil {
		return types.WorkoutSession{}, err
	}

	if err := insertSessionLogs(ctx, tx, session.ID, session.Logs); err != nil {
		return types.WorkoutSession{}, err
	}

	if err := tx.Commit(); err != nil {
		return types.WorkoutSession{}, err
	}

	return r.GetByID(ctx, session.ID, *session.UserID)
}

// Update writes the session's scalar fields and, when replaceLogs is set,
// swaps the full log list for session.Logs. Scoped by id+owner in one
// statement, like WorkoutPlanRepository.Update.
func (r *WorkoutSessionRepository) Update(ctx context.Context, session types.WorkoutSession, replaceLogs bool) (types.WorkoutSession, error) {
	session.UpdatedAt = time.Now()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return types.WorkoutSession{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const query = `
		UPDATE workout_sessions
		SET date = $1,
			day_of_week = $2,
			workout_plan_id = $3,
			duration = $4,
			notes = $5,
			updated_at = $6
		WHERE id = $7 AND user_id = $8`
	result, err := tx.ExecContext(
		ctx,
		query,
		session.Date,
		string(session.DayOfWeek),
		session.WorkoutPlanID,
		session.Duration,
		session.Notes,
		session.UpdatedAt,
		session.ID,
		session.UserID,
	)
	if err != nil {
		return types.WorkoutSession{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.WorkoutSession{}, err
	}
	if affected == 0 {
		return types.WorkoutSession{}, ErrNotFound
	}

	if replaceLogs {
		const deleteQuery = `DELETE FROM workout_logs WHERE workout_session_id = $1`
		if _, err := tx.ExecContext(ctx, deleteQuery, session.ID); err != nil {
			return types.WorkoutSession{}, err
		}
		if err := insertSessionLogs(ctx, tx, session.ID, session.Logs); err != nil {
			return types.WorkoutSession{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return types.WorkoutSession{}, err
	}

	return r.GetByID(ctx, session.ID, *session.UserID)
}

// Complete marks the session finished. A single owner-scoped statement, so a
// concurrent delete cannot slip between an ownership check and the write.
func (r *WorkoutSessionRepository) Complete(ctx context.Context, id, ownerID uuid.UUID) (types.WorkoutSession, error) {
	const query = `
		UPDATE workout_sessions
		SET completed = TRUE, updated_at = $1
		WHERE id = $2 AND user_id = $3`
	result, err := r.db.ExecContext(ctx, query, time.Now(), id, ownerID)
	if err != nil {
		return types.WorkoutSession{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.WorkoutSession{}, err
	}
	if affected == 0 {
		return types.WorkoutSession{}, ErrNotFound
	}

	return r.GetByID(ctx, id, ownerID)
}

// Delete removes the session and, via ON DELETE CASCADE, its logs.
func (r *WorkoutSessionRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	const query = `DELETE FROM workout_sessions WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSession(row rowScanner) (types.WorkoutSession, error) {
	var session types.WorkoutSession
	if err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.Date,
		&session.DayOfWeek,
		&session.WorkoutPlanID,
		&session.Duration,
		&session.Notes,
		&session.Completed,
		&session.CreatedAt,
		&session.UpdatedAt,
	); err != nil {
		return types.WorkoutSession{}, err
	}
	session.Logs = make([]types.WorkoutLog, 0)
	return session, nil
}

func insertSessionLogs(ctx context.Context, q querier, sessionID uuid.UUID, logs []types.WorkoutLog) error {
	const query = `
		INSERT INTO workout_logs (id, workout_session_id, exercise_id, order_index, sets, notes)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for i, log := range logs {
		setsJSON, err := json.Marshal(log.Sets)
		if err != nil {
			return err
		}
		if _, err := q.ExecContext(
			ctx,
			query,
			uuid.New(),
			sessionID,
			log.ExerciseID,
			i,
			setsJSON,
			log.Notes,
		); err != nil {
			return err
		}
	}
	return nil
}

// hydrateSessions attaches logs to every session and resolves the linked
// workout plan. planExercises controls whether the linked plans also get
// their exercise entries loaded (the detail view does, lists do not).
func (r *WorkoutSessionRepository) hydrateSessions(ctx context.Context, sessions []types.WorkoutSession, planExercises bool) error {
	if len(sessions) == 0 {
		return nil
	}

	sessionIDs := make([]string, 0, len(sessions))
	index := make(map[uuid.UUID]int, len(sessions))
	for i, session := range sessions {
		sessionIDs = append(sessionIDs, session.ID.String())
		index[session.ID] = i
	}

	const logsQuery = `
		SELECT wl.id, wl.workout_session_id, wl.exercise_id, wl.sets, wl.notes,
			e.id, e.name, e.description, e.category, e.muscle_groups, e.equipment,
			e.difficulty, e.instructions, e.video_url, e.image_url, e.created_at, e.updated_at
		FROM workout_logs wl
		JOIN exercises e ON e.id = wl.exercise_id
		WHERE wl.workout_session_id = ANY($1::uuid[])
		ORDER BY wl.order_index`
	rows, err := r.db.QueryContext(ctx, logsQuery, pq.Array(sessionIDs))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var log types.WorkoutLog
		var setsJSON, groupsJSON []byte
		if err := rows.Scan(
			&log.ID,
			&log.WorkoutSessionID,
			&log.ExerciseID,
			&setsJSON,
			&log.Notes,
			&log.Exercise.ID,
			&log.Exercise.Name,
			&log.Exercise.Description,
			&log.Exercise.Category,
			&groupsJSON,
			&log.Exercise.Equipment,
			&log.Exercise.Difficulty,
			&log.Exercise.Instructions,
			&log.Exercise.VideoURL,
			&log.Exercise.ImageURL,
			&log.Exercise.CreatedAt,
			&log.Exercise.UpdatedAt,
		); err != nil {
			return err
		}
		if len(setsJSON) > 0 {
			if err := json.Unmarshal(setsJSON, &log.Sets); err != nil {
				return err
			}
		}
		if len(groupsJSON) > 0 {
			if err := json.Unmarshal(groupsJSON, &log.Exercise.MuscleGroups); err != nil {
				return err
			}
		}

		if i, ok := index[log.WorkoutSessionID]; ok {
			sessions[i].Logs = append(sessions[i].Logs, log)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	return r.attachSessionPlans(ctx, sessions, planExercises)
}

func (r *WorkoutSessionRepository) attachSessionPlans(ctx context.Context, sessions []types.WorkoutSession, withExercises bool) error {
	planIDs := make([]string, 0)
	seen := make(map[uuid.UUID]bool)
	for _, session := range sessions {
		if session.WorkoutPlanID != nil && !seen[*session.WorkoutPlanID] {
			seen[*session.WorkoutPlanID] = true
			planIDs = append(planIDs, session.WorkoutPlanID.String())
		}
	}
	if len(planIDs) == 0 {
		return nil
	}

	const query = `
		SELECT ` + planColumns + `
		FROM workout_plans
		WHERE id = ANY($1::uuid[])`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(planIDs))
	if err != nil {
		return err
	}
	defer rows.Close()

	plans := make([]types.WorkoutPlan, 0, len(planIDs))
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return err
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if withExercises {
		if err := attachPlanExercises(ctx, r.db, plans); err != nil {
			return err
		}
	}

	byID := make(map[uuid.UUID]types.WorkoutPlan, len(plans))
	for _, plan := range plans {
		byID[plan.ID] = plan
	}
	for i := range sessions {
		if sessions[i].WorkoutPlanID == nil {
			continue
		}
		if plan, ok := byID[*sessions[i].WorkoutPlanID]; ok {
			planCopy := plan
			sessions[i].WorkoutPlan = &planCopy
		}
	}
	return nil
}
