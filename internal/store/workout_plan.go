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

const planColumns = `id, user_id, name, day_of_week, is_active, notes, created_at, updated_at`

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// WorkoutPlanRepository handles persistence for workout plans.
// Every read and write is scoped to an owner: a row belonging to another
// user is indistinguishable from a missing row.
type WorkoutPlanRepository struct {
	db *sql.DB
}

func NewWorkoutPlanRepository(db *sql.DB) *WorkoutPlanRepository {
	return &WorkoutPlanRepository{db: db}
}

// ListByOwner returns the owner's plans with their exercise entries attached,
// ordered by weekday. day_of_week is a native enum, so the ordering follows
// MONDAY..SUNDAY rather than alphabetical order.
func (r *WorkoutPlanRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]types.WorkoutPlan, error) {
	const query = `
		SELECT ` + planColumns + `
		FROM workout_plans
		WHERE user_id = $1
		ORDER BY day_of_week`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]types.WorkoutPlan, 0)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := attachPlanExercises(ctx, r.db, plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *WorkoutPlanRepository) GetByID(ctx context.Context, id, ownerID uuid.UUID) (types.WorkoutPlan, error) {
	const query = `
		SELECT ` + planColumns + `
		FROM workout_plans
		WHERE id = $1 AND user_id = $2`
	row := r.db.QueryRowContext(ctx, query, id, ownerID)

	plan, err := scanPlan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.WorkoutPlan{}, ErrNotFound
		}
		return types.WorkoutPlan{}, err
	}

	plans := []types.WorkoutPlan{plan}
	if err := attachPlanExercises(ctx, r.db, plans); err != nil {
		return types.WorkoutPlan{}, err
	}
	return plans[0], nil
}

// GetActiveByDay returns the owner's active plan for the given weekday.
// Uniqueness of active plans per day is not enforced; when duplicates exist
// the oldest-created plan wins.
func (r *WorkoutPlanRepository) GetActiveByDay(ctx context.Context, day types.DayOfWeek, ownerID uuid.UUID) (types.WorkoutPlan, error) {
	const query = `
		SELECT ` + planColumns + `
		FROM workout_plans
		WHERE day_of_week = $1 AND is_active AND user_id = $2
		ORDER BY created_at, id
		LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, string(day), ownerID)

	plan, err := scanPlan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.WorkoutPlan{}, ErrNotFound
		}
		return types.WorkoutPlan{}, err
	}

	plans := []types.WorkoutPlan{plan}
	if err := attachPlanExercises(ctx, r.db, plans); err != nil {
		return types.WorkoutPlan{}, err
	}
	return plans[0], nil
}

// Create inserts the plan and all its exercise entries in one transaction.
func (r *WorkoutPlanRepository) Create(ctx context.Context, plan types.WorkoutPlan) (types.WorkoutPlan, error) {
	now := time.Now()
	plan.ID = uuid.New()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return types.WorkoutPlan{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const query = `
		INSERT INTO workout_plans (id, user_id, name, day_of_week, is_active, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := tx.ExecContext(
		ctx,
		query,
		plan.ID,
		plan.UserID,
		plan.Name,
		string(plan.DayOfWeek),
		plan.IsActive,
		plan.Notes,
		plan.CreatedAt,
		plan.UpdatedAt,
	); err != nil {
		return types.WorkoutPlan{}, err
	}

	if err := insertPlanExercises(ctx, tx, plan.ID, plan.Exercises); err != nil {
		return types.WorkoutPlan{}, err
	}

	if err := tx.Commit(); err != nil {
		return types.WorkoutPlan{}, err
	}

	return r.GetByID(ctx, plan.ID, *plan.UserID)
}

// Update writes the plan's scalar fields and, when replaceExercises is set,
// swaps the full child list for plan.Exercises. The UPDATE is scoped by
// id+owner in a single statement, so an unowned or missing plan yields
// ErrNotFound without a separate existence check.
func (r *WorkoutPlanRepository) Update(ctx context.Context, plan types.WorkoutPlan, replaceExercises bool) (types.WorkoutPlan, error) {
	plan.UpdatedAt = time.Now()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return types.WorkoutPlan{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const query = `
		UPDATE workout_plans
		SET name = $1,
			day_of_week = $2,
			is_active = $3,
			notes = $4,
			updated_at = $5
		WHERE id = $6 AND user_id = $7`
	result, err := tx.ExecContext(
		ctx,
		query,
		plan.Name,
		string(plan.DayOfWeek),
		plan.IsActive,
		plan.Notes,
		plan.UpdatedAt,
		plan.ID,
		plan.UserID,
	)
	if err != nil {
		return types.WorkoutPlan{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.WorkoutPlan{}, err
	}
	if affected == 0 {
		return types.WorkoutPlan{}, ErrNotFound
	}

	if replaceExercises {
		const deleteQuery = `DELETE FROM workout_exercises WHERE workout_plan_id = $1`
		if _, err := tx.ExecContext(ctx, deleteQuery, plan.ID); err != nil {
			return types.WorkoutPlan{}, err
		}
		if err := insertPlanExercises(ctx, tx, plan.ID, plan.Exercises); err != nil {
			return types.WorkoutPlan{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return types.WorkoutPlan{}, err
	}

	return r.GetByID(ctx, plan.ID, *plan.UserID)
}

// Delete removes the plan and, via ON DELETE CASCADE, its exercise entries.
func (r *WorkoutPlanRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	const query = `DELETE FROM workout_plans WHERE id = $1 AND user_id = $2`
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

func scanPlan(row rowScanner) (types.WorkoutPlan, error) {
	var plan types.WorkoutPlan
	if err := row.Scan(
		&plan.ID,
		&plan.UserID,
		&plan.Name,
		&plan.DayOfWeek,
		&plan.IsActive,
		&plan.Notes,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	); err != nil {
		return types.WorkoutPlan{}, err
	}
	plan.Exercises = make([]types.WorkoutExercise, 0)
	return plan, nil
}

func insertPlanExercises(ctx context.Context, q querier, planID uuid.UUID, entries []types.WorkoutExercise) error {
	const query = `
		INSERT INTO workout_exercises (id, workout_plan_id, exercise_id, order_index,
			planned_sets, planned_reps, planned_weight, rest_seconds, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, entry := range entries {
		if _, err := q.ExecContext(
			ctx,
			query,
			uuid.New(),
			planID,
			entry.ExerciseID,
			entry.OrderIndex,
			entry.PlannedSets,
			entry.PlannedReps,
			entry.PlannedWeight,
			entry.RestSeconds,
			entry.Notes,
		); err != nil {
			return err
		}
	}
	return nil
}

// attachPlanExercises eagerly loads the exercise entries (with their catalog
// exercises) for every plan in plans, ordered by order_index.
func attachPlanExercises(ctx context.Context, q querier, plans []types.WorkoutPlan) error {
	if len(plans) == 0 {
		return nil
	}

	planIDs := make([]string, 0, len(plans))
	index := make(map[uuid.UUID]int, len(plans))
	for i, plan := range plans {
		planIDs = append(planIDs, plan.ID.String())
		index[plan.ID] = i
	}

	const query = `
		SELECT we.id, we.workout_plan_id, we.exercise_id, we.order_index,
			we.planned_sets, we.planned_reps, we.planned_weight, we.rest_seconds, we.notes,
			e.id, e.name, e.description, e.category, e.muscle_groups, e.equipment,
			e.difficulty, e.instructions, e.video_url, e.image_url, e.created_at, e.updated_at
		FROM workout_exercises we
		JOIN exercises e ON e.id = we.exercise_id
		WHERE we.workout_plan_id = ANY($1::uuid[])
		ORDER BY we.order_index`
	rows, err := q.QueryContext(ctx, query, pq.Array(planIDs))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var entry types.WorkoutExercise
		var groupsJSON []byte
		if err := rows.Scan(
			&entry.ID,
			&entry.WorkoutPlanID,
			&entry.ExerciseID,
			&entry.OrderIndex,
			&entry.PlannedSets,
			&entry.PlannedReps,
			&entry.PlannedWeight,
			&entry.RestSeconds,
			&entry.Notes,
			&entry.Exercise.ID,
			&entry.Exercise.Name,
			&entry.Exercise.Description,
			&entry.Exercise.Category,
			&groupsJSON,
			&entry.Exercise.Equipment,
			&entry.Exercise.Difficulty,
			&entry.Exercise.Instructions,
			&entry.Exercise.VideoURL,
			&entry.Exercise.ImageURL,
			&entry.Exercise.CreatedAt,
			&entry.Exercise.UpdatedAt,
		); err != nil {
			return err
		}
		if len(groupsJSON) > 0 {
			if err := json.Unmarshal(groupsJSON, &entry.Exercise.MuscleGroups); err != nil {
				return err
			}
		}

		if i, ok := index[entry.WorkoutPlanID]; ok {
			plans[i].Exercises = append(plans[i].Exercises, entry)
		}
	}
	return rows.Err()
}
