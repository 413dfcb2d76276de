package types

import (
	"time"

	"github.com/google/uuid"
)

// DayOfWeek enumerates the seven weekdays a plan or session is assigned to.
// The zero-based ordering MONDAY..SUNDAY is also the sort order for plan lists.
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

// Valid reports whether d is one of the seven weekday values.
func (d DayOfWeek) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// WorkoutPlan is a named set of exercises assigned to a weekday,
// owned by exactly one user. UserID is nil only for rows that predate
// the first registration; those are adopted by the first registered account.
type WorkoutPlan struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    *uuid.UUID `json:"userId,omitempty" db:"user_id"`
	Name      string     `json:"name" db:"name"`
	DayOfWeek DayOfWeek  `json:"dayOfWeek" db:"day_of_week"`
	IsActive  bool       `json:"isActive" db:"is_active"`
	Notes     *string    `json:"notes,omitempty" db:"notes"`

	// Exercises holds the plan's entries ordered by OrderIndex.
	Exercises []WorkoutExercise `json:"exercises"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// WorkoutExercise attaches a catalog exercise to a workout plan together
// with planned sets/reps/weight and its position within the plan.
type WorkoutExercise struct {
	ID            uuid.UUID `json:"id" db:"id"`
	WorkoutPlanID uuid.UUID `json:"workoutPlanId" db:"workout_plan_id"`
	ExerciseID    uuid.UUID `json:"exerciseId" db:"exercise_id"`
	Exercise      Exercise  `json:"exercise"`
	OrderIndex    int       `json:"orderIndex" db:"order_index"`
	PlannedSets   int       `json:"plannedSets" db:"planned_sets"`
	PlannedReps   int       `json:"plannedReps" db:"planned_reps"`
	PlannedWeight *float64  `json:"plannedWeight,omitempty" db:"planned_weight"`
	RestSeconds   int       `json:"restSeconds" db:"rest_seconds"`
	Notes         *string   `json:"notes,omitempty" db:"notes"`
}

// WorkoutSession records an actual workout, optionally linked to the plan
// it was performed against. Owned by exactly one user, same adoption rule
// for nil UserID as WorkoutPlan.
type WorkoutSession struct {
	ID            uuid.UUID    `json:"id" db:"id"`
	UserID        *uuid.UUID   `json:"userId,omitempty" db:"user_id"`
	Date          time.Time    `json:"date" db:"date"`
	DayOfWeek     DayOfWeek    `json:"dayOfWeek" db:"day_of_week"`
	WorkoutPlanID *uuid.UUID   `json:"workoutPlanId,omitempty" db:"workout_plan_id"`
	WorkoutPlan   *WorkoutPlan `json:"workoutPlan,omitempty"`
	Duration      *int         `json:"duration,omitempty" db:"duration"`
	Notes         *string      `json:"notes,omitempty" db:"notes"`
	Completed     bool         `json:"completed" db:"completed"`

	// Logs holds the per-exercise performance records of the session.
	Logs []WorkoutLog `json:"logs"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// WorkoutLog records the performed sets for one exercise within a session.
type WorkoutLog struct {
	ID               uuid.UUID `json:"id" db:"id"`
	WorkoutSessionID uuid.UUID `json:"workoutSessionId" db:"workout_session_id"`
	ExerciseID       uuid.UUID `json:"exerciseId" db:"exercise_id"`
	Exercise         Exercise  `json:"exercise"`

	// Sets is the ordered list of performed sets, persisted as a JSON column.
	Sets []SetLog `json:"sets" db:"sets"`

	Notes *string `json:"notes,omitempty" db:"notes"`
}

// SetLog is a single performed set within a workout log.
type SetLog struct {
	SetNumber int     `json:"setNumber"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Completed bool    `json:"completed"`
}
