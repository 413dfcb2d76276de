package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gymtrack/apiserver/types"
)

const exerciseColumns = `id, name, description, category, muscle_groups, equipment,
		difficulty, instructions, video_url, image_url, created_at, updated_at`

// ExerciseRepository handles persistence for the exercise reference catalog.
type ExerciseRepository struct {
	db *sql.DB
}

func NewExerciseRepository(db *sql.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) List(ctx context.Context) ([]types.Exercise, error) {
	const query = `
		SELECT ` + exerciseColumns + `
		FROM exercises
		ORDER BY category, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectExercises(rows)
}

func (r *ExerciseRepository) Get(ctx context.Context, id uuid.UUID) (types.Exercise, error) {
	const query = `
		SELECT ` + exerciseColumns + `
		FROM exercises
		WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	exercise, err := scanExercise(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Exercise{}, ErrNotFound
		}
		return types.Exercise{}, err
	}
	return exercise, nil
}

func (r *ExerciseRepository) ListByCategory(ctx context.Context, category types.Category) ([]types.Exercise, error) {
	const query = `
		SELECT ` + exerciseColumns + `
		FROM exercises
		WHERE category = $1
		ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, string(category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectExercises(rows)
}

// Count reports the number of catalog entries. The seeder uses it to keep
// re-runs from duplicating the catalog.
func (r *ExerciseRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(1) FROM exercises`
	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Create inserts a catalog entry. Only the seed command uses this; the API
// never mutates exercises.
func (r *ExerciseRepository) Create(ctx context.Context, exercise types.Exercise) (types.Exercise, error) {
	now := time.Now()
	exercise.ID = uuid.New()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	groupsJSON, err := json.Marshal(exercise.MuscleGroups)
	if err != nil {
		return types.Exercise{}, err
	}

	const query = `
		INSERT INTO exercises (id, name, description, category, muscle_groups, equipment,
			difficulty, instructions, video_url, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	if _, err := r.db.ExecContext(
		ctx,
		query,
		exercise.ID,
		exercise.Name,
		exercise.Description,
		string(exercise.Category),
		groupsJSON,
		exercise.Equipment,
		string(exercise.Difficulty),
		exercise.Instructions,
		exercise.VideoURL,
		exercise.ImageURL,
		exercise.CreatedAt,
		exercise.UpdatedAt,
	); err != nil {
		return types.Exercise{}, err
	}
	return exercise, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanExercise(row rowScanner) (types.Exercise, error) {
	var exercise types.Exercise
	var groupsJSON []byte
	if err := row.Scan(
		&exercise.ID,
		&exercise.Name,
		&exercise.Description,
		&exercise.Category,
		&groupsJSON,
		&exercise.Equipment,
		&exercise.Difficulty,
		&exercise.Instructions,
		&exercise.VideoURL,
		&exercise.ImageURL,
		&exercise.CreatedAt,
		&exercise.UpdatedAt,
	); err != nil {
		return types.Exercise{}, err
	}

	if len(groupsJSON) > 0 {
		if err := json.Unmarshal(groupsJSON, &exercise.MuscleGroups); err != nil {
			return types.Exercise{}, err
		}
	}
	return exercise, nil
}

func collectExercises(rows *sql.Rows) ([]types.Exercise, error) {
	exercises := make([]types.Exercise, 0)
	for rows.Next() {
		exercise, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}
