package types

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies an exercise by movement pattern or body region.
type Category string

const (
	CategoryPush      Category = "PUSH"
	CategoryPull      Category = "PULL"
	CategoryLegs      Category = "LEGS"
	CategoryChest     Category = "CHEST"
	CategoryShoulders Category = "SHOULDERS"
	CategoryBack      Category = "BACK"
	CategoryArms      Category = "ARMS"
	CategoryCore      Category = "CORE"
	CategoryCardio    Category = "CARDIO"
	CategoryFullBody  Category = "FULL_BODY"
	CategoryOlympic   Category = "OLYMPIC"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPush, CategoryPull, CategoryLegs, CategoryChest,
		CategoryShoulders, CategoryBack, CategoryArms, CategoryCore,
		CategoryCardio, CategoryFullBody, CategoryOlympic:
		return true
	}
	return false
}

// Difficulty indicates the skill level an exercise is suited for.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "BEGINNER"
	DifficultyIntermediate Difficulty = "INTERMEDIATE"
	DifficultyAdvanced     Difficulty = "ADVANCED"
)

// Exercise represents an entry in the read-only exercise reference catalog.
// Exercises are global, seeded once, and never mutated through the API.
type Exercise struct {
	// ID is the unique identifier of the exercise.
	ID uuid.UUID `json:"id" db:"id"`

	// Name is the unique human-readable name of the exercise.
	Name string `json:"name" db:"name"`

	// Description is a short summary of the exercise.
	Description *string `json:"description,omitempty" db:"description"`

	// Category classifies the exercise (e.g., PUSH, LEGS, CARDIO).
	Category Category `json:"category" db:"category"`

	// MuscleGroups lists the muscles the exercise primarily targets.
	MuscleGroups []string `json:"muscleGroups" db:"muscle_groups"`

	// Equipment names the equipment required, if any.
	Equipment *string `json:"equipment,omitempty" db:"equipment"`

	// Difficulty indicates the recommended experience level.
	Difficulty Difficulty `json:"difficulty" db:"difficulty"`

	// Instructions describes how to perform the exercise.
	Instructions *string `json:"instructions,omitempty" db:"instructions"`

	// VideoURL optionally links to a demonstration video.
	VideoURL *string `json:"videoUrl,omitempty" db:"video_url"`

	// ImageURL optionally links to an illustration.
	ImageURL *string `json:"imageUrl,omitempty" db:"image_url"`

	// CreatedAt is the timestamp at which the exercise was seeded.
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the exercise.
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
