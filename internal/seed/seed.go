// Package seed loads the exercise reference catalog. The catalog is static:
// the API never writes to it, and re-running the seeder against an already
// populated database is a no-op.
package seed

import (
	"context"

	"github.com/gymtrack/apiserver/types"
)

// ExerciseWriter is the subset of the exercise repository the seeder needs.
type ExerciseWriter interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, exercise types.Exercise) (types.Exercise, error)
}

// Exercises inserts the catalog unless the exercises table already has rows.
// It returns the number of inserted entries.
func Exercises(ctx context.Context, repo ExerciseWriter) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for _, exercise := range catalog {
		if _, err := repo.Create(ctx, exercise); err != nil {
			return 0, err
		}
	}
	return len(catalog), nil
}

func entry(name, description string, category types.Category, muscles []string, equipment string, difficulty types.Difficulty, instructions string) types.Exercise {
	exercise := types.Exercise{
		Name:         name,
		Category:     category,
		MuscleGroups: muscles,
		Difficulty:   difficulty,
	}
	if description != "" {
		exercise.Description = &description
	}
	if equipment != "" {
		exercise.Equipment = &equipment
	}
	if instructions != "" {
		exercise.Instructions = &instructions
	}
	return exercise
}

var catalog = []types.Exercise{
	entry("Barbell Bench Press", "Classic compound chest exercise", types.CategoryPush,
		[]string{"chest", "triceps", "shoulders"}, "barbell", types.DifficultyIntermediate,
		"Lie on bench, lower bar to chest, press up explosively"),
	entry("Incline Barbell Bench Press", "Targets upper chest", types.CategoryPush,
		[]string{"upper chest", "shoulders", "triceps"}, "barbell", types.DifficultyIntermediate,
		"Set bench to 30-45 degrees, press barbell from upper chest"),
	entry("Push-ups", "Classic bodyweight chest exercise", types.CategoryPush,
		[]string{"chest", "triceps", "shoulders", "core"}, "bodyweight", types.DifficultyBeginner,
		"Lower body to ground, push back up, keep core tight"),
	entry("Chest Dips", "Bodyweight chest builder", types.CategoryPush,
		[]string{"chest", "triceps", "shoulders"}, "bodyweight", types.DifficultyIntermediate,
		"Lean forward, lower body, push back up"),
	entry("Dumbbell Bench Press", "Greater range of motion than barbell", types.CategoryChest,
		[]string{"chest", "triceps", "shoulders"}, "dumbbell", types.DifficultyIntermediate,
		"Press dumbbells from chest level, rotate slightly at top"),
	entry("Dumbbell Flyes", "Isolation exercise for chest stretch", types.CategoryChest,
		[]string{"chest"}, "dumbbell", types.DifficultyIntermediate,
		"Arc dumbbells down with slight bend in elbows, squeeze at top"),
	entry("Cable Flyes", "Constant tension chest isolation", types.CategoryChest,
		[]string{"chest"}, "cable", types.DifficultyBeginner, ""),
	entry("Machine Chest Press", "Guided chest press movement", types.CategoryChest,
		[]string{"chest", "triceps", "shoulders"}, "machine", types.DifficultyBeginner, ""),
	entry("Overhead Press (Barbell)", "Standing or seated shoulder press", types.CategoryShoulders,
		[]string{"shoulders", "triceps", "core"}, "barbell", types.DifficultyIntermediate,
		"Press barbell from shoulders to overhead, keep core tight"),
	entry("Arnold Press", "Rotating dumbbell press", types.CategoryShoulders,
		[]string{"shoulders", "triceps"}, "dumbbell", types.DifficultyAdvanced,
		"Start palms facing you, rotate while pressing overhead"),
	entry("Lateral Raises", "Side delt isolation", types.CategoryShoulders,
		[]string{"side delts"}, "dumbbell", types.DifficultyBeginner,
		"Raise arms to sides until parallel to ground"),
	entry("Face Pulls", "Rear delt and upper back", types.CategoryShoulders,
		[]string{"rear delts", "upper back"}, "cable", types.DifficultyBeginner,
		"Pull rope to face, separate ends, squeeze shoulder blades"),
	entry("Rear Delt Flyes", "Rear deltoid isolation", types.CategoryShoulders,
		[]string{"rear delts"}, "dumbbell", types.DifficultyIntermediate,
		"Bend forward, raise dumbbells to sides"),
	entry("Pull-ups", "Upper body pulling staple", types.CategoryPull,
		[]string{"lats", "biceps", "upper back"}, "bodyweight", types.DifficultyIntermediate,
		"Hang from bar, pull chin over bar, lower with control"),
	entry("Bent-Over Barbell Rows", "Compound back thickness builder", types.CategoryPull,
		[]string{"lats", "upper back", "biceps"}, "barbell", types.DifficultyIntermediate,
		"Hinge at hips, row bar to lower chest, squeeze shoulder blades"),
	entry("Lat Pulldowns", "Machine lat builder", types.CategoryBack,
		[]string{"lats", "biceps"}, "cable", types.DifficultyBeginner,
		"Pull bar to upper chest, control the return"),
	entry("Seated Cable Rows", "Horizontal pulling movement", types.CategoryBack,
		[]string{"upper back", "lats", "biceps"}, "cable", types.DifficultyBeginner, ""),
	entry("Deadlift", "Full posterior chain compound lift", types.CategoryBack,
		[]string{"lower back", "glutes", "hamstrings", "traps"}, "barbell", types.DifficultyAdvanced,
		"Hinge at hips, keep bar close, stand up tall"),
	entry("Barbell Curls", "Classic bicep builder", types.CategoryArms,
		[]string{"biceps"}, "barbell", types.DifficultyBeginner,
		"Curl bar up, squeeze biceps, lower slowly"),
	entry("Hammer Curls", "Neutral grip curls for brachialis", types.CategoryArms,
		[]string{"biceps", "forearms"}, "dumbbell", types.DifficultyBeginner, ""),
	entry("Close-Grip Bench Press", "Compound tricep exercise", types.CategoryArms,
		[]string{"triceps", "chest"}, "barbell", types.DifficultyIntermediate, ""),
	entry("Skull Crushers (EZ Bar)", "Lying tricep extension", types.CategoryArms,
		[]string{"triceps"}, "barbell", types.DifficultyIntermediate,
		"Lower bar to forehead, extend arms back up"),
	entry("Tricep Pushdowns (Cable)", "Cable tricep isolation", types.CategoryArms,
		[]string{"triceps"}, "cable", types.DifficultyBeginner,
		"Push bar down, squeeze triceps, return with control"),
	entry("Barbell Back Squat", "King of leg exercises", types.CategoryLegs,
		[]string{"quads", "glutes", "hamstrings", "core"}, "barbell", types.DifficultyIntermediate,
		"Bar on upper back, squat to parallel or below, drive up"),
	entry("Romanian Deadlift", "Hamstring and glute focus", types.CategoryLegs,
		[]string{"hamstrings", "glutes", "lower back"}, "barbell", types.DifficultyIntermediate,
		"Hinge at hips with slight knee bend, feel hamstring stretch"),
	entry("Leg Press", "Machine compound leg movement", types.CategoryLegs,
		[]string{"quads", "glutes", "hamstrings"}, "machine", types.DifficultyBeginner, ""),
	entry("Walking Lunges", "Unilateral leg developer", types.CategoryLegs,
		[]string{"quads", "glutes", "hamstrings"}, "dumbbell", types.DifficultyIntermediate,
		"Step forward, lower back knee toward ground, alternate legs"),
	entry("Standing Calf Raises", "Calf isolation", types.CategoryLegs,
		[]string{"calves"}, "machine", types.DifficultyBeginner, ""),
	entry("Plank", "Isometric core stability", types.CategoryCore,
		[]string{"core", "shoulders"}, "bodyweight", types.DifficultyBeginner,
		"Hold straight line from head to heels, brace core"),
	entry("Hanging Leg Raises", "Lower ab builder", types.CategoryCore,
		[]string{"abs", "hip flexors"}, "bodyweight", types.DifficultyIntermediate,
		"Hang from bar, raise legs to parallel, lower with control"),
	entry("Russian Twists", "Rotational core work", types.CategoryCore,
		[]string{"obliques", "abs"}, "bodyweight", types.DifficultyBeginner, ""),
	entry("Cable Crunches", "Weighted ab flexion", types.CategoryCore,
		[]string{"abs"}, "cable", types.DifficultyBeginner, ""),
	entry("Treadmill Running", "Steady-state cardio", types.CategoryCardio,
		[]string{"legs", "heart"}, "machine", types.DifficultyBeginner, ""),
	entry("Rowing Machine", "Full body cardio", types.CategoryCardio,
		[]string{"back", "legs", "heart"}, "machine", types.DifficultyBeginner,
		"Drive with legs, lean back, pull handle to ribs"),
	entry("Jump Rope", "High intensity conditioning", types.CategoryCardio,
		[]string{"calves", "heart"}, "bodyweight", types.DifficultyBeginner, ""),
	entry("Burpees", "Full body conditioning", types.CategoryFullBody,
		[]string{"chest", "legs", "core", "heart"}, "bodyweight", types.DifficultyIntermediate,
		"Squat, kick back to plank, push-up, jump up"),
	entry("Kettlebell Swings", "Explosive hip hinge", types.CategoryFullBody,
		[]string{"glutes", "hamstrings", "core", "shoulders"}, "kettlebell", types.DifficultyIntermediate,
		"Hinge and snap hips forward, swing bell to chest height"),
	entry("Clean and Jerk", "Olympic lift for power", types.CategoryOlympic,
		[]string{"full body"}, "barbell", types.DifficultyAdvanced,
		"Pull bar to shoulders, then drive overhead"),
	entry("Snatch", "Single movement bar to overhead", types.CategoryOlympic,
		[]string{"full body"}, "barbell", types.DifficultyAdvanced,
		"Explosively pull bar from floor to overhead in one motion"),
}
