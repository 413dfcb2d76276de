package cmd

import (
	"fmt"

	"github.com/gymtrack/apiserver/config"
	"github.com/gymtrack/apiserver/internal/db"
	"github.com/gymtrack/apiserver/internal/seed"
	"github.com/gymtrack/apiserver/internal/store"
	"github.com/spf13/cobra"
)

// seedCmd loads the exercise reference catalog into the database.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the exercise catalog",
	Long: `Seeds the read-only exercise reference catalog. Safe to re-run:
an already-seeded database is left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		dbConn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("open database failed: %w", err)
		}
		defer func() {
			_ = dbConn.Close()
		}()

		repo := store.NewExerciseRepository(dbConn)
		inserted, err := seed.Exercises(cmd.Context(), repo)
		if err != nil {
			return fmt.Errorf("seed exercises failed: %w", err)
		}

		fmt.Printf("seeded %d exercises\n", inserted)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
