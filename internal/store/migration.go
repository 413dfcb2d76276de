package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// MigrationRepository reassigns ownerless workout data. Rows without an
// owner only exist before the first registration; every successful
// registration adopts whatever is still unowned, so the operation is
// idempotent once no NULL-owner rows remain.
type MigrationRepository struct {
	db *sql.DB
}

func NewMigrationRepository(db *sql.DB) *MigrationRepository {
	return &MigrationRepository{db: db}
}

// AdoptOrphaned assigns every ownerless workout plan and session to ownerID.
// Both bulk updates run in one transaction: the adoption either fully
// succeeds or fails the registration that triggered it.
func (r *MigrationRepository) AdoptOrphaned(ctx context.Context, ownerID uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now()

	const plansQuery = `
		UPDATE workout_plans
		SET user_id = $1, updated_at = $2
		WHERE user_id IS NULL`
	if _, err := tx.ExecContext(ctx, plansQuery, ownerID, now); err != nil {
		return err
	}

	const sessionsQuery = `
		UPDATE workout_sessions
		SET user_id = $1, updated_at = $2
		WHERE user_id IS NULL`
	if _, err := tx.ExecContext(ctx, sessionsQuery, ownerID, now); err != nil {
		return err
	}

	return tx.Commit()
}
