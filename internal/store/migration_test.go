package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationRepository_AdoptOrphaned(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE workout_plans").
		WithArgs(ownerID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("UPDATE workout_sessions").
		WithArgs(ownerID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	repo := NewMigrationRepository(db)
	err = repo.AdoptOrphaned(ctx, ownerID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrationRepository_AdoptOrphaned_NothingToAdopt(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE workout_plans").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE workout_sessions").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	repo := NewMigrationRepository(db)
	err = repo.AdoptOrphaned(ctx, ownerID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrationRepository_AdoptOrphaned_RollsBackOnError(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE workout_plans").WillReturnError(errors.New("deadlock"))
	mock.ExpectRollback()

	repo := NewMigrationRepository(db)
	err = repo.AdoptOrphaned(ctx, uuid.New())

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
