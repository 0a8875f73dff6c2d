package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/2beens/gymplan/internal/db"
	"github.com/2beens/gymplan/internal/training"
	"github.com/2beens/gymplan/internal/training/sqlite"
	"github.com/2beens/gymplan/internal/training/tenancy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*sqlite.Store, *sql.DB) {
	t.Helper()
	sqlDB, err := db.NewSQLite(filepath.Join(t.TempDir(), "gymplan.db"))
	require.NoError(t, err)
	store := sqlite.New(sqlDB)
	t.Cleanup(func() {
		_ = store.Close()
	})
	require.NoError(t, store.Migrate(context.Background()))
	return store, sqlDB
}

func TestStore_MigrateTwice(t *testing.T) {
	store, _ := newStore(t)
	assert.NoError(t, store.Migrate(context.Background()))
}

func TestStore_WithTx_Rollback(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	boom := errors.New("boom")

	err := store.WithTx(ctx, tenancy.LocalOwner, func(ctx context.Context, tx training.Tx) error {
		if _, err := tx.UpsertCategory(ctx, "Chest", timeNow()); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = store.WithTx(ctx, tenancy.LocalOwner, func(ctx context.Context, tx training.Tx) error {
		categories, err := tx.ListCategories(ctx)
		if err != nil {
			return err
		}
		assert.Empty(t, categories)
		return nil
	})
	require.NoError(t, err)
}

func TestStore_OwnerScoping(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	var id int64
	require.NoError(t, store.WithTx(ctx, "alice", func(ctx context.Context, tx training.Tx) error {
		m, err := tx.InsertMacroCycle(ctx, training.MacroCycle{Name: "Winter", CreatedAt: timeNow(), UpdatedAt: timeNow()})
		id = m.ID
		return err
	}))

	err := store.WithTx(ctx, "bob", func(ctx context.Context, tx training.Tx) error {
		_, err := tx.GetMacroCycle(ctx, id)
		return err
	})
	assert.ErrorIs(t, err, training.ErrNotFound)

	err = store.WithTx(ctx, "bob", func(ctx context.Context, tx training.Tx) error {
		_, err := tx.InsertMiniCycle(ctx, training.MiniCycle{MacroID: id, Name: "Week 1", CreatedAt: timeNow(), UpdatedAt: timeNow()})
		return err
	})
	assert.ErrorIs(t, err, training.ErrReferentialIntegrity)
}

func TestStore_CorruptTargets(t *testing.T) {
	ctx := context.Background()
	store, sqlDB := newStore(t)
	svc := training.NewService(store, tenancy.SingleTenant{})

	bench, err := svc.UpsertExercise(ctx, "Bench Press", "")
	require.NoError(t, err)
	macro, err := svc.CreateMacroCycle(ctx, "Winter", "")
	require.NoError(t, err)
	mini, err := svc.CreateMiniCycle(ctx, macro.ID, "Week 1", "")
	require.NoError(t, err)
	workout, err := svc.CreateWorkout(ctx, mini.ID, "Day A", "")
	require.NoError(t, err)
	pe, err := svc.CreatePlannedExercise(ctx, training.PlannedExerciseInput{
		WorkoutID: workout.ID, ExerciseID: bench.ID, Sets: 2, TargetReps: []int{5, 5},
	})
	require.NoError(t, err)

	_, err = sqlDB.ExecContext(ctx, `UPDATE planned_exercise SET target_reps = '[5, "five"' WHERE id = ?`, pe.ID)
	require.NoError(t, err)

	_, err = svc.GetPlannedExercise(ctx, pe.ID)
	assert.ErrorIs(t, err, training.ErrMalformedScheme)
	_, err = svc.ListPlanTree(ctx, macro.ID)
	assert.ErrorIs(t, err, training.ErrMalformedScheme)
}

func timeNow() time.Time {
	return time.Now().UTC()
}
