package training_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/2beens/gymplan/internal/db"
	"github.com/2beens/gymplan/internal/training"
	"github.com/2beens/gymplan/internal/training/sqlite"
	"github.com/2beens/gymplan/internal/training/tenancy"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	)
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	sqlDB, err := db.NewSQLite(filepath.Join(t.TempDir(), "gymplan.db"))
	require.NoError(t, err)

	store := sqlite.New(sqlDB)
	t.Cleanup(func() {
		_ = store.Close()
	})
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func newTestService(t *testing.T, opts ...training.Option) *training.Service {
	t.Helper()
	return training.NewService(newTestStore(t), tenancy.SingleTenant{}, opts...)
}

// plan is a one-workout tree: Winter / Week 1 / Day A / Bench Press.
type plan struct {
	exercise training.Exercise
	macro    training.MacroCycle
	mini     training.MiniCycle
	workout  training.Workout
	planned  training.PlannedExercise
}

func newPlan(t *testing.T, ctx context.Context, svc *training.Service) plan {
	t.Helper()

	var (
		p   plan
		err error
	)
	p.exercise, err = svc.UpsertExercise(ctx, "Bench Press", "")
	require.NoError(t, err)
	p.macro, err = svc.CreateMacroCycle(ctx, "Winter", "")
	require.NoError(t, err)
	p.mini, err = svc.CreateMiniCycle(ctx, p.macro.ID, "Week 1", "")
	require.NoError(t, err)
	p.workout, err = svc.CreateWorkout(ctx, p.mini.ID, "Day A", "")
	require.NoError(t, err)
	p.planned, err = svc.CreatePlannedExercise(ctx, training.PlannedExerciseInput{
		WorkoutID:     p.workout.ID,
		ExerciseID:    p.exercise.ID,
		Sets:          3,
		TargetReps:    []int{10, 8, 6},
		TargetWeights: []float64{100, 110, 120},
	})
	require.NoError(t, err)
	return p
}

func ptr[T any](v T) *T {
	return &v
}
