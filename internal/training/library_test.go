package training_test

import (
	"context"
	"testing"

	"github.com/2beens/gymplan/internal/training"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_AttachCategory_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	bench, err := svc.UpsertExercise(ctx, "Bench Press", "")
	require.NoError(t, err)
	chest, err := svc.UpsertCategory(ctx, "Chest")
	require.NoError(t, err)

	require.NoError(t, svc.AttachCategory(ctx, bench.ID, chest.ID))
	require.NoError(t, svc.AttachCategory(ctx, bench.ID, chest.ID))

	got, err := svc.GetExercise(ctx, bench.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chest"}, got.Categories)

	require.NoError(t, svc.DetachCategory(ctx, bench.ID, chest.ID))
	got, err = svc.GetExercise(ctx, bench.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Categories)

	assert.ErrorIs(t, svc.AttachCategory(ctx, 999, chest.ID), training.ErrNotFound)
	assert.ErrorIs(t, svc.AttachCategory(ctx, bench.ID, 999), training.ErrReferentialIntegrity)
}

func TestService_DeleteCategory_KeepsExercises(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	bench, err := svc.UpsertExercise(ctx, "Bench Press", "")
	require.NoError(t, err)
	chest, err := svc.UpsertCategory(ctx, "Chest")
	require.NoError(t, err)
	push, err := svc.UpsertCategory(ctx, "Push")
	require.NoError(t, err)
	require.NoError(t, svc.AttachCategory(ctx, bench.ID, chest.ID))
	require.NoError(t, svc.AttachCategory(ctx, bench.ID, push.ID))

	require.NoError(t, svc.DeleteCategory(ctx, chest.ID))
	assert.ErrorIs(t, svc.DeleteCategory(ctx, chest.ID), training.ErrNotFound)

	got, err := svc.GetExercise(ctx, bench.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Push"}, got.Categories)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Push", categories[0].Name)
}

func TestService_UpsertExercise_ReturnsExisting(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	first, err := svc.UpsertExercise(ctx, "Deadlift", "brace")
	require.NoError(t, err)
	second, err := svc.UpsertExercise(ctx, " Deadlift ", "other notes")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "brace", second.DefaultNotes)

	_, err = svc.UpsertExercise(ctx, "", "")
	assert.ErrorIs(t, err, training.ErrValidation)

	exercises, err := svc.ListExercises(ctx)
	require.NoError(t, err)
	assert.Len(t, exercises, 1)

	_, err = svc.GetExercise(ctx, 999)
	assert.ErrorIs(t, err, training.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteExercise(ctx, 999), training.ErrNotFound)
}

func TestService_UpsertScheme(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	sc, err := svc.UpsertScheme(ctx, training.Scheme{
		Name:          "Pyramid",
		TargetReps:    []int{10, 8, 6},
		TargetWeights: []float64{50, 55.5, 60},
	})
	require.NoError(t, err)

	got, err := svc.GetScheme(ctx, sc.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 8, 6}, got.TargetReps)
	assert.Equal(t, []float64{50, 55.5, 60}, got.TargetWeights)

	_, err = svc.UpsertScheme(ctx, training.Scheme{
		Name:          "Broken",
		TargetReps:    []int{10, 8},
		TargetWeights: []float64{50},
	})
	assert.ErrorIs(t, err, training.ErrMalformedScheme)

	_, err = svc.UpsertScheme(ctx, training.Scheme{Name: "Empty"})
	assert.ErrorIs(t, err, training.ErrValidation)

	schemes, err := svc.ListSchemes(ctx)
	require.NoError(t, err)
	assert.Len(t, schemes, 1)
}

func TestService_SeedLibrary_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	first, err := svc.SeedLibrary(ctx)
	require.NoError(t, err)
	assert.Positive(t, first.Exercises)

	exercises, err := svc.ListExercises(ctx)
	require.NoError(t, err)
	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	schemes, err := svc.ListSchemes(ctx)
	require.NoError(t, err)

	_, err = svc.SeedLibrary(ctx)
	require.NoError(t, err)

	again, err := svc.ListExercises(ctx)
	require.NoError(t, err)
	assert.Equal(t, exercises, again)
	againCategories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, againCategories, len(categories))
	againSchemes, err := svc.ListSchemes(ctx)
	require.NoError(t, err)
	assert.Len(t, againSchemes, len(schemes))

	assert.Len(t, exercises, first.Exercises)
	assert.Len(t, categories, first.Categories)
	assert.Len(t, schemes, first.Schemes)
}
