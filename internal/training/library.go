package training

import (
	"context"
	"math"
)

func (s *Service) UpsertCategory(ctx context.Context, name string) (Category, error) {
	var c Category
	err := s.run(ctx, "upsert category", func(ctx context.Context, tx Tx) error {
		name, err := requireName(name)
		if err != nil {
			return err
		}
		c, err = tx.UpsertCategory(ctx, name, s.stamp())
		return err
	})
	return c, err
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := s.run(ctx, "list categories", func(ctx context.Context, tx Tx) (err error) {
		categories, err = tx.ListCategories(ctx)
		return err
	})
	return categories, err
}

// DeleteCategory removes the category and its exercise links. The exercises stay.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	return s.run(ctx, "delete category", func(ctx context.Context, tx Tx) error {
		return deleted(tx.DeleteCategory(ctx, id))
	})
}

// UpsertExercise returns the caller's exercise with the given name,
// creating it when there is none.
func (s *Service) UpsertExercise(ctx context.Context, name, defaultNotes string) (Exercise, error) {
	var e Exercise
	err := s.run(ctx, "upsert exercise", func(ctx context.Context, tx Tx) error {
		name, err := requireName(name)
		if err != nil {
			return err
		}
		e, err = tx.UpsertExercise(ctx, name, defaultNotes, s.stamp())
		return err
	})
	return e, err
}

func (s *Service) GetExercise(ctx context.Context, id int64) (Exercise, error) {
	var e Exercise
	err := s.run(ctx, "get exercise", func(ctx context.Context, tx Tx) (err error) {
		e, err = tx.GetExercise(ctx, id)
		return err
	})
	return e, err
}

func (s *Service) ListExercises(ctx context.Context) ([]Exercise, error) {
	var exercises []Exercise
	err := s.run(ctx, "list exercises", func(ctx context.Context, tx Tx) (err error) {
		exercises, err = tx.ListExercises(ctx)
		return err
	})
	return exercises, err
}

// DeleteExercise fails with ErrReferentialIntegrity while any planned
// exercise uses it. Logged sets keep the exercise name.
func (s *Service) DeleteExercise(ctx context.Context, id int64) error {
	return s.run(ctx, "delete exercise", func(ctx context.Context, tx Tx) error {
		return deleted(tx.DeleteExercise(ctx, id))
	})
}

// AttachCategory links a category to an exercise. Linking twice is a no-op.
func (s *Service) AttachCategory(ctx context.Context, exerciseID, categoryID int64) error {
	return s.run(ctx, "attach category", func(ctx context.Context, tx Tx) error {
		if _, err := tx.GetExercise(ctx, exerciseID); err != nil {
			return err
		}
		return tx.AttachCategory(ctx, exerciseID, categoryID)
	})
}

func (s *Service) DetachCategory(ctx context.Context, exerciseID, categoryID int64) error {
	return s.run(ctx, "detach category", func(ctx context.Context, tx Tx) error {
		if _, err := tx.GetExercise(ctx, exerciseID); err != nil {
			return err
		}
		return tx.DetachCategory(ctx, exerciseID, categoryID)
	})
}

// UpsertScheme returns the caller's scheme with the given name, creating it
// with the given targets when there is none.
func (s *Service) UpsertScheme(ctx context.Context, sc Scheme) (Scheme, error) {
	var out Scheme
	err := s.run(ctx, "upsert scheme", func(ctx context.Context, tx Tx) error {
		name, err := requireName(sc.Name)
		if err != nil {
			return err
		}
		sc.Name = name
		if err := validateScheme(sc); err != nil {
			return err
		}
		out, err = tx.UpsertScheme(ctx, sc, s.stamp())
		return err
	})
	return out, err
}

func (s *Service) GetScheme(ctx context.Context, id int64) (Scheme, error) {
	var sc Scheme
	err := s.run(ctx, "get scheme", func(ctx context.Context, tx Tx) (err error) {
		sc, err = tx.GetScheme(ctx, id)
		return err
	})
	return sc, err
}

func (s *Service) ListSchemes(ctx context.Context) ([]Scheme, error) {
	var schemes []Scheme
	err := s.run(ctx, "list schemes", func(ctx context.Context, tx Tx) (err error) {
		schemes, err = tx.ListSchemes(ctx)
		return err
	})
	return schemes, err
}

// DeleteScheme removes a scheme. Planned exercises created from it keep
// their copied targets.
func (s *Service) DeleteScheme(ctx context.Context, id int64) error {
	return s.run(ctx, "delete scheme", func(ctx context.Context, tx Tx) error {
		return deleted(tx.DeleteScheme(ctx, id))
	})
}

func validateScheme(sc Scheme) error {
	if len(sc.TargetReps) == 0 {
		return failf(ErrValidation, "a scheme needs at least one set")
	}
	if len(sc.TargetWeights) > 0 && len(sc.TargetWeights) != len(sc.TargetReps) {
		return failf(ErrMalformedScheme, "%d target reps and %d target weights", len(sc.TargetReps), len(sc.TargetWeights))
	}
	for _, r := range sc.TargetReps {
		if r < 0 {
			return failf(ErrValidation, "target reps must not be negative")
		}
	}
	for _, w := range sc.TargetWeights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return failf(ErrValidation, "target weights must be finite and not negative")
		}
	}
	return nil
}

func deleted(ok bool, err error) error {
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
