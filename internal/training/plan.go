package training

import (
	"context"
	"errors"
	"math"
	"strings"
)

type PlannedExerciseInput struct {
	WorkoutID     int64     `json:"workoutId"`
	ExerciseID    int64     `json:"exerciseId"`
	SchemeID      *int64    `json:"schemeId"`
	Sets          int       `json:"sets"`
	TargetReps    []int     `json:"targetReps"`
	TargetWeights []float64 `json:"targetWeights"`
	TargetRIR     []int     `json:"targetRir"`
	Notes         string    `json:"notes"`
}

// NodeUpdate changes the fields that are set and leaves the rest alone.
type NodeUpdate struct {
	Name     *string `json:"name"`
	Notes    *string `json:"notes"`
	Position *int    `json:"position"`
}

// PlannedExerciseUpdate changes the fields that are set. A nil target slice
// keeps the current targets; an empty one clears them.
type PlannedExerciseUpdate struct {
	ExerciseID    *int64    `json:"exerciseId"`
	Sets          *int      `json:"sets"`
	TargetReps    []int     `json:"targetReps"`
	TargetWeights []float64 `json:"targetWeights"`
	TargetRIR     []int     `json:"targetRir"`
	Notes         *string   `json:"notes"`
	Position      *int      `json:"position"`
}

func (s *Service) CreateMacroCycle(ctx context.Context, name, notes string) (MacroCycle, error) {
	var created MacroCycle
	err := s.run(ctx, "create macro cycle", func(ctx context.Context, tx Tx) (err error) {
		created, err = s.createMacroCycle(ctx, tx, name, notes)
		return err
	})
	return created, err
}

func (s *Service) CreateMiniCycle(ctx context.Context, macroID int64, name, notes string) (MiniCycle, error) {
	var created MiniCycle
	err := s.run(ctx, "create mini cycle", func(ctx context.Context, tx Tx) (err error) {
		created, err = s.createMiniCycle(ctx, tx, macroID, name, notes)
		return err
	})
	return created, err
}

func (s *Service) CreateWorkout(ctx context.Context, miniID int64, name, notes string) (Workout, error) {
	var created Workout
	err := s.run(ctx, "create workout", func(ctx context.Context, tx Tx) (err error) {
		created, err = s.createWorkout(ctx, tx, miniID, name, notes)
		return err
	})
	return created, err
}

func (s *Service) CreatePlannedExercise(ctx context.Context, in PlannedExerciseInput) (PlannedExercise, error) {
	var created PlannedExercise
	err := s.run(ctx, "create planned exercise", func(ctx context.Context, tx Tx) (err error) {
		created, err = s.createPlannedExercise(ctx, tx, in)
		return err
	})
	return created, err
}

func (s *Service) createMacroCycle(ctx context.Context, tx Tx, name, notes string) (MacroCycle, error) {
	name, err := requireName(name)
	if err != nil {
		return MacroCycle{}, err
	}
	now := s.stamp()
	return tx.InsertMacroCycle(ctx, MacroCycle{
		Name:      name,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *Service) createMiniCycle(ctx context.Context, tx Tx, macroID int64, name, notes string) (MiniCycle, error) {
	name, err := requireName(name)
	if err != nil {
		return MiniCycle{}, err
	}
	if _, err := tx.GetMacroCycle(ctx, macroID); err != nil {
		return MiniCycle{}, parentErr(err, "macro cycle", macroID)
	}
	pos, err := tx.NextPosition(ctx, LevelMini, macroID)
	if err != nil {
		return MiniCycle{}, err
	}
	now := s.stamp()
	return tx.InsertMiniCycle(ctx, MiniCycle{
		MacroID:   macroID,
		Name:      name,
		Notes:     notes,
		Position:  pos,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *Service) createWorkout(ctx context.Context, tx Tx, miniID int64, name, notes string) (Workout, error) {
	name, err := requireName(name)
	if err != nil {
		return Workout{}, err
	}
	if _, err := tx.GetMiniCycle(ctx, miniID); err != nil {
		return Workout{}, parentErr(err, "mini cycle", miniID)
	}
	pos, err := tx.NextPosition(ctx, LevelWorkout, miniID)
	if err != nil {
		return Workout{}, err
	}
	now := s.stamp()
	return tx.InsertWorkout(ctx, Workout{
		MiniID:    miniID,
		Name:      name,
		Notes:     notes,
		Position:  pos,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *Service) createPlannedExercise(ctx context.Context, tx Tx, in PlannedExerciseInput) (PlannedExercise, error) {
	if _, err := tx.GetWorkout(ctx, in.WorkoutID); err != nil {
		return PlannedExercise{}, parentErr(err, "workout", in.WorkoutID)
	}
	exercise, err := tx.GetExercise(ctx, in.ExerciseID)
	if err != nil {
		return PlannedExercise{}, parentErr(err, "exercise", in.ExerciseID)
	}

	pe := PlannedExercise{
		WorkoutID:     in.WorkoutID,
		ExerciseID:    exercise.ID,
		ExerciseName:  exercise.Name,
		Categories:    exercise.Categories,
		SchemeID:      in.SchemeID,
		Sets:          in.Sets,
		TargetReps:    in.TargetReps,
		TargetWeights: in.TargetWeights,
		TargetRIR:     in.TargetRIR,
		Notes:         in.Notes,
	}

	if in.SchemeID != nil {
		sc, err := tx.GetScheme(ctx, *in.SchemeID)
		if err != nil {
			return PlannedExercise{}, parentErr(err, "scheme", *in.SchemeID)
		}
		if len(pe.TargetReps) == 0 && len(pe.TargetWeights) == 0 {
			pe.TargetReps = sc.TargetReps
			pe.TargetWeights = sc.TargetWeights
			if pe.Sets == 0 {
				pe.Sets = len(sc.TargetReps)
			}
		}
	}

	if err := validateTargets(pe.Sets, pe.TargetReps, pe.TargetWeights, pe.TargetRIR); err != nil {
		return PlannedExercise{}, err
	}

	pe.Position, err = tx.NextPosition(ctx, LevelPlannedExercise, in.WorkoutID)
	if err != nil {
		return PlannedExercise{}, err
	}
	now := s.stamp()
	pe.CreatedAt = now
	pe.UpdatedAt = now

	return tx.InsertPlannedExercise(ctx, pe)
}

func (s *Service) GetMacroCycle(ctx context.Context, id int64) (MacroCycle, error) {
	var m MacroCycle
	err := s.run(ctx, "get macro cycle", func(ctx context.Context, tx Tx) (err error) {
		m, err = tx.GetMacroCycle(ctx, id)
		return err
	})
	return m, err
}

func (s *Service) GetMiniCycle(ctx context.Context, id int64) (MiniCycle, error) {
	var m MiniCycle
	err := s.run(ctx, "get mini cycle", func(ctx context.Context, tx Tx) (err error) {
		m, err = tx.GetMiniCycle(ctx, id)
		return err
	})
	return m, err
}

func (s *Service) GetWorkout(ctx context.Context, id int64) (Workout, error) {
	var w Workout
	err := s.run(ctx, "get workout", func(ctx context.Context, tx Tx) (err error) {
		w, err = tx.GetWorkout(ctx, id)
		return err
	})
	return w, err
}

func (s *Service) GetPlannedExercise(ctx context.Context, id int64) (PlannedExercise, error) {
	var pe PlannedExercise
	err := s.run(ctx, "get planned exercise", func(ctx context.Context, tx Tx) (err error) {
		pe, err = tx.GetPlannedExercise(ctx, id)
		return err
	})
	return pe, err
}

func (s *Service) ListMacroCycles(ctx context.Context) ([]MacroCycle, error) {
	var macros []MacroCycle
	err := s.run(ctx, "list macro cycles", func(ctx context.Context, tx Tx) (err error) {
		macros, err = tx.ListMacroCycles(ctx)
		return err
	})
	return macros, err
}

func (s *Service) CountMacroCycles(ctx context.Context) (int, error) {
	var count int
	err := s.run(ctx, "count macro cycles", func(ctx context.Context, tx Tx) (err error) {
		count, err = tx.CountMacroCycles(ctx)
		return err
	})
	return count, err
}

// UpdatePlanNode edits a macro cycle, mini cycle or workout in place.
// Descendants are never touched.
func (s *Service) UpdatePlanNode(ctx context.Context, level Level, id int64, upd NodeUpdate) error {
	return s.run(ctx, "update plan node", func(ctx context.Context, tx Tx) error {
		if !level.Structural() {
			return failf(ErrValidation, "level %q cannot be updated as a plan node", level)
		}
		node, err := tx.PlanNode(ctx, level, id)
		if err != nil {
			return err
		}
		if upd.Name != nil {
			if node.Name, err = requireName(*upd.Name); err != nil {
				return err
			}
		}
		if upd.Notes != nil {
			node.Notes = *upd.Notes
		}
		if upd.Position != nil {
			if level == LevelMacro {
				return failf(ErrValidation, "macro cycles are ordered by creation")
			}
			if *upd.Position < 0 {
				return failf(ErrValidation, "position must not be negative")
			}
			node.Position = *upd.Position
		}
		return tx.UpdatePlanNode(ctx, node, s.stamp())
	})
}

func (s *Service) UpdatePlannedExercise(ctx context.Context, id int64, upd PlannedExerciseUpdate) (PlannedExercise, error) {
	var updated PlannedExercise
	err := s.run(ctx, "update planned exercise", func(ctx context.Context, tx Tx) error {
		pe, err := tx.GetPlannedExercise(ctx, id)
		if err != nil {
			return err
		}
		if upd.ExerciseID != nil && *upd.ExerciseID != pe.ExerciseID {
			exercise, err := tx.GetExercise(ctx, *upd.ExerciseID)
			if err != nil {
				return parentErr(err, "exercise", *upd.ExerciseID)
			}
			pe.ExerciseID = exercise.ID
			pe.ExerciseName = exercise.Name
			pe.Categories = exercise.Categories
		}
		if upd.Sets != nil {
			pe.Sets = *upd.Sets
		}
		if upd.TargetReps != nil {
			pe.TargetReps = upd.TargetReps
		}
		if upd.TargetWeights != nil {
			pe.TargetWeights = upd.TargetWeights
		}
		if upd.TargetRIR != nil {
			pe.TargetRIR = upd.TargetRIR
		}
		if upd.Notes != nil {
			pe.Notes = *upd.Notes
		}
		if upd.Position != nil {
			if *upd.Position < 0 {
				return failf(ErrValidation, "position must not be negative")
			}
			pe.Position = *upd.Position
		}
		if err := validateTargets(pe.Sets, pe.TargetReps, pe.TargetWeights, pe.TargetRIR); err != nil {
			return err
		}

		now := s.stamp()
		if err := tx.UpdatePlannedExercise(ctx, pe, now); err != nil {
			return err
		}
		pe.UpdatedAt = now
		updated = pe
		return nil
	})
	return updated, err
}

// DeletePlanNode removes the node and everything below it. Logs that pointed
// into the removed subtree stay, with their plan references cleared. Deleting
// a node that no longer exists is a no-op.
func (s *Service) DeletePlanNode(ctx context.Context, level Level, id int64) error {
	var (
		deleted  bool
		detached DetachResult
	)
	err := s.run(ctx, "delete plan node", func(ctx context.Context, tx Tx) (err error) {
		if _, err := ParseLevel(string(level)); err != nil {
			return err
		}
		node, err := tx.PlanNode(ctx, level, id)
		if err != nil {
			return ignoreNotFound(err)
		}

		// overlapping deletes of one tree serialize on its root, then re-check
		if err := tx.LockMacroCycle(ctx, node.MacroID); err != nil {
			return ignoreNotFound(err)
		}
		if _, err := tx.PlanNode(ctx, level, id); err != nil {
			return ignoreNotFound(err)
		}

		if detached, err = tx.DetachHistory(ctx, level, id); err != nil {
			return err
		}
		deleted, err = tx.DeletePlanNode(ctx, level, id)
		return err
	})
	if err != nil {
		return err
	}

	if s.metrics != nil && deleted {
		s.metrics.CounterPlanNodesDeleted.WithLabelValues(string(level)).Inc()
		s.metrics.CounterSetLogsDetached.Add(float64(detached.SetLogs))
		s.metrics.CounterWorkoutLogsDetached.Add(float64(detached.WorkoutLogs))
	}
	return nil
}

func ignoreNotFound(err error) error {
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", failf(ErrValidation, "name is required")
	}
	return name, nil
}

// parentErr reports a missing referenced row as a referential integrity failure.
func parentErr(err error, what string, id int64) error {
	if errors.Is(err, ErrNotFound) {
		return failf(ErrReferentialIntegrity, "%s %d does not exist", what, id)
	}
	return err
}

func validateTargets(sets int, reps []int, weights []float64, rir []int) error {
	if sets < 1 {
		return failf(ErrValidation, "sets must be at least 1")
	}
	if len(reps) > 0 && len(reps) != sets {
		return failf(ErrValidation, "%d target reps given for %d sets", len(reps), sets)
	}
	if len(weights) > 0 && len(weights) != sets {
		return failf(ErrValidation, "%d target weights given for %d sets", len(weights), sets)
	}
	if len(rir) > 0 && len(rir) != sets {
		return failf(ErrValidation, "%d target rir values given for %d sets", len(rir), sets)
	}
	for _, r := range reps {
		if r < 0 {
			return failf(ErrValidation, "target reps must not be negative")
		}
	}
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return failf(ErrValidation, "target weights must be finite and not negative")
		}
	}
	for _, r := range rir {
		if r < 0 {
			return failf(ErrValidation, "target rir must not be negative")
		}
	}
	return nil
}
