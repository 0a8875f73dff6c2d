package training

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// PlanTemplate describes a macro cycle of identical weeks.
type PlanTemplate struct {
	Name     string            `json:"name"`
	Notes    string            `json:"notes"`
	Weeks    int               `json:"weeks"`
	Workouts []WorkoutTemplate `json:"workouts"`
}

type WorkoutTemplate struct {
	Name      string             `json:"name"`
	Notes     string             `json:"notes"`
	Exercises []ExerciseTemplate `json:"exercises"`
}

// ExerciseTemplate names its exercise; the name is resolved against the library.
type ExerciseTemplate struct {
	ExerciseName  string    `json:"exerciseName"`
	SchemeID      *int64    `json:"schemeId"`
	Sets          int       `json:"sets"`
	TargetReps    []int     `json:"targetReps"`
	TargetWeights []float64 `json:"targetWeights"`
	TargetRIR     []int     `json:"targetRir"`
	Notes         string    `json:"notes"`
}

const maxTemplateWeeks = 104

// BuildMacroCycle creates a macro cycle with one mini cycle per week, named
// "Week 1".."Week N", each holding the same workouts. Nothing is created if
// any exercise name is unknown.
func (s *Service) BuildMacroCycle(ctx context.Context, tmpl PlanTemplate) (PlanTree, error) {
	var tree PlanTree
	err := s.run(ctx, "build macro cycle", func(ctx context.Context, tx Tx) error {
		if tmpl.Weeks < 1 || tmpl.Weeks > maxTemplateWeeks {
			return failf(ErrValidation, "weeks must be between 1 and %d", maxTemplateWeeks)
		}

		exerciseIDs, err := resolveExercises(ctx, tx, tmpl.Workouts)
		if err != nil {
			return err
		}

		macro, err := s.createMacroCycle(ctx, tx, tmpl.Name, tmpl.Notes)
		if err != nil {
			return err
		}

		for week := 1; week <= tmpl.Weeks; week++ {
			mini, err := s.createMiniCycle(ctx, tx, macro.ID, fmt.Sprintf("Week %d", week), "")
			if err != nil {
				return err
			}
			for _, wt := range tmpl.Workouts {
				w, err := s.createWorkout(ctx, tx, mini.ID, wt.Name, wt.Notes)
				if err != nil {
					return err
				}
				for _, et := range wt.Exercises {
					_, err := s.createPlannedExercise(ctx, tx, PlannedExerciseInput{
						WorkoutID:     w.ID,
						ExerciseID:    exerciseIDs[et.ExerciseName],
						SchemeID:      et.SchemeID,
						Sets:          et.Sets,
						TargetReps:    et.TargetReps,
						TargetWeights: et.TargetWeights,
						TargetRIR:     et.TargetRIR,
						Notes:         et.Notes,
					})
					if err != nil {
						return err
					}
				}
			}
		}

		tree, err = loadPlanTree(ctx, tx, macro.ID)
		return err
	})
	return tree, err
}

func resolveExercises(ctx context.Context, tx Tx, workouts []WorkoutTemplate) (map[string]int64, error) {
	ids := make(map[string]int64)
	var missing []string
	for _, wt := range workouts {
		for _, et := range wt.Exercises {
			if strings.TrimSpace(et.ExerciseName) == "" {
				return nil, failf(ErrValidation, "workout %q: exercise name is empty", wt.Name)
			}
			if _, seen := ids[et.ExerciseName]; seen || slices.Contains(missing, et.ExerciseName) {
				continue
			}
			exercise, err := tx.GetExerciseByName(ctx, et.ExerciseName)
			if errors.Is(err, ErrNotFound) {
				missing = append(missing, et.ExerciseName)
				continue
			}
			if err != nil {
				return nil, err
			}
			ids[et.ExerciseName] = exercise.ID
		}
	}

	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, failf(ErrReferentialIntegrity, "unknown exercises: %s", strings.Join(missing, ", "))
	}
	return ids, nil
}
