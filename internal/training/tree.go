package training

import "context"

// ListPlanTree returns the macro cycle with all of its descendants, each
// level ordered by position and then creation.
func (s *Service) ListPlanTree(ctx context.Context, macroID int64) (PlanTree, error) {
	var tree PlanTree
	err := s.run(ctx, "list plan tree", func(ctx context.Context, tx Tx) (err error) {
		tree, err = loadPlanTree(ctx, tx, macroID)
		return err
	})
	return tree, err
}

func loadPlanTree(ctx context.Context, tx Tx, macroID int64) (PlanTree, error) {
	macro, err := tx.GetMacroCycle(ctx, macroID)
	if err != nil {
		return PlanTree{}, err
	}

	minis, err := tx.ListMiniCycles(ctx, macroID)
	if err != nil {
		return PlanTree{}, err
	}

	tree := PlanTree{
		MacroCycle: macro,
		MiniCycles: make([]MiniCycleNode, 0, len(minis)),
	}
	for _, mini := range minis {
		workouts, err := tx.ListWorkouts(ctx, mini.ID)
		if err != nil {
			return PlanTree{}, err
		}

		miniNode := MiniCycleNode{
			MiniCycle: mini,
			Workouts:  make([]WorkoutNode, 0, len(workouts)),
		}
		for _, w := range workouts {
			exercises, err := tx.ListPlannedExercises(ctx, w.ID)
			if err != nil {
				return PlanTree{}, err
			}
			if exercises == nil {
				exercises = []PlannedExercise{}
			}
			miniNode.Workouts = append(miniNode.Workouts, WorkoutNode{
				Workout:   w,
				Exercises: exercises,
			})
		}
		tree.MiniCycles = append(tree.MiniCycles, miniNode)
	}

	return tree, nil
}

// NextWorkout returns the first workout, in plan order, that has not been
// logged yet. ErrNotFound means every planned workout has a log.
func (s *Service) NextWorkout(ctx context.Context) (NextWorkout, error) {
	var next NextWorkout
	err := s.run(ctx, "next workout", func(ctx context.Context, tx Tx) (err error) {
		next, err = tx.NextUnloggedWorkout(ctx)
		return err
	})
	return next, err
}
