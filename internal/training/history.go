package training

import (
	"context"
	"errors"
	"math"
	"time"
)

type SetInput struct {
	WorkoutLogID      int64    `json:"workoutLogId"`
	PlannedExerciseID *int64   `json:"plannedExerciseId"`
	ExerciseID        *int64   `json:"exerciseId"`
	SetNumber         int      `json:"setNumber"`
	Weight            float64  `json:"weight"`
	Reps              int      `json:"reps"`
	RPE               *float64 `json:"rpe"`
	Notes             string   `json:"notes"`
}

// SessionInput is a whole performed workout. Sets left with a zero set
// number are numbered by their position in the session.
type SessionInput struct {
	WorkoutID   int64      `json:"workoutId"`
	CompletedAt *time.Time `json:"completedAt"`
	Notes       string     `json:"notes"`
	Sets        []SetInput `json:"sets"`
}

type HistoryQuery struct {
	WorkoutID  *int64
	ExerciseID *int64
	From       *time.Time
	To         *time.Time
}

func (s *Service) RecordWorkout(ctx context.Context, workoutID int64, notes string) (WorkoutLog, error) {
	var created WorkoutLog
	err := s.run(ctx, "record workout", func(ctx context.Context, tx Tx) (err error) {
		created, err = s.insertWorkoutLog(ctx, tx, workoutID, nil, notes)
		return err
	})
	return created, err
}

func (s *Service) insertWorkoutLog(ctx context.Context, tx Tx, workoutID int64, completedAt *time.Time, notes string) (WorkoutLog, error) {
	if _, err := tx.GetWorkout(ctx, workoutID); err != nil {
		return WorkoutLog{}, parentErr(err, "workout", workoutID)
	}
	now := s.stamp()
	l := WorkoutLog{
		WorkoutID:    &workoutID,
		CompletedAt:  now,
		OverallNotes: notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if completedAt != nil {
		l.CompletedAt = completedAt.UTC()
	}
	return tx.InsertWorkoutLog(ctx, l)
}

// RecordSet appends one set to an open workout log.
func (s *Service) RecordSet(ctx context.Context, in SetInput) (SetLog, error) {
	var created SetLog
	err := s.run(ctx, "record set", func(ctx context.Context, tx Tx) error {
		l, err := tx.GetWorkoutLog(ctx, in.WorkoutLogID, true)
		if err != nil {
			return parentErr(err, "workout log", in.WorkoutLogID)
		}
		if l.Finalized() {
			return failf(ErrLogFinalized, "workout log %d only accepts note changes", l.ID)
		}
		created, err = s.insertSet(ctx, tx, in)
		return err
	})
	s.countSets(err, 1)
	return created, err
}

func (s *Service) insertSet(ctx context.Context, tx Tx, in SetInput) (SetLog, error) {
	if err := validateSet(in); err != nil {
		return SetLog{}, err
	}

	set := SetLog{
		WorkoutLogID:      in.WorkoutLogID,
		PlannedExerciseID: in.PlannedExerciseID,
		SetNumber:         in.SetNumber,
		Weight:            in.Weight,
		Reps:              in.Reps,
		RPE:               in.RPE,
		Notes:             in.Notes,
		CreatedAt:         s.stamp(),
	}

	switch {
	case in.PlannedExerciseID != nil:
		pe, err := tx.GetPlannedExercise(ctx, *in.PlannedExerciseID)
		if err != nil {
			return SetLog{}, parentErr(err, "planned exercise", *in.PlannedExerciseID)
		}
		if in.ExerciseID != nil && *in.ExerciseID != pe.ExerciseID {
			return SetLog{}, failf(ErrValidation, "exercise %d is not the one planned", *in.ExerciseID)
		}
		set.ExerciseID = &pe.ExerciseID
		set.ExerciseName = pe.ExerciseName
	case in.ExerciseID != nil:
		exercise, err := tx.GetExercise(ctx, *in.ExerciseID)
		if err != nil {
			return SetLog{}, parentErr(err, "exercise", *in.ExerciseID)
		}
		set.ExerciseID = &exercise.ID
		set.ExerciseName = exercise.Name
	}

	return tx.InsertSetLog(ctx, set)
}

func validateSet(in SetInput) error {
	if in.SetNumber < 1 {
		return failf(ErrValidation, "set number must be a positive integer")
	}
	if in.Weight < 0 || math.IsNaN(in.Weight) || math.IsInf(in.Weight, 0) {
		return failf(ErrValidation, "weight must be finite and not negative")
	}
	if in.Reps < 0 {
		return failf(ErrValidation, "reps must not be negative")
	}
	if in.RPE != nil && (math.IsNaN(*in.RPE) || *in.RPE <= 0 || *in.RPE > 10) {
		return failf(ErrValidation, "rpe must be within (0, 10]")
	}
	return nil
}

func (s *Service) countSets(err error, n int) {
	if s.metrics == nil {
		return
	}
	switch {
	case err == nil:
		s.metrics.CounterSetsRecorded.Add(float64(n))
	case errors.Is(err, ErrDuplicateSet):
		s.metrics.CounterDuplicateSets.Inc()
	}
}

// LogSession records a workout log with all of its sets and finalizes it.
func (s *Service) LogSession(ctx context.Context, in SessionInput) (WorkoutLog, error) {
	var created WorkoutLog
	err := s.run(ctx, "log session", func(ctx context.Context, tx Tx) error {
		if len(in.Sets) == 0 {
			return failf(ErrValidation, "a session needs at least one set")
		}

		l, err := s.insertWorkoutLog(ctx, tx, in.WorkoutID, in.CompletedAt, in.Notes)
		if err != nil {
			return err
		}

		l.Sets = make([]SetLog, 0, len(in.Sets))
		for i, setIn := range in.Sets {
			setIn.WorkoutLogID = l.ID
			if setIn.SetNumber == 0 {
				setIn.SetNumber = i + 1
			}
			set, err := s.insertSet(ctx, tx, setIn)
			if err != nil {
				return err
			}
			l.Sets = append(l.Sets, set)
		}

		now := s.stamp()
		if err := tx.FinalizeWorkoutLog(ctx, l.ID, now); err != nil {
			return err
		}
		l.FinalizedAt = &now
		l.UpdatedAt = now
		created = l
		return nil
	})
	s.countSets(err, len(in.Sets))
	return created, err
}

// FinishWorkout finalizes an open log; afterwards only notes may change.
func (s *Service) FinishWorkout(ctx context.Context, logID int64) (WorkoutLog, error) {
	var finished WorkoutLog
	err := s.run(ctx, "finish workout", func(ctx context.Context, tx Tx) error {
		l, err := tx.GetWorkoutLog(ctx, logID, true)
		if err != nil {
			return err
		}
		if l.Finalized() {
			return failf(ErrLogFinalized, "workout log %d is already finished", l.ID)
		}

		now := s.stamp()
		if err := tx.FinalizeWorkoutLog(ctx, l.ID, now); err != nil {
			return err
		}
		l.FinalizedAt = &now
		l.UpdatedAt = now

		if l.Sets, err = listSets(ctx, tx, l.ID, nil); err != nil {
			return err
		}
		finished = l
		return nil
	})
	return finished, err
}

func (s *Service) AmendWorkoutNotes(ctx context.Context, logID int64, notes string) error {
	return s.run(ctx, "amend workout notes", func(ctx context.Context, tx Tx) error {
		if _, err := tx.GetWorkoutLog(ctx, logID, true); err != nil {
			return err
		}
		return tx.UpdateWorkoutLogNotes(ctx, logID, notes, s.stamp())
	})
}

func (s *Service) AmendSetNotes(ctx context.Context, setID int64, notes string) error {
	return s.run(ctx, "amend set notes", func(ctx context.Context, tx Tx) error {
		if _, err := tx.GetSetLog(ctx, setID); err != nil {
			return err
		}
		return tx.UpdateSetLogNotes(ctx, setID, notes)
	})
}

// DeleteWorkoutLog removes a log together with its sets.
func (s *Service) DeleteWorkoutLog(ctx context.Context, logID int64) error {
	return s.run(ctx, "delete workout log", func(ctx context.Context, tx Tx) error {
		deleted, err := tx.DeleteWorkoutLog(ctx, logID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrNotFound
		}
		return nil
	})
}

func (s *Service) GetWorkoutLog(ctx context.Context, logID int64) (WorkoutLog, error) {
	var l WorkoutLog
	err := s.run(ctx, "get workout log", func(ctx context.Context, tx Tx) (err error) {
		if l, err = tx.GetWorkoutLog(ctx, logID, false); err != nil {
			return err
		}
		l.Sets, err = listSets(ctx, tx, l.ID, nil)
		return err
	})
	return l, err
}

// ListHistory returns the logs of a workout or an exercise, most recent
// first. With an exercise filter only that exercise's sets are included.
func (s *Service) ListHistory(ctx context.Context, q HistoryQuery) ([]WorkoutLog, error) {
	var history []WorkoutLog
	err := s.run(ctx, "list history", func(ctx context.Context, tx Tx) error {
		if q.WorkoutID == nil && q.ExerciseID == nil {
			return failf(ErrValidation, "a workout or an exercise is required")
		}
		if q.From != nil && q.To != nil && q.From.After(*q.To) {
			return failf(ErrValidation, "date range starts after it ends")
		}
		if q.WorkoutID != nil {
			if _, err := tx.GetWorkout(ctx, *q.WorkoutID); err != nil {
				return err
			}
		}
		if q.ExerciseID != nil {
			if _, err := tx.GetExercise(ctx, *q.ExerciseID); err != nil {
				return err
			}
		}

		logs, err := tx.ListWorkoutLogs(ctx, LogFilter(q))
		if err != nil {
			return err
		}

		history = make([]WorkoutLog, 0, len(logs))
		for _, l := range logs {
			if l.Sets, err = listSets(ctx, tx, l.ID, q.ExerciseID); err != nil {
				return err
			}
			if q.ExerciseID != nil && len(l.Sets) == 0 {
				continue
			}
			history = append(history, l)
		}
		return nil
	})
	return history, err
}

func listSets(ctx context.Context, tx Tx, logID int64, exerciseID *int64) ([]SetLog, error) {
	sets, err := tx.ListSetLogs(ctx, logID, exerciseID)
	if err != nil {
		return nil, err
	}
	if sets == nil {
		sets = []SetLog{}
	}
	return sets, nil
}
