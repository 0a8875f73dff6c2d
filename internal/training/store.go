package training

import (
	"context"
	"time"
)

// Store opens transactions bound to a single owner. Every statement a Tx
// runs is filtered by that owner and every row it inserts is stamped with it.
type Store interface {
	WithTx(ctx context.Context, owner string, fn func(ctx context.Context, tx Tx) error) error
	Close() error
}

// Tx is the set of primitives the service composes into operations. Missing
// or foreign rows are reported as ErrNotFound; constraint failures are
// translated to ErrReferentialIntegrity and ErrDuplicateSet.
type Tx interface {
	LibraryTx
	PlanTx
	LogTx
}

type LibraryTx interface {
	// UpsertCategory inserts the category or returns the existing one with the same name.
	UpsertCategory(ctx context.Context, name string, now time.Time) (Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
	DeleteCategory(ctx context.Context, id int64) (bool, error)

	UpsertExercise(ctx context.Context, name, defaultNotes string, now time.Time) (Exercise, error)
	GetExercise(ctx context.Context, id int64) (Exercise, error)
	GetExerciseByName(ctx context.Context, name string) (Exercise, error)
	ListExercises(ctx context.Context) ([]Exercise, error)
	DeleteExercise(ctx context.Context, id int64) (bool, error)
	AttachCategory(ctx context.Context, exerciseID, categoryID int64) error
	DetachCategory(ctx context.Context, exerciseID, categoryID int64) error

	UpsertScheme(ctx context.Context, s Scheme, now time.Time) (Scheme, error)
	GetScheme(ctx context.Context, id int64) (Scheme, error)
	ListSchemes(ctx context.Context) ([]Scheme, error)
	DeleteScheme(ctx context.Context, id int64) (bool, error)
}

type PlanTx interface {
	InsertMacroCycle(ctx context.Context, m MacroCycle) (MacroCycle, error)
	InsertMiniCycle(ctx context.Context, m MiniCycle) (MiniCycle, error)
	InsertWorkout(ctx context.Context, w Workout) (Workout, error)
	InsertPlannedExercise(ctx context.Context, pe PlannedExercise) (PlannedExercise, error)

	GetMacroCycle(ctx context.Context, id int64) (MacroCycle, error)
	GetMiniCycle(ctx context.Context, id int64) (MiniCycle, error)
	GetWorkout(ctx context.Context, id int64) (Workout, error)
	GetPlannedExercise(ctx context.Context, id int64) (PlannedExercise, error)

	ListMacroCycles(ctx context.Context) ([]MacroCycle, error)
	CountMacroCycles(ctx context.Context) (int, error)
	ListMiniCycles(ctx context.Context, macroID int64) ([]MiniCycle, error)
	ListWorkouts(ctx context.Context, miniID int64) ([]Workout, error)
	ListPlannedExercises(ctx context.Context, workoutID int64) ([]PlannedExercise, error)

	// NextPosition returns one past the highest position among the children of parentID.
	NextPosition(ctx context.Context, level Level, parentID int64) (int, error)
	PlanNode(ctx context.Context, level Level, id int64) (PlanNode, error)
	UpdatePlanNode(ctx context.Context, n PlanNode, now time.Time) error
	UpdatePlannedExercise(ctx context.Context, pe PlannedExercise, now time.Time) error

	// LockMacroCycle blocks concurrent writers of the same plan tree until the
	// transaction ends.
	LockMacroCycle(ctx context.Context, id int64) error
	// DetachHistory clears the plan references of every log row pointing into
	// the subtree rooted at the given node.
	DetachHistory(ctx context.Context, level Level, id int64) (DetachResult, error)
	DeletePlanNode(ctx context.Context, level Level, id int64) (bool, error)

	NextUnloggedWorkout(ctx context.Context) (NextWorkout, error)
}

type LogFilter struct {
	WorkoutID  *int64
	ExerciseID *int64
	From       *time.Time
	To         *time.Time
}

type LogTx interface {
	InsertWorkoutLog(ctx context.Context, l WorkoutLog) (WorkoutLog, error)
	// GetWorkoutLog returns the log without its sets. With lock set the row
	// stays locked until the transaction ends.
	GetWorkoutLog(ctx context.Context, id int64, lock bool) (WorkoutLog, error)
	ListWorkoutLogs(ctx context.Context, f LogFilter) ([]WorkoutLog, error)
	FinalizeWorkoutLog(ctx context.Context, id int64, at time.Time) error
	UpdateWorkoutLogNotes(ctx context.Context, id int64, notes string, now time.Time) error
	DeleteWorkoutLog(ctx context.Context, id int64) (bool, error)

	InsertSetLog(ctx context.Context, s SetLog) (SetLog, error)
	GetSetLog(ctx context.Context, id int64) (SetLog, error)
	// ListSetLogs returns the sets of a log by set number, optionally only those of one exercise.
	ListSetLogs(ctx context.Context, workoutLogID int64, exerciseID *int64) ([]SetLog, error)
	UpdateSetLogNotes(ctx context.Context, id int64, notes string) error
}
