package training

import "time"

// Level names one tier of the plan hierarchy.
type Level string

const (
	LevelMacro           Level = "macro"
	LevelMini            Level = "mini"
	LevelWorkout         Level = "workout"
	LevelPlannedExercise Level = "planned_exercise"
)

var Levels = []Level{
	LevelMacro,
	LevelMini,
	LevelWorkout,
	LevelPlannedExercise,
}

func ParseLevel(s string) (Level, error) {
	for _, l := range Levels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", failf(ErrValidation, "unknown plan level %q", s)
}

// Structural reports whether the level carries a name and notes of its own.
func (l Level) Structural() bool {
	return l == LevelMacro || l == LevelMini || l == LevelWorkout
}

type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type Exercise struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	DefaultNotes string    `json:"defaultNotes"`
	Categories   []string  `json:"categories"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Scheme is a reusable rep/weight prescription; position i of both
// sequences describes set i+1.
type Scheme struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	TargetReps    []int     `json:"targetReps"`
	TargetWeights []float64 `json:"targetWeights"`
	CreatedAt     time.Time `json:"createdAt"`
}

type MacroCycle struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type MiniCycle struct {
	ID        int64     `json:"id"`
	MacroID   int64     `json:"macroId"`
	Name      string    `json:"name"`
	Notes     string    `json:"notes"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Workout struct {
	ID        int64     `json:"id"`
	MiniID    int64     `json:"miniId"`
	Name      string    `json:"name"`
	Notes     string    `json:"notes"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PlannedExercise struct {
	ID            int64     `json:"id"`
	WorkoutID     int64     `json:"workoutId"`
	ExerciseID    int64     `json:"exerciseId"`
	ExerciseName  string    `json:"exerciseName"`
	Categories    []string  `json:"categories"`
	SchemeID      *int64    `json:"schemeId"`
	Sets          int       `json:"sets"`
	TargetReps    []int     `json:"targetReps"`
	TargetWeights []float64 `json:"targetWeights"`
	TargetRIR     []int     `json:"targetRir"`
	Notes         string    `json:"notes"`
	Position      int       `json:"position"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// WorkoutLog is one performed session. WorkoutID is nil once the planned
// workout it fulfilled has been deleted.
type WorkoutLog struct {
	ID           int64      `json:"id"`
	WorkoutID    *int64     `json:"workoutId"`
	CompletedAt  time.Time  `json:"completedAt"`
	FinalizedAt  *time.Time `json:"finalizedAt"`
	OverallNotes string     `json:"overallNotes"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	Sets []SetLog `json:"sets"`
}

func (l WorkoutLog) Finalized() bool {
	return l.FinalizedAt != nil
}

// SetLog is one performed set. The plan and exercise references may be
// cleared later; ExerciseName keeps what was performed.
type SetLog struct {
	ID                int64     `json:"id"`
	WorkoutLogID      int64     `json:"workoutLogId"`
	PlannedExerciseID *int64    `json:"plannedExerciseId"`
	ExerciseID        *int64    `json:"exerciseId"`
	ExerciseName      string    `json:"exerciseName"`
	SetNumber         int       `json:"setNumber"`
	Weight            float64   `json:"weight"`
	Reps              int       `json:"reps"`
	RPE               *float64  `json:"rpe"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"createdAt"`
}

// PlanNode is the level-agnostic view of a plan node, used by updates and
// deletes. MacroID is the root of the tree the node belongs to.
type PlanNode struct {
	Level    Level
	ID       int64
	ParentID int64
	MacroID  int64
	Name     string
	Notes    string
	Position int
}

type PlanTree struct {
	MacroCycle
	MiniCycles []MiniCycleNode `json:"miniCycles"`
}

type MiniCycleNode struct {
	MiniCycle
	Workouts []WorkoutNode `json:"workouts"`
}

type WorkoutNode struct {
	Workout
	Exercises []PlannedExercise `json:"exercises"`
}

// NextWorkout is the first planned workout without a log, with the names of
// the cycles around it.
type NextWorkout struct {
	Workout
	MiniName  string `json:"miniName"`
	MacroID   int64  `json:"macroId"`
	MacroName string `json:"macroName"`
}

// DetachResult counts the history rows whose plan references were cleared.
type DetachResult struct {
	SetLogs     int64
	WorkoutLogs int64
}
