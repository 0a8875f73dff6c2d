package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/internal/training"
	"github.com/2beens/gymplan/internal/training/scheme"
)

type levelTable struct {
	table     string
	parentCol string
}

var levelTables = map[training.Level]levelTable{
	training.LevelMacro:           {table: "macro_cycle"},
	training.LevelMini:            {table: "mini_cycle", parentCol: "macro_id"},
	training.LevelWorkout:         {table: "workout", parentCol: "mini_id"},
	training.LevelPlannedExercise: {table: "planned_exercise", parentCol: "workout_id"},
}

func tableFor(level training.Level) (levelTable, error) {
	lt, ok := levelTables[level]
	if !ok {
		return levelTable{}, fmt.Errorf("level %q: %w", level, training.ErrValidation)
	}
	return lt, nil
}

func (t *tx) InsertMacroCycle(ctx context.Context, m training.MacroCycle) (_ training.MacroCycle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.plan.insert_macro_cycle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := t.tx.ExecContext(
		ctx,
		`
			INSERT INTO macro_cycle (owner_id, name, notes, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
		`,
		t.owner, m.Name, m.Notes, formatTime(m.CreatedAt), formatTime(m.UpdatedAt),
	)
	if err != nil {
		return training.MacroCycle{}, constraintErr(err, "macro cycle [insert]")
	}
	if m.ID, err = res.LastInsertId(); err != nil {
		return training.MacroCycle{}, fmt.Errorf("macro cycle [last insert id]: %w", err)
	}
	return m, nil
}

func (t *tx) InsertMiniCycle(ctx context.Context, m training.MiniCycle) (_ training.MiniCycle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.plan.insert_mini_cycle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := t.tx.ExecContext(
		ctx,
		`
			INSERT INTO mini_cycle (owner_id, macro_id, name, notes, position, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`,
		t.owner, m.MacroID, m.Name, m.Notes, m.Position, formatTime(m.CreatedAt), formatTime(m.UpdatedAt),
	)
	if err != nil {
		return training.MiniCycle{}, constraintErr(err, "mini cycle [insert]")
	}
	if m.ID, err = res.LastInsertId(); err != nil {
		return training.MiniCycle{}, fmt.Errorf("mini cycle [last insert id]: %w", err)
	}
	return m, nil
}

func (t *tx) InsertWorkout(ctx context.Context, w training.Workout) (_ training.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.plan.insert_workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := t.tx.ExecContext(
		ctx,
		`
			INSERT INTO workout (owner_id, mini_id, name, notes, position, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`,
		t.owner, w.MiniID, w.Name, w.Notes, w.Position, formatTime(w.CreatedAt), formatTime(w.UpdatedAt),
	)
	if err != nil {
		return training.Workout{}, constraintErr(err, "workout [insert]")
	}
	if w.ID, err = res.LastInsertId(); err != nil {
		return training.Workout{}, fmt.Errorf("workout [last insert id]: %w", err)
	}
	return w, nil
}

type encodedTargets struct {
	reps, weights, rir string
}

func encodeTargets(pe training.PlannedExercise) (encodedTargets, error) {
	weights, err := scheme.Encode(pe.TargetWeights)
	if err != nil {
		return encodedTargets{}, fmt.Errorf("target weights: %w", err)
	}
	return encodedTargets{
		reps:    scheme.EncodeInts(pe.TargetReps),
		weights: weights,
		rir:     scheme.EncodeInts(pe.TargetRIR),
	}, nil
}

func (t *tx) InsertPlannedExercise(ctx context.Context, pe training.PlannedExercise) (_ training.PlannedExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.plan.insert_planned_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	targets, err := encodeTargets(pe)
	if err != nil {
		return training.PlannedExercise{}, err
	}
	res, err := t.tx.ExecContext(
		ctx,
		`
			INSERT INTO planned_exercise
			    (owner_id, workout_id, exercise_id, scheme_id, sets,
			     target_reps, target_weights, target_rir, notes, position, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
		t.owner, pe.WorkoutID, pe.ExerciseID, nullInt64(pe.SchemeID), pe.Sets,
		targets.reps, targets.weights, targets.rir, pe.Notes, pe.Position,
		formatTime(pe.CreatedAt), formatTime(pe.UpdatedAt),
	)
	if err != nil {
		return training.PlannedExercise{}, constraintErr(err, "planned exercise [insert]")
	}
	if pe.ID, err = res.LastInsertId(); err != nil {
		return training.PlannedExercise{}, fmt.Errorf("planned exercise [last insert id]: %w", err)
	}
	return pe, nil
}

const macroColumns = `id, name, notes, created_at, updated_at`

func scanMacro(row scanner) (training.MacroCycle, error) {
	var (
		m                    training.MacroCycle
		createdAt, updatedAt string
	)
	if err := row.Scan(&m.ID, &m.Name, &m.Notes, &createdAt, &updatedAt); err != nil {
		return training.MacroCycle{}, err
	}
	var err error
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return training.MacroCycle{}, err
	}
	if m.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return training.MacroCycle{}, err
	}
	return m, nil
}

const miniColumns = `id, macro_id, name, notes, position, created_at, updated_at`

func scanMini(row scanner) (training.MiniCycle, error) {
	var (
		m                    training.MiniCycle
		createdAt, updatedAt string
	)
	if err := row.Scan(&m.ID, &m.MacroID, &m.Name, &m.Notes, &m.Position, &createdAt, &updatedAt); err != nil {
		return training.MiniCycle{}, err
	}
	var err error
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return training.MiniCycle{}, err
	}
	if m.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return training.MiniCycle{}, err
	}
	return m, nil
}

const workoutColumns = `id, mini_id, name, notes, position, created_at, updated_at`

func scanWorkout(row scanner) (training.Workout, error) {
	var (
		w                    training.Workout
		createdAt, updatedAt string
	)
	if err := row.Scan(&w.ID, &w.MiniID, &w.Name, &w.Notes, &w.Position, &createdAt, &updatedAt); err != nil {
		return training.Workout{}, err
	}
	var err error
	if w.CreatedAt, err = parseTime(createdAt); err != nil {
		return training.Workout{}, err
	}
	if w.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return training.Workout{}, err
	}
	return w, nil
}

const plannedColumns = `
	p.id, p.workout_id, p.exercise_id, e.name, p.scheme_id, p.sets,
	p.target_reps, p.target_weights, p.target_rir, p.notes, p.position, p.created_at, p.updated_at
`

const plannedFrom = `
	FROM planned_exercise p
	JOIN exercise e ON e.id = p.exercise_id AND e.owner_id = p.owner_id
`

func scanPlanned(row scanner) (training.PlannedExercise, error) {
	var (
		pe                   training.PlannedExercise
		schemeID             sql.NullInt64
		reps, weights, rir   string
		createdAt, updatedAt string
	)
	if err := row.Scan(
		&pe.ID, &pe.WorkoutID, &pe.ExerciseID, &pe.ExerciseName, &schemeID, &pe.Sets,
		&reps, &weights, &rir, &pe.Notes, &pe.Position, &createdAt, &updatedAt,
	); err != nil {
		return training.PlannedExercise{}, err
	}
	pe.SchemeID = int64Ptr(schemeID)

	var err error
	if pe.TargetReps, pe.TargetWeights, err = scheme.DecodePair(reps, weights); err != nil {
		return training.PlannedExercise{}, fmt.Errorf("planned exercise %d targets: %w", pe.ID, err)
	}
	if pe.TargetRIR, err = scheme.DecodeInts(rir); err != nil {
		return training.PlannedExercise{}, fmt.Errorf("planned exercise %d rir: %w", pe.ID, err)
	}
	if pe.CreatedAt, err = parseTime(createdAt); err != nil {
		return training.PlannedExercise{}, err
	}
	if pe.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return training.PlannedExercise{}, err
	}
	return pe, nil
}

func (t *tx) GetMacroCycle(ctx context.Context, id int64) (_ training.MacroCycle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.plan.get_macro_cycle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	m, err := scanMacro(t.tx.QueryRowContext(
		ctx,
		`SELECT `+macroColumns+` FROM macro_cycle WHERE owner_id = ? AND id = ?`,
		t.owner, id,
	))
	if err != nil {
		return training.MacroCycle{}, notFound(err, "macro cycle [query row]")
	}
	return m, nil
}

func (t *tx) GetMiniCycle(ctx context.Context, id int64) (_ training.MiniCycle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.plan.get_mini_cycle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	m, err := scanMini(t.tx.QueryRowContext(
		ctx,
		`SELECT `+miniColumns+` FROM mini_cycle WHERE owner_id = ? AND id = ?`,
		t.owner, id,
	))
	if err != nil {
		return training.MiniCycle{}, notFound(err, "mini cycle [query row]")
	}
	return m, nil
}

func (t *tx) GetWorkout(ctx context.Context, id int64) (_ training.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.plan.get_workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	w, err := scanWorkout(t.tx.QueryRowContext(
		ctx,
		`SELECT `+workoutColumns+` FROM workout WHERE owner_id = ? AND id = ?`,
		t.owner, id,
	))
	if err != nil {
		return training.Workout{}, notFound(err, "workout [query row]")
	}
	return w, nil
}

func (t *tx) GetPlannedExercise(ctx context.Context, id int64) (_ training.PlannedExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.plan.get_planned_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	pe, err := scanPlanned(t.tx.QueryRowContext(
		ctx,
		`SELECT `+plannedColumns+plannedFrom+` WHERE p.owner_id = ? AND p.id = ?`,
		t.owner, id,
	))
	if err != nil {
		return training.PlannedExercise{}, notFound(err, "planned exercise [query row]")
	}
	if pe.Categories, err = t.exerciseCategories(ctx, pe.ExerciseID); err != nil {
		return training.PlannedExercise{}, err
	}
	return pe, nil
}

func (t *tx) ListMacroCycles(ctx context.Context) (_ []training.MacroCycle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.plan.list_macro_cycles")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := t.tx.QueryContext(
		ctx,
		`SELECT `+macroColumns+` FROM macro_cycle WHERE owner_id = ? ORDER BY created_at, id`,
		t.owner,
	)
	if err != nil {
		return nil, fmt.Errorf("macro cycles [query]: %w", err)
	}
	defer rows.Close()

	macros := []training.MacroCycle{}
	for rows.Next() {
		m, err := scanMacro(rows)
		if err != nil {
			return nil, fmt.Errorf("macro cycles [rows scan]: %w", err)
		}
		macros = append(macros, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("macro cycles [rows error]: %w", err)
	}
	return macros, nil
}

func (t *tx) CountMacroCycles(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.plan.count_macro_cycles")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := t.tx.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM macro_cycle WHERE owner_id = ?`,
		t.owner,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("macro cycles [count]: %w", err)
	}
	return count, nil
}

func (t *tx) ListMiniCycles(ctx context.Context, macroID int64) (_ []training.MiniCycle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.plan.list_mini_cycles")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := t.tx.QueryContext(
		ctx,
		`SELECT `+miniColumns+` FROM mini_cycle WHERE owner_id = ? AND macro_id = ? ORDER BY position, id`,
		t.owner, macroID,
	)
	if err != nil {
		return nil, fmt.Errorf("mini cycles [query]: %w", err)
	}
	defer rows.Close()

	var minis []training.MiniCycle
	for rows.Next() {
		m, err := scanMini(rows)
		if err != nil {
			return nil, fmt.Errorf("mini cycles [rows scan]: %w", err)
		}
		minis = append(minis, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("mini cycles [rows error]: %w", err)
	}
	return minis, nil
}

func (t *tx) ListWorkouts(ctx context.Context, miniID int64) (_ []training.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.plan.list_workouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := t.tx.QueryContext(
		ctx,
		`SELECT `+workoutColumns+` FROM workout WHERE owner_id = ? AND mini_id = ? ORDER BY position, id`,
		t.owner, miniID,
	)
	if err != nil {
		return nil, fmt.Errorf("workouts [query]: %w", err)
	}
	defer rows.Close()

	var workouts []training.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("workouts [rows scan]: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workouts [rows error]: %w", err)
	}
	return workouts, nil
}

func (t *tx) ListPlannedExercises(ctx context.Context, workoutID int64) (_ []training.PlannedExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.plan.list_planned_exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := t.tx.QueryContext(
		ctx,
		`SELECT `+plannedColumns+plannedFrom+` WHERE p.owner_id = ? AND p.workout_id = ? ORDER BY p.position, p.id`,
		t.owner, workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("planned exercises [query]: %w", err)
	}

	var planned []training.PlannedExercise
	for rows.Next() {
		pe, err := scanPlanned(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("planned exercises [rows scan]: %w", err)
		}
		planned = append(planned, pe)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("planned exercises [rows error]: %w", err)
	}
	rows.Close()

	for i := range planned {
		if planned[i].Categories, err = t.exerciseCategories(ctx, planned[i].ExerciseID); err != nil {
			return nil, err
		}
	}
	return planned, nil
}

func (t *tx) NextPosition(ctx context.Context, level training.Level, parentID int64) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.plan.next_position")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	lt, err := tableFor(level)
	if err != nil {
		return 0, err
	}
	if lt.parentCol == "" {
		return 0, fmt.Errorf("level %q has no parent: %w", level, training.ErrValidation)
	}

	var pos int
	err = t.tx.QueryRowContext(
		ctx,
		fmt.Sprintf(
			`SELECT COALESCE(MAX(position), 0) + 1 FROM %s WHERE owner_id = ? AND %s = ?`,
			lt.table, lt.parentCol,
		),
		t.owner, parentID,
	).Scan(&pos)
	if err != nil {
		return 0, fmt.Errorf("%s [next position]: %w", lt.table, err)
	}
	return pos, nil
}

func (t *tx) PlanNode(ctx context.Context, level training.Level, id int64) (_ training.PlanNode, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.plan.node")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var query string
	switch level {
	case training.LevelMacro:
		query = `SELECT id, 0, id, name, notes, 0 FROM macro_cycle WHERE owner_id = ? AND id = ?`
	case training.LevelMini:
		query = `SELECT id, macro_id, macro_id, name, notes, position FROM mini_cycle WHERE owner_id = ? AND id = ?`
	case training.LevelWorkout:
		query = `
			SELECT w.id, w.mini_id, m.macro_id, w.name, w.notes, w.position
			FROM workout w
			JOIN mini_cycle m ON m.id = w.mini_id AND m.owner_id = w.owner_id
			WHERE w.owner_id = ? AND w.id = ?
		`
	case training.LevelPlannedExercise:
		query = `
			SELECT p.id, p.workout_id, m.macro_id, '', p.notes, p.position
			FROM planned_exercise p
			JOIN workout w ON w.id = p.workout_id AND w.owner_id = p.owner_id
			JOIN mini_cycle m ON m.id = w.mini_id AND m.owner_id = w.owner_id
			WHERE p.owner_id = ? AND p.id = ?
		`
	default:
		return training.PlanNode{}, fmt.Errorf("level %q: %w", level, training.ErrValidation)
	}

	n := training.PlanNode{Level: level}
	err = t.tx.QueryRowContext(ctx, query, t.owner, id).Scan(
		&n.ID, &n.ParentID, &n.MacroID, &n.Name, &n.Notes, &n.Position,
	)
	if err != nil {
		return training.PlanNode{}, notFound(err, string(level)+" [query row]")
	}
	return n, nil
}

func (t *tx) UpdatePlanNode(ctx context.Context, n training.PlanNode, now time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.plan.update_node")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var res sql.Result
	switch n.Level {
	case training.LevelMacro:
		res, err = t.tx.ExecContext(
			ctx,
			`UPDATE macro_cycle SET name = ?, notes = ?, updated_at = ? WHERE owner_id = ? AND id = ?`,
			n.Name, n.Notes, formatTime(now), t.owner, n.ID,
		)
	case training.LevelMini, training.LevelWorkout:
		res, err = t.tx.ExecContext(
			ctx,
			fmt.Sprintf(
				`UPDATE %s SET name = ?, notes = ?, position = ?, updated_at = ? WHERE owner_id = ? AND id = ?`,
				levelTables[n.Level].table,
			),
			n.Name, n.Notes, n.Position, formatTime(now), t.owner, n.ID,
		)
	default:
		return fmt.Errorf("level %q: %w", n.Level, training.ErrValidation)
	}
	if err != nil {
		return constraintErr(err, string(n.Level)+" [update]")
	}

	ok, err := affected(res, string(n.Level)+" [update]")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s %d: %w", n.Level, n.ID, training.ErrNotFound)
	}
	return nil
}

func (t *tx) UpdatePlannedExercise(ctx context.Context, pe training.PlannedExercise, now time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.plan.update_planned_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	targets, err := encodeTargets(pe)
	if err != nil {
		return err
	}
	res, err := t.tx.ExecContext(
		ctx,
		`
			UPDATE planned_exercise
			SET exercise_id = ?, sets = ?, target_reps = ?, target_weights = ?, target_rir = ?,
			    notes = ?, position = ?, updated_at = ?
			WHERE owner_id = ? AND id = ?
		`,
		pe.ExerciseID, pe.Sets, targets.reps, targets.weights, targets.rir,
		pe.Notes, pe.Position, formatTime(now), t.owner, pe.ID,
	)
	if err != nil {
		return constraintErr(err, "planned exercise [update]")
	}

	ok, err := affected(res, "planned exercise [update]")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("planned exercise %d: %w", pe.ID, training.ErrNotFound)
	}
	return nil
}

func (t *tx) LockMacroCycle(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.plan.lock_macro_cycle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	// transactions begin immediate, so the database write lock is already held
	var found int64
	err = t.tx.QueryRowContext(
		ctx,
		`SELECT id FROM macro_cycle WHERE owner_id = ? AND id = ?`,
		t.owner, id,
	).Scan(&found)
	if err != nil {
		return notFound(err, "macro cycle [lock]")
	}
	return nil
}

// subtreePlanned selects the ids of all planned exercises under a node.
// Every query takes (owner, id).
var subtreePlanned = map[training.Level]string{
	training.LevelPlannedExercise: `SELECT p.id FROM planned_exercise p WHERE p.owner_id = ? AND p.id = ?`,
	training.LevelWorkout:         `SELECT p.id FROM planned_exercise p WHERE p.owner_id = ? AND p.workout_id = ?`,
	training.LevelMini: `
		SELECT p.id FROM planned_exercise p
		JOIN workout w ON w.id = p.workout_id
		WHERE p.owner_id = ? AND w.mini_id = ?`,
	training.LevelMacro: `
		SELECT p.id FROM planned_exercise p
		JOIN workout w ON w.id = p.workout_id
		JOIN mini_cycle m ON m.id = w.mini_id
		WHERE p.owner_id = ? AND m.macro_id = ?`,
}

var subtreeWorkouts = map[training.Level]string{
	training.LevelWorkout: `SELECT w.id FROM workout w WHERE w.owner_id = ? AND w.id = ?`,
	training.LevelMini:    `SELECT w.id FROM workout w WHERE w.owner_id = ? AND w.mini_id = ?`,
	training.LevelMacro: `
		SELECT w.id FROM workout w
		JOIN mini_cycle m ON m.id = w.mini_id
		WHERE w.owner_id = ? AND m.macro_id = ?`,
}

func (t *tx) DetachHistory(ctx context.Context, level training.Level, id int64) (_ training.DetachResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.plan.detach_history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	planned, ok := subtreePlanned[level]
	if !ok {
		return training.DetachResult{}, fmt.Errorf("level %q: %w", level, training.ErrValidation)
	}

	var result training.DetachResult
	res, err := t.tx.ExecContext(
		ctx,
		`UPDATE set_log SET planned_exercise_id = NULL WHERE owner_id = ? AND planned_exercise_id IN (`+planned+`)`,
		t.owner, t.owner, id,
	)
	if err != nil {
		return training.DetachResult{}, fmt.Errorf("set logs [detach]: %w", err)
	}
	if result.SetLogs, err = res.RowsAffected(); err != nil {
		return training.DetachResult{}, fmt.Errorf("set logs [rows affected]: %w", err)
	}

	workouts, ok := subtreeWorkouts[level]
	if !ok {
		return result, nil
	}
	res, err = t.tx.ExecContext(
		ctx,
		`UPDATE workout_log SET workout_id = NULL WHERE owner_id = ? AND workout_id IN (`+workouts+`)`,
		t.owner, t.owner, id,
	)
	if err != nil {
		return training.DetachResult{}, fmt.Errorf("workout logs [detach]: %w", err)
	}
	if result.WorkoutLogs, err = res.RowsAffected(); err != nil {
		return training.DetachResult{}, fmt.Errorf("workout logs [rows affected]: %w", err)
	}
	return result, nil
}

func (t *tx) DeletePlanNode(ctx context.Context, level training.Level, id int64) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.plan.delete_node")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	lt, err := tableFor(level)
	if err != nil {
		return false, err
	}
	res, err := t.tx.ExecContext(
		ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE owner_id = ? AND id = ?`, lt.table),
		t.owner, id,
	)
	if err != nil {
		return false, constraintErr(err, lt.table+" [delete]")
	}
	return affected(res, lt.table+" [delete]")
}

func (t *tx) NextUnloggedWorkout(ctx context.Context) (_ training.NextWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.plan.next_unlogged_workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		next                 training.NextWorkout
		createdAt, updatedAt string
	)
	err = t.tx.QueryRowContext(
		ctx,
		`
			SELECT w.id, w.mini_id, w.name, w.notes, w.position, w.created_at, w.updated_at,
			       m.name, mc.id, mc.name
			FROM workout w
			JOIN mini_cycle m ON m.id = w.mini_id AND m.owner_id = w.owner_id
			JOIN macro_cycle mc ON mc.id = m.macro_id AND mc.owner_id = m.owner_id
			WHERE w.owner_id = ?
			  AND NOT EXISTS (
			      SELECT 1 FROM workout_log l WHERE l.owner_id = w.owner_id AND l.workout_id = w.id
			  )
			ORDER BY mc.id, m.position, m.id, w.position, w.id
			LIMIT 1
		`,
		t.owner,
	).Scan(
		&next.ID, &next.MiniID, &next.Name, &next.Notes, &next.Position, &createdAt, &updatedAt,
		&next.MiniName, &next.MacroID, &next.MacroName,
	)
	if err != nil {
		return training.NextWorkout{}, notFound(err, "next workout [query row]")
	}
	if next.CreatedAt, err = parseTime(createdAt); err != nil {
		return training.NextWorkout{}, err
	}
	if next.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return training.NextWorkout{}, err
	}
	return next, nil
}
