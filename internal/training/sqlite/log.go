package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/internal/training"
	"github.com/2beens/gymplan/pkg"
)

func (t *tx) InsertWorkoutLog(ctx context.Context, l training.WorkoutLog) (_ training.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.log.insert_workout_log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := t.tx.ExecContext(
		ctx,
		`
			INSERT INTO workout_log
			    (owner_id, workout_id, completed_at, finalized_at, overall_notes, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`,
		t.owner, nullInt64(l.WorkoutID), formatTime(l.CompletedAt), formatNullTime(l.FinalizedAt),
		l.OverallNotes, formatTime(l.CreatedAt), formatTime(l.UpdatedAt),
	)
	if err != nil {
		return training.WorkoutLog{}, constraintErr(err, "workout log [insert]")
	}
	if l.ID, err = res.LastInsertId(); err != nil {
		return training.WorkoutLog{}, fmt.Errorf("workout log [last insert id]: %w", err)
	}
	return l, nil
}

const workoutLogColumns = `l.id, l.workout_id, l.completed_at, l.finalized_at, l.overall_notes, l.created_at, l.updated_at`

func scanWorkoutLog(row scanner) (training.WorkoutLog, error) {
	var (
		l                                 training.WorkoutLog
		workoutID                         sql.NullInt64
		completedAt, createdAt, updatedAt string
		finalizedAt                       sql.NullString
	)
	if err := row.Scan(&l.ID, &workoutID, &completedAt, &finalizedAt, &l.OverallNotes, &createdAt, &updatedAt); err != nil {
		return training.WorkoutLog{}, err
	}
	l.WorkoutID = int64Ptr(workoutID)

	var err error
	if l.CompletedAt, err = parseTime(completedAt); err != nil {
		return training.WorkoutLog{}, err
	}
	if l.FinalizedAt, err = parseNullTime(finalizedAt); err != nil {
		return training.WorkoutLog{}, err
	}
	if l.CreatedAt, err = parseTime(createdAt); err != nil {
		return training.WorkoutLog{}, err
	}
	if l.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return training.WorkoutLog{}, err
	}
	return l, nil
}

// GetWorkoutLog ignores lock: every transaction already holds the database
// write lock from the moment it begins.
func (t *tx) GetWorkoutLog(ctx context.Context, id int64, _ bool) (_ training.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.log.get_workout_log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	l, err := scanWorkoutLog(t.tx.QueryRowContext(
		ctx,
		`SELECT `+workoutLogColumns+` FROM workout_log l WHERE l.owner_id = ? AND l.id = ?`,
		t.owner, id,
	))
	if err != nil {
		return training.WorkoutLog{}, notFound(err, "workout log [query row]")
	}
	return l, nil
}

func (t *tx) ListWorkoutLogs(ctx context.Context, f training.LogFilter) (_ []training.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.log.list_workout_logs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var query strings.Builder
	query.WriteString(`SELECT ` + workoutLogColumns + ` FROM workout_log l WHERE l.owner_id = ?`)
	args := []any{t.owner}
	if f.WorkoutID != nil {
		query.WriteString(` AND l.workout_id = ?`)
		args = append(args, *f.WorkoutID)
	}
	if f.ExerciseID != nil {
		query.WriteString(` AND EXISTS (SELECT 1 FROM set_log s WHERE s.workout_log_id = l.id AND s.exercise_id = ?)`)
		args = append(args, *f.ExerciseID)
	}
	if f.From != nil {
		query.WriteString(` AND l.completed_at >= ?`)
		args = append(args, formatTime(*f.From))
	}
	if f.To != nil {
		query.WriteString(` AND l.completed_at <= ?`)
		args = append(args, formatTime(*f.To))
	}
	query.WriteString(` ORDER BY l.completed_at DESC, l.id DESC`)

	rows, err := t.tx.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("workout logs [query]: %w", err)
	}
	defer rows.Close()

	var logs []training.WorkoutLog
	for rows.Next() {
		l, err := scanWorkoutLog(rows)
		if err != nil {
			return nil, fmt.Errorf("workout logs [rows scan]: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout logs [rows error]: %w", err)
	}
	return logs, nil
}

func (t *tx) FinalizeWorkoutLog(ctx context.Context, id int64, at time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.log.finalize_workout_log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := t.tx.ExecContext(
		ctx,
		`UPDATE workout_log SET finalized_at = ?, updated_at = ? WHERE owner_id = ? AND id = ? AND finalized_at IS NULL`,
		formatTime(at), formatTime(at), t.owner, id,
	)
	if err != nil {
		return fmt.Errorf("workout log [finalize]: %w", err)
	}
	ok, err := affected(res, "workout log [finalize]")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("open workout log %d: %w", id, training.ErrNotFound)
	}
	return nil
}

func (t *tx) UpdateWorkoutLogNotes(ctx context.Context, id int64, notes string, now time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.log.update_workout_log_notes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := t.tx.ExecContext(
		ctx,
		`UPDATE workout_log SET overall_notes = ?, updated_at = ? WHERE owner_id = ? AND id = ?`,
		notes, formatTime(now), t.owner, id,
	)
	if err != nil {
		return fmt.Errorf("workout log [update notes]: %w", err)
	}
	ok, err := affected(res, "workout log [update notes]")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("workout log %d: %w", id, training.ErrNotFound)
	}
	return nil
}

func (t *tx) DeleteWorkoutLog(ctx context.Context, id int64) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.log.delete_workout_log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := t.tx.ExecContext(ctx, `DELETE FROM workout_log WHERE owner_id = ? AND id = ?`, t.owner, id)
	if err != nil {
		return false, fmt.Errorf("workout log [delete]: %w", err)
	}
	return affected(res, "workout log [delete]")
}

func (t *tx) InsertSetLog(ctx context.Context, s training.SetLog) (_ training.SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.log.insert_set_log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var rpe sql.NullFloat64
	if s.RPE != nil {
		rpe = sql.NullFloat64{Float64: *s.RPE, Valid: true}
	}

	res, err := t.tx.ExecContext(
		ctx,
		`
			INSERT INTO set_log
			    (owner_id, workout_log_id, planned_exercise_id, exercise_id, exercise_name,
			     set_number, weight, reps, rpe, notes, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
		t.owner, s.WorkoutLogID, nullInt64(s.PlannedExerciseID), nullInt64(s.ExerciseID), s.ExerciseName,
		s.SetNumber, s.Weight, s.Reps, rpe, s.Notes, formatTime(s.CreatedAt),
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return training.SetLog{}, fmt.Errorf("set %d of workout log %d: %w", s.SetNumber, s.WorkoutLogID, training.ErrDuplicateSet)
		}
		return training.SetLog{}, constraintErr(err, "set log [insert]")
	}
	if s.ID, err = res.LastInsertId(); err != nil {
		return training.SetLog{}, fmt.Errorf("set log [last insert id]: %w", err)
	}
	return s, nil
}

const setLogColumns = `
	id, workout_log_id, planned_exercise_id, exercise_id, exercise_name,
	set_number, weight, reps, rpe, notes, created_at
`

func scanSetLog(row scanner) (training.SetLog, error) {
	var (
		s                     training.SetLog
		plannedID, exerciseID sql.NullInt64
		rpe                   sql.NullFloat64
		createdAt             string
	)
	if err := row.Scan(
		&s.ID, &s.WorkoutLogID, &plannedID, &exerciseID, &s.ExerciseName,
		&s.SetNumber, &s.Weight, &s.Reps, &rpe, &s.Notes, &createdAt,
	); err != nil {
		return training.SetLog{}, err
	}
	s.PlannedExerciseID = int64Ptr(plannedID)
	s.ExerciseID = int64Ptr(exerciseID)
	if rpe.Valid {
		v := rpe.Float64
		s.RPE = &v
	}

	var err error
	if s.CreatedAt, err = parseTime(createdAt); err != nil {
		return training.SetLog{}, err
	}
	return s, nil
}

func (t *tx) GetSetLog(ctx context.Context, id int64) (_ training.SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.log.get_set_log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s, err := scanSetLog(t.tx.QueryRowContext(
		ctx,
		`SELECT `+setLogColumns+` FROM set_log WHERE owner_id = ? AND id = ?`,
		t.owner, id,
	))
	if err != nil {
		return training.SetLog{}, notFound(err, "set log [query row]")
	}
	return s, nil
}

func (t *tx) ListSetLogs(ctx context.Context, workoutLogID int64, exerciseID *int64) (_ []training.SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.log.list_set_logs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `SELECT ` + setLogColumns + ` FROM set_log WHERE owner_id = ? AND workout_log_id = ?`
	args := []any{t.owner, workoutLogID}
	if exerciseID != nil {
		query += ` AND exercise_id = ?`
		args = append(args, *exerciseID)
	}
	query += ` ORDER BY set_number`

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("set logs [query]: %w", err)
	}
	defer rows.Close()

	var sets []training.SetLog
	for rows.Next() {
		s, err := scanSetLog(rows)
		if err != nil {
			return nil, fmt.Errorf("set logs [rows scan]: %w", err)
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("set logs [rows error]: %w", err)
	}
	return sets, nil
}

func (t *tx) UpdateSetLogNotes(ctx context.Context, id int64, notes string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.log.update_set_log_notes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := t.tx.ExecContext(
		ctx,
		`UPDATE set_log SET notes = ? WHERE owner_id = ? AND id = ?`,
		notes, t.owner, id,
	)
	if err != nil {
		return fmt.Errorf("set log [update notes]: %w", err)
	}
	ok, err := affected(res, "set log [update notes]")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("set log %d: %w", id, training.ErrNotFound)
	}
	return nil
}
