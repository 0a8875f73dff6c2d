package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/internal/training"
	"github.com/2beens/gymplan/pkg"

	"github.com/jackc/pgx/v5"
)

func (t *tx) InsertWorkoutLog(ctx context.Context, l training.WorkoutLog) (_ training.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.log.insert_workout_log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = t.tx.QueryRow(
		ctx,
		`
			INSERT INTO workout_log
			    (owner_id, workout_id, completed_at, finalized_at, overall_notes, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`,
		t.owner, l.WorkoutID, l.CompletedAt, l.FinalizedAt, l.OverallNotes, l.CreatedAt, l.UpdatedAt,
	).Scan(&l.ID)
	if err != nil {
		return training.WorkoutLog{}, constraintErr(err, "workout log [insert]")
	}
	return l, nil
}

const workoutLogColumns = `l.id, l.workout_id, l.completed_at, l.finalized_at, l.overall_notes, l.created_at, l.updated_at`

func scanWorkoutLog(row pgx.Row) (training.WorkoutLog, error) {
	var l training.WorkoutLog
	err := row.Scan(&l.ID, &l.WorkoutID, &l.CompletedAt, &l.FinalizedAt, &l.OverallNotes, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

// GetWorkoutLog with lock set holds the row until the transaction ends, so
// concurrent set inserts into one log are serialized.
func (t *tx) GetWorkoutLog(ctx context.Context, id int64, lock bool) (_ training.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.log.get_workout_log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `SELECT ` + workoutLogColumns + ` FROM workout_log l WHERE l.owner_id = $1 AND l.id = $2`
	if lock {
		query += ` FOR UPDATE`
	}
	l, err := scanWorkoutLog(t.tx.QueryRow(ctx, query, t.owner, id))
	if err != nil {
		return training.WorkoutLog{}, notFound(err, "workout log [query row]")
	}
	return l, nil
}

func (t *tx) ListWorkoutLogs(ctx context.Context, f training.LogFilter) (_ []training.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.log.list_workout_logs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := t.tx.Query(
		ctx,
		`
			SELECT `+workoutLogColumns+`
			FROM workout_log l
			WHERE l.owner_id = $1
			  AND ($2::bigint IS NULL OR l.workout_id = $2)
			  AND ($3::bigint IS NULL OR EXISTS (
			      SELECT 1 FROM set_log s WHERE s.workout_log_id = l.id AND s.exercise_id = $3
			  ))
			  AND ($4::timestamptz IS NULL OR l.completed_at >= $4)
			  AND ($5::timestamptz IS NULL OR l.completed_at <= $5)
			ORDER BY l.completed_at DESC, l.id DESC
		`,
		t.owner, f.WorkoutID, f.ExerciseID, f.From, f.To,
	)
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
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.log.finalize_workout_log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := t.tx.Exec(
		ctx,
		`UPDATE workout_log SET finalized_at = $3, updated_at = $3 WHERE owner_id = $1 AND id = $2 AND finalized_at IS NULL`,
		t.owner, id, at,
	)
	if err != nil {
		return fmt.Errorf("workout log [finalize]: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("open workout log %d: %w", id, training.ErrNotFound)
	}
	return nil
}

func (t *tx) UpdateWorkoutLogNotes(ctx context.Context, id int64, notes string, now time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.log.update_workout_log_notes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := t.tx.Exec(
		ctx,
		`UPDATE workout_log SET overall_notes = $3, updated_at = $4 WHERE owner_id = $1 AND id = $2`,
		t.owner, id, notes, now,
	)
	if err != nil {
		return fmt.Errorf("workout log [update notes]: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workout log %d: %w", id, training.ErrNotFound)
	}
	return nil
}

func (t *tx) DeleteWorkoutLog(ctx context.Context, id int64) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.log.delete_workout_log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := t.tx.Exec(ctx, `DELETE FROM workout_log WHERE owner_id = $1 AND id = $2`, t.owner, id)
	if err != nil {
		return false, fmt.Errorf("workout log [delete]: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (t *tx) InsertSetLog(ctx context.Context, s training.SetLog) (_ training.SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.log.insert_set_log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = t.tx.QueryRow(
		ctx,
		`
			INSERT INTO set_log
			    (owner_id, workout_log_id, planned_exercise_id, exercise_id, exercise_name,
			     set_number, weight, reps, rpe, notes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id
		`,
		t.owner, s.WorkoutLogID, s.PlannedExerciseID, s.ExerciseID, s.ExerciseName,
		s.SetNumber, s.Weight, s.Reps, s.RPE, s.Notes, s.CreatedAt,
	).Scan(&s.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return training.SetLog{}, fmt.Errorf("set %d of workout log %d: %w", s.SetNumber, s.WorkoutLogID, training.ErrDuplicateSet)
		}
		return training.SetLog{}, constraintErr(err, "set log [insert]")
	}
	return s, nil
}

const setLogColumns = `
	id, workout_log_id, planned_exercise_id, exercise_id, exercise_name,
	set_number, weight, reps, rpe, notes, created_at
`

func scanSetLog(row pgx.Row) (training.SetLog, error) {
	var s training.SetLog
	err := row.Scan(
		&s.ID, &s.WorkoutLogID, &s.PlannedExerciseID, &s.ExerciseID, &s.ExerciseName,
		&s.SetNumber, &s.Weight, &s.Reps, &s.RPE, &s.Notes, &s.CreatedAt,
	)
	return s, err
}

func (t *tx) GetSetLog(ctx context.Context, id int64) (_ training.SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.log.get_set_log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s, err := scanSetLog(t.tx.QueryRow(
		ctx,
		`SELECT `+setLogColumns+` FROM set_log WHERE owner_id = $1 AND id = $2`,
		t.owner, id,
	))
	if err != nil {
		return training.SetLog{}, notFound(err, "set log [query row]")
	}
	return s, nil
}

func (t *tx) ListSetLogs(ctx context.Context, workoutLogID int64, exerciseID *int64) (_ []training.SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.log.list_set_logs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := t.tx.Query(
		ctx,
		`
			SELECT `+setLogColumns+`
			FROM set_log
			WHERE owner_id = $1 AND workout_log_id = $2
			  AND ($3::bigint IS NULL OR exercise_id = $3)
			ORDER BY set_number
		`,
		t.owner, workoutLogID, exerciseID,
	)
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
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.log.update_set_log_notes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := t.tx.Exec(
		ctx,
		`UPDATE set_log SET notes = $3 WHERE owner_id = $1 AND id = $2`,
		t.owner, id, notes,
	)
	if err != nil {
		return fmt.Errorf("set log [update notes]: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("set log %d: %w", id, training.ErrNotFound)
	}
	return nil
}
