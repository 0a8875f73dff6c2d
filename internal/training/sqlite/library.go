package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/internal/training"
	"github.com/2beens/gymplan/internal/training/scheme"
)

func (t *tx) UpsertCategory(ctx context.Context, name string, now time.Time) (_ training.Category, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.library.upsert_category")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := t.tx.ExecContext(
		ctx,
		`
			INSERT INTO category (owner_id, name, created_at)
			VALUES (?, ?, ?)
			ON CONFLICT (owner_id, name) DO NOTHING
		`,
		t.owner, name, formatTime(now),
	); err != nil {
		return training.Category{}, fmt.Errorf("category [insert]: %w", err)
	}

	var (
		c         training.Category
		createdAt string
	)
	err = t.tx.QueryRowContext(
		ctx,
		`SELECT id, name, created_at FROM category WHERE owner_id = ? AND name = ?`,
		t.owner, name,
	).Scan(&c.ID, &c.Name, &createdAt)
	if err != nil {
		return training.Category{}, notFound(err, "category [query row]")
	}
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return training.Category{}, err
	}
	return c, nil
}

func (t *tx) ListCategories(ctx context.Context) (_ []training.Category, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.library.list_categories")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := t.tx.QueryContext(
		ctx,
		`SELECT id, name, created_at FROM category WHERE owner_id = ? ORDER BY name`,
		t.owner,
	)
	if err != nil {
		return nil, fmt.Errorf("categories [query]: %w", err)
	}
	defer rows.Close()

	categories := []training.Category{}
	for rows.Next() {
		var (
			c         training.Category
			createdAt string
		)
		if err := rows.Scan(&c.ID, &c.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("categories [rows scan]: %w", err)
		}
		if c.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("categories [rows error]: %w", err)
	}

	return categories, nil
}

func (t *tx) DeleteCategory(ctx context.Context, id int64) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.library.delete_category")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := t.tx.ExecContext(ctx, `DELETE FROM category WHERE owner_id = ? AND id = ?`, t.owner, id)
	if err != nil {
		return false, constraintErr(err, "category [delete]")
	}
	return affected(res, "category [delete]")
}

func (t *tx) UpsertExercise(ctx context.Context, name, defaultNotes string, now time.Time) (_ training.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.library.upsert_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := t.tx.ExecContext(
		ctx,
		`
			INSERT INTO exercise (owner_id, name, default_notes, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (owner_id, name) DO NOTHING
		`,
		t.owner, name, defaultNotes, formatTime(now), formatTime(now),
	); err != nil {
		return training.Exercise{}, fmt.Errorf("exercise [insert]: %w", err)
	}

	return t.GetExerciseByName(ctx, name)
}

const exerciseColumns = `id, name, default_notes, created_at, updated_at`

func (t *tx) GetExercise(ctx context.Context, id int64) (_ training.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.library.get_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return t.getExercise(ctx, `SELECT `+exerciseColumns+` FROM exercise WHERE owner_id = ? AND id = ?`, id)
}

func (t *tx) GetExerciseByName(ctx context.Context, name string) (_ training.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.library.get_exercise_by_name")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return t.getExercise(ctx, `SELECT `+exerciseColumns+` FROM exercise WHERE owner_id = ? AND name = ?`, name)
}

func (t *tx) getExercise(ctx context.Context, query string, key any) (training.Exercise, error) {
	e, err := scanExercise(t.tx.QueryRowContext(ctx, query, t.owner, key))
	if err != nil {
		return training.Exercise{}, notFound(err, "exercise [query row]")
	}
	if e.Categories, err = t.exerciseCategories(ctx, e.ID); err != nil {
		return training.Exercise{}, err
	}
	return e, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExercise(row scanner) (training.Exercise, error) {
	var (
		e                    training.Exercise
		createdAt, updatedAt string
	)
	if err := row.Scan(&e.ID, &e.Name, &e.DefaultNotes, &createdAt, &updatedAt); err != nil {
		return training.Exercise{}, err
	}
	var err error
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return training.Exercise{}, err
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return training.Exercise{}, err
	}
	return e, nil
}

func (t *tx) exerciseCategories(ctx context.Context, exerciseID int64) ([]string, error) {
	rows, err := t.tx.QueryContext(
		ctx,
		`
			SELECT c.name
			FROM exercise_category ec
			JOIN category c ON c.id = ec.category_id AND c.owner_id = ec.owner_id
			WHERE ec.owner_id = ? AND ec.exercise_id = ?
			ORDER BY c.name
		`,
		t.owner, exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise categories [query]: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("exercise categories [rows scan]: %w", err)
		}
		categories = append(categories, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise categories [rows error]: %w", err)
	}
	return categories, nil
}

func (t *tx) ListExercises(ctx context.Context) (_ []training.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.library.list_exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := t.tx.QueryContext(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercise WHERE owner_id = ? ORDER BY name`,
		t.owner,
	)
	if err != nil {
		return nil, fmt.Errorf("exercises [query]: %w", err)
	}

	exercises := []training.Exercise{}
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("exercises [rows scan]: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("exercises [rows error]: %w", err)
	}
	rows.Close()

	for i := range exercises {
		if exercises[i].Categories, err = t.exerciseCategories(ctx, exercises[i].ID); err != nil {
			return nil, err
		}
	}
	return exercises, nil
}

func (t *tx) DeleteExercise(ctx context.Context, id int64) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.library.delete_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := t.tx.ExecContext(ctx, `DELETE FROM exercise WHERE owner_id = ? AND id = ?`, t.owner, id)
	if err != nil {
		return false, constraintErr(err, "exercise [delete]")
	}
	return affected(res, "exercise [delete]")
}

func (t *tx) AttachCategory(ctx context.Context, exerciseID, categoryID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.library.attach_category")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = t.tx.ExecContext(
		ctx,
		`
			INSERT INTO exercise_category (owner_id, exercise_id, category_id)
			VALUES (?, ?, ?)
			ON CONFLICT (exercise_id, category_id) DO NOTHING
		`,
		t.owner, exerciseID, categoryID,
	)
	if err != nil {
		return constraintErr(err, "exercise category [insert]")
	}
	return nil
}

func (t *tx) DetachCategory(ctx context.Context, exerciseID, categoryID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.library.detach_category")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = t.tx.ExecContext(
		ctx,
		`DELETE FROM exercise_category WHERE owner_id = ? AND exercise_id = ? AND category_id = ?`,
		t.owner, exerciseID, categoryID,
	)
	if err != nil {
		return fmt.Errorf("exercise category [delete]: %w", err)
	}
	return nil
}

func (t *tx) UpsertScheme(ctx context.Context, sc training.Scheme, now time.Time) (_ training.Scheme, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.library.upsert_scheme")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	weights, err := scheme.Encode(sc.TargetWeights)
	if err != nil {
		return training.Scheme{}, fmt.Errorf("scheme weights: %w", err)
	}
	if _, err := t.tx.ExecContext(
		ctx,
		`
			INSERT INTO rep_scheme (owner_id, name, target_reps, target_weights, created_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (owner_id, name) DO NOTHING
		`,
		t.owner, sc.Name, scheme.EncodeInts(sc.TargetReps), weights, formatTime(now),
	); err != nil {
		return training.Scheme{}, fmt.Errorf("scheme [insert]: %w", err)
	}

	out, err := scanScheme(t.tx.QueryRowContext(
		ctx,
		`SELECT `+schemeColumns+` FROM rep_scheme WHERE owner_id = ? AND name = ?`,
		t.owner, sc.Name,
	))
	if err != nil {
		return training.Scheme{}, notFound(err, "scheme [query row]")
	}
	return out, nil
}

const schemeColumns = `id, name, target_reps, target_weights, created_at`

func scanScheme(row scanner) (training.Scheme, error) {
	var (
		sc            training.Scheme
		reps, weights string
		createdAt     string
	)
	if err := row.Scan(&sc.ID, &sc.Name, &reps, &weights, &createdAt); err != nil {
		return training.Scheme{}, err
	}
	var err error
	if sc.TargetReps, sc.TargetWeights, err = scheme.DecodePair(reps, weights); err != nil {
		return training.Scheme{}, fmt.Errorf("scheme %d: %w", sc.ID, err)
	}
	if sc.CreatedAt, err = parseTime(createdAt); err != nil {
		return training.Scheme{}, err
	}
	return sc, nil
}

func (t *tx) GetScheme(ctx context.Context, id int64) (_ training.Scheme, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.library.get_scheme")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sc, err := scanScheme(t.tx.QueryRowContext(
		ctx,
		`SELECT `+schemeColumns+` FROM rep_scheme WHERE owner_id = ? AND id = ?`,
		t.owner, id,
	))
	if err != nil {
		return training.Scheme{}, notFound(err, "scheme [query row]")
	}
	return sc, nil
}

func (t *tx) ListSchemes(ctx context.Context) (_ []training.Scheme, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.library.list_schemes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := t.tx.QueryContext(
		ctx,
		`SELECT `+schemeColumns+` FROM rep_scheme WHERE owner_id = ? ORDER BY name`,
		t.owner,
	)
	if err != nil {
		return nil, fmt.Errorf("schemes [query]: %w", err)
	}
	defer rows.Close()

	schemes := []training.Scheme{}
	for rows.Next() {
		sc, err := scanScheme(rows)
		if err != nil {
			return nil, fmt.Errorf("schemes [rows scan]: %w", err)
		}
		schemes = append(schemes, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("schemes [rows error]: %w", err)
	}
	return schemes, nil
}

func (t *tx) DeleteScheme(ctx context.Context, id int64) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sqlite.library.delete_scheme")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := t.tx.ExecContext(ctx, `DELETE FROM rep_scheme WHERE owner_id = ? AND id = ?`, t.owner, id)
	if err != nil {
		return false, constraintErr(err, "scheme [delete]")
	}
	return affected(res, "scheme [delete]")
}
