package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/internal/training"
	"github.com/2beens/gymplan/internal/training/scheme"

	"github.com/jackc/pgx/v5"
)

func (t *tx) UpsertCategory(ctx context.Context, name string, now time.Time) (_ training.Category, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.library.upsert_category")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := t.tx.Exec(
		ctx,
		`
			INSERT INTO category (owner_id, name, created_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (owner_id, name) DO NOTHING
		`,
		t.owner, name, now,
	); err != nil {
		return training.Category{}, fmt.Errorf("category [insert]: %w", err)
	}

	var c training.Category
	err = t.tx.QueryRow(
		ctx,
		`SELECT id, name, created_at FROM category WHERE owner_id = $1 AND name = $2`,
		t.owner, name,
	).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		return training.Category{}, notFound(err, "category [query row]")
	}
	return c, nil
}

func (t *tx) ListCategories(ctx context.Context) (_ []training.Category, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.library.list_categories")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := t.tx.Query(
		ctx,
		`SELECT id, name, created_at FROM category WHERE owner_id = $1 ORDER BY name`,
		t.owner,
	)
	if err != nil {
		return nil, fmt.Errorf("categories [query]: %w", err)
	}
	defer rows.Close()

	categories := []training.Category{}
	for rows.Next() {
		var c training.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("categories [rows scan]: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("categories [rows error]: %w", err)
	}
	return categories, nil
}

func (t *tx) DeleteCategory(ctx context.Context, id int64) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.library.delete_category")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := t.tx.Exec(ctx, `DELETE FROM category WHERE owner_id = $1 AND id = $2`, t.owner, id)
	if err != nil {
		return false, constraintErr(err, "category [delete]")
	}
	return tag.RowsAffected() > 0, nil
}

func (t *tx) UpsertExercise(ctx context.Context, name, defaultNotes string, now time.Time) (_ training.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.library.upsert_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := t.tx.Exec(
		ctx,
		`
			INSERT INTO exercise (owner_id, name, default_notes, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $4)
			ON CONFLICT (owner_id, name) DO NOTHING
		`,
		t.owner, name, defaultNotes, now,
	); err != nil {
		return training.Exercise{}, fmt.Errorf("exercise [insert]: %w", err)
	}

	return t.GetExerciseByName(ctx, name)
}

const exerciseColumns = `id, name, default_notes, created_at, updated_at`

func (t *tx) GetExercise(ctx context.Context, id int64) (_ training.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.library.get_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return t.getExercise(ctx, `SELECT `+exerciseColumns+` FROM exercise WHERE owner_id = $1 AND id = $2`, id)
}

func (t *tx) GetExerciseByName(ctx context.Context, name string) (_ training.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.library.get_exercise_by_name")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return t.getExercise(ctx, `SELECT `+exerciseColumns+` FROM exercise WHERE owner_id = $1 AND name = $2`, name)
}

func (t *tx) getExercise(ctx context.Context, query string, key any) (training.Exercise, error) {
	var e training.Exercise
	err := t.tx.QueryRow(ctx, query, t.owner, key).Scan(
		&e.ID, &e.Name, &e.DefaultNotes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return training.Exercise{}, notFound(err, "exercise [query row]")
	}
	if e.Categories, err = t.exerciseCategories(ctx, e.ID); err != nil {
		return training.Exercise{}, err
	}
	return e, nil
}

func (t *tx) exerciseCategories(ctx context.Context, exerciseID int64) ([]string, error) {
	rows, err := t.tx.Query(
		ctx,
		`
			SELECT c.name
			FROM exercise_category ec
			JOIN category c ON c.id = ec.category_id AND c.owner_id = ec.owner_id
			WHERE ec.owner_id = $1 AND ec.exercise_id = $2
			ORDER BY c.name
		`,
		t.owner, exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise categories [query]: %w", err)
	}

	categories, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("exercise categories [collect rows]: %w", err)
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

func (t *tx) ListExercises(ctx context.Context) (_ []training.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.library.list_exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := t.tx.Query(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercise WHERE owner_id = $1 ORDER BY name`,
		t.owner,
	)
	if err != nil {
		return nil, fmt.Errorf("exercises [query]: %w", err)
	}

	exercises := []training.Exercise{}
	for rows.Next() {
		var e training.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.DefaultNotes, &e.CreatedAt, &e.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("exercises [rows scan]: %w", err)
		}
		exercises = append(exercises, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercises [rows error]: %w", err)
	}

	// the connection is free again once rows are closed
	for i := range exercises {
		if exercises[i].Categories, err = t.exerciseCategories(ctx, exercises[i].ID); err != nil {
			return nil, err
		}
	}
	return exercises, nil
}

func (t *tx) DeleteExercise(ctx context.Context, id int64) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.library.delete_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := t.tx.Exec(ctx, `DELETE FROM exercise WHERE owner_id = $1 AND id = $2`, t.owner, id)
	if err != nil {
		return false, constraintErr(err, "exercise [delete]")
	}
	return tag.RowsAffected() > 0, nil
}

func (t *tx) AttachCategory(ctx context.Context, exerciseID, categoryID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.library.attach_category")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = t.tx.Exec(
		ctx,
		`
			INSERT INTO exercise_category (owner_id, exercise_id, category_id)
			VALUES ($1, $2, $3)
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
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.library.detach_category")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = t.tx.Exec(
		ctx,
		`DELETE FROM exercise_category WHERE owner_id = $1 AND exercise_id = $2 AND category_id = $3`,
		t.owner, exerciseID, categoryID,
	)
	if err != nil {
		return fmt.Errorf("exercise category [delete]: %w", err)
	}
	return nil
}

const schemeColumns = `id, name, target_reps::text, target_weights::text, created_at`

func scanScheme(row pgx.Row) (training.Scheme, error) {
	var (
		sc            training.Scheme
		reps, weights string
	)
	if err := row.Scan(&sc.ID, &sc.Name, &reps, &weights, &sc.CreatedAt); err != nil {
		return training.Scheme{}, err
	}
	var err error
	if sc.TargetReps, sc.TargetWeights, err = scheme.DecodePair(reps, weights); err != nil {
		return training.Scheme{}, fmt.Errorf("scheme %d: %w", sc.ID, err)
	}
	return sc, nil
}

func (t *tx) UpsertScheme(ctx context.Context, sc training.Scheme, now time.Time) (_ training.Scheme, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.library.upsert_scheme")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	weights, err := scheme.Encode(sc.TargetWeights)
	if err != nil {
		return training.Scheme{}, fmt.Errorf("scheme weights: %w", err)
	}
	if _, err := t.tx.Exec(
		ctx,
		`
			INSERT INTO rep_scheme (owner_id, name, target_reps, target_weights, created_at)
			VALUES ($1, $2, $3::jsonb, $4::jsonb, $5)
			ON CONFLICT (owner_id, name) DO NOTHING
		`,
		t.owner, sc.Name, scheme.EncodeInts(sc.TargetReps), weights, now,
	); err != nil {
		return training.Scheme{}, fmt.Errorf("scheme [insert]: %w", err)
	}

	out, err := scanScheme(t.tx.QueryRow(
		ctx,
		`SELECT `+schemeColumns+` FROM rep_scheme WHERE owner_id = $1 AND name = $2`,
		t.owner, sc.Name,
	))
	if err != nil {
		return training.Scheme{}, notFound(err, "scheme [query row]")
	}
	return out, nil
}

func (t *tx) GetScheme(ctx context.Context, id int64) (_ training.Scheme, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.library.get_scheme")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sc, err := scanScheme(t.tx.QueryRow(
		ctx,
		`SELECT `+schemeColumns+` FROM rep_scheme WHERE owner_id = $1 AND id = $2`,
		t.owner, id,
	))
	if err != nil {
		return training.Scheme{}, notFound(err, "scheme [query row]")
	}
	return sc, nil
}

func (t *tx) ListSchemes(ctx context.Context) (_ []training.Scheme, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.library.list_schemes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := t.tx.Query(
		ctx,
		`SELECT `+schemeColumns+` FROM rep_scheme WHERE owner_id = $1 ORDER BY name`,
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
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.library.delete_scheme")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := t.tx.Exec(ctx, `DELETE FROM rep_scheme WHERE owner_id = $1 AND id = $2`, t.owner, id)
	if err != nil {
		return false, constraintErr(err, "scheme [delete]")
	}
	return tag.RowsAffected() > 0, nil
}
