// Package postgres is the multi-tenant store. Besides filtering every
// statement by owner, each transaction publishes its owner to the row level
// security policies installed by Migrate.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/internal/training"
	"github.com/2beens/gymplan/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/multierr"
)

var _ training.Store = (*Store)(nil)

type Store struct {
	db         *pgxpool.Pool
	useAppRole bool
}

type Option func(*Store)

// WithAppRole makes every transaction run as AppRole.
func WithAppRole(enabled bool) Option {
	return func(s *Store) { s.useAppRole = enabled }
}

func New(db *pgxpool.Pool, opts ...Option) *Store {
	s := &Store{db: db}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Migrate(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.migrate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	s.db.Close()
	return nil
}

func (s *Store) WithTx(ctx context.Context, owner string, fn func(ctx context.Context, tx training.Tx) error) (err error) {
	pgTx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	rollback := func(cause error) error {
		// the caller's ctx may already be done
		if rbErr := pgTx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return multierr.Append(cause, fmt.Errorf("rollback: %w", rbErr))
		}
		return cause
	}

	defer func() {
		if p := recover(); p != nil {
			_ = rollback(nil)
			panic(p)
		}
	}()

	if _, err := pgTx.Exec(ctx, `SELECT set_config('gymplan.owner_id', $1, true)`, owner); err != nil {
		return rollback(fmt.Errorf("bind owner: %w", err))
	}
	if s.useAppRole {
		if _, err := pgTx.Exec(ctx, `SET LOCAL ROLE `+AppRole); err != nil {
			return rollback(fmt.Errorf("set role: %w", err))
		}
	}

	if err := fn(ctx, &tx{tx: pgTx, owner: owner}); err != nil {
		return rollback(err)
	}

	if err := pgTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

var _ training.Tx = (*tx)(nil)

type tx struct {
	tx    pgx.Tx
	owner string
}

func notFound(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, training.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", what, err)
}

func constraintErr(err error, what string) error {
	switch {
	case pkg.IsForeignKeyViolationError(err):
		return fmt.Errorf("%s: %w: %w", what, training.ErrReferentialIntegrity, err)
	case pkg.IsCheckViolationError(err):
		return fmt.Errorf("%s: %w: %w", what, training.ErrValidation, err)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}
