// Package training implements the plan hierarchy, execution log and library
// catalog on top of a tenant-bound transactional Store.
package training

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/gymplan/internal/telemetry/metrics"
	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/internal/training/tenancy"

	log "github.com/sirupsen/logrus"
)

type Service struct {
	store     Store
	guard     tenancy.Guard
	metrics   *metrics.Manager
	opTimeout time.Duration
	now       func() time.Time
}

type Option func(*Service)

// WithOpTimeout bounds every operation, on top of the caller's own deadline.
func WithOpTimeout(d time.Duration) Option {
	return func(s *Service) { s.opTimeout = d }
}

func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) { s.metrics = m }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store Store, guard tenancy.Guard, opts ...Option) *Service {
	s := &Service{
		store: store,
		guard: guard,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// run executes fn inside one owner-bound transaction and converts any
// failure into an *OpError for op.
func (s *Service) run(ctx context.Context, op string, fn func(ctx context.Context, tx Tx) error) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training."+op)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	owner, err := s.guard.Owner(ctx)
	if err != nil {
		return s.fail(op, err)
	}

	if s.opTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opTimeout)
		defer cancel()
	}

	if err := s.store.WithTx(ctx, owner, fn); err != nil {
		return s.fail(op, err)
	}
	return nil
}

func (s *Service) fail(op string, err error) *OpError {
	opErr := newOpError(op, err)
	if s.metrics != nil {
		s.metrics.CounterOpErrors.WithLabelValues(op, opErr.Kind.Error()).Inc()
	}
	if errors.Is(opErr.Kind, ErrInternal) {
		log.Errorf("%s: %s", op, err)
	} else {
		log.Debugf("%s: %s", op, err)
	}
	return opErr
}

func (s *Service) stamp() time.Time {
	return s.now().UTC()
}
