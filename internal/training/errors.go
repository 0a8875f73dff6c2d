package training

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymplan/internal/training/scheme"
	"github.com/2beens/gymplan/internal/training/tenancy"
)

var (
	ErrReferentialIntegrity = errors.New("referential integrity violation")
	ErrDuplicateSet         = errors.New("duplicate set")
	ErrMalformedScheme      = scheme.ErrMalformed
	ErrAccessDenied         = tenancy.ErrAccessDenied
	ErrNotFound             = errors.New("not found")
	ErrValidation           = errors.New("validation failed")
	ErrLogFinalized         = errors.New("workout log finalized")
	ErrInternal             = errors.New("internal error")
)

// kinds are matched in order; the first one found in the chain wins.
var kinds = []error{
	ErrAccessDenied,
	ErrNotFound,
	ErrDuplicateSet,
	ErrLogFinalized,
	ErrReferentialIntegrity,
	ErrMalformedScheme,
	ErrValidation,
	context.DeadlineExceeded,
	context.Canceled,
}

// detailError carries a message that is safe to show to the caller.
type detailError struct {
	kind error
	msg  string
}

func (e *detailError) Error() string { return e.kind.Error() + ": " + e.msg }
func (e *detailError) Unwrap() error { return e.kind }

func failf(kind error, format string, args ...any) error {
	return &detailError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// OpError is returned by every Service method. Its message names the
// operation and the failure kind; the underlying cause is only reachable
// through Cause.
type OpError struct {
	Op     string
	Kind   error
	Detail string
	cause  error
}

func (e *OpError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *OpError) Unwrap() error { return e.Kind }

func (e *OpError) Cause() error { return e.cause }

func newOpError(op string, err error) *OpError {
	var opErr *OpError
	if errors.As(err, &opErr) {
		// nested service calls report the outermost operation
		return &OpError{Op: op, Kind: opErr.Kind, Detail: opErr.Detail, cause: opErr.cause}
	}

	kind := ErrInternal
	for _, k := range kinds {
		if errors.Is(err, k) {
			kind = k
			break
		}
	}

	oe := &OpError{Op: op, Kind: kind, cause: err}
	var de *detailError
	if errors.As(err, &de) && errors.Is(de.kind, kind) {
		oe.Detail = de.msg
	}
	return oe
}
