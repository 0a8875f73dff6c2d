// Package tenancy binds every store operation to the identity of its caller.
//
// The embedded deployment has a single implicit owner; the multi-tenant one
// requires an authenticated principal on every request context.
package tenancy

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// LocalOwner owns every row of the embedded single-tenant store.
const LocalOwner = "local"

var ErrAccessDenied = errors.New("access denied")

type principalCtxKey struct{}

// WithPrincipal returns a copy of ctx carrying the caller identity.
func WithPrincipal(ctx context.Context, principal string) context.Context {
	return context.WithValue(ctx, principalCtxKey{}, principal)
}

// PrincipalFrom returns the caller identity stored in ctx, if any.
func PrincipalFrom(ctx context.Context) (string, bool) {
	principal, ok := ctx.Value(principalCtxKey{}).(string)
	return principal, ok && principal != ""
}

// Guard resolves the owner identity every row touched by an operation must carry.
type Guard interface {
	Owner(ctx context.Context) (string, error)
	MultiTenant() bool
}

var (
	_ Guard = SingleTenant{}
	_ Guard = MultiTenant{}
)

// SingleTenant attributes all data to LocalOwner.
type SingleTenant struct{}

func (SingleTenant) Owner(_ context.Context) (string, error) {
	return LocalOwner, nil
}

func (SingleTenant) MultiTenant() bool { return false }

// MultiTenant requires a UUID principal on the context.
type MultiTenant struct{}

func (MultiTenant) Owner(ctx context.Context) (string, error) {
	principal, ok := PrincipalFrom(ctx)
	if !ok {
		return "", fmt.Errorf("%w: no caller identity", ErrAccessDenied)
	}
	id, err := uuid.Parse(principal)
	if err != nil {
		return "", fmt.Errorf("%w: invalid caller identity", ErrAccessDenied)
	}
	// canonical form, so stamps never differ by case or braces
	return id.String(), nil
}

func (MultiTenant) MultiTenant() bool { return true }

// NewGuard picks the guard for a deployment.
func NewGuard(multiTenant bool) Guard {
	if multiTenant {
		return MultiTenant{}
	}
	return SingleTenant{}
}
