package mcp

import (
	"context"

	"github.com/2beens/gymplan/internal/training"
	"github.com/2beens/gymplan/internal/training/tenancy"
)

// principalService runs every call as a fixed principal. The HTTP transport
// builds one per request from the principal the auth middleware resolved.
type principalService struct {
	service   trainingService
	principal string
}

func WithPrincipal(service trainingService, principal string) trainingService {
	return &principalService{service: service, principal: principal}
}

func (p *principalService) bind(ctx context.Context) context.Context {
	return tenancy.WithPrincipal(ctx, p.principal)
}

func (p *principalService) ListMacroCycles(ctx context.Context) ([]training.MacroCycle, error) {
	return p.service.ListMacroCycles(p.bind(ctx))
}

func (p *principalService) ListPlanTree(ctx context.Context, macroID int64) (training.PlanTree, error) {
	return p.service.ListPlanTree(p.bind(ctx), macroID)
}

func (p *principalService) NextWorkout(ctx context.Context) (training.NextWorkout, error) {
	return p.service.NextWorkout(p.bind(ctx))
}

func (p *principalService) ListHistory(ctx context.Context, q training.HistoryQuery) ([]training.WorkoutLog, error) {
	return p.service.ListHistory(p.bind(ctx), q)
}

func (p *principalService) ListExercises(ctx context.Context) ([]training.Exercise, error) {
	return p.service.ListExercises(p.bind(ctx))
}
