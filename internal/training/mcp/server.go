// Package mcp exposes the training plan and history as read-only MCP tools.
package mcp

import (
	"net/http"

	"github.com/2beens/gymplan/internal/training/tenancy"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with the plan, history and library tools.
// The gymplan CLI runs it over stdio against the embedded store.
func NewServer(service trainingService) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymplan",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_plans",
		Description: "Returns all training plans (macro cycles): id, name, notes, created and updated timestamps. Use it to find the plan_id for get_plan_tree.",
	}, h.ListPlansTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_plan_tree",
		Description: "Returns one plan with its mini cycles (weeks), their workouts and each workout's planned exercises with target sets, reps, weights and RIR. Arg: plan_id.",
	}, h.GetPlanTreeTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_next_workout",
		Description: "Returns the first planned workout, in plan order, that has not been logged yet, together with its week and plan names.",
	}, h.GetNextWorkoutTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_history",
		Description: "Returns performed workout logs with their sets, most recent first. Args: workout_id or exercise_id (at least one); optional from_date, to_date (YYYY-MM-DD). With exercise_id only that exercise's sets are returned.",
	}, h.GetHistoryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_exercises",
		Description: "Returns the exercise library: id, name, default notes and the categories (muscle groups, movement types) attached to each exercise.",
	}, h.ListExercisesTool())

	return s
}

// NewHTTPHandler serves the tools over streamable HTTP. Each request gets a
// server bound to the principal found on its context, if any.
func NewHTTPHandler(service trainingService) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		if principal, ok := tenancy.PrincipalFrom(r.Context()); ok {
			return NewServer(WithPrincipal(service, principal))
		}
		return NewServer(service)
	}, &mcp.StreamableHTTPOptions{Stateless: true})
}
