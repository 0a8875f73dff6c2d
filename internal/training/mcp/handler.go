package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/2beens/gymplan/internal/training"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// trainingService is the read side of training.Service the tools need.
type trainingService interface {
	ListMacroCycles(ctx context.Context) ([]training.MacroCycle, error)
	ListPlanTree(ctx context.Context, macroID int64) (training.PlanTree, error)
	NextWorkout(ctx context.Context) (training.NextWorkout, error)
	ListHistory(ctx context.Context, q training.HistoryQuery) ([]training.WorkoutLog, error)
	ListExercises(ctx context.Context) ([]training.Exercise, error)
}

// Handler turns tool calls into service calls and formats the results.
type Handler struct {
	service trainingService
}

func NewHandler(service trainingService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// ListPlansTool returns the tool handler for list_plans.
func (h *Handler) ListPlansTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		macros, err := h.service.ListMacroCycles(ctx)
		if err != nil {
			return errorResult("Error listing plans: " + err.Error()), nil, nil
		}
		return jsonResult(macros), nil, nil
	}
}

// PlanTreeInput is the input for get_plan_tree.
type PlanTreeInput struct {
	PlanID int64 `json:"plan_id" jsonschema:"ID of the macro cycle (plan)"`
}

// GetPlanTreeTool returns the tool handler for get_plan_tree.
func (h *Handler) GetPlanTreeTool() func(context.Context, *mcp.CallToolRequest, PlanTreeInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PlanTreeInput) (*mcp.CallToolResult, any, error) {
		if in.PlanID <= 0 {
			return errorResult("Invalid plan_id: must be a positive number"), nil, nil
		}
		tree, err := h.service.ListPlanTree(ctx, in.PlanID)
		if err != nil {
			return errorResult("Error loading plan: " + err.Error()), nil, nil
		}
		return jsonResult(tree), nil, nil
	}
}

// GetNextWorkoutTool returns the tool handler for get_next_workout.
func (h *Handler) GetNextWorkoutTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		next, err := h.service.NextWorkout(ctx)
		if errors.Is(err, training.ErrNotFound) {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Every planned workout has been logged."}},
			}, nil, nil
		}
		if err != nil {
			return errorResult("Error finding next workout: " + err.Error()), nil, nil
		}
		return jsonResult(next), nil, nil
	}
}

// HistoryInput is the input for get_history.
type HistoryInput struct {
	WorkoutID  int64  `json:"workout_id,omitempty" jsonschema:"Planned workout ID"`
	ExerciseID int64  `json:"exercise_id,omitempty" jsonschema:"Library exercise ID"`
	FromDate   string `json:"from_date,omitempty" jsonschema:"Start date (YYYY-MM-DD)"`
	ToDate     string `json:"to_date,omitempty" jsonschema:"End date (YYYY-MM-DD)"`
}

// GetHistoryTool returns the tool handler for get_history.
func (h *Handler) GetHistoryTool() func(context.Context, *mcp.CallToolRequest, HistoryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in HistoryInput) (*mcp.CallToolResult, any, error) {
		var q training.HistoryQuery
		if in.WorkoutID > 0 {
			q.WorkoutID = &in.WorkoutID
		}
		if in.ExerciseID > 0 {
			q.ExerciseID = &in.ExerciseID
		}
		if q.WorkoutID == nil && q.ExerciseID == nil {
			return errorResult("Either workout_id or exercise_id is required"), nil, nil
		}
		if in.FromDate != "" {
			from, err := time.Parse("2006-01-02", in.FromDate)
			if err != nil {
				return errorResult("Invalid from_date: use YYYY-MM-DD"), nil, nil
			}
			q.From = &from
		}
		if in.ToDate != "" {
			to, err := time.Parse("2006-01-02", in.ToDate)
			if err != nil {
				return errorResult("Invalid to_date: use YYYY-MM-DD"), nil, nil
			}
			to = time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999999999, to.Location())
			q.To = &to
		}

		history, err := h.service.ListHistory(ctx, q)
		if err != nil {
			return errorResult("Error listing history: " + err.Error()), nil, nil
		}
		return jsonResult(history), nil, nil
	}
}

// ListExercisesTool returns the tool handler for list_exercises.
func (h *Handler) ListExercisesTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		exercises, err := h.service.ListExercises(ctx)
		if err != nil {
			return errorResult("Error listing exercises: " + err.Error()), nil, nil
		}
		return jsonResult(exercises), nil, nil
	}
}
