package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/2beens/gymplan/internal/training"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// fakeTrainingService implements trainingService for tests.
type fakeTrainingService struct {
	macros    []training.MacroCycle
	tree      training.PlanTree
	next      training.NextWorkout
	history   []training.WorkoutLog
	exercises []training.Exercise
	err       error

	lastTreeID  int64
	lastHistory training.HistoryQuery
}

func (f *fakeTrainingService) ListMacroCycles(_ context.Context) ([]training.MacroCycle, error) {
	return f.macros, f.err
}

func (f *fakeTrainingService) ListPlanTree(_ context.Context, macroID int64) (training.PlanTree, error) {
	f.lastTreeID = macroID
	return f.tree, f.err
}

func (f *fakeTrainingService) NextWorkout(_ context.Context) (training.NextWorkout, error) {
	return f.next, f.err
}

func (f *fakeTrainingService) ListHistory(_ context.Context, q training.HistoryQuery) ([]training.WorkoutLog, error) {
	f.lastHistory = q
	return f.history, f.err
}

func (f *fakeTrainingService) ListExercises(_ context.Context) ([]training.Exercise, error) {
	return f.exercises, f.err
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("expected 1 content, got %d", len(res.Content))
	}
	tc, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want *mcp.TextContent", res.Content[0])
	}
	return tc.Text
}

func TestHandler_ListPlansTool(t *testing.T) {
	t.Run("returns_plans", func(t *testing.T) {
		svc := &fakeTrainingService{macros: []training.MacroCycle{{ID: 1, Name: "Winter"}}}
		res, _, err := NewHandler(svc).ListPlansTool()(context.Background(), &mcp.CallToolRequest{}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsError {
			t.Fatalf("unexpected IsError: %s", resultText(t, res))
		}
		var macros []training.MacroCycle
		if err := json.Unmarshal([]byte(resultText(t, res)), &macros); err != nil {
			t.Fatalf("decode result: %v", err)
		}
		if len(macros) != 1 || macros[0].Name != "Winter" {
			t.Fatalf("macros = %+v", macros)
		}
	})

	t.Run("returns_error_when_list_fails", func(t *testing.T) {
		svc := &fakeTrainingService{err: errors.New("db gone")}
		res, _, err := NewHandler(svc).ListPlansTool()(context.Background(), &mcp.CallToolRequest{}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsError {
			t.Fatalf("expected IsError")
		}
		if text := resultText(t, res); text != "Error listing plans: db gone" {
			t.Fatalf("content text = %q", text)
		}
	})
}

func TestHandler_GetPlanTreeTool(t *testing.T) {
	t.Run("invalid_plan_id", func(t *testing.T) {
		res, _, err := NewHandler(&fakeTrainingService{}).GetPlanTreeTool()(context.Background(), &mcp.CallToolRequest{}, PlanTreeInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsError {
			t.Fatalf("expected IsError")
		}
	})

	t.Run("returns_tree", func(t *testing.T) {
		svc := &fakeTrainingService{tree: training.PlanTree{
			MacroCycle: training.MacroCycle{ID: 3, Name: "Spring"},
			MiniCycles: []training.MiniCycleNode{{MiniCycle: training.MiniCycle{ID: 4, Name: "Week 1"}}},
		}}
		res, _, err := NewHandler(svc).GetPlanTreeTool()(context.Background(), &mcp.CallToolRequest{}, PlanTreeInput{PlanID: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsError {
			t.Fatalf("unexpected IsError: %s", resultText(t, res))
		}
		if svc.lastTreeID != 3 {
			t.Fatalf("tree requested for %d, want 3", svc.lastTreeID)
		}
		var tree training.PlanTree
		if err := json.Unmarshal([]byte(resultText(t, res)), &tree); err != nil {
			t.Fatalf("decode result: %v", err)
		}
		if len(tree.MiniCycles) != 1 || tree.MiniCycles[0].Name != "Week 1" {
			t.Fatalf("tree = %+v", tree)
		}
	})
}

func TestHandler_GetNextWorkoutTool(t *testing.T) {
	t.Run("all_logged", func(t *testing.T) {
		svc := &fakeTrainingService{err: &training.OpError{Op: "next workout", Kind: training.ErrNotFound}}
		res, _, err := NewHandler(svc).GetNextWorkoutTool()(context.Background(), &mcp.CallToolRequest{}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsError {
			t.Fatalf("unexpected IsError")
		}
		if text := resultText(t, res); text != "Every planned workout has been logged." {
			t.Fatalf("content text = %q", text)
		}
	})

	t.Run("returns_error", func(t *testing.T) {
		svc := &fakeTrainingService{err: &training.OpError{Op: "next workout", Kind: training.ErrInternal}}
		res, _, err := NewHandler(svc).GetNextWorkoutTool()(context.Background(), &mcp.CallToolRequest{}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsError {
			t.Fatalf("expected IsError")
		}
		if text := resultText(t, res); text != "Error finding next workout: next workout: internal error" {
			t.Fatalf("content text = %q", text)
		}
	})
}

func TestHandler_GetHistoryTool(t *testing.T) {
	t.Run("requires_filter", func(t *testing.T) {
		res, _, err := NewHandler(&fakeTrainingService{}).GetHistoryTool()(context.Background(), &mcp.CallToolRequest{}, HistoryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsError {
			t.Fatalf("expected IsError")
		}
	})

	t.Run("invalid_from_date", func(t *testing.T) {
		res, _, err := NewHandler(&fakeTrainingService{}).GetHistoryTool()(context.Background(), &mcp.CallToolRequest{}, HistoryInput{
			ExerciseID: 1,
			FromDate:   "bad",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text := resultText(t, res); !res.IsError || text != "Invalid from_date: use YYYY-MM-DD" {
			t.Fatalf("content text = %q", text)
		}
	})

	t.Run("passes_filters", func(t *testing.T) {
		svc := &fakeTrainingService{history: []training.WorkoutLog{{ID: 9}}}
		res, _, err := NewHandler(svc).GetHistoryTool()(context.Background(), &mcp.CallToolRequest{}, HistoryInput{
			ExerciseID: 2,
			FromDate:   "2026-02-01",
			ToDate:     "2026-02-28",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsError {
			t.Fatalf("unexpected IsError: %s", resultText(t, res))
		}
		q := svc.lastHistory
		if q.WorkoutID != nil {
			t.Fatalf("workout filter = %d, want none", *q.WorkoutID)
		}
		if q.ExerciseID == nil || *q.ExerciseID != 2 {
			t.Fatalf("exercise filter = %v", q.ExerciseID)
		}
		wantTo := time.Date(2026, 2, 28, 23, 59, 59, 999999999, time.UTC)
		if q.To == nil || !q.To.Equal(wantTo) {
			t.Fatalf("to = %v, want %v", q.To, wantTo)
		}
	})
}

func TestHandler_ListExercisesTool(t *testing.T) {
	svc := &fakeTrainingService{exercises: []training.Exercise{{ID: 1, Name: "Deadlift", Categories: []string{"Back"}}}}
	res, _, err := NewHandler(svc).ListExercisesTool()(context.Background(), &mcp.CallToolRequest{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected IsError: %s", resultText(t, res))
	}
	var exercises []training.Exercise
	if err := json.Unmarshal([]byte(resultText(t, res)), &exercises); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if len(exercises) != 1 || exercises[0].Categories[0] != "Back" {
		t.Fatalf("exercises = %+v", exercises)
	}
}
