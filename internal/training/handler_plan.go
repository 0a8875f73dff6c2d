package training

import (
	"context"
	"net/http"

	"github.com/2beens/gymplan/internal/telemetry/tracing"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=plan_service_mocks_test.go -package=training_test

type planService interface {
	CreateMacroCycle(ctx context.Context, name, notes string) (MacroCycle, error)
	CreateMiniCycle(ctx context.Context, macroID int64, name, notes string) (MiniCycle, error)
	CreateWorkout(ctx context.Context, miniID int64, name, notes string) (Workout, error)
	CreatePlannedExercise(ctx context.Context, in PlannedExerciseInput) (PlannedExercise, error)
	ListMacroCycles(ctx context.Context) ([]MacroCycle, error)
	CountMacroCycles(ctx context.Context) (int, error)
	BuildMacroCycle(ctx context.Context, tmpl PlanTemplate) (PlanTree, error)
	ListPlanTree(ctx context.Context, macroID int64) (PlanTree, error)
	UpdatePlanNode(ctx context.Context, level Level, id int64, upd NodeUpdate) error
	UpdatePlannedExercise(ctx context.Context, id int64, upd PlannedExerciseUpdate) (PlannedExercise, error)
	DeletePlanNode(ctx context.Context, level Level, id int64) error
	NextWorkout(ctx context.Context) (NextWorkout, error)
}

type NodeRequest struct {
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

type PlanHandler struct {
	service planService
}

func NewPlanHandler(service planService) *PlanHandler {
	return &PlanHandler{
		service: service,
	}
}

func (handler *PlanHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.plans.list")
	defer span.End()

	macros, err := handler.service.ListMacroCycles(ctx)
	if err != nil {
		writeServiceError(w, "list plans", err)
		return
	}
	writeJSON(w, "list plans", macros, http.StatusOK)
}

func (handler *PlanHandler) HandleCount(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.plans.count")
	defer span.End()

	count, err := handler.service.CountMacroCycles(ctx)
	if err != nil {
		writeServiceError(w, "count plans", err)
		return
	}
	writeJSON(w, "count plans", CountResponse{Count: count}, http.StatusOK)
}

func (handler *PlanHandler) HandleCreateMacro(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.plans.new")
	defer span.End()

	var req NodeRequest
	if !decodeJSON(w, r, "add plan", &req) {
		return
	}

	macro, err := handler.service.CreateMacroCycle(ctx, req.Name, req.Notes)
	if err != nil {
		writeServiceError(w, "add plan", err)
		return
	}

	log.Debugf("new macro cycle added: %d", macro.ID)
	writeJSON(w, "add plan", macro, http.StatusCreated)
}

func (handler *PlanHandler) HandleBuild(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.plans.build")
	defer span.End()

	var tmpl PlanTemplate
	if !decodeJSON(w, r, "build plan", &tmpl) {
		return
	}

	tree, err := handler.service.BuildMacroCycle(ctx, tmpl)
	if err != nil {
		writeServiceError(w, "build plan", err)
		return
	}

	log.Debugf("macro cycle %d built with %d weeks", tree.ID, len(tree.MiniCycles))
	writeJSON(w, "build plan", tree, http.StatusCreated)
}

func (handler *PlanHandler) HandleTree(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.plans.tree")
	defer span.End()

	macroID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	tree, err := handler.service.ListPlanTree(ctx, macroID)
	if err != nil {
		writeServiceError(w, "get plan tree", err)
		return
	}
	writeJSON(w, "get plan tree", tree, http.StatusOK)
}

func (handler *PlanHandler) HandleCreateMini(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.minis.new")
	defer span.End()

	macroID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req NodeRequest
	if !decodeJSON(w, r, "add mini cycle", &req) {
		return
	}

	mini, err := handler.service.CreateMiniCycle(ctx, macroID, req.Name, req.Notes)
	if err != nil {
		writeServiceError(w, "add mini cycle", err)
		return
	}
	writeJSON(w, "add mini cycle", mini, http.StatusCreated)
}

func (handler *PlanHandler) HandleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.workouts.new")
	defer span.End()

	miniID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req NodeRequest
	if !decodeJSON(w, r, "add workout", &req) {
		return
	}

	workout, err := handler.service.CreateWorkout(ctx, miniID, req.Name, req.Notes)
	if err != nil {
		writeServiceError(w, "add workout", err)
		return
	}
	writeJSON(w, "add workout", workout, http.StatusCreated)
}

func (handler *PlanHandler) HandleCreatePlannedExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.planned_exercises.new")
	defer span.End()

	workoutID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in PlannedExerciseInput
	if !decodeJSON(w, r, "add planned exercise", &in) {
		return
	}
	in.WorkoutID = workoutID

	pe, err := handler.service.CreatePlannedExercise(ctx, in)
	if err != nil {
		writeServiceError(w, "add planned exercise", err)
		return
	}
	writeJSON(w, "add planned exercise", pe, http.StatusCreated)
}

func (handler *PlanHandler) HandleUpdatePlannedExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.planned_exercises.update")
	defer span.End()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var upd PlannedExerciseUpdate
	if !decodeJSON(w, r, "update planned exercise", &upd) {
		return
	}

	pe, err := handler.service.UpdatePlannedExercise(ctx, id, upd)
	if err != nil {
		writeServiceError(w, "update planned exercise", err)
		return
	}
	writeJSON(w, "update planned exercise", pe, http.StatusOK)
}

func (handler *PlanHandler) HandleUpdateNode(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.nodes.update")
	defer span.End()

	level, err := ParseLevel(mux.Vars(r)["level"])
	if err != nil {
		http.Error(w, "error, plan level invalid", http.StatusBadRequest)
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var upd NodeUpdate
	if !decodeJSON(w, r, "update plan node", &upd) {
		return
	}

	if err := handler.service.UpdatePlanNode(ctx, level, id, upd); err != nil {
		writeServiceError(w, "update plan node", err)
		return
	}
	writeJSON(w, "update plan node", UpdatedResponse{UpdatedID: id}, http.StatusOK)
}

func (handler *PlanHandler) HandleDeleteNode(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.nodes.delete")
	defer span.End()

	level, err := ParseLevel(mux.Vars(r)["level"])
	if err != nil {
		http.Error(w, "error, plan level invalid", http.StatusBadRequest)
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := handler.service.DeletePlanNode(ctx, level, id); err != nil {
		writeServiceError(w, "delete plan node", err)
		return
	}

	log.Debugf("plan node %s/%d deleted", level, id)
	writeJSON(w, "delete plan node", DeletedResponse{DeletedID: id}, http.StatusOK)
}

func (handler *PlanHandler) HandleNextWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.workouts.next")
	defer span.End()

	next, err := handler.service.NextWorkout(ctx)
	if err != nil {
		writeServiceError(w, "next workout", err)
		return
	}
	writeJSON(w, "next workout", next, http.StatusOK)
}
