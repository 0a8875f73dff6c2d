package training

import (
	"context"
	"net/http"

	"github.com/2beens/gymplan/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=log_service_mocks_test.go -package=training_test

type logService interface {
	RecordWorkout(ctx context.Context, workoutID int64, notes string) (WorkoutLog, error)
	RecordSet(ctx context.Context, in SetInput) (SetLog, error)
	LogSession(ctx context.Context, in SessionInput) (WorkoutLog, error)
	FinishWorkout(ctx context.Context, logID int64) (WorkoutLog, error)
	AmendWorkoutNotes(ctx context.Context, logID int64, notes string) error
	AmendSetNotes(ctx context.Context, setID int64, notes string) error
	GetWorkoutLog(ctx context.Context, logID int64) (WorkoutLog, error)
	DeleteWorkoutLog(ctx context.Context, logID int64) error
	ListHistory(ctx context.Context, q HistoryQuery) ([]WorkoutLog, error)
}

type NotesRequest struct {
	Notes string `json:"notes"`
}

type LogHandler struct {
	service logService
}

func NewLogHandler(service logService) *LogHandler {
	return &LogHandler{
		service: service,
	}
}

func (handler *LogHandler) HandleRecordWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.logs.new")
	defer span.End()

	workoutID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req NotesRequest
	if !decodeJSON(w, r, "record workout", &req) {
		return
	}

	l, err := handler.service.RecordWorkout(ctx, workoutID, req.Notes)
	if err != nil {
		writeServiceError(w, "record workout", err)
		return
	}

	log.Debugf("workout log %d opened for workout %d", l.ID, workoutID)
	writeJSON(w, "record workout", l, http.StatusCreated)
}

func (handler *LogHandler) HandleLogSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.logs.session")
	defer span.End()

	var in SessionInput
	if !decodeJSON(w, r, "log session", &in) {
		return
	}

	l, err := handler.service.LogSession(ctx, in)
	if err != nil {
		writeServiceError(w, "log session", err)
		return
	}

	log.Debugf("session logged: %d with %d sets", l.ID, len(l.Sets))
	writeJSON(w, "log session", l, http.StatusCreated)
}

func (handler *LogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.logs.get")
	defer span.End()

	logID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	l, err := handler.service.GetWorkoutLog(ctx, logID)
	if err != nil {
		writeServiceError(w, "get workout log", err)
		return
	}
	writeJSON(w, "get workout log", l, http.StatusOK)
}

func (handler *LogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.logs.delete")
	defer span.End()

	logID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := handler.service.DeleteWorkoutLog(ctx, logID); err != nil {
		writeServiceError(w, "delete workout log", err)
		return
	}
	writeJSON(w, "delete workout log", DeletedResponse{DeletedID: logID}, http.StatusOK)
}

func (handler *LogHandler) HandleRecordSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.sets.new")
	defer span.End()

	logID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in SetInput
	if !decodeJSON(w, r, "record set", &in) {
		return
	}
	in.WorkoutLogID = logID

	set, err := handler.service.RecordSet(ctx, in)
	if err != nil {
		writeServiceError(w, "record set", err)
		return
	}
	writeJSON(w, "record set", set, http.StatusCreated)
}

func (handler *LogHandler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.logs.finish")
	defer span.End()

	logID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	l, err := handler.service.FinishWorkout(ctx, logID)
	if err != nil {
		writeServiceError(w, "finish workout", err)
		return
	}
	writeJSON(w, "finish workout", l, http.StatusOK)
}

func (handler *LogHandler) HandleAmendWorkoutNotes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.logs.notes")
	defer span.End()

	logID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req NotesRequest
	if !decodeJSON(w, r, "amend workout notes", &req) {
		return
	}

	if err := handler.service.AmendWorkoutNotes(ctx, logID, req.Notes); err != nil {
		writeServiceError(w, "amend workout notes", err)
		return
	}
	writeJSON(w, "amend workout notes", UpdatedResponse{UpdatedID: logID}, http.StatusOK)
}

func (handler *LogHandler) HandleAmendSetNotes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.sets.notes")
	defer span.End()

	setID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req NotesRequest
	if !decodeJSON(w, r, "amend set notes", &req) {
		return
	}

	if err := handler.service.AmendSetNotes(ctx, setID, req.Notes); err != nil {
		writeServiceError(w, "amend set notes", err)
		return
	}
	writeJSON(w, "amend set notes", UpdatedResponse{UpdatedID: setID}, http.StatusOK)
}

func (handler *LogHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.history")
	defer span.End()

	var (
		q   HistoryQuery
		err error
	)
	if q.WorkoutID, err = queryID(r, "workoutId"); err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	if q.ExerciseID, err = queryID(r, "exerciseId"); err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	if q.From, err = queryTime(r, "from", false); err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	if q.To, err = queryTime(r, "to", true); err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	history, err := handler.service.ListHistory(ctx, q)
	if err != nil {
		writeServiceError(w, "list history", err)
		return
	}
	writeJSON(w, "list history", history, http.StatusOK)
}
