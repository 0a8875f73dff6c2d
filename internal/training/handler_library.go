package training

import (
	"context"
	"net/http"

	"github.com/2beens/gymplan/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=library_service_mocks_test.go -package=training_test

type libraryService interface {
	UpsertCategory(ctx context.Context, name string) (Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	UpsertExercise(ctx context.Context, name, defaultNotes string) (Exercise, error)
	ListExercises(ctx context.Context) ([]Exercise, error)
	DeleteExercise(ctx context.Context, id int64) error
	AttachCategory(ctx context.Context, exerciseID, categoryID int64) error
	DetachCategory(ctx context.Context, exerciseID, categoryID int64) error
	UpsertScheme(ctx context.Context, sc Scheme) (Scheme, error)
	ListSchemes(ctx context.Context) ([]Scheme, error)
	DeleteScheme(ctx context.Context, id int64) error
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type ExerciseRequest struct {
	Name         string `json:"name"`
	DefaultNotes string `json:"defaultNotes"`
}

type LibraryHandler struct {
	service libraryService
}

func NewLibraryHandler(service libraryService) *LibraryHandler {
	return &LibraryHandler{
		service: service,
	}
}

func (handler *LibraryHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.library.categories.list")
	defer span.End()

	categories, err := handler.service.ListCategories(ctx)
	if err != nil {
		writeServiceError(w, "list categories", err)
		return
	}
	writeJSON(w, "list categories", categories, http.StatusOK)
}

func (handler *LibraryHandler) HandleAddCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.library.categories.new")
	defer span.End()

	var req CategoryRequest
	if !decodeJSON(w, r, "add category", &req) {
		return
	}

	category, err := handler.service.UpsertCategory(ctx, req.Name)
	if err != nil {
		writeServiceError(w, "add category", err)
		return
	}
	writeJSON(w, "add category", category, http.StatusOK)
}

func (handler *LibraryHandler) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.library.categories.delete")
	defer span.End()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := handler.service.DeleteCategory(ctx, id); err != nil {
		writeServiceError(w, "delete category", err)
		return
	}
	writeJSON(w, "delete category", DeletedResponse{DeletedID: id}, http.StatusOK)
}

func (handler *LibraryHandler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.library.exercises.list")
	defer span.End()

	exercises, err := handler.service.ListExercises(ctx)
	if err != nil {
		writeServiceError(w, "list exercises", err)
		return
	}
	writeJSON(w, "list exercises", exercises, http.StatusOK)
}

func (handler *LibraryHandler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.library.exercises.new")
	defer span.End()

	var req ExerciseRequest
	if !decodeJSON(w, r, "add exercise", &req) {
		return
	}

	exercise, err := handler.service.UpsertExercise(ctx, req.Name, req.DefaultNotes)
	if err != nil {
		writeServiceError(w, "add exercise", err)
		return
	}

	log.Debugf("exercise upserted: %d [%s]", exercise.ID, exercise.Name)
	writeJSON(w, "add exercise", exercise, http.StatusOK)
}

func (handler *LibraryHandler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.library.exercises.delete")
	defer span.End()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := handler.service.DeleteExercise(ctx, id); err != nil {
		writeServiceError(w, "delete exercise", err)
		return
	}
	writeJSON(w, "delete exercise", DeletedResponse{DeletedID: id}, http.StatusOK)
}

func (handler *LibraryHandler) HandleAttachCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.library.exercises.attach")
	defer span.End()

	exerciseID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	categoryID, ok := pathID(w, r, "categoryId")
	if !ok {
		return
	}
	if err := handler.service.AttachCategory(ctx, exerciseID, categoryID); err != nil {
		writeServiceError(w, "attach category", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (handler *LibraryHandler) HandleDetachCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.library.exercises.detach")
	defer span.End()

	exerciseID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	categoryID, ok := pathID(w, r, "categoryId")
	if !ok {
		return
	}
	if err := handler.service.DetachCategory(ctx, exerciseID, categoryID); err != nil {
		writeServiceError(w, "detach category", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (handler *LibraryHandler) HandleListSchemes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.library.schemes.list")
	defer span.End()

	schemes, err := handler.service.ListSchemes(ctx)
	if err != nil {
		writeServiceError(w, "list schemes", err)
		return
	}
	writeJSON(w, "list schemes", schemes, http.StatusOK)
}

func (handler *LibraryHandler) HandleAddScheme(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.library.schemes.new")
	defer span.End()

	var sc Scheme
	if !decodeJSON(w, r, "add scheme", &sc) {
		return
	}

	saved, err := handler.service.UpsertScheme(ctx, sc)
	if err != nil {
		writeServiceError(w, "add scheme", err)
		return
	}
	writeJSON(w, "add scheme", saved, http.StatusOK)
}

func (handler *LibraryHandler) HandleDeleteScheme(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.library.schemes.delete")
	defer span.End()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := handler.service.DeleteScheme(ctx, id); err != nil {
		writeServiceError(w, "delete scheme", err)
		return
	}
	writeJSON(w, "delete scheme", DeletedResponse{DeletedID: id}, http.StatusOK)
}
