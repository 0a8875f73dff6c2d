package training

import (
	"github.com/gorilla/mux"
)

func (handler *PlanHandler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/plans", handler.HandleList).Methods("GET", "OPTIONS").Name("list-plans")
	router.HandleFunc("/plans", handler.HandleCreateMacro).Methods("POST", "OPTIONS").Name("new-plan")
	router.HandleFunc("/plans/count", handler.HandleCount).Methods("GET").Name("count-plans")
	router.HandleFunc("/plans/build", handler.HandleBuild).Methods("POST", "OPTIONS").Name("build-plan")
	router.HandleFunc("/plans/{id}/tree", handler.HandleTree).Methods("GET").Name("plan-tree")
	router.HandleFunc("/plans/{id}/minis", handler.HandleCreateMini).Methods("POST", "OPTIONS").Name("new-mini")
	router.HandleFunc("/minis/{id}/workouts", handler.HandleCreateWorkout).Methods("POST", "OPTIONS").Name("new-workout")
	router.HandleFunc("/workouts/next", handler.HandleNextWorkout).Methods("GET").Name("next-workout")
	router.HandleFunc("/workouts/{id}/exercises", handler.HandleCreatePlannedExercise).Methods("POST", "OPTIONS").Name("new-planned-exercise")
	router.HandleFunc("/exercises/planned/{id}", handler.HandleUpdatePlannedExercise).Methods("PUT", "OPTIONS").Name("update-planned-exercise")
	router.HandleFunc("/nodes/{level}/{id}", handler.HandleUpdateNode).Methods("PUT", "OPTIONS").Name("update-node")
	router.HandleFunc("/nodes/{level}/{id}", handler.HandleDeleteNode).Methods("DELETE", "OPTIONS").Name("delete-node")
}

func (handler *LogHandler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/workouts/{id}/logs", handler.HandleRecordWorkout).Methods("POST", "OPTIONS").Name("new-workout-log")
	router.HandleFunc("/logs/session", handler.HandleLogSession).Methods("POST", "OPTIONS").Name("log-session")
	router.HandleFunc("/logs/{id}", handler.HandleGet).Methods("GET").Name("get-workout-log")
	router.HandleFunc("/logs/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout-log")
	router.HandleFunc("/logs/{id}/sets", handler.HandleRecordSet).Methods("POST", "OPTIONS").Name("new-set")
	router.HandleFunc("/logs/{id}/finish", handler.HandleFinish).Methods("POST", "OPTIONS").Name("finish-workout")
	router.HandleFunc("/logs/{id}/notes", handler.HandleAmendWorkoutNotes).Methods("PUT", "OPTIONS").Name("workout-log-notes")
	router.HandleFunc("/sets/{id}/notes", handler.HandleAmendSetNotes).Methods("PUT", "OPTIONS").Name("set-notes")
	router.HandleFunc("/history", handler.HandleHistory).Methods("GET").Name("history")
}

func (handler *LibraryHandler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/library/categories", handler.HandleListCategories).Methods("GET").Name("list-categories")
	router.HandleFunc("/library/categories", handler.HandleAddCategory).Methods("POST", "OPTIONS").Name("new-category")
	router.HandleFunc("/library/categories/{id}", handler.HandleDeleteCategory).Methods("DELETE", "OPTIONS").Name("delete-category")
	router.HandleFunc("/library/exercises", handler.HandleListExercises).Methods("GET").Name("list-exercises")
	router.HandleFunc("/library/exercises", handler.HandleAddExercise).Methods("POST", "OPTIONS").Name("new-exercise")
	router.HandleFunc("/library/exercises/{id}", handler.HandleDeleteExercise).Methods("DELETE", "OPTIONS").Name("delete-exercise")
	router.HandleFunc("/library/exercises/{id}/categories/{categoryId}", handler.HandleAttachCategory).Methods("POST", "OPTIONS").Name("attach-category")
	router.HandleFunc("/library/exercises/{id}/categories/{categoryId}", handler.HandleDetachCategory).Methods("DELETE", "OPTIONS").Name("detach-category")
	router.HandleFunc("/library/schemes", handler.HandleListSchemes).Methods("GET").Name("list-schemes")
	router.HandleFunc("/library/schemes", handler.HandleAddScheme).Methods("POST", "OPTIONS").Name("new-scheme")
	router.HandleFunc("/library/schemes/{id}", handler.HandleDeleteScheme).Methods("DELETE", "OPTIONS").Name("delete-scheme")
}
