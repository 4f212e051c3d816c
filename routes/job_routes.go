package routes

import (
	"jobswipe_server/controllers"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterJobRoutes sets up routes under /api/jobs and /api/matches
func RegisterJobRoutes(api *mux.Router, svc Services, v *validator.Validate, log *zap.Logger) {
	controller := &controllers.JobController{
		JobService:   svc.Jobs,
		FeedService:  svc.Feed,
		MatchService: svc.Matches,
		Validate:     v,
		Log:          log,
	}

	jobs := api.PathPrefix("/jobs").Subrouter()
	// Fixed paths first so they are not taken for a job id.
	jobs.HandleFunc("/feed", controller.HandleFeed).Methods("GET")
	jobs.HandleFunc("/matches/{jobId}", controller.HandleMatchesForJob).Methods("GET")
	jobs.HandleFunc("", controller.HandleCreateJob).Methods("POST")
	jobs.HandleFunc("/{jobId}", controller.HandleGetJob).Methods("GET")

	api.HandleFunc("/matches/mine", controller.HandleMyMatches).Methods("GET")
}
