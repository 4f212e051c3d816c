package routes

import (
	"jobswipe_server/controllers"
	"jobswipe_server/services"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterInteractionRoutes sets up routes under /api/interactions
func RegisterInteractionRoutes(api *mux.Router, service *services.InteractionService, v *validator.Validate, log *zap.Logger) {
	controller := controllers.NewInteractionController(service, v, log)

	router := api.PathPrefix("/interactions").Subrouter()
	router.HandleFunc("", controller.HandleRecordInteraction).Methods("POST")
	router.HandleFunc("", controller.HandleListInteractions).Methods("GET")
	router.HandleFunc("/accepted", controller.HandleListAccepted).Methods("GET")
	router.HandleFunc("/{jobId}", controller.HandleAmendInteraction).Methods("PATCH")
}
