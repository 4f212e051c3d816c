package routes

import (
	"jobswipe_server/controllers"
	"jobswipe_server/services"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterUserProfileRoutes sets up routes under /api/profile
func RegisterUserProfileRoutes(api *mux.Router, profiles *services.UserProfileService, resumes *services.ResumeService, v *validator.Validate, log *zap.Logger) {
	profileController := &controllers.UserProfileController{UserProfileService: profiles, Validate: v, Log: log}
	resumeController := &controllers.ResumeController{ResumeService: resumes, Validate: v, Log: log}

	router := api.PathPrefix("/profile").Subrouter()
	router.HandleFunc("/me", profileController.HandleGetMyProfile).Methods("GET")
	router.HandleFunc("", profileController.HandleUpsertProfile).Methods("POST")
	router.HandleFunc("/resume-upload-url", resumeController.HandleResumeUploadURL).Methods("POST")
}
