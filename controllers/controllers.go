package controllers

import (
	"net/http"
	"strings"

	"jobswipe_server/apperror"
	"jobswipe_server/helpers"
	"jobswipe_server/middleware"

	"github.com/go-playground/validator/v10"
)

// HealthCheckHandler provides a basic health check
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// WelcomeHandler provides a welcome message
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Welcome to the JobSwipe API."})
}

// currentUser returns the id placed on the context by middleware.Auth.
func currentUser(r *http.Request) (string, error) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return "", apperror.Unauthorized("No token, authorization denied")
	}
	return userID, nil
}

// decodeAndValidate decodes the body into dst and runs its validate tags.
func decodeAndValidate(r *http.Request, v *validator.Validate, dst interface{}) error {
	if err := helpers.DecodeJSON(r, dst); err != nil {
		return err
	}
	if err := v.Struct(dst); err != nil {
		return apperror.BadRequest(validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "Invalid request body."
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return "Invalid or missing fields: " + strings.Join(fields, ", ")
}
