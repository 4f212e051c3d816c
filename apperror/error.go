package apperror

import (
	"errors"
	"net/http"

	"jobswipe_server/models"
)

// Stable error codes returned to clients.
const (
	CodeInvalidInput         = "InvalidInput"
	CodeDuplicateInteraction = "DuplicateInteraction"
	CodeProfileNotFound      = "ProfileNotFound"
	CodeNotFound             = "NotFound"
	CodeUnauthorized         = "Unauthorized"
	CodeInternal             = "InternalError"
)

type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, CodeInvalidInput, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, CodeUnauthorized, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, CodeNotFound, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, CodeInternal, "Internal Server Error", err)
}

// FromError maps a service error onto its client-facing status and code.
// Anything unrecognized becomes a 500 that hides the underlying message.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, models.ErrDuplicateInteraction):
		return New(http.StatusBadRequest, CodeDuplicateInteraction, "Interaction already recorded.", err)
	case errors.Is(err, models.ErrInvalidInput):
		return New(http.StatusBadRequest, CodeInvalidInput, err.Error(), err)
	case errors.Is(err, models.ErrProfileNotFound):
		return New(http.StatusNotFound, CodeProfileNotFound, "Candidate profile not found.", err)
	case errors.Is(err, models.ErrUnauthorized):
		return New(http.StatusUnauthorized, CodeUnauthorized, "Not authorized to view this resource.", err)
	case errors.Is(err, models.ErrNotFound):
		return New(http.StatusNotFound, CodeNotFound, "Resource not found.", err)
	default:
		return Internal(err)
	}
}
