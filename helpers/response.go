package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"jobswipe_server/apperror"

	"go.uber.org/zap"
)

// WriteJSONResponse writes v as the JSON body with the given status.
func WriteJSONResponse(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps err onto a {"code","message"} body. Server-side failures
// are logged with their cause; the client only sees the generic message.
func WriteError(w http.ResponseWriter, log *zap.Logger, err error) {
	appErr := apperror.FromError(err)
	if appErr.Status >= http.StatusInternalServerError {
		log.Error("request failed", zap.Error(err))
	} else {
		log.Debug("request rejected", zap.String("code", appErr.Code), zap.Error(err))
	}
	WriteJSONResponse(w, appErr.Status, appErr)
}

// DecodeJSON reads one JSON object from the body into v. An empty body is a
// bad request like any other malformed payload.
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperror.BadRequest("Request body is required.")
		}
		return apperror.BadRequest("Invalid request body.")
	}
	return nil
}
