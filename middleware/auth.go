package middleware

import (
	"net/http"
	"strings"

	"jobswipe_server/apperror"
	"jobswipe_server/helpers"

	"go.uber.org/zap"
)

// TokenVerifier resolves a bearer token to a user id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Auth rejects requests without a valid bearer token and puts the caller's
// user id on the request context.
func Auth(verifier TokenVerifier, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := strings.TrimSpace(r.Header.Get("Authorization"))
			if header == "" {
				helpers.WriteError(w, log, apperror.Unauthorized("No token, authorization denied"))
				return
			}

			scheme, token, ok := strings.Cut(header, " ")
			token = strings.TrimSpace(token)
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				helpers.WriteError(w, log, apperror.Unauthorized("Token format is incorrect"))
				return
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				log.Debug("token rejected", zap.String("requestId", RequestIDFromContext(r.Context())), zap.Error(err))
				helpers.WriteError(w, log, apperror.Unauthorized("Token is not valid"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
