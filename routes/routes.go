package routes

import (
	"net/http"

	"jobswipe_server/controllers"
	"jobswipe_server/middleware"
	"jobswipe_server/services"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// Services bundles everything the HTTP layer calls into. Resumes may be nil.
type Services struct {
	Interactions *services.InteractionService
	Jobs         *services.JobService
	Feed         *services.FeedService
	Matches      *services.MatchService
	Profiles     *services.UserProfileService
	Resumes      *services.ResumeService
}

type Options struct {
	Verifier       middleware.TokenVerifier
	AllowedOrigins []string
	Log            *zap.Logger
}

// NewRouter wires every route. Everything under /api requires a bearer token.
func NewRouter(svc Services, opts Options) http.Handler {
	r := mux.NewRouter()
	validate := validator.New()

	RegisterRoutes(r)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth(opts.Verifier, opts.Log))

	RegisterInteractionRoutes(api, svc.Interactions, validate, opts.Log)
	RegisterJobRoutes(api, svc, validate, opts.Log)
	RegisterUserProfileRoutes(api, svc.Profiles, svc.Resumes, validate, opts.Log)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	}).Handler(r)

	return middleware.AccessLog(opts.Log)(corsHandler)
}

// RegisterRoutes sets up the unauthenticated routes
func RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")
	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
}
