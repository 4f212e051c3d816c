package controllers

import (
	"net/http"
	"strconv"

	"jobswipe_server/apperror"
	"jobswipe_server/helpers"
	"jobswipe_server/services"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// JobController serves the job catalog, the swipe feed and the poster's
// match listings.
type JobController struct {
	JobService   *services.JobService
	FeedService  *services.FeedService
	MatchService *services.MatchService
	Validate     *validator.Validate
	Log          *zap.Logger
}

type createJobRequest struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Salary      string `json:"salary"`
	Description string `json:"description"`
}

func (c *JobController) HandleCreateJob(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}

	var req createJobRequest
	if err := decodeAndValidate(r, c.Validate, &req); err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}

	job, err := c.JobService.CreateJob(r.Context(), userID, services.JobInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Salary:      req.Salary,
		Description: req.Description,
	})
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusCreated, job)
}

func (c *JobController) HandleGetJob(w http.ResponseWriter, r *http.Request) {
	job, err := c.JobService.GetJob(r.Context(), mux.Vars(r)["jobId"])
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, job)
}

// HandleFeed returns the caller's swipe feed. Without ?limit the configured
// default applies.
func (c *JobController) HandleFeed(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}

	limit := c.FeedService.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			helpers.WriteError(w, c.Log, apperror.BadRequest("limit must be an integer."))
			return
		}
	}

	jobs, err := c.FeedService.ComposeFeed(r.Context(), userID, limit)
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, jobs)
}

// HandleMatchesForJob lists the candidates who matched the caller's job.
func (c *JobController) HandleMatchesForJob(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}

	matches, err := c.MatchService.ListMatchesForJob(r.Context(), mux.Vars(r)["jobId"], userID)
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, matches)
}

// HandleMyMatches lists the jobs the caller matched with as a candidate.
func (c *JobController) HandleMyMatches(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}

	matches, err := c.MatchService.ListMatchesForCandidate(r.Context(), userID)
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, matches)
}
