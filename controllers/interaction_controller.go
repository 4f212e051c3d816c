package controllers

import (
	"net/http"

	"jobswipe_server/apperror"
	"jobswipe_server/helpers"
	"jobswipe_server/models"
	"jobswipe_server/services"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type InteractionController struct {
	InteractionService *services.InteractionService
	Validate           *validator.Validate
	Log                *zap.Logger
}

func NewInteractionController(service *services.InteractionService, v *validator.Validate, log *zap.Logger) *InteractionController {
	return &InteractionController{InteractionService: service, Validate: v, Log: log}
}

type recordInteractionRequest struct {
	JobID    string `json:"jobId" validate:"required"`
	Decision string `json:"decision"`
	// Interaction is the field name older clients send.
	Interaction string `json:"interaction"`
}

func (req recordInteractionRequest) label() string {
	if req.Decision != "" {
		return req.Decision
	}
	return req.Interaction
}

type amendInteractionRequest struct {
	Decision string `json:"decision" validate:"required"`
}

type interactionResponse struct {
	Interaction *models.Interaction `json:"interaction"`
	Match       *models.Match       `json:"match,omitempty"`
}

// HandleRecordInteraction records a swipe on a job.
func (c *InteractionController) HandleRecordInteraction(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}

	var req recordInteractionRequest
	if err := decodeAndValidate(r, c.Validate, &req); err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}
	if req.label() == "" {
		helpers.WriteError(w, c.Log, apperror.BadRequest("decision is required."))
		return
	}

	interaction, match, err := c.InteractionService.RecordInteraction(r.Context(), userID, req.JobID, req.label())
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusCreated, interactionResponse{Interaction: interaction, Match: match})
}

// HandleAmendInteraction changes the caller's decision on a job.
func (c *InteractionController) HandleAmendInteraction(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}

	var req amendInteractionRequest
	if err := decodeAndValidate(r, c.Validate, &req); err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}

	interaction, match, err := c.InteractionService.AmendDecision(r.Context(), userID, mux.Vars(r)["jobId"], req.Decision)
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, interactionResponse{Interaction: interaction, Match: match})
}

// HandleListInteractions lists every decision of the caller.
func (c *InteractionController) HandleListInteractions(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}

	interactions, err := c.InteractionService.ListInteractions(r.Context(), userID)
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, interactions)
}

// HandleListAccepted lists the jobs the caller swiped positively on.
func (c *InteractionController) HandleListAccepted(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}

	accepted, err := c.InteractionService.ListPositive(r.Context(), userID)
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, accepted)
}
