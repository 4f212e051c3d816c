package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"jobswipe_server/helpers"
	"jobswipe_server/services"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// UserProfileController handles requests related to user profiles
type UserProfileController struct {
	UserProfileService *services.UserProfileService
	Validate           *validator.Validate
	Log                *zap.Logger
}

// skillList accepts either ["go","sql"] or "go, sql".
type skillList []string

func (s *skillList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return errors.New("skills must be an array or a comma-separated string")
	}
	*s = []string{joined}
	return nil
}

type upsertProfileRequest struct {
	Name      *string   `json:"name"`
	Email     *string   `json:"email" validate:"omitempty,email"`
	Bio       *string   `json:"bio" validate:"omitempty,max=2000"`
	Skills    skillList `json:"skills"`
	ResumeKey *string   `json:"resumeKey"`
}

func (c *UserProfileController) HandleGetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}

	profile, err := c.UserProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, profile)
}

// HandleUpsertProfile creates or updates the caller's profile. Only the
// fields present in the body change.
func (c *UserProfileController) HandleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}

	var req upsertProfileRequest
	if err := decodeAndValidate(r, c.Validate, &req); err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}

	profile, err := c.UserProfileService.UpsertProfile(r.Context(), userID, services.ProfileInput{
		Name:      req.Name,
		Email:     req.Email,
		Bio:       req.Bio,
		Skills:    req.Skills,
		ResumeKey: req.ResumeKey,
	})
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, profile)
}
