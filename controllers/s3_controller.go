package controllers

import (
	"net/http"

	"jobswipe_server/apperror"
	"jobswipe_server/helpers"
	"jobswipe_server/services"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ResumeController hands out presigned upload URLs. ResumeService is nil when
// no bucket is configured.
type ResumeController struct {
	ResumeService *services.ResumeService
	Validate      *validator.Validate
	Log           *zap.Logger
}

type resumeUploadRequest struct {
	FileName string `json:"fileName" validate:"required"`
	FileType string `json:"fileType"`
}

// HandleResumeUploadURL generates a presigned URL for uploading the caller's
// resume
func (c *ResumeController) HandleResumeUploadURL(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}
	if c.ResumeService == nil {
		helpers.WriteError(w, c.Log, apperror.New(http.StatusServiceUnavailable, "ResumeStorageDisabled", "Resume storage is not configured.", nil))
		return
	}

	var req resumeUploadRequest
	if err := decodeAndValidate(r, c.Validate, &req); err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}

	url, key, err := c.ResumeService.UploadURL(r.Context(), userID, req.FileName, req.FileType)
	if err != nil {
		helpers.WriteError(w, c.Log, err)
		return
	}
	c.Log.Info("resume upload url issued", zap.String("userId", userID), zap.String("key", key))
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"url": url, "key": key})
}
