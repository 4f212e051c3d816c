package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobswipe_server/models"
	"jobswipe_server/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type JobService struct {
	Jobs store.JobRepository
	Log  *zap.Logger
	Now  func() time.Time
}

// JobInput carries the poster-editable fields of a job.
type JobInput struct {
	Title       string
	Company     string
	Location    string
	Salary      string
	Description string
}

// CreateJob adds a posting owned by posterID.
func (js *JobService) CreateJob(ctx context.Context, posterID string, in JobInput) (*models.Job, error) {
	job := &models.Job{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		Company:     strings.TrimSpace(in.Company),
		Location:    strings.TrimSpace(in.Location),
		Salary:      strings.TrimSpace(in.Salary),
		Description: strings.TrimSpace(in.Description),
		PosterID:    posterID,
		CreatedAt:   now(js.Now),
	}
	if posterID == "" || job.Title == "" || job.Company == "" || job.Location == "" {
		return nil, fmt.Errorf("title, company and location are required: %w", models.ErrInvalidInput)
	}

	if err := js.Jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	js.Log.Info("job created", zap.String("jobId", job.ID), zap.String("posterId", posterID))
	return job, nil
}

func (js *JobService) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	job, err := js.Jobs.Get(ctx, jobID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("job %s: %w", jobID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job: %w", err)
	}
	return job, nil
}
