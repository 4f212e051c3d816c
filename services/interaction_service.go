package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"jobswipe_server/models"
	"jobswipe_server/store"

	"go.uber.org/zap"
)

// InteractionService is the interaction ledger. It records one decision per
// (user, job) and hands positive decisions to the MatchService.
type InteractionService struct {
	Interactions store.InteractionRepository
	Matches      *MatchService
	Log          *zap.Logger
	Now          func() time.Time
}

// RecordInteraction stores the user's decision on jobID and, if it is
// positive, derives the match.
//
// The interaction is written before the match. If the match cannot be
// derived the interaction stays recorded and the error is returned alongside
// it; the reconcile command repairs such gaps later.
func (s *InteractionService) RecordInteraction(ctx context.Context, userID, jobID, label string) (*models.Interaction, *models.Match, error) {
	userID = strings.TrimSpace(userID)
	jobID = strings.TrimSpace(jobID)
	if userID == "" || jobID == "" {
		return nil, nil, fmt.Errorf("userId and jobId are required: %w", models.ErrInvalidInput)
	}

	decision, err := models.ParseDecision(label)
	if err != nil {
		return nil, nil, err
	}

	interaction := &models.Interaction{
		UserID:    userID,
		JobID:     jobID,
		Decision:  decision,
		Label:     strings.TrimSpace(label),
		CreatedAt: now(s.Now),
	}

	err = s.Interactions.Create(ctx, interaction)
	if errors.Is(err, store.ErrConflict) {
		return nil, nil, fmt.Errorf("user %s, job %s: %w", userID, jobID, models.ErrDuplicateInteraction)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to record interaction: %w", err)
	}

	s.Log.Debug("interaction recorded",
		zap.String("userId", userID),
		zap.String("jobId", jobID),
		zap.String("decision", string(decision)),
	)

	if !decision.IsPositive() {
		return interaction, nil, nil
	}

	match, err := s.deriveMatch(ctx, jobID, userID)
	return interaction, match, err
}

// AmendDecision changes the decision of an existing interaction. Moving to a
// positive decision derives the match if there is none yet. Moving to a
// negative one leaves any existing match in place.
func (s *InteractionService) AmendDecision(ctx context.Context, userID, jobID, label string) (*models.Interaction, *models.Match, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(jobID) == "" {
		return nil, nil, fmt.Errorf("userId and jobId are required: %w", models.ErrInvalidInput)
	}

	decision, err := models.ParseDecision(label)
	if err != nil {
		return nil, nil, err
	}

	updatedAt := now(s.Now)
	interaction, err := s.Interactions.UpdateDecision(ctx, &models.Interaction{
		UserID:    userID,
		JobID:     jobID,
		Decision:  decision,
		Label:     strings.TrimSpace(label),
		UpdatedAt: &updatedAt,
	})
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil, fmt.Errorf("interaction for job %s: %w", jobID, models.ErrNotFound)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to amend interaction: %w", err)
	}

	s.Log.Info("interaction amended",
		zap.String("userId", userID),
		zap.String("jobId", jobID),
		zap.String("decision", string(decision)),
	)

	if !decision.IsPositive() {
		return interaction, nil, nil
	}

	match, err := s.deriveMatch(ctx, jobID, userID)
	return interaction, match, err
}

// deriveMatch treats an existing match as success and returns it.
func (s *InteractionService) deriveMatch(ctx context.Context, jobID, userID string) (*models.Match, error) {
	match, err := s.Matches.DeriveMatch(ctx, jobID, userID)
	switch {
	case err == nil:
		return match, nil
	case errors.Is(err, models.ErrAlreadyMatched):
		s.Log.Warn("match already present", zap.String("jobId", jobID), zap.String("candidateId", userID))
		return s.Matches.GetMatch(ctx, jobID, userID)
	case errors.Is(err, models.ErrProfileNotFound):
		s.Log.Warn("positive interaction recorded without match",
			zap.String("jobId", jobID),
			zap.String("candidateId", userID),
			zap.Error(err),
		)
		return nil, err
	default:
		s.Log.Error("match derivation failed",
			zap.String("jobId", jobID),
			zap.String("candidateId", userID),
			zap.Error(err),
		)
		return nil, err
	}
}

// ListInteractions returns every decision of the user, newest first.
func (s *InteractionService) ListInteractions(ctx context.Context, userID string) ([]models.Interaction, error) {
	interactions, err := s.Interactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}
	sort.SliceStable(interactions, func(i, j int) bool {
		if !interactions[i].CreatedAt.Equal(interactions[j].CreatedAt) {
			return interactions[i].CreatedAt.After(interactions[j].CreatedAt)
		}
		return interactions[i].JobID < interactions[j].JobID
	})
	return interactions, nil
}

// ListPositive returns the jobs the user decided positively on.
func (s *InteractionService) ListPositive(ctx context.Context, userID string) ([]models.AcceptedJob, error) {
	interactions, err := s.Interactions.ListPositiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accepted jobs: %w", err)
	}
	accepted := make([]models.AcceptedJob, 0, len(interactions))
	for _, i := range interactions {
		accepted = append(accepted, models.AcceptedJob{JobID: i.JobID})
	}
	return accepted, nil
}
