package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"jobswipe_server/models"
	"jobswipe_server/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResumeLinker turns a stored resume key into a short-lived download link.
type ResumeLinker interface {
	ReadURL(ctx context.Context, key string) (string, error)
}

// MatchService derives matches from positive interactions and serves them to
// job posters and candidates.
type MatchService struct {
	Matches  store.MatchRepository
	Profiles store.ProfileRepository
	Jobs     store.JobRepository
	Resumes  ResumeLinker // optional
	Log      *zap.Logger
	Now      func() time.Time
}

// DeriveMatch snapshots the candidate's current profile into a new Match for
// jobID. It must only run after the positive interaction is stored. A second
// call for the same pair fails with models.ErrAlreadyMatched.
func (ms *MatchService) DeriveMatch(ctx context.Context, jobID, candidateID string) (*models.Match, error) {
	profile, err := ms.Profiles.Get(ctx, candidateID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("candidate %s: %w", candidateID, models.ErrProfileNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate profile: %w", err)
	}

	match := &models.Match{
		MatchID:          uuid.NewString(),
		JobID:            jobID,
		CandidateID:      candidateID,
		CandidateProfile: models.SnapshotProfile(*profile),
		MatchedAt:        now(ms.Now),
	}

	err = ms.Matches.Create(ctx, match)
	if errors.Is(err, store.ErrConflict) {
		return nil, fmt.Errorf("job %s, candidate %s: %w", jobID, candidateID, models.ErrAlreadyMatched)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	ms.Log.Info("match created",
		zap.String("matchId", match.MatchID),
		zap.String("jobId", jobID),
		zap.String("candidateId", candidateID),
	)
	return match, nil
}

// GetMatch returns the match for the pair, or models.ErrNotFound.
func (ms *MatchService) GetMatch(ctx context.Context, jobID, candidateID string) (*models.Match, error) {
	return ms.Matches.Get(ctx, jobID, candidateID)
}

// ListMatchesForJob returns the job's matches, newest first. Only the job's
// poster may call it.
func (ms *MatchService) ListMatchesForJob(ctx context.Context, jobID, requesterID string) ([]models.Match, error) {
	job, err := ms.Jobs.Get(ctx, jobID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("job %s: %w", jobID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job: %w", err)
	}

	if job.PosterID != requesterID {
		ms.Log.Warn("match listing denied",
			zap.String("jobId", jobID),
			zap.String("requesterId", requesterID),
		)
		return nil, fmt.Errorf("job %s: %w", jobID, models.ErrUnauthorized)
	}

	matches, err := ms.Matches.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	sortMatches(matches)
	ms.attachResumeLinks(ctx, matches)
	return matches, nil
}

// ListMatchesForCandidate returns the jobs a candidate matched with, newest
// first.
func (ms *MatchService) ListMatchesForCandidate(ctx context.Context, candidateID string) ([]models.Match, error) {
	matches, err := ms.Matches.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	sortMatches(matches)
	return matches, nil
}

// attachResumeLinks presigns a read URL for every snapshot that carries a
// resume. A signing failure leaves that match without a link.
func (ms *MatchService) attachResumeLinks(ctx context.Context, matches []models.Match) {
	if ms.Resumes == nil {
		return
	}
	for i := range matches {
		key := matches[i].CandidateProfile.ResumeKey
		if key == "" {
			continue
		}
		url, err := ms.Resumes.ReadURL(ctx, key)
		if err != nil {
			ms.Log.Warn("failed to presign resume", zap.String("matchId", matches[i].MatchID), zap.Error(err))
			continue
		}
		matches[i].ResumeURL = url
	}
}

func sortMatches(matches []models.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].MatchedAt.Equal(matches[j].MatchedAt) {
			return matches[i].MatchedAt.After(matches[j].MatchedAt)
		}
		return matches[i].CandidateID < matches[j].CandidateID
	})
}

func now(fn func() time.Time) time.Time {
	if fn != nil {
		return fn().UTC()
	}
	return time.Now().UTC()
}
