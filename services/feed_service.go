package services

import (
	"context"
	"fmt"
	"sort"

	"jobswipe_server/models"
	"jobswipe_server/store"

	"go.uber.org/zap"
)

// FeedService composes the swipe feed: jobs the user has not judged yet and
// did not post, newest first.
type FeedService struct {
	Jobs         store.JobRepository
	Interactions store.InteractionRepository
	Log          *zap.Logger

	DefaultLimit       int
	MaxLimit           int
	ExcludeOwnPostings bool
}

// ComposeFeed returns at most limit candidate jobs for userID. A limit above
// MaxLimit is clamped, zero yields an empty feed and a negative limit is
// rejected.
func (fs *FeedService) ComposeFeed(ctx context.Context, userID string, limit int) ([]models.Job, error) {
	if userID == "" {
		return nil, fmt.Errorf("userId is required: %w", models.ErrInvalidInput)
	}
	if limit < 0 {
		return nil, fmt.Errorf("limit must not be negative: %w", models.ErrInvalidInput)
	}
	if fs.MaxLimit > 0 && limit > fs.MaxLimit {
		limit = fs.MaxLimit
	}
	if limit == 0 {
		return []models.Job{}, nil
	}

	judged, err := fs.judgedJobs(ctx, userID)
	if err != nil {
		return nil, err
	}

	var filter models.JobFilter
	if fs.ExcludeOwnPostings {
		filter.ExcludePosterID = userID
	}
	jobs, err := fs.Jobs.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	feed := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if _, ok := judged[job.ID]; ok {
			continue
		}
		if fs.ExcludeOwnPostings && job.PosterID == userID {
			continue
		}
		feed = append(feed, job)
	}

	sort.SliceStable(feed, func(i, j int) bool {
		if !feed[i].CreatedAt.Equal(feed[j].CreatedAt) {
			return feed[i].CreatedAt.After(feed[j].CreatedAt)
		}
		return feed[i].ID < feed[j].ID
	})

	if len(feed) > limit {
		feed = feed[:limit]
	}

	fs.Log.Debug("feed composed",
		zap.String("userId", userID),
		zap.Int("judged", len(judged)),
		zap.Int("returned", len(feed)),
	)
	return feed, nil
}

// judgedJobs is the set of job ids the user has any interaction with.
func (fs *FeedService) judgedJobs(ctx context.Context, userID string) (map[string]struct{}, error) {
	interactions, err := fs.Interactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}
	judged := make(map[string]struct{}, len(interactions))
	for _, i := range interactions {
		judged[i.JobID] = struct{}{}
	}
	return judged, nil
}
