package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"jobswipe_server/models"
	"jobswipe_server/services"
	"jobswipe_server/store"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type testEnv struct {
	store        *store.Store
	interactions *services.InteractionService
	matches      *services.MatchService
	feed         *services.FeedService
	reconcile    *services.ReconcileService
	clock        *fakeClock
}

// fakeClock ticks one second per call.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := zaptest.NewLogger(t)
	st := store.NewMemoryStore()
	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}

	matches := &services.MatchService{
		Matches:  st.Matches,
		Profiles: st.Profiles,
		Jobs:     st.Jobs,
		Log:      log,
		Now:      clock.Now,
	}
	return &testEnv{
		store:   st,
		matches: matches,
		clock:   clock,
		interactions: &services.InteractionService{
			Interactions: st.Interactions,
			Matches:      matches,
			Log:          log,
			Now:          clock.Now,
		},
		feed: &services.FeedService{
			Jobs:               st.Jobs,
			Interactions:       st.Interactions,
			Log:                log,
			DefaultLimit:       models.DefaultFeedLimit,
			MaxLimit:           models.MaxFeedLimit,
			ExcludeOwnPostings: true,
		},
		reconcile: &services.ReconcileService{
			Interactions: st.Interactions,
			Matches:      matches,
			Log:          log,
		},
	}
}

func (e *testEnv) addProfile(t *testing.T, p models.UserProfile) {
	t.Helper()
	require.NoError(t, e.store.Profiles.Put(context.Background(), &p))
}

// addJob stores a job whose CreatedAt advances with every call.
func (e *testEnv) addJob(t *testing.T, id, posterID string) models.Job {
	t.Helper()
	job := models.Job{
		ID:        id,
		Title:     "Engineer " + id,
		Company:   "Acme",
		Location:  "Remote",
		PosterID:  posterID,
		CreatedAt: e.clock.Now(),
	}
	require.NoError(t, e.store.Jobs.Create(context.Background(), &job))
	return job
}

func jobIDs(jobs []models.Job) []string {
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	return ids
}
