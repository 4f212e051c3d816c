package store

import (
	"context"
	"sync"

	"jobswipe_server/models"
)

type pairKey struct{ a, b string }

// MemoryStore keeps every collection in process memory. It provides the same
// conditional-create semantics as the DynamoDB store and backs local runs and
// tests.
type MemoryStore struct {
	mu           sync.RWMutex
	interactions map[pairKey]models.Interaction
	matches      map[pairKey]models.Match
	jobs         map[string]models.Job
	profiles     map[string]models.UserProfile
}

// NewMemoryStore returns a Store whose repositories share one MemoryStore.
func NewMemoryStore() *Store {
	m := &MemoryStore{
		interactions: make(map[pairKey]models.Interaction),
		matches:      make(map[pairKey]models.Match),
		jobs:         make(map[string]models.Job),
		profiles:     make(map[string]models.UserProfile),
	}
	return &Store{
		Interactions: memoryInteractions{m},
		Matches:      memoryMatches{m},
		Jobs:         memoryJobs{m},
		Profiles:     memoryProfiles{m},
	}
}

type memoryInteractions struct{ m *MemoryStore }

func (r memoryInteractions) Create(_ context.Context, i *models.Interaction) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	k := pairKey{i.UserID, i.JobID}
	if _, ok := r.m.interactions[k]; ok {
		return ErrConflict
	}
	r.m.interactions[k] = *i
	return nil
}

func (r memoryInteractions) Get(_ context.Context, userID, jobID string) (*models.Interaction, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	i, ok := r.m.interactions[pairKey{userID, jobID}]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &i, nil
}

func (r memoryInteractions) UpdateDecision(_ context.Context, i *models.Interaction) (*models.Interaction, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	k := pairKey{i.UserID, i.JobID}
	cur, ok := r.m.interactions[k]
	if !ok {
		return nil, models.ErrNotFound
	}
	cur.Decision = i.Decision
	cur.Label = i.Label
	cur.UpdatedAt = i.UpdatedAt
	r.m.interactions[k] = cur
	return &cur, nil
}

func (r memoryInteractions) ListByUser(_ context.Context, userID string) ([]models.Interaction, error) {
	return r.list(userID, false), nil
}

func (r memoryInteractions) ListPositiveByUser(_ context.Context, userID string) ([]models.Interaction, error) {
	return r.list(userID, true), nil
}

func (r memoryInteractions) list(userID string, positiveOnly bool) []models.Interaction {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	out := []models.Interaction{}
	for k, i := range r.m.interactions {
		if k.a != userID || (positiveOnly && !i.Decision.IsPositive()) {
			continue
		}
		out = append(out, i)
	}
	return out
}

func (r memoryInteractions) ScanPositive(_ context.Context, fn func(models.Interaction) error) error {
	r.m.mu.RLock()
	var positive []models.Interaction
	for _, i := range r.m.interactions {
		if i.Decision.IsPositive() {
			positive = append(positive, i)
		}
	}
	r.m.mu.RUnlock()

	for _, i := range positive {
		if err := fn(i); err != nil {
			return err
		}
	}
	return nil
}

type memoryMatches struct{ m *MemoryStore }

func (r memoryMatches) Create(_ context.Context, match *models.Match) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	k := pairKey{match.JobID, match.CandidateID}
	if _, ok := r.m.matches[k]; ok {
		return ErrConflict
	}
	r.m.matches[k] = *match
	return nil
}

func (r memoryMatches) Get(_ context.Context, jobID, candidateID string) (*models.Match, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	match, ok := r.m.matches[pairKey{jobID, candidateID}]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &match, nil
}

func (r memoryMatches) ListByJob(_ context.Context, jobID string) ([]models.Match, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	out := []models.Match{}
	for k, match := range r.m.matches {
		if k.a == jobID {
			out = append(out, match)
		}
	}
	return out, nil
}

func (r memoryMatches) ListByCandidate(_ context.Context, candidateID string) ([]models.Match, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	out := []models.Match{}
	for k, match := range r.m.matches {
		if k.b == candidateID {
			out = append(out, match)
		}
	}
	return out, nil
}

type memoryJobs struct{ m *MemoryStore }

func (r memoryJobs) Create(_ context.Context, j *models.Job) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.jobs[j.ID]; ok {
		return ErrConflict
	}
	r.m.jobs[j.ID] = *j
	return nil
}

func (r memoryJobs) Get(_ context.Context, jobID string) (*models.Job, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	j, ok := r.m.jobs[jobID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &j, nil
}

func (r memoryJobs) List(_ context.Context, filter models.JobFilter) ([]models.Job, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	out := []models.Job{}
	for _, j := range r.m.jobs {
		if filter.ExcludePosterID != "" && j.PosterID == filter.ExcludePosterID {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

type memoryProfiles struct{ m *MemoryStore }

func (r memoryProfiles) Get(_ context.Context, userID string) (*models.UserProfile, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	p, ok := r.m.profiles[userID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &p, nil
}

func (r memoryProfiles) Put(_ context.Context, p *models.UserProfile) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	r.m.profiles[p.UserID] = *p
	return nil
}
