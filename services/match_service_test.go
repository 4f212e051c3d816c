package services_test

import (
	"context"
	"errors"
	"testing"

	"jobswipe_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLinker struct {
	mock.Mock
}

func (m *mockLinker) ReadURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func TestDeriveMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshot is not affected by later profile edits", func(t *testing.T) {
		env := newTestEnv(t)
		env.addProfile(t, models.UserProfile{UserID: "u1", Name: "Ada", Skills: []string{"go", "sql"}})

		match, err := env.matches.DeriveMatch(ctx, "j1", "u1")
		require.NoError(t, err)

		env.addProfile(t, models.UserProfile{UserID: "u1", Name: "Ada Lovelace", Skills: []string{"rust"}})

		stored, err := env.store.Matches.Get(ctx, "j1", "u1")
		require.NoError(t, err)
		assert.Equal(t, match.MatchID, stored.MatchID)
		assert.Equal(t, "Ada", stored.CandidateProfile.Name)
		assert.Equal(t, []string{"go", "sql"}, stored.CandidateProfile.Skills)
	})

	t.Run("second derivation reports already matched", func(t *testing.T) {
		env := newTestEnv(t)
		env.addProfile(t, models.UserProfile{UserID: "u1", Name: "Ada"})

		_, err := env.matches.DeriveMatch(ctx, "j1", "u1")
		require.NoError(t, err)
		_, err = env.matches.DeriveMatch(ctx, "j1", "u1")
		assert.ErrorIs(t, err, models.ErrAlreadyMatched)
	})

	t.Run("missing profile", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.matches.DeriveMatch(ctx, "j1", "ghost")
		assert.ErrorIs(t, err, models.ErrProfileNotFound)
	})
}

func TestListMatchesForJob(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) *testEnv {
		env := newTestEnv(t)
		env.addJob(t, "j1", "poster")
		env.addProfile(t, models.UserProfile{UserID: "u1", Name: "Ada", ResumeKey: "resumes/u1/cv.pdf"})
		env.addProfile(t, models.UserProfile{UserID: "u2", Name: "Grace"})
		for _, u := range []string{"u1", "u2"} {
			_, _, err := env.interactions.RecordInteraction(ctx, u, "j1", "like")
			require.NoError(t, err)
		}
		return env
	}

	t.Run("poster sees matches newest first with resume links", func(t *testing.T) {
		env := setup(t)
		linker := new(mockLinker)
		linker.On("ReadURL", mock.Anything, "resumes/u1/cv.pdf").Return("https://signed/cv", nil).Once()
		env.matches.Resumes = linker

		matches, err := env.matches.ListMatchesForJob(ctx, "j1", "poster")
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, "u2", matches[0].CandidateID)
		assert.Empty(t, matches[0].ResumeURL)
		assert.Equal(t, "u1", matches[1].CandidateID)
		assert.Equal(t, "https://signed/cv", matches[1].ResumeURL)
		linker.AssertExpectations(t)
	})

	t.Run("signing failure drops only the link", func(t *testing.T) {
		env := setup(t)
		linker := new(mockLinker)
		linker.On("ReadURL", mock.Anything, mock.Anything).Return("", errors.New("no credentials"))
		env.matches.Resumes = linker

		matches, err := env.matches.ListMatchesForJob(ctx, "j1", "poster")
		require.NoError(t, err)
		assert.Len(t, matches, 2)
	})

	t.Run("other users are refused", func(t *testing.T) {
		env := setup(t)
		_, err := env.matches.ListMatchesForJob(ctx, "j1", "u1")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("unknown job", func(t *testing.T) {
		env := setup(t)
		_, err := env.matches.ListMatchesForJob(ctx, "nope", "poster")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("job without matches", func(t *testing.T) {
		env := setup(t)
		env.addJob(t, "j2", "poster")
		matches, err := env.matches.ListMatchesForJob(ctx, "j2", "poster")
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestListMatchesForCandidate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.addProfile(t, models.UserProfile{UserID: "u1", Name: "Ada"})

	for _, j := range []string{"j1", "j2"} {
		_, _, err := env.interactions.RecordInteraction(ctx, "u1", j, "accept")
		require.NoError(t, err)
	}
	_, _, err := env.interactions.RecordInteraction(ctx, "u1", "j3", "reject")
	require.NoError(t, err)

	matches, err := env.matches.ListMatchesForCandidate(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "j2", matches[0].JobID)
	assert.Equal(t, "j1", matches[1].JobID)
}
