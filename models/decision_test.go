package models_test

import (
	"testing"

	"jobswipe_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecision(t *testing.T) {
	cases := map[string]models.Decision{
		"accept":  models.DecisionPositive,
		"right":   models.DecisionPositive,
		"top":     models.DecisionPositive,
		" Like ":  models.DecisionPositive,
		"reject":  models.DecisionNegative,
		"LEFT":    models.DecisionNegative,
		"dislike": models.DecisionNegative,
	}
	for label, want := range cases {
		got, err := models.ParseDecision(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, got, label)
	}
}

func TestParseDecisionRejectsUnknownLabels(t *testing.T) {
	for _, label := range []string{"", "maybe", "up", "superlike"} {
		_, err := models.ParseDecision(label)
		assert.ErrorIs(t, err, models.ErrInvalidInput, label)
	}
}

func TestSnapshotProfileCopiesSkills(t *testing.T) {
	p := models.UserProfile{Name: "Ada", Email: "ada@example.com", Skills: []string{"go", "sql"}}
	snap := models.SnapshotProfile(p)

	p.Skills[0] = "rust"
	assert.Equal(t, []string{"go", "sql"}, snap.Skills)
	assert.Equal(t, "Ada", snap.Name)
}
