package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobswipe_server/auth"
	"jobswipe_server/models"
	"jobswipe_server/routes"
	"jobswipe_server/services"
	"jobswipe_server/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type apiClient struct {
	t      *testing.T
	server *httptest.Server
	tokens *auth.HMACService
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	log := zaptest.NewLogger(t)
	st := store.NewMemoryStore()

	matches := &services.MatchService{Matches: st.Matches, Profiles: st.Profiles, Jobs: st.Jobs, Log: log}
	svc := routes.Services{
		Interactions: &services.InteractionService{Interactions: st.Interactions, Matches: matches, Log: log},
		Jobs:         &services.JobService{Jobs: st.Jobs, Log: log},
		Feed: &services.FeedService{
			Jobs:               st.Jobs,
			Interactions:       st.Interactions,
			Log:                log,
			DefaultLimit:       models.DefaultFeedLimit,
			MaxLimit:           models.MaxFeedLimit,
			ExcludeOwnPostings: true,
		},
		Matches:  matches,
		Profiles: &services.UserProfileService{Profiles: st.Profiles, Log: log},
	}
	tokens := auth.NewHMACService("test-secret", time.Hour)

	server := httptest.NewServer(routes.NewRouter(svc, routes.Options{Verifier: tokens, Log: log}))
	t.Cleanup(server.Close)
	return &apiClient{t: t, server: server, tokens: tokens}
}

// do sends body as JSON on behalf of userID (anonymous when empty) and
// decodes the response into out when it is non-nil.
func (c *apiClient) do(method, path, userID string, body, out interface{}) int {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, c.server.URL+path, &buf)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		token, err := c.tokens.Issue(userID)
		require.NoError(c.t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *apiClient) createJob(posterID, title string) models.Job {
	c.t.Helper()
	var job models.Job
	status := c.do(http.MethodPost, "/api/jobs", posterID, map[string]string{
		"title": title, "company": "Acme", "location": "Remote",
	}, &job)
	require.Equal(c.t, http.StatusCreated, status)
	// Keeps creation timestamps strictly ordered.
	time.Sleep(2 * time.Millisecond)
	return job
}

func TestPublicRoutes(t *testing.T) {
	api := newAPI(t)

	var health map[string]string
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/health", "", nil, &health))
	assert.Equal(t, "healthy", health["status"])

	var body errorBody
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/api/jobs/feed", "", nil, &body))
	assert.Equal(t, errorBody{Code: "Unauthorized", Message: "No token, authorization denied"}, body)
}

func TestSwipeFlow(t *testing.T) {
	api := newAPI(t)

	for _, u := range []string{"u1", "u2", "u3"} {
		status := api.do(http.MethodPost, "/api/profile", u, map[string]interface{}{
			"name":   "name-" + u,
			"email":  u + "@example.com",
			"skills": "go, sql",
		}, nil)
		require.Equal(t, http.StatusOK, status)
	}

	j1 := api.createJob("u1", "Backend")
	j2 := api.createJob("u2", "Frontend")
	j3 := api.createJob("u3", "Data")

	var feed []models.Job
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/jobs/feed", "u1", nil, &feed))
	require.Len(t, feed, 2)
	assert.Equal(t, j3.ID, feed[0].ID)
	assert.Equal(t, j2.ID, feed[1].ID)

	var recorded struct {
		Interaction models.Interaction `json:"interaction"`
		Match       *models.Match      `json:"match"`
	}
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/interactions", "u1",
		map[string]string{"jobId": j2.ID, "decision": "like"}, &recorded))
	assert.Equal(t, models.DecisionPositive, recorded.Interaction.Decision)
	require.NotNil(t, recorded.Match)
	assert.Equal(t, []string{"go", "sql"}, recorded.Match.CandidateProfile.Skills)

	// "interaction" is accepted in place of "decision".
	recorded.Match = nil
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/interactions", "u1",
		map[string]string{"jobId": j3.ID, "interaction": "reject"}, &recorded))
	assert.Nil(t, recorded.Match)

	var body errorBody
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPost, "/api/interactions", "u1",
		map[string]string{"jobId": j2.ID, "decision": "reject"}, &body))
	assert.Equal(t, "DuplicateInteraction", body.Code)

	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPost, "/api/interactions", "u1",
		map[string]string{"jobId": j1.ID, "decision": "maybe"}, &body))
	assert.Equal(t, "InvalidInput", body.Code)

	feed = nil
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/jobs/feed?limit=10", "u1", nil, &feed))
	assert.Empty(t, feed)

	var accepted []models.AcceptedJob
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/interactions/accepted", "u1", nil, &accepted))
	assert.Equal(t, []models.AcceptedJob{{JobID: j2.ID}}, accepted)

	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/interactions", "u3",
		map[string]string{"jobId": j2.ID, "decision": "accept"}, nil))

	var matches []models.Match
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/jobs/matches/"+j2.ID, "u2", nil, &matches))
	require.Len(t, matches, 2)
	assert.Equal(t, "u3", matches[0].CandidateID)
	assert.Equal(t, "u1", matches[1].CandidateID)

	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/api/jobs/matches/"+j2.ID, "u1", nil, &body))
	assert.Equal(t, "Unauthorized", body.Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/jobs/matches/missing", "u2", nil, &body))
	assert.Equal(t, "NotFound", body.Code)

	var mine []models.Match
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/matches/mine", "u1", nil, &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, j2.ID, mine[0].JobID)

	var amended struct {
		Interaction models.Interaction `json:"interaction"`
	}
	require.Equal(t, http.StatusOK, api.do(http.MethodPatch, "/api/interactions/"+j3.ID, "u1",
		map[string]string{"decision": "like"}, &amended))
	assert.Equal(t, models.DecisionPositive, amended.Interaction.Decision)
}

func TestFeedLimitValidation(t *testing.T) {
	api := newAPI(t)

	var body errorBody
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/api/jobs/feed?limit=abc", "u1", nil, &body))
	assert.Equal(t, "InvalidInput", body.Code)
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/api/jobs/feed?limit=-2", "u1", nil, &body))

	var feed []models.Job
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/jobs/feed?limit=0", "u1", nil, &feed))
	assert.Empty(t, feed)
}

func TestProfileRoutes(t *testing.T) {
	api := newAPI(t)

	var body errorBody
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/profile/me", "u1", nil, &body))
	assert.Equal(t, "NotFound", body.Code)

	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPost, "/api/profile", "u1",
		map[string]string{"email": "not-an-email"}, &body))

	var profile models.UserProfile
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/profile", "u1",
		map[string]interface{}{"name": "Ada", "skills": []string{"go", " "}}, &profile))
	assert.Equal(t, []string{"go"}, profile.Skills)

	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/profile/me", "u1", nil, &profile))
	assert.Equal(t, "Ada", profile.Name)

	// No bucket configured.
	assert.Equal(t, http.StatusServiceUnavailable, api.do(http.MethodPost, "/api/profile/resume-upload-url", "u1",
		map[string]string{"fileName": "cv.pdf"}, &body))

	// Positive swipe without a profile: the interaction stays, the response
	// reports the missing profile.
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodPost, "/api/interactions", "u9",
		map[string]string{"jobId": "j1", "decision": "like"}, &body))
	assert.Equal(t, "ProfileNotFound", body.Code)
	var all []models.Interaction
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/interactions", "u9", nil, &all))
	assert.Len(t, all, 1)
}
