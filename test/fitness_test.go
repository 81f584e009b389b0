package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitstride/fitstride/internal/fitness/achievements"
	"github.com/fitstride/fitstride/internal/fitness/metrics"
	"github.com/fitstride/fitstride/internal/fitness/profiles"
	"github.com/fitstride/fitstride/internal/fitness/rankings"
	"github.com/fitstride/fitstride/internal/fitness/summary"
	"github.com/fitstride/fitstride/internal/fitness/workouts"
)

func (s *IntegrationTestSuite) doRequest(
	ctx context.Context,
	t *testing.T,
	method, path, token string,
	payload interface{},
) (int, []byte) {
	var body io.Reader
	if payload != nil {
		payloadJson, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(payloadJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, body)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-FITSTRIDE-TOKEN", token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, respBytes
}

// the whole flow: register, login, set profile, log workouts, then
// check derived metrics, rankings, summary and achievements
func (s *IntegrationTestSuite) TestFitnessJourney() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := registerUser(ctx, t, "mila", "mila@fitstride.app", "str0ng-pass")
	loginResp := doLogin(ctx, t, "mila", "str0ng-pass")
	require.Equal(t, user.ID, loginResp.UserID)
	token := loginResp.Token

	// set up the profile, bmi and bmr come back computed
	status, respBytes := s.doRequest(ctx, t, "PUT", fmt.Sprintf("/profiles/%d", user.ID), token, profiles.Profile{
		Age:          30,
		WeightKg:     70,
		HeightCm:     175,
		Gender:       "female",
		FitnessLevel: profiles.LevelIntermediate,
	})
	require.Equal(t, http.StatusOK, status)
	var profile profiles.Profile
	require.NoError(t, json.Unmarshal(respBytes, &profile))
	require.NotNil(t, profile.BMI)
	assert.InDelta(t, 22.86, *profile.BMI, 0.01)
	require.NotNil(t, profile.BMR)

	// log a few workout sessions
	sessions := []workouts.Session{
		{UserID: user.ID, WorkoutType: "running", DurationMinutes: 45, CaloriesBurned: 450, Intensity: workouts.IntensityHigh, Notes: gofakeit.Sentence(5)},
		{UserID: user.ID, WorkoutType: "strength training", DurationMinutes: 60, CaloriesBurned: 380, Intensity: workouts.IntensityModerate, Notes: gofakeit.Sentence(5)},
		{UserID: user.ID, WorkoutType: "yoga", DurationMinutes: 30, CaloriesBurned: 120, Intensity: workouts.IntensityLow},
	}
	for i, session := range sessions {
		status, respBytes = s.doRequest(ctx, t, "POST", "/workouts", token, session)
		require.Equal(t, http.StatusCreated, status)

		var addResp workouts.AddSessionResponse
		require.NoError(t, json.Unmarshal(respBytes, &addResp))
		assert.NotZero(t, addResp.Session.ID)
		assert.Equal(t, i+1, addResp.CountToday)
	}

	// every added session recomputed the daily metrics
	status, respBytes = s.doRequest(ctx, t, "GET", fmt.Sprintf("/metrics/user/%d", user.ID), token, nil)
	require.Equal(t, http.StatusOK, status)
	var latestMetrics metrics.PerformanceMetrics
	require.NoError(t, json.Unmarshal(respBytes, &latestMetrics))
	// running bumps both cardio and endurance
	assert.InDelta(t, 2.0*1.5, latestMetrics.Cardiovascular, 0.001)
	assert.InDelta(t, 1.5*1.5, latestMetrics.Endurance, 0.001)
	assert.InDelta(t, 2.0, latestMetrics.Strength, 0.001)
	assert.InDelta(t, 2.0*0.5, latestMetrics.Flexibility, 0.001)
	assert.Equal(t, 950, latestMetrics.TotalCaloriesBurned)
	assert.Equal(t, 135, latestMetrics.TotalWorkoutTime)
	assert.NotEmpty(t, latestMetrics.FitnessGrade)
	assert.Greater(t, latestMetrics.OverallFitnessIndex, 0.0)

	// workout analytics over the whole history
	status, respBytes = s.doRequest(ctx, t, "GET", fmt.Sprintf("/workouts/user/%d/analytics", user.ID), token, nil)
	require.Equal(t, http.StatusOK, status)
	var totals workouts.AnalyticsTotals
	require.NoError(t, json.Unmarshal(respBytes, &totals))
	assert.Equal(t, 3, totals.TotalSessions)
	assert.Equal(t, 950, totals.TotalCalories)
	assert.Equal(t, 3, totals.DistinctTypes)

	// recompute the weekly overall rankings
	status, respBytes = s.doRequest(ctx, t, "POST", "/rankings/refresh/overall/weekly", token, nil)
	require.Equal(t, http.StatusOK, status)
	var refreshResp rankings.RefreshResponse
	require.NoError(t, json.Unmarshal(respBytes, &refreshResp))
	assert.True(t, refreshResp.Recomputed)

	// leaderboard is public, no token needed
	status, respBytes = s.doRequest(ctx, t, "GET", "/rankings/leaderboard/overall/weekly", "", nil)
	require.Equal(t, http.StatusOK, status)
	var leaderboard rankings.LeaderboardResponse
	require.NoError(t, json.Unmarshal(respBytes, &leaderboard))
	require.Len(t, leaderboard.Rankings, 1)
	assert.Equal(t, 1, leaderboard.Rankings[0].Rank)
	assert.Equal(t, user.ID, leaderboard.Rankings[0].UserID)
	assert.Equal(t, "mila", leaderboard.Rankings[0].Username)

	// full summary recalculation
	status, respBytes = s.doRequest(ctx, t, "GET", fmt.Sprintf("/summary/user/%d?refresh=true", user.ID), token, nil)
	require.Equal(t, http.StatusOK, status)
	var userSummary summary.UserSummary
	require.NoError(t, json.Unmarshal(respBytes, &userSummary))
	assert.Equal(t, 3, userSummary.TotalSessions)
	assert.Equal(t, 950, userSummary.TotalCalories)
	assert.Equal(t, 1, userSummary.GlobalRank)
	assert.Greater(t, userSummary.PerformanceIndex, 0.0)

	// first workout milestone got awarded along the way
	status, respBytes = s.doRequest(ctx, t, "GET", fmt.Sprintf("/achievements/user/%d", user.ID), token, nil)
	require.Equal(t, http.StatusOK, status)
	var achievementsResp achievements.ListResponse
	require.NoError(t, json.Unmarshal(respBytes, &achievementsResp))
	require.Len(t, achievementsResp.Achievements, 1)
	assert.Equal(t, "First Workout", achievementsResp.Achievements[0].Title)
	assert.Equal(t, 10, achievementsResp.TotalPoints)
}

func (s *IntegrationTestSuite) TestRegister_duplicateUsername() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registerUser(ctx, t, "dupe", "dupe@fitstride.app", "str0ng-pass")

	status, respBytes := s.doRequest(ctx, t, "POST", "/users/register", "", map[string]string{
		"username": "dupe",
		"email":    "other@fitstride.app",
		"password": "str0ng-pass",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, string(respBytes), "already taken")
}

func (s *IntegrationTestSuite) TestWorkouts_requireAuth() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	status, _ := s.doRequest(ctx, t, "POST", "/workouts", "", workouts.Session{
		UserID:          1,
		WorkoutType:     "running",
		DurationMinutes: 30,
		CaloriesBurned:  300,
		Intensity:       workouts.IntensityModerate,
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = s.doRequest(ctx, t, "POST", "/workouts", "made-up-token", workouts.Session{
		UserID:          1,
		WorkoutType:     "running",
		DurationMinutes: 30,
		CaloriesBurned:  300,
		Intensity:       workouts.IntensityModerate,
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestLogin_wrongPassword() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registerUser(ctx, t, "secure", "secure@fitstride.app", "str0ng-pass")

	status, respBytes := s.doRequest(ctx, t, "POST", "/users/login", "", map[string]string{
		"username": "secure",
		"password": "wrong-pass",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(respBytes), "wrong credentials")
}
