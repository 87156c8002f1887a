//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hoopmetrics/hoopking/internal/dbtest"
	"github.com/hoopmetrics/hoopking/internal/inbox"
	"github.com/hoopmetrics/hoopking/internal/plans"
	"github.com/hoopmetrics/hoopking/internal/sessions"
	"github.com/hoopmetrics/hoopking/internal/users"
	"github.com/hoopmetrics/hoopking/pkg"
)

func (s *IntegrationTestSuite) TestSessionCompletion() {
	ctx := context.Background()
	t := s.T()

	userID, token := doLogin(ctx, t)
	workoutID := dbtest.InsertWorkout(t, s.pool, 3)

	var created sessions.Session
	s.Require().Equal(http.StatusOK, doRequest(ctx, t, token, http.MethodPost, "/api/sessions", map[string]any{
		"workoutId": workoutID,
		"status":    "active",
	}, &created))
	s.Equal(sessions.StatusActive, created.Status)
	s.Equal(userID, created.UserID)

	var before users.Profile
	s.Require().Equal(http.StatusOK, doRequest(ctx, t, token, http.MethodGet, "/api/profile", nil, &before))

	completedAt := time.Now().UTC().Truncate(time.Second)
	var updated sessions.Session
	s.Require().Equal(http.StatusOK, doRequest(ctx, t, token, http.MethodPatch, "/api/sessions/"+created.ID, sessions.UpdateParams{
		Status:        pkg.Ptr(sessions.StatusCompleted),
		CompletedAt:   &completedAt,
		TotalDuration: pkg.Ptr(2700),
	}, &updated))
	s.Equal(sessions.StatusCompleted, updated.Status)

	var after users.Profile
	s.Require().Equal(http.StatusOK, doRequest(ctx, t, token, http.MethodGet, "/api/profile", nil, &after))
	s.Equal(before.TotalWorkouts+1, after.TotalWorkouts)
	s.Equal(before.CurrentStreak+1, after.CurrentStreak)
	s.Equal(before.TotalPoints+sessions.CompletionPoints, after.TotalPoints)
	s.GreaterOrEqual(after.LongestStreak, after.CurrentStreak)

	var (
		feedRows    int
		description string
	)
	err := s.DB.QueryRowContext(ctx, `
		SELECT count(*), max(description)
		FROM activity_feed
		WHERE user_id = $1 AND activity_type = 'workout_completed'
	`, userID).Scan(&feedRows, &description)
	s.Require().NoError(err)
	s.Equal(1, feedRows)
	s.Equal("Finished a 45 minute workout", description)
}

func (s *IntegrationTestSuite) TestStartPlanTwice() {
	ctx := context.Background()
	t := s.T()

	userID, token := doLogin(ctx, t)
	planID := dbtest.InsertPlan(t, s.pool, 4, 3,
		dbtest.InsertWorkout(t, s.pool, 2),
		dbtest.InsertWorkout(t, s.pool, 2),
		dbtest.InsertWorkout(t, s.pool, 2),
	)

	var enrollment plans.UserPlan
	s.Require().Equal(http.StatusOK, doRequest(ctx, t, token, http.MethodPost, "/api/user-plans/start", map[string]string{
		"planId": planID,
	}, &enrollment))
	s.Equal(3, enrollment.TotalWorkoutsInPlan)

	s.Equal(http.StatusBadRequest, doRequest(ctx, t, token, http.MethodPost, "/api/user-plans/start", map[string]string{
		"planId": planID,
	}, nil))

	var rows int
	err := s.DB.QueryRowContext(ctx, `
		SELECT count(*) FROM user_fitness_plans WHERE user_id = $1 AND plan_id = $2
	`, userID, planID).Scan(&rows)
	s.Require().NoError(err)
	s.Equal(1, rows)

	var progress plans.Progress
	s.Require().Equal(http.StatusOK, doRequest(ctx, t, token, http.MethodGet, fmt.Sprintf("/api/user-plans/%s/progress", planID), nil, &progress))
	s.Equal(planID, progress.Plan.ID)
	s.Len(progress.PlanStructure, 3)
}

func (s *IntegrationTestSuite) TestInboxSeedingAndTriage() {
	ctx := context.Background()
	t := s.T()

	_, token := doLogin(ctx, t)

	var first []inbox.Item
	s.Require().Equal(http.StatusOK, doRequest(ctx, t, token, http.MethodGet, "/api/workout-inbox", nil, &first))
	s.Require().NotEmpty(first)

	var second []inbox.Item
	s.Require().Equal(http.StatusOK, doRequest(ctx, t, token, http.MethodGet, "/api/workout-inbox", nil, &second))
	s.Require().Len(second, len(first))
	for i := range first {
		s.Equal(first[i].ID, second[i].ID)
	}

	itemID := first[0].ID
	var categorized inbox.Item
	s.Require().Equal(http.StatusOK, doRequest(ctx, t, token, http.MethodPost, "/api/workout-inbox/"+itemID+"/categorize", map[string]string{
		"category": "skills",
	}, &categorized))
	s.Equal(inbox.StatusCategorized, categorized.Status)
	s.Require().NotNil(categorized.Category)
	s.Equal("skills", *categorized.Category)
	s.NotNil(categorized.ProcessedAt)

	// a triaged item never goes back to pending
	var again inbox.Item
	s.Require().Equal(http.StatusOK, doRequest(ctx, t, token, http.MethodPost, "/api/workout-inbox/"+itemID+"/ignore", nil, &again))
	s.Equal(inbox.StatusCategorized, again.Status)

	if len(first) > 1 {
		ignoreID := first[1].ID
		for i := 0; i < 2; i++ {
			var ignored inbox.Item
			s.Require().Equal(http.StatusOK, doRequest(ctx, t, token, http.MethodPost, "/api/workout-inbox/"+ignoreID+"/ignore", nil, &ignored))
			s.Equal(inbox.StatusIgnored, ignored.Status)
		}
	}

	s.Equal(http.StatusNotFound, doRequest(ctx, t, token, http.MethodPost, "/api/workout-inbox/"+unknownItemID+"/ignore", nil, nil))
}

const unknownItemID = "00000000-0000-0000-0000-000000000000"
