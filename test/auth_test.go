//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"

	"github.com/hoopmetrics/hoopking/internal/users"
)

func (s *IntegrationTestSuite) TestLoginAndLogout() {
	ctx := context.Background()
	t := s.T()

	s.Equal(http.StatusUnauthorized, doRequest(ctx, t, "", http.MethodGet, "/api/auth/user", nil, nil))

	userID, token := doLogin(ctx, t)

	var user users.UserWithProfile
	s.Require().Equal(http.StatusOK, doRequest(ctx, t, token, http.MethodGet, "/api/auth/user", nil, &user))
	s.Equal(userID, user.ID)
	s.Require().NotNil(user.Profile)
	s.Equal(0, user.Profile.TotalWorkouts)

	s.Equal(http.StatusOK, doRequest(ctx, t, token, http.MethodPost, "/api/auth/logout", nil, nil))
	s.Equal(http.StatusUnauthorized, doRequest(ctx, t, token, http.MethodGet, "/api/auth/user", nil, nil))
}

func (s *IntegrationTestSuite) TestHealthzAndNotFound() {
	ctx := context.Background()
	t := s.T()

	var health map[string]any
	s.Require().Equal(http.StatusOK, doRequest(ctx, t, "", http.MethodGet, "/healthz", nil, &health))
	s.Equal("ok", health["status"])

	_, token := doLogin(ctx, t)
	s.Equal(http.StatusNotFound, doRequest(ctx, t, token, http.MethodGet, "/api/nope", nil, nil))
}
