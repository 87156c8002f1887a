//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/hoopmetrics/hoopking/internal/auth"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

func pingServer(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serverEndpoint+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("healthz: %d", resp.StatusCode)
	}
	return nil
}

// doLogin mints an identity token for a new random user, exchanges it for a
// session token and returns both the user id and the session token.
func doLogin(ctx context.Context, t *testing.T) (string, string) {
	t.Helper()

	userID := gofakeit.UUID()
	identityToken, err := auth.IssueToken(testTokenConfig, auth.Identity{
		Subject:   userID,
		Email:     gofakeit.Email(),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
	}, time.Hour)
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serverEndpoint+"/api/auth/login", nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Authorization", "Bearer "+identityToken)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp auth.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
	require.NotEmpty(t, loginResp.Token)

	return userID, loginResp.Token
}

// doRequest sends body as JSON (when not nil) with the session token, and
// decodes a JSON response into dest (when not nil).
func doRequest(ctx context.Context, t *testing.T, token, method, path string, body, dest any) int {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(auth.SessionTokenHeader, token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if dest != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.Unmarshal(respBytes, dest), string(respBytes))
	}

	return resp.StatusCode
}
