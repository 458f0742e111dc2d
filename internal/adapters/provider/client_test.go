package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/windsurf-accounts-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientQueryAccountDecodesSnapshot(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/account/query", r.URL.Path)
		assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "refresh-1", body["refresh_token"])

		_, _ = w.Write([]byte(`{"plan_name":"Pro","total_credits":500,"used_credits":120.5,"usage_percentage":24.1,"expires_at":"2026-03-01T00:00:00Z"}`))
	}))
	defer server.Close()

	client := Client{BaseURL: server.URL, HTTPClient: server.Client()}
	snapshot, err := client.QueryAccount(context.Background(), domain.Account{ID: "acc-1", APIKey: "key-1", RefreshToken: "refresh-1"})
	require.NoError(t, err)

	assert.Equal(t, "Pro", snapshot.PlanName)
	require.NotNil(t, snapshot.TotalCredits)
	assert.Equal(t, 500.0, *snapshot.TotalCredits)
	require.NotNil(t, snapshot.UsedCredits)
	assert.Equal(t, 120.5, *snapshot.UsedCredits)
	require.NotNil(t, snapshot.UsagePercentage)
	assert.Equal(t, 24.1, *snapshot.UsagePercentage)
	assert.True(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).Equal(snapshot.ExpiresAt))
}

func TestClientQueryAccountPrefersAccountAPIServer(t *testing.T) {
	t.Parallel()

	defaultHit := false
	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defaultHit = true
		_, _ = w.Write([]byte(`{"plan_name":"Default"}`))
	}))
	defer fallback.Close()

	override := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/account/query", r.URL.Path)
		_, _ = w.Write([]byte(`{"plan_name":"Regional"}`))
	}))
	defer override.Close()

	client := Client{BaseURL: fallback.URL, HTTPClient: http.DefaultClient}
	snapshot, err := client.QueryAccount(context.Background(), domain.Account{RefreshToken: "r", APIServerURL: override.URL})
	require.NoError(t, err)

	assert.Equal(t, "Regional", snapshot.PlanName)
	assert.False(t, defaultHit)
}

func TestClientQueryAccountUsesBaseURLWithoutAccountAPIServer(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"plan_name":"Default"}`))
	}))
	defer server.Close()

	client := Client{BaseURL: server.URL, HTTPClient: server.Client()}
	snapshot, err := client.QueryAccount(context.Background(), domain.Account{RefreshToken: "r", APIServerURL: "  "})
	require.NoError(t, err)

	assert.Equal(t, "Default", snapshot.PlanName)
}

func TestClientQueryAccountKeepsOmittedFieldsAbsent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"plan_name":"Trial"}`))
	}))
	defer server.Close()

	client := Client{BaseURL: server.URL, HTTPClient: server.Client()}
	snapshot, err := client.QueryAccount(context.Background(), domain.Account{RefreshToken: "r"})
	require.NoError(t, err)

	assert.Nil(t, snapshot.TotalCredits)
	assert.Nil(t, snapshot.UsedCredits)
	assert.Nil(t, snapshot.UsagePercentage)
	assert.True(t, snapshot.ExpiresAt.IsZero())
}

func TestClientQueryAccountSurfacesProviderError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"refresh token expired"}`))
	}))
	defer server.Close()

	client := Client{BaseURL: server.URL, HTTPClient: server.Client()}
	_, err := client.QueryAccount(context.Background(), domain.Account{RefreshToken: "r"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid_grant: refresh token expired")
}

func TestClientQueryAccountRejectsBadExpiry(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"plan_name":"Pro","expires_at":"next week"}`))
	}))
	defer server.Close()

	client := Client{BaseURL: server.URL, HTTPClient: server.Client()}
	_, err := client.QueryAccount(context.Background(), domain.Account{RefreshToken: "r"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "parse expires_at")
}

func TestClientQueryAccountRequiresRefreshToken(t *testing.T) {
	t.Parallel()

	_, err := Client{BaseURL: "https://api.example.com"}.QueryAccount(context.Background(), domain.Account{})
	require.ErrorContains(t, err, "refresh token is required")
}

func TestClientQueryAccountHonorsTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := Client{BaseURL: server.URL, HTTPClient: server.Client(), RequestTimeout: 50 * time.Millisecond}
	_, err := client.QueryAccount(context.Background(), domain.Account{RefreshToken: "r"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
