package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/windsurf-accounts-cli/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedIDToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

type logRecorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *logRecorder) sink(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
}

func (r *logRecorder) joined() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.lines, "\n")
}

func newLoginServer(t *testing.T, idToken string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/auth/sign-in", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["email"] != "user@example.com" || body["password"] != "pw" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"INVALID_PASSWORD"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id_token":"` + idToken + `","refresh_token":"refresh-1"}`))
	})
	mux.HandleFunc("/v1/auth/register-user", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, idToken, body["id_token"])
		_, _ = w.Write([]byte(`{"api_key":"key-1","api_server_url":"https://server.example.com"}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestPasswordFlowReturnsAccountWithTokens(t *testing.T) {
	t.Parallel()

	idToken := signedIDToken(t, jwt.MapClaims{
		"email":       "user@example.com",
		"name":        "Ada Lovelace",
		"given_name":  "Ada",
		"family_name": "Lovelace",
	})
	server := newLoginServer(t, idToken)

	flow := PasswordFlow{API: API{BaseURL: server.URL}, HTTPClient: server.Client()}
	createdAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	input := domain.Account{ID: "acc-1", Email: "user@example.com", Password: "pw", CreatedAt: createdAt}

	var logs logRecorder
	got, err := flow.LoginAndGetTokens(context.Background(), input, logs.sink)
	require.NoError(t, err)

	assert.Equal(t, domain.AccountID("acc-1"), got.ID)
	assert.Equal(t, "key-1", got.APIKey)
	assert.Equal(t, "refresh-1", got.RefreshToken)
	assert.Equal(t, "https://server.example.com", got.APIServerURL)
	assert.Equal(t, "Ada Lovelace", got.Name)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "Lovelace", got.LastName)
	assert.Equal(t, createdAt, got.CreatedAt)
	assert.Equal(t, domain.TokenValid, domain.ClassifyToken(got))

	joined := logs.joined()
	assert.Contains(t, joined, "signing in as user@example.com")
	assert.Contains(t, joined, "API key received")
	assert.NotContains(t, joined, "pw")
	assert.NotContains(t, joined, "key-1")
}

func TestPasswordFlowSurfacesSignInError(t *testing.T) {
	t.Parallel()

	server := newLoginServer(t, signedIDToken(t, jwt.MapClaims{}))
	flow := PasswordFlow{API: API{BaseURL: server.URL}, HTTPClient: server.Client()}

	var logs logRecorder
	_, err := flow.LoginAndGetTokens(context.Background(), domain.Account{Email: "user@example.com", Password: "wrong"}, logs.sink)
	require.Error(t, err)
	assert.ErrorContains(t, err, "sign in: INVALID_PASSWORD")
	assert.Contains(t, logs.joined(), "sign-in failed")
}

func TestPasswordFlowToleratesUnreadableIDToken(t *testing.T) {
	t.Parallel()

	server := newLoginServer(t, "not-a-jwt")
	flow := PasswordFlow{API: API{BaseURL: server.URL}, HTTPClient: server.Client()}

	var logs logRecorder
	got, err := flow.LoginAndGetTokens(context.Background(), domain.Account{Email: "user@example.com", Password: "pw", Name: "Kept"}, logs.sink)
	require.NoError(t, err)
	assert.Equal(t, "Kept", got.Name)
	assert.Contains(t, logs.joined(), "profile fields skipped")
}

func TestPasswordFlowRequiresCredentials(t *testing.T) {
	t.Parallel()

	_, err := PasswordFlow{API: API{BaseURL: "https://auth.example.com"}}.LoginAndGetTokens(context.Background(), domain.Account{Email: "user@example.com"}, nil)
	require.ErrorIs(t, err, ErrMissingCredentials)
}

func TestPasswordFlowRejectsMissingAPIKey(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/auth/sign-in", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id_token":"x","refresh_token":"r"}`))
	})
	mux.HandleFunc("/v1/auth/register-user", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	flow := PasswordFlow{API: API{BaseURL: server.URL}, HTTPClient: server.Client()}
	_, err := flow.LoginAndGetTokens(context.Background(), domain.Account{Email: "user@example.com", Password: "pw"}, nil)
	require.ErrorContains(t, err, "response missing api key")
}

func TestParseIdentityClaimsIgnoresSignature(t *testing.T) {
	t.Parallel()

	claims, err := ParseIdentityClaims(signedIDToken(t, jwt.MapClaims{"name": "Grace", "email": "g@example.com"}))
	require.NoError(t, err)
	assert.Equal(t, "Grace", claims.Name)
	assert.Equal(t, "g@example.com", claims.Email)
}
