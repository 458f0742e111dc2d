package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointValidatesBaseURL(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		base    string
		wantErr string
	}{
		{name: "empty", base: "", wantErr: "api base url is required"},
		{name: "scheme", base: "ftp://example.com", wantErr: "must use http or https"},
		{name: "host", base: "https://", wantErr: "host is required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Endpoint(tc.base, "/v1/x")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}

	endpoint, err := Endpoint("https://api.example.com/base/", "v1/account/query")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/base/v1/account/query", endpoint)
}

func TestWithTimeoutKeepsExistingDeadline(t *testing.T) {
	t.Parallel()

	parent, cancel := context.WithTimeout(context.Background(), time.Hour)
	defer cancel()

	ctx, release := WithTimeout(parent, time.Second)
	defer release()

	want, _ := parent.Deadline()
	got, ok := ctx.Deadline()
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestPostJSONSendsHeadersAndDecodes(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ping", body["msg"])

		_, _ = w.Write([]byte(`{"reply":"pong"}`))
	}))
	defer server.Close()

	var out struct {
		Reply string `json:"reply"`
	}
	err := PostJSON(context.Background(), server.Client(), server.URL, map[string]string{"Authorization": "Bearer k"}, map[string]string{"msg": "ping"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "pong", out.Reply)
}

func TestPostJSONSurfacesServerMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"refresh token revoked"}`))
	}))
	defer server.Close()

	err := PostJSON(context.Background(), server.Client(), server.URL, nil, struct{}{}, &struct{}{})
	require.Error(t, err)
	assert.EqualError(t, err, "invalid_grant: refresh token revoked")
}

func TestPostJSONFallsBackToStatusCode(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	err := PostJSON(context.Background(), server.Client(), server.URL, nil, struct{}{}, &struct{}{})
	require.EqualError(t, err, "status 502")
}
