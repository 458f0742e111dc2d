package status

import (
	"errors"
	"testing"
	"time"

	"github.com/bnema/windsurf-accounts-cli/internal/application"
	"github.com/bnema/windsurf-accounts-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderListShowsSummaryAndAccounts(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.Local)

	snapshot := application.BuildSnapshot([]domain.Account{
		{
			ID:           "acc-1",
			Email:        "ada@example.com",
			Name:         "Ada",
			APIKey:       "key-1",
			RefreshToken: "refresh-1",
			Type:         "Pro",
			Credits:      domain.Float(1500),
			Usage:        domain.Float(25),
			ExpiresAt:    now.Add(10 * 24 * time.Hour),
		},
		{
			ID:        "acc-2",
			Email:     "bob@example.com",
			CreatedAt: now.Add(-24 * time.Hour),
		},
	}, now)

	output, err := Render(snapshot, RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "Windsurf Accounts")
	assert.Contains(t, output, "total: 2  active: 2  warning: 0  expired: 0")
	assert.Contains(t, output, "ada@example.com (Ada)")
	assert.Contains(t, output, "acc-1")
	assert.Contains(t, output, "Pro [Pro]")
	assert.Contains(t, output, "1.5k")
	assert.Contains(t, output, "[=====---------------] 25%")
	assert.Contains(t, output, "02-24 (10 days left)")
	assert.Contains(t, output, "token ok")
	assert.Contains(t, output, "no token")
	assert.NotContains(t, output, "key-1")
}

func TestRenderListHidesFallbackExpiry(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.Local)
	snapshot := application.BuildSnapshot([]domain.Account{
		{ID: "acc-1", Email: "ada@example.com", CreatedAt: now.Add(-20 * 24 * time.Hour)},
	}, now)

	output, err := Render(snapshot, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, output, "expires: -")
	assert.NotContains(t, output, "days left")
	assert.NotContains(t, output, "(expired)")
}

func TestRenderListMarksExpiredAndWarning(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.Local)
	snapshot := application.BuildSnapshot([]domain.Account{
		{ID: "a", Email: "a@example.com", ExpiresAt: now.Add(-time.Hour)},
		{ID: "b", Email: "b@example.com", ExpiresAt: now.Add(20 * time.Hour)},
	}, now)

	output, err := Render(snapshot, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, output, "total: 2  active: 1  warning: 1  expired: 1")
	assert.Contains(t, output, "(expired)")
	assert.Contains(t, output, "(1 day left)")
}

func TestRenderEmptyCollection(t *testing.T) {
	output, err := Render(application.BuildSnapshot(nil, time.Now()), RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, output, "total: 0  active: 0  warning: 0  expired: 0")
	assert.Contains(t, output, "No accounts yet")
}

func TestRenderDetailsMasksSecretsByDefault(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.Local)
	view := application.NewAccountView(domain.Account{
		ID:           "acc-1",
		Email:        "ada@example.com",
		Password:     "correct-horse",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		APIKey:       "sk-windsurf-123456",
		RefreshToken: "refresh-abcdef",
		APIServerURL: "https://server.example.com",
	}, now)

	output := RenderDetails(view, RenderOptions{})
	assert.Contains(t, output, "ada@example.com (Ada Lovelace)")
	assert.Contains(t, output, "••••••••")
	assert.NotContains(t, output, "correct-horse")
	assert.Contains(t, output, "sk-w••••••••")
	assert.Contains(t, output, "https://server.example.com")
	assert.Contains(t, output, "token ok")

	revealed := RenderDetails(view, RenderOptions{ShowSecrets: true})
	assert.Contains(t, revealed, "correct-horse")
	assert.Contains(t, revealed, "sk-windsurf-123456")
}

func TestRenderDetailsOmitsAbsentTokens(t *testing.T) {
	view := application.NewAccountView(domain.Account{ID: "acc-1", Email: "ada@example.com", Password: "pw"}, time.Now())

	output := RenderDetails(view, RenderOptions{})
	assert.NotContains(t, output, "api key:")
	assert.NotContains(t, output, "refresh token:")
	assert.Contains(t, output, "no token")
}

func TestRenderShowsLoadErrorWithEmptySummary(t *testing.T) {
	snapshot := application.Snapshot{Accounts: []application.AccountView{}, LoadedAt: time.Now()}

	output, err := Render(snapshot, RenderOptions{LoadError: errors.New("parse accounts file: bad toml")})
	require.NoError(t, err)

	assert.Contains(t, output, "Windsurf Accounts")
	assert.Contains(t, output, "total: 0  active: 0  warning: 0  expired: 0")
	assert.Contains(t, output, "Could not load accounts: parse accounts file: bad toml")
	assert.NotContains(t, output, "No accounts yet")
}
