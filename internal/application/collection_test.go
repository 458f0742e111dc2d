package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/windsurf-accounts-cli/internal/domain"
	"github.com/bnema/windsurf-accounts-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionLoadBuildsViewsAndSummary(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	store := mocks.NewMockAccountStore(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(now)

	accounts := []domain.Account{
		{ID: "active", Email: "a@example.com", CreatedAt: now.AddDate(0, 0, -1)},
		{ID: "warning", Email: "w@example.com", APIKey: "k", RefreshToken: "r", ExpiresAt: now.Add(48 * time.Hour)},
		{ID: "expired", Email: "e@example.com", APIKey: "k", ExpiresAt: now.Add(-time.Hour)},
	}
	store.EXPECT().List(mockAnyContext()).Return(accounts, nil).Once()

	collection := NewCollection(store, clock, nil)
	snapshot, err := collection.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.Summary{Total: 3, Active: 2, Warning: 1, Expired: 1}, snapshot.Summary)
	require.Len(t, snapshot.Accounts, 3)
	assert.Equal(t, now, snapshot.LoadedAt)

	view, ok := snapshot.Find("warning")
	require.True(t, ok)
	assert.True(t, view.HasKnownExpiry())
	assert.Equal(t, 2, view.Expiry.DaysLeft)
	assert.Equal(t, domain.TokenValid, view.TokenStatus)

	view, ok = snapshot.Find("active")
	require.True(t, ok)
	assert.False(t, view.HasKnownExpiry())
	assert.Equal(t, domain.TokenNotAcquired, view.TokenStatus)

	view, ok = snapshot.Find("expired")
	require.True(t, ok)
	assert.Equal(t, domain.TokenIncomplete, view.TokenStatus)
	assert.True(t, view.Expiry.IsExpired)

	assert.Equal(t, snapshot, collection.Last())
}

func TestCollectionLoadFailureYieldsEmptySnapshot(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	store := mocks.NewMockAccountStore(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(now)

	store.EXPECT().List(mockAnyContext()).Return([]domain.Account{{ID: "a"}}, nil).Once()
	store.EXPECT().List(mockAnyContext()).Return(nil, errors.New("permission denied")).Once()

	collection := NewCollection(store, clock, nil)
	_, err := collection.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, collection.Last().Accounts, 1)

	snapshot, err := collection.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrStore)
	assert.ErrorContains(t, err, "permission denied")
	assert.Empty(t, snapshot.Accounts)
	assert.Equal(t, domain.Summary{}, snapshot.Summary)
	assert.Empty(t, collection.Last().Accounts)
}

func TestCollectionFindMissingAccount(t *testing.T) {
	_, ok := BuildSnapshot(nil, time.Now()).Find("missing")
	assert.False(t, ok)
}
