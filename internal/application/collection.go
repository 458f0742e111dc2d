package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/windsurf-accounts-cli/internal/domain"
	"github.com/bnema/windsurf-accounts-cli/internal/ports"
	"go.uber.org/zap"
)

type AccountView struct {
	Account     domain.Account
	Expiry      domain.Expiry
	TokenStatus domain.TokenStatus
}

// HasKnownExpiry reports whether the expiry comes from the provider rather
// than the trial-period fallback.
func (v AccountView) HasKnownExpiry() bool {
	return !v.Account.ExpiresAt.IsZero()
}

type Snapshot struct {
	Accounts []AccountView
	Summary  domain.Summary
	LoadedAt time.Time
}

// Find returns the view for id from the snapshot.
func (s Snapshot) Find(id domain.AccountID) (AccountView, bool) {
	for _, view := range s.Accounts {
		if view.Account.ID == id {
			return view, true
		}
	}

	return AccountView{}, false
}

// Collection holds the last loaded snapshot of the account store. Snapshots
// are replaced wholesale on every Load and never patched.
type Collection struct {
	store  ports.AccountStore
	clock  ports.Clock
	logger *zap.Logger

	mu   sync.RWMutex
	last Snapshot
}

func NewCollection(store ports.AccountStore, clock ports.Clock, logger *zap.Logger) *Collection {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Collection{store: store, clock: clock, logger: logger}
}

// Load fetches the full collection. When the store fails, the returned
// snapshot is empty with an all-zero summary and the error reports why.
func (c *Collection) Load(ctx context.Context) (Snapshot, error) {
	now := c.clock.Now()

	accounts, err := c.store.List(ctx)
	if err != nil {
		c.logger.Warn("load accounts failed", zap.Error(err))
		snapshot := Snapshot{Accounts: []AccountView{}, LoadedAt: now}
		c.replace(snapshot)
		return snapshot, fmt.Errorf("%w: load accounts: %w", domain.ErrStore, err)
	}

	snapshot := BuildSnapshot(accounts, now)
	c.replace(snapshot)
	c.logger.Debug("accounts loaded", zap.Int("total", snapshot.Summary.Total))

	return snapshot, nil
}

// Last returns the most recently loaded snapshot.
func (c *Collection) Last() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.last
}

func (c *Collection) replace(snapshot Snapshot) {
	c.mu.Lock()
	c.last = snapshot
	c.mu.Unlock()
}

func BuildSnapshot(accounts []domain.Account, now time.Time) Snapshot {
	views := make([]AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, NewAccountView(account, now))
	}

	return Snapshot{
		Accounts: views,
		Summary:  domain.Summarize(accounts, now),
		LoadedAt: now,
	}
}

func NewAccountView(account domain.Account, now time.Time) AccountView {
	return AccountView{
		Account:     account,
		Expiry:      account.Expiry(now),
		TokenStatus: domain.ClassifyToken(account),
	}
}
