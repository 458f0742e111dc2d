package application

import (
	"fmt"
	"sync"

	"github.com/bnema/windsurf-accounts-cli/internal/domain"
)

// inflightGuard allows at most one mutation per account id. A collection
// wide operation excludes every per-id mutation and vice versa.
type inflightGuard struct {
	mu        sync.Mutex
	ids       map[domain.AccountID]struct{}
	exclusive bool
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{ids: map[domain.AccountID]struct{}{}}
}

func (g *inflightGuard) acquire(id domain.AccountID) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.exclusive {
		return nil, fmt.Errorf("%w: account %s: collection operation in progress", domain.ErrBusy, id)
	}
	if _, ok := g.ids[id]; ok {
		return nil, fmt.Errorf("%w: account %s: another operation is in progress", domain.ErrBusy, id)
	}
	g.ids[id] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.ids, id)
			g.mu.Unlock()
		})
	}, nil
}

func (g *inflightGuard) acquireAll() (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.exclusive || len(g.ids) > 0 {
		return nil, fmt.Errorf("%w: %d account operation(s) in progress", domain.ErrBusy, len(g.ids))
	}
	g.exclusive = true

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			g.exclusive = false
			g.mu.Unlock()
		})
	}, nil
}

func (g *inflightGuard) busy(id domain.AccountID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.ids[id]
	return ok || g.exclusive
}
