package ports

import (
	"context"

	"github.com/bnema/windsurf-accounts-cli/internal/domain"
)

// AccountStore is the authoritative account collection. Every mutation is
// keyed by id; Save replaces the whole stored record.
type AccountStore interface {
	List(ctx context.Context) ([]domain.Account, error)
	GetByID(ctx context.Context, id domain.AccountID) (domain.Account, error)
	Create(ctx context.Context, draft domain.AccountDraft) (domain.Account, error)
	Save(ctx context.Context, account domain.Account) error
	Update(ctx context.Context, update domain.RefreshUpdate) error
	Delete(ctx context.Context, id domain.AccountID) error
	DeleteAll(ctx context.Context) error
}
