package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/windsurf-accounts-cli/internal/domain"
	"github.com/bnema/windsurf-accounts-cli/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const refreshAllConcurrency = 4

type DeleteAllResult struct {
	Deleted         int
	NothingToDelete bool
}

type RefreshResult struct {
	ID     domain.AccountID
	Email  string
	Update domain.RefreshUpdate
	Err    error
}

type ImportResult struct {
	Created []domain.Account
	Failed  int
}

// Dispatcher mediates every mutation of the account store and the remote
// provider. Mutations on one account id never interleave; a second request
// while one is pending fails with domain.ErrBusy.
type Dispatcher struct {
	store    ports.AccountStore
	provider ports.AccountProvider
	login    ports.LoginFlow
	logger   *zap.Logger
	inflight *inflightGuard
}

func NewDispatcher(store ports.AccountStore, provider ports.AccountProvider, login ports.LoginFlow, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Dispatcher{
		store:    store,
		provider: provider,
		login:    login,
		logger:   logger,
		inflight: newInflightGuard(),
	}
}

// InFlight reports whether a mutation for id is currently pending.
func (d *Dispatcher) InFlight(id domain.AccountID) bool {
	return d.inflight.busy(id)
}

func (d *Dispatcher) Add(ctx context.Context, draft domain.AccountDraft) (domain.Account, error) {
	if err := draft.Validate(); err != nil {
		return domain.Account{}, err
	}

	d.logger.Debug("add account", zap.String("op", "add"))

	account, err := d.store.Create(ctx, draft)
	if err != nil {
		d.logger.Warn("add account failed", zap.String("op", "add"), zap.Error(err))
		return domain.Account{}, fmt.Errorf("%w: create account: %w", domain.ErrStore, err)
	}

	d.logger.Info("account added", zap.String("op", "add"), zap.String("account_id", string(account.ID)))
	return account, nil
}

func (d *Dispatcher) Delete(ctx context.Context, id domain.AccountID) error {
	if err := requireID(id); err != nil {
		return err
	}

	release, err := d.inflight.acquire(id)
	if err != nil {
		return err
	}
	defer release()

	log := d.logger.With(zap.String("op", "delete"), zap.String("account_id", string(id)))
	log.Debug("delete account")

	if err := d.store.Delete(ctx, id); err != nil {
		log.Warn("delete account failed", zap.Error(err))
		return fmt.Errorf("%w: delete account %s: %w", domain.ErrStore, id, err)
	}

	log.Info("account deleted")
	return nil
}

// DeleteAll removes every account. An empty store is a no-op reported through
// the result, not an error.
func (d *Dispatcher) DeleteAll(ctx context.Context) (DeleteAllResult, error) {
	release, err := d.inflight.acquireAll()
	if err != nil {
		return DeleteAllResult{}, err
	}
	defer release()

	log := d.logger.With(zap.String("op", "delete_all"))

	accounts, err := d.store.List(ctx)
	if err != nil {
		log.Warn("list accounts failed", zap.Error(err))
		return DeleteAllResult{}, fmt.Errorf("%w: list accounts: %w", domain.ErrStore, err)
	}
	if len(accounts) == 0 {
		log.Debug("nothing to delete")
		return DeleteAllResult{NothingToDelete: true}, nil
	}

	if err := d.store.DeleteAll(ctx); err != nil {
		log.Warn("delete all accounts failed", zap.Error(err))
		return DeleteAllResult{}, fmt.Errorf("%w: delete all accounts: %w", domain.ErrStore, err)
	}

	log.Info("all accounts deleted", zap.Int("deleted", len(accounts)))
	return DeleteAllResult{Deleted: len(accounts)}, nil
}

// Refresh queries the provider for id and writes the derived subscription
// fields. Nothing is written when the provider call fails.
func (d *Dispatcher) Refresh(ctx context.Context, id domain.AccountID) (domain.RefreshUpdate, error) {
	if err := requireID(id); err != nil {
		return domain.RefreshUpdate{}, err
	}

	release, err := d.inflight.acquire(id)
	if err != nil {
		return domain.RefreshUpdate{}, err
	}
	defer release()

	log := d.logger.With(zap.String("op", "refresh"), zap.String("account_id", string(id)))

	account, err := d.store.GetByID(ctx, id)
	if err != nil {
		return domain.RefreshUpdate{}, fmt.Errorf("%w: get account %s: %w", domain.ErrStore, id, err)
	}
	if account.RefreshToken == "" {
		return domain.RefreshUpdate{}, fmt.Errorf("%w: account %s: missing refresh token", domain.ErrValidation, id)
	}

	log.Debug("query provider")
	snapshot, err := d.provider.QueryAccount(ctx, account)
	if err != nil {
		log.Warn("query provider failed", zap.Error(err))
		return domain.RefreshUpdate{}, fmt.Errorf("%w: query account %s: %w", domain.ErrProvider, id, err)
	}

	update := domain.NewRefreshUpdate(account, snapshot)
	if err := d.store.Update(ctx, update); err != nil {
		log.Warn("update account failed", zap.Error(err))
		return domain.RefreshUpdate{}, fmt.Errorf("%w: update account %s: %w", domain.ErrStore, id, err)
	}

	log.Info("account refreshed", zap.String("type", update.Type), zap.Float64("credits", update.Credits))
	return update, nil
}

// RefreshAll refreshes every account holding a refresh token. Results keep
// the store order; completions are unordered.
func (d *Dispatcher) RefreshAll(ctx context.Context) ([]RefreshResult, error) {
	accounts, err := d.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list accounts: %w", domain.ErrStore, err)
	}

	eligible := make([]domain.Account, 0, len(accounts))
	for _, account := range accounts {
		if account.RefreshToken != "" {
			eligible = append(eligible, account)
		}
	}

	results := make([]RefreshResult, len(eligible))
	var group errgroup.Group
	group.SetLimit(refreshAllConcurrency)
	for i, account := range eligible {
		i, account := i, account
		group.Go(func() error {
			update, err := d.Refresh(ctx, account.ID)
			results[i] = RefreshResult{ID: account.ID, Email: account.Email, Update: update, Err: err}
			return nil
		})
	}
	_ = group.Wait()

	return results, nil
}

// AcquireToken runs the login flow for an account without an API key and
// stores the returned account. Progress lines go to logs as they arrive.
func (d *Dispatcher) AcquireToken(ctx context.Context, id domain.AccountID, logs ports.LogSink) (domain.Account, error) {
	if err := requireID(id); err != nil {
		return domain.Account{}, err
	}
	if logs == nil {
		logs = func(string) {}
	}

	release, err := d.inflight.acquire(id)
	if err != nil {
		return domain.Account{}, err
	}
	defer release()

	log := d.logger.With(zap.String("op", "acquire_token"), zap.String("account_id", string(id)))

	account, err := d.store.GetByID(ctx, id)
	if err != nil {
		return domain.Account{}, fmt.Errorf("%w: get account %s: %w", domain.ErrStore, id, err)
	}
	if status := domain.ClassifyToken(account); status != domain.TokenNotAcquired {
		return domain.Account{}, fmt.Errorf("%w: account %s already has a token (%s)", domain.ErrPrecondition, id, status)
	}

	log.Debug("start login flow")
	acquired, err := d.login.LoginAndGetTokens(ctx, account, logs)
	if err != nil {
		log.Warn("login flow failed", zap.Error(err))
		return domain.Account{}, fmt.Errorf("%w: login account %s: %w", domain.ErrProvider, id, err)
	}

	acquired = mergeAcquired(account, acquired)
	if err := d.store.Save(ctx, acquired); err != nil {
		log.Warn("save acquired token failed", zap.Error(err))
		return domain.Account{}, fmt.Errorf("%w: save account %s: %w", domain.ErrStore, id, err)
	}

	log.Info("token acquired", zap.String("token_status", string(domain.ClassifyToken(acquired))))
	return acquired, nil
}

// Import creates one account per record. Unreadable records, invalid drafts
// and store failures are counted and joined into the returned error; valid
// records still land.
func (d *Dispatcher) Import(ctx context.Context, records []ImportRecord) (ImportResult, error) {
	result := ImportResult{Created: make([]domain.Account, 0, len(records))}
	var errs []error

	for i, record := range records {
		draft := record.Draft
		err := record.Err
		var account domain.Account
		if err == nil {
			account, err = d.Add(ctx, draft)
		} else {
			d.logger.Warn("skip import record", zap.String("op", "import"), zap.Int("record", i+1), zap.Error(err))
		}
		if err != nil {
			result.Failed++
			errs = append(errs, fmt.Errorf("record %d (%s): %w", i+1, strings.TrimSpace(draft.Email), err))
			continue
		}
		result.Created = append(result.Created, account)
	}

	return result, errors.Join(errs...)
}

// mergeAcquired keeps the identity fields of the stored account that a login
// flow must not change.
func mergeAcquired(stored, acquired domain.Account) domain.Account {
	acquired.ID = stored.ID
	acquired.CreatedAt = stored.CreatedAt
	if strings.TrimSpace(acquired.Email) == "" {
		acquired.Email = stored.Email
	}
	if acquired.Password == "" {
		acquired.Password = stored.Password
	}

	return acquired
}

func requireID(id domain.AccountID) error {
	if strings.TrimSpace(string(id)) == "" {
		return fmt.Errorf("%w: account id is required", domain.ErrValidation)
	}

	return nil
}
