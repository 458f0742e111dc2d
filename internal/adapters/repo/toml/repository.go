package toml

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/windsurf-accounts-cli/internal/atomicfile"
	"github.com/bnema/windsurf-accounts-cli/internal/domain"
	"github.com/bnema/windsurf-accounts-cli/internal/ports"
	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	accountsPathKey    = "accounts.path"
	accountsFileMode   = 0o600
	accountsDirMode    = 0o700
	accountsConfigDir  = ".wa"
	accountsConfigFile = "accounts.toml"
	tempFilePattern    = ".accounts-*.toml.tmp"
	secretKeyPrefix    = "wa/accounts"
)

// Repository is the file-backed account store. Every write replaces the
// whole file atomically; readers never observe a partial write.
type Repository struct {
	accountsPath string
	secrets      ports.SecretStore
	clock        ports.Clock
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.AccountStore = (*Repository)(nil)

// NewRepository resolves accounts.path from cfg. A nil secrets store keeps
// credentials inline in the accounts file.
func NewRepository(cfg *viper.Viper, secrets ports.SecretStore, clock ports.Clock) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	accountsPath := cfg.GetString(accountsPathKey)
	if accountsPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		accountsPath = filepath.Join(homeDir, accountsConfigDir, accountsConfigFile)
	}

	accountsPath, err := normalizeAccountsPath(accountsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{
		accountsPath: accountsPath,
		secrets:      secrets,
		clock:        clock,
		mu:           lockForPath(accountsPath),
	}, nil
}

func (r *Repository) Path() string {
	return r.accountsPath
}

func (r *Repository) List(ctx context.Context) ([]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(file.Accounts))
	for _, entry := range file.Accounts {
		account, err := r.fromSchema(ctx, entry)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

func (r *Repository) GetByID(ctx context.Context, id domain.AccountID) (domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return domain.Account{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Account{}, err
	}

	index := file.indexOf(id)
	if index < 0 {
		return domain.Account{}, fmt.Errorf("account %s: %w", id, domain.ErrAccountNotFound)
	}

	return r.fromSchema(ctx, file.Accounts[index])
}

// Create assigns a fresh id and, when the draft has none, the creation time.
func (r *Repository) Create(ctx context.Context, draft domain.AccountDraft) (domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return domain.Account{}, err
	}

	account := draft.NewAccount(domain.AccountID(uuid.NewString()), r.clock.Now().UTC())

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Account{}, err
	}

	entry, err := r.toSchema(ctx, account)
	if err != nil {
		return domain.Account{}, err
	}
	file.Accounts = append(file.Accounts, entry)

	if err := r.writeSchema(file); err != nil {
		r.dropSecret(ctx, entry)
		return domain.Account{}, err
	}

	return account, nil
}

// Save replaces every field of an existing account.
func (r *Repository) Save(ctx context.Context, account domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	index := file.indexOf(account.ID)
	if index < 0 {
		return fmt.Errorf("account %s: %w", account.ID, domain.ErrAccountNotFound)
	}

	restore, err := r.backupSecret(ctx, file.Accounts[index])
	if err != nil {
		return err
	}

	entry, err := r.toSchema(ctx, account)
	if err != nil {
		restore()
		return err
	}
	file.Accounts[index] = entry

	if err := r.writeSchema(file); err != nil {
		restore()
		return err
	}

	return nil
}

// Update writes the refresh-derived fields only; identity and credentials
// are left as stored.
func (r *Repository) Update(ctx context.Context, update domain.RefreshUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	index := file.indexOf(update.ID)
	if index < 0 {
		return fmt.Errorf("account %s: %w", update.ID, domain.ErrAccountNotFound)
	}

	entry := &file.Accounts[index]
	if entry.Subscription == nil {
		entry.Subscription = &subscription{}
	}
	entry.Subscription.Type = update.Type
	entry.Subscription.ExpiresAt = formatTime(update.ExpiresAt)
	entry.Subscription.Credits = domain.Float(update.Credits)
	entry.Subscription.Usage = domain.Float(update.Usage)
	entry.Subscription.TotalCredits = domain.Float(update.TotalCredits)
	entry.Subscription.UsedCredits = domain.Float(update.UsedCredits)

	return r.writeSchema(file)
}

func (r *Repository) Delete(ctx context.Context, id domain.AccountID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	index := file.indexOf(id)
	if index < 0 {
		return fmt.Errorf("account %s: %w", id, domain.ErrAccountNotFound)
	}

	removed := file.Accounts[index]
	file.Accounts = append(file.Accounts[:index], file.Accounts[index+1:]...)
	if err := r.writeSchema(file); err != nil {
		return err
	}

	r.dropSecret(ctx, removed)
	return nil
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	removed := file.Accounts
	file.Accounts = []accountSchema{}
	if err := r.writeSchema(file); err != nil {
		return err
	}

	for _, entry := range removed {
		r.dropSecret(ctx, entry)
	}

	return nil
}

func (s fileSchema) indexOf(id domain.AccountID) int {
	for i := range s.Accounts {
		if s.Accounts[i].ID == string(id) {
			return i
		}
	}

	return -1
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.accountsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read accounts file: %w", err)
	}

	var file fileSchema
	decoder := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return fileSchema{}, fmt.Errorf("decode accounts file %s: %w", r.accountsPath, err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeAccountsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve accounts path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode accounts file: %w", err)
	}

	if err := atomicfile.Write(r.accountsPath, data, accountsFileMode, accountsDirMode, tempFilePattern); err != nil {
		return fmt.Errorf("write accounts file: %w", err)
	}

	return nil
}

func secretKey(id domain.AccountID) string {
	return secretKeyPrefix + "/" + string(id) + "/credentials"
}

func (r *Repository) toSchema(ctx context.Context, account domain.Account) (accountSchema, error) {
	entry := accountSchema{
		ID:           string(account.ID),
		Email:        account.Email,
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		Name:         account.Name,
		APIServerURL: account.APIServerURL,
		CreatedAt:    formatTime(account.CreatedAt),
	}

	sub := &subscription{
		Type:         account.Type,
		ExpiresAt:    formatTime(account.ExpiresAt),
		Credits:      account.Credits,
		Usage:        account.Usage,
		TotalCredits: account.TotalCredits,
		UsedCredits:  account.UsedCredits,
	}
	if !sub.empty() {
		entry.Subscription = sub
	}

	creds := credentials{
		Password:     account.Password,
		APIKey:       account.APIKey,
		RefreshToken: account.RefreshToken,
	}
	if r.secrets == nil {
		entry.Credentials = &creds
		return entry, nil
	}

	sealed, err := toml.Marshal(creds)
	if err != nil {
		return accountSchema{}, fmt.Errorf("encode credentials for %s: %w", account.ID, err)
	}

	key := secretKey(account.ID)
	if err := r.secrets.Put(ctx, key, string(sealed)); err != nil {
		return accountSchema{}, fmt.Errorf("store credentials for %s: %w", account.ID, err)
	}
	entry.SecretRef = key

	return entry, nil
}

func (r *Repository) fromSchema(ctx context.Context, entry accountSchema) (domain.Account, error) {
	account := domain.Account{
		ID:           domain.AccountID(entry.ID),
		Email:        entry.Email,
		FirstName:    entry.FirstName,
		LastName:     entry.LastName,
		Name:         entry.Name,
		APIServerURL: entry.APIServerURL,
		CreatedAt:    parseTime(entry.CreatedAt),
	}

	if sub := entry.Subscription; sub != nil {
		account.Type = sub.Type
		account.ExpiresAt = parseTime(sub.ExpiresAt)
		account.Credits = sub.Credits
		account.Usage = sub.Usage
		account.TotalCredits = sub.TotalCredits
		account.UsedCredits = sub.UsedCredits
	}

	creds, err := r.openCredentials(ctx, entry)
	if err != nil {
		return domain.Account{}, err
	}
	account.Password = creds.Password
	account.APIKey = creds.APIKey
	account.RefreshToken = creds.RefreshToken

	return account, nil
}

func (r *Repository) openCredentials(ctx context.Context, entry accountSchema) (credentials, error) {
	if entry.SecretRef == "" {
		if entry.Credentials == nil {
			return credentials{}, nil
		}
		return *entry.Credentials, nil
	}
	if r.secrets == nil {
		return credentials{}, fmt.Errorf("account %s: credentials sealed in %q but no secret store is configured: %w", entry.ID, entry.SecretRef, domain.ErrSecretNotFound)
	}

	sealed, err := r.secrets.Get(ctx, entry.SecretRef)
	if err != nil {
		return credentials{}, fmt.Errorf("load credentials for %s: %w", entry.ID, err)
	}

	var creds credentials
	if err := toml.Unmarshal([]byte(sealed), &creds); err != nil {
		return credentials{}, fmt.Errorf("decode credentials for %s: %w", entry.ID, err)
	}

	return creds, nil
}

// backupSecret captures the sealed credentials of prior so a failed commit
// can put them back. The returned restore is best effort; when prior had no
// sealed entry it removes whatever toSchema wrote under the account's key.
func (r *Repository) backupSecret(ctx context.Context, prior accountSchema) (func(), error) {
	if r.secrets == nil {
		return func() {}, nil
	}

	key := secretKey(domain.AccountID(prior.ID))
	restoreCtx := context.WithoutCancel(ctx)
	if prior.SecretRef != key {
		return func() { _ = r.secrets.Delete(restoreCtx, key) }, nil
	}

	previous, err := r.secrets.Get(ctx, key)
	switch {
	case err == nil:
		return func() { _ = r.secrets.Put(restoreCtx, key, previous) }, nil
	case errors.Is(err, domain.ErrSecretNotFound):
		return func() { _ = r.secrets.Delete(restoreCtx, key) }, nil
	default:
		return nil, fmt.Errorf("back up credentials for %s: %w", prior.ID, err)
	}
}

// dropSecret is best effort.
func (r *Repository) dropSecret(ctx context.Context, entry accountSchema) {
	if r.secrets == nil || entry.SecretRef == "" {
		return
	}

	_ = r.secrets.Delete(ctx, entry.SecretRef)
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}
