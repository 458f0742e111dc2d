package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bnema/windsurf-accounts-cli/internal/adapters/auth"
	"github.com/bnema/windsurf-accounts-cli/internal/adapters/clipboard"
	"github.com/bnema/windsurf-accounts-cli/internal/adapters/provider"
	statusadapter "github.com/bnema/windsurf-accounts-cli/internal/adapters/render/status"
	tomlrepo "github.com/bnema/windsurf-accounts-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/windsurf-accounts-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/windsurf-accounts-cli/internal/adapters/secrets/file"
	"github.com/bnema/windsurf-accounts-cli/internal/application"
	"github.com/bnema/windsurf-accounts-cli/internal/config"
	"github.com/bnema/windsurf-accounts-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// newClipboard is replaced in tests where no clipboard tool is installed.
var newClipboard = func() ports.Clipboard { return clipboard.New() }

type app struct {
	logger         *zap.Logger
	repo           *tomlrepo.Repository
	collection     *application.Collection
	dispatcher     *application.Dispatcher
	exporter       application.Exporter
	clipboard      ports.Clipboard
	statusRenderer func(application.Snapshot, statusadapter.RenderOptions) (string, error)
	now            func() time.Time
}

func wireApp() (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, err
	}

	secrets, err := wireSecretStore(cfg.Secrets)
	if err != nil {
		return nil, fmt.Errorf("wire secret store: %w", err)
	}

	clock := ports.SystemClock{}
	repo, err := tomlrepo.NewRepository(v, secrets, clock)
	if err != nil {
		return nil, fmt.Errorf("wire account repository: %w", err)
	}

	httpClient := &http.Client{}
	queryClient := provider.Client{
		BaseURL:        cfg.Provider.BaseURL,
		HTTPClient:     httpClient,
		RequestTimeout: cfg.Provider.Timeout,
		Logger:         logger.Named("provider"),
	}
	loginFlow := auth.PasswordFlow{
		API:            auth.API{BaseURL: cfg.Login.BaseURL},
		HTTPClient:     httpClient,
		RequestTimeout: cfg.Provider.Timeout,
		FlowTimeout:    cfg.Login.Timeout,
	}

	logger.Debug("wired app",
		zap.String("accounts_path", repo.Path()),
		zap.String("secrets_backend", cfg.Secrets.Backend),
	)

	return &app{
		logger:         logger,
		repo:           repo,
		collection:     application.NewCollection(repo, clock, logger.Named("collection")),
		dispatcher:     application.NewDispatcher(repo, queryClient, loginFlow, logger.Named("dispatcher")),
		exporter:       application.NewExporter(clock, time.Local),
		clipboard:      newClipboard(),
		statusRenderer: statusadapter.Render,
		now:            clock.Now,
	}, nil
}

// wireSecretStore returns nil for the "none" backend, which keeps
// credentials inline in the accounts file.
func wireSecretStore(cfg config.SecretsConfig) (ports.SecretStore, error) {
	switch cfg.Backend {
	case config.SecretsBackendNone:
		return nil, nil
	case config.SecretsBackendFile:
		return filestore.NewStore(cfg.Path), nil
	default:
		store, err := chainstore.NewPassFirstWithFileFallback(cfg.PassFolder, cfg.Path)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}
