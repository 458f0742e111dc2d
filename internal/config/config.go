// Package config resolves the CLI settings from built-in defaults, the
// optional ~/.wa/config.toml and WA_* environment variables, later sources
// overriding earlier ones.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".wa"
	envPrefix  = "WA"

	KeyAccountsPath    = "accounts.path"
	KeySecretsBackend  = "secrets.backend"
	KeySecretsPath     = "secrets.path"
	KeySecretsPassDir  = "secrets.pass_folder"
	KeyProviderBaseURL = "provider.base_url"
	KeyProviderTimeout = "provider.timeout"
	KeyLoginBaseURL    = "login.base_url"
	KeyLoginTimeout    = "login.timeout"
	KeyLogLevel        = "log.level"
)

const (
	SecretsBackendChain = "chain"
	SecretsBackendFile  = "file"
	SecretsBackendNone  = "none"
)

type Config struct {
	AccountsPath string
	Secrets      SecretsConfig
	Provider     EndpointConfig
	Login        EndpointConfig
	LogLevel     zapcore.Level
}

type SecretsConfig struct {
	Backend    string
	Path       string
	PassFolder string
}

type EndpointConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Load fills v with defaults, the optional config file and the environment,
// then validates the result. v keeps the merged values so adapters reading
// from it see the same settings.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, configDir)

	v.SetDefault(KeyAccountsPath, filepath.Join(baseDir, "accounts.toml"))
	v.SetDefault(KeySecretsBackend, SecretsBackendChain)
	v.SetDefault(KeySecretsPath, filepath.Join(baseDir, "secrets"))
	v.SetDefault(KeySecretsPassDir, "windsurf")
	v.SetDefault(KeyProviderBaseURL, "https://server.codeium.com/")
	v.SetDefault(KeyProviderTimeout, 30*time.Second)
	v.SetDefault(KeyLoginBaseURL, "https://register.windsurf.com/")
	v.SetDefault(KeyLoginTimeout, 5*time.Minute)
	v.SetDefault(KeyLogLevel, "error")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(baseDir)
	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		AccountsPath: v.GetString(KeyAccountsPath),
		Secrets: SecretsConfig{
			Backend:    strings.ToLower(strings.TrimSpace(v.GetString(KeySecretsBackend))),
			Path:       v.GetString(KeySecretsPath),
			PassFolder: v.GetString(KeySecretsPassDir),
		},
		Provider: EndpointConfig{
			BaseURL: v.GetString(KeyProviderBaseURL),
			Timeout: v.GetDuration(KeyProviderTimeout),
		},
		Login: EndpointConfig{
			BaseURL: v.GetString(KeyLoginBaseURL),
			Timeout: v.GetDuration(KeyLoginTimeout),
		},
	}

	level, err := zapcore.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyLogLevel, err)
	}
	cfg.LogLevel = level

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.AccountsPath) == "" {
		return fmt.Errorf("%s is empty", KeyAccountsPath)
	}

	switch c.Secrets.Backend {
	case SecretsBackendChain, SecretsBackendFile:
		if strings.TrimSpace(c.Secrets.Path) == "" {
			return fmt.Errorf("%s is empty", KeySecretsPath)
		}
	case SecretsBackendNone:
	default:
		return fmt.Errorf("%s: unknown backend %q (want chain, file or none)", KeySecretsBackend, c.Secrets.Backend)
	}

	if c.Provider.Timeout <= 0 {
		return fmt.Errorf("%s must be positive", KeyProviderTimeout)
	}
	if c.Login.Timeout <= 0 {
		return fmt.Errorf("%s must be positive", KeyLoginTimeout)
	}

	return nil
}

// NewLogger builds a console logger on stderr at the configured level.
func (c Config) NewLogger() (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(c.LogLevel)
	zapCfg.Encoding = "console"
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	zapCfg.DisableStacktrace = true
	zapCfg.Development = false

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger, nil
}
