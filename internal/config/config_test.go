package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".wa", "accounts.toml"), cfg.AccountsPath)
	assert.Equal(t, SecretsBackendChain, cfg.Secrets.Backend)
	assert.Equal(t, filepath.Join(home, ".wa", "secrets"), cfg.Secrets.Path)
	assert.Equal(t, 30*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Login.Timeout)
	assert.Equal(t, zapcore.ErrorLevel, cfg.LogLevel)
}

func TestLoadReadsConfigFileAndEnvOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".wa"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".wa", "config.toml"), []byte(`
[accounts]
path = "/tmp/wa-accounts.toml"

[provider]
base_url = "https://provider.example.com/"
timeout = "10s"

[log]
level = "debug"
`), 0o600))
	t.Setenv("WA_SECRETS_BACKEND", "none")
	t.Setenv("WA_PROVIDER_BASE_URL", "http://127.0.0.1:9999/")

	v := viper.New()
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/wa-accounts.toml", cfg.AccountsPath)
	assert.Equal(t, SecretsBackendNone, cfg.Secrets.Backend)
	assert.Equal(t, "http://127.0.0.1:9999/", cfg.Provider.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "/tmp/wa-accounts.toml", v.GetString(KeyAccountsPath))
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "backend", env: map[string]string{"WA_SECRETS_BACKEND": "vault"}, wantErr: "unknown backend"},
		{name: "log level", env: map[string]string{"WA_LOG_LEVEL": "loud"}, wantErr: KeyLogLevel},
		{name: "timeout", env: map[string]string{"WA_LOGIN_TIMEOUT": "0s"}, wantErr: KeyLoginTimeout},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			_, err := Load(viper.New())
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoadRejectsMalformedConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".wa"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".wa", "config.toml"), []byte("[accounts\n"), 0o600))

	_, err := Load(viper.New())
	require.ErrorContains(t, err, "read config file")
}

func TestNewLoggerHonorsLevel(t *testing.T) {
	logger, err := Config{LogLevel: zapcore.WarnLevel}.NewLogger()
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}
