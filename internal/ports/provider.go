package ports

import (
	"context"

	"github.com/bnema/windsurf-accounts-cli/internal/domain"
)

type AccountProvider interface {
	QueryAccount(ctx context.Context, account domain.Account) (domain.ProviderSnapshot, error)
}

// LogSink receives progress lines pushed by a running login flow.
type LogSink func(line string)

type LoginFlow interface {
	LoginAndGetTokens(ctx context.Context, account domain.Account, logs LogSink) (domain.Account, error)
}
