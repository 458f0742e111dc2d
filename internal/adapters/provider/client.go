// Package provider queries the remote account service for plan and credit
// data.
package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/windsurf-accounts-cli/internal/adapters/httpapi"
	"github.com/bnema/windsurf-accounts-cli/internal/domain"
	"github.com/bnema/windsurf-accounts-cli/internal/ports"
	"go.uber.org/zap"
)

const DefaultQueryPath = "v1/account/query"

type Client struct {
	BaseURL        string
	QueryPath      string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Logger         *zap.Logger
}

var _ ports.AccountProvider = Client{}

type queryRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type queryResponse struct {
	PlanName        string   `json:"plan_name"`
	TotalCredits    *float64 `json:"total_credits"`
	UsedCredits     *float64 `json:"used_credits"`
	UsagePercentage *float64 `json:"usage_percentage"`
	ExpiresAt       string   `json:"expires_at"`
}

// QueryAccount exchanges the account's refresh token for its current plan
// snapshot. The account's own API server, when set, replaces BaseURL.
// Fields the service omits stay absent in the snapshot.
func (c Client) QueryAccount(ctx context.Context, account domain.Account) (domain.ProviderSnapshot, error) {
	if account.RefreshToken == "" {
		return domain.ProviderSnapshot{}, errors.New("refresh token is required")
	}

	path := c.QueryPath
	if path == "" {
		path = DefaultQueryPath
	}
	baseURL := c.BaseURL
	if override := strings.TrimSpace(account.APIServerURL); override != "" {
		baseURL = override
	}
	endpoint, err := httpapi.Endpoint(baseURL, path)
	if err != nil {
		return domain.ProviderSnapshot{}, err
	}

	headers := map[string]string{}
	if account.APIKey != "" {
		headers["Authorization"] = "Bearer " + account.APIKey
	}

	requestCtx, cancel := httpapi.WithTimeout(ctx, c.RequestTimeout)
	defer cancel()

	c.logger().Debug("query account", zap.String("account_id", string(account.ID)), zap.String("endpoint", endpoint))

	var payload queryResponse
	if err := httpapi.PostJSON(requestCtx, c.HTTPClient, endpoint, headers, queryRequest{RefreshToken: account.RefreshToken}, &payload); err != nil {
		return domain.ProviderSnapshot{}, fmt.Errorf("query account: %w", err)
	}

	snapshot := domain.ProviderSnapshot{
		PlanName:        payload.PlanName,
		TotalCredits:    payload.TotalCredits,
		UsedCredits:     payload.UsedCredits,
		UsagePercentage: payload.UsagePercentage,
	}
	if payload.ExpiresAt != "" {
		expiresAt, err := time.Parse(time.RFC3339, payload.ExpiresAt)
		if err != nil {
			return domain.ProviderSnapshot{}, fmt.Errorf("query account: parse expires_at %q: %w", payload.ExpiresAt, err)
		}
		snapshot.ExpiresAt = expiresAt
	}

	return snapshot, nil
}

func (c Client) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
