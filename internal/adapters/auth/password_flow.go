package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/windsurf-accounts-cli/internal/adapters/httpapi"
	"github.com/bnema/windsurf-accounts-cli/internal/domain"
	"github.com/bnema/windsurf-accounts-cli/internal/ports"
	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultSignInPath   = "v1/auth/sign-in"
	DefaultRegisterPath = "v1/auth/register-user"
	defaultFlowTimeout  = 5 * time.Minute
)

var ErrMissingCredentials = errors.New("email and password are required")

type API struct {
	BaseURL      string
	SignInPath   string
	RegisterPath string
}

// PasswordFlow signs in with email and password, then registers the session
// to obtain an API key. Each step reports a progress line.
type PasswordFlow struct {
	API            API
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	FlowTimeout    time.Duration
}

var _ ports.LoginFlow = PasswordFlow{}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"return_secure_token"`
}

type signInResponse struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
}

type registerRequest struct {
	IDToken string `json:"id_token"`
}

type registerResponse struct {
	APIKey       string `json:"api_key"`
	Name         string `json:"name"`
	APIServerURL string `json:"api_server_url"`
}

// IdentityClaims are the profile fields read from the sign-in id token. The
// token signature is not verified; the claims only label the account.
type IdentityClaims struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	jwt.RegisteredClaims
}

func (f PasswordFlow) LoginAndGetTokens(ctx context.Context, account domain.Account, logs ports.LogSink) (domain.Account, error) {
	if logs == nil {
		logs = func(string) {}
	}
	if strings.TrimSpace(account.Email) == "" || account.Password == "" {
		return domain.Account{}, ErrMissingCredentials
	}

	timeout := f.FlowTimeout
	if timeout <= 0 {
		timeout = defaultFlowTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	signInURL, err := httpapi.Endpoint(f.API.BaseURL, pathOr(f.API.SignInPath, DefaultSignInPath))
	if err != nil {
		return domain.Account{}, err
	}
	registerURL, err := httpapi.Endpoint(f.API.BaseURL, pathOr(f.API.RegisterPath, DefaultRegisterPath))
	if err != nil {
		return domain.Account{}, err
	}

	logs(fmt.Sprintf("connecting to %s", hostOf(signInURL)))
	logs(fmt.Sprintf("signing in as %s", account.Email))

	var session signInResponse
	if err := f.post(ctx, signInURL, signInRequest{Email: account.Email, Password: account.Password, ReturnSecureToken: true}, &session); err != nil {
		logs("sign-in failed")
		return domain.Account{}, fmt.Errorf("sign in: %w", err)
	}
	if session.IDToken == "" || session.RefreshToken == "" {
		return domain.Account{}, errors.New("sign in: response missing id token or refresh token")
	}
	logs("sign-in succeeded, refresh token received")

	claims, err := ParseIdentityClaims(session.IDToken)
	if err != nil {
		logs("id token unreadable, profile fields skipped")
	}

	logs("registering session for an API key")
	var registered registerResponse
	if err := f.post(ctx, registerURL, registerRequest{IDToken: session.IDToken}, &registered); err != nil {
		logs("registration failed")
		return domain.Account{}, fmt.Errorf("register user: %w", err)
	}
	if registered.APIKey == "" {
		return domain.Account{}, errors.New("register user: response missing api key")
	}
	logs("API key received")

	result := account
	result.APIKey = registered.APIKey
	result.RefreshToken = session.RefreshToken
	if registered.APIServerURL != "" {
		result.APIServerURL = registered.APIServerURL
	}
	result.Name = firstNonEmpty(registered.Name, claims.Name, account.Name)
	result.FirstName = firstNonEmpty(claims.GivenName, account.FirstName)
	result.LastName = firstNonEmpty(claims.FamilyName, account.LastName)

	return result, nil
}

// ParseIdentityClaims decodes the payload of an id token without checking
// its signature.
func ParseIdentityClaims(idToken string) (IdentityClaims, error) {
	var claims IdentityClaims
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, &claims); err != nil {
		return IdentityClaims{}, fmt.Errorf("parse id token: %w", err)
	}

	return claims, nil
}

func (f PasswordFlow) post(ctx context.Context, endpoint string, body any, out any) error {
	requestCtx, cancel := context.WithTimeout(ctx, f.requestTimeout())
	defer cancel()

	return httpapi.PostJSON(requestCtx, f.HTTPClient, endpoint, nil, body, out)
}

func (f PasswordFlow) requestTimeout() time.Duration {
	if f.RequestTimeout > 0 {
		return f.RequestTimeout
	}
	return httpapi.DefaultRequestTimeout
}

func pathOr(path string, fallback string) string {
	if path == "" {
		return fallback
	}
	return path
}

func hostOf(endpoint string) string {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return endpoint
	}
	return parsed.Host
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
