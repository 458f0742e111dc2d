package cmd

import (
	"encoding/json"
	"io"
	"time"

	"github.com/bnema/windsurf-accounts-cli/internal/application"
	"github.com/bnema/windsurf-accounts-cli/internal/domain"
)

type accountJSON struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	DisplayName  string   `json:"displayName,omitempty"`
	FirstName    string   `json:"firstName,omitempty"`
	LastName     string   `json:"lastName,omitempty"`
	Type         string   `json:"type,omitempty"`
	Credits      *float64 `json:"credits"`
	Usage        *float64 `json:"usage"`
	TotalCredits *float64 `json:"totalCredits,omitempty"`
	UsedCredits  *float64 `json:"usedCredits,omitempty"`
	APIServerURL string   `json:"apiServerUrl,omitempty"`
	CreatedAt    string   `json:"createdAt,omitempty"`
	ExpiresAt    string   `json:"expiresAt,omitempty"`
	ExpiryDate   string   `json:"expiryDate,omitempty"`
	DaysLeft     int      `json:"daysLeft"`
	Expired      bool     `json:"expired"`
	ExpiryBand   string   `json:"expiryBand"`
	TokenStatus  string   `json:"tokenStatus"`
	Password     string   `json:"password,omitempty"`
	APIKey       string   `json:"apiKey,omitempty"`
	RefreshToken string   `json:"refreshToken,omitempty"`
}

type collectionJSON struct {
	Summary  domain.Summary `json:"summary"`
	Accounts []accountJSON  `json:"accounts"`
}

func newAccountJSON(view application.AccountView, withSecrets bool) accountJSON {
	account := view.Account
	out := accountJSON{
		ID:           string(account.ID),
		Email:        account.Email,
		DisplayName:  account.DisplayName(),
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		Type:         account.Type,
		Credits:      account.Credits,
		Usage:        account.Usage,
		TotalCredits: account.TotalCredits,
		UsedCredits:  account.UsedCredits,
		APIServerURL: account.APIServerURL,
		CreatedAt:    jsonTime(account.CreatedAt),
		ExpiresAt:    jsonTime(account.ExpiresAt),
		ExpiryDate:   jsonTime(view.Expiry.ExpiryDate),
		DaysLeft:     view.Expiry.DaysLeft,
		Expired:      view.Expiry.IsExpired,
		ExpiryBand:   string(view.Expiry.Band()),
		TokenStatus:  string(view.TokenStatus),
	}

	if withSecrets {
		out.Password = account.Password
		out.APIKey = account.APIKey
		out.RefreshToken = account.RefreshToken
	}

	return out
}

func newCollectionJSON(snapshot application.Snapshot) collectionJSON {
	accounts := make([]accountJSON, 0, len(snapshot.Accounts))
	for _, view := range snapshot.Accounts {
		accounts = append(accounts, newAccountJSON(view, false))
	}

	return collectionJSON{Summary: snapshot.Summary, Accounts: accounts}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func jsonTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}
