package application

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/windsurf-accounts-cli/internal/domain"
	"github.com/bnema/windsurf-accounts-cli/internal/ports"
)

const (
	exportTimeLayout      = "2006-01-02T15:04:05.000Z07:00"
	exportLocalTimeLayout = "2006/1/2 15:04:05"
)

// ExportedAccount is the documented export projection. expiresAt,
// totalCredits and usedCredits are not part of it.
type ExportedAccount struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	FirstName    *string  `json:"firstName"`
	LastName     *string  `json:"lastName"`
	Name         *string  `json:"name"`
	APIKey       *string  `json:"apiKey"`
	APIServerURL *string  `json:"apiServerUrl"`
	RefreshToken *string  `json:"refreshToken"`
	CreatedAt    *string  `json:"createdAt"`
	Type         *string  `json:"type"`
	Credits      *float64 `json:"credits"`
	Usage        *float64 `json:"usage"`
}

type AccountExport struct {
	ExportTime      string          `json:"exportTime"`
	ExportTimeLocal string          `json:"exportTimeLocal"`
	Account         ExportedAccount `json:"account"`
}

type CollectionExport struct {
	ExportTime      string            `json:"exportTime"`
	ExportTimeLocal string            `json:"exportTimeLocal"`
	TotalCount      int               `json:"totalCount"`
	Accounts        []ExportedAccount `json:"accounts"`
}

type Exporter struct {
	clock    ports.Clock
	location *time.Location
}

// NewExporter builds an exporter stamping documents with clock. location
// drives exportTimeLocal; nil means time.Local.
func NewExporter(clock ports.Clock, location *time.Location) Exporter {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if location == nil {
		location = time.Local
	}

	return Exporter{clock: clock, location: location}
}

func (e Exporter) ExportAccount(account domain.Account) AccountExport {
	now := e.clock.Now()

	return AccountExport{
		ExportTime:      formatExportTime(now),
		ExportTimeLocal: now.In(e.location).Format(exportLocalTimeLayout),
		Account:         projectAccount(account),
	}
}

func (e Exporter) ExportCollection(accounts []domain.Account) CollectionExport {
	now := e.clock.Now()

	projected := make([]ExportedAccount, 0, len(accounts))
	for _, account := range accounts {
		projected = append(projected, projectAccount(account))
	}

	return CollectionExport{
		ExportTime:      formatExportTime(now),
		ExportTimeLocal: now.In(e.location).Format(exportLocalTimeLayout),
		TotalCount:      len(projected),
		Accounts:        projected,
	}
}

// MarshalExport encodes an export document as indented UTF-8 JSON.
func MarshalExport(document any) ([]byte, error) {
	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export document: %w", err)
	}

	return append(data, '\n'), nil
}

func CollectionExportFileName(now time.Time) string {
	return fmt.Sprintf("windsurf-accounts-%d.json", now.UnixMilli())
}

func AccountExportFileName(account domain.Account, now time.Time) string {
	email := strings.Replace(account.Email, "@", "_", 1)
	return fmt.Sprintf("windsurf-account-%s-%d.json", email, now.UnixMilli())
}

func projectAccount(account domain.Account) ExportedAccount {
	exported := ExportedAccount{
		ID:           string(account.ID),
		Email:        account.Email,
		Password:     account.Password,
		FirstName:    optionalString(account.FirstName),
		LastName:     optionalString(account.LastName),
		Name:         optionalString(account.Name),
		APIKey:       optionalString(account.APIKey),
		APIServerURL: optionalString(account.APIServerURL),
		RefreshToken: optionalString(account.RefreshToken),
		Type:         optionalString(account.Type),
		Credits:      account.Credits,
		Usage:        account.Usage,
	}
	if !account.CreatedAt.IsZero() {
		createdAt := formatExportTime(account.CreatedAt)
		exported.CreatedAt = &createdAt
	}

	return exported
}

func formatExportTime(t time.Time) string {
	return t.UTC().Format(exportTimeLayout)
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}

	return &v
}
