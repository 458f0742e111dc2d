package application

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/windsurf-accounts-cli/internal/domain"
)

type exportEnvelope struct {
	Account  *ExportedAccount  `json:"account"`
	Accounts []ExportedAccount `json:"accounts"`
}

// ImportRecord is one entry of an export document. Err is set when a field
// could not be read; Dispatcher.Import counts such records as failed.
type ImportRecord struct {
	Draft domain.AccountDraft
	Err   error
}

// ParseExport reads either export envelope back into import records. Keys
// outside the projection are dropped.
func ParseExport(data []byte) ([]ImportRecord, error) {
	var envelope exportEnvelope
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: decode export document: %w", domain.ErrValidation, err)
	}

	var entries []ExportedAccount
	switch {
	case envelope.Accounts != nil:
		entries = envelope.Accounts
	case envelope.Account != nil:
		entries = []ExportedAccount{*envelope.Account}
	default:
		return nil, fmt.Errorf("%w: export document has neither \"account\" nor \"accounts\"", domain.ErrValidation)
	}

	records := make([]ImportRecord, 0, len(entries))
	for _, entry := range entries {
		draft, err := draftFromExport(entry)
		records = append(records, ImportRecord{Draft: draft, Err: err})
	}

	return records, nil
}

func draftFromExport(record ExportedAccount) (domain.AccountDraft, error) {
	draft := domain.AccountDraft{
		Email:        record.Email,
		Password:     record.Password,
		FirstName:    deref(record.FirstName),
		LastName:     deref(record.LastName),
		Name:         deref(record.Name),
		APIKey:       deref(record.APIKey),
		APIServerURL: deref(record.APIServerURL),
		RefreshToken: deref(record.RefreshToken),
		Type:         deref(record.Type),
		Credits:      record.Credits,
		Usage:        record.Usage,
	}
	if raw := strings.TrimSpace(deref(record.CreatedAt)); raw != "" {
		createdAt, err := parseExportTime(raw)
		if err != nil {
			return draft, fmt.Errorf("%w: invalid createdAt %q", domain.ErrValidation, raw)
		}
		draft.CreatedAt = createdAt
	}

	return draft, nil
}

func parseExportTime(raw string) (time.Time, error) {
	if t, err := time.Parse(exportTimeLayout, raw); err == nil {
		return t, nil
	}

	return time.Parse(time.RFC3339Nano, raw)
}

func deref(v *string) string {
	if v == nil {
		return ""
	}

	return *v
}
