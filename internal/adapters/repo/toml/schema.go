package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Accounts []accountSchema `toml:"accounts"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported accounts schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

// accountSchema is one [[accounts]] table. Credentials live inline only when
// no secret store is configured; otherwise SecretRef names the sealed entry.
type accountSchema struct {
	ID           string        `toml:"id"`
	Email        string        `toml:"email"`
	FirstName    string        `toml:"first_name,omitempty"`
	LastName     string        `toml:"last_name,omitempty"`
	Name         string        `toml:"name,omitempty"`
	APIServerURL string        `toml:"api_server_url,omitempty"`
	CreatedAt    string        `toml:"created_at,omitempty"`
	SecretRef    string        `toml:"secret_ref,omitempty"`
	Credentials  *credentials  `toml:"credentials,omitempty"`
	Subscription *subscription `toml:"subscription,omitempty"`
}

type credentials struct {
	Password     string `toml:"password"`
	APIKey       string `toml:"api_key,omitempty"`
	RefreshToken string `toml:"refresh_token,omitempty"`
}

// subscription holds the fields written by a provider refresh.
type subscription struct {
	Type         string   `toml:"type,omitempty"`
	ExpiresAt    string   `toml:"expires_at,omitempty"`
	Credits      *float64 `toml:"credits,omitempty"`
	Usage        *float64 `toml:"usage,omitempty"`
	TotalCredits *float64 `toml:"total_credits,omitempty"`
	UsedCredits  *float64 `toml:"used_credits,omitempty"`
}

func (s *subscription) empty() bool {
	return s.Type == "" && s.ExpiresAt == "" &&
		s.Credits == nil && s.Usage == nil && s.TotalCredits == nil && s.UsedCredits == nil
}
