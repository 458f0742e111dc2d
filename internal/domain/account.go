package domain

import (
	"fmt"
	"strings"
	"time"
)

type AccountID string

// Account is one stored credential set plus the subscription data last
// written by a refresh. Empty strings, zero times and nil numbers mean the
// field is absent.
type Account struct {
	ID           AccountID
	Email        string
	Password     string
	FirstName    string
	LastName     string
	Name         string
	APIKey       string
	RefreshToken string
	APIServerURL string
	CreatedAt    time.Time
	ExpiresAt    time.Time
	Type         string
	Credits      *float64
	Usage        *float64
	TotalCredits *float64
	UsedCredits  *float64
}

func (a Account) DisplayName() string {
	if name := strings.TrimSpace(a.Name); name != "" {
		return name
	}

	full := strings.TrimSpace(strings.TrimSpace(a.FirstName) + " " + strings.TrimSpace(a.LastName))
	return full
}

// AccountDraft carries the fields accepted when creating an account. The
// store assigns ID and, when CreatedAt is zero, the creation time.
type AccountDraft struct {
	Email        string
	Password     string
	APIKey       string
	RefreshToken string
	FirstName    string
	LastName     string
	Name         string
	APIServerURL string
	CreatedAt    time.Time
	Type         string
	Credits      *float64
	Usage        *float64
}

func (d AccountDraft) Validate() error {
	if strings.TrimSpace(d.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if d.Password == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}

	return nil
}

func (d AccountDraft) NewAccount(id AccountID, createdAt time.Time) Account {
	if !d.CreatedAt.IsZero() {
		createdAt = d.CreatedAt
	}

	return Account{
		ID:           id,
		Email:        strings.TrimSpace(d.Email),
		Password:     d.Password,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Name:         d.Name,
		APIKey:       strings.TrimSpace(d.APIKey),
		RefreshToken: strings.TrimSpace(d.RefreshToken),
		APIServerURL: d.APIServerURL,
		CreatedAt:    createdAt,
		Type:         d.Type,
		Credits:      d.Credits,
		Usage:        d.Usage,
	}
}

func Float(v float64) *float64 {
	return &v
}
