package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		account Account
		want    TokenStatus
	}{
		{name: "zero account", account: Account{}, want: TokenNotAcquired},
		{name: "refresh token without api key", account: Account{RefreshToken: "r"}, want: TokenNotAcquired},
		{name: "api key only", account: Account{APIKey: "k"}, want: TokenIncomplete},
		{name: "both tokens", account: Account{APIKey: "k", RefreshToken: "r"}, want: TokenValid},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ClassifyToken(tc.account))
		})
	}
}

func TestClassifyTokenIgnoresOtherFields(t *testing.T) {
	t.Parallel()

	decorate := func(a Account) Account {
		a.ID = "acc-1"
		a.Email = "user@example.com"
		a.Password = "secret"
		a.Name = "User"
		a.Type = "Pro"
		a.Credits = Float(10)
		a.Usage = Float(50)
		a.ExpiresAt = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		a.APIServerURL = "https://server.example.com"
		return a
	}

	assert.Equal(t, TokenNotAcquired, ClassifyToken(decorate(Account{})))
	assert.Equal(t, TokenIncomplete, ClassifyToken(decorate(Account{APIKey: "k"})))
	assert.Equal(t, TokenValid, ClassifyToken(decorate(Account{APIKey: "k", RefreshToken: "r"})))
}
