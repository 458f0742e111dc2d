package domain

import (
	"strings"
	"time"
)

// UnknownPlanType marks accounts whose plan neither the provider nor a
// previous refresh reported.
const UnknownPlanType = "unknown"

// ProviderSnapshot is the subscription data returned by queryAccount.
type ProviderSnapshot struct {
	PlanName        string
	TotalCredits    *float64
	UsedCredits     *float64
	UsagePercentage *float64
	ExpiresAt       time.Time
}

// RefreshUpdate is the only patch a refresh may write. It never carries
// credentials or the creation time.
type RefreshUpdate struct {
	ID           AccountID
	Type         string
	Credits      float64
	Usage        float64
	TotalCredits float64
	UsedCredits  float64
	ExpiresAt    time.Time
}

func NewRefreshUpdate(prior Account, snapshot ProviderSnapshot) RefreshUpdate {
	update := RefreshUpdate{
		ID:        prior.ID,
		Type:      UnknownPlanType,
		ExpiresAt: snapshot.ExpiresAt,
	}

	switch {
	case strings.TrimSpace(snapshot.PlanName) != "":
		update.Type = strings.TrimSpace(snapshot.PlanName)
	case strings.TrimSpace(prior.Type) != "":
		update.Type = prior.Type
	}

	if snapshot.TotalCredits != nil {
		update.TotalCredits = *snapshot.TotalCredits
	}
	if snapshot.UsedCredits != nil {
		update.UsedCredits = *snapshot.UsedCredits
	}
	// Inconsistent provider numbers may go negative; they are stored as reported.
	if snapshot.TotalCredits != nil && snapshot.UsedCredits != nil {
		update.Credits = update.TotalCredits - update.UsedCredits
	}
	if snapshot.UsagePercentage != nil {
		update.Usage = *snapshot.UsagePercentage
	}

	return update
}

func (u RefreshUpdate) Apply(account Account) Account {
	account.Type = u.Type
	account.Credits = Float(u.Credits)
	account.Usage = Float(u.Usage)
	account.TotalCredits = Float(u.TotalCredits)
	account.UsedCredits = Float(u.UsedCredits)
	account.ExpiresAt = u.ExpiresAt
	return account
}
