package domain

import "time"

type Summary struct {
	Total   int `json:"totalCount"`
	Active  int `json:"activeCount"`
	Warning int `json:"warningCount"`
	Expired int `json:"expiredCount"`
}

// Summarize folds every account into the collection counts. Accounts
// without an authoritative expiry count as active whatever their age.
func Summarize(accounts []Account, now time.Time) Summary {
	summary := Summary{Total: len(accounts)}
	for _, account := range accounts {
		if account.ExpiresAt.IsZero() {
			summary.Active++
			continue
		}

		switch account.Expiry(now).Band() {
		case ExpiryBandExpired:
			summary.Expired++
		case ExpiryBandWarning:
			summary.Active++
			summary.Warning++
		default:
			summary.Active++
		}
	}

	return summary
}
