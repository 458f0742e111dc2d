package domain

import (
	"math"
	"time"
)

const (
	// TrialPeriodDays is the validity assumed for accounts without an
	// authoritative expiry.
	TrialPeriodDays = 13
	WarningDays     = 3
)

type ExpiryBand string

const (
	ExpiryBandExpired ExpiryBand = "expired"
	ExpiryBandWarning ExpiryBand = "warning"
	ExpiryBandHealthy ExpiryBand = "healthy"
)

type Expiry struct {
	// ExpiryDate is zero when neither a creation time nor an expiry is known.
	ExpiryDate time.Time
	DaysLeft   int
	IsExpired  bool
}

// ComputeExpiry resolves the expiry date from expiresAt, falling back to
// createdAt plus the trial period. DaysLeft is the ceiling of the remaining
// duration in days.
func ComputeExpiry(createdAt, expiresAt, now time.Time) Expiry {
	var expiry time.Time
	switch {
	case !expiresAt.IsZero():
		expiry = expiresAt
	case !createdAt.IsZero():
		expiry = createdAt.AddDate(0, 0, TrialPeriodDays)
	default:
		return Expiry{IsExpired: true}
	}

	remaining := expiry.Sub(now)
	daysLeft := int(math.Ceil(float64(remaining) / float64(24*time.Hour)))

	return Expiry{
		ExpiryDate: expiry,
		DaysLeft:   daysLeft,
		IsExpired:  daysLeft <= 0,
	}
}

func (e Expiry) Band() ExpiryBand {
	switch {
	case e.IsExpired:
		return ExpiryBandExpired
	case e.DaysLeft <= WarningDays:
		return ExpiryBandWarning
	default:
		return ExpiryBandHealthy
	}
}

func (a Account) Expiry(now time.Time) Expiry {
	return ComputeExpiry(a.CreatedAt, a.ExpiresAt, now)
}
