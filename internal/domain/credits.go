package domain

import (
	"fmt"
	"math"
	"strconv"
)

// FormatCredits renders a credit count, or "-" when absent.
func FormatCredits(v *float64) string {
	if v == nil {
		return "-"
	}

	return compactNumber(*v)
}

// FormatUsage renders a usage percentage, or "-" when absent.
func FormatUsage(v *float64) string {
	if v == nil {
		return "-"
	}

	return strconv.FormatFloat(*v, 'f', -1, 64) + "%"
}

func compactNumber(v float64) string {
	if math.Abs(v) < 1_000 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	if math.Abs(v) < 1_000_000 {
		return fmt.Sprintf("%.1fk", v/1_000)
	}

	return fmt.Sprintf("%.1fM", v/1_000_000)
}
