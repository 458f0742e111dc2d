package domain

import "strings"

func PlanClassification(planType string) string {
	switch strings.ToLower(strings.TrimSpace(planType)) {
	case "", UnknownPlanType, "-":
		return "Unknown"
	case "trial", "pro_trial", "free_trial":
		return "Trial"
	case "free":
		return "Free"
	case "teams", "team", "enterprise":
		return "Teams"
	default:
		return "Pro"
	}
}
