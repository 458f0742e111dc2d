package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/windsurf-accounts-cli/internal/application"
	"github.com/bnema/windsurf-accounts-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const usageBarWidth = 20

type RenderOptions struct {
	// ShowSecrets prints password, API key and refresh token in full.
	ShowSecrets bool
	// LoadError, when set, is shown in place of the account list.
	LoadError error
}

func renderList(snapshot application.Snapshot, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Windsurf Accounts"),
		s.header.Render(summaryLine(snapshot.Summary)),
	}

	if len(snapshot.Accounts) == 0 {
		lines = append(lines, s.empty.Render("No accounts yet. Add one with `wa account add`."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, view := range snapshot.Accounts {
		lines = append(lines, s.section.Render(renderAccount(view, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func summaryLine(summary domain.Summary) string {
	return fmt.Sprintf("total: %d  active: %d  warning: %d  expired: %d",
		summary.Total, summary.Active, summary.Warning, summary.Expired)
}

func renderAccount(view application.AccountView, s styles) string {
	account := view.Account

	title := s.account.Render(accountTitle(account))
	id := s.accountID.Render(string(account.ID))

	plan := fmt.Sprintf("%s %s  %s %s",
		s.label.Render("type:"), s.detail.Render(planLabel(account.Type)),
		s.label.Render("credits:"), s.detail.Render(domain.FormatCredits(account.Credits)),
	)

	usage := s.label.Render("usage:") + " " + usageMeter(account.Usage, s)

	expiry := s.label.Render("expires:") + " " + listExpiry(view, s)
	token := tokenLabel(view.TokenStatus, s)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title+" "+id,
		"  "+plan,
		"  "+usage,
		"  "+expiry+"  "+token,
	)
}

func renderDetails(view application.AccountView, opts RenderOptions, s styles) string {
	account := view.Account

	rows := [][2]string{
		{"id", string(account.ID)},
		{"email", account.Email},
		{"password", password(account.Password, opts.ShowSecrets)},
		{"name", orDash(account.DisplayName())},
		{"type", planLabel(account.Type)},
		{"credits", domain.FormatCredits(account.Credits)},
		{"usage", domain.FormatUsage(account.Usage)},
		{"total credits", domain.FormatCredits(account.TotalCredits)},
		{"used credits", domain.FormatCredits(account.UsedCredits)},
		{"created", formatDate(account.CreatedAt, "2006-01-02 15:04")},
		{"expires", detailExpiry(view)},
		{"token", view.TokenStatus.Label()},
	}
	if account.APIKey != "" {
		rows = append(rows, [2]string{"api key", secret(account.APIKey, opts.ShowSecrets)})
	}
	if account.RefreshToken != "" {
		rows = append(rows, [2]string{"refresh token", secret(account.RefreshToken, opts.ShowSecrets)})
	}
	if account.APIServerURL != "" {
		rows = append(rows, [2]string{"api server", account.APIServerURL})
	}

	lines := []string{s.account.Render(accountTitle(account))}
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("  %s %s", s.label.Render(fmt.Sprintf("%-14s", row[0]+":")), s.detail.Render(row[1])))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func accountTitle(account domain.Account) string {
	name := account.DisplayName()
	if name == "" {
		return account.Email
	}

	return fmt.Sprintf("%s (%s)", account.Email, name)
}

func planLabel(planType string) string {
	if strings.TrimSpace(planType) == "" {
		return "-"
	}

	return fmt.Sprintf("%s [%s]", planType, domain.PlanClassification(planType))
}

// listExpiry shows MM-DD and the remaining days, only for accounts whose
// expiry came from the provider.
func listExpiry(view application.AccountView, s styles) string {
	if !view.HasKnownExpiry() {
		return "-"
	}

	style := s.band(view.Expiry.Band())
	return style.Render(fmt.Sprintf("%s (%s)", view.Expiry.ExpiryDate.Local().Format("01-02"), daysLeftText(view.Expiry)))
}

func detailExpiry(view application.AccountView) string {
	if !view.HasKnownExpiry() {
		return "-"
	}

	return fmt.Sprintf("%s (%s)", view.Expiry.ExpiryDate.Local().Format("2006-01-02 15:04"), daysLeftText(view.Expiry))
}

func daysLeftText(expiry domain.Expiry) string {
	if expiry.IsExpired {
		return "expired"
	}
	if expiry.DaysLeft == 1 {
		return "1 day left"
	}

	return fmt.Sprintf("%d days left", expiry.DaysLeft)
}

func tokenLabel(status domain.TokenStatus, s styles) string {
	if status == domain.TokenValid {
		return s.tokenOK.Render(status.Label())
	}

	return s.tokenMiss.Render(status.Label())
}

func usageMeter(usage *float64, s styles) string {
	if usage == nil {
		return "-"
	}

	return renderProgressBar(*usage, usageBarWidth, s) + " " + domain.FormatUsage(usage)
}

func renderProgressBar(usedPercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	used := clampPercent(usedPercent)
	filled := int(math.Round(float64(width) * used / 100.0))
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func secret(value string, show bool) string {
	if value == "" {
		return "-"
	}
	if show {
		return value
	}
	if len(value) <= 8 {
		return strings.Repeat("•", 8)
	}

	return value[:4] + strings.Repeat("•", 8)
}

func password(value string, show bool) string {
	if value == "" || show {
		return orDash(value)
	}

	return strings.Repeat("•", 8)
}

func formatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return "-"
	}

	return t.Local().Format(layout)
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
