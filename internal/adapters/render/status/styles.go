package status

import (
	"github.com/bnema/windsurf-accounts-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	account    lipgloss.Style
	accountID  lipgloss.Style
	detail     lipgloss.Style
	label      lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	expired    lipgloss.Style
	warning    lipgloss.Style
	healthy    lipgloss.Style
	tokenOK    lipgloss.Style
	tokenMiss  lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	loadError  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		account:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		accountID:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		expired:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		warning:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		healthy:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		tokenOK:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		tokenMiss:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		loadError:  lipgloss.NewStyle().MarginTop(1).Foreground(lipgloss.Color("203")),
	}
}

func (s styles) band(band domain.ExpiryBand) lipgloss.Style {
	switch band {
	case domain.ExpiryBandExpired:
		return s.expired
	case domain.ExpiryBandWarning:
		return s.warning
	default:
		return s.healthy
	}
}
