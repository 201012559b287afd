package cli

import (
	"github.com/alexanderramin/tempo/internal/cli/formatter"
	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// tempoHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func tempoHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// energyPeakOptions lists the peaks in the order they occur in a day.
func energyPeakOptions() []huh.Option[domain.EnergyPeak] {
	peaks := []domain.EnergyPeak{
		domain.EnergyMorning,
		domain.EnergyAfternoon,
		domain.EnergyEvening,
		domain.EnergyNight,
	}
	opts := make([]huh.Option[domain.EnergyPeak], 0, len(peaks))
	for _, p := range peaks {
		opts = append(opts, huh.NewOption(string(p), p))
	}
	return opts
}

// profileForm edits p in place.
func profileForm(p *domain.UserProfile) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.EnergyPeak]().
				Title("When is your energy highest?").
				Options(energyPeakOptions()...).
				Value(&p.EnergyPeak),
			huh.NewInput().
				Title("Day start (HH:MM)").
				Placeholder("09:00").
				Value(&p.Start).
				Validate(domain.ValidateClock),
		),
	).WithTheme(tempoHuhTheme()).WithShowHelp(false)
}

// apiKeyForm collects an API key without echoing it.
func apiKeyForm(provider string, value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("API key for " + provider).
				EchoMode(huh.EchoModePassword).
				Value(value).
				Validate(validateNonEmpty),
		),
	).WithTheme(tempoHuhTheme()).WithShowHelp(false)
}

func validateNonEmpty(s string) error {
	if s == "" {
		return errEmptyValue
	}
	return nil
}
