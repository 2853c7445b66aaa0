package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the semantic lipgloss styles used across the UI for one theme
// variant.
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Body      lipgloss.Style
	Muted     lipgloss.Style
	StatusBar lipgloss.Style

	NavItem     lipgloss.Style
	NavSelected lipgloss.Style

	InputLabel    lipgloss.Style
	ButtonActive  lipgloss.Style
	ButtonBusy    lipgloss.Style
	ButtonBlocked lipgloss.Style

	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
	ToastFading  lipgloss.Style
}

func toastBase() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2).
		Bold(true)
}

// LightStyles returns the light theme variant.
func LightStyles() Styles {
	var (
		text    = lipgloss.Color("#111827")
		muted   = lipgloss.Color("#6b7280")
		surface = lipgloss.Color("#e5e7eb")
		primary = lipgloss.Color("#2563eb")
		success = lipgloss.Color("#16a34a")
		warning = lipgloss.Color("#ca8a04")
		danger  = lipgloss.Color("#dc2626")
		info    = lipgloss.Color("#0891b2")
	)

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		Subtitle: lipgloss.NewStyle().Foreground(muted).Italic(true),
		Body:     lipgloss.NewStyle().Foreground(text),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		StatusBar: lipgloss.NewStyle().
			Foreground(text).
			Background(surface).
			Padding(0, 1),

		NavItem: lipgloss.NewStyle().Foreground(muted).PaddingLeft(2),
		NavSelected: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			PaddingLeft(2),

		InputLabel: lipgloss.NewStyle().Foreground(text).Bold(true),
		ButtonActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f9fafb")).
			Background(primary).
			Padding(0, 2).
			Bold(true),
		ButtonBusy: lipgloss.NewStyle().
			Foreground(muted).
			Background(surface).
			Padding(0, 2),
		ButtonBlocked: lipgloss.NewStyle().
			Foreground(muted).
			Background(surface).
			Padding(0, 2).
			Faint(true),

		ToastInfo:    toastBase().BorderForeground(info).Foreground(info),
		ToastSuccess: toastBase().BorderForeground(success).Foreground(success),
		ToastWarning: toastBase().BorderForeground(warning).Foreground(warning),
		ToastError:   toastBase().BorderForeground(danger).Foreground(danger),
		ToastFading:  toastBase().BorderForeground(muted).Foreground(muted).Faint(true),
	}
}

// DarkStyles returns the dark theme variant.
func DarkStyles() Styles {
	var (
		text    = lipgloss.Color("#e5e7eb")
		muted   = lipgloss.Color("#9ca3af")
		surface = lipgloss.Color("#1f2937")
		primary = lipgloss.Color("#60a5fa")
		success = lipgloss.Color("#4ade80")
		warning = lipgloss.Color("#facc15")
		danger  = lipgloss.Color("#f87171")
		info    = lipgloss.Color("#22d3ee")
	)

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		Subtitle: lipgloss.NewStyle().Foreground(muted).Italic(true),
		Body:     lipgloss.NewStyle().Foreground(text),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		StatusBar: lipgloss.NewStyle().
			Foreground(text).
			Background(surface).
			Padding(0, 1),

		NavItem: lipgloss.NewStyle().Foreground(muted).PaddingLeft(2),
		NavSelected: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			PaddingLeft(2),

		InputLabel: lipgloss.NewStyle().Foreground(text).Bold(true),
		ButtonActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0b1120")).
			Background(primary).
			Padding(0, 2).
			Bold(true),
		ButtonBusy: lipgloss.NewStyle().
			Foreground(muted).
			Background(surface).
			Padding(0, 2),
		ButtonBlocked: lipgloss.NewStyle().
			Foreground(muted).
			Background(surface).
			Padding(0, 2).
			Faint(true),

		ToastInfo:    toastBase().BorderForeground(info).Foreground(info),
		ToastSuccess: toastBase().BorderForeground(success).Foreground(success),
		ToastWarning: toastBase().BorderForeground(warning).Foreground(warning),
		ToastError:   toastBase().BorderForeground(danger).Foreground(danger),
		ToastFading:  toastBase().BorderForeground(muted).Foreground(muted).Faint(true),
	}
}

// StylesFor returns the style set for a preference.
func StylesFor(pref Preference) Styles {
	if pref == Dark {
		return DarkStyles()
	}
	return LightStyles()
}
