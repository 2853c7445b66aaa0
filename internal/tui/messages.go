package tui

import (
	"github.com/jdelacroix/inkwell/internal/theme"
)

// firstVisitMsg triggers the one-time welcome toast check.
type firstVisitMsg struct{}

// postBodyMsg carries a lazily loaded post body.
type postBodyMsg struct {
	Slug string
	Body string
	Err  error
}

// systemThemeMsg reports the detected system theme preference.
type systemThemeMsg struct {
	Pref theme.Preference
}
