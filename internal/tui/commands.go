package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jdelacroix/inkwell/internal/content"
	"github.com/jdelacroix/inkwell/internal/theme"
)

// loadPostCmd reads a post body off the event loop. Bodies are only loaded
// when a post is opened.
func loadPostCmd(store *content.Store, slug string) tea.Cmd {
	return func() tea.Msg {
		body, err := store.Body(slug)
		return postBodyMsg{Slug: slug, Body: body, Err: err}
	}
}

// watchSystemThemeCmd polls the terminal background preference. The browser
// original reacts to a media-query listener; a periodic probe is the terminal
// equivalent.
func watchSystemThemeCmd() tea.Cmd {
	return tea.Tick(systemThemeInterval, func(time.Time) tea.Msg {
		return systemThemeMsg{Pref: theme.SystemPreference()}
	})
}
