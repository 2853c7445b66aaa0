package tui

import (
	"strings"

	"github.com/jdelacroix/inkwell/internal/config"
)

// buildNav derives the navigation menu from configuration. With no sections
// configured there is nothing to attach the menu to, so it silently renders
// nothing.
func buildNav(cfg *config.Config) []config.NavSection {
	if cfg == nil || len(cfg.Nav) == 0 {
		return nil
	}
	sections := make([]config.NavSection, len(cfg.Nav))
	copy(sections, cfg.Nav)
	return sections
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
