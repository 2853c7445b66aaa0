package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jdelacroix/inkwell/internal/forms"
	"github.com/jdelacroix/inkwell/internal/theme"
)

// View renders the full screen for the active theme.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	styles := m.themes.Styles()

	sections := []string{
		m.renderHeader(styles),
	}

	if nav := m.renderNav(styles); nav != "" {
		sections = append(sections, nav)
	}

	sections = append(sections, m.renderMain(styles))

	if overlay := m.toast.View(styles); overlay != "" {
		sections = append(sections, overlay)
	}

	sections = append(sections, m.renderStatusBar(styles))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader(styles theme.Styles) string {
	title := styles.Title.Render(m.cfg.Site.Title)
	toggle := "○ light"
	if m.themes.TogglePressed() {
		toggle = "● dark"
	}
	return title + "  " + styles.Muted.Render(toggle)
}

// renderNav draws the collapsible menu. An empty nav configuration renders
// nothing at all.
func (m Model) renderNav(styles theme.Styles) string {
	if len(m.nav) == 0 || !m.menuOpen {
		return ""
	}

	var b strings.Builder
	for i, section := range m.nav {
		style := styles.NavItem
		prefix := "  "
		if i == m.navCursor {
			style = styles.NavSelected
			prefix = "> "
		}
		b.WriteString(style.Render(prefix + section.Label))
		if i < len(m.nav)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderMain(styles theme.Styles) string {
	if m.reading {
		return m.renderReader(styles)
	}

	switch m.active {
	case SectionPosts:
		return m.renderPosts(styles)
	case SectionNewsletter:
		return m.renderForm(styles, m.newsletter, "Get new posts by email.")
	case SectionContact:
		return m.renderForm(styles, m.contact, "Say hello.")
	case SectionSearch:
		return m.renderForm(styles, m.search, "Find posts by keyword.")
	default:
		return m.renderHome(styles)
	}
}

func (m Model) renderHome(styles theme.Styles) string {
	var b strings.Builder
	b.WriteString(styles.Body.Render("Welcome to " + m.cfg.Site.Title + "."))
	b.WriteString("\n")
	if m.cfg.Site.Author != "" {
		b.WriteString(styles.Subtitle.Render("by " + m.cfg.Site.Author))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("Press m for the menu."))
	return b.String()
}

func (m Model) renderPosts(styles theme.Styles) string {
	posts := m.visiblePosts()
	if len(posts) == 0 {
		if m.filter != "" {
			return styles.Muted.Render(fmt.Sprintf("No posts match %q.", m.filter))
		}
		return styles.Muted.Render("No posts yet.")
	}

	var b strings.Builder
	if m.filter != "" {
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("Results for %q", m.filter)))
		b.WriteString("\n\n")
	}

	for i, post := range posts {
		title := styles.Body.Render(post.Title)
		if i == m.cursor {
			title = styles.NavSelected.Render(post.Title)
		}
		b.WriteString(title)
		if !post.Date.IsZero() {
			b.WriteString("  " + styles.Muted.Render(post.Date.Format("Jan 2, 2006")))
		}
		b.WriteString("\n")
		if post.Summary != "" {
			b.WriteString(styles.Muted.Render("  " + post.Summary))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderReader(styles theme.Styles) string {
	var b strings.Builder
	b.WriteString(m.reader.View())
	b.WriteString("\n")
	if m.reader.ScrollPercent() > 0.25 {
		b.WriteString(styles.Muted.Render("↑ g: back to top"))
	}
	return b.String()
}

func (m Model) renderForm(styles theme.Styles, form forms.Model, intro string) string {
	var b strings.Builder
	b.WriteString(styles.Subtitle.Render(intro))
	b.WriteString("\n\n")
	b.WriteString(form.View(styles))
	return b.String()
}

func (m Model) renderStatusBar(styles theme.Styles) string {
	help := "m menu · t theme · enter select · esc back · q quit"
	note := m.statusNote
	if note != "" {
		note += "  "
	}
	return styles.StatusBar.Width(max(0, m.width)).Render(note + help)
}
