package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jdelacroix/inkwell/internal/forms"
	"github.com/jdelacroix/inkwell/internal/toast"
)

// Update handles incoming messages and advances the UI state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.reader.Width = max(20, msg.Width-4)
		m.reader.Height = max(5, msg.Height-8)
		m.ready = true
		return m, nil

	case firstVisitMsg:
		return m.handleFirstVisit()

	case systemThemeMsg:
		m.themes.SystemChanged(msg.Pref)
		if note := m.themes.Announcement(); note != "" {
			m.statusNote = note
		}
		return m, watchSystemThemeCmd()

	case toast.AutoDismissMsg, toast.RemovedMsg:
		var cmd tea.Cmd
		m.toast, cmd = m.toast.Update(msg)
		return m, cmd

	case postBodyMsg:
		return m.handlePostBody(msg)

	case forms.SubmitResultMsg:
		return m.handleSubmitResult(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Remaining messages (spinner ticks, input blinks) belong to whichever
	// form is active.
	if form, ok := m.activeForm(); ok {
		var cmd tea.Cmd
		form, cmd = form.Update(msg)
		m = m.setActiveForm(form)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleFirstVisit() (tea.Model, tea.Cmd) {
	m.track("page_view", map[string]any{"section": m.active})

	if m.store == nil || m.store.FirstVisitSeen() {
		return m, nil
	}

	if err := m.store.MarkFirstVisitSeen(); err != nil {
		m.reporter.Report(err)
	}

	var cmd tea.Cmd
	m.toast, cmd, _ = m.toast.Show("Welcome to "+m.cfg.Site.Title+"!", toast.KindInfo)
	m.track("toast_shown", map[string]any{"kind": "info"})
	return m, cmd
}

func (m Model) handlePostBody(msg postBodyMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		text := m.reporter.Report(msg.Err)
		if text == "" {
			text = "Could not load this post."
		}
		var cmd tea.Cmd
		m.toast, cmd, _ = m.toast.Show(text, toast.KindError)
		return m, cmd
	}

	m.reading = true
	m.readerSlug = msg.Slug
	m.reader.SetContent(msg.Body)
	m.reader.GotoTop()
	m.track("page_view", map[string]any{"section": SectionPosts, "slug": msg.Slug})
	return m, nil
}

func (m Model) handleSubmitResult(msg forms.SubmitResultMsg) (tea.Model, tea.Cmd) {
	success := msg.Err == nil && msg.Result != nil && msg.Result.Success
	m.track("form_submit", map[string]any{"form": msg.Form, "success": success})

	var cmds []tea.Cmd

	switch msg.Form {
	case FormNewsletter:
		if success {
			if err := m.store.SetNewsletterSubscribed(true); err != nil {
				m.reporter.Report(err)
			}
			m.newsletter = m.newsletter.Succeed().Disable(SubscribedPlaceholder)
			var cmd tea.Cmd
			m.toast, cmd, _ = m.toast.Show("Thanks for subscribing!", toast.KindSuccess)
			cmds = append(cmds, cmd)
		} else {
			m.newsletter = m.newsletter.Fail()
			cmds = append(cmds, m.showSubmitFailure(msg.Err))
		}

	case FormContact:
		if success {
			m.contact = m.contact.Succeed()
			var cmd tea.Cmd
			m.toast, cmd, _ = m.toast.Show("Message sent. Thank you!", toast.KindSuccess)
			cmds = append(cmds, cmd)
		} else {
			m.contact = m.contact.Fail()
			cmds = append(cmds, m.showSubmitFailure(msg.Err))
		}

	case FormSearch:
		m.search = m.search.Fail()
		if success {
			m.filter = msg.Result.Payload["query"]
			m.active = SectionPosts
			m.cursor = 0
			var cmd tea.Cmd
			m.toast, cmd, _ = m.toast.Show("Showing results for \""+m.filter+"\"", toast.KindInfo)
			cmds = append(cmds, cmd)
		} else {
			cmds = append(cmds, m.showSubmitFailure(msg.Err))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) showSubmitFailure(err error) tea.Cmd {
	text := m.reporter.Report(err)
	if text == "" {
		text = "Something went wrong. Please try again."
	}
	var cmd tea.Cmd
	m.toast, cmd, _ = m.toast.Show(text, toast.KindError)
	m.track("toast_shown", map[string]any{"kind": "error"})
	return cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// A visible toast owns the escape key.
	if key == "esc" && m.toast.Visible() {
		var cmd tea.Cmd
		m.toast, cmd = m.toast.Dismiss()
		m.track("toast_dismissed", nil)
		return m, cmd
	}

	if key == "ctrl+t" {
		return m.toggleTheme()
	}

	if m.reading {
		return m.handleReaderKey(msg)
	}

	if _, ok := m.activeForm(); ok {
		return m.handleFormKey(msg)
	}

	return m.handleBrowseKey(msg)
}

func (m Model) handleReaderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.reading = false
		return m, nil
	case "g":
		m.reader.GotoTop()
		m.track("scroll_to_top", map[string]any{"slug": m.readerSlug})
		return m, nil
	}

	var cmd tea.Cmd
	m.reader, cmd = m.reader.Update(msg)

	percent := m.reader.ScrollPercent()
	slug := m.readerSlug
	tracker := m.tracker
	m.scrollThrottle.Call(func() {
		tracker.Track(context.Background(), "scroll_depth", map[string]any{"slug": slug, "percent": percent})
	})

	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form, _ := m.activeForm()

	switch msg.String() {
	case "esc":
		m.active = SectionHome
		m = m.setActiveForm(form.Blur())
		return m, nil
	case "tab":
		var cmd tea.Cmd
		form, cmd = form.FocusNext()
		m = m.setActiveForm(form)
		return m, cmd
	case "enter":
		return m.submitActiveForm(form)
	}

	var cmd tea.Cmd
	form, cmd = form.Update(msg)
	m = m.setActiveForm(form)

	if m.active == SectionSearch {
		if query := form.Values()["query"]; query != "" {
			tracker := m.tracker
			m.searchDebounce.Call(func() {
				tracker.Track(context.Background(), "search_input", map[string]any{"query": query})
			})
		}
	}

	return m, cmd
}

func (m Model) submitActiveForm(form forms.Model) (tea.Model, tea.Cmd) {
	form, cmd, err := form.Submit(context.Background())
	m = m.setActiveForm(form)

	if err != nil {
		text := m.reporter.Report(err)
		if text == "" {
			text = "Please check your input."
		}
		var toastCmd tea.Cmd
		m.toast, toastCmd, _ = m.toast.Show(text, toast.KindError)
		m.track("toast_shown", map[string]any{"kind": "error"})
		return m, toastCmd
	}

	return m, cmd
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "t":
		return m.toggleTheme()
	case "m":
		if len(m.nav) == 0 {
			return m, nil
		}
		m.menuOpen = !m.menuOpen
		return m, nil
	case "j", "down":
		return m.moveCursor(1), nil
	case "k", "up":
		return m.moveCursor(-1), nil
	case "enter":
		return m.activateSelection()
	}
	return m, nil
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	m.themes.Toggle()
	m.statusNote = m.themes.Announcement()
	return m, nil
}

func (m Model) moveCursor(delta int) Model {
	if m.menuOpen {
		m.navCursor = clamp(m.navCursor+delta, 0, len(m.nav)-1)
		return m
	}
	if m.active == SectionPosts {
		limit := len(m.visiblePosts()) - 1
		m.cursor = clamp(m.cursor+delta, 0, max(0, limit))
	}
	return m
}

func (m Model) activateSelection() (tea.Model, tea.Cmd) {
	if m.menuOpen {
		section := m.nav[m.navCursor].Slug
		m.menuOpen = false
		return m.activateSection(section)
	}

	if m.active == SectionPosts {
		posts := m.visiblePosts()
		if len(posts) == 0 {
			return m, nil
		}
		slug := posts[clamp(m.cursor, 0, len(posts)-1)].Slug
		return m, loadPostCmd(m.content, slug)
	}

	return m, nil
}

func (m Model) activateSection(section string) (tea.Model, tea.Cmd) {
	m.active = section
	m.reading = false
	m.track("page_view", map[string]any{"section": section})

	if form, ok := m.activeForm(); ok {
		var cmd tea.Cmd
		form, cmd = form.Focus()
		m = m.setActiveForm(form)
		return m, cmd
	}

	return m, nil
}

func (m Model) track(name string, fields map[string]any) {
	if m.tracker == nil {
		return
	}
	m.tracker.Track(context.Background(), name, fields)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
