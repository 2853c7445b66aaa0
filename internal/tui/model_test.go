package tui

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelacroix/inkwell/internal/api"
	"github.com/jdelacroix/inkwell/internal/config"
	"github.com/jdelacroix/inkwell/internal/content"
	"github.com/jdelacroix/inkwell/internal/events"
	"github.com/jdelacroix/inkwell/internal/forms"
	"github.com/jdelacroix/inkwell/internal/logger"
	"github.com/jdelacroix/inkwell/internal/prefs"
	"github.com/jdelacroix/inkwell/internal/report"
	"github.com/jdelacroix/inkwell/internal/theme"
)

type testEnv struct {
	model Model
	store *prefs.Store
	cfg   *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.Default()
	cfg.Content.Dir = t.TempDir()

	log, err := logger.New(logger.Options{Level: "error"})
	require.NoError(t, err)

	store, err := prefs.NewStore(filepath.Join(t.TempDir(), "prefs.json"))
	require.NoError(t, err)

	tracker := events.NewTracker(log)
	detect := func() theme.Preference { return theme.Light }
	ctl := theme.NewController(store, detect, log, tracker)

	client := api.NewClient(api.Options{SuccessRate: 1.0, Rand: rand.New(rand.NewSource(1))})

	model := NewModel(Deps{
		Config:   cfg,
		Logger:   log,
		Tracker:  tracker,
		Reporter: report.New(log, false),
		Prefs:    store,
		Theme:    ctl,
		Content:  content.NewStore(cfg.Content.Dir, log),
		Client:   client,
	})

	return &testEnv{model: model, store: store, cfg: cfg}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func openSection(t *testing.T, m Model, section string) Model {
	t.Helper()
	next, _ := m.activateSection(section)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestWindowSizeMarksReady(t *testing.T) {
	env := newTestEnv(t)

	m, _ := update(t, env.model, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.True(t, m.ready)
	assert.Equal(t, 100, m.width)
}

func TestFirstVisitShowsWelcomeOnce(t *testing.T) {
	env := newTestEnv(t)

	m, _ := update(t, env.model, firstVisitMsg{})
	assert.True(t, m.toast.Visible())
	assert.Contains(t, m.toast.Current().Text, "Welcome")
	assert.True(t, env.store.FirstVisitSeen())

	// A later visit shows nothing.
	fresh := newTestEnv(t)
	require.NoError(t, fresh.store.MarkFirstVisitSeen())
	m2, _ := update(t, fresh.model, firstVisitMsg{})
	assert.False(t, m2.toast.Visible())
}

func TestThemeToggleKeyAnnouncesChange(t *testing.T) {
	env := newTestEnv(t)

	m, _ := update(t, env.model, key("ctrl+t"))
	assert.Equal(t, theme.Dark, m.themes.Current())
	assert.Equal(t, "Dark theme enabled", m.statusNote)

	stored, ok := env.store.Theme()
	require.True(t, ok)
	assert.Equal(t, "dark", stored)
}

func TestSystemThemeFollowedUntilExplicitChoice(t *testing.T) {
	env := newTestEnv(t)

	m, cmd := update(t, env.model, systemThemeMsg{Pref: theme.Dark})
	assert.Equal(t, theme.Dark, m.themes.Current())
	assert.NotNil(t, cmd, "watcher must reschedule itself")

	// After an explicit choice the system signal is ignored.
	m, _ = update(t, m, key("ctrl+t"))
	require.Equal(t, theme.Light, m.themes.Current())
	m, _ = update(t, m, systemThemeMsg{Pref: theme.Dark})
	assert.Equal(t, theme.Light, m.themes.Current())
}

func TestNewsletterValidationFailureShowsToastWithoutSubmitting(t *testing.T) {
	env := newTestEnv(t)

	m := openSection(t, env.model, SectionNewsletter)
	m = typeText(t, m, "not-an-email")
	m, _ = update(t, m, key("enter"))

	assert.Equal(t, forms.StatusIdle, m.newsletter.Status(), "no submission should start")
	assert.True(t, m.toast.Visible())
	assert.Equal(t, "please enter a valid email address", m.toast.Current().Text)
	assert.False(t, env.store.NewsletterSubscribed())
}

func TestNewsletterSubmitEntersSubmitting(t *testing.T) {
	env := newTestEnv(t)

	m := openSection(t, env.model, SectionNewsletter)
	m = typeText(t, m, "user@example.com")
	m, cmd := update(t, m, key("enter"))

	assert.Equal(t, forms.StatusSubmitting, m.newsletter.Status())
	assert.NotNil(t, cmd)
}

func TestNewsletterSuccessPersistsFlagAndDisablesForm(t *testing.T) {
	env := newTestEnv(t)

	m := openSection(t, env.model, SectionNewsletter)
	result := &api.Result{Success: true, Payload: map[string]string{"email": "user@example.com"}}
	m, _ = update(t, m, forms.SubmitResultMsg{Form: FormNewsletter, Result: result})

	assert.True(t, env.store.NewsletterSubscribed())
	assert.Equal(t, forms.StatusDisabled, m.newsletter.Status())
	assert.Equal(t, SubscribedPlaceholder, m.newsletter.DisabledNote())
	assert.True(t, m.toast.Visible())
	assert.Contains(t, m.toast.Current().Text, "Thanks for subscribing")
}

func TestNewsletterFailureLeavesFlagUnchanged(t *testing.T) {
	env := newTestEnv(t)

	m := openSection(t, env.model, SectionNewsletter)
	m = typeText(t, m, "user@example.com")
	m, _ = update(t, m, forms.SubmitResultMsg{Form: FormNewsletter, Err: assert.AnError})

	assert.False(t, env.store.NewsletterSubscribed())
	assert.Equal(t, forms.StatusIdle, m.newsletter.Status())
	assert.Equal(t, "user@example.com", m.newsletter.Values()["email"], "entered values are preserved")
	assert.True(t, m.toast.Visible())
}

func TestSubscribedFlagDisablesFormOnNextVisit(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.store.SetNewsletterSubscribed(true))

	cfg := env.cfg
	log, err := logger.New(logger.Options{Level: "error"})
	require.NoError(t, err)

	m := NewModel(Deps{
		Config:   cfg,
		Logger:   log,
		Reporter: report.New(log, false),
		Prefs:    env.store,
		Theme:    theme.NewController(env.store, func() theme.Preference { return theme.Light }, log, nil),
		Content:  content.NewStore(cfg.Content.Dir, log),
		Client:   api.NewClient(api.Options{SuccessRate: 1.0, Rand: rand.New(rand.NewSource(1))}),
	})

	assert.Equal(t, forms.StatusDisabled, m.newsletter.Status())
	assert.Equal(t, SubscribedPlaceholder, m.newsletter.DisabledNote())
}

func TestSearchSuccessFiltersPosts(t *testing.T) {
	env := newTestEnv(t)

	dir := env.cfg.Content.Dir
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go-notes.md"), []byte("---\ntitle: Go Notes\n---\nbody\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "travel.md"), []byte("---\ntitle: Travel\n---\nbody\n"), 0644))

	m := env.model
	m.posts = m.content.List()

	result := &api.Result{Success: true, Payload: map[string]string{"query": "go"}}
	m, _ = update(t, m, forms.SubmitResultMsg{Form: FormSearch, Result: result})

	assert.Equal(t, SectionPosts, m.active)
	posts := m.visiblePosts()
	require.Len(t, posts, 1)
	assert.Equal(t, "Go Notes", posts[0].Title)
}

func TestEscDismissesVisibleToastFirst(t *testing.T) {
	env := newTestEnv(t)

	m, _ := update(t, env.model, firstVisitMsg{})
	require.True(t, m.toast.Visible())

	m, _ = update(t, m, key("esc"))
	assert.False(t, m.toast.Visible())
	assert.True(t, m.toast.Active(), "dismissal is two-phase")
}

func TestMenuKeyIsNoopWithoutNavSections(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Nav = nil

	ctl := theme.NewController(env.store, func() theme.Preference { return theme.Light }, nil, nil)
	m := NewModel(Deps{
		Config:   env.cfg,
		Theme:    ctl,
		Prefs:    env.store,
		Reporter: report.New(nil, false),
		Client:   api.NewClient(api.Options{SuccessRate: 1.0, Rand: rand.New(rand.NewSource(1))}),
	})

	assert.Empty(t, m.nav)
	m, _ = update(t, m, key("m"))
	assert.False(t, m.menuOpen)
	assert.Equal(t, "", m.renderNav(theme.LightStyles()))
}

func TestMenuNavigationActivatesSection(t *testing.T) {
	env := newTestEnv(t)

	m, _ := update(t, env.model, key("m"))
	require.True(t, m.menuOpen)

	m, _ = update(t, m, key("j"))
	m, _ = update(t, m, key("enter"))

	assert.False(t, m.menuOpen)
	assert.Equal(t, env.cfg.Nav[1].Slug, m.active)
}

func TestOpenPostLoadsBodyLazily(t *testing.T) {
	env := newTestEnv(t)

	dir := env.cfg.Content.Dir
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.md"), []byte("---\ntitle: Hello\n---\nthe body\n"), 0644))

	m := env.model
	m.posts = m.content.List()
	m.active = SectionPosts

	m, cmd := update(t, m, key("enter"))
	require.NotNil(t, cmd)

	msg := cmd()
	body, ok := msg.(postBodyMsg)
	require.True(t, ok)
	require.NoError(t, body.Err)
	assert.Equal(t, "hello", body.Slug)

	m, _ = update(t, m, body)
	assert.True(t, m.reading)
	assert.Equal(t, "hello", m.readerSlug)
}

func TestViewRendersWithoutPanic(t *testing.T) {
	env := newTestEnv(t)

	m, _ := update(t, env.model, tea.WindowSizeMsg{Width: 100, Height: 40})
	for _, section := range []string{SectionHome, SectionPosts, SectionNewsletter, SectionContact, SectionSearch} {
		m = openSection(t, m, section)
		assert.NotEmpty(t, m.View())
	}
}
