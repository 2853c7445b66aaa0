package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jdelacroix/inkwell/internal/api"
	"github.com/jdelacroix/inkwell/internal/config"
	"github.com/jdelacroix/inkwell/internal/content"
	"github.com/jdelacroix/inkwell/internal/events"
	"github.com/jdelacroix/inkwell/internal/forms"
	"github.com/jdelacroix/inkwell/internal/logger"
	"github.com/jdelacroix/inkwell/internal/prefs"
	"github.com/jdelacroix/inkwell/internal/report"
	"github.com/jdelacroix/inkwell/internal/theme"
	"github.com/jdelacroix/inkwell/internal/timing"
	"github.com/jdelacroix/inkwell/internal/toast"
)

// Section slugs understood by the shell. The nav menu maps onto these.
const (
	SectionHome       = "home"
	SectionPosts      = "posts"
	SectionNewsletter = "newsletter"
	SectionContact    = "contact"
	SectionSearch     = "search"
)

// FormNewsletter and friends are the logical form names.
const (
	FormNewsletter = "newsletter"
	FormContact    = "contact"
	FormSearch     = "search"
)

// SubscribedPlaceholder is rendered once the newsletter flag is persisted.
const SubscribedPlaceholder = "You are already subscribed!"

const (
	searchSettleDelay   = 400 * time.Millisecond
	scrollEventInterval = 2 * time.Second
	systemThemeInterval = 30 * time.Second
)

// Deps bundles the collaborators injected into the shell. Each component
// owns only the narrow references it manages.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	Tracker  *events.Tracker
	Reporter *report.Reporter
	Prefs    *prefs.Store
	Theme    *theme.Controller
	Content  *content.Store
	Client   *api.Client
}

// Model is the root Bubble Tea model composing the blog UI.
type Model struct {
	cfg      *config.Config
	log      *logger.Logger
	tracker  *events.Tracker
	reporter *report.Reporter
	store    *prefs.Store
	themes   *theme.Controller

	content *content.Store
	posts   []content.Post
	cursor  int
	filter  string

	reading    bool
	readerSlug string
	reader     viewport.Model

	newsletter forms.Model
	contact    forms.Model
	search     forms.Model

	nav       []config.NavSection
	navCursor int
	active    string
	menuOpen  bool

	toast toast.Model

	searchDebounce *timing.Debouncer
	scrollThrottle *timing.Throttler

	statusNote string
	width      int
	height     int
	ready      bool
}

// NewModel wires the shell from its dependencies.
func NewModel(deps Deps) Model {
	cfg := deps.Config

	newsletter := forms.New(FormNewsletter, "Subscribe", api.EndpointNewsletter, deps.Client, []forms.FieldSpec{
		{Name: "email", Label: "Email", Placeholder: "you@example.com", Required: true, Email: true},
	})
	if deps.Prefs != nil && deps.Prefs.NewsletterSubscribed() {
		newsletter = newsletter.Disable(SubscribedPlaceholder)
	}

	contact := forms.New(FormContact, "Send message", api.EndpointContact, deps.Client, []forms.FieldSpec{
		{Name: "name", Label: "Name", Placeholder: "Your name", Required: true},
		{Name: "email", Label: "Email", Placeholder: "you@example.com", Required: true, Email: true},
		{Name: "message", Label: "Message", Placeholder: "What's on your mind?", Required: true},
	})

	search := forms.New(FormSearch, "Search", api.EndpointAnalytics, deps.Client, []forms.FieldSpec{
		{Name: "query", Label: "Search posts", Placeholder: "keywords", Required: true},
	})

	m := Model{
		cfg:            cfg,
		log:            deps.Logger,
		tracker:        deps.Tracker,
		reporter:       deps.Reporter,
		store:          deps.Prefs,
		themes:         deps.Theme,
		content:        deps.Content,
		newsletter:     newsletter,
		contact:        contact,
		search:         search,
		nav:            buildNav(cfg),
		active:         SectionHome,
		toast:          toast.New(cfg.ToastDuration(), cfg.ToastFade()),
		searchDebounce: timing.NewDebouncer(searchSettleDelay),
		scrollThrottle: timing.NewThrottler(scrollEventInterval),
		reader:         viewport.New(80, 20),
		width:          80,
		height:         24,
	}

	if deps.Content != nil {
		m.posts = deps.Content.List()
	}

	return m
}

// Init schedules startup work: the first-visit check and the system theme
// watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return firstVisitMsg{} },
		watchSystemThemeCmd(),
	)
}

// Posts returns the posts matching the current search filter.
func (m Model) visiblePosts() []content.Post {
	if m.filter == "" {
		return m.posts
	}
	matched := make([]content.Post, 0, len(m.posts))
	for _, post := range m.posts {
		if containsFold(post.Title, m.filter) || containsFold(post.Summary, m.filter) {
			matched = append(matched, post)
		}
	}
	return matched
}

func (m Model) activeForm() (forms.Model, bool) {
	switch m.active {
	case SectionNewsletter:
		return m.newsletter, true
	case SectionContact:
		return m.contact, true
	case SectionSearch:
		return m.search, true
	}
	return forms.Model{}, false
}

func (m Model) setActiveForm(form forms.Model) Model {
	switch m.active {
	case SectionNewsletter:
		m.newsletter = form
	case SectionContact:
		m.contact = form
	case SectionSearch:
		m.search = form
	}
	return m
}
