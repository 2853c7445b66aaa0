package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jdelacroix/inkwell/internal/theme"
)

// Kind classifies a toast message.
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindWarning
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	default:
		return "info"
	}
}

// DefaultDuration is how long a toast stays visible before auto-dismissal.
const DefaultDuration = 5 * time.Second

// DefaultFade is the length of the hide transition before removal.
const DefaultFade = 300 * time.Millisecond

// Handle identifies one shown toast. Timer messages carry the handle so late
// ticks from an evicted toast can be dropped.
type Handle int

// Toast is a single transient message.
type Toast struct {
	Text      string
	Kind      Kind
	CreatedAt time.Time
}

// AutoDismissMsg fires when a toast's display window has elapsed.
type AutoDismissMsg struct {
	Handle Handle
}

// RemovedMsg fires when a toast's hide transition has completed.
type RemovedMsg struct {
	Handle Handle
}

type phase int

const (
	phaseHidden phase = iota
	phaseVisible
	phaseHiding
)

// Model manages at most one visible or mid-removal toast at a time.
type Model struct {
	duration time.Duration
	fade     time.Duration
	now      func() time.Time

	seq     Handle
	phase   phase
	current Toast
}

// New builds a toast model. Zero durations fall back to the defaults.
func New(duration, fade time.Duration) Model {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if fade <= 0 {
		fade = DefaultFade
	}
	return Model{
		duration: duration,
		fade:     fade,
		now:      time.Now,
	}
}

// Show displays a toast, evicting any visible or mid-removal one, and
// schedules its auto-dismissal.
func (m Model) Show(text string, kind Kind) (Model, tea.Cmd, Handle) {
	m.seq++
	handle := m.seq
	m.phase = phaseVisible
	m.current = Toast{Text: text, Kind: kind, CreatedAt: m.now()}

	cmd := tea.Tick(m.duration, func(time.Time) tea.Msg {
		return AutoDismissMsg{Handle: handle}
	})
	return m, cmd, handle
}

// Dismiss starts the hide transition for the current toast, if any. Explicit
// user dismissal takes the same two-phase path as auto-dismissal.
func (m Model) Dismiss() (Model, tea.Cmd) {
	if m.phase != phaseVisible {
		return m, nil
	}
	return m.startHide()
}

// Update advances the toast lifecycle. Messages carrying a stale handle are
// ignored so evicted toasts never resurface.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AutoDismissMsg:
		if msg.Handle != m.seq || m.phase != phaseVisible {
			return m, nil
		}
		return m.startHide()
	case RemovedMsg:
		if msg.Handle != m.seq || m.phase != phaseHiding {
			return m, nil
		}
		m.phase = phaseHidden
		return m, nil
	}
	return m, nil
}

func (m Model) startHide() (Model, tea.Cmd) {
	handle := m.seq
	m.phase = phaseHiding
	cmd := tea.Tick(m.fade, func(time.Time) tea.Msg {
		return RemovedMsg{Handle: handle}
	})
	return m, cmd
}

// Visible reports whether a toast is currently shown (not mid-removal).
func (m Model) Visible() bool {
	return m.phase == phaseVisible
}

// Active reports whether a toast is shown or mid-removal.
func (m Model) Active() bool {
	return m.phase != phaseHidden
}

// Current returns the toast being displayed or removed.
func (m Model) Current() Toast {
	return m.current
}

// View renders the toast with the given styles; empty when nothing is active.
func (m Model) View(styles theme.Styles) string {
	if m.phase == phaseHidden {
		return ""
	}

	style := styles.ToastInfo
	if m.phase == phaseHiding {
		style = styles.ToastFading
	} else {
		switch m.current.Kind {
		case KindSuccess:
			style = styles.ToastSuccess
		case KindWarning:
			style = styles.ToastWarning
		case KindError:
			style = styles.ToastError
		}
	}

	return style.Render(m.current.Text)
}
