package forms

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jdelacroix/inkwell/internal/api"
	"github.com/jdelacroix/inkwell/internal/config"
	"github.com/jdelacroix/inkwell/internal/theme"
	inkwellerrors "github.com/jdelacroix/inkwell/pkg/errors"
)

// Status is the lifecycle state of a form.
type Status int

const (
	// StatusIdle accepts input and submissions.
	StatusIdle Status = iota
	// StatusSubmitting has a request in flight; the control is disabled.
	StatusSubmitting
	// StatusDisabled permanently rejects input (subscribed newsletter form).
	StatusDisabled
)

// FieldSpec declares one input field of a form.
type FieldSpec struct {
	Name        string
	Label       string
	Placeholder string
	Required    bool
	Email       bool
}

type field struct {
	spec  FieldSpec
	input textinput.Model
}

// SubmitResultMsg reports the outcome of an in-flight submission.
type SubmitResultMsg struct {
	Form   string
	Result *api.Result
	Err    error
}

// Model is one form with client-side validation and an idle → submitting →
// (success | failure) → idle lifecycle.
type Model struct {
	name        string
	buttonLabel string
	endpoint    api.Endpoint
	client      *api.Client

	fields []field
	focus  int
	status Status
	spin   spinner.Model

	disabledNote string
}

// New builds a form from field specs.
func New(name, buttonLabel string, endpoint api.Endpoint, client *api.Client, specs []FieldSpec) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	fields := make([]field, 0, len(specs))
	for _, spec := range specs {
		input := textinput.New()
		input.Placeholder = spec.Placeholder
		input.Prompt = "> "
		input.CharLimit = 256
		fields = append(fields, field{spec: spec, input: input})
	}

	return Model{
		name:        name,
		buttonLabel: buttonLabel,
		endpoint:    endpoint,
		client:      client,
		fields:      fields,
		spin:        s,
	}
}

// Name returns the form's logical name.
func (m Model) Name() string {
	return m.name
}

// Status returns the current lifecycle state.
func (m Model) Status() Status {
	return m.status
}

// Values returns the entered field values keyed by field name.
func (m Model) Values() map[string]string {
	values := make(map[string]string, len(m.fields))
	for _, f := range m.fields {
		values[f.spec.Name] = strings.TrimSpace(f.input.Value())
	}
	return values
}

// Focus gives keyboard focus to the first field.
func (m Model) Focus() (Model, tea.Cmd) {
	if m.status == StatusDisabled || len(m.fields) == 0 {
		return m, nil
	}
	m.focus = 0
	return m.applyFocus()
}

// Blur removes focus from all fields.
func (m Model) Blur() Model {
	for i := range m.fields {
		m.fields[i].input.Blur()
	}
	return m
}

// FocusNext moves focus to the next field, wrapping around.
func (m Model) FocusNext() (Model, tea.Cmd) {
	if m.status != StatusIdle || len(m.fields) == 0 {
		return m, nil
	}
	m.focus = (m.focus + 1) % len(m.fields)
	return m.applyFocus()
}

func (m Model) applyFocus() (Model, tea.Cmd) {
	var cmd tea.Cmd
	for i := range m.fields {
		if i == m.focus {
			cmd = m.fields[i].input.Focus()
		} else {
			m.fields[i].input.Blur()
		}
	}
	return m, cmd
}

// Update forwards messages to the focused input and, while submitting, the
// busy spinner.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.status == StatusSubmitting {
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	if m.status == StatusIdle && m.focus < len(m.fields) {
		var cmd tea.Cmd
		m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// Validate checks required and email constraints without touching the
// network. The first violation is returned as a ValidationError.
func (m Model) Validate() error {
	v := config.GetValidator()

	for _, f := range m.fields {
		value := strings.TrimSpace(f.input.Value())
		label := strings.ToLower(f.spec.Label)

		if f.spec.Required && value == "" {
			return inkwellerrors.NewValidationError(f.spec.Name, fmt.Sprintf("%s is required", label), nil)
		}
		if f.spec.Email && value != "" {
			if err := v.Var(value, "email"); err != nil {
				return inkwellerrors.NewValidationError(f.spec.Name, "please enter a valid email address", err)
			}
		}
	}

	return nil
}

// Submit validates the form and, if it passes, transitions to submitting and
// returns the command performing the (simulated) remote call. A validation
// failure leaves the form untouched and performs no network attempt.
func (m Model) Submit(ctx context.Context) (Model, tea.Cmd, error) {
	if m.status != StatusIdle {
		return m, nil, nil
	}

	if err := m.Validate(); err != nil {
		return m, nil, err
	}

	m.status = StatusSubmitting
	m = m.Blur()

	name := m.name
	endpoint := m.endpoint
	client := m.client
	payload := m.Values()

	submit := func() tea.Msg {
		result, err := client.Submit(ctx, endpoint, payload)
		return SubmitResultMsg{Form: name, Result: result, Err: err}
	}

	return m, tea.Batch(m.spin.Tick, submit), nil
}

// Succeed resets the form after a successful submission.
func (m Model) Succeed() Model {
	m.status = StatusIdle
	for i := range m.fields {
		m.fields[i].input.Reset()
	}
	return m
}

// Fail re-enables the form after a failed submission, preserving entered
// values.
func (m Model) Fail() Model {
	m.status = StatusIdle
	return m
}

// Disable permanently disables the form, rendering note instead of inputs.
func (m Model) Disable(note string) Model {
	m.status = StatusDisabled
	m.disabledNote = note
	m = m.Blur()
	return m
}

// DisabledNote returns the text shown while the form is disabled.
func (m Model) DisabledNote() string {
	return m.disabledNote
}

// View renders the form with the given styles.
func (m Model) View(styles theme.Styles) string {
	if m.status == StatusDisabled {
		return styles.Muted.Render(m.disabledNote)
	}

	var b strings.Builder
	for _, f := range m.fields {
		b.WriteString(styles.InputLabel.Render(f.spec.Label))
		b.WriteString("\n")
		b.WriteString(f.input.View())
		b.WriteString("\n")
	}

	switch m.status {
	case StatusSubmitting:
		b.WriteString(styles.ButtonBusy.Render(m.spin.View() + " Sending..."))
	default:
		b.WriteString(styles.ButtonActive.Render(m.buttonLabel))
	}

	return b.String()
}
