package forms

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelacroix/inkwell/internal/api"
	"github.com/jdelacroix/inkwell/internal/theme"
	inkwellerrors "github.com/jdelacroix/inkwell/pkg/errors"
)

func newNewsletterForm(t *testing.T) Model {
	t.Helper()
	client := api.NewClient(api.Options{SuccessRate: 1.0, Rand: rand.New(rand.NewSource(1))})
	return New("newsletter", "Subscribe", api.EndpointNewsletter, client, []FieldSpec{
		{Name: "email", Label: "Email", Placeholder: "you@example.com", Required: true, Email: true},
	})
}

func typeInto(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, cmd := m.Focus()
	_ = cmd
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestValidateRejectsEmptyRequiredField(t *testing.T) {
	t.Parallel()

	m := newNewsletterForm(t)
	err := m.Validate()
	require.Error(t, err)

	var validationErr *inkwellerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "email", validationErr.Field)
	assert.Contains(t, validationErr.Message, "required")
}

func TestValidateRejectsMalformedEmail(t *testing.T) {
	t.Parallel()

	m := typeInto(t, newNewsletterForm(t), "not-an-email")
	err := m.Validate()
	require.Error(t, err)

	var validationErr *inkwellerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "please enter a valid email address", validationErr.Message)
}

func TestValidateAcceptsWellFormedEmail(t *testing.T) {
	t.Parallel()

	m := typeInto(t, newNewsletterForm(t), "user@example.com")
	require.NoError(t, m.Validate())
}

func TestSubmitInvalidInputMakesNoNetworkAttempt(t *testing.T) {
	t.Parallel()

	m := typeInto(t, newNewsletterForm(t), "not-an-email")
	m, cmd, err := m.Submit(context.Background())

	require.Error(t, err)
	assert.Nil(t, cmd, "validation failure must not produce a submit command")
	assert.Equal(t, StatusIdle, m.Status())
}

func TestSubmitValidInputEntersSubmitting(t *testing.T) {
	t.Parallel()

	m := typeInto(t, newNewsletterForm(t), "user@example.com")
	m, cmd, err := m.Submit(context.Background())

	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Equal(t, StatusSubmitting, m.Status())
}

func TestSubmitWhileSubmittingIsNoop(t *testing.T) {
	t.Parallel()

	m := typeInto(t, newNewsletterForm(t), "user@example.com")
	m, _, err := m.Submit(context.Background())
	require.NoError(t, err)

	m, cmd, err := m.Submit(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cmd)
	assert.Equal(t, StatusSubmitting, m.Status())
}

func TestSucceedResetsFields(t *testing.T) {
	t.Parallel()

	m := typeInto(t, newNewsletterForm(t), "user@example.com")
	m, _, err := m.Submit(context.Background())
	require.NoError(t, err)

	m = m.Succeed()
	assert.Equal(t, StatusIdle, m.Status())
	assert.Equal(t, "", m.Values()["email"])
}

func TestFailPreservesEnteredValues(t *testing.T) {
	t.Parallel()

	m := typeInto(t, newNewsletterForm(t), "user@example.com")
	m, _, err := m.Submit(context.Background())
	require.NoError(t, err)

	m = m.Fail()
	assert.Equal(t, StatusIdle, m.Status())
	assert.Equal(t, "user@example.com", m.Values()["email"])
}

func TestDisableRendersNoteInsteadOfInputs(t *testing.T) {
	t.Parallel()

	m := newNewsletterForm(t).Disable("You are already subscribed!")
	assert.Equal(t, StatusDisabled, m.Status())
	assert.Equal(t, "You are already subscribed!", m.DisabledNote())

	view := m.View(theme.LightStyles())
	assert.Contains(t, view, "You are already subscribed!")
	assert.NotContains(t, view, "Subscribe")
}

func TestDisabledFormIgnoresInput(t *testing.T) {
	t.Parallel()

	m := newNewsletterForm(t).Disable("closed")
	m = typeInto(t, m, "user@example.com")
	assert.Equal(t, "", m.Values()["email"])

	m, cmd, err := m.Submit(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cmd)
	assert.Equal(t, StatusDisabled, m.Status())
}

func TestFocusNextCyclesFields(t *testing.T) {
	t.Parallel()

	client := api.NewClient(api.Options{SuccessRate: 1.0, Rand: rand.New(rand.NewSource(1))})
	m := New("contact", "Send", api.EndpointContact, client, []FieldSpec{
		{Name: "name", Label: "Name", Required: true},
		{Name: "email", Label: "Email", Required: true, Email: true},
	})

	m, _ = m.Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	m, _ = m.FocusNext()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})

	values := m.Values()
	assert.Equal(t, "a", values["name"])
	assert.Equal(t, "b", values["email"])
}

func TestViewShowsBusyStateWhileSubmitting(t *testing.T) {
	t.Parallel()

	m := typeInto(t, newNewsletterForm(t), "user@example.com")
	m, _, err := m.Submit(context.Background())
	require.NoError(t, err)

	view := m.View(theme.LightStyles())
	assert.Contains(t, view, "Sending...")
}
