package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inkwellerrors "github.com/jdelacroix/inkwell/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inkwell.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseConfigMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "inkwell", cfg.Site.Title)
	assert.Equal(t, 5000, cfg.Toast.DurationMs)
	assert.Equal(t, 1500, cfg.Submit.DelayMs)
	assert.InDelta(t, 0.9, cfg.Submit.SuccessRate, 0.001)
	assert.NotEmpty(t, cfg.Nav)
}

func TestParseConfigOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
site:
  title: Field Notes
  author: J. Delacroix
theme: dark
toast:
  duration_ms: 2000
  fade_ms: 150
submit:
  delay_ms: 10
  success_rate: 1.0
log:
  level: debug
dev_mode: true
`)

	cfg, err := ParseConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Field Notes", cfg.Site.Title)
	assert.Equal(t, "J. Delacroix", cfg.Site.Author)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, 2000, cfg.Toast.DurationMs)
	assert.True(t, cfg.DevMode)
}

func TestParseConfigRejectsInvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "site: [unclosed")

	_, err := ParseConfig(path)
	require.Error(t, err)

	var parseErr *inkwellerrors.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestParseConfigRejectsUnknownTheme(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
site:
  title: Blog
theme: sepia
`)

	_, err := ParseConfig(path)
	require.Error(t, err)

	var validationErr *inkwellerrors.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestParseConfigRejectsBadNavSlug(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
site:
  title: Blog
nav:
  - label: Home
    slug: "Bad Slug!"
`)

	_, err := ParseConfig(path)
	require.Error(t, err)
}

func TestParseConfigRejectsOutOfRangeSuccessRate(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
site:
  title: Blog
submit:
  success_rate: 1.5
`)

	_, err := ParseConfig(path)
	require.Error(t, err)
}

func TestDurationHelpers(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, "5s", cfg.ToastDuration().String())
	assert.Equal(t, "300ms", cfg.ToastFade().String())
	assert.Equal(t, "1.5s", cfg.SubmitDelay().String())
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	require.Error(t, ValidateConfig(nil))
}
