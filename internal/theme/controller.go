package theme

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jdelacroix/inkwell/internal/logger"
	inkwellerrors "github.com/jdelacroix/inkwell/pkg/errors"
)

// Preference identifies a theme variant.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
)

// ParsePreference converts a stored string into a Preference.
func ParsePreference(value string) (Preference, error) {
	switch Preference(value) {
	case Light, Dark:
		return Preference(value), nil
	default:
		return "", inkwellerrors.NewValidationError("theme", fmt.Sprintf("unknown theme preference %q", value), nil)
	}
}

// SystemPreference reports the terminal's background preference, the closest
// analog of an OS-level dark mode setting.
func SystemPreference() Preference {
	if lipgloss.HasDarkBackground() {
		return Dark
	}
	return Light
}

// Store is the durable storage surface the controller needs.
type Store interface {
	Theme() (string, bool)
	SetTheme(value string) error
}

// Tracker receives interaction events.
type Tracker interface {
	Track(ctx context.Context, name string, fields map[string]any)
}

// Controller resolves, applies, and persists the active theme preference.
type Controller struct {
	store   Store
	tracker Tracker
	log     *logger.Logger
	detect  func() Preference

	current      Preference
	explicit     bool
	announcement string
}

// NewController builds a Controller and resolves the initial preference:
// explicit stored value, else the detected system preference, else light.
// The initial resolution is not persisted; only explicit changes are.
func NewController(store Store, detect func() Preference, log *logger.Logger, tracker Tracker) *Controller {
	if detect == nil {
		detect = SystemPreference
	}

	c := &Controller{
		store:   store,
		tracker: tracker,
		log:     log,
		detect:  detect,
		current: Light,
	}

	if store != nil {
		if stored, ok := store.Theme(); ok {
			if pref, err := ParsePreference(stored); err == nil {
				c.current = pref
				c.explicit = true
				return c
			}
			log.Warn("ignoring invalid stored theme preference")
		}
	}

	c.current = detect()
	return c
}

// Current returns the active preference.
func (c *Controller) Current() Preference {
	return c.current
}

// Explicit reports whether the user has made an explicit choice.
func (c *Controller) Explicit() bool {
	return c.explicit
}

// Apply sets and persists an explicit preference. Invalid values are logged
// and ignored.
func (c *Controller) Apply(pref Preference) error {
	if _, err := ParsePreference(string(pref)); err != nil {
		c.log.Error(err, "rejected theme preference")
		return err
	}

	c.current = pref
	c.explicit = true
	c.announce(pref)

	if c.store != nil {
		if err := c.store.SetTheme(string(pref)); err != nil {
			c.log.Error(err, "failed to persist theme preference")
			return err
		}
	}

	if c.tracker != nil {
		c.tracker.Track(context.Background(), "theme_toggle", map[string]any{"theme": string(pref)})
	}

	return nil
}

// Toggle flips light and dark and persists the result.
func (c *Controller) Toggle() Preference {
	next := Light
	if c.current == Light {
		next = Dark
	}
	_ = c.Apply(next)
	return c.current
}

// SystemChanged re-applies a detected system preference change. It is a no-op
// once the user has persisted an explicit choice.
func (c *Controller) SystemChanged(pref Preference) {
	if c.explicit {
		return
	}
	if _, err := ParsePreference(string(pref)); err != nil {
		c.log.Error(err, "rejected system theme preference")
		return
	}
	if pref == c.current {
		return
	}
	c.current = pref
	c.announce(pref)
	c.log.Debug("theme follows system preference")
}

// TogglePressed reports the pressed state of the theme toggle control, where
// pressed means dark mode is active.
func (c *Controller) TogglePressed() bool {
	return c.current == Dark
}

// Announcement returns the latest assistive announcement text.
func (c *Controller) Announcement() string {
	return c.announcement
}

// Styles returns the style set for the active preference.
func (c *Controller) Styles() Styles {
	return StylesFor(c.current)
}

func (c *Controller) announce(pref Preference) {
	if pref == Dark {
		c.announcement = "Dark theme enabled"
	} else {
		c.announcement = "Light theme enabled"
	}
	c.log.WithFields(map[string]any{"theme": string(pref)}).Info("theme changed")
}
