package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Site    SiteConfig    `yaml:"site" validate:"required"`
	Content ContentConfig `yaml:"content"`
	Nav     []NavSection  `yaml:"nav" validate:"dive"`
	Theme   string        `yaml:"theme" validate:"omitempty,theme_pref"`
	Toast   ToastConfig   `yaml:"toast"`
	Submit  SubmitConfig  `yaml:"submit"`
	Log     LogConfig     `yaml:"log"`
	DevMode bool          `yaml:"dev_mode"`
}

// SiteConfig describes the blog being browsed.
type SiteConfig struct {
	Title  string `yaml:"title" validate:"required"`
	Author string `yaml:"author"`
}

// ContentConfig locates the post sources.
type ContentConfig struct {
	Dir string `yaml:"dir"`
}

// NavSection is one entry of the navigation menu. An empty nav list renders
// no menu at all.
type NavSection struct {
	Label string `yaml:"label" validate:"required"`
	Slug  string `yaml:"slug" validate:"required,nav_slug"`
}

// ToastConfig tunes toast display timing.
type ToastConfig struct {
	DurationMs int `yaml:"duration_ms" validate:"omitempty,gte=500"`
	FadeMs     int `yaml:"fade_ms" validate:"omitempty,gte=50"`
}

// SubmitConfig tunes the simulated remote boundary.
type SubmitConfig struct {
	DelayMs     int     `yaml:"delay_ms" validate:"omitempty,gte=0"`
	SuccessRate float64 `yaml:"success_rate" validate:"gte=0,lte=1"`
}

// LogConfig tunes the structured logger.
type LogConfig struct {
	Level         string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic"`
	HumanReadable bool   `yaml:"human_readable"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Site:    SiteConfig{Title: "inkwell"},
		Content: ContentConfig{Dir: "content"},
		Nav: []NavSection{
			{Label: "Home", Slug: "home"},
			{Label: "Posts", Slug: "posts"},
			{Label: "Newsletter", Slug: "newsletter"},
			{Label: "Contact", Slug: "contact"},
			{Label: "Search", Slug: "search"},
		},
		Toast: ToastConfig{
			DurationMs: 5000,
			FadeMs:     300,
		},
		Submit: SubmitConfig{
			DelayMs:     1500,
			SuccessRate: 0.9,
		},
		Log: LogConfig{Level: "info"},
	}
}

// ToastDuration returns the toast display window.
func (c *Config) ToastDuration() time.Duration {
	return time.Duration(c.Toast.DurationMs) * time.Millisecond
}

// ToastFade returns the toast hide transition length.
func (c *Config) ToastFade() time.Duration {
	return time.Duration(c.Toast.FadeMs) * time.Millisecond
}

// SubmitDelay returns the simulated network delay.
func (c *Config) SubmitDelay() time.Duration {
	return time.Duration(c.Submit.DelayMs) * time.Millisecond
}
