package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/jdelacroix/inkwell/internal/api"
	"github.com/jdelacroix/inkwell/internal/config"
	"github.com/jdelacroix/inkwell/internal/content"
	"github.com/jdelacroix/inkwell/internal/events"
	"github.com/jdelacroix/inkwell/internal/logger"
	"github.com/jdelacroix/inkwell/internal/prefs"
	"github.com/jdelacroix/inkwell/internal/report"
	"github.com/jdelacroix/inkwell/internal/theme"
	"github.com/jdelacroix/inkwell/internal/tui"
)

// runApp wires the application together and runs the event loop until the
// user quits.
func runApp(flags *rootFlags) (err error) {
	cfg, err := config.ParseConfig(flags.configPath)
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: cfg.Log.HumanReadable})
	if err != nil {
		return err
	}

	reporter := report.New(log, cfg.DevMode)
	defer func() {
		if r := recover(); r != nil {
			reporter.ReportPanic(r)
			err = errors.New("inkwell stopped unexpectedly")
		}
	}()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("inkwell requires an interactive terminal")
	}

	store, err := openPrefs(flags)
	if err != nil {
		return err
	}

	tracker := events.NewTracker(log.WithComponent("analytics"))

	themeCtl := theme.NewController(store, nil, log.WithComponent("theme"), tracker)
	if !themeCtl.Explicit() && cfg.Theme != "" {
		if pref, parseErr := theme.ParsePreference(cfg.Theme); parseErr == nil {
			themeCtl.SystemChanged(pref)
		}
	}

	client := api.NewClient(api.Options{
		Delay:       cfg.SubmitDelay(),
		SuccessRate: cfg.Submit.SuccessRate,
		Logger:      log.WithComponent("api"),
	})

	model := tui.NewModel(tui.Deps{
		Config:   cfg,
		Logger:   log,
		Tracker:  tracker,
		Reporter: reporter,
		Prefs:    store,
		Theme:    themeCtl,
		Content:  content.NewStore(cfg.Content.Dir, log.WithComponent("content")),
		Client:   client,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		reporter.Report(err)
		return err
	}

	return nil
}

// openPrefs opens the preference store at its default location. The --config
// flag does not relocate preferences; they live with the user, not the site.
func openPrefs(_ *rootFlags) (*prefs.Store, error) {
	path, err := prefs.DefaultPath()
	if err != nil {
		return nil, err
	}
	return prefs.NewStore(path)
}
