package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdelacroix/inkwell/internal/logger"
	"github.com/jdelacroix/inkwell/internal/theme"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the resolved theme preference",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openPrefs(flags)
			if err != nil {
				return err
			}

			log, err := logger.New(logger.Options{Level: "warn", HumanReadable: true})
			if err != nil {
				return err
			}

			ctl := theme.NewController(store, nil, log, nil)
			source := "system"
			if ctl.Explicit() {
				source = "user"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", ctl.Current(), source)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <light|dark>",
		Short: "Persist an explicit theme preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pref, err := theme.ParsePreference(args[0])
			if err != nil {
				return err
			}

			store, err := openPrefs(flags)
			if err != nil {
				return err
			}

			log, logErr := logger.New(logger.Options{Level: "warn", HumanReadable: true})
			if logErr != nil {
				return logErr
			}

			ctl := theme.NewController(store, nil, log, nil)
			if err := ctl.Apply(pref); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "theme set to %s\n", pref)
			return nil
		},
	})

	return cmd
}
