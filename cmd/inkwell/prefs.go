package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPrefsCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Manage stored preferences",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Clear all stored preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openPrefs(flags)
			if err != nil {
				return err
			}
			if err := store.Reset(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "preferences cleared")
			return nil
		},
	})

	return cmd
}
