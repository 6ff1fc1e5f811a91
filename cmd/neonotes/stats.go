// ABOUTME: Stats command showing the administrator dashboard.
// ABOUTME: Only available to the admin account.

package main

import (
	"fmt"

	"github.com/harper/neonotes/internal/ui"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show platform statistics (admin only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := state.Stats()
		if err != nil {
			return err
		}
		fmt.Print(ui.FormatStats(st))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
