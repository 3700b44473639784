package tracker

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize local food database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(s *store.SQLite) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized food database at %s\n", s.Path())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
