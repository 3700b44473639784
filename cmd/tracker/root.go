package tracker

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "tracker keeps a local table of foods per 100 g",
	Long:  "tracker normalizes nutrition labels to per-100g values, checks reported calories against macros, and stores foods in a local SQLite file.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database (overrides TRACKER_DB)")
}
