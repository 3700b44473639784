package tracker

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/service"
	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/store"
)

var doctorJSON bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check every stored food's calories against its macros",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(s *store.SQLite) error {
			report, err := service.RunDoctor(s)
			if err != nil {
				return err
			}
			if doctorJSON {
				b, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal doctor json: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Foods checked: %d\n", report.Checked)
				fmt.Fprintf(cmd.OutOrStdout(), "Implausible calories: %d\n", report.Implausible)
				fmt.Fprintf(cmd.OutOrStdout(), "Uncheckable (no macros): %d\n", report.Uncheckable)
				for _, f := range report.Findings {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s: %s\n", f.Name, f.Problem)
				}
			}
			if report.HasIssues() {
				return fmt.Errorf("doctor found implausible foods")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "Output report as JSON")
}
