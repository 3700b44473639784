package tracker

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/service"
	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/store"
)

var (
	exportFormat string
	exportOut    string
	importFormat string
	importIn     string
	importDryRun bool
	importCheck  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored foods (json or yaml)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(exportOut) == "" {
			return fmt.Errorf("--out is required")
		}
		format, err := service.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		return withStore(cmd, func(s *store.SQLite) error {
			data, err := service.ExportDataSnapshot(s)
			if err != nil {
				return err
			}
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			if err := service.WriteExport(f, data, format); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d foods to %s\n", len(data.Foods), exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import foods (json or yaml)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--in is required")
		}
		format, err := service.ParseFormat(importFormat)
		if err != nil {
			return err
		}
		f, err := os.Open(importIn)
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()
		data, err := service.ReadExport(f, format)
		if err != nil {
			return err
		}
		return withStore(cmd, func(s *store.SQLite) error {
			report, err := service.ImportFoods(s, data, service.ImportOptions{
				DryRun: importDryRun,
				Check:  importCheck,
			})
			if err != nil {
				return err
			}
			prefix := "Import report"
			if importDryRun {
				prefix = "Import report (dry run)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: inserted=%d skipped=%d failed=%d\n", prefix, report.Inserted, report.Skipped, report.Failed)
			for _, w := range report.Warnings {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", w)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format: json|yaml")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path")
	importCmd.Flags().StringVar(&importFormat, "format", "json", "Import format: json|yaml")
	importCmd.Flags().StringVar(&importIn, "in", "", "Input file path")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Report what would be imported without writing")
	importCmd.Flags().BoolVar(&importCheck, "check", false, "Fail records whose calories disagree with macros")
}
