package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/sheetlens/sheetlens/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the sheetlens CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "sheetlens",
		Short: "sheetlens - Extract embedded images and token statistics from spreadsheet archives",
		Long: `sheetlens reads spreadsheet archive files, extracts the images embedded in
their worksheets, and computes text and token statistics over their cells.

It understands xlsx zip containers and, for text statistics, legacy BIFF .xls
workbooks. Extracted images are inspected (dimensions, color, hashes, EXIF)
and everything is serialized into a JSON report.

Use subcommands to perform different operations:
  - extract: Extract embedded images from a workbook into a directory
  - stats: Compute per-sheet text and token statistics
  - inspect: Inspect image files on disk
  - report: Run the full pipeline and write a JSON report`,
		Version: version.GetFullVersion(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			log.SetLevel(lvl)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	groupWorkbook := "workbook"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupWorkbook,
		Title: "Workbook Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	extractCmd := NewExtractCmd()
	statsCmd := NewStatsCmd()
	reportCmd := NewReportCmd()
	inspectCmd := NewInspectCmd()

	extractCmd.GroupID = groupWorkbook
	statsCmd.GroupID = groupWorkbook
	reportCmd.GroupID = groupWorkbook
	inspectCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(inspectCmd)

	return rootCmd
}
