package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/sheetlens/sheetlens/extract"
	"github.com/sheetlens/sheetlens/report"
	"github.com/sheetlens/sheetlens/workbook"
	"github.com/spf13/cobra"
)

// NewExtractCmd creates and returns the extract subcommand for the sheetlens CLI.
// It extracts embedded images from a workbook into a directory.
func NewExtractCmd() *cobra.Command {
	var (
		outDir    string
		layout    string
		outJSON   string
		jsonOut   bool
		noInspect bool
		dedupe    bool
	)

	cmd := &cobra.Command{
		Use:   "extract WORKBOOK",
		Short: "Extract embedded images from a workbook",
		Long: `Extract the images embedded in a spreadsheet archive into a directory.

Anchored pictures are written first under sheet/cell derived names, then the
container's xl/media/ entries are scanned for payloads the anchor walk missed.
Each written file is inspected unless --no-inspect is given.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runExtract(args[0], outDir, layout, outJSON, jsonOut, noInspect, dedupe)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory to write extracted images to (required)")
	cmd.Flags().StringVar(&layout, "layout", "sheet-cell", "Output naming layout (sheet-cell, content-addressed)")
	cmd.Flags().BoolVar(&dedupe, "dedupe", false, "Skip anchored pictures whose content was already written")
	cmd.Flags().BoolVar(&noInspect, "no-inspect", false, "Skip image inspection of extracted files")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the report as JSON instead of a table")
	cmd.Flags().StringVar(&outJSON, "out-json", "", "Write the JSON report to the given file")

	cmd.MarkFlagRequired("out")

	return cmd
}

func runExtract(path, outDir, layoutName, outJSON string, jsonOut, noInspect, dedupe bool) {
	layout, err := extract.ParseLayout(layoutName)
	if err != nil {
		log.Fatal("invalid layout", "err", err)
	}

	wb, err := workbook.Open(path)
	if err != nil {
		log.Fatal("failed to open workbook", "file", path, "err", err)
	}
	defer wb.Close()

	if wb.Kind == workbook.KindXLS {
		log.Warn("legacy .xls workbooks carry no extractable media, use the stats command for text statistics")
	}

	res, err := extract.Run(wb, extract.Options{
		OutDir:         outDir,
		Layout:         layout,
		SkipDuplicates: dedupe,
		Inspect:        !noInspect,
	})
	if err != nil {
		log.Fatal("extraction failed", "err", err)
	}

	rep := report.Build(wb, res, nil, nil)
	fmt.Println(rep.Summary())
	writeReportFile(rep, outJSON)
	if jsonOut {
		encodeReport(rep)
		return
	}
	rep.Table(os.Stdout)
}

// writeReportFile writes the JSON report to outJSON when set, creating
// parent directories as needed.
func writeReportFile(rep *report.Report, outJSON string) {
	if outJSON == "" {
		return
	}
	if dir := filepath.Dir(outJSON); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatal("failed to create report directory", "dir", dir, "err", err)
		}
	}
	if err := rep.Save(outJSON); err != nil {
		log.Fatal("failed to write report", "file", outJSON, "err", err)
	}
	fmt.Printf("JSON report written to %s\n", outJSON)
}

func encodeReport(rep *report.Report) {
	if err := rep.Encode(os.Stdout); err != nil {
		log.Fatal("failed to encode report", "err", err)
	}
}
