package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/sheetlens/sheetlens/extract"
	"github.com/sheetlens/sheetlens/report"
	"github.com/sheetlens/sheetlens/stats"
	"github.com/sheetlens/sheetlens/workbook"
	"github.com/spf13/cobra"
)

// NewReportCmd creates and returns the report subcommand for the sheetlens CLI.
// It runs the full pipeline: extraction, inspection, and statistics.
func NewReportCmd() *cobra.Command {
	var (
		outDir       string
		layout       string
		tokenizer    string
		chunkSize    int
		chunkOverlap int
		outJSON      string
		bundle       string
		jsonOut      bool
		dedupe       bool
	)

	cmd := &cobra.Command{
		Use:   "report WORKBOOK",
		Short: "Extract, inspect, and compute statistics in one run",
		Long: `Run the full pipeline over a workbook: extract and inspect the embedded
images, compute per-sheet text and token statistics, and serialize everything
into a single JSON report.

With --bundle, the extracted images and the report are also packed into one
zip archive.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runReport(args[0], outDir, layout, tokenizer, outJSON, bundle,
				chunkSize, chunkOverlap, jsonOut, dedupe)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory to write extracted images to (required)")
	cmd.Flags().StringVar(&layout, "layout", "sheet-cell", "Output naming layout (sheet-cell, content-addressed)")
	cmd.Flags().StringVar(&tokenizer, "tokenizer", stats.HeuristicName, "Token counter (heuristic or a tiktoken encoding name)")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", stats.DefaultChunkSize, "Characters per chunk for chunk counting")
	cmd.Flags().IntVar(&chunkOverlap, "chunk-overlap", stats.DefaultOverlap, "Overlapping characters between adjacent chunks")
	cmd.Flags().BoolVar(&dedupe, "dedupe", false, "Skip anchored pictures whose content was already written")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the report as JSON instead of a table")
	cmd.Flags().StringVar(&outJSON, "out-json", "", "Write the JSON report to the given file")
	cmd.Flags().StringVar(&bundle, "bundle", "", "Pack the extracted images and report into the given zip archive")

	cmd.MarkFlagRequired("out")

	return cmd
}

func runReport(path, outDir, layoutName, tokenizer, outJSON, bundle string,
	chunkSize, chunkOverlap int, jsonOut, dedupe bool,
) {
	layout, err := extract.ParseLayout(layoutName)
	if err != nil {
		log.Fatal("invalid layout", "err", err)
	}
	counter, err := stats.NewCounter(tokenizer)
	if err != nil {
		log.Fatal("failed to initialize tokenizer", "err", err)
	}

	wb, err := workbook.Open(path)
	if err != nil {
		log.Fatal("failed to open workbook", "file", path, "err", err)
	}
	defer wb.Close()

	res, err := extract.Run(wb, extract.Options{
		OutDir:         outDir,
		Layout:         layout,
		SkipDuplicates: dedupe,
		Inspect:        true,
		Counter:        counter,
	})
	if err != nil {
		log.Fatal("extraction failed", "err", err)
	}

	texts, err := wb.SheetTexts()
	if err != nil {
		log.Fatal("failed to read sheet texts", "err", err)
	}
	chunker := &stats.Chunker{ChunkSize: chunkSize, Overlap: chunkOverlap}
	sheets, totals := stats.Collect(texts, counter, chunker)

	rep := report.Build(wb, res, sheets, &totals)
	fmt.Println(rep.Summary())
	writeReportFile(rep, outJSON)

	if bundle != "" {
		if err := rep.Bundle(outDir, bundle); err != nil {
			log.Fatal("failed to write bundle", "file", bundle, "err", err)
		}
		fmt.Printf("bundle written to %s\n", bundle)
	}

	if jsonOut {
		encodeReport(rep)
		return
	}
	rep.Table(os.Stdout)
}
