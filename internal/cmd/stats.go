package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/sheetlens/sheetlens/report"
	"github.com/sheetlens/sheetlens/stats"
	"github.com/sheetlens/sheetlens/workbook"
	"github.com/spf13/cobra"
)

// NewStatsCmd creates and returns the stats subcommand for the sheetlens CLI.
// It computes per-sheet text and token statistics for a workbook.
func NewStatsCmd() *cobra.Command {
	var (
		tokenizer    string
		chunkSize    int
		chunkOverlap int
		jsonOut      bool
		outJSON      string
	)

	cmd := &cobra.Command{
		Use:   "stats WORKBOOK",
		Short: "Compute per-sheet text and token statistics",
		Long: `Compute cell, character, token, and chunk counts for every worksheet.

Token counting uses a fixed-ratio heuristic (~4 characters per token) unless
--tokenizer names a tiktoken encoding such as cl100k_base or o200k_base.
Works for both xlsx and legacy .xls workbooks.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runStats(args[0], tokenizer, chunkSize, chunkOverlap, jsonOut, outJSON)
		},
	}

	cmd.Flags().StringVar(&tokenizer, "tokenizer", stats.HeuristicName, "Token counter (heuristic or a tiktoken encoding name)")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", stats.DefaultChunkSize, "Characters per chunk for chunk counting")
	cmd.Flags().IntVar(&chunkOverlap, "chunk-overlap", stats.DefaultOverlap, "Overlapping characters between adjacent chunks")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the report as JSON instead of a table")
	cmd.Flags().StringVar(&outJSON, "out-json", "", "Write the JSON report to the given file")

	return cmd
}

func runStats(path, tokenizer string, chunkSize, chunkOverlap int, jsonOut bool, outJSON string) {
	counter, err := stats.NewCounter(tokenizer)
	if err != nil {
		log.Fatal("failed to initialize tokenizer", "err", err)
	}

	wb, err := workbook.Open(path)
	if err != nil {
		log.Fatal("failed to open workbook", "file", path, "err", err)
	}
	defer wb.Close()

	texts, err := wb.SheetTexts()
	if err != nil {
		log.Fatal("failed to read sheet texts", "err", err)
	}

	chunker := &stats.Chunker{ChunkSize: chunkSize, Overlap: chunkOverlap}
	sheets, totals := stats.Collect(texts, counter, chunker)

	rep := report.Build(wb, nil, sheets, &totals)
	writeReportFile(rep, outJSON)
	if jsonOut {
		encodeReport(rep)
		return
	}

	fmt.Println("sheet\tcells\tchars\ttokens\tchunks")
	for _, s := range sheets {
		fmt.Printf("%s\t%d\t%d\t%d\t%d\n", s.Name, s.CellCount, s.CharCount, s.TokenCount, s.ChunkCount)
	}
	fmt.Printf("total (%s)\t%d\t%d\t%d\t%d\n", totals.Tokenizer,
		totals.CellCount, totals.CharCount, totals.TokenCount, totals.ChunkCount)
}
