// Package main provides the sheetlens command-line interface.
//
// sheetlens extracts embedded images from spreadsheet archives and computes
// text and token statistics over their worksheets. It reads xlsx zip
// containers (and legacy BIFF .xls workbooks for text statistics), inspects
// each extracted image, and serializes a JSON report.
//
// The binary supports multiple subcommands:
//   - extract: Extract embedded images from a workbook into a directory
//   - stats: Compute per-sheet text and token statistics
//   - inspect: Inspect image files on disk
//   - report: Run the full pipeline and write a JSON report
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/sheetlens/sheetlens/internal/cmd"
)

func main() {
	if err := fang.Execute(context.Background(), cmd.NewRootCmd()); err != nil {
		os.Exit(1)
	}
}
