// Package workbook provides read access to spreadsheet archive containers.
//
// It opens xlsx zip containers through excelize and legacy BIFF .xls
// workbooks through xlsReader, and exposes the three views the rest of the
// tool consumes:
//
//   - Pictures: images anchored to worksheet cells, with their top-left
//     anchor cell reference
//   - MediaEntries: a raw scan of the container's xl/media/ entries, which
//     catches payloads the anchor walk misses
//   - SheetTexts: per-sheet non-empty cell values for text statistics
//
// Legacy .xls workbooks expose text only; BIFF image records are not read.
package workbook
