// Package report assembles and serializes the JSON report of a run.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sheetlens/sheetlens/extract"
	"github.com/sheetlens/sheetlens/stats"
	"github.com/sheetlens/sheetlens/version"
	"github.com/sheetlens/sheetlens/workbook"
)

// Workbook describes the source container of a report.
type Workbook struct {
	Path       string `json:"path"`
	Kind       string `json:"kind"`
	SheetCount int    `json:"sheet_count"`
}

// Images accumulates the extraction counters across all records.
type Images struct {
	Found        int   `json:"found"`
	Saved        int   `json:"saved"`
	Failed       int   `json:"failed"`
	Skipped      int   `json:"skipped"`
	Bytes        int64 `json:"bytes"`
	Base64Tokens int   `json:"base64_tokens"`
}

// Report is the serialized result of a run.
type Report struct {
	RunID       string             `json:"run_id"`
	ToolVersion string             `json:"tool_version"`
	GeneratedAt time.Time          `json:"generated_at"`
	Workbook    Workbook           `json:"workbook"`
	Images      Images             `json:"images"`
	Records     []extract.Record   `json:"records,omitempty"`
	Sheets      []stats.SheetStats `json:"sheets,omitempty"`
	Totals      *stats.Totals      `json:"totals,omitempty"`
}

// Build assembles a report from the outputs of the pipeline stages. The
// extraction result and the statistics may each be nil when that stage did
// not run.
func Build(wb *workbook.Workbook, res *extract.Result, sheets []stats.SheetStats, totals *stats.Totals) *Report {
	r := &Report{
		RunID:       uuid.NewString(),
		ToolVersion: version.GetVersion(),
		GeneratedAt: time.Now().UTC(),
		Workbook: Workbook{
			Path:       wb.Path,
			Kind:       wb.Kind.String(),
			SheetCount: len(wb.SheetNames()),
		},
		Sheets: sheets,
		Totals: totals,
	}
	if res != nil {
		r.Records = res.Records
		r.Images = Images{
			Found:   res.Found,
			Saved:   res.Saved,
			Failed:  res.Failed,
			Skipped: res.Skipped,
		}
		for _, rec := range res.Records {
			r.Images.Base64Tokens += rec.Base64Tokens
			if rec.Info != nil {
				r.Images.Bytes += rec.Info.SizeBytes
			}
		}
	}
	return r
}

// WriteJSONFile writes any value as indented JSON to the specified file path.
func WriteJSONFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Save writes the report as indented JSON to path.
func (r *Report) Save(path string) error {
	return WriteJSONFile(path, r)
}

// Encode writes the report as indented JSON to w.
func (r *Report) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Summary returns the one-line run summary.
func (r *Report) Summary() string {
	return fmt.Sprintf("found %d items, saved %d, failed %d",
		r.Images.Found, r.Images.Saved, r.Images.Failed)
}

// Table writes the tab-separated fallback listing of records to w.
func (r *Report) Table(w io.Writer) {
	fmt.Fprintln(w, "sheet\tcell\tfile\tok")
	for _, rec := range r.Records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", rec.Sheet, rec.Cell, rec.File, rec.OK)
	}
}
