package report

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sheetlens/sheetlens/extract"
	"github.com/sheetlens/sheetlens/inspect"
	"github.com/sheetlens/sheetlens/stats"
	"github.com/sheetlens/sheetlens/workbook"
	"github.com/xuri/excelize/v2"
)

func openEmptyWorkbook(t *testing.T) *workbook.Workbook {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "x")
	path := filepath.Join(t.TempDir(), "wb.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	wb, err := workbook.Open(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	t.Cleanup(func() { wb.Close() })
	return wb
}

func sampleResult() *extract.Result {
	return &extract.Result{
		Found: 2, Saved: 1, Failed: 1,
		Records: []extract.Record{
			{
				Sheet: "Sheet1", Cell: "B2", Source: "anchor", File: "out/Sheet1_B2_1.png",
				OK: true, Base64Tokens: 12,
				Info: &inspect.Info{SizeBytes: 345},
			},
			{Source: "media", OK: false, Error: "write failed"},
		},
	}
}

func TestBuild(t *testing.T) {
	wb := openEmptyWorkbook(t)
	sheets := []stats.SheetStats{{Name: "Sheet1", CellCount: 1}}
	totals := &stats.Totals{SheetCount: 1, CellCount: 1, Tokenizer: stats.HeuristicName}

	r := Build(wb, sampleResult(), sheets, totals)

	if _, err := uuid.Parse(r.RunID); err != nil {
		t.Errorf("RunID = %q is not a valid uuid: %v", r.RunID, err)
	}
	if r.ToolVersion == "" {
		t.Error("ToolVersion is empty")
	}
	if r.GeneratedAt.IsZero() {
		t.Error("GeneratedAt is zero")
	}
	if r.Workbook.Kind != "xlsx" {
		t.Errorf("Workbook.Kind = %q, want xlsx", r.Workbook.Kind)
	}
	if r.Workbook.SheetCount != 1 {
		t.Errorf("Workbook.SheetCount = %d, want 1", r.Workbook.SheetCount)
	}
	if r.Images.Found != 2 || r.Images.Saved != 1 || r.Images.Failed != 1 {
		t.Errorf("Images = %+v, want found 2 saved 1 failed 1", r.Images)
	}
	if r.Images.Bytes != 345 {
		t.Errorf("Images.Bytes = %d, want 345", r.Images.Bytes)
	}
	if r.Images.Base64Tokens != 12 {
		t.Errorf("Images.Base64Tokens = %d, want 12", r.Images.Base64Tokens)
	}
	if r.Totals.Tokenizer != stats.HeuristicName {
		t.Errorf("Totals.Tokenizer = %q, want heuristic", r.Totals.Tokenizer)
	}
}

func TestBuild_NilStages(t *testing.T) {
	wb := openEmptyWorkbook(t)
	r := Build(wb, nil, nil, nil)
	if r.Images.Found != 0 || len(r.Records) != 0 {
		t.Errorf("Images = %+v with nil result, want zeros", r.Images)
	}
	if r.Totals != nil {
		t.Errorf("Totals = %+v, want nil", r.Totals)
	}
}

func TestSaveAndRoundTrip(t *testing.T) {
	wb := openEmptyWorkbook(t)
	r := Build(wb, sampleResult(), nil, nil)

	path := filepath.Join(t.TempDir(), "report.json")
	if err := r.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if decoded.RunID != r.RunID {
		t.Errorf("round-trip RunID = %q, want %q", decoded.RunID, r.RunID)
	}
	if len(decoded.Records) != 2 {
		t.Errorf("round-trip records = %d, want 2", len(decoded.Records))
	}
}

func TestSummaryAndTable(t *testing.T) {
	wb := openEmptyWorkbook(t)
	r := Build(wb, sampleResult(), nil, nil)

	want := "found 2 items, saved 1, failed 1"
	if got := r.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}

	var buf bytes.Buffer
	r.Table(&buf)
	out := buf.String()
	if !strings.HasPrefix(out, "sheet\tcell\tfile\tok\n") {
		t.Errorf("Table() missing header:\n%s", out)
	}
	if !strings.Contains(out, "Sheet1\tB2\tout/Sheet1_B2_1.png\ttrue") {
		t.Errorf("Table() missing record row:\n%s", out)
	}
}

func TestBundle(t *testing.T) {
	wb := openEmptyWorkbook(t)
	r := Build(wb, sampleResult(), nil, nil)

	outDir := t.TempDir()
	os.WriteFile(filepath.Join(outDir, "a.png"), []byte("imagedata"), 0644)
	os.MkdirAll(filepath.Join(outDir, "sub"), 0755)
	os.WriteFile(filepath.Join(outDir, "sub", "b.png"), []byte("more"), 0644)

	dest := filepath.Join(t.TempDir(), "bundle.zip")
	if err := r.Bundle(outDir, dest); err != nil {
		t.Fatalf("Bundle() error = %v", err)
	}

	zrc, err := zip.OpenReader(dest)
	if err != nil {
		t.Fatalf("open bundle: %v", err)
	}
	defer zrc.Close()

	names := make(map[string]bool)
	for _, f := range zrc.File {
		names[f.Name] = true
	}
	for _, want := range []string{"a.png", "sub/b.png", "report.json"} {
		if !names[want] {
			t.Errorf("bundle missing entry %q, have %v", want, names)
		}
	}
}

func TestBundle_DestInsideDir(t *testing.T) {
	wb := openEmptyWorkbook(t)
	r := Build(wb, sampleResult(), nil, nil)

	outDir := t.TempDir()
	os.WriteFile(filepath.Join(outDir, "a.png"), []byte("imagedata"), 0644)

	// The archive lives inside the directory being bundled and must not end
	// up zipped into itself.
	dest := filepath.Join(outDir, "bundle.zip")
	if err := r.Bundle(outDir, dest); err != nil {
		t.Fatalf("Bundle() error = %v", err)
	}

	zrc, err := zip.OpenReader(dest)
	if err != nil {
		t.Fatalf("open bundle: %v", err)
	}
	defer zrc.Close()

	names := make(map[string]bool)
	for _, f := range zrc.File {
		names[f.Name] = true
	}
	if names["bundle.zip"] {
		t.Error("bundle contains itself")
	}
	for _, want := range []string{"a.png", "report.json"} {
		if !names[want] {
			t.Errorf("bundle missing entry %q, have %v", want, names)
		}
	}
}
