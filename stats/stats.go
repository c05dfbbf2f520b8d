package stats

import (
	"strings"
	"unicode/utf8"

	"github.com/sheetlens/sheetlens/workbook"
)

// SheetStats holds the per-worksheet counters.
type SheetStats struct {
	Name       string `json:"sheet"`
	CellCount  int    `json:"cell_count"`
	CharCount  int    `json:"char_count"`
	TokenCount int    `json:"token_count"`
	ChunkCount int    `json:"chunk_count"`
}

// Totals accumulates the counters across all worksheets.
type Totals struct {
	SheetCount int    `json:"sheet_count"`
	CellCount  int    `json:"cell_count"`
	CharCount  int    `json:"char_count"`
	TokenCount int    `json:"token_count"`
	ChunkCount int    `json:"chunk_count"`
	Tokenizer  string `json:"tokenizer"`
}

// Collect computes per-sheet counters over the given sheet texts. Cell and
// character counts are independent of the counter choice; token and chunk
// counts run over the normalized joined text of each sheet.
func Collect(texts []workbook.SheetText, counter Counter, chunker *Chunker) ([]SheetStats, Totals) {
	if chunker == nil {
		chunker = NewChunker()
	}

	sheets := make([]SheetStats, 0, len(texts))
	totals := Totals{Tokenizer: counter.Name()}

	for _, st := range texts {
		text := Normalize(strings.Join(st.Cells, "\n"))
		s := SheetStats{
			Name:       st.Name,
			CellCount:  len(st.Cells),
			CharCount:  utf8.RuneCountInString(text),
			TokenCount: counter.Count(text),
			ChunkCount: chunker.Count(text),
		}
		sheets = append(sheets, s)

		totals.SheetCount++
		totals.CellCount += s.CellCount
		totals.CharCount += s.CharCount
		totals.TokenCount += s.TokenCount
		totals.ChunkCount += s.ChunkCount
	}
	return sheets, totals
}
