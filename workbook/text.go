package workbook

import (
	"fmt"
	"strings"
)

// SheetText holds the non-empty cell values of one worksheet.
type SheetText struct {
	Name  string
	Cells []string
}

// SheetTexts returns the non-empty cell values of every worksheet, in
// workbook order. A sheet whose rows cannot be read is returned with no
// cells rather than failing the whole workbook.
func (w *Workbook) SheetTexts() ([]SheetText, error) {
	if w.xlsx != nil {
		return w.xlsxTexts()
	}
	return w.legacyTexts()
}

func (w *Workbook) xlsxTexts() ([]SheetText, error) {
	var texts []SheetText
	for _, name := range w.xlsx.GetSheetList() {
		st := SheetText{Name: name}
		rows, err := w.xlsx.GetRows(name)
		if err != nil {
			texts = append(texts, st)
			continue
		}
		for _, row := range rows {
			for _, cell := range row {
				val := strings.TrimSpace(cell)
				if val == "" {
					continue
				}
				st.Cells = append(st.Cells, val)
			}
		}
		texts = append(texts, st)
	}
	return texts, nil
}

func (w *Workbook) legacyTexts() ([]SheetText, error) {
	var texts []SheetText
	numSheets := w.legacy.GetNumberSheets()
	for i := 0; i < numSheets; i++ {
		sheet, err := w.legacy.GetSheet(i)
		if err != nil {
			return nil, fmt.Errorf("xls sheet %d: %w", i, err)
		}
		st := SheetText{Name: sheet.GetName()}
		numRows := sheet.GetNumberRows()
		for rowIdx := 0; rowIdx < numRows; rowIdx++ {
			row, err := sheet.GetRow(rowIdx)
			if err != nil || row == nil {
				continue
			}
			for _, cell := range row.GetCols() {
				val := strings.TrimSpace(cell.GetString())
				if val == "" {
					continue
				}
				st.Cells = append(st.Cells, val)
			}
		}
		texts = append(texts, st)
	}
	return texts, nil
}
