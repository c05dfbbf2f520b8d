package workbook

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// Sentinel errors for package workbook.
// These errors can be checked with errors.Is() for specific error handling.
var (
	ErrUnknownFormat = errors.New("not a recognized spreadsheet container")
	ErrNoMedia       = errors.New("container kind carries no media entries")
)

// Kind identifies the container format of an opened workbook.
type Kind int

const (
	KindUnknown Kind = iota
	// KindXLSX is an OOXML workbook stored in a zip container.
	KindXLSX
	// KindXLS is a legacy BIFF workbook stored in an OLE compound file.
	KindXLS
)

func (k Kind) String() string {
	switch k {
	case KindXLSX:
		return "xlsx"
	case KindXLS:
		return "xls"
	default:
		return "unknown"
	}
}

// Container signatures: zip local file header and OLE2 compound file header.
var (
	zipSignature = []byte{0x50, 0x4b, 0x03, 0x04}
	oleSignature = []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1}
)

// Workbook is an opened spreadsheet archive. Use Open to create one and
// Close to release it.
type Workbook struct {
	Path string
	Kind Kind

	xlsx   *excelize.File
	legacy xls.Workbook
}

// Open sniffs the container signature of the file at path and opens it with
// the matching reader. Files that are neither zip nor OLE containers return
// ErrUnknownFormat.
func Open(path string) (*Workbook, error) {
	kind, err := sniffKind(path)
	if err != nil {
		return nil, err
	}

	w := &Workbook{Path: path, Kind: kind}
	switch kind {
	case KindXLSX:
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("open xlsx %s: %w", path, err)
		}
		w.xlsx = f
	case KindXLS:
		wb, err := xls.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("open xls %s: %w", path, err)
		}
		w.legacy = wb
	}
	return w, nil
}

// Close releases the underlying container handle.
func (w *Workbook) Close() error {
	if w.xlsx != nil {
		return w.xlsx.Close()
	}
	return nil
}

// SheetNames returns the worksheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	if w.xlsx != nil {
		return w.xlsx.GetSheetList()
	}
	var names []string
	for i := 0; i < w.legacy.GetNumberSheets(); i++ {
		sheet, err := w.legacy.GetSheet(i)
		if err != nil {
			continue
		}
		names = append(names, sheet.GetName())
	}
	return names
}

// sniffKind reads the container signature from the head of the file.
func sniffKind(path string) (Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return KindUnknown, err
	}
	defer f.Close()

	header := make([]byte, 8)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return KindUnknown, err
	}
	header = header[:n]

	switch {
	case bytes.HasPrefix(header, zipSignature):
		return KindXLSX, nil
	case bytes.HasPrefix(header, oleSignature):
		return KindXLS, nil
	default:
		return KindUnknown, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}
