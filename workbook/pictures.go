package workbook

import (
	"strings"

	"github.com/charmbracelet/log"
)

// Picture is an image anchored to a worksheet cell.
type Picture struct {
	// Sheet is the worksheet the image is anchored to.
	Sheet string
	// Cell is the top-left anchor cell reference (e.g. "C3").
	Cell string
	// Index is the 1-based position of the image within its sheet.
	Index int
	// Extension is the payload extension reported by the container,
	// including the leading dot (e.g. ".png").
	Extension string
	// Data is the raw image payload.
	Data []byte
}

// Pictures walks every worksheet once and returns all anchored images with
// their anchor cells. A sheet whose drawings cannot be read is skipped and
// logged; pictures from the remaining sheets are still returned. Legacy
// workbooks return an empty slice; BIFF image records are not read.
func (w *Workbook) Pictures() ([]Picture, error) {
	if w.xlsx == nil {
		return nil, nil
	}

	var pictures []Picture
	for _, sheet := range w.xlsx.GetSheetList() {
		cells, err := w.xlsx.GetPictureCells(sheet)
		if err != nil {
			log.Warn("skipping sheet with unreadable drawings", "sheet", sheet, "err", err)
			continue
		}
		index := 0
		for _, cell := range cells {
			pics, err := w.xlsx.GetPictures(sheet, cell)
			if err != nil {
				log.Warn("skipping unreadable picture anchor", "sheet", sheet, "cell", cell, "err", err)
				continue
			}
			for _, pic := range pics {
				index++
				ext := strings.ToLower(pic.Extension)
				if ext == "" {
					ext = ".bin"
				}
				pictures = append(pictures, Picture{
					Sheet:     sheet,
					Cell:      cell,
					Index:     index,
					Extension: ext,
					Data:      pic.File,
				})
			}
		}
	}
	return pictures, nil
}
