package workbook

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"
)

// mediaPrefix is where OOXML containers store embedded media payloads.
const mediaPrefix = "xl/media/"

// MediaEntry is a raw payload found under xl/media/ in the zip container.
type MediaEntry struct {
	// EntryPath is the full archive path (e.g. "xl/media/image1.png").
	EntryPath string
	// Name is the entry base name (e.g. "image1.png").
	Name string
	// Data is the raw payload.
	Data []byte
}

// MediaEntries scans the zip container for xl/media/ entries and returns
// each one exactly once. This catches payloads the anchor walk misses, such
// as images referenced only from headers or drawings without cell anchors.
// Workbooks whose container kind carries no media return ErrNoMedia.
func (w *Workbook) MediaEntries() ([]MediaEntry, error) {
	if w.Kind != KindXLSX {
		return nil, fmt.Errorf("%s: %w", w.Path, ErrNoMedia)
	}

	zrc, err := zip.OpenReader(w.Path)
	if err != nil {
		return nil, fmt.Errorf("open container %s: %w", w.Path, err)
	}
	defer zrc.Close()

	var entries []MediaEntry
	for _, f := range zrc.File {
		if !strings.HasPrefix(f.Name, mediaPrefix) {
			continue
		}
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open entry %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read entry %s: %w", f.Name, err)
		}
		entries = append(entries, MediaEntry{
			EntryPath: f.Name,
			Name:      path.Base(f.Name),
			Data:      data,
		})
	}
	return entries, nil
}
