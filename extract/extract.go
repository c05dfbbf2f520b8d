// Package extract writes a workbook's embedded images out to a directory and
// enriches each written file with inspection metadata.
//
// Extraction runs in two phases. The anchor phase walks every worksheet once
// and writes each anchored picture under a sheet/cell derived name. The media
// phase then scans the container's xl/media/ entries and writes any payload
// whose content hash was not already written, catching images the anchor walk
// misses. A failure on a single item is logged and counted; it never aborts
// the rest of the run.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sheetlens/sheetlens/content"
	"github.com/sheetlens/sheetlens/inspect"
	"github.com/sheetlens/sheetlens/stats"
	"github.com/sheetlens/sheetlens/workbook"
)

// ErrUnknownLayout is returned for layout names ParseLayout does not know.
var ErrUnknownLayout = errors.New("unknown output layout")

// Layout selects how extracted files are named inside the output directory.
type Layout int

const (
	// LayoutSheetCell names files "{sheet}_{cell}_{index}{ext}", with media
	// fallback entries keeping their container base name.
	LayoutSheetCell Layout = iota
	// LayoutContentAddressed names files by their content hash under
	// bucket/subbucket directories.
	LayoutContentAddressed
)

// ParseLayout maps a CLI layout name to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(s) {
	case "", "sheet-cell":
		return LayoutSheetCell, nil
	case "content", "content-addressed":
		return LayoutContentAddressed, nil
	default:
		return LayoutSheetCell, fmt.Errorf("%q: %w", s, ErrUnknownLayout)
	}
}

// Options controls an extraction run.
type Options struct {
	// OutDir is the directory extracted images are written to. It is
	// created if missing.
	OutDir string
	// Layout selects the file naming scheme.
	Layout Layout
	// SkipDuplicates drops anchored pictures whose content hash was already
	// written. The media phase always deduplicates against written hashes.
	SkipDuplicates bool
	// Inspect enriches each written record with image metadata.
	Inspect bool
	// Counter, when set, adds the base64 token cost of each payload to its
	// record.
	Counter stats.Counter
}

// Record describes one extracted item.
type Record struct {
	Sheet        string        `json:"sheet,omitempty"`
	Cell         string        `json:"cell,omitempty"`
	Source       string        `json:"source"`
	File         string        `json:"file,omitempty"`
	OK           bool          `json:"ok"`
	Duplicate    bool          `json:"duplicate,omitempty"`
	Base64Tokens int           `json:"base64_tokens,omitempty"`
	Error        string        `json:"error,omitempty"`
	Info         *inspect.Info `json:"info,omitempty"`
}

// Result accumulates the records and counters of one run.
type Result struct {
	Records []Record `json:"records"`
	Found   int      `json:"found"`
	Saved   int      `json:"saved"`
	Failed  int      `json:"failed"`
	Skipped int      `json:"skipped"`
}

// Run extracts all embedded images from the workbook into opts.OutDir.
func Run(wb *workbook.Workbook, opts Options) (*Result, error) {
	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", opts.OutDir, err)
	}

	res := &Result{}
	seen := make(map[string]string) // content hash -> written path

	pictures, err := wb.Pictures()
	if err != nil {
		// The media phase can still recover payloads from the container.
		log.Warn("anchor walk failed, falling back to media scan", "err", err)
	}
	for _, pic := range pictures {
		res.Found++
		hash, _ := content.Hash(bytes.NewReader(pic.Data))
		rec := Record{Sheet: pic.Sheet, Cell: pic.Cell, Source: "anchor"}

		if prev, ok := seen[hash]; ok && opts.SkipDuplicates {
			rec.Duplicate = true
			rec.OK = true
			rec.File = prev
			res.Skipped++
			res.Records = append(res.Records, rec)
			continue
		}

		name := anchorName(pic)
		if opts.Layout == LayoutContentAddressed {
			name = bucketName(hash, pic.Extension)
		}
		writeItem(&rec, res, opts, name, pic.Data)
		if rec.OK {
			seen[hash] = rec.File
		}
		res.Records = append(res.Records, rec)
	}

	entries, err := wb.MediaEntries()
	if err != nil {
		if errors.Is(err, workbook.ErrNoMedia) {
			return res, nil
		}
		return res, err
	}
	for _, entry := range entries {
		hash, _ := content.Hash(bytes.NewReader(entry.Data))
		if _, ok := seen[hash]; ok {
			// Already written by the anchor phase.
			log.Debug("media entry already extracted, skipping", "entry", entry.EntryPath)
			continue
		}
		res.Found++
		rec := Record{Source: "media"}

		name := entry.Name
		if opts.Layout == LayoutContentAddressed {
			name = bucketName(hash, filepath.Ext(entry.Name))
		}
		writeItem(&rec, res, opts, name, entry.Data)
		if rec.OK {
			seen[hash] = rec.File
		}
		res.Records = append(res.Records, rec)
	}

	return res, nil
}

// writeItem writes one payload under opts.OutDir and fills the record's
// outcome fields.
func writeItem(rec *Record, res *Result, opts Options, name string, data []byte) {
	path := filepath.Join(opts.OutDir, name)
	if dir := filepath.Dir(path); dir != opts.OutDir {
		if err := os.MkdirAll(dir, 0755); err != nil {
			rec.Error = err.Error()
			res.Failed++
			return
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Warn("failed to write image", "file", path, "err", err)
		rec.Error = err.Error()
		res.Failed++
		return
	}
	log.Debug("saved image", "file", path, "bytes", len(data))

	rec.File = path
	rec.OK = true
	res.Saved++

	if opts.Counter != nil {
		rec.Base64Tokens = stats.Base64Tokens(data, opts.Counter)
	}
	if opts.Inspect {
		info, err := inspect.File(path)
		if err != nil {
			log.Warn("inspection failed", "file", path, "err", err)
			return
		}
		rec.Info = info
	}
}

// anchorName builds the "{sheet}_{cell}_{index}{ext}" file name.
func anchorName(pic workbook.Picture) string {
	return fmt.Sprintf("%s_%s_%d%s", sanitize(pic.Sheet), pic.Cell, pic.Index, pic.Extension)
}

// bucketName builds the content-addressed relative path.
func bucketName(hash, ext string) string {
	bp := content.BucketPath(hash)
	prefix, err := content.DirPrefixFromBucketPath(bp)
	if err != nil {
		return bp + ext
	}
	return filepath.Join(prefix, bp+ext)
}

// sanitize replaces path-hostile characters in sheet names.
var sanitizer = strings.NewReplacer("/", "_", "\\", "_", ":", "_", " ", "_")

func sanitize(s string) string {
	return sanitizer.Replace(s)
}
