package report

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// bundleReportName is the archive entry holding the serialized report.
const bundleReportName = "report.json"

// Bundle writes the extracted files under dir plus the serialized report
// into a single zip archive at dest. Entry names are relative to dir. When
// dest lives inside dir, the half-written archive is excluded from the walk.
func (r *Report) Bundle(dir, dest string) error {
	destAbs, err := filepath.Abs(dest)
	if err != nil {
		return err
	}
	os.Remove(dest)
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()
	w := zip.NewWriter(file)

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if abs, absErr := filepath.Abs(path); absErr == nil && abs == destAbs {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		f, openErr := os.Open(path)
		if openErr != nil {
			return openErr
		}
		defer f.Close()
		writer, createErr := w.Create(filepath.ToSlash(rel))
		if createErr != nil {
			return createErr
		}
		_, copyErr := io.Copy(writer, f)
		return copyErr
	})
	if err != nil {
		w.Close()
		return fmt.Errorf("bundle %s: %w", dir, err)
	}

	writer, err := w.Create(bundleReportName)
	if err != nil {
		w.Close()
		return err
	}
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
