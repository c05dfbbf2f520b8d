package cmd

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/sheetlens/sheetlens/inspect"
	"github.com/spf13/cobra"
)

// NewInspectCmd creates and returns the inspect subcommand for the sheetlens CLI.
// It inspects image files already on disk, outside any workbook.
func NewInspectCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "inspect PATH...",
		Short: "Inspect image files on disk",
		Long: `Inspect image files and print their metadata: size, content hash, MIME
type, pixel dimensions, color characteristics, and EXIF subset.

Directory arguments are walked recursively. Files that are not decodable
images still report their basic fields.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runInspect(args, jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print results as JSON instead of a table")

	return cmd
}

func runInspect(paths []string, jsonOut bool) {
	files := gatherFiles(paths)

	infos := make([]*inspect.Info, 0, len(files))
	for _, file := range files {
		info, err := inspect.File(file)
		if err != nil {
			log.Warn("failed to inspect file", "file", file, "err", err)
			continue
		}
		infos = append(infos, info)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(infos); err != nil {
			log.Fatal("failed to encode results", "err", err)
		}
		return
	}

	fmt.Println("file\tformat\tdimensions\tbytes\tsha256")
	for _, info := range infos {
		format := info.Format
		if format == "" {
			format = "-"
		}
		fmt.Printf("%s\t%s\t%dx%d\t%d\t%s\n",
			info.Path, format, info.Width, info.Height, info.SizeBytes, info.SHA256)
	}
}

// gatherFiles expands directory arguments into the files they contain.
func gatherFiles(paths []string) []string {
	var files []string
	for _, path := range paths {
		stat, err := os.Stat(path)
		if err != nil {
			log.Warn("skipping path", "path", path, "err", err)
			continue
		}
		if !stat.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(sub string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				files = append(files, sub)
			}
			return nil
		})
		if err != nil {
			log.Warn("failed to walk directory", "path", path, "err", err)
		}
	}
	return files
}
