package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// maxReadConcurrency bounds the number of files read in parallel.
const maxReadConcurrency = 8

// IsCandidate reports whether a file name matches one of the recognized
// log formats.
func IsCandidate(name string) bool {
	return strings.HasSuffix(name, ".jsonl") || strings.HasSuffix(name, ".json")
}

// ReadDir walks dir and reads every recognized log file found. Files that
// cannot be read are skipped with a warning on stderr; they never abort
// the walk. A missing directory is an error.
func ReadDir(dir string, progress ProgressFunc) ([]File, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree: skip it, keep walking.
			fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && IsCandidate(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ReadFiles(paths, progress)
}

// ReadFiles reads the given files concurrently and returns their contents
// in the same order as paths. Unreadable files are skipped with a warning
// on stderr. Non-candidate names are filtered out.
func ReadFiles(paths []string, progress ProgressFunc) ([]File, error) {
	progress.emit("Reading files...")

	results := make([]*File, len(paths))

	var g errgroup.Group
	g.SetLimit(maxReadConcurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			name := filepath.Base(path)
			if !IsCandidate(name) {
				return nil
			}
			data, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", path, err)
				return nil
			}
			results[i] = &File{Name: name, Path: path, Content: string(data)}
			return nil
		})
	}
	// Workers never return errors; skipped files just leave nil slots.
	_ = g.Wait()

	files := make([]File, 0, len(results))
	for _, f := range results {
		if f != nil {
			files = append(files, *f)
		}
	}
	return files, nil
}
