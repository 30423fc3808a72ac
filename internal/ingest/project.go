package ingest

import (
	"path/filepath"
	"strings"
)

// UnknownProject is the sentinel project name used when no name can be
// derived from a path.
const UnknownProject = "unknown"

// projectMarkers are conventional parent-directory names; the segment
// immediately after a marker is taken as the project name.
var projectMarkers = []string{"work", "projects", "repos", "code", "dev", "src"}

// ProjectName derives a short project name from a path-like string.
// It looks for a marker directory (case-insensitive) and returns the next
// segment; otherwise it returns the last meaningful segment with any file
// extension stripped. An empty path yields UnknownProject.
func ProjectName(path string) string {
	if path == "" {
		return UnknownProject
	}

	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})

	for _, marker := range projectMarkers {
		for i, p := range parts {
			if strings.EqualFold(p, marker) && i < len(parts)-1 {
				return parts[i+1]
			}
		}
	}

	// Fall back to the last segment that is not "." or "..".
	last := ""
	for _, p := range parts {
		if p != "" && p != "." && p != ".." {
			last = p
		}
	}
	if last == "" {
		return UnknownProject
	}

	// A trailing file name contributes its stem, not its extension.
	if ext := filepath.Ext(last); ext != "" && ext != last {
		last = strings.TrimSuffix(last, ext)
	}
	return last
}
