package ingest

import "testing"

func TestProjectName_MarkerDirectories(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/Users/a/Work/my-app/file.ts", "my-app"},
		{"/Users/a/work/my-app", "my-app"},
		{"/home/u/projects/backend", "backend"},
		{"/home/u/repos/tooling/sub", "tooling"},
		{"/home/u/code/cli", "cli"},
		{"/home/u/dev/site", "site"},
		{"/opt/src/kernel", "kernel"},
	}
	for _, c := range cases {
		if got := ProjectName(c.path); got != c.want {
			t.Errorf("ProjectName(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestProjectName_LastSegmentFallback(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/tmp/x/y.json", "y"},
		{"/tmp/x", "x"},
		{"standalone", "standalone"},
		{"export.json", "export"},
		{"/a/./../b", "b"},
	}
	for _, c := range cases {
		if got := ProjectName(c.path); got != c.want {
			t.Errorf("ProjectName(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestProjectName_Empty(t *testing.T) {
	if got := ProjectName(""); got != UnknownProject {
		t.Errorf("ProjectName(\"\") = %q, want %q", got, UnknownProject)
	}
	if got := ProjectName("///"); got != UnknownProject {
		t.Errorf("ProjectName(\"///\") = %q, want %q", got, UnknownProject)
	}
}

func TestProjectName_DotfileKeepsName(t *testing.T) {
	// A segment that is entirely an "extension" is kept as-is.
	if got := ProjectName("/home/u/.claude"); got != ".claude" {
		t.Errorf("ProjectName(/home/u/.claude) = %q, want %q", got, ".claude")
	}
}

func TestProjectName_WindowsSeparators(t *testing.T) {
	if got := ProjectName(`C:\Users\a\work\my-app`); got != "my-app" {
		t.Errorf("got %q, want my-app", got)
	}
}
