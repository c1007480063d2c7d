package main

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
)

// ---------------------------------------------------------------------------
// TestDiscoverFiles - Input resolution for files, directories and globs
// ---------------------------------------------------------------------------

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	// pairs are input->output paths relative to the test directory.
	type pair struct{ in, out string }

	tree := map[string]string{
		"a.md":            "# A",
		"notes.txt":       "not markdown",
		"sub/b.markdown":  "# B",
		"sub/deep/c.md":   "# C",
		"empty/readme":    "no extension",
		"single/only.md":  "# Only",
		"upper/DOC.MD":    "# Upper",
		"sub/deep/d.html": "<p>skip</p>",
	}

	tests := []struct {
		name    string
		input   string // relative to the test directory
		output  string // relative to the test directory, "" = beside input
		want    []pair
		wantErr error
	}{
		{
			name:  "single file beside input",
			input: "a.md",
			want:  []pair{{"a.md", "a.pdf"}},
		},
		{
			name:   "single file to explicit pdf",
			input:  "a.md",
			output: "out/report.pdf",
			want:   []pair{{"a.md", "out/report.pdf"}},
		},
		{
			name:   "single file to directory",
			input:  "a.md",
			output: "out",
			want:   []pair{{"a.md", "out/a.pdf"}},
		},
		{
			name:  "uppercase extension",
			input: "upper/DOC.MD",
			want:  []pair{{"upper/DOC.MD", "upper/DOC.pdf"}},
		},
		{
			name:    "non markdown file",
			input:   "notes.txt",
			wantErr: ErrInvalidExtension,
		},
		{
			name:  "directory recursive beside inputs",
			input: "sub",
			want: []pair{
				{"sub/b.markdown", "sub/b.pdf"},
				{"sub/deep/c.md", "sub/deep/c.pdf"},
			},
		},
		{
			name:   "directory mirrored into output",
			input:  "sub",
			output: "out",
			want: []pair{
				{"sub/b.markdown", "out/b.pdf"},
				{"sub/deep/c.md", "out/deep/c.pdf"},
			},
		},
		{
			name:   "directory with one file to pdf",
			input:  "single",
			output: "only.pdf",
			want:   []pair{{"single/only.md", "only.pdf"}},
		},
		{
			name:    "directory with several files to pdf",
			input:   "sub",
			output:  "all.pdf",
			wantErr: ErrOutputNotDir,
		},
		{
			name:    "directory without markdown",
			input:   "empty",
			wantErr: ErrNoMarkdownFiles,
		},
		{
			name:   "recursive glob",
			input:  "**/*.md",
			output: "out",
			want: []pair{
				{"a.md", "out/a.pdf"},
				{"single/only.md", "out/single/only.pdf"},
				{"sub/deep/c.md", "out/sub/deep/c.pdf"},
			},
		},
		{
			name:  "glob below a base directory",
			input: "sub/*.markdown",
			want:  []pair{{"sub/b.markdown", "sub/b.pdf"}},
		},
		{
			name:    "glob without matches",
			input:   "sub/*.rst",
			wantErr: ErrNoMarkdownFiles,
		},
		{
			name:    "malformed glob",
			input:   "sub/[.md",
			wantErr: doublestar.ErrBadPattern,
		},
		{
			name:    "missing path",
			input:   "missing.md",
			wantErr: os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := setupTestDir(t, tree)
			abs := func(rel string) string {
				if rel == "" {
					return ""
				}
				return filepath.Join(dir, filepath.FromSlash(rel))
			}

			got, err := discoverFiles(abs(tt.input), abs(tt.output))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("discoverFiles() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("discoverFiles() unexpected error: %v", err)
			}

			sort.Slice(got, func(i, j int) bool { return got[i].InputPath < got[j].InputPath })
			if len(got) != len(tt.want) {
				t.Fatalf("discoverFiles() returned %d files, want %d: %+v", len(got), len(tt.want), got)
			}
			for i, w := range tt.want {
				if got[i].InputPath != abs(w.in) {
					t.Errorf("file[%d].InputPath = %q, want %q", i, got[i].InputPath, abs(w.in))
				}
				if got[i].OutputPath != abs(w.out) {
					t.Errorf("file[%d].OutputPath = %q, want %q", i, got[i].OutputPath, abs(w.out))
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolveOutputPath - PDF path derivation
// ---------------------------------------------------------------------------

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		inputPath string
		outputDir string
		baseDir   string
		want      string
	}{
		{"no output dir", "docs/a.md", "", "", "docs/a.pdf"},
		{"markdown extension", "docs/a.markdown", "", "", "docs/a.pdf"},
		{"explicit pdf", "docs/a.md", "out/x.pdf", "", "out/x.pdf"},
		{"explicit pdf uppercase", "docs/a.md", "out/X.PDF", "", "out/X.PDF"},
		{"flat output dir", "docs/a.md", "out", "", "out/a.pdf"},
		{"mirrored output dir", "docs/sub/a.md", "out", "docs", "out/sub/a.pdf"},
		{"file at base", "docs/a.md", "out", "docs", "out/a.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveOutputPath(filepath.FromSlash(tt.inputPath), filepath.FromSlash(tt.outputDir), filepath.FromSlash(tt.baseDir))
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("resolveOutputPath(%q, %q, %q) = %q, want %q",
					tt.inputPath, tt.outputDir, tt.baseDir, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsGlob / TestIsPDFPath / TestHTMLOutputPath - Path predicates
// ---------------------------------------------------------------------------

func TestIsGlob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"docs/*.md", true},
		{"docs/**", true},
		{"doc?.md", true},
		{"doc[12].md", true},
		{"{a,b}.md", true},
		{"docs/a.md", false},
		{"docs", false},
	}

	for _, tt := range tests {
		if got := isGlob(tt.input); got != tt.want {
			t.Errorf("isGlob(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsPDFPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"out.pdf", true},
		{"out/Report.PDF", true},
		{"out", false},
		{"out/pdf", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isPDFPath(tt.input); got != tt.want {
			t.Errorf("isPDFPath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestHTMLOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"out/doc.pdf", "out/doc.html"},
		{"doc.pdf", "doc.html"},
		{"noext", "noext.html"},
	}

	for _, tt := range tests {
		if got := htmlOutputPath(tt.input); got != tt.want {
			t.Errorf("htmlOutputPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestValidateWorkers - Worker count bounds
// ---------------------------------------------------------------------------

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"auto", 0, false},
		{"one", 1, false},
		{"max", 16, false},
		{"negative", -1, true},
		{"above max", 17, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateWorkers(tt.n)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidWorkerCount) {
					t.Errorf("validateWorkers(%d) error = %v, want ErrInvalidWorkerCount", tt.n, err)
				}
				return
			}
			if err != nil {
				t.Errorf("validateWorkers(%d) unexpected error: %v", tt.n, err)
			}
		})
	}
}
