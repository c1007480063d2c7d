package hints

// Notes:
// - ForOutputDirectory and ForInputNotFound tests cannot use t.Parallel() because they:
//   1. Use t.Setenv() which modifies process environment
//   2. Modify the package-level IsInContainer variable

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestForTimeout(t *testing.T) {
	hint := ForTimeout()

	if !strings.Contains(hint, "hint:") {
		t.Error("expected hint prefix")
	}
	if !strings.Contains(hint, "--timeout") {
		t.Error("expected --timeout flag mention")
	}
}

func TestForConfigNotFound(t *testing.T) {
	userPath := filepath.Join(string(filepath.Separator)+"home", ".config", "go-mdpdf", "foo.yaml")

	tests := []struct {
		name        string
		paths       []string
		contains    string
		notContains string
	}{
		{
			name:        "empty paths",
			paths:       []string{},
			contains:    "--config",
			notContains: "create",
		},
		{
			name:     "with user config path",
			paths:    []string{"foo.yaml", "foo.yml", userPath},
			contains: "create " + userPath,
		},
		{
			name:        "only local paths",
			paths:       []string{"foo.yaml", "foo.yml"},
			contains:    "--config",
			notContains: "create",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := ForConfigNotFound(tt.paths)

			if !strings.Contains(hint, "hint:") {
				t.Error("expected hint prefix")
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
			if tt.notContains != "" && strings.Contains(hint, tt.notContains) {
				t.Errorf("expected hint not to contain %q, got %q", tt.notContains, hint)
			}
		})
	}
}

func TestForInputNotFound_EnvUnset(t *testing.T) {
	t.Setenv("MDPDF_INPUT_DIR", "")

	hint := ForInputNotFound()

	if !strings.Contains(hint, ".md") {
		t.Error("expected .md mention")
	}
	if !strings.Contains(hint, "MDPDF_INPUT_DIR") {
		t.Error("expected MDPDF_INPUT_DIR suggestion")
	}
}

func TestForInputNotFound_EnvSet(t *testing.T) {
	t.Setenv("MDPDF_INPUT_DIR", "/docs")

	hint := ForInputNotFound()

	if strings.Contains(hint, "MDPDF_INPUT_DIR") {
		t.Errorf("unexpected MDPDF_INPUT_DIR suggestion: %q", hint)
	}
}

func TestForOutputDirectory(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()

	tests := []struct {
		name        string
		inContainer bool
		wantVolume  bool
	}{
		{"host", false, false},
		{"container", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			IsInContainer = func() bool { return tt.inContainer }

			hint := ForOutputDirectory()

			if !strings.Contains(hint, "parent directory") {
				t.Error("expected parent directory mention")
			}
			if got := strings.Contains(hint, "volume"); got != tt.wantVolume {
				t.Errorf("volume mention = %v, want %v (hint %q)", got, tt.wantVolume, hint)
			}
		})
	}
}

func TestForInvalidDate(t *testing.T) {
	hint := ForInvalidDate()

	for _, want := range []string{"YYYY-MM-DD", "auto:FORMAT", "long"} {
		if !strings.Contains(hint, want) {
			t.Errorf("expected hint to contain %q, got %q", want, hint)
		}
	}
}

func TestForWrapWidth(t *testing.T) {
	hint := ForWrapWidth(1, 500)

	if !strings.Contains(hint, "between 1 and 500") {
		t.Errorf("expected bounds in hint, got %q", hint)
	}
}

func TestForPreviewStyle(t *testing.T) {
	hint := ForPreviewStyle([]string{"default", "print"})

	if !strings.Contains(hint, "default, print") || !strings.Contains(hint, "--html-style") {
		t.Errorf("expected styles and flag in hint, got %q", hint)
	}
}

func TestFormat_Consistency(t *testing.T) {
	// All hints should start with newline, spaces, and "hint:"
	hints := []string{
		ForTimeout(),
		ForConfigNotFound(nil),
		ForInputNotFound(),
		ForOutputDirectory(),
		ForInvalidDate(),
		ForWrapWidth(1, 500),
		ForPreviewStyle([]string{"default"}),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}

func TestFormatHints_Empty(t *testing.T) {
	t.Parallel()

	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
}
