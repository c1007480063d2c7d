// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdpdf/internal/fileutil"
)

// configDirMarker identifies the user config directory among searched paths.
var configDirMarker = string(filepath.Separator) + "go-mdpdf" + string(filepath.Separator)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large documents, use --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, configDirMarker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInputNotFound returns hints when no markdown input could be located.
func ForInputNotFound() string {
	var hints []string
	hints = append(hints, "pass a .md file or a directory of .md files")
	if os.Getenv("MDPDF_INPUT_DIR") == "" {
		hints = append(hints, "set MDPDF_INPUT_DIR or input.defaultDir to convert a default directory")
	}
	return formatHints(hints)
}

// ForOutputDirectory returns hints for output directory creation errors.
// Inside a container, the output directory is usually a missing volume mount.
func ForOutputDirectory() string {
	hints := []string{"check parent directory exists and is writable"}
	if IsInContainer() {
		hints = append(hints, "mount the output directory as a volume")
	}
	return formatHints(hints)
}

// ForInvalidDate returns hints listing the accepted date forms.
func ForInvalidDate() string {
	return format("use YYYY-MM-DD, auto, or auto:FORMAT (presets: iso, european, us, long)")
}

// ForWrapWidth returns hints for an out-of-range wrap width.
func ForWrapWidth(minWidth, maxWidth int) string {
	return format(fmt.Sprintf("use --wrap-width between %d and %d", minWidth, maxWidth))
}

// ForPreviewStyle returns hints for an unknown or unreadable preview style.
func ForPreviewStyle(builtIn []string) string {
	return format(fmt.Sprintf("use --html-style with one of %s, or put <name>.css under <asset-path>/styles/",
		strings.Join(builtIn, ", ")))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
