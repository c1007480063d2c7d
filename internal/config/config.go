package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-mdpdf/internal/assets"
	"github.com/alnah/go-mdpdf/internal/dateutil"
	"github.com/alnah/go-mdpdf/internal/fileutil"
	"github.com/alnah/go-mdpdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
	ErrWrapWidth       = errors.New("wrap width out of range")
)

// Field length limits.
const (
	MaxTitleLength     = 500  // Cover title
	MaxSignatureLength = 500  // Cover signature
	MaxTextLength      = 500  // Footer text
	MaxDateLength      = 60   // "auto:[Issued] MMMM D, YYYY"
	MaxPathLength      = 4096 // Default directories
	MaxStyleLength     = 100  // Preview stylesheet name
)

// Wrap width bounds in characters.
const (
	MinWrapWidth = 1
	MaxWrapWidth = 500
)

// configDirName is the directory searched under the user config directory.
const configDirName = "go-mdpdf"

// NotFoundError reports a config name that matched no file.
// It matches ErrConfigNotFound with errors.Is.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: tried %s", ErrConfigNotFound, strings.Join(e.Tried, ", "))
}

// Is reports whether target is ErrConfigNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrConfigNotFound
}

// Config holds all configuration for document generation.
type Config struct {
	Timeout  string         `yaml:"timeout"` // Per-document timeout, e.g. "30s" (empty = default)
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	Footer   FooterConfig   `yaml:"footer"`
	Layout   LayoutConfig   `yaml:"layout"`
	HTML     HTMLConfig     `yaml:"html"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// DocumentConfig overrides what is read from the markdown.
type DocumentConfig struct {
	Title     string `yaml:"title"`     // Empty = first "# " heading
	Signature string `yaml:"signature"` // Empty = "Signature:" line
	Date      string `yaml:"date"`      // "auto", "auto:FORMAT" or YYYY-MM-DD
}

// FooterConfig defines page footer options.
type FooterConfig struct {
	Text string `yaml:"text"` // Empty = last line of the document

	// DetectLastLine takes the last line as footer text when Text is empty.
	// Unset means true.
	DetectLastLine *bool `yaml:"detectLastLine"`
}

// DetectsLastLine reports whether the last line is taken as footer text.
func (f FooterConfig) DetectsLastLine() bool {
	return f.DetectLastLine == nil || *f.DetectLastLine
}

// LayoutConfig defines body layout options.
type LayoutConfig struct {
	WrapWidth int `yaml:"wrapWidth"` // 0 = default (80)
}

// HTMLConfig defines HTML preview options.
type HTMLConfig struct {
	Enabled   bool   `yaml:"enabled"`   // Write an HTML preview next to the PDF
	Only      bool   `yaml:"only"`      // Write only the HTML preview
	Style     string `yaml:"style"`     // Stylesheet name (empty = "default")
	AssetsDir string `yaml:"assetsDir"` // Directory with styles/{name}.css overrides
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.signature", c.Document.Signature, MaxSignatureLength},
		{"document.date", c.Document.Date, MaxDateLength},
		{"timeout", c.Timeout, MaxDateLength},
		{"footer.text", c.Footer.Text, MaxTextLength},
		{"html.style", c.HTML.Style, MaxStyleLength},
		{"html.assetsDir", c.HTML.AssetsDir, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if _, err := dateutil.ParseDate(c.Document.Date, time.Now()); err != nil {
		return fmt.Errorf("%w: document.date: %w", ErrInvalidValue, err)
	}

	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("%w: timeout: %v", ErrInvalidValue, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: timeout: must be positive, got %s", ErrInvalidValue, c.Timeout)
		}
	}

	if c.HTML.Style != "" {
		if err := assets.ValidateAssetName(c.HTML.Style); err != nil {
			return fmt.Errorf("%w: html.style: %w", ErrInvalidValue, err)
		}
	}

	if w := c.Layout.WrapWidth; w != 0 && (w < MinWrapWidth || w > MaxWrapWidth) {
		return fmt.Errorf("%w: layout.wrapWidth: %w: must be between %d and %d, got %d",
			ErrInvalidValue, ErrWrapWidth, MinWrapWidth, MaxWrapWidth, w)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that extracts everything from the
// markdown and writes only the PDF.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{DefaultDir: ""},
		Output: OutputConfig{DefaultDir: ""},
		Layout: LayoutConfig{WrapWidth: 0},
		HTML:   HTMLConfig{Enabled: false},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-mdpdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", &NotFoundError{Name: name, Tried: triedPaths}
}
