package mdpdf

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Wrap width bounds in characters.
const (
	MinWrapWidth     = 1
	MaxWrapWidth     = 500
	DefaultWrapWidth = 80
)

// MaxFieldLength caps title, signature and footer overrides.
const MaxFieldLength = 500

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content; empty yields cover, TOC and one blank page

	Title      string // overrides the first "# " heading (optional)
	Signature  string // overrides the "Signature:" line (optional)
	FooterText string // overrides the footer text (optional)

	// KeepLastLine stops the last line from being taken as the footer text.
	// The line is then laid out like any other.
	KeepLastLine bool

	// Date is "", "auto", "auto:FORMAT" or YYYY-MM-DD. It sets the PDF
	// creation date; empty means a fixed date so output is reproducible.
	Date string

	HTML     bool // also render the HTML preview
	HTMLOnly bool // render the HTML preview and skip the PDF
}

// validate checks field lengths. Date syntax is checked when resolved.
func (in *Input) validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"title", in.Title},
		{"signature", in.Signature},
		{"footer text", in.FooterText},
	}
	for _, f := range fields {
		if n := utf8.RuneCountInString(f.value); n > MaxFieldLength {
			return fmt.Errorf("%w: %s has %d characters (max %d)", ErrFieldTooLong, f.name, n, MaxFieldLength)
		}
	}
	return nil
}

// Metadata is the title, signature and footer text the document was laid out with.
type Metadata struct {
	Title      string
	Signature  string
	FooterText string
}

// TOCEntry is one table of contents line.
type TOCEntry struct {
	Label      string
	PageNumber int
	IsChapter  bool // false for subchapters
}

// ConvertResult contains the output of a conversion.
type ConvertResult struct {
	PDF      []byte // nil when Input.HTMLOnly
	HTML     []byte // nil unless Input.HTML or Input.HTMLOnly
	Metadata Metadata
	TOC      []TOCEntry
	Pages    int // total page count including cover and TOC
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout   time.Duration
	wrapWidth int
	creator   string
	style     string // HTML preview stylesheet name
	assetPath string // directory searched for styles before the built-in ones
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// defaultCreator is written to the PDF creator field.
const defaultCreator = "go-mdpdf"

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdpdf: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithWrapWidth sets the prose wrap width in characters.
// NewConverter rejects values outside [MinWrapWidth, MaxWrapWidth].
func WithWrapWidth(n int) Option {
	return func(c *Converter) {
		c.cfg.wrapWidth = n
	}
}

// WithCreator sets the PDF creator field. Empty leaves it unset.
func WithCreator(name string) Option {
	return func(c *Converter) {
		c.cfg.creator = name
	}
}

// WithPreviewStyle selects the HTML preview stylesheet by name.
// Built-in styles are "default" and "print". Empty keeps "default".
func WithPreviewStyle(name string) Option {
	return func(c *Converter) {
		if name != "" {
			c.cfg.style = name
		}
	}
}

// WithAssetPath sets a directory holding styles/{name}.css files.
// Styles missing there fall back to the built-in ones.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithClock sets the time source used to resolve "auto" dates.
// A nil function keeps the wall clock.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		if now != nil {
			c.now = now
		}
	}
}
