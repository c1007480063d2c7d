package layout

import "strings"

// Metadata defaults.
const (
	DefaultTitle      = "Untitled"
	DefaultSignature  = "___________________"
	DefaultFooterText = "Generated with Markdown to PDF"
)

// Metadata is derived once per document before pagination.
type Metadata struct {
	Title      string
	Signature  string
	FooterText string
}

// Overrides replace extracted metadata. Empty strings mean "extract".
type Overrides struct {
	Title      string
	Signature  string
	FooterText string

	// DetectFooter makes the last line of the document the footer text when
	// FooterText is empty. Lines equal to the footer text are left out of the body.
	DetectFooter bool
}

// DefaultOverrides extracts everything, including the last-line footer.
func DefaultOverrides() Overrides {
	return Overrides{DetectFooter: true}
}

// ExtractTitle returns the text of the first level-1 heading.
func ExtractTitle(lines []string) (string, bool) {
	for _, line := range lines {
		if strings.HasPrefix(line, ChapterMarker) {
			return strings.TrimPrefix(line, ChapterMarker), true
		}
	}
	return "", false
}

// ExtractSignature returns the trimmed remainder of the first "Signature:" line.
func ExtractSignature(lines []string) (string, bool) {
	for _, line := range lines {
		if strings.HasPrefix(line, SignaturePrefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, SignaturePrefix)), true
		}
	}
	return "", false
}

// ExtractFooter returns the last line, trimmed. The choice is positional:
// whatever closes the document becomes the footer, blank or not.
func ExtractFooter(lines []string) (string, bool) {
	if len(lines) == 0 {
		return "", false
	}
	return strings.TrimSpace(lines[len(lines)-1]), true
}

// ExtractMetadata runs the three scans and fills in defaults.
func ExtractMetadata(lines []string, o Overrides) Metadata {
	meta := Metadata{
		Title:      DefaultTitle,
		Signature:  DefaultSignature,
		FooterText: DefaultFooterText,
	}

	if o.Title != "" {
		meta.Title = o.Title
	} else if title, ok := ExtractTitle(lines); ok {
		meta.Title = title
	}

	if o.Signature != "" {
		meta.Signature = o.Signature
	} else if sig, ok := ExtractSignature(lines); ok {
		meta.Signature = sig
	}

	switch {
	case o.FooterText != "":
		meta.FooterText = o.FooterText
	case o.DetectFooter:
		if footer, ok := ExtractFooter(lines); ok {
			meta.FooterText = footer
		}
	}

	return meta
}
