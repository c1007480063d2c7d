package layout

import "strings"

// Page geometry in millimetres.
const (
	PageWidth  = 210.0
	PageHeight = 297.0
)

// Body flow constants.
const (
	TopMargin      = 270.0 // cursor value on a fresh content page
	BottomMargin   = 20.0  // cursor below this starts a new page
	BodyX          = 15.0
	SubchapterX    = 25.0
	ChapterSize    = 24.0
	SubchapterSize = 18.0
	BodySize       = 12.0
	CodeSize       = 10.0
)

// DefaultWrapWidth is the prose wrap width in characters.
const DefaultWrapWidth = 80

// Cover, TOC and footer placement.
const (
	CoverTitleX    = 20.0
	CoverTitleY    = 250.0
	CoverTitleSize = 32.0
	SignatureX     = 20.0
	SignatureY     = 100.0
	SignatureSize  = 16.0

	TOCHeader       = "Table of Contents"
	TOCHeaderX      = 15.0
	TOCHeaderY      = 270.0
	TOCHeaderSize   = 28.0
	TOCStartY       = 250.0
	TOCStep         = 14.0
	TOCEntrySize    = 14.0
	TOCChapterX     = 20.0
	TOCSubchapterX  = 30.0
	TOCLeader       = " .......................... "
	FooterX         = 10.0
	FooterY         = 10.0
	FooterSize      = 10.0
	FooterSeparator = "  |  "
)

// Page indices of the fixed front matter.
const (
	CoverPage        = 0
	TOCPage          = 1
	FirstContentPage = 2

	// FirstPageNumber is the printed number of the first content page.
	FirstPageNumber = FirstContentPage + 1
)

// Line markers.
const (
	ChapterMarker    = "# "
	SubchapterMarker = "## "
	Fence            = "```"
	SignaturePrefix  = "Signature:"
)

// FontStyle selects one of the three fonts registered with the document.
type FontStyle int

// Supported font styles.
const (
	Regular FontStyle = iota
	Bold
	Monospace
)

func (s FontStyle) String() string {
	switch s {
	case Regular:
		return "regular"
	case Bold:
		return "bold"
	case Monospace:
		return "monospace"
	default:
		return "unknown"
	}
}

// Layer separates footers from body content on a page.
type Layer int

// Page layers.
const (
	BodyLayer Layer = iota
	FooterLayer
)

// Instruction places one run of text on one page.
type Instruction struct {
	PageIndex int
	Text      string
	FontSize  float64
	X         float64
	Y         float64
	Style     FontStyle
	Layer     Layer
}

// TOCEntry references a heading and the page it landed on.
type TOCEntry struct {
	Label      string
	PageNumber int
	IsChapter  bool
}

// Cursor is the mutable state of one pagination pass.
type Cursor struct {
	PageIndex   int
	Y           float64
	InCodeBlock bool
	PageNumber  int
}

func newCursor() Cursor {
	return Cursor{
		PageIndex:  FirstContentPage,
		Y:          TopMargin,
		PageNumber: FirstPageNumber,
	}
}

// Result is the output of Paginate.
type Result struct {
	// Pages holds the instructions of every page, indexed by page index.
	// The cover and TOC pages are always present.
	Pages [][]Instruction

	// TOC lists headings in source order.
	TOC []TOCEntry

	// Final is the cursor state after the last line, before the closing footer.
	Final Cursor
}

// PageCount returns the number of pages including the cover and TOC.
func (r *Result) PageCount() int {
	return len(r.Pages)
}

// Footers returns the footer instructions in page order.
func (r *Result) Footers() []Instruction {
	var out []Instruction
	for _, page := range r.Pages {
		for _, ins := range page {
			if ins.Layer == FooterLayer {
				out = append(out, ins)
			}
		}
	}
	return out
}

// SplitLines splits text into lines the way a line iterator does: on "\n",
// dropping one trailing "\r" per line, with no empty line after a final newline.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
