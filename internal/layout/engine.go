package layout

import (
	"strconv"
	"strings"
)

// Options tune a pagination pass.
type Options struct {
	WrapWidth int // prose width in characters; <= 0 means DefaultWrapWidth
}

// DefaultOptions returns the standard layout options.
func DefaultOptions() Options {
	return Options{WrapWidth: DefaultWrapWidth}
}

// engine owns the cursor and output buffers for one pass.
type engine struct {
	cur   Cursor
	meta  Metadata
	width int
	pages [][]Instruction
	toc   []TOCEntry
}

// Paginate lays out the body of a document. Lines equal to meta.FooterText and
// signature lines are skipped. The returned Result has empty cover and TOC pages;
// see Compose for the complete document.
func Paginate(lines []string, meta Metadata, opts Options) *Result {
	width := opts.WrapWidth
	if width <= 0 {
		width = DefaultWrapWidth
	}

	e := &engine{
		cur:   newCursor(),
		meta:  meta,
		width: width,
		pages: make([][]Instruction, FirstContentPage+1),
	}

	for _, line := range Body(lines, meta) {
		e.feed(line)
	}

	final := e.cur
	e.finishPage()

	return &Result{Pages: e.pages, TOC: e.toc, Final: final}
}

// Body returns the lines that take part in layout: signature lines and lines
// equal to the footer text are left out.
func Body(lines []string, meta Metadata) []string {
	body := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, SignaturePrefix) || line == meta.FooterText {
			continue
		}
		body = append(body, line)
	}
	return body
}

// feed processes one source line.
func (e *engine) feed(line string) {
	e.ensureRoom()

	if strings.TrimSpace(line) == Fence {
		e.cur.InCodeBlock = !e.cur.InCodeBlock
		return
	}

	switch {
	case e.cur.InCodeBlock:
		e.emit(line, CodeSize, BodyX, Monospace)
	case strings.HasPrefix(line, ChapterMarker):
		label := strings.TrimPrefix(line, ChapterMarker)
		e.toc = append(e.toc, TOCEntry{Label: label, PageNumber: e.cur.PageNumber, IsChapter: true})
		e.emit(label, ChapterSize, BodyX, Bold)
	case strings.HasPrefix(line, SubchapterMarker):
		label := strings.TrimPrefix(line, SubchapterMarker)
		e.toc = append(e.toc, TOCEntry{Label: label, PageNumber: e.cur.PageNumber, IsChapter: false})
		e.emit(label, SubchapterSize, SubchapterX, Bold)
	default:
		for _, segment := range Wrap(line, e.width) {
			e.ensureRoom()
			e.emit(segment, BodySize, BodyX, Regular)
		}
	}
}

// ensureRoom starts a new content page when the cursor is below the bottom margin.
func (e *engine) ensureRoom() {
	if e.cur.Y >= BottomMargin {
		return
	}
	e.finishPage()
	e.cur.PageNumber++
	e.cur.PageIndex++
	e.cur.Y = TopMargin
	e.pages = append(e.pages, nil)
}

// emit places text at the cursor and moves it down by the font size.
func (e *engine) emit(text string, size, x float64, style FontStyle) {
	e.pages[e.cur.PageIndex] = append(e.pages[e.cur.PageIndex], Instruction{
		PageIndex: e.cur.PageIndex,
		Text:      text,
		FontSize:  size,
		X:         x,
		Y:         e.cur.Y,
		Style:     style,
		Layer:     BodyLayer,
	})
	e.cur.Y -= size
}

// finishPage writes the footer of the current page.
func (e *engine) finishPage() {
	e.pages[e.cur.PageIndex] = append(e.pages[e.cur.PageIndex], Footer(e.cur.PageIndex, e.cur.PageNumber, e.meta.FooterText))
}

// Footer builds the footer instruction of one content page.
func Footer(pageIndex, pageNumber int, text string) Instruction {
	return Instruction{
		PageIndex: pageIndex,
		Text:      "Page " + strconv.Itoa(pageNumber) + FooterSeparator + text,
		FontSize:  FooterSize,
		X:         FooterX,
		Y:         FooterY,
		Style:     Regular,
		Layer:     FooterLayer,
	}
}
