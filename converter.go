package mdpdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-mdpdf/internal/assets"
	"github.com/alnah/go-mdpdf/internal/dateutil"
	"github.com/alnah/go-mdpdf/internal/layout"
	"github.com/alnah/go-mdpdf/internal/pipeline"
	"github.com/alnah/go-mdpdf/internal/render"
)

// sinkFactory creates the document sink for one conversion.
type sinkFactory func(info render.Info) render.Sink

// newFPDFSink is the production sinkFactory.
func newFPDFSink(info render.Info) render.Sink {
	return render.NewFPDFSink(info)
}

// Converter orchestrates the markdown-to-PDF conversion pipeline.
// A Converter holds no per-document state and may be reused.
type Converter struct {
	cfg           converterConfig
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	preview       *pipeline.PreviewRenderer
	newSink       sinkFactory
	now           func() time.Time
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithWrapWidth, WithTimeout).
// Returns ErrInvalidWrapWidth if the wrap width is out of range and
// ErrPreviewStyle if the preview stylesheet cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout:   defaultTimeout,
			wrapWidth: DefaultWrapWidth,
			creator:   defaultCreator,
			style:     assets.DefaultStyleName,
		},
		preprocessor:  &pipeline.Normalizer{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		newSink:       newFPDFSink,
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.wrapWidth < MinWrapWidth || c.cfg.wrapWidth > MaxWrapWidth {
		return nil, fmt.Errorf("%w: %d (must be between %d and %d)",
			ErrInvalidWrapWidth, c.cfg.wrapWidth, MinWrapWidth, MaxWrapWidth)
	}

	resolver, err := assets.NewResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPreviewStyle, err)
	}
	css, err := resolver.LoadStyle(c.cfg.style)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPreviewStyle, err)
	}

	preview, err := pipeline.NewPreviewRenderer(css)
	if err != nil {
		return nil, fmt.Errorf("initializing HTML preview: %w", err)
	}
	c.preview = preview

	return c, nil
}

// Convert lays out the markdown and draws the PDF. The HTML preview is
// rendered as well when input.HTML or input.HTMLOnly is set.
// The context is checked between stages; the converter timeout applies on top of it.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := input.validate(); err != nil {
		return nil, err
	}
	date, err := resolveDate(input.Date, c.now())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	overrides := layout.Overrides{
		Title:        input.Title,
		Signature:    input.Signature,
		FooterText:   input.FooterText,
		DetectFooter: !input.KeepLastLine,
	}
	doc, meta := layout.Compose(mdContent, overrides, layout.Options{WrapWidth: c.cfg.wrapWidth})
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	res := &ConvertResult{
		Metadata: Metadata(meta),
		TOC:      toTOCEntries(doc.TOC),
		Pages:    doc.PageCount(),
	}

	if input.HTML || input.HTMLOnly {
		html, err := c.renderHTML(ctx, mdContent, meta, doc.TOC)
		if err != nil {
			return nil, err
		}
		res.HTML = []byte(html)
	}

	// Skip PDF generation if HTMLOnly mode
	if input.HTMLOnly {
		return res, nil
	}

	pdf, err := c.renderPDF(meta, doc, date)
	if err != nil {
		return nil, err
	}
	res.PDF = pdf
	return res, nil
}

// renderPDF replays the layout on a fresh sink and serializes it.
func (c *Converter) renderPDF(meta layout.Metadata, doc *layout.Result, date dateutil.Date) ([]byte, error) {
	info := render.Info{
		Title:   meta.Title,
		Creator: c.cfg.creator,
		Created: date.Time,
	}
	if meta.Signature != layout.DefaultSignature {
		info.Author = meta.Signature
	}

	sink := c.newSink(info)
	if err := render.Commit(doc, sink); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	var buf bytes.Buffer
	if err := sink.Save(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return buf.Bytes(), nil
}

// renderHTML converts the laid-out body lines and wraps them with the
// cover, TOC, signature and footer of the PDF.
func (c *Converter) renderHTML(ctx context.Context, mdContent string, meta layout.Metadata, toc []layout.TOCEntry) (string, error) {
	body := strings.Join(layout.Body(layout.SplitLines(mdContent), meta), "\n")

	fragment, err := c.htmlConverter.ToHTML(ctx, body)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	html, err := c.preview.Render(ctx, pipeline.Preview{
		Title:      meta.Title,
		Signature:  meta.Signature,
		FooterText: meta.FooterText,
		TOC:        toc,
	}, fragment)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return html, nil
}

// toTOCEntries converts layout entries to the public TOCEntry type.
func toTOCEntries(entries []layout.TOCEntry) []TOCEntry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]TOCEntry, len(entries))
	for i, e := range entries {
		out[i] = TOCEntry(e)
	}
	return out
}
