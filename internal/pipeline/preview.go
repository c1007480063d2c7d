package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-mdpdf/internal/layout"
)

// ErrPreviewRender indicates the preview template could not be executed.
var ErrPreviewRender = errors.New("preview template rendering failed")

// highlightStyle names the chroma style used for code blocks.
const highlightStyle = "github"

// Preview is everything the HTML preview shows besides the body.
type Preview struct {
	Title      string
	Signature  string
	FooterText string
	TOC        []layout.TOCEntry
}

const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>{{.CSS}}</style>
</head>
<body>
<section class="cover">
<h1 class="cover-title">{{.Title}}</h1>
<p class="signature">{{.Signature}}</p>
</section>
<nav class="toc">
<h2>` + layout.TOCHeader + `</h2>
<ul>
{{- range .TOC}}
<li class="{{if .IsChapter}}chapter{{else}}subchapter{{end}}">{{.Label}}<span class="page">{{.PageNumber}}</span></li>
{{- end}}
</ul>
</nav>
<main>
{{.Body}}
</main>
<footer>{{.FooterText}}</footer>
</body>
</html>
`

// PreviewRenderer wraps an HTML body fragment into a standalone document.
type PreviewRenderer struct {
	tmpl *template.Template
	css  template.CSS
}

// NewPreviewRenderer parses the document template and builds the stylesheet
// from baseCSS followed by the chroma classes used by highlighted code blocks.
func NewPreviewRenderer(baseCSS string) (*PreviewRenderer, error) {
	tmpl, err := template.New("preview").Parse(previewTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing preview template: %w", err)
	}

	var css bytes.Buffer
	css.WriteString(baseCSS)
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&css, styles.Get(highlightStyle)); err != nil {
		return nil, fmt.Errorf("writing highlight stylesheet: %w", err)
	}

	// #nosec G203 -- stylesheet is built from constants and chroma output, sanitized below
	return &PreviewRenderer{tmpl: tmpl, css: template.CSS(sanitizeCSS(css.String()))}, nil
}

// Render executes the template. body must be trusted HTML, as produced by
// GoldmarkConverter which never passes raw HTML through.
func (r *PreviewRenderer) Render(ctx context.Context, p Preview, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data := struct {
		Preview
		CSS  template.CSS
		Body template.HTML
	}{
		Preview: p,
		CSS:     r.css,
		Body:    template.HTML(body), // #nosec G203 -- goldmark output without WithUnsafe
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPreviewRender, err)
	}
	return buf.String(), nil
}

// sanitizeCSS escapes closing tags so CSS cannot break out of <style>.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
