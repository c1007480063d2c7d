package pipeline

import (
	"context"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// byteOrderMark is the UTF-8 encoding of U+FEFF, written by some editors.
const byteOrderMark = "\ufeff"

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// Normalizer prepares raw markdown for line scanning.
type Normalizer struct{}

// Compile-time interface implementation check.
var _ MarkdownPreprocessor = (*Normalizer)(nil)

// PreprocessMarkdown strips a leading byte order mark, converts CRLF line
// endings to LF and composes the text to Unicode NFC, so that "é" typed as
// e + combining accent counts and encodes as a single character.
// A lone \r is left in place.
func (p *Normalizer) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, byteOrderMark)
	content = normalizeLineEndings(content)
	return norm.NFC.String(content)
}

// normalizeLineEndings converts \r\n to \n.
func normalizeLineEndings(content string) string {
	return strings.ReplaceAll(content, "\r\n", "\n")
}
