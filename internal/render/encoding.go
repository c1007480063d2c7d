package render

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// replacementChar stands in for runes the core fonts cannot show.
const replacementChar = '?'

// toWinAnsi encodes s for the PDF standard fonts, which use the
// Windows-1252 code page. Runes outside the code page become '?'.
func toWinAnsi(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteByte(c)
			continue
		}
		b.WriteByte(replacementChar)
	}
	return b.String()
}
