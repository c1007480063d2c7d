package layout

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Wrap splits line into segments of at most maxWidth characters, breaking only
// between words. Runs of whitespace collapse to a single space. A word longer
// than maxWidth is emitted on its own, unsplit. Characters are grapheme
// clusters, not bytes or rendered widths.
func Wrap(line string, maxWidth int) []string {
	var segments []string
	var current strings.Builder
	currentLen := 0

	for _, word := range strings.Fields(line) {
		wordLen := uniseg.GraphemeClusterCount(word)
		if currentLen > 0 && currentLen+wordLen+1 > maxWidth {
			segments = append(segments, current.String())
			current.Reset()
			currentLen = 0
		}
		if currentLen > 0 {
			current.WriteByte(' ')
			currentLen++
		}
		current.WriteString(word)
		currentLen += wordLen
	}

	if currentLen > 0 {
		segments = append(segments, current.String())
	}
	return segments
}
