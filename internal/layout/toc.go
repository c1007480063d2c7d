package layout

import "strconv"

// RenderTOC lays out one line per entry on the TOC page, chapters at
// TOCChapterX and subchapters one level deeper. The list is assumed to fit
// on a single page.
func RenderTOC(entries []TOCEntry) []Instruction {
	out := make([]Instruction, 0, len(entries))
	y := TOCStartY
	for _, entry := range entries {
		x := TOCSubchapterX
		if entry.IsChapter {
			x = TOCChapterX
		}
		out = append(out, Instruction{
			PageIndex: TOCPage,
			Text:      entry.Label + TOCLeader + strconv.Itoa(entry.PageNumber),
			FontSize:  TOCEntrySize,
			X:         x,
			Y:         y,
			Style:     Regular,
			Layer:     BodyLayer,
		})
		y -= TOCStep
	}
	return out
}
