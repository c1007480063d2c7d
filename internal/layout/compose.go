package layout

// tocHeader is the heading line of the TOC page.
func tocHeader() Instruction {
	return Instruction{
		PageIndex: TOCPage,
		Text:      TOCHeader,
		FontSize:  TOCHeaderSize,
		X:         TOCHeaderX,
		Y:         TOCHeaderY,
		Style:     Bold,
	}
}

// coverPage lays out the title and signature.
func coverPage(meta Metadata) []Instruction {
	return []Instruction{
		{
			PageIndex: CoverPage,
			Text:      meta.Title,
			FontSize:  CoverTitleSize,
			X:         CoverTitleX,
			Y:         CoverTitleY,
			Style:     Bold,
		},
		{
			PageIndex: CoverPage,
			Text:      meta.Signature,
			FontSize:  SignatureSize,
			X:         SignatureX,
			Y:         SignatureY,
			Style:     Regular,
		},
	}
}

// Compose runs both passes over text: metadata extraction and body layout,
// then the cover and TOC pages once page numbers are known.
func Compose(text string, o Overrides, opts Options) (*Result, Metadata) {
	lines := SplitLines(text)
	meta := ExtractMetadata(lines, o)

	res := Paginate(lines, meta, opts)
	res.Pages[CoverPage] = coverPage(meta)
	res.Pages[TOCPage] = append([]Instruction{tocHeader()}, RenderTOC(res.TOC)...)

	return res, meta
}
