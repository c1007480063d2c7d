package render

import (
	"fmt"
	"io"
	"time"

	"codeberg.org/go-pdf/fpdf"

	"github.com/alnah/go-mdpdf/internal/layout"
)

// Info is written to the PDF document information dictionary.
type Info struct {
	Title   string
	Author  string
	Creator string
	Created time.Time // zero means Epoch
}

// Epoch is the creation date used when Info.Created is zero, so that the
// same input always yields the same document.
var Epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// fontFace is a standard PDF font family and style.
type fontFace struct {
	family string
	style  string
}

// FPDFSink draws on an A4 portrait document through go-pdf/fpdf.
type FPDFSink struct {
	pdf    *fpdf.Fpdf
	fonts  map[layout.FontStyle]fontFace
	layers map[string]int
}

// Compile-time interface implementation check.
var _ Sink = (*FPDFSink)(nil)

// NewFPDFSink creates an empty document. Pages are added with AddPage.
func NewFPDFSink(info Info) *FPDFSink {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: layout.PageWidth, Ht: layout.PageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCatalogSort(true)

	created := info.Created
	if created.IsZero() {
		created = Epoch
	}
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)
	if info.Title != "" {
		pdf.SetTitle(info.Title, true)
	}
	if info.Author != "" {
		pdf.SetAuthor(info.Author, true)
	}
	if info.Creator != "" {
		pdf.SetCreator(info.Creator, true)
	}

	return &FPDFSink{
		pdf: pdf,
		fonts: map[layout.FontStyle]fontFace{
			layout.Regular:   {family: "Helvetica", style: ""},
			layout.Bold:      {family: "Helvetica", style: "B"},
			layout.Monospace: {family: "Courier", style: ""},
		},
		layers: make(map[string]int),
	}
}

// AddPage appends a page and returns its zero-based index.
func (s *FPDFSink) AddPage() int {
	s.pdf.AddPage()
	return s.pdf.PageNo() - 1
}

// AddLayer returns the visible layer called name, creating it on first use.
// fpdf layers are document-wide, so every page shares one layer per name.
func (s *FPDFSink) AddLayer(_ int, name string) int {
	if id, ok := s.layers[name]; ok {
		return id
	}
	id := s.pdf.AddLayer(name, true)
	s.layers[name] = id
	return id
}

// PlaceText draws text with its baseline at (x, y), y measured from the bottom.
func (s *FPDFSink) PlaceText(page, layer int, text string, size, x, y float64, style layout.FontStyle) error {
	if page < 0 || page >= s.pdf.PageCount() {
		return fmt.Errorf("%w: %d", ErrUnknownPage, page)
	}
	if s.pdf.PageNo() != page+1 {
		s.pdf.SetPage(page + 1)
	}

	face, ok := s.fonts[style]
	if !ok {
		face = s.fonts[layout.Regular]
	}

	if layer != NoLayer {
		s.pdf.BeginLayer(layer)
	}
	s.pdf.SetFont(face.family, face.style, size)
	s.pdf.Text(x, layout.PageHeight-y, toWinAnsi(text))
	if layer != NoLayer {
		s.pdf.EndLayer()
	}

	return s.pdf.Error()
}

// Save writes the document to w.
func (s *FPDFSink) Save(w io.Writer) error {
	if err := s.pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	return nil
}
