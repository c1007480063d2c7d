// Package render commits a paginated layout to a PDF document.
//
// The layout engine never talks to a PDF library directly. It produces
// instructions; Commit replays them page by page, in page-index order,
// against a Sink. FPDFSink is the production Sink backed by go-pdf/fpdf.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/alnah/go-mdpdf/internal/layout"
)

// Sentinel errors for sink operations.
var (
	ErrUnknownPage = errors.New("page does not exist")
	ErrSave        = errors.New("failed to save document")
)

// NoLayer places text directly in the page content, outside any layer.
const NoLayer = -1

// footerLayerName labels the layer holding page footers.
const footerLayerName = "Footer Layer"

// Sink receives positioned text and persists the final document.
// Coordinates are millimetres with the origin at the bottom-left corner.
type Sink interface {
	AddPage() int
	AddLayer(page int, name string) int
	PlaceText(page, layer int, text string, size, x, y float64, style layout.FontStyle) error
	Save(w io.Writer) error
}

// Commit creates every page of res in order and places its instructions.
// Footer instructions go to a dedicated layer created on demand.
func Commit(res *layout.Result, sink Sink) error {
	for idx, instructions := range res.Pages {
		page := sink.AddPage()
		if page != idx {
			return fmt.Errorf("%w: sink returned page %d, want %d", ErrUnknownPage, page, idx)
		}

		footerLayer := NoLayer
		for _, ins := range instructions {
			layer := NoLayer
			if ins.Layer == layout.FooterLayer {
				if footerLayer == NoLayer {
					footerLayer = sink.AddLayer(page, footerLayerName)
				}
				layer = footerLayer
			}
			if err := sink.PlaceText(page, layer, ins.Text, ins.FontSize, ins.X, ins.Y, ins.Style); err != nil {
				return fmt.Errorf("placing %q on page %d: %w", ins.Text, idx+1, err)
			}
		}
	}
	return nil
}
