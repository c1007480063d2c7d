package mdpdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrPreviewStyle   = errors.New("HTML preview style unavailable")

	// Input validation errors.
	ErrInvalidDate      = errors.New("invalid document date")
	ErrFieldTooLong     = errors.New("field too long")
	ErrInvalidWrapWidth = errors.New("invalid wrap width")
)
