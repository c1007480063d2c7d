// Package mdpdf converts a restricted Markdown dialect to paginated PDF.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := mdpdf.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, mdpdf.Input{
//	    Markdown: "# Hello\nSignature: J.Doe\nWorld\nFooter line",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.pdf", result.PDF, 0644)
//
// # Document Model
//
// Every PDF has a cover page (title and signature), a one-page table of
// contents, and content pages with a footer reading "Page N  |  <footer>".
// Content pages are numbered from 3.
//
// The dialect recognises four kinds of lines:
//
//   - "# " starts a chapter, "## " a subchapter; both enter the TOC
//   - a line of three backticks opens or closes a code block
//   - "Signature: NAME" sets the cover signature and is not printed
//   - anything else is prose, word-wrapped at 80 characters
//
// The first chapter heading is the document title. The last line of the
// document is taken as the footer text unless Input.KeepLastLine is set or
// Input.FooterText is given.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (byte order mark, CRLF, Unicode NFC)
//  2. Metadata extraction (title, signature, footer)
//  3. Pagination of the body and TOC collection
//  4. PDF drawing via go-pdf/fpdf with the standard PDF fonts
//
// An HTML preview of the same document, rendered by Goldmark, is produced
// when Input.HTML or Input.HTMLOnly is set.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := mdpdf.NewConverter(
//	    mdpdf.WithWrapWidth(100),
//	    mdpdf.WithTimeout(10 * time.Second),
//	)
//
// Per-conversion options are passed via Input:
//
//	result, err := conv.Convert(ctx, mdpdf.Input{
//	    Markdown:   content,
//	    Title:      "Report",
//	    FooterText: "Confidential",
//	    Date:       "auto",
//	    HTML:       true,
//	})
//
// # Parallel Processing
//
// For batch conversion, use ConverterPool to bound concurrent conversions:
//
//	pool, err := mdpdf.NewConverterPool(4)
//	conv := pool.Acquire()
//	defer pool.Release(conv)
//	result, err := conv.Convert(ctx, input)
//
// # Fonts
//
// Text is drawn with the standard Helvetica and Courier fonts in the
// Windows-1252 code page. Characters outside it are printed as "?".
package mdpdf
