// Package pipeline holds the text stages that sit around the layout engine.
//
// Two stages live here:
//   - Markdown preprocessing (byte order mark, line endings, Unicode NFC)
//   - HTML preview rendering via Goldmark, with the cover, table of contents,
//     signature and footer of the PDF reproduced around the body
//
// Pagination and PDF drawing are handled by internal/layout and
// internal/render. The preview shares their metadata and TOC entries so the
// HTML and the PDF describe the same document.
package pipeline
