// Package layout paginates restricted Markdown into positioned text runs.
//
// The package is pure: it never touches a PDF library or the filesystem.
// Paginate scans the document once, line by line, and returns a Result holding
// render instructions grouped by page plus the table-of-contents entries with
// their resolved page numbers. RenderTOC turns those entries into instructions
// for the TOC page in a second, short pass.
//
// Coordinates are millimetres in PDF user space: X grows to the right from the
// left edge, Y grows upward from the bottom edge. The body cursor therefore
// starts high (TopMargin) and decreases until it falls below BottomMargin.
//
// Recognised syntax:
//
//	# Chapter            level-1 heading, recorded as a chapter TOC entry
//	## Subchapter        level-2 heading, recorded as a subchapter TOC entry
//	```                  fence line, toggles verbatim monospace mode
//	Signature: J. Doe    signature line, shown on the cover and skipped in the body
//
// Every other line is prose, word-wrapped to a fixed character width.
package layout
