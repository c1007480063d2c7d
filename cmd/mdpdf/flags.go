package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags overrides what is read from the markdown.
type documentFlags struct {
	title     string
	signature string
	date      string
}

// footerFlags holds footer-related flags.
type footerFlags struct {
	text     string
	noDetect bool
}

// outputFlags holds output mode flags.
type outputFlags struct {
	html      bool   // Output HTML alongside PDF
	htmlOnly  bool   // Output HTML only, skip PDF
	style     string // Preview stylesheet name
	assetPath string // Directory with styles/{name}.css overrides
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common     commonFlags
	output     string
	workers    int
	timeout    string
	wrapWidth  int
	document   documentFlags
	footer     footerFlags
	outputMode outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addDocumentFlags adds document override flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "cover title (\"\" = first \"# \" heading)")
	fs.StringVar(&f.signature, "signature", "", "cover signature (\"\" = \"Signature:\" line)")
	fs.StringVar(&f.date, "doc-date", "", "document date (\"auto\" = today)")
}

// addFooterFlags adds footer flags to a FlagSet.
func addFooterFlags(fs *flag.FlagSet, f *footerFlags) {
	fs.StringVar(&f.text, "footer-text", "", "footer text (\"\" = last line of the document)")
	fs.BoolVar(&f.noDetect, "no-footer-detect", false, "keep the last line in the body")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.html, "html", false, "output HTML preview alongside PDF")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output HTML preview only, skip PDF")
	fs.StringVar(&f.style, "html-style", "", "HTML preview style (default, print, or custom)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with styles/{name}.css overrides")
}

// newConvertFlagSet builds the flag set shared by convert and config.
func newConvertFlagSet(name string, f *convertFlags, usage func()) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-document timeout (e.g., 30s, 2m)")
	fs.IntVar(&f.wrapWidth, "wrap-width", 0, "prose wrap width in characters (0 = 80)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addFooterFlags(fs, &f.footer)
	addOutputFlags(fs, &f.outputMode)

	fs.Usage = usage
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet("convert", f, func() { printConvertUsage(w) })
	fs.SetOutput(w)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseConfigFlags parses config command flags. Positional args are rejected
// by the caller.
func parseConfigFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet("config", f, func() { printConfigUsage(w) })
	fs.SetOutput(w)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// hasVerboseFlag reports whether args request verbose output.
// Scanning stops at the "--" terminator.
func hasVerboseFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "-v", "--verbose", "--verbose=true":
			return true
		}
	}
	return false
}
