package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alnah/go-mdpdf"
	"github.com/alnah/go-mdpdf/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrNoMarkdownFiles    = errors.New("no markdown files found")
	ErrOutputNotDir       = errors.New("output must be a directory when converting several files")
)

// globMeta are the characters that make an input a glob pattern.
const globMeta = "*?[{"

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all markdown files to convert.
// inputPath is a file, a directory (searched recursively) or a doublestar
// glob. Directory and glob results mirror their tree under outputDir.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	var files []FileToConvert
	var err error

	info, statErr := os.Stat(inputPath)
	switch {
	case statErr == nil && !info.IsDir():
		if !fileutil.IsMarkdown(inputPath) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		return []FileToConvert{{
			InputPath:  inputPath,
			OutputPath: resolveOutputPath(inputPath, outputDir, ""),
		}}, nil
	case statErr == nil:
		files, err = walkMarkdown(inputPath, "**", outputDir)
	case isGlob(inputPath):
		base, pattern := doublestar.SplitPattern(filepath.ToSlash(inputPath))
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w: %s", doublestar.ErrBadPattern, inputPath)
		}
		files, err = walkMarkdown(filepath.FromSlash(base), pattern, outputDir)
	default:
		return nil, statErr
	}
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}
	if len(files) > 1 && isPDFPath(outputDir) {
		return nil, fmt.Errorf("%w: %s", ErrOutputNotDir, outputDir)
	}
	return files, nil
}

// walkMarkdown collects markdown files under root matching pattern.
func walkMarkdown(root, pattern, outputDir string) ([]FileToConvert, error) {
	var files []FileToConvert

	err := doublestar.GlobWalk(os.DirFS(root), pattern, func(path string, d fs.DirEntry) error {
		if !fileutil.IsMarkdown(path) {
			return nil
		}
		inPath := filepath.Join(root, filepath.FromSlash(path))
		files = append(files, FileToConvert{
			InputPath:  inPath,
			OutputPath: resolveOutputPath(inPath, outputDir, root),
		})
		return nil
	}, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	return files, nil
}

// resolveOutputPath determines the PDF output path for a markdown file.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	base := filepath.Base(inputPath)
	pdfName, err := fileutil.ReplaceExt(base, "pdf")
	if err != nil {
		pdfName = base + ".pdf"
	}

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), pdfName)
	}

	if isPDFPath(outputDir) {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), pdfName)
		}
	}

	return filepath.Join(outputDir, pdfName)
}

// isGlob reports whether path contains glob metacharacters.
func isGlob(path string) bool {
	return strings.ContainsAny(path, globMeta)
}

// isPDFPath reports whether path names a PDF file rather than a directory.
func isPDFPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > mdpdf.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, mdpdf.MaxPoolSize)
	}
	return nil
}

// htmlOutputPath returns the HTML path corresponding to a PDF path.
func htmlOutputPath(pdfPath string) string {
	htmlPath, err := fileutil.ReplaceExt(pdfPath, "html")
	if err != nil {
		return pdfPath + ".html"
	}
	return htmlPath
}
