// Package pdf renders study sheets written in markdown into PDF files.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

// boldPattern matches **bold** text in markdown
var boldPattern = regexp.MustCompile(`\*\*([^*]+)\*\*`)

// Options controls where and how a PDF is rendered.
type Options struct {
	// OutputPath defaults to the markdown path with a .pdf extension
	OutputPath string
	Dark       bool
}

// ConvertMarkdownToPDF converts a markdown study sheet to PDF and returns the absolute path of the PDF.
func ConvertMarkdownToPDF(markdownPath string, opts Options) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}
	content = stripBoldInBlockquotes(content)

	pdfPath := opts.OutputPath
	if pdfPath == "" {
		pdfPath = strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	}
	if err := os.MkdirAll(filepath.Dir(pdfPath), 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(pdfPath), err)
	}

	theme := mdtopdf.LIGHT
	if opts.Dark {
		theme = mdtopdf.DARK
	}
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, theme)
	renderer.UpdateBlockquoteStyler()
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}

// stripBoldInBlockquotes removes **bold** markers on blockquote lines.
// mdtopdf renders blockquotes with a multi cell that prints the markers literally.
func stripBoldInBlockquotes(content []byte) []byte {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			lines[i] = boldPattern.ReplaceAllString(line, "$1")
		}
	}
	return []byte(strings.Join(lines, "\n"))
}
