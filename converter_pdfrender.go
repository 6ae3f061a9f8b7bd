package fileconv

import (
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PdfRenderConverter renders plain text and Markdown input as PDF files.
// Markdown input keeps its source text; only heading markers are promoted
// to larger font sizes.
//
// Parameters: title (string, default "" = no title page header), fontSize
// (int, default 11).
type PdfRenderConverter struct{}

// NewPdfRenderConverter creates a new PdfRenderConverter.
func NewPdfRenderConverter() *PdfRenderConverter {
	return &PdfRenderConverter{}
}

func (c *PdfRenderConverter) InputFormats() []FileFormat {
	return []FileFormat{FormatTxt, FormatMarkdown}
}

func (c *PdfRenderConverter) OutputFormats() []FileFormat {
	return []FileFormat{FormatPdf}
}

func (c *PdfRenderConverter) Convert(ctx context.Context, inputPath, outputPath string, params Parameters, progress ProgressFunc) error {
	if err := checkInputExists(inputPath); err != nil {
		return err
	}
	progress.report(0, "Reading input file...")

	content, err := readTextFile(inputPath, params)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(30, "Laying out pages...")
	fontSize := params.Int("fontSize", 11)
	markdown := DetectFormat(inputPath) == FormatMarkdown

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", float64(fontSize))
	doc.AddPage()

	if title := params.String("title", ""); title != "" {
		doc.SetFont("Helvetica", "B", float64(fontSize)+6)
		doc.MultiCell(0, 10, title, "", "L", false)
		doc.SetFont("Helvetica", "", float64(fontSize))
		doc.Ln(4)
	}

	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	for i, line := range lines {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if markdown {
			if level, text, ok := headingLine(line); ok {
				size := float64(fontSize) + float64(8-2*level)
				if size < float64(fontSize) {
					size = float64(fontSize)
				}
				doc.SetFont("Helvetica", "B", size)
				doc.MultiCell(0, 8, text, "", "L", false)
				doc.SetFont("Helvetica", "", float64(fontSize))
				continue
			}
		}
		doc.MultiCell(0, 5, line, "", "L", false)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	progress.report(80, "Writing PDF...")
	if err := doc.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("write PDF: %w", err)
	}

	progress.report(100, "Conversion complete")
	return nil
}

// headingLine parses a Markdown ATX heading ("# ..." through "###### ...").
func headingLine(line string) (level int, text string, ok bool) {
	trimmed := strings.TrimSpace(line)
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level >= len(trimmed) || trimmed[level] != ' ' {
		return 0, "", false
	}
	return level, strings.TrimSpace(trimmed[level:]), true
}
