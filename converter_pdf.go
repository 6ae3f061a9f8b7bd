// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package fileconv

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PdfConverter extracts text and tables from PDF files.
//
// Text legs honor preservePageBreaks (bool, default false),
// includePageNumbers (bool, default false), and orderByPosition (bool,
// default false; reorders text by word positions instead of content-stream
// order). Tabular legs reconstruct tables geometrically: words are clustered
// into lines by vertical proximity, lines are split into column bands
// inferred from horizontal gaps, and rows whose column count disagrees with
// the majority are discarded as noise. Each page yields at most one table
// candidate; tableIndex selects among them.
type PdfConverter struct{}

// NewPdfConverter creates a new PdfConverter.
func NewPdfConverter() *PdfConverter {
	return &PdfConverter{}
}

func (c *PdfConverter) InputFormats() []FileFormat {
	return []FileFormat{FormatPdf}
}

func (c *PdfConverter) OutputFormats() []FileFormat {
	return []FileFormat{FormatTxt, FormatCsv, FormatTsv}
}

func (c *PdfConverter) Convert(ctx context.Context, inputPath, outputPath string, params Parameters, progress ProgressFunc) error {
	if err := checkInputExists(inputPath); err != nil {
		return err
	}
	progress.report(0, "Opening PDF...")

	f, reader, err := pdf.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open PDF: %w", err)
	}
	defer f.Close()

	outFormat := DetectFormat(outputPath)
	var output string
	if outFormat == FormatTxt {
		output, err = c.extractText(ctx, reader, params, progress)
	} else {
		output, err = c.extractTable(ctx, reader, outFormat, params, progress)
	}
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(90, "Writing output...")
	if err := writeTextFile(outputPath, output); err != nil {
		return err
	}

	progress.report(100, "Conversion complete")
	return nil
}

func (c *PdfConverter) extractText(ctx context.Context, reader *pdf.Reader, params Parameters, progress ProgressFunc) (string, error) {
	numPages := reader.NumPage()
	byPosition := params.Bool("orderByPosition", false)
	pageBreaks := params.Bool("preservePageBreaks", false)
	pageNumbers := params.Bool("includePageNumbers", false)

	var out strings.Builder
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		progress.report(10+80*float64(i-1)/float64(numPages), fmt.Sprintf("Extracting page %d of %d...", i, numPages))

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		var text string
		if byPosition {
			text = renderWordLines(pageWords(page))
		} else {
			text = pageRowText(page)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		if pageNumbers {
			fmt.Fprintf(&out, "--- Page %d ---\n", i)
		}
		out.WriteString(text)
		out.WriteString("\n")
		if pageBreaks && i < numPages {
			out.WriteString("\f")
		}
		out.WriteString("\n")
	}

	result := strings.TrimRight(out.String(), "\n") + "\n"
	if strings.TrimSpace(result) == "" {
		return "", fmt.Errorf("no readable text content found in PDF")
	}
	return result, nil
}

func (c *PdfConverter) extractTable(ctx context.Context, reader *pdf.Reader, outFormat FileFormat, params Parameters, progress ProgressFunc) (string, error) {
	numPages := reader.NumPage()
	var tables [][][]string
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		progress.report(10+70*float64(i-1)/float64(numPages), fmt.Sprintf("Reconstructing page %d of %d...", i, numPages))

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		if table := reconstructTable(pageWords(page)); len(table) > 0 {
			tables = append(tables, table)
		}
	}
	if len(tables) == 0 {
		return "", fmt.Errorf("no tables found in PDF")
	}

	rows, err := selectTable(tables, params)
	if err != nil {
		return "", err
	}
	rows = dropHeader(rows, !params.Bool("includeHeaders", true))
	return renderRows(rows, outFormat, params), nil
}

// pageRowText extracts page text in content-stream row order.
func pageRowText(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err != nil {
		return ""
	}
	var out strings.Builder
	for _, row := range rows {
		var line strings.Builder
		for _, word := range row.Content {
			if word.S == "" {
				continue
			}
			if line.Len() > 0 && !strings.HasSuffix(line.String(), " ") {
				line.WriteString(" ")
			}
			line.WriteString(word.S)
		}
		if text := strings.TrimSpace(line.String()); text != "" {
			out.WriteString(text)
			out.WriteString("\n")
		}
	}
	return out.String()
}

// pdfWord is one positioned word on a page.
type pdfWord struct {
	x, y  float64
	width float64
	text  string
	size  float64
}

// pdfLine is one reconstructed line of words, top to bottom.
type pdfLine struct {
	y     float64
	words []pdfWord
}

// pageWords merges the page's positioned text elements into words: elements
// on the same line whose horizontal gap is below a font-relative threshold
// join into one word.
func pageWords(page pdf.Page) []pdfWord {
	content := page.Content()
	var elements []pdfWord
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		elements = append(elements, pdfWord{
			x:     t.X,
			y:     t.Y,
			width: float64(len([]rune(t.S))) * t.FontSize * 0.55,
			text:  t.S,
			size:  t.FontSize,
		})
	}
	if len(elements) == 0 {
		return nil
	}

	var words []pdfWord
	for _, line := range clusterLines(elements) {
		current := line.words[0]
		for _, elem := range line.words[1:] {
			gap := elem.x - (current.x + current.width)
			threshold := elem.size * 0.3
			if threshold < 1.0 {
				threshold = 1.0
			}
			if gap <= threshold {
				current.text += elem.text
				current.width = elem.x + elem.width - current.x
				continue
			}
			words = append(words, current)
			current = elem
		}
		words = append(words, current)
	}
	return words
}

// clusterLines groups positioned words into lines by vertical proximity,
// ordered top to bottom with words left to right. The clustering threshold
// scales with font size.
func clusterLines(words []pdfWord) []pdfLine {
	if len(words) == 0 {
		return nil
	}
	tolerance := 3.0
	if words[0].size > 0 {
		tolerance = words[0].size * 0.3
	}

	var lines []pdfLine
	for _, w := range words {
		placed := false
		for i := range lines {
			if abs(lines[i].y-w.y) < tolerance {
				lines[i].words = append(lines[i].words, w)
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, pdfLine{y: w.y, words: []pdfWord{w}})
		}
	}

	// PDF Y grows upward, so top of page first means descending Y.
	sort.Slice(lines, func(i, j int) bool { return lines[i].y > lines[j].y })
	for i := range lines {
		sort.Slice(lines[i].words, func(a, b int) bool { return lines[i].words[a].x < lines[i].words[b].x })
	}
	return lines
}

// renderWordLines renders clustered words as plain text lines.
func renderWordLines(words []pdfWord) string {
	var out strings.Builder
	for _, line := range clusterLines(words) {
		parts := make([]string, len(line.words))
		for i, w := range line.words {
			parts[i] = w.text
		}
		out.WriteString(strings.Join(parts, " "))
		out.WriteString("\n")
	}
	return out.String()
}

// reconstructTable performs the two-stage geometric reconstruction: words
// are clustered into lines, column bands are computed from horizontal gaps
// across all lines, each line's words are assigned to bands, and rows whose
// column count disagrees with the majority are discarded as noise.
func reconstructTable(words []pdfWord) [][]string {
	lines := clusterLines(words)
	if len(lines) < 2 {
		return nil
	}

	bands := columnBands(lines)
	if len(bands) < 2 {
		return nil
	}

	var rows [][]string
	counts := make(map[int]int)
	for _, line := range lines {
		cells := make([]string, len(bands))
		filled := 0
		for _, w := range line.words {
			idx := bandIndex(bands, w.x+w.width/2)
			if cells[idx] == "" {
				filled++
			} else {
				cells[idx] += " "
			}
			cells[idx] += w.text
		}
		rows = append(rows, cells)
		counts[filled]++
	}

	// Majority filter: keep rows whose filled-cell count matches the mode.
	mode, best := 0, 0
	for count, n := range counts {
		if n > best || (n == best && count > mode) {
			mode, best = count, n
		}
	}
	var result [][]string
	for _, row := range rows {
		filled := 0
		for _, cell := range row {
			if cell != "" {
				filled++
			}
		}
		if filled == mode {
			result = append(result, row)
		}
	}
	if len(result) < 2 {
		return nil
	}
	return result
}

// columnBands infers column boundaries from horizontal gaps in the union of
// word extents across all lines: a gap wider than the threshold separates
// two bands.
func columnBands(lines []pdfLine) []float64 {
	type span struct{ start, end float64 }
	var spans []span
	var sizeSum float64
	var n int
	for _, line := range lines {
		for _, w := range line.words {
			spans = append(spans, span{w.x, w.x + w.width})
			sizeSum += w.size
			n++
		}
	}
	if n == 0 {
		return nil
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	gapThreshold := (sizeSum / float64(n)) * 0.8
	if gapThreshold < 4.0 {
		gapThreshold = 4.0
	}

	// Merge overlapping extents; a wide gap between merged extents marks a
	// column boundary.
	var starts []float64
	currentEnd := spans[0].end
	starts = append(starts, spans[0].start)
	for _, s := range spans[1:] {
		if s.start-currentEnd > gapThreshold {
			starts = append(starts, s.start)
		}
		if s.end > currentEnd {
			currentEnd = s.end
		}
	}
	return starts
}

// bandIndex returns the column whose band contains x.
func bandIndex(bands []float64, x float64) int {
	idx := 0
	for i, start := range bands {
		if x >= start {
			idx = i
		}
	}
	return idx
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
