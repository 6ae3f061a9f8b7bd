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
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
)

// DocxConverter extracts text and tables from DOCX documents.
//
// Text legs honor preserveHeadersFooters (bool, default false) and
// includeComments (bool, default false). Tabular legs honor tableIndex
// (int, default 0) and includeHeaders (bool, default true); with
// includeHeaders false the first table row is dropped.
type DocxConverter struct{}

// NewDocxConverter creates a new DocxConverter.
func NewDocxConverter() *DocxConverter {
	return &DocxConverter{}
}

func (c *DocxConverter) InputFormats() []FileFormat {
	return []FileFormat{FormatDocx}
}

func (c *DocxConverter) OutputFormats() []FileFormat {
	return []FileFormat{FormatTxt, FormatCsv, FormatTsv}
}

func (c *DocxConverter) Convert(ctx context.Context, inputPath, outputPath string, params Parameters, progress ProgressFunc) error {
	if err := checkInputExists(inputPath); err != nil {
		return err
	}
	progress.report(0, "Opening DOCX archive...")

	zr, err := zip.OpenReader(inputPath)
	if err != nil {
		return fmt.Errorf("open DOCX: %w", err)
	}
	defer zr.Close()

	docData, err := readZipMember(&zr.Reader, "word/document.xml")
	if err != nil {
		return fmt.Errorf("read document.xml: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(30, "Parsing document body...")
	body := parseWordXML(docData)
	if err := ctx.Err(); err != nil {
		return err
	}

	outFormat := DetectFormat(outputPath)
	var output string
	switch outFormat {
	case FormatTxt:
		output, err = c.renderText(&zr.Reader, body, params)
	default:
		output, err = c.renderTable(body, outFormat, params)
	}
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(85, "Writing output...")
	if err := writeTextFile(outputPath, output); err != nil {
		return err
	}

	progress.report(100, "Conversion complete")
	return nil
}

func (c *DocxConverter) renderText(zr *zip.Reader, body wordContent, params Parameters) (string, error) {
	var sections []string

	if params.Bool("preserveHeadersFooters", false) {
		for _, name := range zipMembersMatching(zr, "word/header") {
			if data, err := readZipMember(zr, name); err == nil {
				sections = append(sections, parseWordXML(data).blocks...)
			}
		}
	}

	sections = append(sections, body.blocks...)

	if params.Bool("preserveHeadersFooters", false) {
		for _, name := range zipMembersMatching(zr, "word/footer") {
			if data, err := readZipMember(zr, name); err == nil {
				sections = append(sections, parseWordXML(data).blocks...)
			}
		}
	}

	if params.Bool("includeComments", false) {
		if data, err := readZipMember(zr, "word/comments.xml"); err == nil {
			comments := parseWordXML(data).blocks
			if len(comments) > 0 {
				sections = append(sections, "", "Comments:")
				sections = append(sections, comments...)
			}
		}
	}

	return strings.Join(sections, "\n") + "\n", nil
}

func (c *DocxConverter) renderTable(body wordContent, outFormat FileFormat, params Parameters) (string, error) {
	if len(body.tables) == 0 {
		return "", fmt.Errorf("no tables found in DOCX document")
	}
	rows, err := selectTable(body.tables, params)
	if err != nil {
		return "", err
	}
	rows = dropHeader(rows, !params.Bool("includeHeaders", true))
	return renderRows(rows, outFormat, params), nil
}

// wordContent is the flattened body of one WordprocessingML part: text
// blocks in document order (tables contribute their rows as tab-joined
// lines) and the tables themselves.
type wordContent struct {
	blocks []string
	tables [][][]string
}

// parseWordXML walks a WordprocessingML token stream collecting paragraph
// text and top-level tables. Parse failures yield whatever was collected
// before the bad token.
func parseWordXML(data []byte) wordContent {
	dec := xml.NewDecoder(strings.NewReader(string(data)))

	var content wordContent
	var para strings.Builder
	var cell strings.Builder
	var row []string
	var tbl [][]string
	tableDepth := 0
	inCell := false

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
				if tableDepth == 1 {
					tbl = nil
				}
			case "tr":
				row = nil
			case "tc":
				cell.Reset()
				inCell = true
			case "br", "cr":
				if inCell {
					cell.WriteString(" ")
				} else {
					para.WriteString("\n")
				}
			case "t":
				var text string
				if err := dec.DecodeElement(&text, &t); err == nil {
					if inCell {
						cell.WriteString(text)
					} else {
						para.WriteString(text)
					}
				}
			case "tab":
				if !inCell {
					para.WriteString("\t")
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if inCell {
					cell.WriteString(" ")
				} else if tableDepth == 0 {
					content.blocks = append(content.blocks, strings.TrimRight(para.String(), " "))
					para.Reset()
				}
			case "tc":
				row = append(row, strings.TrimSpace(cell.String()))
				inCell = false
			case "tr":
				if len(row) > 0 {
					tbl = append(tbl, row)
				}
			case "tbl":
				tableDepth--
				if tableDepth == 0 && len(tbl) > 0 {
					content.tables = append(content.tables, tbl)
					for _, r := range tbl {
						content.blocks = append(content.blocks, strings.Join(r, "\t"))
					}
				}
			}
		}
	}
	return content
}

func readZipMember(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("%s not found in archive", name)
}

func zipMembersMatching(zr *zip.Reader, prefix string) []string {
	var names []string
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, prefix) && path.Ext(f.Name) == ".xml" {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	return names
}
