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
	"encoding/csv"
	"fmt"
	"strings"
)

// DelimitedConverter converts between delimited tabular formats (CSV, TSV).
//
// Parameters: csvDelimiter (rune, default ','), csvQuote (rune, default '"'),
// treatFirstLineAsHeader (bool, default false) to drop the first row.
// Converting to TSV is lossy for fields containing literal tabs: TSV cannot
// represent embedded tabs, so they become single spaces.
type DelimitedConverter struct{}

// NewDelimitedConverter creates a new DelimitedConverter.
func NewDelimitedConverter() *DelimitedConverter {
	return &DelimitedConverter{}
}

func (c *DelimitedConverter) InputFormats() []FileFormat {
	return []FileFormat{FormatCsv, FormatTsv}
}

func (c *DelimitedConverter) OutputFormats() []FileFormat {
	return []FileFormat{FormatCsv, FormatTsv}
}

func (c *DelimitedConverter) Convert(ctx context.Context, inputPath, outputPath string, params Parameters, progress ProgressFunc) error {
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

	progress.report(25, "Parsing rows...")
	inFormat := DetectFormat(inputPath)
	outFormat := DetectFormat(outputPath)

	rows, err := parseDelimited(content, inFormat, params)
	if err != nil {
		return err
	}
	rows = dropHeader(rows, params.Bool("treatFirstLineAsHeader", false))
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(50, "Writing rows...")
	delim := targetDelimiter(outFormat, params)
	quote := params.Rune("csvQuote", '"')

	var b strings.Builder
	for i, row := range rows {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		b.WriteString(renderRow(row, outFormat, delim, quote))
		b.WriteString("\n")
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeTextFile(outputPath, b.String()); err != nil {
		return err
	}

	progress.report(100, "Conversion complete")
	return nil
}

// parseDelimited parses delimited content into rows. CSV input goes through
// encoding/csv with the configured delimiter; TSV input is a plain
// tab-split since TSV has no quoting.
func parseDelimited(content string, format FileFormat, params Parameters) ([][]string, error) {
	if format == FormatTsv {
		var rows [][]string
		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimSuffix(line, "\r")
			if line == "" {
				continue
			}
			rows = append(rows, strings.Split(line, "\t"))
		}
		return rows, nil
	}

	r := csv.NewReader(strings.NewReader(content))
	r.Comma = params.Rune("csvDelimiter", ',')
	r.FieldsPerRecord = -1 // allow variable fields
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse CSV: %w", err)
	}
	return rows, nil
}

// TextConverter splits plain-text lines into delimited rows.
//
// Each non-blank input line becomes one row. When lineDelimiter is set the
// line is split on it; otherwise the whole line is a single field. Fields
// are escaped for the target format.
type TextConverter struct{}

// NewTextConverter creates a new TextConverter.
func NewTextConverter() *TextConverter {
	return &TextConverter{}
}

func (c *TextConverter) InputFormats() []FileFormat {
	return []FileFormat{FormatTxt}
}

func (c *TextConverter) OutputFormats() []FileFormat {
	return []FileFormat{FormatCsv, FormatTsv}
}

func (c *TextConverter) Convert(ctx context.Context, inputPath, outputPath string, params Parameters, progress ProgressFunc) error {
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

	progress.report(40, "Splitting lines...")
	outFormat := DetectFormat(outputPath)
	lineDelimiter := params.String("lineDelimiter", "")
	delim := targetDelimiter(outFormat, params)
	quote := params.Rune("csvQuote", '"')

	var b strings.Builder
	for i, line := range strings.Split(content, "\n") {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		var fields []string
		if lineDelimiter != "" {
			fields = strings.Split(line, lineDelimiter)
		} else {
			fields = []string{line}
		}
		b.WriteString(renderRow(fields, outFormat, delim, quote))
		b.WriteString("\n")
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeTextFile(outputPath, b.String()); err != nil {
		return err
	}

	progress.report(100, "Conversion complete")
	return nil
}
