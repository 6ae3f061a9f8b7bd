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
	"strings"
)

// MarkdownConverter extracts pipe tables from Markdown documents into
// delimited formats.
//
// Parameters: tableIndex (int, default 0), hasHeader (bool, default false).
type MarkdownConverter struct{}

// NewMarkdownConverter creates a new MarkdownConverter.
func NewMarkdownConverter() *MarkdownConverter {
	return &MarkdownConverter{}
}

func (c *MarkdownConverter) InputFormats() []FileFormat {
	return []FileFormat{FormatMarkdown}
}

func (c *MarkdownConverter) OutputFormats() []FileFormat {
	return []FileFormat{FormatCsv, FormatTsv}
}

func (c *MarkdownConverter) Convert(ctx context.Context, inputPath, outputPath string, params Parameters, progress ProgressFunc) error {
	if err := checkInputExists(inputPath); err != nil {
		return err
	}
	progress.report(0, "Reading Markdown document...")

	content, err := readTextFile(inputPath, params)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(30, "Locating tables...")
	tables := extractMarkdownTables(content)
	if len(tables) == 0 {
		return fmt.Errorf("no tables found in Markdown document")
	}
	rows, err := selectTable(tables, params)
	if err != nil {
		return err
	}
	rows = dropHeader(rows, params.Bool("hasHeader", false))
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(70, "Writing rows...")
	outFormat := DetectFormat(outputPath)
	if err := writeTextFile(outputPath, renderRows(rows, outFormat, params)); err != nil {
		return err
	}

	progress.report(100, "Conversion complete")
	return nil
}

// extractMarkdownTables collects runs of consecutive pipe-delimited lines as
// tables. Alignment separator rows (|---|:--:|) are discarded.
func extractMarkdownTables(content string) [][][]string {
	var tables [][][]string
	var current [][]string

	flush := func() {
		if len(current) > 0 {
			tables = append(tables, current)
			current = nil
		}
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if !strings.Contains(trimmed, "|") {
			flush()
			continue
		}
		if isMarkdownSeparatorRow(trimmed) {
			continue
		}
		current = append(current, splitMarkdownRow(trimmed))
	}
	flush()
	return tables
}

// isMarkdownSeparatorRow reports whether the line is a table alignment row,
// containing only pipes, dashes, colons, and spaces.
func isMarkdownSeparatorRow(line string) bool {
	hasDash := false
	for _, r := range line {
		switch r {
		case '|', ':', ' ':
		case '-':
			hasDash = true
		default:
			return false
		}
	}
	return hasDash
}

// splitMarkdownRow splits a pipe row into trimmed cells, dropping the empty
// leading/trailing cells produced by the outer pipes.
func splitMarkdownRow(line string) []string {
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}
