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
	"fmt"
	"os"
	"strings"

	"github.com/nicholasgasior/fileconv-go/internal/textenc"
)

// Shared helpers for the tabular converters: field escaping, row rendering,
// and the header-demotion rule every extractor follows.

// cancelCheckInterval is how many rows a row loop processes between
// context checks.
const cancelCheckInterval = 256

// targetDelimiter returns the field delimiter for a delimited output format.
// CSV honors the csvDelimiter parameter; TSV is always tab.
func targetDelimiter(format FileFormat, params Parameters) rune {
	if format == FormatTsv {
		return '\t'
	}
	return params.Rune("csvDelimiter", ',')
}

// escapeField escapes one field for the target delimited format.
//
// TSV escaping is lossy: embedded tabs become single spaces, since TSV has
// no quoting mechanism. CSV escaping wraps the field in the quote character
// and doubles embedded quotes whenever the field contains the delimiter,
// the quote, or a line terminator.
func escapeField(field string, format FileFormat, delim, quote rune) string {
	if format == FormatTsv {
		return strings.ReplaceAll(field, "\t", " ")
	}
	if strings.ContainsRune(field, delim) ||
		strings.ContainsRune(field, quote) ||
		strings.ContainsAny(field, "\r\n") {
		q := string(quote)
		return q + strings.ReplaceAll(field, q, q+q) + q
	}
	return field
}

// renderRow joins one row's cells with the target delimiter, escaping each.
func renderRow(cells []string, format FileFormat, delim, quote rune) string {
	escaped := make([]string, len(cells))
	for i, cell := range cells {
		escaped[i] = escapeField(cell, format, delim, quote)
	}
	return strings.Join(escaped, string(delim))
}

// renderRows renders a whole table for the target format, one row per line.
func renderRows(rows [][]string, format FileFormat, params Parameters) string {
	delim := targetDelimiter(format, params)
	quote := params.Rune("csvQuote", '"')
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(renderRow(row, format, delim, quote))
		b.WriteString("\n")
	}
	return b.String()
}

// dropHeader removes the leading header row when asked to. A header-only
// table (fewer than 2 rows) keeps its single row as data; every tabular
// converter shares this rule.
func dropHeader(rows [][]string, drop bool) [][]string {
	if drop && len(rows) >= 2 {
		return rows[1:]
	}
	return rows
}

// selectTable picks one table from the extracted set by the tableIndex
// parameter (zero-based, default 0).
func selectTable(tables [][][]string, params Parameters) ([][]string, error) {
	index := params.Int("tableIndex", 0)
	if index < 0 || index >= len(tables) {
		return nil, fmt.Errorf("table index %d out of range: document has %d table(s)", index, len(tables))
	}
	return tables[index], nil
}

// readTextFile reads path and decodes it to UTF-8, honoring an optional
// charset parameter.
func readTextFile(path string, params Parameters) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return textenc.Decode(data, params.String("charset", "")), nil
}

// writeTextFile writes content to path.
func writeTextFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// checkInputExists re-verifies the converter precondition for direct calls.
func checkInputExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	return nil
}
