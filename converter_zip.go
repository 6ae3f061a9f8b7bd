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
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/nicholasgasior/fileconv-go/internal/textenc"
)

// ZipConverter extracts the text members of a ZIP archive into one plain
// text file, each member preceded by a header line. Non-text members are
// listed but not expanded.
type ZipConverter struct{}

// NewZipConverter creates a new ZipConverter.
func NewZipConverter() *ZipConverter {
	return &ZipConverter{}
}

func (c *ZipConverter) InputFormats() []FileFormat {
	return []FileFormat{FormatZip}
}

func (c *ZipConverter) OutputFormats() []FileFormat {
	return []FileFormat{FormatTxt}
}

func (c *ZipConverter) Convert(ctx context.Context, inputPath, outputPath string, params Parameters, progress ProgressFunc) error {
	if err := checkInputExists(inputPath); err != nil {
		return err
	}
	progress.report(0, "Opening archive...")

	zr, err := zip.OpenReader(inputPath)
	if err != nil {
		return fmt.Errorf("open ZIP: %w", err)
	}
	defer zr.Close()

	var b strings.Builder
	fmt.Fprintf(&b, "Contents of %s:\n\n", filepath.Base(inputPath))

	total := len(zr.File)
	for i, f := range zr.File {
		if err := ctx.Err(); err != nil {
			return err
		}
		progress.report(10+80*float64(i)/float64(max(total, 1)), fmt.Sprintf("Extracting %s...", f.Name))

		if f.FileInfo().IsDir() {
			continue
		}
		if !isTextMember(f.Name) {
			fmt.Fprintf(&b, "[%s: %d bytes, skipped]\n\n", f.Name, f.UncompressedSize64)
			continue
		}

		rc, err := f.Open()
		if err != nil {
			fmt.Fprintf(&b, "[%s: unreadable: %v]\n\n", f.Name, err)
			continue
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			fmt.Fprintf(&b, "[%s: unreadable: %v]\n\n", f.Name, err)
			continue
		}

		fmt.Fprintf(&b, "--- %s ---\n", f.Name)
		b.WriteString(strings.TrimRight(textenc.Decode(data, ""), "\n"))
		b.WriteString("\n\n")
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

func isTextMember(name string) bool {
	switch DetectFormat(name) {
	case FormatTxt, FormatMarkdown, FormatCsv, FormatTsv, FormatJson, FormatYaml, FormatXml, FormatHtml:
		return true
	}
	return false
}
