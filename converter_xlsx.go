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

	"github.com/xuri/excelize/v2"
)

// XlsxConverter exports XLSX worksheets to delimited formats.
//
// Parameters: sheetName (string, default: first sheet), hasHeader (bool,
// default false) drops the header row.
type XlsxConverter struct{}

// NewXlsxConverter creates a new XlsxConverter.
func NewXlsxConverter() *XlsxConverter {
	return &XlsxConverter{}
}

func (c *XlsxConverter) InputFormats() []FileFormat {
	return []FileFormat{FormatXlsx}
}

func (c *XlsxConverter) OutputFormats() []FileFormat {
	return []FileFormat{FormatCsv, FormatTsv}
}

func (c *XlsxConverter) Convert(ctx context.Context, inputPath, outputPath string, params Parameters, progress ProgressFunc) error {
	if err := checkInputExists(inputPath); err != nil {
		return err
	}
	progress.report(0, "Opening workbook...")

	f, err := excelize.OpenFile(inputPath)
	if err != nil {
		return fmt.Errorf("open XLSX: %w", err)
	}
	defer f.Close()

	sheet := params.String("sheetName", "")
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(40, "Reading rows...")
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	rows = dropHeader(rows, params.Bool("hasHeader", false))
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(75, "Writing rows...")
	outFormat := DetectFormat(outputPath)
	if err := writeTextFile(outputPath, renderRows(rows, outFormat, params)); err != nil {
		return err
	}

	progress.report(100, "Conversion complete")
	return nil
}

// WorkbookConverter builds an XLSX workbook from delimited input.
//
// Parameters: csvDelimiter/csvQuote for reading CSV input, sheetName
// (string, default "Sheet1").
type WorkbookConverter struct{}

// NewWorkbookConverter creates a new WorkbookConverter.
func NewWorkbookConverter() *WorkbookConverter {
	return &WorkbookConverter{}
}

func (c *WorkbookConverter) InputFormats() []FileFormat {
	return []FileFormat{FormatCsv, FormatTsv}
}

func (c *WorkbookConverter) OutputFormats() []FileFormat {
	return []FileFormat{FormatXlsx}
}

func (c *WorkbookConverter) Convert(ctx context.Context, inputPath, outputPath string, params Parameters, progress ProgressFunc) error {
	if err := checkInputExists(inputPath); err != nil {
		return err
	}
	progress.report(0, "Reading input file...")

	content, err := readTextFile(inputPath, params)
	if err != nil {
		return err
	}
	rows, err := parseDelimited(content, DetectFormat(inputPath), params)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(40, "Building workbook...")
	f := excelize.NewFile()
	defer f.Close()

	sheet := params.String("sheetName", "Sheet1")
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	for i, row := range rows {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell coordinates: %w", err)
		}
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	progress.report(80, "Saving workbook...")
	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("save XLSX: %w", err)
	}

	progress.report(100, "Conversion complete")
	return nil
}
