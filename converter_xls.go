package fileconv

import (
	"context"
	"fmt"

	"github.com/extrame/xls"
)

// XlsConverter exports legacy XLS worksheets to delimited formats.
//
// Parameters: sheetIndex (int, default 0), hasHeader (bool, default false).
type XlsConverter struct{}

// NewXlsConverter creates a new XlsConverter.
func NewXlsConverter() *XlsConverter {
	return &XlsConverter{}
}

func (c *XlsConverter) InputFormats() []FileFormat {
	return []FileFormat{FormatXls}
}

func (c *XlsConverter) OutputFormats() []FileFormat {
	return []FileFormat{FormatCsv, FormatTsv}
}

func (c *XlsConverter) Convert(ctx context.Context, inputPath, outputPath string, params Parameters, progress ProgressFunc) error {
	if err := checkInputExists(inputPath); err != nil {
		return err
	}
	progress.report(0, "Opening workbook...")

	wb, err := xls.Open(inputPath, "utf-8")
	if err != nil {
		return fmt.Errorf("open XLS: %w", err)
	}

	sheetIndex := params.Int("sheetIndex", 0)
	if sheetIndex < 0 || sheetIndex >= wb.NumSheets() {
		return fmt.Errorf("sheet index %d out of range: workbook has %d sheet(s)", sheetIndex, wb.NumSheets())
	}
	sheet := wb.GetSheet(sheetIndex)
	if sheet == nil {
		return fmt.Errorf("sheet %d is empty", sheetIndex)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(40, "Reading rows...")
	var rows [][]string
	maxRow := int(sheet.MaxRow)
	for rowIdx := 0; rowIdx <= maxRow; rowIdx++ {
		if rowIdx%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		row := sheet.Row(rowIdx)
		if row == nil {
			continue
		}
		var cells []string
		for colIdx := 0; colIdx < row.LastCol(); colIdx++ {
			cells = append(cells, row.Col(colIdx))
		}
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	rows = dropHeader(rows, params.Bool("hasHeader", false))

	progress.report(75, "Writing rows...")
	outFormat := DetectFormat(outputPath)
	if err := writeTextFile(outputPath, renderRows(rows, outFormat, params)); err != nil {
		return err
	}

	progress.report(100, "Conversion complete")
	return nil
}
