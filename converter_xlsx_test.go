package fileconv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestCsvToXlsxRoundTrip(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "in.csv")
	xlsxPath := filepath.Join(dir, "mid.xlsx")
	outPath := filepath.Join(dir, "out.csv")
	input := "name,qty\nfoo,1\nbar,2\n"
	if err := os.WriteFile(csvPath, []byte(input), 0o644); err != nil {
		t.Fatal(err)
	}

	engine := New()
	if result := engine.ConvertFile(context.Background(), csvPath, xlsxPath, nil, nil); !result.Success {
		t.Fatalf("csv to xlsx: %v", result.Err)
	}
	if result := engine.ConvertFile(context.Background(), xlsxPath, outPath, nil, nil); !result.Success {
		t.Fatalf("xlsx to csv: %v", result.Err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != input {
		t.Errorf("round trip = %q, want %q", data, input)
	}
}

func TestCsvToXlsxSheetName(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "in.csv")
	xlsxPath := filepath.Join(dir, "out.xlsx")
	if err := os.WriteFile(csvPath, []byte("a,b\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result := New().ConvertFile(context.Background(), csvPath, xlsxPath,
		Parameters{"sheetName": "Data"}, nil)
	if !result.Success {
		t.Fatalf("csv to xlsx: %v", result.Err)
	}

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Data" {
		t.Errorf("sheets = %v, want [Data]", sheets)
	}
}

func TestXlsxToCsvHasHeader(t *testing.T) {
	dir := t.TempDir()
	xlsxPath := filepath.Join(dir, "in.xlsx")
	outPath := filepath.Join(dir, "out.csv")

	f := excelize.NewFile()
	for i, row := range [][]any{{"h1", "h2"}, {"a", "b"}} {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(xlsxPath); err != nil {
		t.Fatal(err)
	}
	f.Close()

	result := New().ConvertFile(context.Background(), xlsxPath, outPath,
		Parameters{"hasHeader": true}, nil)
	if !result.Success {
		t.Fatalf("xlsx to csv: %v", result.Err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a,b\n" {
		t.Errorf("xlsx to csv with hasHeader = %q", data)
	}
}

func TestXlsxMissingSheet(t *testing.T) {
	dir := t.TempDir()
	xlsxPath := filepath.Join(dir, "in.xlsx")
	f := excelize.NewFile()
	if err := f.SaveAs(xlsxPath); err != nil {
		t.Fatal(err)
	}
	f.Close()

	result := New().ConvertFile(context.Background(), xlsxPath, filepath.Join(dir, "out.csv"),
		Parameters{"sheetName": "Nope"}, nil)
	if result.Success {
		t.Fatal("expected failure for missing sheet")
	}
}
