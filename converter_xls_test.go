package fileconv

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestXlsToCsv(t *testing.T) {
	fixture := filepath.Join("testdata", "sample.xls")
	if _, err := os.Stat(fixture); err != nil {
		t.Skipf("fixture %s not present", fixture)
	}

	outPath := filepath.Join(t.TempDir(), "out.csv")
	result := New().ConvertFile(context.Background(), fixture, outPath, nil, nil)
	if !result.Success {
		t.Fatalf("xls to csv: %v", result.Err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("empty output for non-empty workbook")
	}
}

func TestXlsInvalidFile(t *testing.T) {
	result := runConversion(t, "not an xls workbook", "in.xls", "out.csv", nil)
	if result.Success {
		t.Fatal("expected failure for invalid workbook")
	}
}

func TestXlsSheetIndexOutOfRange(t *testing.T) {
	fixture := filepath.Join("testdata", "sample.xls")
	if _, err := os.Stat(fixture); err != nil {
		t.Skipf("fixture %s not present", fixture)
	}

	outPath := filepath.Join(t.TempDir(), "out.csv")
	result := New().ConvertFile(context.Background(), fixture, outPath,
		Parameters{"sheetIndex": 99}, nil)
	if result.Success {
		t.Fatal("expected failure for out-of-range sheet index")
	}
}
