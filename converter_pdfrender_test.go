package fileconv

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestHeadingLine(t *testing.T) {
	tests := []struct {
		line  string
		level int
		text  string
		ok    bool
	}{
		{"# Title", 1, "Title", true},
		{"### Sub", 3, "Sub", true},
		{"  ## indented", 2, "indented", true},
		{"####### too deep", 0, "", false},
		{"#no space", 0, "", false},
		{"plain", 0, "", false},
		{"#", 0, "", false},
	}
	for _, tt := range tests {
		level, text, ok := headingLine(tt.line)
		if level != tt.level || text != tt.text || ok != tt.ok {
			t.Errorf("headingLine(%q) = (%d, %q, %v), want (%d, %q, %v)",
				tt.line, level, text, ok, tt.level, tt.text, tt.ok)
		}
	}
}

func TestMarkdownToPdf(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "in.md")
	outputPath := filepath.Join(dir, "out.pdf")
	md := "# Heading\n\nbody text\n"
	if err := os.WriteFile(inputPath, []byte(md), 0o644); err != nil {
		t.Fatal(err)
	}

	result := New().ConvertFile(context.Background(), inputPath, outputPath,
		Parameters{"title": "Doc Title", "fontSize": 12}, nil)
	if !result.Success {
		t.Fatalf("markdown to pdf: %v", result.Err)
	}
	info, err := os.Stat(outputPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty PDF output")
	}
}
