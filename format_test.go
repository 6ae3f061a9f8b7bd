package fileconv

import "testing"

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want FileFormat
	}{
		{"notes.txt", FormatTxt},
		{"NOTES.TXT", FormatTxt},
		{"a.TxT", FormatTxt},
		{"doc.md", FormatMarkdown},
		{"doc.markdown", FormatMarkdown},
		{"page.html", FormatHtml},
		{"page.htm", FormatHtml},
		{"data.csv", FormatCsv},
		{"data.tsv", FormatTsv},
		{"data.json", FormatJson},
		{"conf.yml", FormatYaml},
		{"conf.yaml", FormatYaml},
		{"feed.rss", FormatRss},
		{"feed.atom", FormatAtom},
		{"doc.docx", FormatDocx},
		{"report.pdf", FormatPdf},
		{"book.xlsx", FormatXlsx},
		{"book.xls", FormatXls},
		{"letter.rtf", FormatRtf},
		{"archive.zip", FormatZip},
		{"photo.jpg", FormatJpeg},
		{"photo.jpeg", FormatJpeg},
		{"dir/sub/file.csv", FormatCsv},
		{"x.unknownext", FormatUnknown},
		{"noextension", FormatUnknown},
		{"", FormatUnknown},
		{"trailing.", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DetectFormat(tt.path); got != tt.want {
				t.Errorf("DetectFormat(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	if got := FormatCsv.String(); got != "csv" {
		t.Errorf("FormatCsv.String() = %q, want %q", got, "csv")
	}
	if got := FileFormat(999).String(); got != "unknown" {
		t.Errorf("FileFormat(999).String() = %q, want %q", got, "unknown")
	}
}
