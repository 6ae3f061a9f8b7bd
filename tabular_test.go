package fileconv

import "testing"

func TestEscapeFieldCsv(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"with delimiter", "a,b", `"a,b"`},
		{"with quote", `say "hi"`, `"say ""hi"""`},
		{"with newline", "line1\nline2", "\"line1\nline2\""},
		{"with cr", "line1\rline2", "\"line1\rline2\""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := escapeField(tt.field, FormatCsv, ',', '"')
			if got != tt.want {
				t.Errorf("escapeField(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestEscapeFieldCsvCustomDelimiter(t *testing.T) {
	// Semicolon delimiter: commas pass through, semicolons get quoted.
	if got := escapeField("a,b", FormatCsv, ';', '"'); got != "a,b" {
		t.Errorf("escapeField(a,b) with ';' = %q, want unquoted", got)
	}
	if got := escapeField("a;b", FormatCsv, ';', '"'); got != `"a;b"` {
		t.Errorf("escapeField(a;b) with ';' = %q, want quoted", got)
	}
}

func TestEscapeFieldTsvLossy(t *testing.T) {
	// TSV cannot represent embedded tabs; they become single spaces.
	if got := escapeField("a\tb", FormatTsv, '\t', '"'); got != "a b" {
		t.Errorf("escapeField(a\\tb) for TSV = %q, want %q", got, "a b")
	}
	if got := escapeField("plain", FormatTsv, '\t', '"'); got != "plain" {
		t.Errorf("escapeField(plain) for TSV = %q, want unchanged", got)
	}
}

func TestDropHeader(t *testing.T) {
	two := [][]string{{"h1", "h2"}, {"a", "b"}}
	if got := dropHeader(two, true); len(got) != 1 || got[0][0] != "a" {
		t.Errorf("dropHeader(two rows, true) = %v, want data row only", got)
	}
	if got := dropHeader(two, false); len(got) != 2 {
		t.Errorf("dropHeader(two rows, false) = %v, want both rows", got)
	}

	// A header-only table keeps its single row as data.
	one := [][]string{{"h1", "h2"}}
	if got := dropHeader(one, true); len(got) != 1 {
		t.Errorf("dropHeader(single row, true) = %v, want the row kept", got)
	}
}

func TestSelectTable(t *testing.T) {
	tables := [][][]string{
		{{"a"}},
		{{"b"}},
	}

	got, err := selectTable(tables, Parameters{"tableIndex": 1})
	if err != nil {
		t.Fatal(err)
	}
	if got[0][0] != "b" {
		t.Errorf("selectTable index 1 = %v, want second table", got)
	}

	if _, err := selectTable(tables, Parameters{"tableIndex": 5}); err == nil {
		t.Error("expected error for out-of-range table index")
	}
	if _, err := selectTable(tables, Parameters{"tableIndex": -1}); err == nil {
		t.Error("expected error for negative table index")
	}
}
