package fileconv

import "testing"

func TestStripRTF(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"basic formatting",
			`{\rtf1\ansi Hello \b World\b0!}`,
			"Hello World!",
		},
		{
			"paragraph breaks",
			`{\rtf1 first\par second\line third}`,
			"first\nsecond\nthird",
		},
		{
			"tab",
			`{\rtf1 a\tab b}`,
			"a\tb",
		},
		{
			"hex escape",
			`{\rtf1 caf\'e9}`,
			"café",
		},
		{
			"unicode escape with fallback",
			`{\rtf1 \u8364? euro}`,
			"€ euro",
		},
		{
			"escaped literals",
			`{\rtf1 a\{b\}c\\d}`,
			`a{b}c\d`,
		},
		{
			"non-breaking space",
			`{\rtf1 a\~b}`,
			"a b",
		},
		{
			"font table skipped",
			`{\rtf1\ansi{\fonttbl{\f0\fswiss Helvetica;}}\f0 visible text}`,
			"visible text",
		},
		{
			"starred destination skipped",
			`{\rtf1{\*\generator Riched20;}body}`,
			"body",
		},
		{
			"raw newlines ignored",
			"{\\rtf1 one\ntwo}",
			"onetwo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripRTF(tt.input); got != tt.want {
				t.Errorf("stripRTF(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRtfToTxt(t *testing.T) {
	got := convertBuiltin(t, `{\rtf1\ansi Converted \b content\b0 .\par}`, "in.rtf", "out.txt", nil)
	if got != "Converted content.\n" {
		t.Errorf("rtf to txt = %q", got)
	}
}
