package cli

import "testing"

func TestCoerceParamValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"false", false},
		{"42", 42},
		{"-3", -3},
		{"2.5", 2.5},
		{"items", "items"},
		{";", ";"},
		{"", ""},
		{"TRUE", "TRUE"}, // only lower-case true/false are booleans
	}
	for _, tt := range tests {
		if got := coerceParamValue(tt.in); got != tt.want {
			t.Errorf("coerceParamValue(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}
