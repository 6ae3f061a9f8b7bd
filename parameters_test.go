package fileconv

import "testing"

func TestParametersDefaulting(t *testing.T) {
	empty := Parameters{}

	if got := empty.Int("missing", 42); got != 42 {
		t.Errorf("Int(missing) = %d, want 42", got)
	}
	if got := empty.String("missing", "fallback"); got != "fallback" {
		t.Errorf("String(missing) = %q, want fallback", got)
	}
	if got := empty.Bool("missing", true); got != true {
		t.Errorf("Bool(missing) = %v, want true", got)
	}
	if got := empty.Rune("csvDelimiter", ','); got != ',' {
		t.Errorf("Rune(csvDelimiter) = %q, want ','", got)
	}

	// A nil map is a valid, empty bag.
	var nilParams Parameters
	if got := nilParams.Int("anything", 7); got != 7 {
		t.Errorf("nil Parameters Int = %d, want 7", got)
	}
}

func TestParametersTypeMismatch(t *testing.T) {
	params := Parameters{
		"count": "not a number",
		"name":  123,
		"flag":  "yes",
	}

	if got := params.Int("count", 5); got != 5 {
		t.Errorf("Int with string value = %d, want default 5", got)
	}
	if got := params.String("name", "default"); got != "default" {
		t.Errorf("String with int value = %q, want default", got)
	}
	if got := params.Bool("flag", false); got != false {
		t.Errorf("Bool with string value = %v, want default false", got)
	}
}

func TestParametersCoercion(t *testing.T) {
	params := Parameters{
		"depth":  float64(3), // JSON decoding produces float64
		"ratio":  2,
		"quote":  "'", // one-rune strings work for Rune
		"wide":   "ab",
		"offset": float64(1.5),
	}

	if got := params.Int("depth", 0); got != 3 {
		t.Errorf("Int(depth) = %d, want 3", got)
	}
	if got := params.Float("ratio", 0); got != 2.0 {
		t.Errorf("Float(ratio) = %v, want 2.0", got)
	}
	if got := params.Rune("quote", '"'); got != '\'' {
		t.Errorf("Rune(quote) = %q, want '", got)
	}
	if got := params.Rune("wide", '"'); got != '"' {
		t.Errorf("Rune(wide) = %q, want default", got)
	}
	if got := params.Int("offset", 9); got != 9 {
		t.Errorf("Int(offset) with fractional float = %d, want default 9", got)
	}
}
