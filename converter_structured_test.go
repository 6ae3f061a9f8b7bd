package fileconv

import (
	"strings"
	"testing"
)

func TestJsonToCsvAutoDetect(t *testing.T) {
	input := `{"items":[{"id":1,"name":"x"},{"id":2,"name":"y"}]}`
	got := convertBuiltin(t, input, "in.json", "out.csv", nil)
	want := "id,name\n1,x\n2,y\n"
	if got != want {
		t.Errorf("json to csv = %q, want %q", got, want)
	}
}

func TestJsonToCsvRootArray(t *testing.T) {
	input := `[{"a":1},{"a":2,"b":"extra"}]`
	got := convertBuiltin(t, input, "in.json", "out.csv", nil)
	// The union column set grows as records introduce keys; missing
	// properties become empty cells.
	want := "a,b\n1,\n2,extra\n"
	if got != want {
		t.Errorf("json to csv = %q, want %q", got, want)
	}
}

func TestJsonToCsvArrayPath(t *testing.T) {
	input := `{"meta":{"count":2},"data":{"rows":[{"v":10},{"v":20}]}}`
	got := convertBuiltin(t, input, "in.json", "out.csv",
		Parameters{"arrayPath": "data.rows"})
	want := "v\n10\n20\n"
	if got != want {
		t.Errorf("json to csv with arrayPath = %q, want %q", got, want)
	}
}

func TestJsonToCsvBadArrayPath(t *testing.T) {
	input := `{"data":{"rows":[]}}`
	result := runConversion(t, input, "in.json", "out.csv",
		Parameters{"arrayPath": "data.missing"})
	if result.Success {
		t.Fatal("expected failure for missing array path")
	}
	if !strings.Contains(result.Err.Error(), "missing") {
		t.Errorf("error should name the missing property: %v", result.Err)
	}
}

func TestJsonToCsvNestedFlattening(t *testing.T) {
	input := `[{"user":{"name":"alice","address":{"city":"oslo"}},"active":true}]`
	got := convertBuiltin(t, input, "in.json", "out.csv", nil)
	want := "active,user.address.city,user.name\ntrue,oslo,alice\n"
	if got != want {
		t.Errorf("nested flattening = %q, want %q", got, want)
	}
}

func TestJsonToCsvFlattenSeparator(t *testing.T) {
	input := `[{"a":{"b":1}}]`
	got := convertBuiltin(t, input, "in.json", "out.csv",
		Parameters{"flattenSeparator": "_"})
	want := "a_b\n1\n"
	if got != want {
		t.Errorf("custom separator = %q, want %q", got, want)
	}
}

func TestJsonToCsvMaxDepth(t *testing.T) {
	// With maxDepth 1 the nested object stays a single JSON-literal cell.
	input := `[{"a":{"b":{"c":1}}}]`
	got := convertBuiltin(t, input, "in.json", "out.csv",
		Parameters{"maxDepth": 1})
	want := "a\n\"{\"\"b\"\":{\"\"c\"\":1}}\"\n"
	if got != want {
		t.Errorf("maxDepth 1 = %q, want %q", got, want)
	}
}

func TestJsonToCsvNoHeaders(t *testing.T) {
	input := `[{"id":1},{"id":2}]`
	got := convertBuiltin(t, input, "in.json", "out.csv",
		Parameters{"includeHeaders": false})
	want := "1\n2\n"
	if got != want {
		t.Errorf("includeHeaders false = %q, want %q", got, want)
	}
}

func TestJsonToCsvScalarDocument(t *testing.T) {
	// A document with no array anywhere becomes a single record.
	got := convertBuiltin(t, `{"name":"solo","n":42}`, "in.json", "out.csv", nil)
	want := "n,name\n42,solo\n"
	if got != want {
		t.Errorf("scalar document = %q, want %q", got, want)
	}
}

func TestJsonToYamlTranscode(t *testing.T) {
	got := convertBuiltin(t, `{"name":"x","count":3}`, "in.json", "out.yaml", nil)
	if !strings.Contains(got, "name: x") || !strings.Contains(got, "count: 3") {
		t.Errorf("json to yaml = %q", got)
	}
}

func TestYamlToJsonTranscode(t *testing.T) {
	got := convertBuiltin(t, "name: x\nitems:\n  - 1\n  - 2\n", "in.yaml", "out.json", nil)
	for _, want := range []string{`"name": "x"`, `"items"`} {
		if !strings.Contains(got, want) {
			t.Errorf("yaml to json missing %q:\n%s", want, got)
		}
	}
}

func TestYamlToCsv(t *testing.T) {
	input := "records:\n  - id: 1\n    name: a\n  - id: 2\n    name: b\n"
	got := convertBuiltin(t, input, "in.yml", "out.csv", nil)
	want := "id,name\n1,a\n2,b\n"
	if got != want {
		t.Errorf("yaml to csv = %q, want %q", got, want)
	}
}
