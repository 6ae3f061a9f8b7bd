package fileconv

import (
	"strings"
	"testing"
)

const xmlCatalog = `<?xml version="1.0"?>
<catalog>
  <book id="1">
    <title>First</title>
    <author>
      <name>Alice</name>
    </author>
  </book>
  <book id="2">
    <title>Second</title>
    <author>
      <name>Bob</name>
    </author>
  </book>
</catalog>`

func TestXmlToCsv(t *testing.T) {
	got := convertBuiltin(t, xmlCatalog, "in.xml", "out.csv", nil)
	want := "@id,author.name,title\n1,Alice,First\n2,Bob,Second\n"
	if got != want {
		t.Errorf("xml to csv = %q, want %q", got, want)
	}
}

func TestXmlRootElementPath(t *testing.T) {
	got := convertBuiltin(t, xmlCatalog, "in.xml", "out.csv",
		Parameters{"rootElementPath": "//author"})
	want := "name\nAlice\nBob\n"
	if got != want {
		t.Errorf("xml with rootElementPath = %q, want %q", got, want)
	}
}

func TestXmlRootElementPathNoMatch(t *testing.T) {
	result := runConversion(t, xmlCatalog, "in.xml", "out.csv",
		Parameters{"rootElementPath": "//missing"})
	if result.Success {
		t.Fatal("expected failure for path with no matches")
	}
	if !strings.Contains(result.Err.Error(), "matched no elements") {
		t.Errorf("unexpected error: %v", result.Err)
	}
}

func TestXmlMaxDepth(t *testing.T) {
	// At depth 0 nested elements collapse to their inner text.
	got := convertBuiltin(t, xmlCatalog, "in.xml", "out.tsv",
		Parameters{"maxDepth": 0, "includeHeaders": false})
	want := "1\tAlice\tFirst\n2\tBob\tSecond\n"
	if got != want {
		t.Errorf("xml maxDepth 0 = %q, want %q", got, want)
	}
}

func TestXmlEmptyRoot(t *testing.T) {
	result := runConversion(t, "<root></root>", "in.xml", "out.csv", nil)
	if result.Success {
		t.Fatal("expected failure for root without record elements")
	}
}
