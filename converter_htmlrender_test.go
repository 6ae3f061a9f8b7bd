package fileconv

import (
	"strings"
	"testing"
)

func TestTextToHtmlDocument(t *testing.T) {
	got := convertBuiltin(t, "first paragraph\n\nsecond <b>line</b>\nwith break\n", "in.txt", "out.html", nil)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Converted Document</title>",
		`<div class="content">`,
		"<p>first paragraph</p>",
		"second &lt;b&gt;line&lt;/b&gt;<br>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "<style>") {
		t.Error("unexpected <style> block with no css parameter")
	}
}

func TestTextToHtmlTitleEscaped(t *testing.T) {
	got := convertBuiltin(t, "hello\n", "in.txt", "out.html",
		Parameters{"title": "a <b> title", "css": "body { margin: 0 }"})

	if !strings.Contains(got, "<title>a &lt;b&gt; title</title>") {
		t.Errorf("title not escaped:\n%s", got)
	}
	if !strings.Contains(got, "<style>\nbody { margin: 0 }\n</style>") {
		t.Errorf("css not embedded:\n%s", got)
	}
}

func TestTextToHtmlNoLineBreaks(t *testing.T) {
	got := convertBuiltin(t, "one\ntwo\n", "in.txt", "out.html",
		Parameters{"preserveLineBreaks": false})
	if strings.Contains(got, "<br>") {
		t.Errorf("unexpected <br>:\n%s", got)
	}
	if !strings.Contains(got, "<p>one two</p>") {
		t.Errorf("lines not joined:\n%s", got)
	}
}

func TestMarkdownToHtml(t *testing.T) {
	got := convertBuiltin(t, "# Heading\n\nsome *emphasis*\n", "in.md", "out.html", nil)
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Heading") {
		t.Errorf("missing heading:\n%s", got)
	}
	if !strings.Contains(got, "<em>emphasis</em>") {
		t.Errorf("missing emphasis:\n%s", got)
	}
}

func TestCsvToHtmlTable(t *testing.T) {
	got := convertBuiltin(t, "h1,h2\na,b & c\n", "in.csv", "out.html",
		Parameters{"treatFirstLineAsHeader": true})

	for _, want := range []string{
		"<table>",
		"<th>h1</th><th>h2</th>",
		"<td>a</td><td>b &amp; c</td>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
