package fileconv

import (
	"strings"
	"testing"
)

const rssFixture = `<?xml version="1.0"?>
<rss version="2.0">
<channel>
<title>Example Feed</title>
<description>Test channel</description>
<item>
<title>First Post</title>
<link>https://example.com/1</link>
<pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
<description>Hello, world</description>
</item>
<item>
<title>Second Post</title>
<link>https://example.com/2</link>
<description>Another entry</description>
</item>
</channel>
</rss>`

func TestRssToCsv(t *testing.T) {
	got := convertBuiltin(t, rssFixture, "in.rss", "out.csv", nil)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), got)
	}
	if lines[0] != "title,link,published,description" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "First Post") || !strings.Contains(lines[1], "https://example.com/1") {
		t.Errorf("first item row = %q", lines[1])
	}
	if !strings.Contains(lines[1], `"Hello, world"`) {
		t.Errorf("description not quoted = %q", lines[1])
	}
}

func TestRssToCsvNoHeaders(t *testing.T) {
	got := convertBuiltin(t, rssFixture, "in.rss", "out.tsv",
		Parameters{"includeHeaders": false})
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), got)
	}
	if strings.HasPrefix(lines[0], "title") {
		t.Errorf("unexpected header row: %q", lines[0])
	}
}

func TestRssToText(t *testing.T) {
	got := convertBuiltin(t, rssFixture, "in.rss", "out.txt", nil)
	for _, want := range []string{
		"Example Feed\n============",
		"First Post",
		"https://example.com/2",
		"Published: Mon, 02 Jan 2006 15:04:05 GMT",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestAtomToCsv(t *testing.T) {
	atom := `<?xml version="1.0"?>
<feed xmlns="http://www.w3.org/2005/Atom">
<title>Atom Feed</title>
<entry>
<title>Entry One</title>
<link href="https://example.com/a"/>
<updated>2006-01-02T15:04:05Z</updated>
<summary>Summary text</summary>
</entry>
</feed>`
	got := convertBuiltin(t, atom, "in.atom", "out.csv", nil)
	if !strings.Contains(got, "Entry One") || !strings.Contains(got, "https://example.com/a") {
		t.Errorf("atom to csv = %q", got)
	}
}

func TestFeedInvalid(t *testing.T) {
	result := runConversion(t, "not a feed at all", "in.rss", "out.csv", nil)
	if result.Success {
		t.Fatal("expected failure for unparseable feed")
	}
}
