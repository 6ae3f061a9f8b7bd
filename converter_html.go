// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package fileconv

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"golang.org/x/net/html"
)

// HtmlConverter extracts content from HTML documents: tables into delimited
// formats, plain text, or a full Markdown rendering.
//
// Parameters for the tabular legs: tableIndex (int, default 0) selects which
// table, hasHeader (bool, default false) drops the header row.
type HtmlConverter struct{}

// NewHtmlConverter creates a new HtmlConverter.
func NewHtmlConverter() *HtmlConverter {
	return &HtmlConverter{}
}

func (c *HtmlConverter) InputFormats() []FileFormat {
	return []FileFormat{FormatHtml}
}

func (c *HtmlConverter) OutputFormats() []FileFormat {
	return []FileFormat{FormatCsv, FormatTsv, FormatTxt, FormatMarkdown}
}

func (c *HtmlConverter) Convert(ctx context.Context, inputPath, outputPath string, params Parameters, progress ProgressFunc) error {
	if err := checkInputExists(inputPath); err != nil {
		return err
	}
	progress.report(0, "Reading HTML document...")

	content, err := readTextFile(inputPath, params)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(30, "Extracting content...")
	outFormat := DetectFormat(outputPath)

	var output string
	switch outFormat {
	case FormatMarkdown:
		output, err = htmlToMarkdown(content)
	case FormatTxt:
		output, err = htmlToText(content)
	default:
		output, err = c.extractTable(content, outFormat, params)
	}
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(80, "Writing output...")
	if err := writeTextFile(outputPath, output); err != nil {
		return err
	}

	progress.report(100, "Conversion complete")
	return nil
}

func (c *HtmlConverter) extractTable(content string, outFormat FileFormat, params Parameters) (string, error) {
	tables, err := extractHTMLTables(content)
	if err != nil {
		return "", err
	}
	if len(tables) == 0 {
		return "", fmt.Errorf("no tables found in HTML document")
	}
	rows, err := selectTable(tables, params)
	if err != nil {
		return "", err
	}
	rows = dropHeader(rows, params.Bool("hasHeader", false))
	return renderRows(rows, outFormat, params), nil
}

// extractHTMLTables walks the parsed document and collects every <table> as
// a row matrix. Cells are the flattened text of <td>/<th> elements.
func extractHTMLTables(content string) ([][][]string, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	var tables [][][]string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "table" {
			tables = append(tables, htmlTableRows(n))
			return // nested tables are counted with their parent
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return tables, nil
}

func htmlTableRows(table *html.Node) [][]string {
	var rows [][]string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			var cells []string
			for cell := n.FirstChild; cell != nil; cell = cell.NextSibling {
				if cell.Type == html.ElementNode && (cell.Data == "td" || cell.Data == "th") {
					cells = append(cells, strings.TrimSpace(htmlNodeText(cell)))
				}
			}
			if len(cells) > 0 {
				rows = append(rows, cells)
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(table)
	return rows
}

func htmlNodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return ""
	}
	var b strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		b.WriteString(htmlNodeText(child))
	}
	return b.String()
}

// htmlToText strips markup and returns the document's visible text with
// block elements separated by newlines.
func htmlToText(content string) (string, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("parse HTML: %w", err)
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "head":
				return
			case "br":
				b.WriteString("\n")
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
		if n.Type == html.ElementNode && isBlockElement(n.Data) {
			b.WriteString("\n")
		}
	}
	walk(doc)

	// Collapse runs of blank lines left behind by nested blocks.
	text := regexp.MustCompile(`\n{3,}`).ReplaceAllString(b.String(), "\n\n")
	return strings.TrimSpace(text) + "\n", nil
}

func isBlockElement(name string) bool {
	switch name {
	case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6", "li", "tr", "table", "ul", "ol", "blockquote", "pre", "section", "article":
		return true
	}
	return false
}

// htmlToMarkdown converts an HTML document to Markdown.
func htmlToMarkdown(content string) (string, error) {
	content = removeScriptAndStyle(content)

	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle("atx"),
			),
			table.NewTablePlugin(),
		),
	)
	md, err := conv.ConvertString(content)
	if err != nil {
		return "", fmt.Errorf("convert HTML to markdown: %w", err)
	}
	return truncateDataURIs(md), nil
}

var (
	reScript  = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	reStyle   = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	reDataURI = regexp.MustCompile(`(data:[a-zA-Z0-9/+.-]+;base64,)[A-Za-z0-9+/=]{64,}`)
)

// removeScriptAndStyle removes <script> and <style> tags and their content.
func removeScriptAndStyle(content string) string {
	content = reScript.ReplaceAllString(content, "")
	content = reStyle.ReplaceAllString(content, "")
	return content
}

// truncateDataURIs truncates large base64 data URIs to data:mime/type;base64...
func truncateDataURIs(md string) string {
	return reDataURI.ReplaceAllString(md, "${1}...")
}
