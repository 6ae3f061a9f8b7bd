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
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HtmlRenderConverter renders plain text, Markdown, and delimited input as
// complete HTML documents.
//
// Parameters: title (string, default "Converted Document"), css (string,
// default "" = no stylesheet), preserveLineBreaks (bool, default true; when
// set, single newlines in plain text become <br> tags),
// treatFirstLineAsHeader (bool, default false; renders the first delimited
// row as <th> cells).
type HtmlRenderConverter struct{}

// NewHtmlRenderConverter creates a new HtmlRenderConverter.
func NewHtmlRenderConverter() *HtmlRenderConverter {
	return &HtmlRenderConverter{}
}

func (c *HtmlRenderConverter) InputFormats() []FileFormat {
	return []FileFormat{FormatTxt, FormatMarkdown, FormatCsv, FormatTsv}
}

func (c *HtmlRenderConverter) OutputFormats() []FileFormat {
	return []FileFormat{FormatHtml}
}

func (c *HtmlRenderConverter) Convert(ctx context.Context, inputPath, outputPath string, params Parameters, progress ProgressFunc) error {
	if err := checkInputExists(inputPath); err != nil {
		return err
	}
	progress.report(0, "Reading input file...")

	content, err := readTextFile(inputPath, params)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(35, "Rendering HTML...")
	var body string
	switch DetectFormat(inputPath) {
	case FormatMarkdown:
		body, err = markdownToHTML(content)
	case FormatCsv, FormatTsv:
		body, err = delimitedToHTMLTable(content, DetectFormat(inputPath), params)
	default:
		body = textToHTML(content, params.Bool("preserveLineBreaks", true))
	}
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(75, "Writing document...")
	doc := renderHTMLDocument(body, params.String("title", "Converted Document"), params.String("css", ""))
	if err := writeTextFile(outputPath, doc); err != nil {
		return err
	}

	progress.report(100, "Conversion complete")
	return nil
}

func renderHTMLDocument(body, title, css string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	if css != "" {
		fmt.Fprintf(&b, "<style>\n%s\n</style>\n", css)
	}
	b.WriteString("</head>\n<body>\n<div class=\"content\">\n")
	b.WriteString(body)
	b.WriteString("\n</div>\n</body>\n</html>\n")
	return b.String()
}

// textToHTML escapes plain text and converts blank-line-separated blocks to
// paragraphs. Single newlines become <br> when preserveLineBreaks is set.
func textToHTML(content string, preserveLineBreaks bool) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	var paragraphs []string
	for _, block := range strings.Split(content, "\n\n") {
		block = strings.TrimRight(block, "\n")
		if strings.TrimSpace(block) == "" {
			continue
		}
		escaped := html.EscapeString(block)
		if preserveLineBreaks {
			escaped = strings.ReplaceAll(escaped, "\n", "<br>\n")
		} else {
			escaped = strings.ReplaceAll(escaped, "\n", " ")
		}
		paragraphs = append(paragraphs, "<p>"+escaped+"</p>")
	}
	return strings.Join(paragraphs, "\n")
}

func markdownToHTML(content string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var b strings.Builder
	if err := md.Convert([]byte(content), &b); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return b.String(), nil
}

func delimitedToHTMLTable(content string, inFormat FileFormat, params Parameters) (string, error) {
	rows, err := parseDelimited(content, inFormat, params)
	if err != nil {
		return "", err
	}
	header := params.Bool("treatFirstLineAsHeader", false)

	var b strings.Builder
	b.WriteString("<table>\n")
	for i, row := range rows {
		tag := "td"
		if header && i == 0 {
			tag = "th"
		}
		b.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(&b, "<%s>%s</%s>", tag, html.EscapeString(cell), tag)
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>")
	return b.String(), nil
}
