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
	"strings"

	"github.com/antchfx/xmlquery"
)

// XmlConverter flattens repeated XML elements into delimited rows.
//
// Parameters: rootElementPath (string, default "") is an XPath expression
// selecting the record elements; when empty, the element children of the
// document root are the records. Also honors maxDepth, flattenSeparator,
// and includeHeaders like the structured converter.
type XmlConverter struct{}

// NewXmlConverter creates a new XmlConverter.
func NewXmlConverter() *XmlConverter {
	return &XmlConverter{}
}

func (c *XmlConverter) InputFormats() []FileFormat {
	return []FileFormat{FormatXml}
}

func (c *XmlConverter) OutputFormats() []FileFormat {
	return []FileFormat{FormatCsv, FormatTsv}
}

func (c *XmlConverter) Convert(ctx context.Context, inputPath, outputPath string, params Parameters, progress ProgressFunc) error {
	if err := checkInputExists(inputPath); err != nil {
		return err
	}
	progress.report(0, "Reading XML document...")

	content, err := readTextFile(inputPath, params)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(25, "Parsing XML...")
	doc, err := xmlquery.Parse(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("parse XML: %w", err)
	}

	records, err := selectXMLRecords(doc, params.String("rootElementPath", ""))
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(60, "Flattening records...")
	sep := params.String("flattenSeparator", ".")
	maxDepth := params.Int("maxDepth", 3)

	var columns []string
	seen := make(map[string]struct{})
	flat := make([]map[string]string, 0, len(records))
	for i, rec := range records {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		fields := make(map[string]string)
		flattenXMLElement(rec, "", sep, maxDepth, fields)
		for _, key := range sortedKeys(fields) {
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				columns = append(columns, key)
			}
		}
		flat = append(flat, fields)
	}

	outFormat := DetectFormat(outputPath)
	rows := make([][]string, 0, len(flat)+1)
	if params.Bool("includeHeaders", true) {
		rows = append(rows, columns)
	}
	for _, fields := range flat {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = fields[col]
		}
		rows = append(rows, row)
	}

	if err := writeTextFile(outputPath, renderRows(rows, outFormat, params)); err != nil {
		return err
	}
	progress.report(100, "Conversion complete")
	return nil
}

// selectXMLRecords returns the record elements: the XPath matches when a
// path is given, or the document root's element children otherwise.
func selectXMLRecords(doc *xmlquery.Node, path string) ([]*xmlquery.Node, error) {
	if path != "" {
		records, err := xmlquery.QueryAll(doc, path)
		if err != nil {
			return nil, fmt.Errorf("root element path %q: %w", path, err)
		}
		if len(records) == 0 {
			return nil, fmt.Errorf("root element path %q matched no elements", path)
		}
		return records, nil
	}

	root := doc.SelectElement("*")
	if root == nil {
		return nil, fmt.Errorf("XML document has no root element")
	}
	var records []*xmlquery.Node
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			records = append(records, child)
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no record elements found under document root")
	}
	return records, nil
}

// flattenXMLElement flattens one record element: attributes and leaf
// elements become fields, nested elements recurse with separator-joined
// names up to maxDepth.
func flattenXMLElement(n *xmlquery.Node, prefix, sep string, depth int, fields map[string]string) {
	join := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + sep + name
	}

	for _, attr := range n.Attr {
		fields[join("@"+attr.Name.Local)] = attr.Value
	}

	hasChildElement := false
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}
		hasChildElement = true
		if depth > 0 {
			flattenXMLElement(child, join(child.Data), sep, depth-1, fields)
		} else {
			fields[join(child.Data)] = strings.TrimSpace(child.InnerText())
		}
	}

	if !hasChildElement {
		name := prefix
		if name == "" {
			name = n.Data
		}
		fields[name] = strings.TrimSpace(n.InnerText())
	}
}
