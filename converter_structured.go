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
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// StructuredConverter flattens JSON and YAML documents into delimited rows,
// and transcodes between JSON and YAML.
//
// Parameters for tabular output: arrayPath (string, default "" = auto-detect),
// maxDepth (int, default 3), flattenSeparator (string, default "."),
// includeHeaders (bool, default true).
//
// Record location: an explicit dot-separated arrayPath is followed through
// nested objects and must end at an array. Without one, the document root is
// used if it is itself an array; otherwise the first array-valued property
// (in sorted key order) is used; otherwise the whole document is treated as
// a single record.
type StructuredConverter struct{}

// NewStructuredConverter creates a new StructuredConverter.
func NewStructuredConverter() *StructuredConverter {
	return &StructuredConverter{}
}

func (c *StructuredConverter) InputFormats() []FileFormat {
	return []FileFormat{FormatJson, FormatYaml}
}

func (c *StructuredConverter) OutputFormats() []FileFormat {
	return []FileFormat{FormatCsv, FormatTsv, FormatJson, FormatYaml}
}

func (c *StructuredConverter) Convert(ctx context.Context, inputPath, outputPath string, params Parameters, progress ProgressFunc) error {
	if err := checkInputExists(inputPath); err != nil {
		return err
	}
	progress.report(0, "Reading input document...")

	content, err := readTextFile(inputPath, params)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(20, "Parsing document...")
	doc, err := decodeStructured(content, DetectFormat(inputPath))
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	outFormat := DetectFormat(outputPath)
	var output string
	switch outFormat {
	case FormatJson, FormatYaml:
		progress.report(60, "Re-encoding document...")
		output, err = encodeStructured(doc, outFormat)
	default:
		progress.report(60, "Flattening records...")
		output, err = flattenToDelimited(ctx, doc, outFormat, params)
	}
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := writeTextFile(outputPath, output); err != nil {
		return err
	}
	progress.report(100, "Conversion complete")
	return nil
}

func decodeStructured(content string, format FileFormat) (any, error) {
	if format == FormatYaml {
		var doc any
		if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
		return doc, nil
	}
	dec := json.NewDecoder(strings.NewReader(content))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	return doc, nil
}

func encodeStructured(doc any, format FileFormat) (string, error) {
	if format == FormatYaml {
		// json.Number is a string type; left alone it would round-trip to a
		// quoted YAML scalar.
		out, err := yaml.Marshal(plainNumbers(doc))
		if err != nil {
			return "", fmt.Errorf("encode YAML: %w", err)
		}
		return string(out), nil
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode JSON: %w", err)
	}
	return string(out) + "\n", nil
}

func flattenToDelimited(ctx context.Context, doc any, outFormat FileFormat, params Parameters) (string, error) {
	records, err := locateRecords(doc, params.String("arrayPath", ""))
	if err != nil {
		return "", err
	}

	maxDepth := params.Int("maxDepth", 3)
	sep := params.String("flattenSeparator", ".")

	// Flatten every record, building the union column set in order of
	// first appearance (keys within a record visited in sorted order).
	var columns []string
	seen := make(map[string]struct{})
	flat := make([]map[string]string, 0, len(records))
	for i, rec := range records {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return "", err
			}
		}
		fields := make(map[string]string)
		flattenValue(rec, "", sep, maxDepth, fields)
		for _, key := range sortedKeys(fields) {
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				columns = append(columns, key)
			}
		}
		flat = append(flat, fields)
	}

	rows := make([][]string, 0, len(flat)+1)
	if params.Bool("includeHeaders", true) {
		rows = append(rows, columns)
	}
	for _, fields := range flat {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = fields[col] // missing properties yield empty cells
		}
		rows = append(rows, row)
	}
	return renderRows(rows, outFormat, params), nil
}

// locateRecords finds the record array to convert.
func locateRecords(doc any, arrayPath string) ([]any, error) {
	if arrayPath != "" {
		node := doc
		for _, part := range strings.Split(arrayPath, ".") {
			obj, ok := toStringMap(node)
			if !ok {
				return nil, fmt.Errorf("array path %q: %q is not an object", arrayPath, part)
			}
			node, ok = obj[part]
			if !ok {
				return nil, fmt.Errorf("array path %q: property %q not found", arrayPath, part)
			}
		}
		arr, ok := node.([]any)
		if !ok {
			return nil, fmt.Errorf("array path %q does not point to an array", arrayPath)
		}
		return arr, nil
	}

	if arr, ok := doc.([]any); ok {
		return arr, nil
	}
	if obj, ok := toStringMap(doc); ok {
		for _, key := range sortedMapKeys(obj) {
			if arr, ok := obj[key].([]any); ok {
				return arr, nil
			}
		}
	}
	// No array anywhere: the whole document is one record.
	return []any{doc}, nil
}

// flattenValue flattens v into fields under the given key prefix. Nested
// objects recurse up to maxDepth with separator-joined names; arrays are
// serialized back to their literal JSON form rather than expanded.
func flattenValue(v any, prefix, sep string, depth int, fields map[string]string) {
	if obj, ok := toStringMap(v); ok && depth > 0 {
		for key, val := range obj {
			name := key
			if prefix != "" {
				name = prefix + sep + key
			}
			flattenValue(val, name, sep, depth-1, fields)
		}
		return
	}
	if prefix == "" {
		prefix = "value"
	}
	fields[prefix] = scalarText(v)
}

// scalarText renders a leaf value as cell text.
func scalarText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	case []any, map[string]any:
		out, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(out)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// plainNumbers rewrites json.Number leaves as int64 or float64 so YAML
// encoding emits unquoted numeric scalars.
func plainNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = plainNumbers(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = plainNumbers(item)
		}
		return out
	}
	return v
}

// toStringMap normalizes JSON and YAML object representations.
func toStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprintf("%v", k)] = val
		}
		return out, true
	}
	return nil, false
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedMapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
