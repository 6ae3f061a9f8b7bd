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
	"path/filepath"
	"strings"
)

// FileFormat identifies the semantic type of a file. Formats are derived
// exclusively from the file extension, never from content.
type FileFormat int

const (
	// FormatUnknown is returned whenever detection fails.
	FormatUnknown FileFormat = iota

	// Document formats
	FormatTxt
	FormatMarkdown
	FormatHtml
	FormatRtf
	FormatDocx
	FormatPdf
	FormatEpub

	// Spreadsheet / tabular formats
	FormatCsv
	FormatTsv
	FormatXlsx
	FormatXls

	// Structured data formats
	FormatJson
	FormatYaml
	FormatXml
	FormatRss
	FormatAtom

	// Image formats
	FormatPng
	FormatJpeg

	// Archive formats
	FormatZip
)

var formatNames = map[FileFormat]string{
	FormatUnknown:  "unknown",
	FormatTxt:      "txt",
	FormatMarkdown: "markdown",
	FormatHtml:     "html",
	FormatRtf:      "rtf",
	FormatDocx:     "docx",
	FormatPdf:      "pdf",
	FormatEpub:     "epub",
	FormatCsv:      "csv",
	FormatTsv:      "tsv",
	FormatXlsx:     "xlsx",
	FormatXls:      "xls",
	FormatJson:     "json",
	FormatYaml:     "yaml",
	FormatXml:      "xml",
	FormatRss:      "rss",
	FormatAtom:     "atom",
	FormatPng:      "png",
	FormatJpeg:     "jpeg",
	FormatZip:      "zip",
}

func (f FileFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// extensionFormats maps lower-case extensions (without the dot) to formats.
// Multiple extensions may map to the same format.
var extensionFormats = map[string]FileFormat{
	"txt":      FormatTxt,
	"text":     FormatTxt,
	"log":      FormatTxt,
	"md":       FormatMarkdown,
	"markdown": FormatMarkdown,
	"html":     FormatHtml,
	"htm":      FormatHtml,
	"rtf":      FormatRtf,
	"docx":     FormatDocx,
	"pdf":      FormatPdf,
	"epub":     FormatEpub,
	"csv":      FormatCsv,
	"tsv":      FormatTsv,
	"xlsx":     FormatXlsx,
	"xls":      FormatXls,
	"json":     FormatJson,
	"yaml":     FormatYaml,
	"yml":      FormatYaml,
	"xml":      FormatXml,
	"rss":      FormatRss,
	"atom":     FormatAtom,
	"png":      FormatPng,
	"jpg":      FormatJpeg,
	"jpeg":     FormatJpeg,
	"zip":      FormatZip,
}

// DetectFormat maps a path's extension to a FileFormat. It is a pure, total
// function: a missing, empty, or unrecognized extension yields FormatUnknown.
// Matching is case-insensitive. No I/O is performed.
func DetectFormat(path string) FileFormat {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return FormatUnknown
	}
	if f, ok := extensionFormats[ext]; ok {
		return f
	}
	return FormatUnknown
}
