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
	"strconv"
	"strings"
)

// RtfConverter strips RTF markup down to plain text.
//
// The converter performs a single left-to-right scan tracking control-word
// state and brace depth: control words are consumed and discarded, \'XX hex
// escapes decode to their character code, \par and \line emit line breaks,
// and ordinary characters are copied through.
type RtfConverter struct{}

// NewRtfConverter creates a new RtfConverter.
func NewRtfConverter() *RtfConverter {
	return &RtfConverter{}
}

func (c *RtfConverter) InputFormats() []FileFormat {
	return []FileFormat{FormatRtf}
}

func (c *RtfConverter) OutputFormats() []FileFormat {
	return []FileFormat{FormatTxt}
}

func (c *RtfConverter) Convert(ctx context.Context, inputPath, outputPath string, params Parameters, progress ProgressFunc) error {
	if err := checkInputExists(inputPath); err != nil {
		return err
	}
	progress.report(0, "Reading RTF document...")

	content, err := readTextFile(inputPath, params)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(40, "Stripping RTF markup...")
	text := stripRTF(content)
	if err := ctx.Err(); err != nil {
		return err
	}

	progress.report(80, "Writing output...")
	if err := writeTextFile(outputPath, text+"\n"); err != nil {
		return err
	}

	progress.report(100, "Conversion complete")
	return nil
}

func stripRTF(content string) string {
	var out strings.Builder
	depth := 0
	i := 0
	for i < len(content) {
		c := content[i]
		switch c {
		case '{':
			if end, ok := destinationGroupEnd(content, i); ok {
				i = end
				continue
			}
			depth++
			i++
		case '}':
			if depth > 0 {
				depth--
			}
			i++
		case '\\':
			i = consumeControl(content, i, &out)
		case '\r', '\n':
			// Raw line breaks in RTF source are not document content.
			i++
		default:
			out.WriteByte(c)
			i++
		}
	}
	return strings.TrimSpace(out.String())
}

// destinationGroupEnd reports whether the group opening at i is a destination
// whose content is metadata rather than document text ({\*...}, font and
// color tables, and similar), returning the position just past its closing
// brace when it is.
func destinationGroupEnd(content string, i int) (int, bool) {
	j := i + 1
	if j >= len(content) || content[j] != '\\' {
		return 0, false
	}
	j++
	if j < len(content) && content[j] == '*' {
		return skipGroup(content, i), true
	}
	start := j
	for j < len(content) && isRTFLetter(content[j]) {
		j++
	}
	switch content[start:j] {
	case "fonttbl", "colortbl", "stylesheet", "info", "pict", "themedata":
		return skipGroup(content, i), true
	}
	return 0, false
}

// skipGroup returns the position just past the brace-balanced group at i.
func skipGroup(content string, i int) int {
	depth := 0
	for ; i < len(content); i++ {
		switch content[i] {
		case '\\':
			i++ // escaped character, including \{ and \}
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return i
}

// consumeControl handles the token starting at the backslash at position i
// and returns the position after it.
func consumeControl(content string, i int, out *strings.Builder) int {
	i++ // skip the backslash
	if i >= len(content) {
		return i
	}

	c := content[i]

	// Hex-escaped character: \'XX
	if c == '\'' && i+2 < len(content) {
		if code, err := strconv.ParseUint(content[i+1:i+3], 16, 8); err == nil {
			out.WriteRune(rune(code))
			return i + 3
		}
		return i + 1
	}

	// Escaped literal or special shorthand.
	if !isRTFLetter(c) {
		switch c {
		case '\\', '{', '}':
			out.WriteByte(c)
		case '~':
			out.WriteByte(' ')
		}
		return i + 1
	}

	// Control word: letters, then optional signed numeric parameter, then
	// an optional space delimiter that belongs to the word.
	start := i
	for i < len(content) && isRTFLetter(content[i]) {
		i++
	}
	word := content[start:i]

	numStart := i
	if i < len(content) && content[i] == '-' {
		i++
	}
	for i < len(content) && content[i] >= '0' && content[i] <= '9' {
		i++
	}
	param := content[numStart:i]

	if i < len(content) && content[i] == ' ' {
		i++
	}

	switch word {
	case "par", "line":
		out.WriteByte('\n')
	case "tab":
		out.WriteByte('\t')
	case "u":
		// Unicode escape carries the code point as its parameter; the
		// character after it is the non-Unicode fallback and is skipped.
		if code, err := strconv.Atoi(param); err == nil && code > 0 {
			out.WriteRune(rune(code))
			if i < len(content) && content[i] == '?' {
				i++
			}
		}
	}
	return i
}

func isRTFLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
