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

// Package textenc decodes text inputs of unknown or hinted character
// encoding to UTF-8.
package textenc

import (
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// Decode converts data to a UTF-8 string. If charsetHint is non-empty and
// names a known encoding it is tried first; otherwise the encoding is
// detected from the content. Decode never fails: undecodable input falls
// back to a raw UTF-8 interpretation.
func Decode(data []byte, charsetHint string) string {
	if charsetHint != "" {
		if enc := Lookup(charsetHint); enc != nil {
			if decoded, err := enc.NewDecoder().Bytes(data); err == nil {
				return string(decoded)
			}
		}
	}
	return decodeWithDetection(data)
}

func decodeWithDetection(data []byte) string {
	// Pure-ASCII or clean UTF-8 needs no detection.
	if utf8.Valid(data) {
		s := string(data)
		if !hasHighBytes(data) || !strings.ContainsRune(s, '�') {
			return s
		}
	}

	detector := chardet.NewTextDetector()
	results, err := detector.DetectAll(data)
	if err == nil {
		bestScore := -1 << 31
		bestText := ""
		for _, r := range results {
			enc := Lookup(r.Charset)
			if enc == nil {
				continue
			}
			decoded, err := enc.NewDecoder().Bytes(data)
			if err != nil {
				continue
			}
			text := string(decoded)
			if score := scoreDecoded(text, r.Confidence); score > bestScore {
				bestScore = score
				bestText = text
			}
		}
		if bestText != "" {
			return bestText
		}
	}

	return string(data)
}

func hasHighBytes(data []byte) bool {
	for _, b := range data {
		if b > 0x7F {
			return true
		}
	}
	return false
}

// scoreDecoded rates a candidate decoding. Replacement and control
// characters indicate a wrong charset; ordinary letters indicate a
// plausible one.
func scoreDecoded(text string, confidence int) int {
	score := confidence
	for _, r := range text {
		switch {
		case r == '�':
			score -= 10
		case r < 0x20 && r != '\n' && r != '\r' && r != '\t':
			score -= 5
		case r >= 0x3040 && r <= 0x30FF, // kana
			r >= 0x4E00 && r <= 0x9FFF, // CJK ideographs
			r >= 0xAC00 && r <= 0xD7A3: // hangul
			score += 2
		case r >= 'A' && r <= 'z':
			score++
		}
	}
	return score
}

// Lookup maps a charset name to a Go encoding, or nil if unknown.
func Lookup(charset string) encoding.Encoding {
	normalized := strings.ToLower(charset)
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ReplaceAll(normalized, "_", "")
	switch normalized {
	case "utf8", "utf8bom", "ascii", "usascii":
		return unicode.UTF8
	case "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "iso88591", "latin1":
		return charmap.ISO8859_1
	case "iso88592":
		return charmap.ISO8859_2
	case "iso88595":
		return charmap.ISO8859_5
	case "iso88597":
		return charmap.ISO8859_7
	case "iso88599":
		return charmap.ISO8859_9
	case "iso885915":
		return charmap.ISO8859_15
	case "windows1250", "cp1250":
		return charmap.Windows1250
	case "windows1251", "cp1251":
		return charmap.Windows1251
	case "windows1252", "cp1252":
		return charmap.Windows1252
	case "koi8r":
		return charmap.KOI8R
	case "shiftjis", "sjis", "cp932", "windows31j":
		return japanese.ShiftJIS
	case "eucjp":
		return japanese.EUCJP
	case "iso2022jp":
		return japanese.ISO2022JP
	case "euckr", "cp949":
		return korean.EUCKR
	case "gb2312", "gbk", "cp936", "gb18030":
		return simplifiedchinese.GBK
	case "big5", "cp950":
		return traditionalchinese.Big5
	}
	return nil
}
