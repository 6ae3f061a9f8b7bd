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

// Parameters is a named bag of optional, converter-specific settings.
// Names are case-sensitive and defined by each converter; there is no
// central schema. Accessors return the supplied default when a name is
// absent or the stored value has an incompatible type - they never panic.
//
// A Parameters value is built by the caller before a conversion and must
// not be mutated while the conversion runs. A nil map is a valid, empty bag.
type Parameters map[string]any

// String returns the string stored under name, or def.
func (p Parameters) String(name, def string) string {
	if v, ok := p[name]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// Int returns the integer stored under name, or def. Float values with no
// fractional part are accepted since JSON and YAML decoding produce float64.
func (p Parameters) Int(name string, def int) int {
	v, ok := p[name]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		if n == float64(int(n)) {
			return int(n)
		}
	}
	return def
}

// Bool returns the bool stored under name, or def.
func (p Parameters) Bool(name string, def bool) bool {
	if v, ok := p[name]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// Float returns the float stored under name, or def.
func (p Parameters) Float(name string, def float64) float64 {
	v, ok := p[name]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return def
}

// Rune returns the single character stored under name, or def. Both rune
// values and one-rune strings are accepted, so parameters decoded from YAML
// or JSON config files work without conversion.
func (p Parameters) Rune(name string, def rune) rune {
	v, ok := p[name]
	if !ok {
		return def
	}
	switch c := v.(type) {
	case rune:
		return c
	case string:
		runes := []rune(c)
		if len(runes) == 1 {
			return runes[0]
		}
	}
	return def
}
