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

import "context"

// Converter is the interface all format converters implement.
//
// A converter declares its supported input and output format sets; the engine
// treats every (input, output) pair in the cross product as supported. Convert
// performs the transformation for one such pair:
//
//   - it must emit a progress tick near 0% before substantive work and one at
//     100% on success,
//   - it must check ctx at each phase boundary (after read, after transform,
//     before write) and abort promptly with ctx.Err() when canceled,
//   - it reads its settings exclusively through the Parameters accessors so
//     absent parameters fall back to documented defaults,
//   - it returns a plain error for any failure; the cancellation error is
//     returned unwrapped so the engine's single cancellation branch can
//     recognize it.
//
// The engine verifies the input file exists before dispatch, but converters
// may be invoked directly and therefore re-check it themselves.
type Converter interface {
	// InputFormats returns the set of formats this converter reads.
	InputFormats() []FileFormat

	// OutputFormats returns the set of formats this converter writes.
	OutputFormats() []FileFormat

	// Convert transforms inputPath into outputPath.
	Convert(ctx context.Context, inputPath, outputPath string, params Parameters, progress ProgressFunc) error
}

// supportsFormat reports whether format is in formats.
func supportsFormat(formats []FileFormat, format FileFormat) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}
	return false
}
