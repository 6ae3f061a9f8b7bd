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
	"errors"
	"fmt"
)

// ErrInputNotFound is returned when the input path does not exist.
var ErrInputNotFound = errors.New("input file not found")

// UnknownFormatError is returned when a path's extension does not map to a
// recognized FileFormat.
type UnknownFormatError struct {
	Path string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format for %q", e.Path)
}

// NoConverterError is returned when no registered converter covers the
// requested (input, output) format pair.
type NoConverterError struct {
	Input  FileFormat
	Output FileFormat
}

func (e *NoConverterError) Error() string {
	return fmt.Sprintf("no converter found for %s -> %s", e.Input, e.Output)
}

// IsUnknownFormat reports whether the error is an UnknownFormatError.
func IsUnknownFormat(err error) bool {
	var target *UnknownFormatError
	return errors.As(err, &target)
}

// IsNoConverter reports whether the error is a NoConverterError.
func IsNoConverter(err error) bool {
	var target *NoConverterError
	return errors.As(err, &target)
}
