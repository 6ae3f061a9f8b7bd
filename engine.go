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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"
)

type registeredConverter struct {
	converter Converter
	name      string
}

// Engine routes conversion requests to registered converters.
//
// The converter list is fixed after New returns, so a single Engine is safe
// for concurrent ConvertFile calls as long as they target distinct paths.
type Engine struct {
	converters []registeredConverter
	logger     *slog.Logger
}

// New creates an Engine pre-loaded with the built-in converter set.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	e.enableBuiltins()
	return e
}

// Register adds a converter. Converters are matched in registration order:
// the first one whose input and output sets cover the requested pair wins,
// so registration order is the de facto priority order when two converters
// claim the same pair.
func (e *Engine) Register(name string, c Converter) {
	e.converters = append(e.converters, registeredConverter{converter: c, name: name})
}

// ConversionPath is one supported (input, output) format pair.
type ConversionPath struct {
	Input  FileFormat
	Output FileFormat
}

// ConvertFile converts inputPath into outputPath, selecting a converter from
// the detected formats of both paths. It always returns a non-nil Result and
// never panics or lets an error escape: failures, including cancellation, are
// folded into the Result.
func (e *Engine) ConvertFile(ctx context.Context, inputPath, outputPath string, params Parameters, progress ProgressFunc) *Result {
	start := time.Now()
	if ctx == nil {
		ctx = context.Background()
	}

	res := &Result{InputPath: inputPath, OutputPath: outputPath}
	fail := func(err error) *Result {
		res.Err = err
		res.Elapsed = time.Since(start)
		progress.report(0, "Conversion failed: "+err.Error())
		e.logger.Error("conversion failed",
			"input", inputPath, "output", outputPath, "error", err)
		return res
	}

	if inputPath == "" || outputPath == "" {
		return fail(errors.New("input and output paths must not be empty"))
	}
	if _, err := os.Stat(inputPath); err != nil {
		return fail(fmt.Errorf("%w: %s", ErrInputNotFound, inputPath))
	}

	res.InputFormat = DetectFormat(inputPath)
	res.OutputFormat = DetectFormat(outputPath)
	if res.InputFormat == FormatUnknown {
		return fail(&UnknownFormatError{Path: inputPath})
	}
	if res.OutputFormat == FormatUnknown {
		return fail(&UnknownFormatError{Path: outputPath})
	}

	rc, ok := e.resolve(res.InputFormat, res.OutputFormat)
	if !ok {
		return fail(&NoConverterError{Input: res.InputFormat, Output: res.OutputFormat})
	}

	if dir := filepath.Dir(outputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fail(fmt.Errorf("create output directory: %w", err))
		}
	}

	e.logger.Info("converting",
		"converter", rc.name,
		"input", inputPath, "inputFormat", res.InputFormat.String(),
		"output", outputPath, "outputFormat", res.OutputFormat.String())
	progress.report(0, fmt.Sprintf("Converting %s to %s...", res.InputFormat, res.OutputFormat))

	err := e.safeConvert(ctx, rc.converter, inputPath, outputPath, params, progress)

	// Elapsed time is always the engine's own measurement, so it is
	// consistent with the caller's perspective.
	res.Elapsed = time.Since(start)

	switch {
	case err == nil:
		res.Success = true
		e.logger.Info("conversion complete",
			"converter", rc.name, "input", inputPath, "elapsed", res.Elapsed)
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		res.Err = err
		progress.report(0, "Conversion canceled")
		e.logger.Warn("conversion canceled", "converter", rc.name, "input", inputPath)
	default:
		res.Err = err
		progress.report(0, "Conversion failed: "+err.Error())
		e.logger.Error("conversion failed",
			"converter", rc.name, "input", inputPath, "error", err)
	}
	return res
}

// safeConvert runs the converter, turning a panic into an error so nothing
// escapes ConvertFile.
func (e *Engine) safeConvert(ctx context.Context, c Converter, inputPath, outputPath string, params Parameters, progress ProgressFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("converter panic: %v", r)
		}
	}()
	return c.Convert(ctx, inputPath, outputPath, params, progress)
}

// Resolve returns the converter that ConvertFile would dispatch to for the
// given format pair, if any.
func (e *Engine) Resolve(input, output FileFormat) (Converter, bool) {
	rc, ok := e.resolve(input, output)
	return rc.converter, ok
}

// resolve scans the converter list in registration order and returns the
// first converter whose input set contains input and whose output set
// contains output. This is a cross-product match: a converter claiming
// inputs {A} and outputs {X, Y} is valid for both A->X and A->Y.
func (e *Engine) resolve(input, output FileFormat) (registeredConverter, bool) {
	for _, rc := range e.converters {
		if supportsFormat(rc.converter.InputFormats(), input) &&
			supportsFormat(rc.converter.OutputFormats(), output) {
			return rc, true
		}
	}
	return registeredConverter{}, false
}

// SupportedPaths returns the deduplicated cross product of every registered
// converter's input set x output set, sorted for stable presentation. UI
// layers use it to populate format pickers.
func (e *Engine) SupportedPaths() []ConversionPath {
	seen := make(map[ConversionPath]struct{})
	var paths []ConversionPath
	for _, rc := range e.converters {
		for _, in := range rc.converter.InputFormats() {
			for _, out := range rc.converter.OutputFormats() {
				p := ConversionPath{Input: in, Output: out}
				if _, ok := seen[p]; ok {
					continue
				}
				seen[p] = struct{}{}
				paths = append(paths, p)
			}
		}
	}
	sort.Slice(paths, func(i, j int) bool {
		if paths[i].Input != paths[j].Input {
			return paths[i].Input < paths[j].Input
		}
		return paths[i].Output < paths[j].Output
	})
	return paths
}

// enableBuiltins registers all built-in converters. Order matters: more
// specific converters come before the broad renderers so first-match
// resolution picks the right one for overlapping pairs.
func (e *Engine) enableBuiltins() {
	e.Register("delimited", NewDelimitedConverter())
	e.Register("text", NewTextConverter())
	e.Register("html", NewHtmlConverter())
	e.Register("markdown", NewMarkdownConverter())
	e.Register("structured", NewStructuredConverter())
	e.Register("xml", NewXmlConverter())
	e.Register("rtf", NewRtfConverter())
	e.Register("docx", NewDocxConverter())
	e.Register("pdf", NewPdfConverter())
	e.Register("xlsx", NewXlsxConverter())
	e.Register("workbook", NewWorkbookConverter())
	e.Register("xls", NewXlsConverter())
	e.Register("feed", NewFeedConverter())
	e.Register("zip", NewZipConverter())

	// Renderers claim wide input sets, so they go last.
	e.Register("htmlrender", NewHtmlRenderConverter())
	e.Register("pdfrender", NewPdfRenderConverter())
}
