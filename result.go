package fileconv

import (
	"context"
	"errors"
	"time"
)

// Result is the structured outcome of one conversion attempt. The engine
// always returns one, whether the conversion succeeded, failed, or was
// canceled. Success implies Err == nil; a failed or canceled conversion
// carries the cause in Err.
type Result struct {
	Success      bool
	InputPath    string
	OutputPath   string
	InputFormat  FileFormat
	OutputFormat FileFormat
	Elapsed      time.Duration
	Err          error
}

// Canceled reports whether the conversion failed because the caller
// canceled it or its deadline expired.
func (r *Result) Canceled() bool {
	return errors.Is(r.Err, context.Canceled) || errors.Is(r.Err, context.DeadlineExceeded)
}
