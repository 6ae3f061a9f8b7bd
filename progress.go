package fileconv

// Progress is one immutable snapshot of a running conversion: how far along
// it is (0-100) and a human-readable status. Converters emit non-decreasing
// percentages by convention; the type itself enforces no ordering.
type Progress struct {
	Percent float64
	Message string
}

// ProgressFunc receives progress snapshots during a conversion. A nil
// ProgressFunc is valid and means the caller does not want progress.
type ProgressFunc func(Progress)

// report emits a progress snapshot, tolerating a nil sink.
func (fn ProgressFunc) report(percent float64, message string) {
	if fn != nil {
		fn(Progress{Percent: percent, Message: message})
	}
}
