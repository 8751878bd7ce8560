package dataset

import "time"

// Step kinds recorded in history entries.
const (
	KindProcessing = "processing"
	KindAnalysis   = "analysis"
)

// HistoryEntry is the immutable record of one applied operation. Entries are
// append-only; together they form the complete provenance chain of a dataset
// back to the raw imported measurement.
type HistoryEntry struct {
	// Kind discriminates processing from analysis entries.
	Kind string

	// Type is the step name, e.g. "BackgroundCorrection".
	Type string

	// Parameters holds the exact configuration the step ran with,
	// including values the step detected itself (such as an
	// auto-detected trigger position).
	Parameters map[string]any

	// Timestamp records when the step was applied.
	Timestamp time.Time

	// Result names the binding an analysis result was stored under.
	// Empty for processing entries and unnamed analyses.
	Result string
}

// Clone returns a deep copy of the entry.
func (e HistoryEntry) Clone() HistoryEntry {
	out := e
	if e.Parameters != nil {
		out.Parameters = make(map[string]any, len(e.Parameters))
		for k, v := range e.Parameters {
			out.Parameters[k] = v
		}
	}

	return out
}

// CloneHistory returns a deep copy of a history slice.
func CloneHistory(history []HistoryEntry) []HistoryEntry {
	if history == nil {
		return nil
	}

	out := make([]HistoryEntry, len(history))
	for i, e := range history {
		out[i] = e.Clone()
	}

	return out
}
