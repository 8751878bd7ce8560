package analysis

import (
	"sort"
	"time"

	"github.com/cwbudde/algo-trepr/dataset"
)

// Timestamp kinds for TimeStampAnalysis.
const (
	TimeStampKindDelta = "delta"
	TimeStampKindTime  = "time"
)

// TimeStampAnalysis inspects the recording timestamps of the individual time
// traces. Irregularities hint at interrupted or resumed measurements.
//
// Kind "delta" (default) yields the time difference between consecutive
// traces in seconds; the first trace, which has no predecessor, is assigned
// half the median difference so it stays visible without dominating a plot.
// Kind "time" yields the elapsed seconds since the first recorded trace.
type TimeStampAnalysis struct {
	// Kind is "delta" (default) or "time".
	Kind string

	// Output is "values" (default) or "dataset".
	Output string

	kind   string
	output string
}

// NewTimeStampAnalysis creates the step with delta kind and values output.
func NewTimeStampAnalysis() *TimeStampAnalysis {
	return &TimeStampAnalysis{Kind: TimeStampKindDelta, Output: OutputValues}
}

// Name returns the step type.
func (*TimeStampAnalysis) Name() string {
	return "TimeStampAnalysis"
}

// Applicable reports whether a timestamp is recorded for every trace.
func (*TimeStampAnalysis) Applicable(d *dataset.Dataset) bool {
	return d.NDim() == 2 && len(d.TimeStamps) == d.Rows && d.Rows >= 2
}

func (s *TimeStampAnalysis) validate(*dataset.Dataset) error {
	s.kind = s.Kind
	if s.kind == "" {
		s.kind = TimeStampKindDelta
	}

	if s.kind != TimeStampKindDelta && s.kind != TimeStampKindTime {
		return dataset.NewConfigurationError(s.Name(), "unknown kind %q", s.kind)
	}

	s.output = s.Output
	if s.output == "" {
		s.output = OutputValues
	}

	if s.output != OutputValues && s.output != OutputDataset {
		return dataset.NewConfigurationError(s.Name(), "unknown output %q", s.output)
	}

	return nil
}

func (s *TimeStampAnalysis) analyse(d *dataset.Dataset) Result {
	var values []float64

	switch s.kind {
	case TimeStampKindDelta:
		values = timestampDeltas(d.TimeStamps)
	case TimeStampKindTime:
		values = secondsSinceStart(d.TimeStamps)
	}

	if s.output == OutputValues {
		return Result{Values: values}
	}

	out := dataset.NewCalculated(s.Name(), d)
	out.Data = values
	out.Rows = 1
	out.Cols = len(values)
	out.Axes = []dataset.Axis{
		d.Axes[0].Clone(),
		{Quantity: "time", Unit: "s"},
	}

	return Result{Dataset: out}
}

func (s *TimeStampAnalysis) parameters() map[string]any {
	return map[string]any{
		"kind":   s.kind,
		"output": s.output,
	}
}

func timestampDeltas(stamps []time.Time) []float64 {
	deltas := make([]float64, len(stamps))
	for i := 1; i < len(stamps); i++ {
		deltas[i] = stamps[i].Sub(stamps[i-1]).Abs().Seconds()
	}

	sorted := append([]float64(nil), deltas[1:]...)
	sort.Float64s(sorted)
	deltas[0] = median(sorted) / 2

	return deltas
}

func secondsSinceStart(stamps []time.Time) []float64 {
	start := stamps[0]
	for _, t := range stamps[1:] {
		if t.Before(start) {
			start = t
		}
	}

	values := make([]float64, len(stamps))
	for i, t := range stamps {
		values[i] = t.Sub(start).Seconds()
	}

	return values
}

// median expects sorted input.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}

	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}
