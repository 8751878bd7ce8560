package processing

import (
	"math"

	"github.com/cwbudde/algo-trepr/dataset"
)

// Trigger autodetection defaults.
const (
	defaultNSigma          = 4.0
	defaultBaselineSamples = 50
)

// TriggerAutodetection locates the time-axis index at which the measurement
// response departs from steady background noise and reassigns the time axis
// zero to that index, for setups that cannot record a trigger position.
//
// For every time sample, the maximum absolute deviation from the per-trace
// baseline mean across all field positions is aggregated; the trigger is
// the first sample where this aggregate exceeds NSigma times the standard
// deviation of the aggregate over the first BaselineSamples samples.
//
// Do not run a background correction before autodetecting the trigger, as
// it removes the laser background signal the detection relies on.
type TriggerAutodetection struct {
	// NSigma is the threshold multiplier. Zero selects the default of 4.
	NSigma float64

	// BaselineSamples is the number of early samples used for the noise
	// statistics. Zero selects the default of 50.
	BaselineSamples int

	nSigma   float64
	baseline int
	trigger  int
}

// Name returns the step type.
func (*TriggerAutodetection) Name() string {
	return "TriggerAutodetection"
}

// Applicable reports whether the dataset has a time axis.
func (*TriggerAutodetection) Applicable(d *dataset.Dataset) bool {
	return timeAxisIndex(d) >= 0
}

func (s *TriggerAutodetection) validate(d *dataset.Dataset) error {
	s.nSigma = s.NSigma
	if s.nSigma <= 0 {
		s.nSigma = defaultNSigma
	}

	s.baseline = s.BaselineSamples
	if s.baseline <= 0 {
		s.baseline = defaultBaselineSamples
	}

	if d.Cols <= s.baseline {
		return dataset.NewDomainError(s.Name(),
			"trace length %d leaves no samples beyond the %d-sample baseline window",
			d.Cols, s.baseline)
	}

	aggregate := deviationAggregate(d, s.baseline)
	threshold := s.nSigma * stddev(aggregate[:s.baseline])

	trigger := -1
	for t, v := range aggregate {
		if v > threshold {
			trigger = t
			break
		}
	}

	if trigger < 0 {
		return dataset.NewDomainError(s.Name(),
			"no trigger found: no sample exceeds %.3g sigma above baseline noise", s.nSigma)
	}

	s.trigger = trigger

	return nil
}

func (s *TriggerAutodetection) execute(d *dataset.Dataset) {
	values := d.Axes[timeAxisIndex(d)].Values

	offset := values[s.trigger]
	for i := range values {
		values[i] -= offset
	}
}

func (s *TriggerAutodetection) parameters() map[string]any {
	return map[string]any{
		"n_sigma":          s.nSigma,
		"baseline_samples": s.baseline,
		"trigger_position": s.trigger,
	}
}

// deviationAggregate returns, per time sample, the maximum absolute
// deviation from the per-trace baseline mean across all field positions.
func deviationAggregate(d *dataset.Dataset, baseline int) []float64 {
	out := make([]float64, d.Cols)

	for r := 0; r < d.Rows; r++ {
		trace := d.Row(r)
		base := mean(trace[:baseline])

		for t, v := range trace {
			dev := math.Abs(v - base)
			if dev > out[t] {
				out[t] = dev
			}
		}
	}

	return out
}

func stddev(values []float64) float64 {
	m := mean(values)

	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(values)))
}
