package processing

import (
	"github.com/cwbudde/algo-trepr/dataset"
)

const defaultTargetFrequency = 9.5 // GHz

// FrequencyCorrection rescales the magnetic-field axis to a common target
// microwave frequency, a prerequisite for comparing spectra recorded at
// slightly different frequencies. Using the resonance condition, the field
// axis is multiplied by the ratio of target to recorded frequency.
//
// The recorded frequency is read from the "bridge"/"mw_frequency" metadata
// entry; both frequencies are recorded in the history entry. The metadata
// itself keeps the measured value.
type FrequencyCorrection struct {
	// Frequency is the target microwave frequency in GHz. Zero selects
	// the default of 9.5.
	Frequency float64

	target  float64
	initial float64
}

// Name returns the step type.
func (*FrequencyCorrection) Name() string {
	return "FrequencyCorrection"
}

// Applicable reports whether the dataset has a magnetic-field axis.
func (*FrequencyCorrection) Applicable(d *dataset.Dataset) bool {
	return fieldAxisIndex(d) >= 0
}

func (s *FrequencyCorrection) validate(d *dataset.Dataset) error {
	s.target = s.Frequency
	if s.target == 0 {
		s.target = defaultTargetFrequency
	}

	if s.target < 0 {
		return dataset.NewConfigurationError(s.Name(),
			"target frequency must be positive, got %g GHz", s.target)
	}

	q, ok := d.Metadata.Quantity("bridge", "mw_frequency")
	if !ok || q.Value <= 0 {
		return dataset.NewDomainError(s.Name(),
			"no microwave frequency recorded in metadata")
	}

	s.initial = q.Value

	return nil
}

func (s *FrequencyCorrection) execute(d *dataset.Dataset) {
	values := d.Axes[fieldAxisIndex(d)].Values

	ratio := s.target / s.initial
	for i := range values {
		values[i] *= ratio
	}
}

func (s *FrequencyCorrection) parameters() map[string]any {
	return map[string]any{
		"frequency":         s.target,
		"initial_frequency": s.initial,
	}
}
