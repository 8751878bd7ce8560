package processing

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-trepr/dataset"
)

// BackgroundCorrection subtracts the field-dependent baseline drift
// estimated from off-resonant time traces at the edges of the magnetic
// field range.
//
// NumProfiles holds the number of traces considered pure background at the
// lower and upper end of the field axis. With both counts positive, the
// background surface is linearly interpolated per time sample between the
// two averaged edge profiles across the field index, compensating linear
// drift. With only one count positive, that single averaged profile is
// subtracted uniformly.
type BackgroundCorrection struct {
	NumProfiles [2]int
}

// Name returns the step type.
func (*BackgroundCorrection) Name() string {
	return "BackgroundCorrection"
}

// Applicable reports whether the dataset is 2D.
func (*BackgroundCorrection) Applicable(d *dataset.Dataset) bool {
	return d.NDim() == 2
}

func (s *BackgroundCorrection) validate(d *dataset.Dataset) error {
	low, high := s.NumProfiles[0], s.NumProfiles[1]

	if low < 0 || high < 0 {
		return dataset.NewConfigurationError(s.Name(),
			"profile counts must be >= 0, got [%d, %d]", low, high)
	}

	if low == 0 && high == 0 {
		return dataset.NewConfigurationError(s.Name(),
			"at least one background profile count must be positive")
	}

	if d.Rows <= 2*(low+high) {
		return dataset.NewDomainError(s.Name(),
			"dataset with %d field positions is too small for %d background profiles",
			d.Rows, low+high)
	}

	return nil
}

func (s *BackgroundCorrection) execute(d *dataset.Dataset) {
	low, high := s.NumProfiles[0], s.NumProfiles[1]

	background := make([]float64, d.Cols)
	negated := make([]float64, d.Cols)

	switch {
	case low > 0 && high > 0:
		lower := meanOfRows(d, 0, low)
		upper := meanOfRows(d, d.Rows-high, d.Rows)

		for r := 0; r < d.Rows; r++ {
			frac := float64(r) / float64(d.Rows-1)
			for t := range background {
				background[t] = lower[t] + frac*(upper[t]-lower[t])
			}

			vecmath.ScaleBlock(negated, background, -1)
			vecmath.AddBlockInPlace(d.Row(r), negated)
		}
	case low > 0:
		copy(background, meanOfRows(d, 0, low))
	default:
		copy(background, meanOfRows(d, d.Rows-high, d.Rows))
	}

	if low == 0 || high == 0 {
		vecmath.ScaleBlock(negated, background, -1)
		for r := 0; r < d.Rows; r++ {
			vecmath.AddBlockInPlace(d.Row(r), negated)
		}
	}
}

func (s *BackgroundCorrection) parameters() map[string]any {
	return map[string]any{"num_profiles": []int{s.NumProfiles[0], s.NumProfiles[1]}}
}

// meanOfRows averages the rows [from, to) per time sample.
func meanOfRows(d *dataset.Dataset, from, to int) []float64 {
	out := make([]float64, d.Cols)

	for r := from; r < to; r++ {
		row := d.Row(r)
		for t := range out {
			out[t] += row[t]
		}
	}

	scale := 1 / float64(to-from)
	for t := range out {
		out[t] *= scale
	}

	return out
}
