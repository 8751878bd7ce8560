package processing

import (
	"github.com/cwbudde/algo-trepr/dataset"
)

// Averaging averages a 2D dataset over a range of positions along one axis,
// collapsing that axis and reducing dimensionality by one. A representative
// 1D spectrum or transient is usually obtained this way rather than from a
// single slice.
type Averaging struct {
	// Axis selects the axis to average over: 0 for field, 1 for time.
	Axis int

	// Range is the inclusive [from, to] range to average, in the unit
	// given by Unit. Values must be ascending.
	Range [2]float64

	// Unit is "axis" or "index". Empty selects "index".
	Unit string

	lo, hi int
}

// Name returns the step type.
func (*Averaging) Name() string {
	return "Averaging"
}

// Applicable reports whether the dataset is 2D.
func (*Averaging) Applicable(d *dataset.Dataset) bool {
	return d.NDim() == 2
}

func (s *Averaging) validate(d *dataset.Dataset) error {
	if s.Range[1] < s.Range[0] {
		return dataset.NewDomainError(s.Name(),
			"range values must be ascending, got [%g, %g]", s.Range[0], s.Range[1])
	}

	lo, err := resolvePosition(s.Name(), d, s.Axis, s.Range[0], s.Unit)
	if err != nil {
		return err
	}

	hi, err := resolvePosition(s.Name(), d, s.Axis, s.Range[1], s.Unit)
	if err != nil {
		return err
	}

	// A descending axis maps ascending values to descending indices.
	if lo > hi {
		lo, hi = hi, lo
	}

	s.lo, s.hi = lo, hi

	return nil
}

func (s *Averaging) execute(d *dataset.Dataset) {
	count := float64(s.hi - s.lo + 1)

	if s.Axis == 0 {
		out := make([]float64, d.Cols)
		for r := s.lo; r <= s.hi; r++ {
			row := d.Row(r)
			for t := range out {
				out[t] += row[t]
			}
		}

		for t := range out {
			out[t] /= count
		}

		d.Data = out
		d.Axes = []dataset.Axis{d.Axes[1], d.Axes[2]}
	} else {
		out := make([]float64, d.Rows)
		for r := range out {
			row := d.Row(r)
			for t := s.lo; t <= s.hi; t++ {
				out[r] += row[t]
			}

			out[r] /= count
		}

		d.Data = out
		d.Axes = []dataset.Axis{d.Axes[0], d.Axes[2]}
	}

	d.Rows = 1
	d.Cols = len(d.Data)
}

func (s *Averaging) parameters() map[string]any {
	return map[string]any{
		"axis":    s.Axis,
		"range":   []float64{s.Range[0], s.Range[1]},
		"unit":    normalizeUnit(s.Unit),
		"indices": []int{s.lo, s.hi},
	}
}
