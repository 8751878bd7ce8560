package dataset

import (
	"math"
	"strings"
)

// Axis describes one labeled dimension of a dataset. The trailing intensity
// axis of a dataset carries only quantity and unit, no values.
type Axis struct {
	Values   []float64
	Quantity string
	Unit     string
	Label    string
}

// IsTime reports whether the axis represents a time dimension.
func (a Axis) IsTime() bool {
	return strings.Contains(a.Quantity, "time")
}

// Clone returns a deep copy of the axis.
func (a Axis) Clone() Axis {
	out := a
	out.Values = append([]float64(nil), a.Values...)

	return out
}

// NearestIndex returns the index of the axis value closest to v.
func (a Axis) NearestIndex(v float64) int {
	best := 0
	bestDist := math.Inf(1)

	for i, val := range a.Values {
		d := math.Abs(val - v)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}

	return best
}

// ContainsValue reports whether v lies within the axis value range.
func (a Axis) ContainsValue(v float64) bool {
	if len(a.Values) == 0 {
		return false
	}

	lo := math.Inf(1)
	hi := math.Inf(-1)

	for _, val := range a.Values {
		lo = math.Min(lo, val)
		hi = math.Max(hi, val)
	}

	return v >= lo && v <= hi
}

// monotonic reports whether the values are strictly increasing or strictly
// decreasing. Axes with fewer than two values are trivially monotonic.
func (a Axis) monotonic() bool {
	if len(a.Values) < 2 {
		return true
	}

	increasing := a.Values[1] > a.Values[0]
	for i := 1; i < len(a.Values); i++ {
		if increasing && a.Values[i] <= a.Values[i-1] {
			return false
		}

		if !increasing && a.Values[i] >= a.Values[i-1] {
			return false
		}
	}

	return true
}
