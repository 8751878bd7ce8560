package analysis

import (
	"github.com/cwbudde/algo-trepr/dataset"
)

// Characteristic kinds for BasicCharacteristics.
const (
	KindMin       = "min"
	KindMax       = "max"
	KindMean      = "mean"
	KindAmplitude = "amplitude"
	KindArea      = "area"
)

// BasicCharacteristics extracts a basic characteristic of the data: its
// minimum, maximum, mean, amplitude (max-min), or area (sum).
//
// With Output "value" (default) the characteristic is computed over the
// whole data block. With Output "values" and a non-negative Axis, it is
// computed separately along that axis, reducing it: Axis 0 yields one value
// per time sample, Axis 1 one value per field position.
//
// With Output "indices" and Kind "min" or "max", the index coordinates of
// the extremum are returned instead of its value; a downstream
// SliceExtraction can use them to cut the transient or spectrum through
// the global extremum. Axis selects a single coordinate in that case.
type BasicCharacteristics struct {
	// Kind is the characteristic to extract.
	Kind string

	// Output is "value" (default), "values", or "indices".
	Output string

	// Axis selects the reduction axis for "values" output, or restricts
	// "indices" output to the coordinate along one axis. Negative means
	// whole-array / all coordinates.
	Axis int

	output string
}

// NewBasicCharacteristics creates the step with value output and no axis
// restriction.
func NewBasicCharacteristics(kind string) *BasicCharacteristics {
	return &BasicCharacteristics{Kind: kind, Output: OutputValue, Axis: -1}
}

// Name returns the step type.
func (*BasicCharacteristics) Name() string {
	return "BasicCharacteristics"
}

// Applicable reports true; every valid dataset has basic characteristics.
func (*BasicCharacteristics) Applicable(*dataset.Dataset) bool {
	return true
}

func (s *BasicCharacteristics) validate(d *dataset.Dataset) error {
	switch s.Kind {
	case KindMin, KindMax, KindMean, KindAmplitude, KindArea:
	default:
		return dataset.NewConfigurationError(s.Name(), "unknown kind %q", s.Kind)
	}

	s.output = s.Output
	if s.output == "" {
		s.output = OutputValue
	}

	switch s.output {
	case OutputValue:
	case OutputValues:
		if s.Axis < 0 {
			return dataset.NewConfigurationError(s.Name(),
				"values output requires a reduction axis")
		}
	case OutputIndices:
		if s.Kind != KindMin && s.Kind != KindMax {
			return dataset.NewConfigurationError(s.Name(),
				"indices output requires kind min or max, got %q", s.Kind)
		}
	default:
		return dataset.NewConfigurationError(s.Name(), "unknown output %q", s.output)
	}

	if s.Axis >= d.NDim() {
		return dataset.NewConfigurationError(s.Name(),
			"axis %d out of bounds for %dD data", s.Axis, d.NDim())
	}

	return nil
}

func (s *BasicCharacteristics) analyse(d *dataset.Dataset) Result {
	if s.output == OutputValues {
		return Result{Values: s.reduceAlongAxis(d)}
	}

	minVal, maxVal := d.Data[0], d.Data[0]
	minIdx, maxIdx := 0, 0
	sum := 0.0

	for i, v := range d.Data {
		sum += v

		if v < minVal {
			minVal, minIdx = v, i
		}

		if v > maxVal {
			maxVal, maxIdx = v, i
		}
	}

	if s.output == OutputIndices {
		flat := maxIdx
		if s.Kind == KindMin {
			flat = minIdx
		}

		coords := []int{flat / d.Cols, flat % d.Cols}
		if d.NDim() == 1 {
			coords = coords[1:]
		}

		if s.Axis >= 0 {
			coords = []int{coords[s.Axis]}
		}

		return Result{Indices: coords}
	}

	switch s.Kind {
	case KindMin:
		return Result{Value: minVal}
	case KindMax:
		return Result{Value: maxVal}
	case KindMean:
		return Result{Value: sum / float64(len(d.Data))}
	case KindAmplitude:
		return Result{Value: maxVal - minVal}
	default:
		return Result{Value: sum}
	}
}

// reduceAlongAxis computes the characteristic separately along the
// reduction axis.
func (s *BasicCharacteristics) reduceAlongAxis(d *dataset.Dataset) []float64 {
	if s.Axis == 1 || d.NDim() == 1 {
		out := make([]float64, d.Rows)
		for r := range out {
			out[r] = characteristic(s.Kind, d.Row(r))
		}

		return out
	}

	out := make([]float64, d.Cols)
	for j := range out {
		out[j] = characteristic(s.Kind, d.Column(j))
	}

	return out
}

func characteristic(kind string, values []float64) float64 {
	minVal, maxVal := values[0], values[0]
	sum := 0.0

	for _, v := range values {
		sum += v

		if v < minVal {
			minVal = v
		}

		if v > maxVal {
			maxVal = v
		}
	}

	switch kind {
	case KindMin:
		return minVal
	case KindMax:
		return maxVal
	case KindMean:
		return sum / float64(len(values))
	case KindAmplitude:
		return maxVal - minVal
	default:
		return sum
	}
}

func (s *BasicCharacteristics) parameters() map[string]any {
	return map[string]any{
		"kind":   s.Kind,
		"output": s.output,
		"axis":   s.Axis,
	}
}
