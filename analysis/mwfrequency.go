package analysis

import (
	"math"

	"github.com/cwbudde/algo-trepr/dataset"
)

// CODATA values used for the resonance-condition conversion.
const (
	electronGFactor = -2.00231930436256
	bohrMagneton    = 9.2740100783e-24 // J/T
	planckConstant  = 6.62607015e-34   // J s
)

// ghzToMilliTesla converts a microwave frequency difference in GHz into
// magnetic-field units via the free-electron resonance condition.
func ghzToMilliTesla(frequency float64) float64 {
	return frequency * 1e9 * planckConstant / (-electronGFactor * bohrMagneton * 1e-3)
}

// MWFrequencyValues extracts the microwave frequency recorded for each time
// trace, which makes the frequency stability over a long measurement
// directly inspectable. With Output "dataset" the series is packaged as a
// 1D calculated dataset over the magnetic-field axis for plotting.
type MWFrequencyValues struct {
	// Output is "values" (default) or "dataset".
	Output string

	output string
}

// Name returns the step type.
func (*MWFrequencyValues) Name() string {
	return "MWFrequencyValues"
}

// Applicable reports whether per-trace microwave frequency values are
// recorded.
func (*MWFrequencyValues) Applicable(d *dataset.Dataset) bool {
	return d.NDim() == 2 && len(d.MicrowaveFrequency) == d.Rows
}

func (s *MWFrequencyValues) validate(*dataset.Dataset) error {
	s.output = s.Output
	if s.output == "" {
		s.output = OutputValues
	}

	if s.output != OutputValues && s.output != OutputDataset {
		return dataset.NewConfigurationError(s.Name(), "unknown output %q", s.output)
	}

	return nil
}

func (s *MWFrequencyValues) analyse(d *dataset.Dataset) Result {
	values := append([]float64(nil), d.MicrowaveFrequency...)

	if s.output == OutputValues {
		return Result{Values: values}
	}

	out := dataset.NewCalculated(s.Name(), d)
	out.Data = values
	out.Rows = 1
	out.Cols = len(values)
	out.Axes = []dataset.Axis{
		d.Axes[0].Clone(),
		{Quantity: "microwave frequency", Unit: "GHz"},
	}

	return Result{Dataset: out}
}

func (s *MWFrequencyValues) parameters() map[string]any {
	return map[string]any{"output": s.output}
}

// Drift kinds for MWFrequencyDrift.
const (
	DriftKindRatio = "ratio"
	DriftKindDrift = "drift"
)

// MWFrequencyDrift quantifies how far the microwave frequency drifted over
// the measurement, converted into magnetic-field units so it can be compared
// with the field-axis step width. A ratio near or above one means the drift
// is comparable to the field resolution and may distort the spectra.
//
// With Output "value" the result is the scalar drift amplitude (Kind
// "drift", in mT) or its ratio to the step width (Kind "ratio"). With
// Output "dataset" the per-step frequency differences are returned as a 1D
// calculated dataset over field values centred between the original points.
type MWFrequencyDrift struct {
	// Kind is "ratio" (default) or "drift".
	Kind string

	// Output is "value" (default) or "dataset".
	Output string

	kind   string
	output string
}

// NewMWFrequencyDrift creates the step with ratio kind and value output.
func NewMWFrequencyDrift() *MWFrequencyDrift {
	return &MWFrequencyDrift{Kind: DriftKindRatio, Output: OutputValue}
}

// Name returns the step type.
func (*MWFrequencyDrift) Name() string {
	return "MWFrequencyDrift"
}

// Applicable reports whether per-trace microwave frequency values are
// recorded and the field axis has at least two points.
func (*MWFrequencyDrift) Applicable(d *dataset.Dataset) bool {
	return d.NDim() == 2 && len(d.MicrowaveFrequency) == d.Rows && d.Rows >= 2
}

func (s *MWFrequencyDrift) validate(*dataset.Dataset) error {
	s.kind = s.Kind
	if s.kind == "" {
		s.kind = DriftKindRatio
	}

	if s.kind != DriftKindRatio && s.kind != DriftKindDrift {
		return dataset.NewConfigurationError(s.Name(), "unknown kind %q", s.kind)
	}

	s.output = s.Output
	if s.output == "" {
		s.output = OutputValue
	}

	if s.output != OutputValue && s.output != OutputDataset {
		return dataset.NewConfigurationError(s.Name(), "unknown output %q", s.output)
	}

	return nil
}

func (s *MWFrequencyDrift) analyse(d *dataset.Dataset) Result {
	field := d.Axes[0].Values
	axisStep := field[1] - field[0]
	stepSize := math.Abs(axisStep)

	if s.output == OutputValue {
		lo, hi := d.MicrowaveFrequency[0], d.MicrowaveFrequency[0]
		for _, v := range d.MicrowaveFrequency {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}

		drift := ghzToMilliTesla(hi - lo)
		if s.kind == DriftKindRatio {
			return Result{Value: drift / stepSize}
		}

		return Result{Value: drift}
	}

	// Differences between adjacent traces, on field values centred
	// between the original points.
	data := make([]float64, d.Rows-1)
	values := make([]float64, d.Rows-1)

	for i := range data {
		data[i] = ghzToMilliTesla(d.MicrowaveFrequency[i+1] - d.MicrowaveFrequency[i])
		values[i] = field[i] + axisStep/2
	}

	intensity := dataset.Axis{Quantity: "drift", Unit: "mT"}

	if s.kind == DriftKindRatio {
		for i := range data {
			data[i] /= stepSize
		}

		intensity = dataset.Axis{Quantity: "drift/(field step size)"}
	}

	out := dataset.NewCalculated(s.Name(), d)
	out.Data = data
	out.Rows = 1
	out.Cols = len(data)
	out.Axes = []dataset.Axis{
		{Values: values, Quantity: d.Axes[0].Quantity, Unit: d.Axes[0].Unit},
		intensity,
	}

	return Result{Dataset: out}
}

func (s *MWFrequencyDrift) parameters() map[string]any {
	return map[string]any{
		"kind":   s.kind,
		"output": s.output,
	}
}
