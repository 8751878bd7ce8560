package processing

import (
	"github.com/cwbudde/algo-trepr/dataset"
)

// Position units for SliceExtraction and Averaging.
const (
	UnitAxis  = "axis"
	UnitIndex = "index"
)

// SliceExtraction extracts a single 1D slice from a 2D dataset along the
// given axis, reducing dimensionality by one and removing the corresponding
// axis. The position is given either as an axis value (Unit "axis", mapped
// to the nearest axis point) or directly as an index (Unit "index").
type SliceExtraction struct {
	// Axis selects the axis the position refers to: 0 for field,
	// 1 for time.
	Axis int

	// Position is the coordinate or index of the slice.
	Position float64

	// Unit is "axis" or "index". Empty selects "index".
	Unit string

	index int
}

// Name returns the step type.
func (*SliceExtraction) Name() string {
	return "SliceExtraction"
}

// Applicable reports whether the dataset is 2D.
func (*SliceExtraction) Applicable(d *dataset.Dataset) bool {
	return d.NDim() == 2
}

func (s *SliceExtraction) validate(d *dataset.Dataset) error {
	idx, err := resolvePosition(s.Name(), d, s.Axis, s.Position, s.Unit)
	if err != nil {
		return err
	}

	s.index = idx

	return nil
}

func (s *SliceExtraction) execute(d *dataset.Dataset) {
	if s.Axis == 0 {
		d.Data = append([]float64(nil), d.Row(s.index)...)
		d.Axes = []dataset.Axis{d.Axes[1], d.Axes[2]}
	} else {
		d.Data = d.Column(s.index)
		d.Axes = []dataset.Axis{d.Axes[0], d.Axes[2]}
	}

	d.Rows = 1
	d.Cols = len(d.Data)
}

func (s *SliceExtraction) parameters() map[string]any {
	return map[string]any{
		"axis":     s.Axis,
		"position": s.Position,
		"unit":     normalizeUnit(s.Unit),
		"index":    s.index,
	}
}

func normalizeUnit(unit string) string {
	if unit == "" {
		return UnitIndex
	}

	return unit
}

// resolvePosition maps a position in the given unit to an index along the
// axis, validating axis number, unit name, and range.
func resolvePosition(step string, d *dataset.Dataset, axis int, position float64, unit string) (int, error) {
	if axis != 0 && axis != 1 {
		return 0, dataset.NewConfigurationError(step, "axis must be 0 or 1, got %d", axis)
	}

	values := d.Axes[axis].Values

	switch normalizeUnit(unit) {
	case UnitIndex:
		idx := int(position)
		if idx < 0 || idx >= len(values) {
			return 0, dataset.NewDomainError(step,
				"index %d out of range [0, %d)", idx, len(values))
		}

		return idx, nil
	case UnitAxis:
		if !d.Axes[axis].ContainsValue(position) {
			return 0, dataset.NewDomainError(step,
				"position %g outside axis %d range", position, axis)
		}

		return d.Axes[axis].NearestIndex(position), nil
	default:
		return 0, dataset.NewConfigurationError(step,
			"unit must be %q or %q, got %q", UnitAxis, UnitIndex, unit)
	}
}
