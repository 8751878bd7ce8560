package processing

import (
	"github.com/cwbudde/algo-trepr/dataset"
	"github.com/cwbudde/algo-trepr/dsp/sgolay"
)

// Filtering smooths each time trace with a Savitzky-Golay filter of the
// given window length and polynomial order. For 2D data the filter runs
// along the time axis independently per field position; for 1D data along
// the sole axis.
type Filtering struct {
	// WindowLength is the filter window in samples. Must be odd, larger
	// than Order, and smaller than the trace length.
	WindowLength int

	// Order is the polynomial order of the fit.
	Order int
}

// Name returns the step type.
func (*Filtering) Name() string {
	return "Filtering"
}

// Applicable reports true; filtering works on 1D and 2D data alike.
func (*Filtering) Applicable(*dataset.Dataset) bool {
	return true
}

func (s *Filtering) validate(d *dataset.Dataset) error {
	if s.Order < 0 {
		return dataset.NewConfigurationError(s.Name(),
			"polynomial order must be >= 0, got %d", s.Order)
	}

	if s.WindowLength%2 == 0 {
		return dataset.NewConfigurationError(s.Name(),
			"window length must be odd, got %d", s.WindowLength)
	}

	if s.WindowLength <= s.Order {
		return dataset.NewConfigurationError(s.Name(),
			"window length %d must be larger than order %d", s.WindowLength, s.Order)
	}

	if s.WindowLength >= d.Cols {
		return dataset.NewConfigurationError(s.Name(),
			"window length %d must be smaller than trace length %d", s.WindowLength, d.Cols)
	}

	return nil
}

func (s *Filtering) execute(d *dataset.Dataset) {
	for r := 0; r < d.Rows; r++ {
		trace := d.Row(r)

		// Cannot fail: parameters and trace length were validated.
		_ = sgolay.Smooth(trace, trace, s.WindowLength, s.Order)
	}
}

func (s *Filtering) parameters() map[string]any {
	return map[string]any{
		"window_length": s.WindowLength,
		"order":         s.Order,
	}
}
