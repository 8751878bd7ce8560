package analysis

import (
	"math"

	"github.com/cwbudde/algo-trepr/dataset"
	"github.com/cwbudde/algo-trepr/dsp/spectrum"
	"github.com/cwbudde/algo-trepr/dsp/window"
)

// TransientNutationFFT computes the frequency spectrum of the oscillatory
// part of each time trace. The trace is cut at a start position, optionally
// stripped of its exponential decay, apodised with the descending half of a
// window function and zero-padded before the transform. The result is a
// calculated dataset holding one magnitude spectrum per trace.
type TransientNutationFFT struct {
	// StartInExtremum cuts each trace at the global extremum of the
	// dataset instead of at time zero.
	StartInExtremum bool

	// Padding multiplies the trace length before rounding the transform
	// size up to the next power of two. 1 means no extra padding.
	Padding int

	// SubtractDecay removes a fitted exponential decay from each trace
	// before the transform.
	SubtractDecay bool

	// Window names the apodisation window; empty or "none" disables it.
	// See window.ParseType for recognized names.
	Window string

	// WindowParameters holds the shape parameter for parametric windows
	// (beta for "kaiser").
	WindowParameters []float64

	cut        int
	dt         float64
	windowType window.Type
	fft        *spectrum.RealFFT
}

// NewTransientNutationFFT creates the step with its defaults: the traces are
// cut at the dataset extremum and transformed without extra padding, decay
// subtraction or apodisation.
func NewTransientNutationFFT() *TransientNutationFFT {
	return &TransientNutationFFT{StartInExtremum: true, Padding: 1}
}

// Name returns the step type.
func (*TransientNutationFFT) Name() string {
	return "TransientNutationFFT"
}

// Applicable reports whether the dataset has a time axis.
func (*TransientNutationFFT) Applicable(d *dataset.Dataset) bool {
	return timeAxisIndex(d) >= 0
}

func (s *TransientNutationFFT) validate(d *dataset.Dataset) error {
	if s.Padding < 1 {
		return dataset.NewConfigurationError(s.Name(), "padding must be >= 1: %d", s.Padding)
	}

	t, err := window.ParseType(s.Window)
	if err != nil {
		return dataset.NewConfigurationError(s.Name(), "%v", err)
	}

	s.windowType = t

	times := d.Axes[timeAxisIndex(d)].Values
	if len(times) < 2 {
		return dataset.NewDomainError(s.Name(), "time axis too short: %d points", len(times))
	}

	s.cut = s.startIndex(d, times)

	remaining := d.Cols - s.cut
	if remaining < 2 {
		return dataset.NewDomainError(s.Name(), "only %d samples after start position", remaining)
	}

	s.dt = math.Abs(times[len(times)-1] - times[len(times)-2])
	if s.dt == 0 {
		return dataset.NewDomainError(s.Name(), "time axis spacing is zero")
	}

	s.fft, err = spectrum.NewRealFFT(spectrum.NextPowerOf2(remaining * s.Padding))
	if err != nil {
		return dataset.NewDomainError(s.Name(), "%v", err)
	}

	return nil
}

// startIndex locates the sample each trace is cut at: the global extremum of
// the intensity values, or the sample closest to time zero.
func (s *TransientNutationFFT) startIndex(d *dataset.Dataset, times []float64) int {
	if s.StartInExtremum {
		best := 0
		bestAbs := math.Abs(d.Data[0])

		for i, v := range d.Data {
			if a := math.Abs(v); a > bestAbs {
				best, bestAbs = i, a
			}
		}

		return best % d.Cols
	}

	best := 0
	bestAbs := math.Abs(times[0])

	for i, v := range times {
		if a := math.Abs(v); a < bestAbs {
			best, bestAbs = i, a
		}
	}

	return best
}

func (s *TransientNutationFFT) analyse(d *dataset.Dataset) Result {
	remaining := d.Cols - s.cut
	binCount := s.fft.BinCount()

	var coeffs []float64
	if s.windowType != window.TypeRectangular {
		beta := 0.0
		if len(s.WindowParameters) > 0 {
			beta = s.WindowParameters[0]
		}

		coeffs = window.HalfRight(s.windowType, remaining, window.WithAlpha(beta))
	}

	times := make([]float64, remaining)
	for i := range times {
		times[i] = float64(i) * s.dt
	}

	out := dataset.NewCalculated(s.Name(), d)
	out.Data = make([]float64, d.Rows*binCount)
	out.Rows = d.Rows
	out.Cols = binCount

	trace := make([]float64, remaining)

	for r := 0; r < d.Rows; r++ {
		copy(trace, d.Row(r)[s.cut:])

		if s.SubtractDecay {
			subtractExponentialDecay(trace, times)
		}

		if coeffs != nil {
			_ = window.ApplyCoefficientsInPlace(trace, coeffs)
		}

		mag, err := s.fft.Magnitudes(trace)
		if err == nil {
			copy(out.Data[r*binCount:], mag)
		}
	}

	frequency := dataset.Axis{
		Values:   spectrum.FrequencyAxis(s.fft.Size(), s.dt),
		Quantity: "frequency",
		Unit:     "Hz",
	}

	if d.NDim() == 2 {
		out.Axes = []dataset.Axis{
			d.Axes[0].Clone(),
			frequency,
			{Quantity: "intensity"},
		}
	} else {
		out.Axes = []dataset.Axis{
			frequency,
			{Quantity: "intensity"},
		}
	}

	return Result{Dataset: out}
}

func (s *TransientNutationFFT) parameters() map[string]any {
	return map[string]any{
		"start_in_extremum": s.StartInExtremum,
		"start_index":       s.cut,
		"padding":           s.Padding,
		"subtract_decay":    s.SubtractDecay,
		"window":            s.Window,
		"window_parameters": append([]float64(nil), s.WindowParameters...),
	}
}

// subtractExponentialDecay fits a*exp(-b*t) to the trace and removes it. The
// fit starts from a log-linear estimate and is refined with a few
// Gauss-Newton iterations. Traces the model cannot describe are left
// unchanged.
func subtractExponentialDecay(trace, times []float64) {
	a, b, ok := fitExponentialDecay(times, trace)
	if !ok {
		return
	}

	for i, t := range times {
		trace[i] -= a * math.Exp(-b*t)
	}
}

func fitExponentialDecay(t, y []float64) (a, b float64, ok bool) {
	a, b, ok = logLinearEstimate(t, y)
	if !ok {
		return 0, 0, false
	}

	for iter := 0; iter < 12; iter++ {
		// Normal equations of the 2-parameter Gauss-Newton step.
		var jaa, jab, jbb, ra, rb float64

		for i := range t {
			e := math.Exp(-b * t[i])
			ja := e
			jb := -a * t[i] * e
			r := y[i] - a*e

			jaa += ja * ja
			jab += ja * jb
			jbb += jb * jb
			ra += ja * r
			rb += jb * r
		}

		det := jaa*jbb - jab*jab
		if math.Abs(det) < 1e-300 {
			break
		}

		da := (ra*jbb - rb*jab) / det
		db := (rb*jaa - ra*jab) / det

		if math.IsNaN(da) || math.IsNaN(db) {
			break
		}

		a += da
		b += db

		if math.Abs(da) < 1e-12*math.Abs(a)+1e-300 &&
			math.Abs(db) < 1e-12*math.Abs(b)+1e-300 {
			break
		}
	}

	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return 0, 0, false
	}

	return a, b, true
}

// logLinearEstimate fits a line to log(y) over the samples where y is
// positive, yielding starting values for the nonlinear fit.
func logLinearEstimate(t, y []float64) (a, b float64, ok bool) {
	var n float64
	var st, sl, stt, stl float64

	for i := range t {
		if y[i] <= 0 {
			continue
		}

		l := math.Log(y[i])
		n++
		st += t[i]
		sl += l
		stt += t[i] * t[i]
		stl += t[i] * l
	}

	if n < 2 {
		return 0, 0, false
	}

	det := n*stt - st*st
	if math.Abs(det) < 1e-300 {
		return 0, 0, false
	}

	slope := (n*stl - st*sl) / det
	intercept := (sl - slope*st) / n

	return math.Exp(intercept), -slope, true
}
